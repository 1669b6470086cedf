package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/apperrors"
)

func TestExportService_CourseViewXLSX(t *testing.T) {
	svcs := newTestServices()

	data, contentType, err := svcs.Export.CourseView(1, false, ExportFormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	require.NotEmpty(t, data)
	// XLSX files are zip archives.
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestExportService_CourseViewPDF(t *testing.T) {
	svcs := newTestServices()

	data, contentType, err := svcs.Export.CourseView(1, true, ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportService_CourseViewErrors(t *testing.T) {
	svcs := newTestServices()

	_, _, err := svcs.Export.CourseView(1, false, "csv")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedExportFormat)

	_, _, err = svcs.Export.CourseView(9999, false, ExportFormatXLSX)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
