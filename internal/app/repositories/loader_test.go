package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
)

func writeMappingFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "semester_mapping.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSemesterMapping(t *testing.T) {
	path := writeMappingFile(t,
		"Specific Semester,Broad Semester,Semester Order\n"+
			"Fall 1,Fall,1\n"+
			"Fall 2,Fall,2\n"+
			"Spring,Spring,1\n")

	mapping, err := LoadSemesterMapping(path)
	require.NoError(t, err)
	require.Len(t, mapping, 3)

	key, ok := mapping.Lookup("Fall 2")
	require.True(t, ok)
	assert.Equal(t, models.SemesterFall, key.Broad)
	assert.Equal(t, 2, key.Ordinal)
}

func TestLoadSemesterMapping_ColumnsInAnyOrder(t *testing.T) {
	path := writeMappingFile(t,
		"Semester Order,Specific Semester,Broad Semester\n"+
			"1,Summer 1,Summer\n")

	mapping, err := LoadSemesterMapping(path)
	require.NoError(t, err)

	key, ok := mapping.Lookup("Summer 1")
	require.True(t, ok)
	assert.Equal(t, models.SemesterSummer, key.Broad)
	assert.Equal(t, 1, key.Ordinal)
}

func TestLoadSemesterMapping_SkipsMalformedOrdinal(t *testing.T) {
	path := writeMappingFile(t,
		"Specific Semester,Broad Semester,Semester Order\n"+
			"Fall 1,Fall,1\n"+
			"Fall Flex,Fall,n/a\n"+
			",Fall,2\n")

	mapping, err := LoadSemesterMapping(path)
	require.NoError(t, err)
	require.Len(t, mapping, 1)

	_, ok := mapping.Lookup("Fall Flex")
	assert.False(t, ok, "rows with malformed ordinals fall through to alphabetical ordering")
}

func TestLoadSemesterMapping_MissingColumn(t *testing.T) {
	path := writeMappingFile(t,
		"Specific Semester,Broad Semester\n"+
			"Fall 1,Fall\n")

	_, err := LoadSemesterMapping(path)
	assert.Error(t, err)
}

func TestLoadSemesterMapping_MissingFile(t *testing.T) {
	_, err := LoadSemesterMapping(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
