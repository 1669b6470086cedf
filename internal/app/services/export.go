package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/apperrors"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/metrics"
)

// Export formats.
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"
)

// ExportService renders a course's aggregated view (detail, statistics and
// occupancy matrix) as a downloadable document.
type ExportService struct {
	aggregation *AggregationService
}

// NewExportService creates the export renderer.
func NewExportService(aggregation *AggregationService) *ExportService {
	return &ExportService{aggregation: aggregation}
}

// CourseView renders the course's current view in the requested format and
// returns the document bytes with its content type.
func (s *ExportService) CourseView(courseID int64, showAllYears bool, format string) ([]byte, string, error) {
	detail := s.aggregation.Detail(courseID)
	if detail.Course.ID == 0 {
		return nil, "", fmt.Errorf("%w: id %d", apperrors.ErrCourseNotFound, courseID)
	}
	matrix := s.aggregation.Matrix(courseID, showAllYears)

	switch format {
	case ExportFormatXLSX:
		metrics.CountExport(ExportFormatXLSX)
		data, err := buildCourseXLSX(detail, matrix)
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	case ExportFormatPDF:
		metrics.CountExport(ExportFormatPDF)
		data, err := buildCoursePDF(detail, matrix)
		return data, "application/pdf", err
	default:
		return nil, "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedExportFormat, format)
	}
}

// buildCourseXLSX renders a two-sheet workbook: a summary sheet with the
// course identity and statistics, and a matrix sheet with one row per year
// and one column per broad semester.
func buildCourseXLSX(detail CourseDetail, matrix OccupancyMatrix) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	matrixSheet := "matrix"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(matrixSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Course History")
	_ = f.SetCellValue(summarySheet, "A3", "Code")
	_ = f.SetCellValue(summarySheet, "B3", detail.Course.Code)
	_ = f.SetCellValue(summarySheet, "A4", "Name")
	_ = f.SetCellValue(summarySheet, "B4", detail.Course.Name)
	_ = f.SetCellValue(summarySheet, "A5", "Years Listed")
	_ = f.SetCellValue(summarySheet, "B5", detail.Stats.YearsListed)
	_ = f.SetCellValue(summarySheet, "A6", "Total Offerings")
	_ = f.SetCellValue(summarySheet, "B6", detail.Stats.TotalOfferings)

	row := 7
	for _, broad := range models.BroadSemesters {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), string(broad))
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), detail.Stats.SemesterTotals[broad])
		row++
	}
	if detail.Listing != nil {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row+1), "Latest Catalog")
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row+1),
			fmt.Sprintf("%d-%d %s", detail.Listing.CatalogYear, detail.Listing.CatalogYear+1, detail.Listing.CatalogType))
	}

	_ = f.SetCellValue(matrixSheet, "A1", "Year")
	for i, broad := range models.BroadSemesters {
		column, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(matrixSheet, column+"1", string(broad))
	}
	statusColumn, err := excelize.ColumnNumberToName(len(models.BroadSemesters) + 2)
	if err != nil {
		return nil, err
	}
	_ = f.SetCellValue(matrixSheet, statusColumn+"1", "Status")

	for i, yearRow := range matrix.Years {
		rowNum := i + 2
		_ = f.SetCellValue(matrixSheet, fmt.Sprintf("A%d", rowNum), yearRow.Year)
		for j, cell := range yearRow.Cells {
			column, err := excelize.ColumnNumberToName(j + 2)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(matrixSheet, fmt.Sprintf("%s%d", column, rowNum), cell.Count)
		}
		_ = f.SetCellValue(matrixSheet, fmt.Sprintf("%s%d", statusColumn, rowNum), string(yearRow.Classification))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildCoursePDF renders a minimal PDF of the same view.
func buildCoursePDF(detail CourseDetail, matrix OccupancyMatrix) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Course History")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Code: %s", detail.Course.Code))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Name: %s", detail.Course.Name))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Years Listed: %d", detail.Stats.YearsListed))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Offerings: %d", detail.Stats.TotalOfferings))
	pdf.Ln(5)
	for _, broad := range models.BroadSemesters {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d", broad, detail.Stats.SemesterTotals[broad]))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// Matrix table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(25, 6, "Year", "1", 0, "C", false, 0, "")
	for _, broad := range models.BroadSemesters {
		pdf.CellFormat(30, 6, string(broad), "1", 0, "C", false, 0, "")
	}
	pdf.CellFormat(30, 6, "Status", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, yearRow := range matrix.Years {
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", yearRow.Year), "1", 0, "C", false, 0, "")
		for _, cell := range yearRow.Cells {
			pdf.CellFormat(30, 6, fmt.Sprintf("%d", cell.Count), "1", 0, "R", false, 0, "")
		}
		pdf.CellFormat(30, 6, string(yearRow.Classification), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
