package usecase

import (
	"bytes"
	"context"
	"fmt"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"time"

	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{"APPLICANT", "STATUS", "APPLIED DATE", "COVER LETTER", "RESUME"}

// ExportForJob renders every application to a job owned by the caller into an
// XLSX workbook
func (uc *applicationUsecase) ExportForJob(ctx context.Context, actor domain.Identity, jobID string) (*domain.ApplicationExport, error) {
	apps, err := uc.ownedJobApplications(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}

	content, err := renderApplicationsWorkbook(apps)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ApplicationExport{
		Filename: fmt.Sprintf("applications_%s_%s.xlsx", jobID, uc.now().UTC().Format("20060102_150405")),
		Content:  content,
	}, nil
}

func renderApplicationsWorkbook(apps []domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applications"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		values := []interface{}{
			app.ApplicantName,
			string(app.Status),
			app.AppliedDate.Format(time.RFC3339),
			app.CoverLetter,
			app.Resume,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 24)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
