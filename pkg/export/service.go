package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/dialdesk/dialdesk/pkg/leads"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/xuri/excelize/v2"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Service generates lead export files. Visibility goes through the lead
// service, so an export never contains rows the actor could not see in
// the grid.
type Service struct {
	leadService *leads.Service
	storagePath string
}

// NewService creates a new export service
func NewService(leadService *leads.Service, storagePath string) *Service {
	os.MkdirAll(storagePath, 0755)

	return &Service{
		leadService: leadService,
		storagePath: storagePath,
	}
}

// Result describes a finished export.
type Result struct {
	FilePath  string `json:"filePath"`
	Filename  string `json:"filename"`
	LeadCount int    `json:"leadCount"`
	Format    string `json:"format"`
}

// ExportProject writes the actor-visible leads of a project to a file
// in the requested format.
func (s *Service) ExportProject(ctx context.Context, actor policy.Actor, projectID int, format string) (*Result, error) {
	if format != FormatCSV && format != FormatXLSX {
		return nil, domain.NewValidationError("invalid format: must be csv or xlsx")
	}

	visible, err := s.leadService.ListForProject(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("leads-%d-%s.%s", projectID, timestamp, format)
	path := filepath.Join(s.storagePath, filename)

	var genErr error
	if format == FormatCSV {
		genErr = s.generateCSV(path, visible)
	} else {
		genErr = s.generateXLSX(path, visible)
	}
	if genErr != nil {
		return nil, domain.NewInternalError(genErr)
	}

	return &Result{
		FilePath:  path,
		Filename:  filename,
		LeadCount: len(visible),
		Format:    format,
	}, nil
}

var exportHeaders = []string{
	"ID", "Name", "Company", "Email", "Phone", "Mobile", "Corporate Phone",
	"Title", "Industry", "Revenue", "Employees", "State", "LinkedIn",
	"Website", "Status", "Deal Value", "Next Follow-Up", "Source", "Notes",
	"Created At",
}

func leadRow(l *ent.Lead) []string {
	followUp := ""
	if l.NextFollowUp != nil {
		followUp = l.NextFollowUp.Format("2006-01-02")
	}
	return []string{
		strconv.Itoa(l.ID),
		l.Name,
		l.Company,
		l.Email,
		l.Phone,
		l.Mobile,
		l.CorporatePhone,
		l.Title,
		l.Industry,
		l.Revenue,
		l.Employees,
		l.State,
		l.Linkedin,
		l.Website,
		l.Status,
		fmt.Sprintf("%.2f", l.DealValue),
		followUp,
		l.Source,
		l.Notes,
		l.CreatedAt.Format(time.RFC3339),
	}
}

// generateCSV generates a CSV file from leads
func (s *Service) generateCSV(path string, rows []*ent.Lead) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, l := range rows {
		if err := writer.Write(leadRow(l)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// generateXLSX generates an Excel file from leads
func (s *Service) generateXLSX(path string, rows []*ent.Lead) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Leads"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, l := range rows {
		for colIdx, value := range leadRow(l) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}
