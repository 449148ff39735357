package library

import (
	"fmt"

	"github.com/tealeg/xlsx"
)

// Report is a library-wide statistics snapshot.
type Report struct {
	LibraryName    string `json:"library_name"`
	TotalBooks     int    `json:"total_books"`
	AvailableBooks int    `json:"available_books"`
	BorrowedBooks  int    `json:"borrowed_books"`
	TotalMembers   int    `json:"total_members"`
	OverdueBooks   int    `json:"overdue_books"`
}

// GenerateReport counts the catalog and the roster.
func (l *Library) GenerateReport() Report {
	available := 0
	overdue := 0
	for _, b := range l.books {
		if b.IsAvailable() {
			available++
		}
		if b.IsOverdue() {
			overdue++
		}
	}
	return Report{
		LibraryName:    l.name,
		TotalBooks:     len(l.books),
		AvailableBooks: available,
		BorrowedBooks:  len(l.books) - available,
		TotalMembers:   len(l.members),
		OverdueBooks:   overdue,
	}
}

// ExportReportXLSX writes the report as a one-sheet XLSX workbook at
// path.
func (l *Library) ExportReportXLSX(path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Report")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	report := l.GenerateReport()
	rows := []struct {
		label string
		value interface{}
	}{
		{"Library", report.LibraryName},
		{"Total books", report.TotalBooks},
		{"Available books", report.AvailableBooks},
		{"Borrowed books", report.BorrowedBooks},
		{"Total members", report.TotalMembers},
		{"Overdue books", report.OverdueBooks},
	}
	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().SetValue(r.label)
		row.AddCell().SetValue(r.value)
	}

	return file.Save(path)
}
