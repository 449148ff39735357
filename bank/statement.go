package bank

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// WriteStatement renders a detailed statement block for the account to w:
// account number, holder identity, current balance and the full
// transaction history.
func (b *Bank) WriteStatement(w io.Writer, number string) error {
	account, ok := b.FindAccount(number)
	if !ok {
		b.log.Warn("statement requested for unknown account", zap.String("account", number))
		return fmt.Errorf("statement for %s: %w", number, ErrAccountNotFound)
	}

	divider := strings.Repeat("-", 60)
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Statement for Account: %s\n", account.AccountNumber())
	fmt.Fprintf(w, "Holder: %s (%s)\n", account.Holder().Name(), account.Holder().HolderType())
	fmt.Fprintf(w, "Current Balance: $%s\n", formatAmount(account.Balance()))
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "Transaction History:")
	history := account.History()
	if len(history) == 0 {
		fmt.Fprintln(w, "No transactions to display.")
	}
	for _, tx := range history {
		fmt.Fprintln(w, tx)
	}
	fmt.Fprintln(w, divider)
	return nil
}

// Statement returns the formatted statement block as a string.
func (b *Bank) Statement(number string) (string, error) {
	var sb strings.Builder
	if err := b.WriteStatement(&sb, number); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ExportStatementPDF writes the account's statement as a PDF file at
// path.
func (b *Bank) ExportStatementPDF(number, path string) error {
	account, ok := b.FindAccount(number)
	if !ok {
		return fmt.Errorf("export pdf for %s: %w", number, ErrAccountNotFound)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("%s - Account Statement", b.name))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Account: %s", account.AccountNumber()))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Holder: %s (%s)", account.Holder().Name(), account.Holder().HolderType()))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Balance: $%s", formatAmount(account.Balance())))
	pdf.Ln(10)

	// Table header
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(45, 7, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, 7, "Type", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 0, "", false, 0, "")
	pdf.CellFormat(75, 7, "Description", "1", 0, "", false, 0, "")
	pdf.Ln(7)

	// Table rows
	pdf.SetFont("Arial", "", 12)
	for _, tx := range account.History() {
		pdf.CellFormat(45, 7, tx.Timestamp().Format("2006-01-02 15:04:05"), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, string(tx.Type()), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, strconv.FormatFloat(tx.Amount(), 'f', 2, 64), "1", 0, "", false, 0, "")
		pdf.CellFormat(75, 7, tx.Description(), "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}

	return pdf.OutputFileAndClose(path)
}

// ExportTransactionsXLSX writes the account's transaction history as an
// XLSX workbook at path.
func (b *Bank) ExportTransactionsXLSX(number, path string) error {
	account, ok := b.FindAccount(number)
	if !ok {
		return fmt.Errorf("export xlsx for %s: %w", number, ErrAccountNotFound)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range []string{"ID", "Date", "Type", "Amount", "Description"} {
		header.AddCell().SetValue(h)
	}
	for _, tx := range account.History() {
		row := sheet.AddRow()
		row.AddCell().SetValue(tx.ID().String())
		row.AddCell().SetValue(tx.Timestamp().Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(string(tx.Type()))
		row.AddCell().SetValue(tx.Amount())
		row.AddCell().SetValue(tx.Description())
	}

	return file.Save(path)
}
