package bank

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportStatementPDF(t *testing.T) {
	b := NewBank("Test Bank")
	holder := b.NewIndividualClient("Alice Smith", "123 Oak St", "alice@email.com",
		time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC))
	account, err := b.OpenAccount(holder, Checking, 1000)
	require.NoError(t, err)
	require.NoError(t, account.Deposit(200))

	path := filepath.Join(t.TempDir(), "statement.pdf")
	require.NoError(t, b.ExportStatementPDF(account.AccountNumber(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportTransactionsXLSX(t *testing.T) {
	b := NewBank("Test Bank")
	holder := b.NewBusinessClient("Bob's Burgers", "456 Pine Ave", "contact@bobsburgers.com",
		"Bob's Burgers LLC", "B-TAX-12345")
	account, err := b.OpenAccount(holder, Savings, 5000, WithInterestRate(0.02))
	require.NoError(t, err)
	account.(*SavingsAccount).ApplyInterest()

	path := filepath.Join(t.TempDir(), "transactions.xlsx")
	require.NoError(t, b.ExportTransactionsXLSX(account.AccountNumber(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportUnknownAccount(t *testing.T) {
	b := NewBank("Test Bank")
	dir := t.TempDir()

	assert.ErrorIs(t, b.ExportStatementPDF("0000000000", filepath.Join(dir, "s.pdf")), ErrAccountNotFound)
	assert.ErrorIs(t, b.ExportTransactionsXLSX("0000000000", filepath.Join(dir, "t.xlsx")), ErrAccountNotFound)
}
