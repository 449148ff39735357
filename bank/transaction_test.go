package bank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionStringForms(t *testing.T) {
	tx := newTransaction(1234.5, TypeDeposit, "Client Deposit")

	s := tx.String()
	assert.Contains(t, s, "DEPOSIT")
	assert.Contains(t, s, "$1,234.50")
	assert.Contains(t, s, "(Client Deposit)")

	assert.Equal(t, `Transaction(amount=1234.5, type="DEPOSIT")`, tx.GoString())
}

func TestTransactionIDsAreUnique(t *testing.T) {
	a := newTransaction(10, TypeFee, "monthly fee")
	b := newTransaction(10, TypeFee, "monthly fee")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, TypeFee, a.Type())
	assert.False(t, a.Timestamp().IsZero())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{1234.56, "1,234.56"},
		{1000000, "1,000,000.00"},
		{-150, "-150.00"},
		{-1234.5, "-1,234.50"},
		{999.999, "1,000.00"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in), "input %v", tt.in)
	}
}
