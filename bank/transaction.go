package bank

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType tags a transaction with the kind of balance change it
// records.
type TransactionType string

const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
	TypeInterest   TransactionType = "INTEREST"
	TypeFee        TransactionType = "FEE"
)

// Transaction is an immutable record of one balance-affecting event on an
// account. Transactions are created by the account that they belong to and
// never change afterwards.
type Transaction struct {
	id          uuid.UUID
	amount      float64
	txType      TransactionType
	timestamp   time.Time
	description string
}

func newTransaction(amount float64, txType TransactionType, description string) Transaction {
	return Transaction{
		id:          uuid.New(),
		amount:      amount,
		txType:      txType,
		timestamp:   time.Now(),
		description: description,
	}
}

func (t Transaction) ID() uuid.UUID         { return t.id }
func (t Transaction) Amount() float64       { return t.amount }
func (t Transaction) Type() TransactionType { return t.txType }
func (t Transaction) Timestamp() time.Time  { return t.timestamp }
func (t Transaction) Description() string   { return t.description }

// String renders the compact single-line form used in statements.
func (t Transaction) String() string {
	return fmt.Sprintf("%s - %-10s - $%s (%s)",
		t.timestamp.Format("2006-01-02 15:04"), t.txType, formatAmount(t.amount), t.description)
}

// GoString is the diagnostic form echoing the fields a transaction was
// created from.
func (t Transaction) GoString() string {
	return fmt.Sprintf("Transaction(amount=%v, type=%q)", t.amount, t.txType)
}

// formatAmount renders a dollar amount with two decimals and thousands
// separators, e.g. "1,234.56".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if !strings.Contains(s, ".") {
		// NaN and ±Inf have no decimal point and need no grouping.
		return s
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
