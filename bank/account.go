package bank

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Default terms for new accounts. OpenAccount options override these.
const (
	DefaultOverdraftLimit = 100.0
	DefaultInterestRate   = 0.015
)

// Account is the balance-holding side of the domain. Deposit behaves the
// same for every account kind; Withdraw is where each kind applies its
// own admission policy.
type Account interface {
	AccountNumber() string
	Holder() AccountHolder
	Balance() float64
	Deposit(amount float64) error
	Withdraw(amount float64) error
	History() []Transaction
	TransactionCount() int
	fmt.Stringer
}

// baseAccount holds the state common to all account kinds: the assigned
// number, the (non-owning) holder reference, the balance and the
// append-only transaction history.
type baseAccount struct {
	number  string
	holder  AccountHolder
	balance float64
	history []Transaction
	log     *zap.Logger
}

func newBaseAccount(number string, holder AccountHolder, initialBalance float64, log *zap.Logger) baseAccount {
	a := baseAccount{number: number, holder: holder, balance: initialBalance, log: log}
	if initialBalance > 0 {
		a.record(initialBalance, TypeDeposit, "Initial Deposit")
	}
	return a
}

func (a *baseAccount) record(amount float64, txType TransactionType, description string) {
	a.history = append(a.history, newTransaction(amount, txType, description))
}

func (a *baseAccount) AccountNumber() string { return a.number }
func (a *baseAccount) Holder() AccountHolder { return a.holder }
func (a *baseAccount) Balance() float64      { return a.balance }

// validAmount reports whether v is a positive, finite dollar amount.
// NaN and ±Inf are rejected; NaN in particular compares false against
// zero, so a plain v > 0 guard would let it through.
func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Deposit credits the account. The amount must be positive and finite.
func (a *baseAccount) Deposit(amount float64) error {
	if !validAmount(amount) {
		return fmt.Errorf("deposit: %w", ErrNonPositiveAmount)
	}
	a.balance += amount
	a.record(amount, TypeDeposit, "Client Deposit")
	return nil
}

// History returns a copy of the transaction history so callers cannot
// alter the account's record through it.
func (a *baseAccount) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// TransactionCount is the number of transactions recorded on the account.
func (a *baseAccount) TransactionCount() int { return len(a.history) }

// CheckingAccount is a standard checking account with an overdraft limit.
type CheckingAccount struct {
	baseAccount
	overdraftLimit float64
}

// OverdraftLimit is the additional negative-balance allowance before a
// withdrawal is denied.
func (a *CheckingAccount) OverdraftLimit() float64 { return a.overdraftLimit }

// Withdraw debits the account, allowing the balance to go negative up to
// the overdraft limit. A denied withdrawal leaves the account unchanged
// and returns ErrOverdraftExceeded.
func (a *CheckingAccount) Withdraw(amount float64) error {
	if !validAmount(amount) {
		return fmt.Errorf("withdraw: %w", ErrNonPositiveAmount)
	}
	if a.balance+a.overdraftLimit < amount {
		a.log.Warn("withdrawal denied: exceeds overdraft limit",
			zap.String("account", a.number),
			zap.Float64("amount", amount),
			zap.Float64("balance", a.balance),
			zap.Float64("overdraft_limit", a.overdraftLimit))
		return ErrOverdraftExceeded
	}
	a.balance -= amount
	a.record(amount, TypeWithdrawal, "Withdrawal")
	return nil
}

func (a *CheckingAccount) String() string {
	return fmt.Sprintf("CheckingAccount (%s) - Balance: $%s", a.number, formatAmount(a.balance))
}

// SavingsAccount is a savings account that accrues interest. Withdrawals
// never dip below zero.
type SavingsAccount struct {
	baseAccount
	interestRate float64
}

// InterestRate is the per-period interest rate, e.g. 0.02 for 2%.
func (a *SavingsAccount) InterestRate() float64 { return a.interestRate }

// Withdraw debits the account. No overdraft is allowed; an amount above
// the balance returns ErrInsufficientFunds and leaves the account
// unchanged.
func (a *SavingsAccount) Withdraw(amount float64) error {
	if !validAmount(amount) {
		return fmt.Errorf("withdraw: %w", ErrNonPositiveAmount)
	}
	if a.balance < amount {
		a.log.Warn("withdrawal denied: insufficient funds",
			zap.String("account", a.number),
			zap.Float64("amount", amount),
			zap.Float64("balance", a.balance))
		return ErrInsufficientFunds
	}
	a.balance -= amount
	a.record(amount, TypeWithdrawal, "Withdrawal")
	return nil
}

// ApplyInterest credits one period of interest and returns the amount
// credited. Nothing is recorded when the computed interest is not
// positive, which covers zero and negative balances.
func (a *SavingsAccount) ApplyInterest() float64 {
	interest := a.balance * a.interestRate
	if interest <= 0 {
		return 0
	}
	a.balance += interest
	a.record(interest, TypeInterest, fmt.Sprintf("Interest at %.2f%%", a.interestRate*100))
	a.log.Info("interest applied",
		zap.String("account", a.number),
		zap.Float64("interest", interest),
		zap.Float64("balance", a.balance))
	return interest
}

func (a *SavingsAccount) String() string {
	return fmt.Sprintf("SavingsAccount (%s) - Balance: $%s", a.number, formatAmount(a.balance))
}
