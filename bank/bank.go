// Package bank models a small retail bank: account holders, checking and
// savings accounts with their transaction histories, and the Bank
// aggregator that owns them. All state is in memory and owned by the
// Bank.
package bank

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"bankshelf/ident"
)

const accountNumberLength = 10

// AccountType selects the kind of account OpenAccount creates.
type AccountType string

const (
	Checking AccountType = "checking"
	Savings  AccountType = "savings"
)

// ParseAccountType maps a type tag to an AccountType, ignoring case.
// Unrecognized tags return ErrUnknownAccountType.
func ParseAccountType(s string) (AccountType, error) {
	at := AccountType(strings.ToLower(s))
	if _, ok := openers[at]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountType, s)
	}
	return at, nil
}

// accountOptions are the per-account terms OpenAccount applies.
type accountOptions struct {
	overdraftLimit float64
	interestRate   float64
}

// AccountOption customizes the account being opened.
type AccountOption func(*accountOptions)

// WithOverdraftLimit sets the overdraft limit for a new checking account.
func WithOverdraftLimit(limit float64) AccountOption {
	return func(o *accountOptions) { o.overdraftLimit = limit }
}

// WithInterestRate sets the interest rate for a new savings account.
func WithInterestRate(rate float64) AccountOption {
	return func(o *accountOptions) { o.interestRate = rate }
}

// openers maps each account type to its constructor. Registering the
// constructors here replaces dispatching on raw tag strings.
var openers = map[AccountType]func(number string, holder AccountHolder, initialDeposit float64, opts accountOptions, log *zap.Logger) Account{
	Checking: func(number string, holder AccountHolder, initialDeposit float64, opts accountOptions, log *zap.Logger) Account {
		return &CheckingAccount{
			baseAccount:    newBaseAccount(number, holder, initialDeposit, log),
			overdraftLimit: opts.overdraftLimit,
		}
	},
	Savings: func(number string, holder AccountHolder, initialDeposit float64, opts accountOptions, log *zap.Logger) Account {
		return &SavingsAccount{
			baseAccount:  newBaseAccount(number, holder, initialDeposit, log),
			interestRate: opts.interestRate,
		}
	},
}

// Bank owns every client and account, dispatches account creation and
// produces statements. A Bank grows monotonically: accounts are never
// removed.
type Bank struct {
	name      string
	accounts  map[string]Account       // keyed by account number
	clients   map[string]AccountHolder // keyed by holder ID
	holderIDs *ident.Sequence
	rng       *rand.Rand
	log       *zap.Logger
}

// Option configures a Bank.
type Option func(*Bank)

// WithLogger sets the logger for the bank and the accounts it opens.
func WithLogger(log *zap.Logger) Option {
	return func(b *Bank) { b.log = log }
}

// NewBank creates an empty bank.
func NewBank(name string, opts ...Option) *Bank {
	b := &Bank{
		name:      name,
		accounts:  make(map[string]Account),
		clients:   make(map[string]AccountHolder),
		holderIDs: ident.NewSequence("HOLDER-", 4),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewNationalBank creates a bank with default settings and announces it.
func NewNationalBank(name string, opts ...Option) *Bank {
	b := NewBank(name, opts...)
	b.log.Info("initializing national bank", zap.String("name", name))
	return b
}

// Name is the bank's display name.
func (b *Bank) Name() string { return b.name }

// NewIndividualClient creates a personal client with an identifier from
// this bank's sequence. The client is recorded with the bank once an
// account is opened for it.
func (b *Bank) NewIndividualClient(name, address, email string, dateOfBirth time.Time) *IndividualClient {
	return &IndividualClient{
		holderBase:  newHolderBase(b.holderIDs, name, address, email),
		dateOfBirth: dateOfBirth,
	}
}

// NewBusinessClient creates a business client with an identifier from
// this bank's sequence.
func (b *Bank) NewBusinessClient(name, address, email, companyName, taxID string) *BusinessClient {
	return &BusinessClient{
		holderBase:  newHolderBase(b.holderIDs, name, address, email),
		companyName: companyName,
		taxID:       taxID,
	}
}

// TotalHolders is the number of holders this bank has created.
func (b *Bank) TotalHolders() int { return int(b.holderIDs.Count()) }

// OpenAccount registers the holder if it is new, creates an account of
// the requested type under a fresh account number and stores it. An
// unrecognized account type is a failure: no account is created and the
// bank's records stay unchanged apart from the holder registration.
func (b *Bank) OpenAccount(holder AccountHolder, accountType AccountType, initialDeposit float64, opts ...AccountOption) (Account, error) {
	if _, registered := b.clients[holder.HolderID()]; !registered {
		b.clients[holder.HolderID()] = holder
	}

	open, ok := openers[accountType]
	if !ok {
		b.log.Warn("invalid account type", zap.String("type", string(accountType)))
		return nil, fmt.Errorf("open account: %w: %q", ErrUnknownAccountType, accountType)
	}

	options := accountOptions{
		overdraftLimit: DefaultOverdraftLimit,
		interestRate:   DefaultInterestRate,
	}
	for _, opt := range opts {
		opt(&options)
	}

	number := b.newAccountNumber()
	account := open(number, holder, initialDeposit, options, b.log)
	b.accounts[number] = account

	b.log.Info("account opened",
		zap.String("account", number),
		zap.String("type", string(accountType)),
		zap.String("holder", holder.HolderID()),
		zap.Float64("initial_deposit", initialDeposit))
	return account, nil
}

// newAccountNumber draws random 10-digit numbers until one is free. The
// retry loop closes the collision window that purely random generation
// leaves open.
func (b *Bank) newAccountNumber() string {
	for {
		digits := make([]byte, accountNumberLength)
		for i := range digits {
			digits[i] = byte('0' + b.rng.Intn(10))
		}
		number := string(digits)
		if _, taken := b.accounts[number]; !taken {
			return number
		}
	}
}

// FindAccount looks up an account by number. A missing number is not an
// error; the second return value reports whether the account exists.
func (b *Bank) FindAccount(number string) (Account, bool) {
	a, ok := b.accounts[number]
	return a, ok
}

// Accounts returns the bank's accounts ordered by account number.
func (b *Bank) Accounts() []Account {
	out := make([]Account, 0, len(b.accounts))
	for _, a := range b.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountNumber() < out[j].AccountNumber() })
	return out
}

// Len is the number of accounts the bank holds.
func (b *Bank) Len() int { return len(b.accounts) }

// HasAccount reports whether the account is in the bank's records.
func (b *Bank) HasAccount(a Account) bool {
	if a == nil {
		return false
	}
	_, ok := b.accounts[a.AccountNumber()]
	return ok
}

// HasHolder reports whether the holder is registered with the bank.
func (b *Bank) HasHolder(h AccountHolder) bool {
	if h == nil {
		return false
	}
	_, ok := b.clients[h.HolderID()]
	return ok
}

// IsValidAccountNumber reports whether s has the account number shape:
// exactly ten ASCII digits.
func IsValidAccountNumber(s string) bool {
	if len(s) != accountNumberLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
