package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bankshelf/bank"
)

func newBankCommand() *cobra.Command {
	var (
		name      string
		overdraft float64
		interest  float64
	)
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Interactive banking session over an in-memory bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()
			b := bank.NewNationalBank(name, bank.WithLogger(log))
			runBankSession(b, overdraft, interest)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "Capital Trust Bank", "bank name")
	cmd.Flags().Float64Var(&overdraft, "overdraft", bank.DefaultOverdraftLimit, "overdraft limit for new checking accounts")
	cmd.Flags().Float64Var(&interest, "interest", bank.DefaultInterestRate, "interest rate for new savings accounts")
	return cmd
}

func runBankSession(b *bank.Bank, overdraft, interest float64) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Welcome to %s!\n", b.Name())
	fmt.Println("Available commands:")
	fmt.Println("  Accounts: open, list, statement")
	fmt.Println("  Money: deposit, withdraw, interest")
	fmt.Println("  Export: export pdf, export xlsx")
	fmt.Println("  System: exit")

	for {
		cmd, ok := prompt(scanner, "\n> ")
		if !ok {
			return
		}
		switch cmd {
		case "open":
			handleOpenAccount(scanner, b, overdraft, interest)
		case "list":
			handleListAccounts(b)
		case "statement":
			handleStatement(scanner, b)
		case "deposit":
			handleDeposit(scanner, b)
		case "withdraw":
			handleWithdraw(scanner, b)
		case "interest":
			handleApplyInterest(scanner, b)
		case "export pdf":
			handleExportPDF(scanner, b)
		case "export xlsx":
			handleExportXLSX(scanner, b)
		case "exit":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

func handleOpenAccount(sc *bufio.Scanner, b *bank.Bank, overdraft, interest float64) {
	kind, ok := prompt(sc, "Holder kind (individual/business): ")
	if !ok {
		return
	}
	name, ok := prompt(sc, "Name: ")
	if !ok {
		return
	}
	address, ok := prompt(sc, "Address: ")
	if !ok {
		return
	}
	email, ok := prompt(sc, "Email: ")
	if !ok {
		return
	}

	var holder bank.AccountHolder
	switch kind {
	case "individual":
		dobStr, ok := prompt(sc, "Date of birth (YYYY-MM-DD): ")
		if !ok {
			return
		}
		dob, err := time.Parse("2006-01-02", dobStr)
		if err != nil {
			fmt.Printf("Invalid date: %v\n", err)
			return
		}
		holder = b.NewIndividualClient(name, address, email, dob)
	case "business":
		company, ok := prompt(sc, "Company name: ")
		if !ok {
			return
		}
		taxID, ok := prompt(sc, "Tax ID: ")
		if !ok {
			return
		}
		holder = b.NewBusinessClient(name, address, email, company, taxID)
	default:
		fmt.Printf("Unknown holder kind: %s\n", kind)
		return
	}

	typeStr, ok := prompt(sc, "Account type (checking/savings): ")
	if !ok {
		return
	}
	accountType, err := bank.ParseAccountType(typeStr)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	depositStr, ok := prompt(sc, "Initial deposit: ")
	if !ok {
		return
	}
	initialDeposit, err := strconv.ParseFloat(depositStr, 64)
	if err != nil {
		fmt.Printf("Invalid amount: %s\n", depositStr)
		return
	}

	account, err := b.OpenAccount(holder, accountType, initialDeposit,
		bank.WithOverdraftLimit(overdraft), bank.WithInterestRate(interest))
	if err != nil {
		fmt.Printf("Error opening account: %v\n", err)
		return
	}
	fmt.Printf("Opened new account: %s\n", account)
	fmt.Printf("Holder: %s\n", holder)
}

func handleListAccounts(b *bank.Bank) {
	accounts := b.Accounts()
	if len(accounts) == 0 {
		fmt.Println("No accounts in bank.")
		return
	}

	fmt.Printf("%-12s %-25s %-12s %-15s %s\n", "Number", "Holder", "Type", "Balance", "Transactions")
	fmt.Println(strings.Repeat("-", 80))
	for _, a := range accounts {
		fmt.Printf("%-12s %-25s %-12s $%-14.2f %d\n",
			a.AccountNumber(),
			truncateString(a.Holder().Name(), 25),
			a.Holder().HolderType(),
			a.Balance(),
			a.TransactionCount())
	}
}

func handleStatement(sc *bufio.Scanner, b *bank.Bank) {
	number, ok := prompt(sc, "Account number: ")
	if !ok {
		return
	}
	if err := b.WriteStatement(os.Stdout, number); err != nil {
		if errors.Is(err, bank.ErrAccountNotFound) {
			fmt.Println("Account not found.")
			return
		}
		fmt.Printf("Error: %v\n", err)
	}
}

// readAmount prompts for the account number and an amount.
func readAmount(sc *bufio.Scanner, b *bank.Bank) (bank.Account, float64, bool) {
	number, ok := prompt(sc, "Account number: ")
	if !ok {
		return nil, 0, false
	}
	account, found := b.FindAccount(number)
	if !found {
		fmt.Println("Account not found.")
		return nil, 0, false
	}
	amountStr, ok := prompt(sc, "Amount: ")
	if !ok {
		return nil, 0, false
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		fmt.Printf("Invalid amount: %s\n", amountStr)
		return nil, 0, false
	}
	return account, amount, true
}

func handleDeposit(sc *bufio.Scanner, b *bank.Bank) {
	account, amount, ok := readAmount(sc, b)
	if !ok {
		return
	}
	if err := account.Deposit(amount); err != nil {
		fmt.Printf("Deposit failed: %v\n", err)
		return
	}
	fmt.Printf("Deposited $%.2f. New balance: $%.2f\n", amount, account.Balance())
}

func handleWithdraw(sc *bufio.Scanner, b *bank.Bank) {
	account, amount, ok := readAmount(sc, b)
	if !ok {
		return
	}
	err := account.Withdraw(amount)
	switch {
	case errors.Is(err, bank.ErrOverdraftExceeded):
		fmt.Println("Withdrawal failed: Exceeds overdraft limit.")
	case errors.Is(err, bank.ErrInsufficientFunds):
		fmt.Println("Withdrawal failed: Insufficient funds.")
	case err != nil:
		fmt.Printf("Withdrawal failed: %v\n", err)
	default:
		fmt.Printf("Withdrew $%.2f. New balance: $%.2f\n", amount, account.Balance())
	}
}

func handleApplyInterest(sc *bufio.Scanner, b *bank.Bank) {
	number, ok := prompt(sc, "Account number: ")
	if !ok {
		return
	}
	account, found := b.FindAccount(number)
	if !found {
		fmt.Println("Account not found.")
		return
	}
	savings, isSavings := account.(*bank.SavingsAccount)
	if !isSavings {
		fmt.Println("Interest only applies to savings accounts.")
		return
	}
	interest := savings.ApplyInterest()
	if interest == 0 {
		fmt.Println("No interest to apply.")
		return
	}
	fmt.Printf("Applied $%.2f interest. New balance: $%.2f\n", interest, savings.Balance())
}

func handleExportPDF(sc *bufio.Scanner, b *bank.Bank) {
	number, ok := prompt(sc, "Account number: ")
	if !ok {
		return
	}
	path, ok := prompt(sc, "Output path (.pdf): ")
	if !ok {
		return
	}
	if err := b.ExportStatementPDF(number, path); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Statement written to %s\n", path)
}

func handleExportXLSX(sc *bufio.Scanner, b *bank.Bank) {
	number, ok := prompt(sc, "Account number: ")
	if !ok {
		return
	}
	path, ok := prompt(sc, "Output path (.xlsx): ")
	if !ok {
		return
	}
	if err := b.ExportTransactionsXLSX(number, path); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Transactions written to %s\n", path)
}
