package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bankshelf/bank"
	"bankshelf/library"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Scripted walkthrough of the bank and library domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()
			runBankDemo(log)
			fmt.Println()
			runLibraryDemo(log)
			return nil
		},
	}
}

func runBankDemo(log *zap.Logger) {
	fmt.Println("--- Setting up the Bank ---")
	myBank := bank.NewNationalBank("Capital Trust Bank", bank.WithLogger(log))

	fmt.Println("\n--- Creating Clients ---")
	alice := myBank.NewIndividualClient("Alice Smith", "123 Oak St", "alice@email.com",
		time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC))
	bobs := myBank.NewBusinessClient("Bob's Burgers", "456 Pine Ave", "contact@bobsburgers.com",
		"Bob's Burgers LLC", "B-TAX-12345")
	fmt.Printf("Created client: %s\n", alice)
	fmt.Printf("Created client: %s\n", bobs)
	fmt.Printf("Total account holders now: %d\n", myBank.TotalHolders())

	fmt.Println("\n--- Opening Accounts ---")
	aliceChecking, err := myBank.OpenAccount(alice, bank.Checking, 1000, bank.WithOverdraftLimit(250))
	if err != nil {
		fmt.Fprintf(os.Stderr, "open checking: %v\n", err)
		return
	}
	bobsSavings, err := myBank.OpenAccount(bobs, bank.Savings, 5000, bank.WithInterestRate(0.02))
	if err != nil {
		fmt.Fprintf(os.Stderr, "open savings: %v\n", err)
		return
	}
	fmt.Printf("Opened new account: %s\n", aliceChecking)
	fmt.Printf("Opened new account: %s\n", bobsSavings)
	fmt.Printf("Bank now has %d accounts.\n", myBank.Len())

	fmt.Println("\n--- Performing Transactions ---")
	fmt.Printf("Alice's initial balance: $%.2f\n", aliceChecking.Balance())
	aliceChecking.Deposit(200)
	fmt.Println("Deposited $200.")
	aliceChecking.Withdraw(50)
	fmt.Println("Withdrew $50.")
	fmt.Printf("Alice's balance: $%.2f\n", aliceChecking.Balance())

	fmt.Println("\nAttempting to overdraw...")
	fmt.Println("Attempting to withdraw $1500 (should fail)...")
	if err := aliceChecking.Withdraw(1500); err != nil {
		fmt.Printf("Denied: %v\n", err)
	}
	fmt.Println("Attempting to withdraw $1300 (should succeed with overdraft)...")
	if err := aliceChecking.Withdraw(1300); err == nil {
		fmt.Printf("Alice's new balance after overdraft: $%.2f\n", aliceChecking.Balance())
	}

	fmt.Println("\n--- Applying Interest ---")
	fmt.Printf("Bob's Burgers initial balance: $%.2f\n", bobsSavings.Balance())
	savings := bobsSavings.(*bank.SavingsAccount)
	interest := savings.ApplyInterest()
	fmt.Printf("Applied $%.2f interest.\n", interest)
	fmt.Printf("Bob's Burgers new balance: $%.2f\n", bobsSavings.Balance())

	fmt.Println("\n--- Generating Statements ---")
	myBank.WriteStatement(os.Stdout, aliceChecking.AccountNumber())
	myBank.WriteStatement(os.Stdout, bobsSavings.AccountNumber())

	fmt.Println("\n--- Validating Account Numbers ---")
	for _, n := range []string{"1234567890", "12345"} {
		fmt.Printf("Is %q a valid account number? %t\n", n, bank.IsValidAccountNumber(n))
	}
}

func runLibraryDemo(log *zap.Logger) {
	fmt.Println("--- Setting up the Library ---")
	lib := library.NewDefaultLibrary(library.WithLogger(log))

	fmt.Println("\n--- Creating Books ---")
	book1 := library.NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	book2, err := library.FromJSON([]byte(`{
		"title": "Data Structures",
		"author": "Jane Doe",
		"isbn": "978-9876543210",
		"publication_year": 2022,
		"genre": "Computer Science"
	}`))
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode book: %v\n", err)
		return
	}

	fmt.Println("\n--- Creating Members and Staff ---")
	member1, err := lib.NewMember("Alice Johnson", "alice@email.com", "1234567890", library.MembershipPremium)
	if err != nil {
		fmt.Fprintf(os.Stderr, "new member: %v\n", err)
		return
	}
	member2 := lib.NewStudentMember("Bob Wilson", "bob@student.edu", "0987654321")
	carol := lib.NewLibrarian("Carol Admin", "carol@library.gov", "5555555555", "EMP001", "IT")

	lib.AddBook(book1)
	lib.AddBook(book2)
	lib.AddMember(member1)
	lib.AddMember(member2)
	lib.AddLibrarian(carol)
	carol.AddBookToCatalog(book1)

	fmt.Println("\n--- Borrowing ---")
	if err := lib.Checkout(book1.ISBN(), member1, 0); err != nil {
		fmt.Fprintf(os.Stderr, "checkout: %v\n", err)
		return
	}

	fmt.Printf("Library: %s\n", lib)
	fmt.Printf("Member permissions: %v\n", member1.Permissions())
	fmt.Printf("Librarian permissions: %v\n", carol.Permissions())
	fmt.Printf("Book status: %s\n", book1)
	fmt.Printf("Library report: %+v\n", lib.GenerateReport())

	fmt.Println("\n--- Validation ---")
	if err := member1.SetEmail("invalid_email"); err != nil {
		fmt.Printf("Email validation works: %v\n", err)
	}
	fmt.Printf("Valid ISBN: %t\n", library.IsValidISBN("978-0123456789"))
	fmt.Printf("Valid email: %t\n", library.ValidEmail("test@example.com"))
}
