package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bankshelf/library"
)

func newLibraryCommand() *cobra.Command {
	var (
		name    string
		address string
	)
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Interactive library session over an in-memory catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()
			lib := library.NewLibrary(name, address, library.WithLogger(log))
			runLibrarySession(lib)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "City Public Library", "library name")
	cmd.Flags().StringVar(&address, "address", "123 Main Street", "library address")
	return cmd
}

func runLibrarySession(lib *library.Library) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Welcome to %s!\n", lib.Name())
	fmt.Println("Available commands:")
	fmt.Println("  Catalog: add book, remove book, list books, search")
	fmt.Println("  Members: add member, find member")
	fmt.Println("  Circulation: checkout, return, overdue")
	fmt.Println("  Reporting: report, export report")
	fmt.Println("  System: exit")

	for {
		cmd, ok := prompt(scanner, "\n> ")
		if !ok {
			return
		}
		switch cmd {
		case "add book":
			handleAddBook(scanner, lib)
		case "remove book":
			handleRemoveBook(scanner, lib)
		case "list books":
			handleListBooks(lib)
		case "search":
			handleSearchBooks(scanner, lib)
		case "add member":
			handleAddMember(scanner, lib)
		case "find member":
			handleFindMember(scanner, lib)
		case "checkout":
			handleCheckout(scanner, lib)
		case "return":
			handleReturn(scanner, lib)
		case "overdue":
			handleOverdue(lib)
		case "report":
			handleReport(lib)
		case "export report":
			handleExportReport(scanner, lib)
		case "exit":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

func handleAddBook(sc *bufio.Scanner, lib *library.Library) {
	title, ok := prompt(sc, "Title: ")
	if !ok {
		return
	}
	author, ok := prompt(sc, "Author: ")
	if !ok {
		return
	}
	isbn, ok := prompt(sc, "ISBN: ")
	if !ok {
		return
	}
	if !library.IsValidISBN(isbn) {
		fmt.Printf("Warning: %q does not look like an ISBN, adding anyway.\n", isbn)
	}
	yearStr, ok := prompt(sc, "Publication year: ")
	if !ok {
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		fmt.Printf("Invalid year: %s\n", yearStr)
		return
	}
	genre, ok := prompt(sc, "Genre: ")
	if !ok {
		return
	}

	book := library.NewBook(title, author, isbn, year, genre)
	if !lib.AddBook(book) {
		fmt.Printf("A book with ISBN %s is already in the catalog.\n", isbn)
		return
	}
	fmt.Printf("Added %s\n", book)
}

func handleRemoveBook(sc *bufio.Scanner, lib *library.Library) {
	isbn, ok := prompt(sc, "ISBN: ")
	if !ok {
		return
	}
	err := lib.RemoveBook(isbn)
	switch {
	case errors.Is(err, library.ErrBookNotFound):
		fmt.Println("Book not found.")
	case errors.Is(err, library.ErrBookBorrowed):
		fmt.Println("Cannot remove a borrowed book. Wait for it to come back.")
	case err != nil:
		fmt.Printf("Error: %v\n", err)
	default:
		fmt.Printf("Removed book %s.\n", isbn)
	}
}

func handleListBooks(lib *library.Library) {
	books := lib.Books()
	if len(books) == 0 {
		fmt.Println("No books in library.")
		return
	}

	fmt.Printf("%-30s %-25s %-16s %-10s %s\n", "Title", "Author", "ISBN", "Available", "Borrower")
	fmt.Println(strings.Repeat("-", 100))
	for _, b := range books {
		borrower := "None"
		availStr := "Yes"
		if !b.IsAvailable() {
			availStr = "No"
			borrower = b.Borrower().String()
		}
		fmt.Printf("%-30s %-25s %-16s %-10s %s\n",
			truncateString(b.Title(), 30),
			truncateString(b.Author(), 25),
			b.ISBN(),
			availStr,
			borrower)
	}
}

func handleSearchBooks(sc *bufio.Scanner, lib *library.Library) {
	query, ok := prompt(sc, "Author contains: ")
	if !ok {
		return
	}
	books := lib.FindBooksByAuthor(query)
	if len(books) == 0 {
		fmt.Println("No matching books.")
		return
	}
	for _, b := range books {
		fmt.Println(b)
	}
}

func handleAddMember(sc *bufio.Scanner, lib *library.Library) {
	name, ok := prompt(sc, "Name: ")
	if !ok {
		return
	}
	email, ok := prompt(sc, "Email: ")
	if !ok {
		return
	}
	if !library.ValidEmail(email) {
		fmt.Printf("Invalid email: %s\n", email)
		return
	}
	phone, ok := prompt(sc, "Phone: ")
	if !ok {
		return
	}
	tierStr, ok := prompt(sc, "Membership (basic/premium/student): ")
	if !ok {
		return
	}
	tier, err := library.ParseMembershipType(tierStr)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	member, err := lib.NewMember(name, email, phone, tier)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	lib.AddMember(member)
	fmt.Printf("Added member %s (%s, quota %d)\n", member, member.MembershipType(), member.Quota())
}

func handleFindMember(sc *bufio.Scanner, lib *library.Library) {
	email, ok := prompt(sc, "Email: ")
	if !ok {
		return
	}
	member, found := lib.FindMemberByEmail(email)
	if !found {
		fmt.Println("Member not found.")
		return
	}
	fmt.Printf("%s - %s member, joined %d days ago\n", member, member.MembershipType(), member.MembershipDuration())
	books := lib.MemberBorrowedBooks(member)
	if len(books) == 0 {
		fmt.Println("No books currently borrowed.")
		return
	}
	for _, b := range books {
		due, _ := b.DueDate()
		fmt.Printf("  %s (due %s)\n", b, due.Format("2006-01-02"))
	}
}

func handleCheckout(sc *bufio.Scanner, lib *library.Library) {
	isbn, ok := prompt(sc, "ISBN: ")
	if !ok {
		return
	}
	email, ok := prompt(sc, "Member email: ")
	if !ok {
		return
	}
	member, found := lib.FindMemberByEmail(email)
	if !found {
		fmt.Println("Member not found.")
		return
	}
	daysStr, ok := prompt(sc, "Days (empty for default): ")
	if !ok {
		return
	}
	days := 0
	if daysStr != "" {
		var err error
		if days, err = strconv.Atoi(daysStr); err != nil {
			fmt.Printf("Invalid number of days: %s\n", daysStr)
			return
		}
	}

	if err := lib.Checkout(isbn, member, days); err != nil {
		fmt.Printf("Checkout failed: %v\n", err)
		return
	}
	book, _ := lib.FindBookByISBN(isbn)
	due, _ := book.DueDate()
	fmt.Printf("Checked out %s to %s, due %s\n", book.Title(), member.Name(), due.Format("2006-01-02"))
}

func handleReturn(sc *bufio.Scanner, lib *library.Library) {
	isbn, ok := prompt(sc, "ISBN: ")
	if !ok {
		return
	}
	member, err := lib.ReturnBook(isbn)
	if err != nil {
		fmt.Printf("Return failed: %v\n", err)
		return
	}
	fmt.Printf("Returned by %s. The book is available again.\n", member.Name())
}

func handleOverdue(lib *library.Library) {
	books := lib.OverdueBooks()
	if len(books) == 0 {
		fmt.Println("No overdue books.")
		return
	}
	for _, b := range books {
		due, _ := b.DueDate()
		fmt.Printf("%s - due %s\n", b, due.Format("2006-01-02"))
	}
}

func handleReport(lib *library.Library) {
	report := lib.GenerateReport()
	fmt.Printf("Library:         %s\n", report.LibraryName)
	fmt.Printf("Total books:     %d\n", report.TotalBooks)
	fmt.Printf("Available books: %d\n", report.AvailableBooks)
	fmt.Printf("Borrowed books:  %d\n", report.BorrowedBooks)
	fmt.Printf("Total members:   %d\n", report.TotalMembers)
	fmt.Printf("Overdue books:   %d\n", report.OverdueBooks)
}

func handleExportReport(sc *bufio.Scanner, lib *library.Library) {
	path, ok := prompt(sc, "Output path (.xlsx): ")
	if !ok {
		return
	}
	if err := lib.ExportReportXLSX(path); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Report written to %s\n", path)
}
