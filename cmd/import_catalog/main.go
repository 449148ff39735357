package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bankshelf/library"
)

// import_catalog loads a JSON catalog file (an array of book records)
// into a fresh in-memory library and prints what it found. Useful for
// eyeballing a catalog file before wiring it into a session.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <catalog.json>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}
	path := os.Args[1]

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		os.Exit(1)
	}

	var records []library.Record
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding catalog: %v\n", err)
		os.Exit(1)
	}

	lib := library.NewDefaultLibrary()

	successCount := 0
	skippedCount := 0
	for _, rec := range records {
		if !library.IsValidISBN(rec.ISBN) {
			fmt.Printf("Warning: %q has no valid ISBN, skipping\n", rec.Title)
			skippedCount++
			continue
		}
		book := library.NewBook(rec.Title, rec.Author, rec.ISBN, rec.PublicationYear, rec.Genre)
		if !lib.AddBook(book) {
			fmt.Printf("Warning: duplicate ISBN %s, skipping %q\n", rec.ISBN, rec.Title)
			skippedCount++
			continue
		}
		fmt.Printf("Imported: %s by %s (ISBN %s)\n", book.Title(), book.Author(), book.ISBN())
		successCount++
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d books\n", successCount)
	fmt.Printf("Skipped: %d\n", skippedCount)

	if successCount > 0 {
		fmt.Println("\nImported books:")
		fmt.Printf("%-40s %-25s %-16s\n", "Title", "Author", "ISBN")
		fmt.Println(strings.Repeat("-", 85))
		for _, book := range lib.Books() {
			fmt.Printf("%-40s %-25s %-16s\n",
				truncateString(book.Title(), 40),
				truncateString(book.Author(), 25),
				book.ISBN())
		}
		fmt.Printf("\nReport: %+v\n", lib.GenerateReport())
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
