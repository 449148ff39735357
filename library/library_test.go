package library

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCirculationScenario(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	require.True(t, lib.AddBook(book))

	alice, err := lib.NewMember("Alice Johnson", "alice@email.com", "1234567890", MembershipPremium)
	require.NoError(t, err)
	require.True(t, lib.AddMember(alice))

	require.NoError(t, lib.Checkout(book.ISBN(), alice, 0))
	assert.False(t, book.IsAvailable())
	assert.Equal(t, []string{book.ISBN()}, alice.BorrowedBooks())

	borrowed := lib.MemberBorrowedBooks(alice)
	require.Len(t, borrowed, 1)
	assert.Same(t, book, borrowed[0])

	// A borrowed book cannot be removed.
	assert.ErrorIs(t, lib.RemoveBook(book.ISBN()), ErrBookBorrowed)
	assert.Equal(t, 1, lib.Len())

	returnedBy, err := lib.ReturnBook(book.ISBN())
	require.NoError(t, err)
	assert.Same(t, alice, returnedBy)
	assert.True(t, book.IsAvailable())
	assert.Empty(t, alice.BorrowedBooks())

	require.NoError(t, lib.RemoveBook(book.ISBN()))
	assert.Zero(t, lib.Len())
}

func TestCheckoutDenials(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	require.True(t, lib.AddBook(book))

	alice, err := lib.NewMember("Alice", "alice@email.com", "1234567890", MembershipBasic)
	require.NoError(t, err)
	require.True(t, lib.AddMember(alice))

	stranger, err := lib.NewMember("Eve", "eve@email.com", "1234567890", MembershipBasic)
	require.NoError(t, err)

	assert.ErrorIs(t, lib.Checkout("no-such-isbn", alice, 0), ErrBookNotFound)
	assert.ErrorIs(t, lib.Checkout(book.ISBN(), stranger, 0), ErrMemberNotRegistered)

	require.NoError(t, lib.Checkout(book.ISBN(), alice, 0))
	bob := lib.NewStudentMember("Bob", "bob@student.edu", "0987654321")
	require.True(t, lib.AddMember(bob))
	assert.ErrorIs(t, lib.Checkout(book.ISBN(), bob, 0), ErrBookUnavailable)
}

func TestCheckoutQuotaKeepsBookAvailable(t *testing.T) {
	lib := NewDefaultLibrary()
	alice, err := lib.NewMember("Alice", "alice@email.com", "1234567890", MembershipBasic)
	require.NoError(t, err)
	require.True(t, lib.AddMember(alice))

	for i := 0; i < 4; i++ {
		book := NewBook(fmt.Sprintf("Book %d", i), "Author", fmt.Sprintf("11111%05d", i), 2020, "X")
		require.True(t, lib.AddBook(book))
	}

	books := lib.Books()
	for i := 0; i < 3; i++ {
		require.NoError(t, lib.Checkout(books[i].ISBN(), alice, 0))
	}

	err = lib.Checkout(books[3].ISBN(), alice, 0)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.True(t, books[3].IsAvailable(), "denied checkout must leave the book untouched")
	assert.Len(t, alice.BorrowedBooks(), 3)
}

func TestReturnDenials(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	require.True(t, lib.AddBook(book))

	_, err := lib.ReturnBook("no-such-isbn")
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = lib.ReturnBook(book.ISBN())
	assert.ErrorIs(t, err, ErrBookNotBorrowed)
}

func TestAddBookDuplicate(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	other := NewBook("Different Title", "Jane Doe", "978-0123456789", 2020, "Other")

	assert.True(t, lib.AddBook(book))
	assert.False(t, lib.AddBook(other), "same ISBN")
	assert.Equal(t, 1, lib.Len())
}

func TestAddMemberDuplicate(t *testing.T) {
	lib := NewDefaultLibrary()
	alice, err := lib.NewMember("Alice", "alice@email.com", "1234567890", MembershipBasic)
	require.NoError(t, err)

	assert.True(t, lib.AddMember(alice))
	assert.False(t, lib.AddMember(alice))
	assert.Equal(t, 1, lib.MembersCount())
}

func TestRemoveBookNotFound(t *testing.T) {
	lib := NewDefaultLibrary()
	assert.ErrorIs(t, lib.RemoveBook("no-such-isbn"), ErrBookNotFound)
}

func TestFindBooksByAuthor(t *testing.T) {
	lib := NewDefaultLibrary()
	require.True(t, lib.AddBook(NewBook("The Two Towers", "J.R.R. Tolkien", "1111111111", 1954, "Fantasy")))
	require.True(t, lib.AddBook(NewBook("The Hobbit", "J.R.R. Tolkien", "2222222222", 1937, "Fantasy")))
	require.True(t, lib.AddBook(NewBook("Dune", "Frank Herbert", "3333333333", 1965, "Sci-Fi")))

	books := lib.FindBooksByAuthor("tolkien")
	require.Len(t, books, 2)
	// Sorted by title.
	assert.Equal(t, "The Hobbit", books[0].Title())
	assert.Equal(t, "The Two Towers", books[1].Title())

	assert.Empty(t, lib.FindBooksByAuthor("asimov"))
}

func TestFindBookByISBN(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Dune", "Frank Herbert", "3333333333", 1965, "Sci-Fi")
	require.True(t, lib.AddBook(book))

	found, ok := lib.FindBookByISBN("3333333333")
	assert.True(t, ok)
	assert.Same(t, book, found)

	_, ok = lib.FindBookByISBN("0000000000")
	assert.False(t, ok)
}

func TestFindMemberByEmail(t *testing.T) {
	lib := NewDefaultLibrary()
	alice, err := lib.NewMember("Alice", "alice@email.com", "1234567890", MembershipBasic)
	require.NoError(t, err)
	require.True(t, lib.AddMember(alice))

	found, ok := lib.FindMemberByEmail("alice@email.com")
	assert.True(t, ok)
	assert.Same(t, alice, found)

	_, ok = lib.FindMemberByEmail("nobody@email.com")
	assert.False(t, ok)
}

func TestOverdueBooks(t *testing.T) {
	lib := NewDefaultLibrary()
	onTime := NewBook("On Time", "A", "1111111111", 2020, "X")
	late := NewBook("Late", "B", "2222222222", 2020, "X")
	require.True(t, lib.AddBook(onTime))
	require.True(t, lib.AddBook(late))

	alice, err := lib.NewMember("Alice", "alice@email.com", "1234567890", MembershipBasic)
	require.NoError(t, err)
	require.True(t, lib.AddMember(alice))

	require.NoError(t, lib.Checkout(onTime.ISBN(), alice, 14))
	require.NoError(t, lib.Checkout(late.ISBN(), alice, 14))
	late.dueDate = time.Now().Add(-24 * time.Hour)

	overdue := lib.OverdueBooks()
	require.Len(t, overdue, 1)
	assert.Same(t, late, overdue[0])
}

func TestGenerateReport(t *testing.T) {
	lib := NewDefaultLibrary()
	for i := 0; i < 3; i++ {
		require.True(t, lib.AddBook(NewBook(fmt.Sprintf("Book %d", i), "Author", fmt.Sprintf("11111%05d", i), 2020, "X")))
	}
	alice, err := lib.NewMember("Alice", "alice@email.com", "1234567890", MembershipBasic)
	require.NoError(t, err)
	require.True(t, lib.AddMember(alice))

	books := lib.Books()
	require.NoError(t, lib.Checkout(books[0].ISBN(), alice, 14))
	require.NoError(t, lib.Checkout(books[1].ISBN(), alice, 14))
	books[1].dueDate = time.Now().Add(-time.Hour)

	report := lib.GenerateReport()
	assert.Equal(t, "City Public Library", report.LibraryName)
	assert.Equal(t, 3, report.TotalBooks)
	assert.Equal(t, 1, report.AvailableBooks)
	assert.Equal(t, 2, report.BorrowedBooks)
	assert.Equal(t, 1, report.TotalMembers)
	assert.Equal(t, 1, report.OverdueBooks)
}

func TestExportReportXLSX(t *testing.T) {
	lib := NewDefaultLibrary()
	require.True(t, lib.AddBook(NewBook("Dune", "Frank Herbert", "3333333333", 1965, "Sci-Fi")))

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, lib.ExportReportXLSX(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestContainmentAndString(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Dune", "Frank Herbert", "3333333333", 1965, "Sci-Fi")
	alice, err := lib.NewMember("Alice", "alice@email.com", "1234567890", MembershipBasic)
	require.NoError(t, err)

	assert.False(t, lib.HasBook(book))
	assert.False(t, lib.HasMember(alice))

	require.True(t, lib.AddBook(book))
	require.True(t, lib.AddMember(alice))

	assert.True(t, lib.HasBook(book))
	assert.True(t, lib.HasMember(alice))
	assert.False(t, lib.HasBook(nil))
	assert.False(t, lib.HasMember(nil))

	assert.Equal(t, "City Public Library - 1 books, 1 members", lib.String())
	assert.Equal(t, 1, lib.BooksCount())
	assert.Equal(t, 1, lib.AvailableBooksCount())
}
