package library

import (
	"time"

	"go.uber.org/zap"
)

// Librarian is a staff person who manages the library system. Librarians
// do not borrow; they administer.
type Librarian struct {
	personBase
	employeeID string
	department string
	hireDate   time.Time
	log        *zap.Logger
}

// EmployeeID is the librarian's staff identifier, fixed at hire.
func (l *Librarian) EmployeeID() string { return l.employeeID }

// Department is the librarian's current department.
func (l *Librarian) Department() string { return l.department }

// SetDepartment moves the librarian to another department.
func (l *Librarian) SetDepartment(department string) { l.department = department }

// HireDate is when the librarian was hired.
func (l *Librarian) HireDate() time.Time { return l.hireDate }

// Permissions lists the administrative operations a librarian may
// perform.
func (l *Librarian) Permissions() []string {
	return []string{
		"manage_books", "manage_members", "issue_fines",
		"access_reports", "manage_reservations", "override_limits",
	}
}

// AddBookToCatalog records that this librarian added a book. The catalog
// itself is updated through Library.AddBook.
func (l *Librarian) AddBookToCatalog(book *Book) {
	l.log.Info("book added to catalog",
		zap.String("librarian", l.name),
		zap.String("book", book.String()))
}

// IssueFine issues a fine to a member. The fine is recorded in the log
// only; there is no ledger behind it.
func (l *Librarian) IssueFine(member *Member, amount float64, reason string) {
	l.log.Info("fine issued",
		zap.String("librarian", l.name),
		zap.String("member", member.Name()),
		zap.Float64("amount", amount),
		zap.String("reason", reason))
}
