package catalog

import (
	"fmt"
	"strings"
	"time"
)

// MinYear - Earliest publication year accepted for a book
const MinYear = 1000

// Book - One catalog entry. Two books are the same book when title, author and year are equal, whatever
// their borrow state.
type Book struct {
	Title      string `json:"title" yaml:"title"`
	Author     string `json:"author" yaml:"author"`
	Year       int    `json:"year" yaml:"year"`
	Borrowed   bool   `json:"borrowed" yaml:"borrowed"`
	BorrowedBy string `json:"borrowed_by,omitempty" yaml:"borrowed_by,omitempty"`
}

// NewBook - Returns a new available book after trimming and validating its fields.
// Title and author must not be blank and year must be between MinYear and the current year.
func NewBook(title, author string, year int) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return nil, NewInvalidInput("title can not be empty")
	}
	if author == "" {
		return nil, NewInvalidInput("author can not be empty")
	}
	if maxYear := time.Now().Year(); year < MinYear || year > maxYear {
		return nil, NewInvalidInput(fmt.Sprintf("year must be between %d and %d", MinYear, maxYear))
	}

	return &Book{Title: title, Author: author, Year: year}, nil
}

// Key - Identity of a book in the catalog table
type Key struct {
	Title  string
	Author string
	Year   int
}

// Key - Returns the key the book is stored under
func (b *Book) Key() Key {
	return Key{Title: b.Title, Author: b.Author, Year: b.Year}
}

// Same - Returns true if o has the same title, author and year as b
func (b *Book) Same(o *Book) bool {
	return b.Key() == o.Key()
}

// String - Formats the book as "Title, Author (Year) [Status: ...]"
func (b *Book) String() string {
	if b.Borrowed {
		return fmt.Sprintf("%s, %s (%d) [Status: Borrowed, User: %s]", b.Title, b.Author, b.Year, b.BorrowedBy)
	}
	return fmt.Sprintf("%s, %s (%d) [Status: Available]", b.Title, b.Author, b.Year)
}
