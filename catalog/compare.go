package catalog

import (
	"cmp"
	"fmt"
	"github.com/gostonefire/bookshelf/internal/utils"
	"strings"
)

// Field - A book field listings can be ordered by
type Field int

const (
	// ByTitle - Case-insensitive order on title
	ByTitle Field = iota + 1
	// ByAuthor - Case-insensitive order on author
	ByAuthor
	// ByYear - Numeric order on publication year
	ByYear
)

// String - Returns the name of the field as accepted by ParseField
func (f Field) String() string {
	switch f {
	case ByTitle:
		return "title"
	case ByAuthor:
		return "author"
	case ByYear:
		return "year"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// ParseField - Returns the field given its name or its menu number (1 title, 2 author, 3 year)
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "title":
		return ByTitle, nil
	case "2", "author":
		return ByAuthor, nil
	case "3", "year":
		return ByYear, nil
	default:
		return 0, NewInvalidInput(fmt.Sprintf("unknown sort field %q, use title, author or year", s))
	}
}

// CompareTitle - Orders books by title ignoring ASCII case
func CompareTitle(a, b *Book) int {
	return utils.CompareFoldASCII(a.Title, b.Title)
}

// CompareAuthor - Orders books by author ignoring ASCII case
func CompareAuthor(a, b *Book) int {
	return utils.CompareFoldASCII(a.Author, b.Author)
}

// CompareYear - Orders books by publication year
func CompareYear(a, b *Book) int {
	return cmp.Compare(a.Year, b.Year)
}

// Comparator - Returns the comparison function for field, unknown fields order by title
func Comparator(field Field) func(a, b *Book) int {
	switch field {
	case ByAuthor:
		return CompareAuthor
	case ByYear:
		return CompareYear
	default:
		return CompareTitle
	}
}
