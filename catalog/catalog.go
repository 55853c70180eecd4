// Package catalog keeps the book catalog and its users in keyed tables, and layers listing, searching and
// borrowing on top of them. Listings and searches always work on a fresh snapshot of the table, so a result
// never changes membership or order after it was returned. A Catalog is not safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"
	"github.com/gostonefire/bookshelf/crt"
	"github.com/gostonefire/bookshelf/internal/utils"
	"github.com/gostonefire/bookshelf/keyedtable"
	"github.com/gostonefire/bookshelf/sorts"
	"github.com/rs/zerolog"
	"strconv"
)

// Options - Configuration for New, Go zero values give the defaults
//   - InitialCapacity is the initial number of buckets of the book and user tables
//   - CollisionResolutionTechnique is one of the crt constants, default crt.SeparateChaining
//   - AdminPassword is the password of the seeded admin user, default DefaultAdminPassword
//   - PasswordCost is the bcrypt cost for password hashes, default bcrypt.DefaultCost
//   - Logger receives debug events, default is a disabled logger
type Options struct {
	InitialCapacity              int64
	CollisionResolutionTechnique int
	AdminPassword                string
	PasswordCost                 int
	Logger                       *zerolog.Logger
}

// Catalog - Books keyed by Book.Key and users keyed by username
type Catalog struct {
	books        *keyedtable.KeyedTable[Key, *Book]
	users        *keyedtable.KeyedTable[string, *User]
	passwordCost int
	logger       zerolog.Logger
}

// New - Returns an empty catalog with the admin user registered
func New(opts Options) (*Catalog, error) {
	books, err := keyedtable.NewWithOptions[Key, *Book](keyedtable.Options[Key]{
		InitialCapacity:              opts.InitialCapacity,
		CollisionResolutionTechnique: opts.CollisionResolutionTechnique,
	})
	if err != nil {
		return nil, fmt.Errorf("creating book table: %w", err)
	}
	users, err := keyedtable.NewWithOptions[string, *User](keyedtable.Options[string]{
		InitialCapacity:              opts.InitialCapacity,
		CollisionResolutionTechnique: opts.CollisionResolutionTechnique,
	})
	if err != nil {
		return nil, fmt.Errorf("creating user table: %w", err)
	}

	c := &Catalog{
		books:        books,
		users:        users,
		passwordCost: opts.PasswordCost,
		logger:       zerolog.Nop(),
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	}

	adminPassword := opts.AdminPassword
	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}
	if err := c.Register(AdminUsername, adminPassword); err != nil {
		return nil, fmt.Errorf("registering %s: %w", AdminUsername, err)
	}

	return c, nil
}

// AddBook - Validates and adds a new book. Adding the same book twice leaves the first one, borrow state
// included, in place and returns it together with a BookExists error.
func (c *Catalog) AddBook(title, author string, year int) (*Book, error) {
	book, err := NewBook(title, author, year)
	if err != nil {
		return nil, err
	}

	if existing, err := c.books.Get(book.Key()); err == nil {
		return existing, BookExists{msg: fmt.Sprintf("book %q by %s (%d) already exists", book.Title, book.Author, book.Year)}
	}

	capacity := c.books.Capacity()
	c.books.Put(book.Key(), book)

	c.logger.Debug().
		Str("title", book.Title).
		Str("author", book.Author).
		Int("year", book.Year).
		Msg("book added")
	if grown := c.books.Capacity(); grown > capacity {
		c.logger.Debug().Int64("buckets", grown).Int("records", c.books.Len()).Msg("book table grown")
	}

	return book, nil
}

// Len - Returns the number of books
func (c *Catalog) Len() int {
	return c.books.Len()
}

// Books - Returns a snapshot of all books in no particular order
func (c *Catalog) Books() []*Book {
	return c.books.Values()
}

// SortBooks - Returns a snapshot of all books ordered by field using algorithm
func (c *Catalog) SortBooks(field Field, algorithm sorts.Algorithm) []*Book {
	books := c.Books()
	sorts.Sort(algorithm, books, Comparator(field))

	c.logger.Debug().Stringer("field", field).Stringer("algorithm", algorithm).Int("books", len(books)).Msg("books sorted")

	return books
}

// Search - Returns the books whose title or author contains query ignoring ASCII case, or whose year
// contains query. The result is in no particular order.
func (c *Catalog) Search(query string) []*Book {
	var found []*Book
	for _, book := range c.Books() {
		if utils.ContainsFoldASCII(book.Title, query) ||
			utils.ContainsFoldASCII(book.Author, query) ||
			utils.ContainsFoldASCII(strconv.Itoa(book.Year), query) {
			found = append(found, book)
		}
	}

	return found
}

// FindExactByTitle - Returns a book whose title equals title ignoring ASCII case.
// A snapshot is merge sorted by title and binary searched on every call. If several books share the title,
// which one is returned is unspecified.
func (c *Catalog) FindExactByTitle(title string) (*Book, error) {
	books := c.Books()
	sorts.MergeSort(books, CompareTitle)

	i, found := sorts.BinarySearchFunc(books, title, func(book *Book, title string) int {
		return utils.CompareFoldASCII(book.Title, title)
	})
	if !found {
		return nil, BookNotFound{msg: fmt.Sprintf("book with title %q not found", title)}
	}

	return books[i], nil
}

// FindByTitle - Returns the first book in table order whose title equals title ignoring ASCII case,
// scanning the whole catalog.
func (c *Catalog) FindByTitle(title string) (*Book, error) {
	for _, book := range c.Books() {
		if utils.EqualFoldASCII(book.Title, title) {
			return book, nil
		}
	}

	return nil, BookNotFound{msg: fmt.Sprintf("book with title %q not found", title)}
}

// Get - Returns the book stored under the key of title, author and year
func (c *Catalog) Get(title, author string, year int) (*Book, error) {
	book, err := c.books.Get(Key{Title: title, Author: author, Year: year})
	if err != nil {
		if errors.Is(err, crt.NoRecordFound{}) {
			return nil, BookNotFound{msg: fmt.Sprintf("book %q by %s (%d) not found", title, author, year)}
		}
		return nil, err
	}

	return book, nil
}

// Stat - Returns statistics of the book and user tables
func (c *Catalog) Stat(includeDistribution bool) (books, users *keyedtable.HashMapStat) {
	return c.books.Stat(includeDistribution), c.users.Stat(includeDistribution)
}
