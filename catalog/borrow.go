package catalog

import "fmt"

// Borrow - Lends the book with title to the user of session
func (c *Catalog) Borrow(session *Session, title string) (*Book, error) {
	if session == nil {
		return nil, NotLoggedIn{}
	}

	book, err := c.FindByTitle(title)
	if err != nil {
		return nil, err
	}
	if book.Borrowed {
		return book, AlreadyBorrowed{msg: fmt.Sprintf("book %q is already borrowed by %s", book.Title, book.BorrowedBy)}
	}

	book.Borrowed = true
	book.BorrowedBy = session.Username

	c.logger.Debug().Str("title", book.Title).Str("user", session.Username).Msg("book borrowed")

	return book, nil
}

// Return - Takes back the book with title, only the user who borrowed it can return it
func (c *Catalog) Return(session *Session, title string) (*Book, error) {
	if session == nil {
		return nil, NotLoggedIn{}
	}

	book, err := c.FindByTitle(title)
	if err != nil {
		return nil, err
	}
	if !book.Borrowed {
		return book, NotBorrowed{msg: fmt.Sprintf("book %q is not borrowed", book.Title)}
	}
	if book.BorrowedBy != session.Username {
		return book, BorrowedByOther{msg: fmt.Sprintf("book %q is borrowed by %s", book.Title, book.BorrowedBy)}
	}

	book.Borrowed = false
	book.BorrowedBy = ""

	c.logger.Debug().Str("title", book.Title).Str("user", session.Username).Msg("book returned")

	return book, nil
}
