package catalog

// BookNotFound - Custom error to inform that no book matched
type BookNotFound struct {
	msg string
}

// Error - Used to notify that no book was found
func (E BookNotFound) Error() string {
	if E.msg == "" {
		return "book not found"
	}
	return E.msg
}

// Is - Matches any BookNotFound
func (E BookNotFound) Is(target error) bool {
	_, ok := target.(BookNotFound)
	return ok
}

// BookExists - Custom error to inform that the same book is already in the catalog
type BookExists struct {
	msg string
}

// Error - Used to notify that the book already exists
func (E BookExists) Error() string {
	if E.msg == "" {
		return "book already exists"
	}
	return E.msg
}

// Is - Matches any BookExists
func (E BookExists) Is(target error) bool {
	_, ok := target.(BookExists)
	return ok
}

// AlreadyBorrowed - Custom error to inform that a book is already lent out
type AlreadyBorrowed struct {
	msg string
}

// Error - Used to notify that the book is already borrowed
func (E AlreadyBorrowed) Error() string {
	if E.msg == "" {
		return "book already borrowed"
	}
	return E.msg
}

// Is - Matches any AlreadyBorrowed
func (E AlreadyBorrowed) Is(target error) bool {
	_, ok := target.(AlreadyBorrowed)
	return ok
}

// NotBorrowed - Custom error to inform that a book that is being returned was never lent out
type NotBorrowed struct {
	msg string
}

// Error - Used to notify that the book is not borrowed
func (E NotBorrowed) Error() string {
	if E.msg == "" {
		return "book not borrowed"
	}
	return E.msg
}

// Is - Matches any NotBorrowed
func (E NotBorrowed) Is(target error) bool {
	_, ok := target.(NotBorrowed)
	return ok
}

// BorrowedByOther - Custom error to inform that a book can only be returned by the user who borrowed it
type BorrowedByOther struct {
	msg string
}

// Error - Used to notify that another user holds the book
func (E BorrowedByOther) Error() string {
	if E.msg == "" {
		return "book borrowed by another user"
	}
	return E.msg
}

// Is - Matches any BorrowedByOther
func (E BorrowedByOther) Is(target error) bool {
	_, ok := target.(BorrowedByOther)
	return ok
}

// NotLoggedIn - Custom error to inform that an operation needs a session
type NotLoggedIn struct{}

// Error - Used to notify that no user is logged in
func (E NotLoggedIn) Error() string {
	return "login required"
}

// UserExists - Custom error to inform that a username is taken
type UserExists struct {
	msg string
}

// Error - Used to notify that the user already exists
func (E UserExists) Error() string {
	if E.msg == "" {
		return "user already exists"
	}
	return E.msg
}

// Is - Matches any UserExists
func (E UserExists) Is(target error) bool {
	_, ok := target.(UserExists)
	return ok
}

// InvalidCredentials - Custom error to inform that username or password did not match
type InvalidCredentials struct{}

// Error - Used to notify failed login
func (E InvalidCredentials) Error() string {
	return "invalid username or password"
}

// InvalidInput - Custom error to inform that a field failed validation
type InvalidInput struct {
	msg string
}

// Error - Used to notify invalid input
func (E InvalidInput) Error() string {
	if E.msg == "" {
		return "invalid input"
	}
	return E.msg
}

// Is - Matches any InvalidInput
func (E InvalidInput) Is(target error) bool {
	_, ok := target.(InvalidInput)
	return ok
}

// NewInvalidInput - Returns an InvalidInput error with msg
func NewInvalidInput(msg string) InvalidInput {
	return InvalidInput{msg: msg}
}
