package catalog

import (
	"fmt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"strings"
	"time"
)

// AdminUsername - The user every catalog starts with
const AdminUsername = "admin"

// DefaultAdminPassword - Password of the admin user unless configured otherwise
const DefaultAdminPassword = "adminpass"

// User - A registered user, only the bcrypt hash of the password is kept
type User struct {
	Username     string
	Registered   time.Time
	passwordHash []byte
}

// Session - Proof of a successful login, passed to operations that need a user
type Session struct {
	ID       uuid.UUID
	Username string
	Started  time.Time
}

// Register - Adds a new user. Username and password are trimmed and must not be blank.
func (c *Catalog) Register(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" {
		return NewInvalidInput("username can not be empty")
	}
	if password == "" {
		return NewInvalidInput("password can not be empty")
	}
	if c.users.Has(username) {
		return UserExists{msg: fmt.Sprintf("user %q already exists", username)}
	}

	cost := c.passwordCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return fmt.Errorf("hashing password for %q: %w", username, err)
	}

	c.users.Put(username, &User{Username: username, Registered: time.Now(), passwordHash: hash})
	c.logger.Debug().Str("user", username).Msg("user registered")

	return nil
}

// Login - Checks username and password and returns a new session.
// Unknown users and wrong passwords both give InvalidCredentials.
func (c *Catalog) Login(username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	user, err := c.users.Get(username)
	if err != nil {
		return nil, InvalidCredentials{}
	}
	if err := bcrypt.CompareHashAndPassword(user.passwordHash, []byte(password)); err != nil {
		return nil, InvalidCredentials{}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("creating session id: %w", err)
	}

	c.logger.Debug().Str("user", username).Stringer("session", id).Msg("user logged in")

	return &Session{ID: id, Username: user.Username, Started: time.Now()}, nil
}

// Users - Returns the number of registered users, admin included
func (c *Catalog) Users() int {
	return c.users.Len()
}
