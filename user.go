package gomicroauth

import (
	"errors"
	"regexp"
	"time"

	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"
)

type Repository interface {
	FindByName(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByID(id ID) (*User, error)
	Store(u *User) error
}

type ID string

// User is an account record. Password holds the bcrypt hash of the
// password; the plaintext is never stored.
type User struct {
	ID        ID
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}

var (
	ErrEmptyUserName      = errors.New("username cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrMissingCredentials = errors.New("missing username or password")
	ErrExistingUsername   = errors.New("username in use")
	ErrExistingEmail      = errors.New("email in use")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

var emailRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// NewUser validates username and email and returns a new User if
// arguments are valid
func NewUser(username string, email string) (*User, error) {
	if len(username) < 1 {
		return nil, ErrEmptyUserName
	}

	if !emailRegexp.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return &User{Username: username, Email: email}, nil
}

func nextID() ID {
	return ID(xid.New().String())
}

func isValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

func checkPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
