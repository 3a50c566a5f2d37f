package gomicroauth

import (
	"fmt"
	"time"
)

type Service interface {
	RegisterNewUser(req registerUserRequest) (ID, error)
	ValidateCredentials(req loginRequest) (*User, error)
}

type service struct {
	users Repository
}

func NewService(users Repository) Service {
	return &service{users: users}
}

type registerUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (svc *service) RegisterNewUser(req registerUserRequest) (ID, error) {
	user, err := NewUser(req.Username, req.Email)
	if err != nil {
		return "", err
	}

	if req.Password == "" {
		return "", ErrEmptyPassword
	}

	if err := svc.verifyNotInUse(req.Username, req.Email); err != nil {
		return "", err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("error registering user: %s", err)
	}

	user.ID = nextID()
	user.Password = hash
	user.CreatedAt = time.Now().UTC()

	if err = svc.users.Store(user); err != nil {
		return "", fmt.Errorf("error saving user: %s", err)
	}

	return user.ID, nil
}

// ValidateCredentials resolves the login identifier to a stored user and
// checks the supplied password against its hash. Username takes precedence
// over email as the lookup key.
func (svc *service) ValidateCredentials(req loginRequest) (*User, error) {
	if req.Password == "" || (req.Username == "" && req.Email == "") {
		return nil, ErrMissingCredentials
	}

	user, err := svc.findByIdentifier(req.Username, req.Email)
	if err != nil {
		return nil, err
	}

	if !checkPasswordHash(user.Password, req.Password) {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

func (svc *service) findByIdentifier(username, email string) (*User, error) {
	if username != "" {
		return svc.users.FindByName(username)
	}
	return svc.users.FindByEmail(email)
}

func (svc *service) verifyNotInUse(username string, email string) error {
	if u, _ := svc.users.FindByName(username); u != nil {
		return ErrExistingUsername
	}
	if u, _ := svc.users.FindByEmail(email); u != nil {
		return ErrExistingEmail
	}
	return nil
}
