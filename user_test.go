package gomicroauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_ReturnsCorrectHash(t *testing.T) {
	p := "password"
	hash, err := hashPassword(p)

	assert.Nil(t, err)
	assert.True(t, checkPasswordHash(hash, p))
	assert.False(t, checkPasswordHash(hash, "wrong"))
}

func TestNewUser(t *testing.T) {
	tests := []struct {
		username, email string
		wantErr         error
		wantUser        *User
	}{
		{"", "", ErrEmptyUserName, nil},
		{"username", "", ErrInvalidEmail, nil},
		{"username", "email", ErrInvalidEmail, nil},
		{"username", "email@sdf", ErrInvalidEmail, nil},
		{"user", "e@m.co", nil, &User{Username: "user", Email: "e@m.co"}},
	}

	for _, tt := range tests {
		user, err := NewUser(tt.username, tt.email)
		assert.Equal(t, tt.wantErr, err)
		assert.Equal(t, tt.wantUser, user)
	}
}
