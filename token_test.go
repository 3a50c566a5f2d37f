package gomicroauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testTokenConfig() Config {
	return Config{
		AccessTokenSecret:      "access-secret",
		RefreshTokenSecret:     "refresh-secret",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
	}
}

func TestTokenIssuer_IssueAndAuthenticate(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())
	user := &User{Username: "alice", Email: "a@x.com"}

	pair, err := issuer.Issue(user)

	assert.Nil(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := issuer.Authenticate(pair.AccessToken)

	assert.Nil(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())
	pair, err := issuer.Issue(&User{Username: "alice", Email: "a@x.com"})
	assert.Nil(t, err)

	cfg := testTokenConfig()
	cfg.AccessTokenSecret = "a different secret"
	other := NewTokenIssuer(cfg)

	claims, err := other.Authenticate(pair.AccessToken)

	assert.Nil(t, claims)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestTokenIssuer_RejectsRefreshTokenAsAccessToken(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())
	pair, err := issuer.Issue(&User{Username: "alice", Email: "a@x.com"})
	assert.Nil(t, err)

	claims, err := issuer.Authenticate(pair.RefreshToken)

	assert.Nil(t, claims)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestTokenIssuer_RejectsExpiredToken(t *testing.T) {
	cfg := testTokenConfig()
	cfg.AccessTokenExpiration = -time.Minute
	issuer := NewTokenIssuer(cfg)

	pair, err := issuer.Issue(&User{Username: "alice", Email: "a@x.com"})
	assert.Nil(t, err)

	claims, err := issuer.Authenticate(pair.AccessToken)

	assert.Nil(t, claims)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())

	for _, token := range []string{"", "garbage", "a.b.c"} {
		claims, err := issuer.Authenticate(token)

		assert.Nil(t, claims)
		assert.Equal(t, ErrInvalidToken, err)
	}
}
