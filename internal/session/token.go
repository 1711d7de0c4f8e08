package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/framez-app/framez/internal/common"
)

// Claims carries the registered claim set plus the account identifier the
// token was minted for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenIssuer mints the opaque session tokens persisted in the secure
// store. Tokens are HS256 JWTs carrying the user ID, an issue timestamp and
// a random JTI. They have no expiry; a session ends only when a new login
// replaces it or logout deletes it.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{secret: secret}
}

// Issue mints a fresh token for the given account ID. Every call produces a
// distinct token (random JTI), which is all the uniqueness a single-device
// session needs.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			ID:       uuid.NewString(),
		},
		UserID: userID,
	})

	return token.SignedString(t.secret)
}

// UserID extracts the account identifier from a token minted by Issue.
// Returns common.ErrInvalidToken for malformed or foreign tokens.
func (t *TokenIssuer) UserID(tokenString string) (string, error) {
	claims, err := t.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// IssuedAt reports when a token minted by Issue was created.
func (t *TokenIssuer) IssuedAt(tokenString string) (time.Time, error) {
	claims, err := t.parse(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.RegisteredClaims.IssuedAt == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return claims.RegisteredClaims.IssuedAt.Time, nil
}

func (t *TokenIssuer) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
