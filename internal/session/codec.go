package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the lifetime of an issued session credential.
const TTL = 7 * 24 * time.Hour

var (
	// ErrUnauthenticated means no credential was supplied.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrExpired means the credential is past its embedded expiry.
	ErrExpired = errors.New("token expired")
	// ErrMalformed means the signature or structure is invalid.
	ErrMalformed = errors.New("invalid token")
)

// Principal is the authenticated identity derived from a verified credential.
type Principal struct {
	Sub       string    `json:"sub"`
	Email     string    `json:"email,omitempty"`
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Codec issues and verifies signed session tokens.
type Codec struct {
	secret []byte
}

// NewCodec constructs a Codec signing with the given secret.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Issue signs a token for the given subject, expiring seven days out.
func (c *Codec) Issue(sub, email string) (string, error) {
	if sub == "" {
		return "", errors.New("sub is required")
	}
	now := time.Now().UTC()
	cl := &claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded principal.
func (c *Codec) Verify(token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrUnauthenticated
	}

	cl := &claims{}
	parsed, err := jwt.ParseWithClaims(token, cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrExpired
		}
		return Principal{}, ErrMalformed
	}
	if !parsed.Valid || cl.Subject == "" {
		return Principal{}, ErrMalformed
	}

	p := Principal{Sub: cl.Subject, Email: cl.Email}
	if cl.IssuedAt != nil {
		p.IssuedAt = cl.IssuedAt.Time
	}
	if cl.ExpiresAt != nil {
		p.ExpiresAt = cl.ExpiresAt.Time
	}
	return p, nil
}
