// Package auth issues and verifies HS256 access tokens and derives password
// hashes.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mango-services/loyalty-auth/internal/common"
)

// Claims carries the identity of an access token holder. Subject is the
// user ID and ID is the per-issuance jti.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// TokenParams describes one access token to mint.
type TokenParams struct {
	UserID   string
	Email    string
	Role     string
	Name     string
	JTI      string
	Issuer   string
	Audience string
	IssuedAt time.Time
	Validity time.Duration
}

// GenerateToken signs an access token for p with secretKey.
func GenerateToken(p TokenParams, secretKey []byte) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			ID:        p.JTI,
			Issuer:    p.Issuer,
			IssuedAt:  jwt.NewNumericDate(p.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(p.IssuedAt.Add(p.Validity)),
		},
		Email: p.Email,
		Role:  p.Role,
		Name:  p.Name,
	}
	if p.Audience != "" {
		claims.Audience = jwt.ClaimStrings{p.Audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// Verifier checks access tokens issued by GenerateToken.
type Verifier struct {
	secretKey []byte
	issuer    string
	audience  string
	now       func() time.Time
}

// NewVerifier builds a Verifier. Empty issuer or audience disables that check.
// now may be nil, in which case the wall clock is used.
func NewVerifier(secretKey []byte, issuer, audience string, now func() time.Time) *Verifier {
	if now == nil {
		now = time.Now
	}
	return &Verifier{secretKey: secretKey, issuer: issuer, audience: audience, now: now}
}

// Verify parses tokenString and returns its claims. Expired tokens yield
// common.ErrTokenExpired; anything else wrong yields common.ErrInvalidToken.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
