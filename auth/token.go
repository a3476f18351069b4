package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ibrahimvain/pesan-aja/models"
)

// TokenTTL is the fixed validity window of an issued claim. There is no
// revocation list; a claim stays valid until it expires.
const TokenTTL = 24 * time.Hour

// Identity is the decoded content of a verified claim.
type Identity struct {
	UserID uint
	Role   string
}

// TokenService issues and verifies HS256-signed claims carrying the
// principal's id and role.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, ttl: TokenTTL, now: time.Now}
}

// Issue signs a claim for the given principal.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  float64(user.Id),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the claim in two explicit steps: signature and shape first,
// expiry second, so an expired-but-genuine claim is distinguishable from a
// tampered one.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	token, err := parser.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrTokenInvalid
	}
	if s.now().After(exp.Time) {
		return nil, ErrTokenExpired
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return &Identity{UserID: uint(sub), Role: role}, nil
}
