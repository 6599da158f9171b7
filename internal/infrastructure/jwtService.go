package infrastructure

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the lifetime of an issued token.
const DefaultTokenTTL = time.Hour

var ErrInvalidToken = errors.New("token is not valid")

// TokenClaims is the signed payload: the user reference and an expiry.
type TokenClaims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

type TokenUser struct {
	ID string `json:"id"`
}

type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (j *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	if len(j.secretKey) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	claims := TokenClaims{
		User: TokenUser{ID: userID.String()},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(j.now().Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry and returns the embedded user id.
// Every failure is reported as ErrInvalidToken.
func (j *JWTService) VerifyToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" || len(j.secretKey) == 0 {
		return uuid.Nil, ErrInvalidToken
	}

	var claims TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.User.ID)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
