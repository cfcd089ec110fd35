package auth

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidJWTToken = errors.New("JWT token is invalid")
	ErrExpiredJWTToken = errors.New("JWT token is expired")
)

const defaultJWTDuration = 24 * time.Hour

type JWTManagerInterface interface {
	GenerateAccessJWT(email string, duration time.Duration) (string, error)
	ValidateAccessToken(tokenString string) (string, error)
}

// AccessTokenCustomClaims carries the identity claim: the user's email.
type AccessTokenCustomClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

type JWTManager struct {
	secret string
}

func NewJWTManager() JWTManagerInterface {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET is not set in .env file")
	}

	return &JWTManager{
		secret: jwtSecret,
	}
}

func (j *JWTManager) GenerateAccessJWT(email string, duration time.Duration) (string, error) {
	claims := &AccessTokenCustomClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			Subject:   email,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(duration).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

func (j *JWTManager) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessTokenCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.secret), nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			if validationErr.Errors&(jwt.ValidationErrorExpired) != 0 {
				return "", ErrExpiredJWTToken
			}
		}
		return "", err
	}

	claims, ok := token.Claims.(*AccessTokenCustomClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", ErrInvalidJWTToken
	}

	return claims.Email, nil
}
