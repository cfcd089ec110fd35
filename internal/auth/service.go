package auth

import (
	"errors"
	"net/http"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/user"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal server error")
)

type Service interface {
	Login(email, password string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
	logger      *logrus.Logger
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface, logger *logrus.Logger) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
		logger:      logger,
	}
}

// Login verifies the credentials and issues an access token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *service) Login(email, password string) (string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		s.logger.WithError(err).Error("could not look up user during login")
		return "", ErrInternalError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessJWT(existingUser.Email, defaultJWTDuration)
	if err != nil {
		s.logger.WithError(err).Error("could not sign access token")
		return "", ErrInternalError
	}

	return token, nil
}
