package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength = 254
	minEmailLength = 3
	maxNameLength  = 60
	bcryptCost     = 12
)

var (
	ErrInvalidEmail       = fmt.Errorf("email address is not valid")
	ErrEmailLength        = fmt.Errorf("email address is too long or too short, max length: %d, min length: %d", maxEmailLength, minEmailLength)
	ErrInvalidName        = errors.New("name is required")
	ErrNameLength         = fmt.Errorf("name is too long, max length: %d", maxNameLength)
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInternalError      = errors.New("internal server error")
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Service interface {
	Register(name, email, password string) (*User, error)
	GetUserByEmail(email string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	var passwordBytes = []byte(password)

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword(passwordBytes, bcryptCost)

	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	if len(email) > maxEmailLength || len(email) <= minEmailLength {
		return ErrEmailLength
	}
	return nil
}

func (s *service) Register(name, email, password string) (*User, error) {
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if len(name) > maxNameLength {
		return nil, ErrNameLength
	}

	// Duplicate detection is check-then-insert; the UNIQUE constraint on
	// users.email backstops the window between the two statements.
	existingUser, err := s.repo.getUserByEmail(email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, ErrInternalError
	}
	if existingUser != nil {
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.repo.createUser(user); err != nil {
		return nil, ErrInternalError
	}

	return user, nil
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(email)
}
