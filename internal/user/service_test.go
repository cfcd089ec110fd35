package user

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	users     map[string]*User
	createErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[string]*User)}
}

func (m *mockRepository) createUser(user *User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.CreatedAt = time.Now()
	m.users[user.Email] = user
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	if user, ok := m.users[email]; ok {
		return user, nil
	}
	return nil, ErrUserNotFound
}

func TestRegister_Success(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	user, err := service.Register("John", "john@example.com", "secret123")

	assert.NoError(t, err)
	_, parseErr := uuid.Parse(user.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "John", user.Name)
	assert.Equal(t, "john@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	assert.Contains(t, repo.users, "john@example.com")
}

func TestRegister_TrimsName(t *testing.T) {
	service := NewUserService(newMockRepository())

	user, err := service.Register("  John  ", "john@example.com", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "John", user.Name)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	_, err := service.Register("John", "john@example.com", "secret123")
	assert.NoError(t, err)

	_, err = service.Register("Johnny", "john@example.com", "other456")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestRegister_InvalidEmail(t *testing.T) {
	service := NewUserService(newMockRepository())

	_, err := service.Register("John", "not-an-email", "secret123")

	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegister_EmptyName(t *testing.T) {
	service := NewUserService(newMockRepository())

	_, err := service.Register("   ", "john@example.com", "secret123")

	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	service := NewUserService(newMockRepository())

	_, err := service.GetUserByEmail("nobody@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
