package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"placementhub/internal/domain"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newTestService(users *mockUserRepo) (*Service, *SessionManager) {
	sessions := NewSessionManager(time.Hour)
	return NewService(users, sessions), sessions
}

func TestService_Register_Success(t *testing.T) {
	userRepo := new(mockUserRepo)

	userRepo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		// The stored hash must verify against the raw password and must not
		// be the password itself.
		if u.PasswordHash == "secret-password" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-password")) == nil
	})).Return(nil)

	service, _ := newTestService(userRepo)

	user, err := service.Register(context.Background(), SignupRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, domain.RoleStudent, user.Role) // default role
	assert.Empty(t, user.PasswordHash)

	userRepo.AssertExpectations(t)
}

func TestService_Register_EmailExists(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("ExistsByEmail", mock.Anything, "exists@example.com").Return(true, nil)

	service, _ := newTestService(userRepo)

	_, err := service.Register(context.Background(), SignupRequest{
		Name:     "Dup",
		Email:    "exists@example.com",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:           10,
		Name:         "Existing",
		Email:        "user@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
	}

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)

	service, sessions := newTestService(userRepo)

	user, sess, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, sess.Token)

	got, ok := sessions.Get(sess.Token)
	assert.True(t, ok)
	assert.Equal(t, int64(10), got.UserID)
	assert.Equal(t, domain.RoleAdmin, got.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:           10,
		Email:        "user@example.com",
		PasswordHash: string(hashed),
	}

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)

	service, _ := newTestService(userRepo)

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service, _ := newTestService(userRepo)

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever123",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_LogoutEndsSession(t *testing.T) {
	userRepo := new(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := &domain.User{ID: 3, Email: "user@example.com", PasswordHash: string(hashed)}
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)

	service, _ := newTestService(userRepo)

	_, sess, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)

	_, ok := service.Current(sess.Token)
	assert.True(t, ok)

	service.Logout(sess.Token)
	_, ok = service.Current(sess.Token)
	assert.False(t, ok)

	// Logging out an already-dead token is a no-op.
	service.Logout(sess.Token)
}
