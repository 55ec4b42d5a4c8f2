package auth

import (
	"context"
	"errors"
	"strings"

	"placementhub/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash is compared against when the email has no account, so a failed
// login costs the same whether or not the user exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Service owns user credentials and the session lifecycle.
type Service struct {
	users    UserRepositoryInterface
	sessions *SessionManager
}

func NewService(users UserRepositoryInterface, sessions *SessionManager) *Service {
	return &Service{users: users, sessions: sessions}
}

// Register creates a new user with a bcrypt-hashed password. The raw password
// is never persisted or logged.
func (s *Service) Register(ctx context.Context, req SignupRequest) (*domain.User, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleStudent
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies the credentials and opens a session on success.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, Session, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a comparison anyway so the timing does not reveal
			// whether the email exists.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			return nil, Session{}, ErrUserNotFound
		}
		return nil, Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, Session{}, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(user)
	if err != nil {
		return nil, Session{}, err
	}

	user.PasswordHash = ""
	return user, sess, nil
}

// Current resolves a session token; absent or expired tokens report false.
func (s *Service) Current(token string) (Session, bool) {
	return s.sessions.Get(token)
}

// Logout destroys the session unconditionally; unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.sessions.Destroy(token)
}
