package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dom/floricola-erp/internal/auth"
	"github.com/dom/floricola-erp/internal/domain"
	"github.com/dom/floricola-erp/internal/metrics"
	"github.com/dom/floricola-erp/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type TokenIssuer interface {
	Issue(id, email, role string) (string, error)
	Verify(token string) (*auth.Claims, error)
}

type AuthService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	log      *zap.Logger
	metrics  *metrics.Metrics

	// compared against when the email is unknown so both failure paths cost a bcrypt run
	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer, log *zap.Logger, m *metrics.Metrics) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		log:      log,
		metrics:  m,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  domain.PublicUser
}

// NormalizeEmail is applied before every storage lookup or write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.PublicUser, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		s.metrics.AuthEvent("register", "missing_fields")
		return nil, domain.ErrMissingFields
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = domain.DefaultRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.Error("[AuthService.Register] failed to hash password", zap.Error(err))
		s.metrics.AuthEvent("register", "error")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		s.metrics.AuthEvent("register", "error")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	user := &domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			s.metrics.AuthEvent("register", "duplicate")
			return nil, domain.ErrDuplicateEmail
		}
		s.log.Error("[AuthService.Register] failed to create user", zap.String("email", email), zap.Error(err))
		s.metrics.AuthEvent("register", "error")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.log.Info("[AuthService.Register] user registered", zap.String("user_id", user.ID.String()), zap.String("role", role))
	s.metrics.AuthEvent("register", "success")

	public := user.Public()
	return &public, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		s.metrics.AuthEvent("login", "missing_fields")
		return nil, domain.ErrMissingFields
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.hasher.Verify(input.Password, s.dummyDigest())
			s.metrics.AuthEvent("login", "invalid_credentials")
			return nil, domain.ErrInvalidCredentials
		}
		s.log.Error("[AuthService.Login] failed to look up user", zap.Error(err))
		s.metrics.AuthEvent("login", "error")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.metrics.AuthEvent("login", "invalid_credentials")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.String(), user.Email, user.Role)
	if err != nil {
		s.log.Error("[AuthService.Login] failed to issue token", zap.Error(err))
		s.metrics.AuthEvent("login", "error")
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	s.metrics.AuthEvent("login", "success")
	return &LoginResult{
		Token: token,
		User:  user.Public(),
	}, nil
}

// ValidateToken never consults storage; validity is signature plus expiry.
func (s *AuthService) ValidateToken(token string) (*auth.Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return claims, nil
}

func (s *AuthService) dummyDigest() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(uuid.NewString())
	})
	return s.dummyHash
}
