package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/cache"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/models"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so login never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when signup hits the uniqueness
	// constraint on username or email.
	ErrEmailTaken = errors.New("email or username already in use")
	// ErrUserNotFound is returned by the forgot-password flow for an
	// unregistered email.
	ErrUserNotFound = errors.New("user not found")
)

// emailExistsTTL bounds staleness of cached existence lookups.
const emailExistsTTL = time.Minute

// AuthService defines the interface for credential business logic
type AuthService interface {
	Signup(req *models.SignupRequest, profileImage *string) (*models.SignupResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
	ForgotPassword(email string) error
	CheckEmail(email string) (bool, error)
}

type authService struct {
	userRepo repository.UserRepository
	cache    cache.Cache
	ctx      context.Context
}

// NewAuthService creates a new auth service. cacheClient may be nil, in
// which case email-existence checks always hit the database.
func NewAuthService(userRepo repository.UserRepository, cacheClient cache.Cache) AuthService {
	return &authService{
		userRepo: userRepo,
		cache:    cacheClient,
		ctx:      context.Background(),
	}
}

// Signup hashes the password and creates the user row. The store's
// uniqueness constraints are the arbiter for concurrent duplicate
// signups; the losing insert surfaces as ErrEmailTaken.
func (s *authService) Signup(req *models.SignupRequest, profileImage *string) (*models.SignupResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Username, req.Email, string(hashedPassword), profileImage)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.invalidateEmailExists(req.Email)

	return &models.SignupResponse{
		Message: "User created",
		UserID:  user.ID,
	}, nil
}

// Login verifies the submitted password against the stored hash
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.LoginResponse{
		Message: "Login successful",
		UserID:  user.ID,
	}, nil
}

// ForgotPassword confirms the email is registered. Reset link delivery
// is a stub; the handler acknowledges without performing a reset.
func (s *authService) ForgotPassword(email string) error {
	_, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	// TODO: generate a reset token and send the email
	return nil
}

// CheckEmail reports whether the email is registered, consulting the
// cache first when one is configured
func (s *authService) CheckEmail(email string) (bool, error) {
	cacheKey := fmt.Sprintf("email:exists:%s", email)

	if s.cache != nil {
		if val, err := s.cache.Get(s.ctx, cacheKey); err == nil {
			return val == "true", nil
		}
	}

	exists, err := s.userRepo.EmailExists(email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	if s.cache != nil {
		val := "false"
		if exists {
			val = "true"
		}
		// Cache failures are ignored; the store already answered
		_ = s.cache.Set(s.ctx, cacheKey, val, emailExistsTTL)
	}

	return exists, nil
}

func (s *authService) invalidateEmailExists(email string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(s.ctx, fmt.Sprintf("email:exists:%s", email))
}
