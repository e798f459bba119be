package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pagetalk/comment-api/domain"
	internalauth "github.com/pagetalk/comment-api/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

var _ domain.AuthUsecase = (*Service)(nil)

// NewService will create a new auth service object
func NewService(userRepo domain.UserRepository, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (domain.AuthResult, error) {
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return domain.AuthResult{}, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.AuthResult{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResult{}, err
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}
	// The unique index still backstops a register race; Insert surfaces it
	// as ErrConflict.
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return domain.AuthResult{}, err
	}

	token, err := internalauth.GenerateToken(s.jwtSecret, user.ID, s.tokenTTL)
	if err != nil {
		return domain.AuthResult{}, err
	}

	return domain.AuthResult{User: user.Profile(), Token: token}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AuthResult{}, fmt.Errorf("%w: invalid email or password", domain.ErrAuthentication)
		}
		return domain.AuthResult{}, err
	}

	if !user.IsActive {
		return domain.AuthResult{}, fmt.Errorf("%w: account is inactive", domain.ErrAuthentication)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.AuthResult{}, fmt.Errorf("%w: invalid email or password", domain.ErrAuthentication)
	}

	token, err := internalauth.GenerateToken(s.jwtSecret, user.ID, s.tokenTTL)
	if err != nil {
		return domain.AuthResult{}, err
	}

	return domain.AuthResult{User: user.Profile(), Token: token}, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (domain.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.UserProfile{}, fmt.Errorf("%w: user not found", domain.ErrAuthentication)
		}
		return domain.UserProfile{}, err
	}

	return user.Profile(), nil
}
