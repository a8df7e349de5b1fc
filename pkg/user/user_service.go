package user

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
	"github.com/FallenAngelllll/stellar-burgers/internal/utils/storage"
	"github.com/FallenAngelllll/stellar-burgers/pkg/jwt"
)

type (
	// UserService is the session gate. The checked latch flips to true
	// exactly once, after the first auth probe resolves either way, and
	// never reverts: a failed probe means anonymous, not stuck. Login
	// and register each own their error slot.
	UserService interface {
		CheckAuth(ctx context.Context)
		Register(ctx context.Context, req domain.RegisterRequest) (entities.User, error)
		Login(ctx context.Context, req domain.LoginRequest) (entities.User, error)
		Logout(ctx context.Context) error
		FetchUser(ctx context.Context) (entities.User, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest) (entities.User, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error

		IsChecked() bool
		CurrentUser() (entities.User, bool)
		LoginError() string
		RegisterError() string

		// AccessToken runs the refresh flow when the cached access token
		// is missing or expired and returns a token ready for the
		// Authorization header.
		AccessToken(ctx context.Context) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		credentials    storage.CredentialStore
		log            *logrus.Logger

		mu            sync.Mutex
		checked       bool
		user          *entities.User
		loginError    string
		registerError string
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	credentials storage.CredentialStore,
	log *logrus.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		credentials:    credentials,
		log:            log,
	}
}

// CheckAuth is the initial authentication probe. Whatever the outcome,
// the session ends up checked so guarded navigation is never stuck
// waiting forever.
func (s *userService) CheckAuth(ctx context.Context) {
	s.mu.Lock()
	if s.checked {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if s.credentials.RefreshToken() == "" {
		s.markChecked(nil)
		return
	}

	if _, err := s.FetchUser(ctx); err != nil {
		s.log.WithError(err).Info("auth probe failed, treating session as anonymous")
		s.markChecked(nil)
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (entities.User, error) {
	s.mu.Lock()
	s.registerError = ""
	s.mu.Unlock()

	result, err := s.userRepository.Register(ctx, req)
	if err != nil {
		s.mu.Lock()
		s.registerError = err.Error()
		s.mu.Unlock()
		return entities.User{}, err
	}

	if err := s.credentials.SetTokens(result.AccessToken, result.RefreshToken); err != nil {
		s.log.WithError(err).Warn("failed to persist credentials after register")
	}
	s.markChecked(&result.User)
	return result.User, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (entities.User, error) {
	s.mu.Lock()
	s.loginError = ""
	s.mu.Unlock()

	result, err := s.userRepository.Login(ctx, req)
	if err != nil {
		s.mu.Lock()
		s.loginError = err.Error()
		s.mu.Unlock()
		return entities.User{}, err
	}

	if err := s.credentials.SetTokens(result.AccessToken, result.RefreshToken); err != nil {
		s.log.WithError(err).Warn("failed to persist credentials after login")
	}
	s.markChecked(&result.User)
	return result.User, nil
}

// Logout clears both credentials together and drops the user, leaving
// the checked latch set.
func (s *userService) Logout(ctx context.Context) error {
	refreshToken := s.credentials.RefreshToken()
	if refreshToken != "" {
		if err := s.userRepository.Logout(ctx, refreshToken); err != nil {
			s.log.WithError(err).Warn("logout call failed, clearing local session anyway")
		}
	}

	if err := s.credentials.Clear(); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

func (s *userService) FetchUser(ctx context.Context) (entities.User, error) {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return entities.User{}, err
	}

	fetched, err := s.userRepository.GetUser(ctx, token)
	if err != nil {
		return entities.User{}, err
	}

	s.markChecked(&fetched)
	return fetched, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest) (entities.User, error) {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return entities.User{}, err
	}

	updated, err := s.userRepository.UpdateUser(ctx, token, req)
	if err != nil {
		return entities.User{}, err
	}

	s.mu.Lock()
	s.user = &updated
	s.mu.Unlock()
	return updated, nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	return s.userRepository.ForgotPassword(ctx, req)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	return s.userRepository.ResetPassword(ctx, req)
}

func (s *userService) IsChecked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checked
}

func (s *userService) CurrentUser() (entities.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return entities.User{}, false
	}
	return *s.user, true
}

func (s *userService) LoginError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginError
}

func (s *userService) RegisterError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registerError
}

func (s *userService) AccessToken(ctx context.Context) (string, error) {
	token := s.credentials.AccessToken()
	if token != "" && !s.jwtService.IsExpired(token) {
		return token, nil
	}

	refreshToken := s.credentials.RefreshToken()
	if refreshToken == "" {
		return "", domain.ErrNotAuthorized
	}

	pair, err := s.userRepository.RefreshTokens(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if err := s.credentials.SetTokens(pair.AccessToken, pair.RefreshToken); err != nil {
		s.log.WithError(err).Warn("failed to persist refreshed credentials")
	}
	return pair.AccessToken, nil
}

func (s *userService) markChecked(user *entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checked = true
	if user != nil {
		s.user = user
	}
}
