package user

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
	"github.com/FallenAngelllll/stellar-burgers/internal/utils/httpclient"
)

type (
	UserRepository interface {
		Register(ctx context.Context, req domain.RegisterRequest) (AuthResult, error)
		Login(ctx context.Context, req domain.LoginRequest) (AuthResult, error)
		Logout(ctx context.Context, refreshToken string) error
		RefreshTokens(ctx context.Context, refreshToken string) (TokenPair, error)
		GetUser(ctx context.Context, accessToken string) (entities.User, error)
		UpdateUser(ctx context.Context, accessToken string, req domain.UpdateUserRequest) (entities.User, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	AuthResult struct {
		User         entities.User
		AccessToken  string
		RefreshToken string
	}

	TokenPair struct {
		AccessToken  string
		RefreshToken string
	}

	userRepository struct {
		api *httpclient.Client
	}

	authEnvelope struct {
		Success      bool          `json:"success"`
		Message      string        `json:"message"`
		User         entities.User `json:"user"`
		AccessToken  string        `json:"accessToken"`
		RefreshToken string        `json:"refreshToken"`
	}

	plainEnvelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
)

func NewUserRepository(api *httpclient.Client) UserRepository {
	return &userRepository{api: api}
}

func (r *userRepository) Register(ctx context.Context, req domain.RegisterRequest) (AuthResult, error) {
	return r.auth(ctx, "/auth/register", req)
}

func (r *userRepository) Login(ctx context.Context, req domain.LoginRequest) (AuthResult, error) {
	return r.auth(ctx, "/auth/login", req)
}

func (r *userRepository) auth(ctx context.Context, path string, body any) (AuthResult, error) {
	var res authEnvelope
	if err := r.api.DoJSON(ctx, http.MethodPost, path, "", body, &res); err != nil {
		return AuthResult{}, err
	}
	if !res.Success {
		return AuthResult{}, envelopeError(res.Message)
	}
	return AuthResult{
		User:         res.User,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	}, nil
}

func (r *userRepository) Logout(ctx context.Context, refreshToken string) error {
	var res plainEnvelope
	body := map[string]string{"token": refreshToken}
	if err := r.api.DoJSON(ctx, http.MethodPost, "/auth/logout", "", body, &res); err != nil {
		return err
	}
	if !res.Success {
		return envelopeError(res.Message)
	}
	return nil
}

func (r *userRepository) RefreshTokens(ctx context.Context, refreshToken string) (TokenPair, error) {
	var res authEnvelope
	body := map[string]string{"token": refreshToken}
	if err := r.api.DoJSON(ctx, http.MethodPost, "/auth/token", "", body, &res); err != nil {
		return TokenPair{}, err
	}
	if !res.Success {
		return TokenPair{}, envelopeError(res.Message)
	}
	return TokenPair{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	}, nil
}

func (r *userRepository) GetUser(ctx context.Context, accessToken string) (entities.User, error) {
	var res authEnvelope
	if err := r.api.DoJSON(ctx, http.MethodGet, "/auth/user", accessToken, nil, &res); err != nil {
		return entities.User{}, err
	}
	if !res.Success {
		return entities.User{}, envelopeError(res.Message)
	}
	return res.User, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, accessToken string, req domain.UpdateUserRequest) (entities.User, error) {
	var res authEnvelope
	if err := r.api.DoJSON(ctx, http.MethodPatch, "/auth/user", accessToken, req, &res); err != nil {
		return entities.User{}, err
	}
	if !res.Success {
		return entities.User{}, envelopeError(res.Message)
	}
	return res.User, nil
}

func (r *userRepository) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	var res plainEnvelope
	if err := r.api.DoJSON(ctx, http.MethodPost, "/password-reset", "", req, &res); err != nil {
		return err
	}
	if !res.Success {
		return envelopeError(res.Message)
	}
	return nil
}

func (r *userRepository) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	var res plainEnvelope
	if err := r.api.DoJSON(ctx, http.MethodPost, "/password-reset/reset", "", req, &res); err != nil {
		return err
	}
	if !res.Success {
		return envelopeError(res.Message)
	}
	return nil
}

func envelopeError(message string) error {
	if message == "" {
		message = domain.FallbackErrorMessage
	}
	return errors.New(message)
}
