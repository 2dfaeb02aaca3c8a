package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/waritphon/devconnect-api/internal/payload"
	"github.com/waritphon/devconnect-api/internal/usecase"
	"github.com/waritphon/devconnect-api/internal/validation"
)

// AuthHandler serves registration, login and current-user lookup.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validation.Validator
	logger      *zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if fieldErrs, ok := h.validator.Struct(req); !ok {
		respondFieldErrors(w, fieldErrs)
		return
	}

	token, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			respondError(w, http.StatusConflict, "user already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to register user")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, payload.TokenResponse{Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if fieldErrs, ok := h.validator.Struct(req); !ok {
		respondFieldErrors(w, fieldErrs)
		return
	}

	token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		h.logger.Error().Err(err).Msg("failed to log user in")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, payload.TokenResponse{Token: token})
}

// Me returns the authenticated user's account without the password hash.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.CurrentUser(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to load current user")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
