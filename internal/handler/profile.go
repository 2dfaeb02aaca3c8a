package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/waritphon/devconnect-api/internal/github"
	"github.com/waritphon/devconnect-api/internal/model"
	"github.com/waritphon/devconnect-api/internal/payload"
	"github.com/waritphon/devconnect-api/internal/usecase"
	"github.com/waritphon/devconnect-api/internal/validation"
)

const experienceDateLayout = "2006-01-02"

// ProfileHandler serves profile CRUD, the embedded experience list and the
// GitHub repository proxy.
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	githubClient   *github.Client
	validator      *validation.Validator
	logger         *zerolog.Logger
}

func NewProfileHandler(
	profileUsecase usecase.ProfileUsecase,
	githubClient *github.Client,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		githubClient:   githubClient,
		validator:      validator,
		logger:         logger,
	}
}

func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req payload.UpsertProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if fieldErrs, ok := h.validator.Struct(req); !ok {
		respondFieldErrors(w, fieldErrs)
		return
	}

	params := usecase.UpsertProfileParams{
		Status:         req.Status,
		Skills:         splitSkills(req.Skills),
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social:         socialFromRequest(req),
	}

	profile, err := h.profileUsecase.UpsertProfile(r.Context(), UserIDFromContext(r.Context()), params)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to upsert profile")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func socialFromRequest(req payload.UpsertProfileRequest) *model.Social {
	if req.Youtube == nil && req.Twitter == nil && req.Facebook == nil &&
		req.Linkedin == nil && req.Instagram == nil {
		return nil
	}

	social := &model.Social{}
	if req.Youtube != nil {
		social.Youtube = *req.Youtube
	}
	if req.Twitter != nil {
		social.Twitter = *req.Twitter
	}
	if req.Facebook != nil {
		social.Facebook = *req.Facebook
	}
	if req.Linkedin != nil {
		social.Linkedin = *req.Linkedin
	}
	if req.Instagram != nil {
		social.Instagram = *req.Instagram
	}
	return social
}

func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetOwnProfile(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "there is no profile for this user")
			return
		}

		h.logger.Error().Err(err).Msg("failed to load own profile")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileUsecase.ListProfiles(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list profiles")
		respondInternal(w)
		return
	}

	if profiles == nil {
		profiles = []*model.Profile{}
	}

	respondJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetProfileByUserID(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "there is no profile for this user")
			return
		}

		h.logger.Error().Err(err).Msg("failed to load profile")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// DeleteAccount removes the caller's profile, posts and user record.
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	err := h.profileUsecase.DeleteAccount(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete account")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, payload.MessageResponse{Message: "user deleted"})
}

func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	var req payload.AddExperienceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if fieldErrs, ok := h.validator.Struct(req); !ok {
		respondFieldErrors(w, fieldErrs)
		return
	}

	from, err := time.Parse(experienceDateLayout, req.From)
	if err != nil {
		respondFieldErrors(w, []validation.FieldError{{Field: "From", Message: "From must be a date in YYYY-MM-DD format"}})
		return
	}

	var to *time.Time
	if req.To != "" {
		parsed, err := time.Parse(experienceDateLayout, req.To)
		if err != nil {
			respondFieldErrors(w, []validation.FieldError{{Field: "To", Message: "To must be a date in YYYY-MM-DD format"}})
			return
		}
		to = &parsed
	}

	profile, err := h.profileUsecase.AddExperience(r.Context(), UserIDFromContext(r.Context()), usecase.ExperienceParams{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "there is no profile for this user")
			return
		}

		h.logger.Error().Err(err).Msg("failed to add experience")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.RemoveExperience(
		r.Context(),
		UserIDFromContext(r.Context()),
		chi.URLParam(r, "experienceID"),
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfileNotFound):
			respondError(w, http.StatusNotFound, "there is no profile for this user")
		case errors.Is(err, usecase.ErrExperienceNotFound):
			respondError(w, http.StatusNotFound, "experience entry not found")
		default:
			h.logger.Error().Err(err).Msg("failed to remove experience")
			respondInternal(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// GithubRepos proxies the user's latest public repositories from GitHub.
func (h *ProfileHandler) GithubRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.githubClient.ListRepos(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		switch {
		case errors.Is(err, github.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "no github profile found")
		default:
			h.logger.Error().Err(err).Msg("github api call failed")
			respondError(w, http.StatusBadGateway, "github is unavailable")
		}
		return
	}

	respondJSON(w, http.StatusOK, repos)
}
