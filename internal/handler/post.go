package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/waritphon/devconnect-api/internal/model"
	"github.com/waritphon/devconnect-api/internal/payload"
	"github.com/waritphon/devconnect-api/internal/usecase"
	"github.com/waritphon/devconnect-api/internal/validation"
)

// PostHandler serves post CRUD and the embedded like and comment lists.
type PostHandler struct {
	postUsecase usecase.PostUsecase
	validator   *validation.Validator
	logger      *zerolog.Logger
}

func NewPostHandler(
	postUsecase usecase.PostUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		validator:   validator,
		logger:      logger,
	}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if fieldErrs, ok := h.validator.Struct(req); !ok {
		respondFieldErrors(w, fieldErrs)
		return
	}

	post, err := h.postUsecase.CreatePost(r.Context(), UserIDFromContext(r.Context()), req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to create post")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postUsecase.ListPosts(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list posts")
		respondInternal(w)
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}

	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.postUsecase.GetPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			respondError(w, http.StatusNotFound, "post not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to load post")
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.postUsecase.DeletePost(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "postID"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			respondError(w, http.StatusNotFound, "post not found")
		case errors.Is(err, usecase.ErrNotPostOwner):
			respondError(w, http.StatusForbidden, "user not authorized")
		default:
			h.logger.Error().Err(err).Msg("failed to delete post")
			respondInternal(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, payload.MessageResponse{Message: "post deleted"})
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	likes, err := h.postUsecase.LikePost(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "postID"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			respondError(w, http.StatusNotFound, "post not found")
		case errors.Is(err, usecase.ErrAlreadyLiked):
			respondError(w, http.StatusBadRequest, "post already liked")
		default:
			h.logger.Error().Err(err).Msg("failed to like post")
			respondInternal(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, likes)
}

func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	likes, err := h.postUsecase.UnlikePost(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "postID"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			respondError(w, http.StatusNotFound, "post not found")
		case errors.Is(err, usecase.ErrNotLiked):
			respondError(w, http.StatusBadRequest, "post has not yet been liked")
		default:
			h.logger.Error().Err(err).Msg("failed to unlike post")
			respondInternal(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, likes)
}

func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req payload.AddCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if fieldErrs, ok := h.validator.Struct(req); !ok {
		respondFieldErrors(w, fieldErrs)
		return
	}

	comments, err := h.postUsecase.AddComment(
		r.Context(),
		UserIDFromContext(r.Context()),
		chi.URLParam(r, "postID"),
		req.Text,
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			respondError(w, http.StatusNotFound, "post not found")
		case errors.Is(err, usecase.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		default:
			h.logger.Error().Err(err).Msg("failed to add comment")
			respondInternal(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, comments)
}

func (h *PostHandler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	comments, err := h.postUsecase.RemoveComment(
		r.Context(),
		UserIDFromContext(r.Context()),
		chi.URLParam(r, "postID"),
		chi.URLParam(r, "commentID"),
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			respondError(w, http.StatusNotFound, "post not found")
		case errors.Is(err, usecase.ErrCommentNotFound):
			respondError(w, http.StatusNotFound, "comment not found")
		case errors.Is(err, usecase.ErrNotCommentOwner):
			respondError(w, http.StatusForbidden, "user not authorized")
		default:
			h.logger.Error().Err(err).Msg("failed to remove comment")
			respondInternal(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, comments)
}
