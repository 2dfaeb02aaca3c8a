package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waritphon/devconnect-api/internal/auth"
	"github.com/waritphon/devconnect-api/internal/github"
	"github.com/waritphon/devconnect-api/internal/handler"
	"github.com/waritphon/devconnect-api/internal/repository"
	"github.com/waritphon/devconnect-api/internal/usecase"
	"github.com/waritphon/devconnect-api/internal/validation"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	tokens := auth.NewTokenService("test-secret", "devconnect-api", time.Hour)

	userRepo := repository.NewUserMemoryRepository()
	profileRepo := repository.NewProfileMemoryRepository()
	postRepo := repository.NewPostMemoryRepository()

	authUsecase := usecase.NewAuthUsecase(userRepo, tokens, nil, &logger)
	profileUsecase := usecase.NewProfileUsecase(profileRepo, postRepo, userRepo)
	postUsecase := usecase.NewPostUsecase(postRepo, userRepo)

	validator := validation.New()

	router := handler.NewRouter(
		tokens,
		handler.NewAuthHandler(authUsecase, validator, &logger),
		handler.NewProfileHandler(profileUsecase, github.NewClient("", ""), validator, &logger),
		handler.NewPostHandler(postUsecase, validator, &logger),
		&logger,
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func registerUser(t *testing.T, baseURL, name, email, password string) string {
	t.Helper()

	var tokenResp struct {
		Token string `json:"token"`
	}
	status := doJSON(t, http.MethodPost, baseURL+"/api/users", "", map[string]string{
		"name": name, "email": email, "password": password,
	}, &tokenResp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, tokenResp.Token)
	return tokenResp.Token
}

// Register, fail a login, post, like, like again. Walks the happy path and
// the duplicate-action rejection end to end through the real router.
func TestRegisterLoginPostLikeScenario(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	token := registerUser(t, server.URL, "Ann", "a@x.com", "password")

	t.Run("login with wrong password yields no token", func(t *testing.T) {
		var errResp struct {
			Error string `json:"error"`
			Token string `json:"token"`
		}
		status := doJSON(t, http.MethodPost, server.URL+"/api/auth", "", map[string]string{
			"email": "a@x.com", "password": "wrong-password",
		}, &errResp)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Empty(t, errResp.Token)
	})

	var post struct {
		ID string `json:"id"`
	}
	status := doJSON(t, http.MethodPost, server.URL+"/api/post", token, map[string]string{
		"text": "hello devconnect",
	}, &post)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, post.ID)

	var likes []json.RawMessage
	status = doJSON(t, http.MethodPut, server.URL+"/api/post/like/"+post.ID, token, nil, &likes)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, likes, 1)

	var errResp struct {
		Error string `json:"error"`
	}
	status = doJSON(t, http.MethodPut, server.URL+"/api/post/like/"+post.ID, token, nil, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "post already liked", errResp.Error)

	var stored struct {
		Likes []json.RawMessage `json:"likes"`
	}
	status = doJSON(t, http.MethodGet, server.URL+"/api/post/"+post.ID, token, nil, &stored)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, stored.Likes, 1)
}

func TestRegister_ValidationErrors(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	var errResp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	status := doJSON(t, http.MethodPost, server.URL+"/api/users", "", map[string]string{
		"name": "Ann", "email": "not-an-email", "password": "pw",
	}, &errResp)

	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, errResp.Errors, 2)

	fields := []string{errResp.Errors[0].Field, errResp.Errors[1].Field}
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	registerUser(t, server.URL, "Ann", "a@x.com", "password")

	status := doJSON(t, http.MethodPost, server.URL+"/api/users", "", map[string]string{
		"name": "Impostor", "email": "a@x.com", "password": "password",
	}, nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth"},
		{http.MethodGet, "/api/profile/me"},
		{http.MethodDelete, "/api/profile"},
		{http.MethodGet, "/api/post"},
		{http.MethodPut, "/api/post/like/ffffffffffffffffffffffff"},
	} {
		status := doJSON(t, route.method, server.URL+route.path, "", nil, nil)
		assert.Equalf(t, http.StatusUnauthorized, status, "%s %s", route.method, route.path)
	}
}

func TestPublicProfileRoutes(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	token := registerUser(t, server.URL, "Ann", "a@x.com", "password")

	status := doJSON(t, http.MethodPost, server.URL+"/api/profile", token, map[string]string{
		"status": "Developer",
		"skills": "Go, MongoDB , ",
	}, nil)
	require.Equal(t, http.StatusOK, status)

	var profiles []struct {
		Status   string   `json:"status"`
		Skills   []string `json:"skills"`
		UserName string   `json:"user_name"`
	}
	status = doJSON(t, http.MethodGet, server.URL+"/api/profile", "", nil, &profiles)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Developer", profiles[0].Status)
	assert.Equal(t, []string{"Go", "MongoDB"}, profiles[0].Skills)
	assert.Equal(t, "Ann", profiles[0].UserName)
}

func TestMe_OmitsPasswordHash(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	token := registerUser(t, server.URL, "Ann", "a@x.com", "password")

	var raw map[string]json.RawMessage
	status := doJSON(t, http.MethodGet, server.URL+"/api/auth", token, nil, &raw)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, raw, "email")
	assert.NotContains(t, raw, "password_hash")
}
