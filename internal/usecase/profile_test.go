package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waritphon/devconnect-api/internal/model"
	"github.com/waritphon/devconnect-api/internal/repository"
	"github.com/waritphon/devconnect-api/internal/usecase"
)

type profileFixture struct {
	profileUsecase usecase.ProfileUsecase
	postUsecase    usecase.PostUsecase
	userRepo       repository.UserRepository
	owner          *model.User
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	logger := zerolog.Nop()
	userRepo := repository.NewUserMemoryRepository()
	profileRepo := repository.NewProfileMemoryRepository()
	postRepo := repository.NewPostMemoryRepository()
	authUsecase := usecase.NewAuthUsecase(userRepo, newTokenService(), nil, &logger)

	_, err := authUsecase.Register(context.Background(), usecase.RegisterParams{
		Name: "Ann", Email: "a@x.com", Password: "password",
	})
	require.NoError(t, err)

	owner, err := userRepo.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)

	return &profileFixture{
		profileUsecase: usecase.NewProfileUsecase(profileRepo, postRepo, userRepo),
		postUsecase:    usecase.NewPostUsecase(postRepo, userRepo),
		userRepo:       userRepo,
		owner:          owner,
	}
}

func strPtr(s string) *string { return &s }

func (f *profileFixture) upsert(t *testing.T, params usecase.UpsertProfileParams) *model.Profile {
	t.Helper()

	profile, err := f.profileUsecase.UpsertProfile(context.Background(), f.owner.ID.Hex(), params)
	require.NoError(t, err)
	return profile
}

func TestUpsertProfile_CreateThenPartialUpdate(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)

	created := f.upsert(t, usecase.UpsertProfileParams{
		Status: "Developer",
		Skills: []string{"Go", "MongoDB"},
		Bio:    strPtr("likes plumbing"),
	})
	assert.Equal(t, f.owner.ID, created.UserID)
	assert.Equal(t, []string{"Go", "MongoDB"}, created.Skills)
	assert.Equal(t, "likes plumbing", created.Bio)

	// Second submission updates only the supplied fields.
	updated := f.upsert(t, usecase.UpsertProfileParams{
		Status:  "Senior Developer",
		Skills:  []string{"Go"},
		Company: strPtr("Acme"),
	})
	assert.Equal(t, "Senior Developer", updated.Status)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "likes plumbing", updated.Bio)
}

func TestGetProfileByUserID(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	f.upsert(t, usecase.UpsertProfileParams{Status: "Developer", Skills: []string{"Go"}})

	t.Run("hydrates owner fields", func(t *testing.T) {
		profile, err := f.profileUsecase.GetProfileByUserID(context.Background(), f.owner.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Ann", profile.UserName)
		assert.Equal(t, f.owner.Avatar, profile.UserAvatar)
	})

	t.Run("malformed id reads as not found", func(t *testing.T) {
		_, err := f.profileUsecase.GetProfileByUserID(context.Background(), "not-hex")
		assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := f.profileUsecase.GetProfileByUserID(context.Background(), "ffffffffffffffffffffffff")
		assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
	})
}

func TestExperience(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	f.upsert(t, usecase.UpsertProfileParams{Status: "Developer", Skills: []string{"Go"}})

	from, _ := time.Parse("2006-01-02", "2020-01-01")

	profile, err := f.profileUsecase.AddExperience(context.Background(), f.owner.ID.Hex(), usecase.ExperienceParams{
		Title:   "Engineer",
		Company: "Acme",
		From:    from,
		Current: true,
	})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	entryID := profile.Experience[0].ID

	t.Run("newest entry first", func(t *testing.T) {
		later, err := f.profileUsecase.AddExperience(context.Background(), f.owner.ID.Hex(), usecase.ExperienceParams{
			Title:   "Senior Engineer",
			Company: "Acme",
			From:    from.AddDate(2, 0, 0),
		})
		require.NoError(t, err)
		require.Len(t, later.Experience, 2)
		assert.Equal(t, "Senior Engineer", later.Experience[0].Title)
	})

	t.Run("remove unknown entry id leaves list unchanged", func(t *testing.T) {
		_, err := f.profileUsecase.RemoveExperience(
			context.Background(), f.owner.ID.Hex(), "ffffffffffffffffffffffff")
		assert.ErrorIs(t, err, usecase.ErrExperienceNotFound)

		profile, err := f.profileUsecase.GetOwnProfile(context.Background(), f.owner.ID.Hex())
		require.NoError(t, err)
		assert.Len(t, profile.Experience, 2)
	})

	t.Run("remove existing entry", func(t *testing.T) {
		profile, err := f.profileUsecase.RemoveExperience(
			context.Background(), f.owner.ID.Hex(), entryID.Hex())
		require.NoError(t, err)
		assert.Len(t, profile.Experience, 1)
	})
}

func TestAddExperience_WithoutProfile(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)

	_, err := f.profileUsecase.AddExperience(context.Background(), f.owner.ID.Hex(), usecase.ExperienceParams{
		Title:   "Engineer",
		Company: "Acme",
		From:    time.Now(),
	})
	assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
}

func TestDeleteAccount_Cascades(t *testing.T) {
	t.Parallel()

	f := newProfileFixture(t)
	f.upsert(t, usecase.UpsertProfileParams{Status: "Developer", Skills: []string{"Go"}})

	_, err := f.postUsecase.CreatePost(context.Background(), f.owner.ID.Hex(), "soon gone")
	require.NoError(t, err)

	err = f.profileUsecase.DeleteAccount(context.Background(), f.owner.ID.Hex())
	require.NoError(t, err)

	_, err = f.userRepo.GetUser(context.Background(), f.owner.ID.Hex())
	assert.Error(t, err)

	_, err = f.profileUsecase.GetProfileByUserID(context.Background(), f.owner.ID.Hex())
	assert.ErrorIs(t, err, usecase.ErrProfileNotFound)

	posts, err := f.postUsecase.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}
