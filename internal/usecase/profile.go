package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/waritphon/devconnect-api/internal/model"
	"github.com/waritphon/devconnect-api/internal/repository"
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrExperienceNotFound = errors.New("experience entry not found")
)

// ProfileUsecase defines the interface for profile operations, including
// the embedded experience list.
type ProfileUsecase interface {
	UpsertProfile(ctx context.Context, userID string, params UpsertProfileParams) (*model.Profile, error)
	GetOwnProfile(ctx context.Context, userID string) (*model.Profile, error)
	GetProfileByUserID(ctx context.Context, userID string) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, userID string, params ExperienceParams) (*model.Profile, error)
	RemoveExperience(ctx context.Context, userID, experienceID string) (*model.Profile, error)
}

// UpsertProfileParams defines the profile fields supplied by the caller.
// Optional fields are pointers; only non-nil fields are written on update.
type UpsertProfileParams struct {
	Status         string
	Skills         []string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Social         *model.Social
}

// ExperienceParams defines a new experience entry.
type ExperienceParams struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type profileUsecase struct {
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewProfileUsecase(
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (u *profileUsecase) UpsertProfile(
	ctx context.Context,
	userID string,
	params UpsertProfileParams,
) (*model.Profile, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	_, err = u.profileRepo.GetProfileByUserID(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		// First submission creates the profile.
		profile := &model.Profile{
			UserID: ownerID,
			Status: params.Status,
			Skills: params.Skills,
		}
		applyOptionalFields(profile, params)

		return u.profileRepo.CreateProfile(ctx, profile)
	}

	update := repository.UpdateProfileParams{
		Status:         &params.Status,
		Skills:         &params.Skills,
		Company:        params.Company,
		Website:        params.Website,
		Location:       params.Location,
		Bio:            params.Bio,
		GithubUsername: params.GithubUsername,
		Social:         params.Social,
	}

	return u.profileRepo.UpdateProfile(ctx, ownerID, update)
}

func applyOptionalFields(profile *model.Profile, params UpsertProfileParams) {
	if params.Company != nil {
		profile.Company = *params.Company
	}
	if params.Website != nil {
		profile.Website = *params.Website
	}
	if params.Location != nil {
		profile.Location = *params.Location
	}
	if params.Bio != nil {
		profile.Bio = *params.Bio
	}
	if params.GithubUsername != nil {
		profile.GithubUsername = *params.GithubUsername
	}
	if params.Social != nil {
		profile.Social = *params.Social
	}
}

func (u *profileUsecase) GetOwnProfile(ctx context.Context, userID string) (*model.Profile, error) {
	return u.GetProfileByUserID(ctx, userID)
}

func (u *profileUsecase) GetProfileByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		// Malformed ids surface the same way as lookup misses.
		return nil, ErrProfileNotFound
	}

	profile, err := u.profileRepo.GetProfileByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	if err := u.hydrateOwners(ctx, []*model.Profile{profile}); err != nil {
		return nil, err
	}

	return profile, nil
}

func (u *profileUsecase) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	profiles, err := u.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.hydrateOwners(ctx, profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

// hydrateOwners fills in the denormalized owner name and avatar for each
// profile with a single batched user lookup.
func (u *profileUsecase) hydrateOwners(ctx context.Context, profiles []*model.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	ids := make([]bson.ObjectID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}

	users, err := u.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[bson.ObjectID]*model.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	for _, p := range profiles {
		if user, ok := byID[p.UserID]; ok {
			p.UserName = user.Name
			p.UserAvatar = user.Avatar
		}
	}

	return nil
}

func (u *profileUsecase) DeleteAccount(ctx context.Context, userID string) error {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := u.profileRepo.DeleteProfileByUserID(ctx, ownerID); err != nil {
		return err
	}

	if err := u.postRepo.DeletePostsByUserID(ctx, ownerID); err != nil {
		return err
	}

	if _, err := u.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	return nil
}

func (u *profileUsecase) AddExperience(
	ctx context.Context,
	userID string,
	params ExperienceParams,
) (*model.Profile, error) {
	profile, err := u.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := model.Experience{
		ID:          bson.NewObjectID(),
		Title:       params.Title,
		Company:     params.Company,
		Location:    params.Location,
		From:        params.From,
		To:          params.To,
		Current:     params.Current,
		Description: params.Description,
	}

	// Newest entries first.
	profile.Experience = append([]model.Experience{entry}, profile.Experience...)

	return u.profileRepo.ReplaceProfile(ctx, profile)
}

func (u *profileUsecase) RemoveExperience(ctx context.Context, userID, experienceID string) (*model.Profile, error) {
	entryID, err := bson.ObjectIDFromHex(experienceID)
	if err != nil {
		return nil, ErrExperienceNotFound
	}

	profile, err := u.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, entry := range profile.Experience {
		if entry.ID == entryID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrExperienceNotFound
	}

	profile.Experience = append(profile.Experience[:index], profile.Experience[index+1:]...)

	return u.profileRepo.ReplaceProfile(ctx, profile)
}

func (u *profileUsecase) ownProfile(ctx context.Context, userID string) (*model.Profile, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	profile, err := u.profileRepo.GetProfileByUserID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	return profile, nil
}
