package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/waritphon/devconnect-api/internal/model"
)

// ProfileRepository defines the interface for profile-related database
// operations. Experience entries live inside the profile document, so
// mutating them goes through ReplaceProfile.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	GetProfileByUserID(ctx context.Context, userID bson.ObjectID) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)
	UpdateProfile(ctx context.Context, userID bson.ObjectID, params UpdateProfileParams) (*model.Profile, error)
	ReplaceProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	DeleteProfileByUserID(ctx context.Context, userID bson.ObjectID) error
}

// UpdateProfileParams defines the optional parameters for updating a
// profile. Only the fields that are not nil will be updated.
type UpdateProfileParams struct {
	Status         *string
	Skills         *[]string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Social         *model.Social
}

const profileCollection = "profiles"

type profileMongoRepository struct {
	db *mongo.Database
}

func NewProfileMongoRepository(db *mongo.Database) ProfileRepository {
	return &profileMongoRepository{db: db}
}

func (r *profileMongoRepository) CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if profile.Experience == nil {
		profile.Experience = []model.Experience{}
	}

	result, err := r.db.Collection(profileCollection).InsertOne(ctx, profile)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		profile.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return profile, nil
}

func (r *profileMongoRepository) GetProfileByUserID(ctx context.Context, userID bson.ObjectID) (*model.Profile, error) {
	result := r.db.Collection(profileCollection).FindOne(ctx, bson.M{"user_id": userID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var profile model.Profile
	if err := result.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileMongoRepository) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	cursor, err := r.db.Collection(profileCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.Profile
	for cursor.Next(ctx) {
		var profile model.Profile
		if err := cursor.Decode(&profile); err != nil {
			return nil, err
		}
		profiles = append(profiles, &profile)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *profileMongoRepository) UpdateProfile(
	ctx context.Context,
	userID bson.ObjectID,
	params UpdateProfileParams,
) (*model.Profile, error) {
	// Build update query
	updateMap := bson.M{}
	if params.Status != nil {
		updateMap["status"] = *params.Status
	}
	if params.Skills != nil {
		updateMap["skills"] = *params.Skills
	}
	if params.Company != nil {
		updateMap["company"] = *params.Company
	}
	if params.Website != nil {
		updateMap["website"] = *params.Website
	}
	if params.Location != nil {
		updateMap["location"] = *params.Location
	}
	if params.Bio != nil {
		updateMap["bio"] = *params.Bio
	}
	if params.GithubUsername != nil {
		updateMap["github_username"] = *params.GithubUsername
	}
	if params.Social != nil {
		updateMap["social"] = *params.Social
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no profile fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(profileCollection).FindOneAndUpdate(
		ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var profile model.Profile
	if err := result.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileMongoRepository) ReplaceProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	profile.UpdatedAt = time.Now()

	result, err := r.db.Collection(profileCollection).ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return profile, nil
}

func (r *profileMongoRepository) DeleteProfileByUserID(ctx context.Context, userID bson.ObjectID) error {
	_, err := r.db.Collection(profileCollection).DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
