package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/waritphon/devconnect-api/internal/model"
)

// In-memory repository implementations backing the test suites. They mirror
// the document-store contract: reads hand out copies, and writes replace
// whole records, so mutating a returned value does not change stored state
// until it is written back.

type userMemoryRepository struct {
	mu    sync.RWMutex
	users map[bson.ObjectID]model.User
}

func NewUserMemoryRepository() UserRepository {
	return &userMemoryRepository{users: make(map[bson.ObjectID]model.User)}
}

func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

func (r *userMemoryRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, duplicateKeyError()
		}
	}

	now := time.Now()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user

	return user, nil
}

func (r *userMemoryRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return &user, nil
}

func (r *userMemoryRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *userMemoryRepository) GetUsersByIDs(_ context.Context, ids []bson.ObjectID) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []*model.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			found := user
			users = append(users, &found)
		}
	}

	return users, nil
}

func (r *userMemoryRepository) DeleteUser(_ context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	delete(r.users, objectID)

	return &user, nil
}

type profileMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[bson.ObjectID]model.Profile
}

func NewProfileMemoryRepository() ProfileRepository {
	return &profileMemoryRepository{profiles: make(map[bson.ObjectID]model.Profile)}
}

func (r *profileMemoryRepository) CreateProfile(_ context.Context, profile *model.Profile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	profile.ID = bson.NewObjectID()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.Experience == nil {
		profile.Experience = []model.Experience{}
	}
	r.profiles[profile.ID] = *profile

	return profile, nil
}

func (r *profileMemoryRepository) GetProfileByUserID(_ context.Context, userID bson.ObjectID) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, profile := range r.profiles {
		if profile.UserID == userID {
			found := profile
			found.Experience = append([]model.Experience(nil), profile.Experience...)
			return &found, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *profileMemoryRepository) ListProfiles(_ context.Context) ([]*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var profiles []*model.Profile
	for _, profile := range r.profiles {
		found := profile
		profiles = append(profiles, &found)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
	})

	return profiles, nil
}

func (r *profileMemoryRepository) UpdateProfile(
	_ context.Context,
	userID bson.ObjectID,
	params UpdateProfileParams,
) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, profile := range r.profiles {
		if profile.UserID != userID {
			continue
		}

		if params.Status != nil {
			profile.Status = *params.Status
		}
		if params.Skills != nil {
			profile.Skills = *params.Skills
		}
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
		profile.UpdatedAt = time.Now()

		r.profiles[id] = profile
		found := profile
		return &found, nil
	}

	return nil, mongo.ErrNoDocuments
}

func (r *profileMemoryRepository) ReplaceProfile(_ context.Context, profile *model.Profile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.ID]; !ok {
		return nil, mongo.ErrNoDocuments
	}

	profile.UpdatedAt = time.Now()
	r.profiles[profile.ID] = *profile

	return profile, nil
}

func (r *profileMemoryRepository) DeleteProfileByUserID(_ context.Context, userID bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, profile := range r.profiles {
		if profile.UserID == userID {
			delete(r.profiles, id)
			return nil
		}
	}

	return nil
}

type postMemoryRepository struct {
	mu    sync.RWMutex
	posts map[bson.ObjectID]model.Post
}

func NewPostMemoryRepository() PostRepository {
	return &postMemoryRepository{posts: make(map[bson.ObjectID]model.Post)}
}

func (r *postMemoryRepository) CreatePost(_ context.Context, post *model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	post.ID = bson.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Likes == nil {
		post.Likes = []model.Like{}
	}
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}
	r.posts[post.ID] = *post

	return post, nil
}

func (r *postMemoryRepository) GetPost(_ context.Context, id string) (*model.Post, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	found := post
	found.Likes = append([]model.Like(nil), post.Likes...)
	found.Comments = append([]model.Comment(nil), post.Comments...)

	return &found, nil
}

func (r *postMemoryRepository) ListPosts(_ context.Context) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []*model.Post
	for _, post := range r.posts {
		found := post
		posts = append(posts, &found)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts, nil
}

func (r *postMemoryRepository) ReplacePost(_ context.Context, post *model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return nil, mongo.ErrNoDocuments
	}

	post.UpdatedAt = time.Now()
	r.posts[post.ID] = *post

	return post, nil
}

func (r *postMemoryRepository) DeletePost(_ context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return mongo.ErrNoDocuments
	}

	delete(r.posts, id)

	return nil
}

func (r *postMemoryRepository) DeletePostsByUserID(_ context.Context, userID bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, post := range r.posts {
		if post.UserID == userID {
			delete(r.posts, id)
		}
	}

	return nil
}
