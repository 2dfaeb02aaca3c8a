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

// PostRepository defines the interface for post-related database operations.
// Like and comment mutations read the post, change it in memory and write
// it back through ReplacePost (whole-document replace semantics).
type PostRepository interface {
	CreatePost(ctx context.Context, post *model.Post) (*model.Post, error)
	GetPost(ctx context.Context, id string) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
	ReplacePost(ctx context.Context, post *model.Post) (*model.Post, error)
	DeletePost(ctx context.Context, id bson.ObjectID) error
	DeletePostsByUserID(ctx context.Context, userID bson.ObjectID) error
}

const postCollection = "posts"

type postMongoRepository struct {
	db *mongo.Database
}

func NewPostMongoRepository(db *mongo.Database) PostRepository {
	return &postMongoRepository{db: db}
}

func (r *postMongoRepository) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	if post.Likes == nil {
		post.Likes = []model.Like{}
	}
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}

	result, err := r.db.Collection(postCollection).InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		post.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return post, nil
}

func (r *postMongoRepository) GetPost(ctx context.Context, id string) (*model.Post, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(postCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var post model.Post
	if err := result.Decode(&post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postMongoRepository) ListPosts(ctx context.Context) ([]*model.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(postCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	for cursor.Next(ctx) {
		var post model.Post
		if err := cursor.Decode(&post); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postMongoRepository) ReplacePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	post.UpdatedAt = time.Now()

	result, err := r.db.Collection(postCollection).ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return post, nil
}

func (r *postMongoRepository) DeletePost(ctx context.Context, id bson.ObjectID) error {
	result := r.db.Collection(postCollection).FindOneAndDelete(ctx, bson.M{"_id": id})
	return result.Err()
}

func (r *postMongoRepository) DeletePostsByUserID(ctx context.Context, userID bson.ObjectID) error {
	_, err := r.db.Collection(postCollection).DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
