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
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("post belongs to another user")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post has not been liked")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("comment belongs to another user")
)

// PostUsecase defines the interface for post operations, including the
// embedded like and comment lists.
type PostUsecase interface {
	CreatePost(ctx context.Context, userID, text string) (*model.Post, error)
	GetPost(ctx context.Context, id string) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
	DeletePost(ctx context.Context, userID, postID string) error
	LikePost(ctx context.Context, userID, postID string) ([]model.Like, error)
	UnlikePost(ctx context.Context, userID, postID string) ([]model.Like, error)
	AddComment(ctx context.Context, userID, postID, text string) ([]model.Comment, error)
	RemoveComment(ctx context.Context, userID, postID, commentID string) ([]model.Comment, error)
}

type postUsecase struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostUsecase(postRepo repository.PostRepository, userRepo repository.UserRepository) PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (u *postUsecase) CreatePost(ctx context.Context, userID, text string) (*model.Post, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return u.postRepo.CreatePost(ctx, &model.Post{
		UserID: user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	})
}

func (u *postUsecase) GetPost(ctx context.Context, id string) (*model.Post, error) {
	post, err := u.postRepo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}

		return nil, err
	}

	return post, nil
}

func (u *postUsecase) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return u.postRepo.ListPosts(ctx)
}

func (u *postUsecase) DeletePost(ctx context.Context, userID, postID string) error {
	post, err := u.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID.Hex() != userID {
		return ErrNotPostOwner
	}

	return u.postRepo.DeletePost(ctx, post.ID)
}

func (u *postUsecase) LikePost(ctx context.Context, userID, postID string) ([]model.Like, error) {
	callerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	post, err := u.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.LikedBy(callerID) {
		return nil, ErrAlreadyLiked
	}

	post.Likes = append([]model.Like{{UserID: callerID}}, post.Likes...)

	post, err = u.postRepo.ReplacePost(ctx, post)
	if err != nil {
		return nil, err
	}

	return post.Likes, nil
}

func (u *postUsecase) UnlikePost(ctx context.Context, userID, postID string) ([]model.Like, error) {
	callerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	post, err := u.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, like := range post.Likes {
		if like.UserID == callerID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrNotLiked
	}

	post.Likes = append(post.Likes[:index], post.Likes[index+1:]...)

	post, err = u.postRepo.ReplacePost(ctx, post)
	if err != nil {
		return nil, err
	}

	return post.Likes, nil
}

func (u *postUsecase) AddComment(ctx context.Context, userID, postID, text string) ([]model.Comment, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	post, err := u.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		ID:        bson.NewObjectID(),
		UserID:    user.ID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now(),
	}

	post.Comments = append([]model.Comment{comment}, post.Comments...)

	post, err = u.postRepo.ReplacePost(ctx, post)
	if err != nil {
		return nil, err
	}

	return post.Comments, nil
}

func (u *postUsecase) RemoveComment(ctx context.Context, userID, postID, commentID string) ([]model.Comment, error) {
	entryID, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, ErrCommentNotFound
	}

	post, err := u.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, comment := range post.Comments {
		if comment.ID == entryID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrCommentNotFound
	}

	if post.Comments[index].UserID.Hex() != userID {
		return nil, ErrNotCommentOwner
	}

	post.Comments = append(post.Comments[:index], post.Comments[index+1:]...)

	post, err = u.postRepo.ReplacePost(ctx, post)
	if err != nil {
		return nil, err
	}

	return post.Comments, nil
}
