package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post represents a message posted by a user. Likes and comments are
// embedded lists; the author's name and avatar are denormalized at create
// time so reads need no join.
type Post struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID `bson:"user_id"       json:"user_id"`
	Text      string        `bson:"text"          json:"text"`
	Name      string        `bson:"name"          json:"name"`
	Avatar    string        `bson:"avatar"        json:"avatar"`
	Likes     []Like        `bson:"likes"         json:"likes"`
	Comments  []Comment     `bson:"comments"      json:"comments"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}

// Like records a single user's like on a post. At most one like per user.
type Like struct {
	UserID bson.ObjectID `bson:"user_id" json:"user_id"`
}

// Comment is a single comment embedded in a post.
type Comment struct {
	ID        bson.ObjectID `bson:"_id"        json:"id"`
	UserID    bson.ObjectID `bson:"user_id"    json:"user_id"`
	Text      string        `bson:"text"       json:"text"`
	Name      string        `bson:"name"       json:"name"`
	Avatar    string        `bson:"avatar"     json:"avatar"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

// LikedBy reports whether the given user already likes the post.
func (p *Post) LikedBy(userID bson.ObjectID) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}
