package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Profile represents a user's public developer profile. Experience entries
// are embedded in the profile document rather than stored as a separate
// collection.
type Profile struct {
	ID             bson.ObjectID `bson:"_id,omitempty"             json:"id"`
	UserID         bson.ObjectID `bson:"user_id"                   json:"user_id"`
	Status         string        `bson:"status"                    json:"status"`
	Skills         []string      `bson:"skills"                    json:"skills"`
	Company        string        `bson:"company,omitempty"         json:"company,omitempty"`
	Website        string        `bson:"website,omitempty"         json:"website,omitempty"`
	Location       string        `bson:"location,omitempty"        json:"location,omitempty"`
	Bio            string        `bson:"bio,omitempty"             json:"bio,omitempty"`
	GithubUsername string        `bson:"github_username,omitempty" json:"github_username,omitempty"`
	Social         Social        `bson:"social"                    json:"social"`
	Experience     []Experience  `bson:"experience"                json:"experience"`
	CreatedAt      time.Time     `bson:"created_at"                json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at"                json:"updated_at"`

	// Denormalized owner fields, filled in at read time. Never persisted.
	UserName   string `bson:"-" json:"user_name,omitempty"`
	UserAvatar string `bson:"-" json:"user_avatar,omitempty"`
}

// Social holds optional links to a user's social accounts.
type Social struct {
	Youtube   string `bson:"youtube,omitempty"   json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty"   json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty"  json:"facebook,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty"  json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// Experience is a single work-history entry embedded in a profile.
type Experience struct {
	ID          bson.ObjectID `bson:"_id"                   json:"id"`
	Title       string        `bson:"title"                 json:"title"`
	Company     string        `bson:"company"               json:"company"`
	Location    string        `bson:"location,omitempty"    json:"location,omitempty"`
	From        time.Time     `bson:"from"                  json:"from"`
	To          *time.Time    `bson:"to,omitempty"          json:"to,omitempty"`
	Current     bool          `bson:"current"               json:"current"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
}
