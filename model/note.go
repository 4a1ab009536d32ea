package model

import (
	"time"
)

type Note struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content,omitempty" json:"content,omitempty"`
	FolderID  string    `bson:"folder_id,omitempty" json:"folderId,omitempty"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// NoteFilter is an owner-scoped read query. Zero-valued optional fields are
// left out of the store filter.
type NoteFilter struct {
	UserID     string
	SearchTerm string // case-insensitive substring over title OR content
	FolderID   string
	TagID      string
}
