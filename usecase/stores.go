// Package usecase holds the business rules: the ownership-scoped mutation and
// query engines and the cross-reference validator. Stores are injected as
// narrow interfaces; the mongo repositories satisfy them in production and
// in-memory fakes stand in for tests.
package usecase

import (
	"context"

	"notekeep/model"
)

type NoteStore interface {
	Create(ctx context.Context, note *model.Note) error
	FindByID(ctx context.Context, id, userID string) (*model.Note, error)
	Find(ctx context.Context, filter model.NoteFilter) ([]*model.Note, error)
	Update(ctx context.Context, id, userID string, patch model.NotePatch) (*model.Note, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
}

type FolderStore interface {
	Create(ctx context.Context, folder *model.Folder) error
	FindByID(ctx context.Context, id, userID string) (*model.Folder, error)
	FindForUser(ctx context.Context, userID string) ([]*model.Folder, error)
	Rename(ctx context.Context, id, userID, name string) (*model.Folder, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
	FolderCounter
}

type TagStore interface {
	Create(ctx context.Context, tag *model.Tag) error
	FindByID(ctx context.Context, id, userID string) (*model.Tag, error)
	FindForUser(ctx context.Context, userID string) ([]*model.Tag, error)
	Rename(ctx context.Context, id, userID, name string) (*model.Tag, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
	TagCounter
}

// FolderCounter is the read-only slice of the folder store the reference
// validator needs.
type FolderCounter interface {
	CountOwned(ctx context.Context, userID, folderID string) (int64, error)
}

// TagCounter is the read-only slice of the tag store the reference validator
// needs.
type TagCounter interface {
	CountOwned(ctx context.Context, userID string, tagIDs []string) (int64, error)
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
	UpdatePassword(ctx context.Context, userID, hashedPassword string) (int64, error)
	SetTwoFactor(ctx context.Context, userID, secret string, enabled bool) (int64, error)
	Delete(ctx context.Context, userID string) (int64, error)
}

type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	FindByID(ctx context.Context, sessionID string) (*model.Session, error)
	FindActiveForUser(ctx context.Context, userID string) ([]*model.Session, error)
	CountActive(ctx context.Context, userID string) (int64, error)
	End(ctx context.Context, sessionID, userID string) (int64, error)
	EndAll(ctx context.Context, userID string) (int64, error)
	EndLeastActive(ctx context.Context, userID string) error
	Touch(ctx context.Context, sessionID string) error
}
