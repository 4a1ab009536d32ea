package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"notekeep/apperror"
	"notekeep/model"
)

// TagService is the owner-scoped CRUD for tags. Like folders, deletion does
// not cascade to notes.
type TagService struct {
	Tags TagStore
}

func NewTagService(tags TagStore) *TagService {
	return &TagService{Tags: tags}
}

func (s *TagService) CreateTag(ctx context.Context, ownerID, name string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.MissingField("name")
	}

	now := time.Now().UTC()
	tag := &model.Tag{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Tags.Create(ctx, tag); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("a tag with that name already exists")
		}
		return nil, apperror.Store("failed to create tag", err)
	}
	return tag, nil
}

func (s *TagService) GetTag(ctx context.Context, ownerID, id string) (*model.Tag, error) {
	if !isWellFormedID(id) {
		return nil, apperror.InvalidID("id")
	}

	tag, err := s.Tags.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, apperror.Store("failed to read tag", err)
	}
	if tag == nil {
		return nil, apperror.NotFound()
	}
	return tag, nil
}

func (s *TagService) ListTags(ctx context.Context, ownerID string) ([]*model.Tag, error) {
	tags, err := s.Tags.FindForUser(ctx, ownerID)
	if err != nil {
		return nil, apperror.Store("failed to list tags", err)
	}
	return tags, nil
}

func (s *TagService) RenameTag(ctx context.Context, ownerID, id, name string) (*model.Tag, error) {
	if !isWellFormedID(id) {
		return nil, apperror.InvalidID("id")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.MissingField("name")
	}

	tag, err := s.Tags.Rename(ctx, id, ownerID, name)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("a tag with that name already exists")
		}
		return nil, apperror.Store("failed to rename tag", err)
	}
	if tag == nil {
		return nil, apperror.NotFound()
	}
	return tag, nil
}

func (s *TagService) DeleteTag(ctx context.Context, ownerID, id string) error {
	if !isWellFormedID(id) {
		return apperror.InvalidID("id")
	}

	if _, err := s.Tags.Delete(ctx, id, ownerID); err != nil {
		return apperror.Store("failed to delete tag", err)
	}
	return nil
}
