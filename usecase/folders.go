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

// FolderService is the owner-scoped CRUD for folders. Deleting a folder does
// not cascade to notes; stale references simply fail the next reference
// validation.
type FolderService struct {
	Folders FolderStore
}

func NewFolderService(folders FolderStore) *FolderService {
	return &FolderService{Folders: folders}
}

func (s *FolderService) CreateFolder(ctx context.Context, ownerID, name string) (*model.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.MissingField("name")
	}

	now := time.Now().UTC()
	folder := &model.Folder{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Folders.Create(ctx, folder); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("a folder with that name already exists")
		}
		return nil, apperror.Store("failed to create folder", err)
	}
	return folder, nil
}

func (s *FolderService) GetFolder(ctx context.Context, ownerID, id string) (*model.Folder, error) {
	if !isWellFormedID(id) {
		return nil, apperror.InvalidID("id")
	}

	folder, err := s.Folders.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, apperror.Store("failed to read folder", err)
	}
	if folder == nil {
		return nil, apperror.NotFound()
	}
	return folder, nil
}

func (s *FolderService) ListFolders(ctx context.Context, ownerID string) ([]*model.Folder, error) {
	folders, err := s.Folders.FindForUser(ctx, ownerID)
	if err != nil {
		return nil, apperror.Store("failed to list folders", err)
	}
	return folders, nil
}

func (s *FolderService) RenameFolder(ctx context.Context, ownerID, id, name string) (*model.Folder, error) {
	if !isWellFormedID(id) {
		return nil, apperror.InvalidID("id")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.MissingField("name")
	}

	folder, err := s.Folders.Rename(ctx, id, ownerID, name)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("a folder with that name already exists")
		}
		return nil, apperror.Store("failed to rename folder", err)
	}
	if folder == nil {
		return nil, apperror.NotFound()
	}
	return folder, nil
}

// DeleteFolder is idempotent, mirroring note deletion.
func (s *FolderService) DeleteFolder(ctx context.Context, ownerID, id string) error {
	if !isWellFormedID(id) {
		return apperror.InvalidID("id")
	}

	if _, err := s.Folders.Delete(ctx, id, ownerID); err != nil {
		return apperror.Store("failed to delete folder", err)
	}
	return nil
}
