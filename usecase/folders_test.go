package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"notekeep/apperror"
	"notekeep/model"
)

type fakeFolderStore struct {
	folders map[string]*model.Folder
}

func newFakeFolderStore() *fakeFolderStore {
	return &fakeFolderStore{folders: map[string]*model.Folder{}}
}

func (f *fakeFolderStore) nameTaken(userID, name string) bool {
	for _, folder := range f.folders {
		if folder.UserID == userID && folder.Name == name {
			return true
		}
	}
	return false
}

func (f *fakeFolderStore) Create(ctx context.Context, folder *model.Folder) error {
	if f.nameTaken(folder.UserID, folder.Name) {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	copied := *folder
	f.folders[folder.ID] = &copied
	return nil
}

func (f *fakeFolderStore) FindByID(ctx context.Context, id, userID string) (*model.Folder, error) {
	folder, ok := f.folders[id]
	if !ok || folder.UserID != userID {
		return nil, nil
	}
	copied := *folder
	return &copied, nil
}

func (f *fakeFolderStore) FindForUser(ctx context.Context, userID string) ([]*model.Folder, error) {
	var results []*model.Folder
	for _, folder := range f.folders {
		if folder.UserID == userID {
			copied := *folder
			results = append(results, &copied)
		}
	}
	return results, nil
}

func (f *fakeFolderStore) Rename(ctx context.Context, id, userID, name string) (*model.Folder, error) {
	folder, ok := f.folders[id]
	if !ok || folder.UserID != userID {
		return nil, nil
	}
	if folder.Name != name && f.nameTaken(userID, name) {
		return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	folder.Name = name
	copied := *folder
	return &copied, nil
}

func (f *fakeFolderStore) Delete(ctx context.Context, id, userID string) (int64, error) {
	folder, ok := f.folders[id]
	if !ok || folder.UserID != userID {
		return 0, nil
	}
	delete(f.folders, id)
	return 1, nil
}

func (f *fakeFolderStore) CountOwned(ctx context.Context, userID, folderID string) (int64, error) {
	folder, ok := f.folders[folderID]
	if ok && folder.UserID == userID {
		return 1, nil
	}
	return 0, nil
}

func TestFolderService(t *testing.T) {
	ctx := context.Background()

	t.Run("create trims and requires a name", func(t *testing.T) {
		svc := NewFolderService(newFakeFolderStore())

		folder, err := svc.CreateFolder(ctx, "owner-1", "  Work  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if folder.Name != "Work" {
			t.Errorf("name = %q, want trimmed", folder.Name)
		}

		if _, err := svc.CreateFolder(ctx, "owner-1", "   "); errType(t, err) != apperror.MissingFieldError {
			t.Error("blank name must be rejected")
		}
	})

	t.Run("duplicate name per owner conflicts", func(t *testing.T) {
		svc := NewFolderService(newFakeFolderStore())

		if _, err := svc.CreateFolder(ctx, "owner-1", "Work"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if _, err := svc.CreateFolder(ctx, "owner-1", "Work"); errType(t, err) != apperror.ConflictError {
			t.Error("same owner, same name must conflict")
		}
		if _, err := svc.CreateFolder(ctx, "owner-2", "Work"); err != nil {
			t.Errorf("different owner, same name must be fine: %v", err)
		}
	})

	t.Run("rename", func(t *testing.T) {
		store := newFakeFolderStore()
		svc := NewFolderService(store)

		folder, err := svc.CreateFolder(ctx, "owner-1", "Work")
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		renamed, err := svc.RenameFolder(ctx, "owner-1", folder.ID, "Personal")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if renamed.Name != "Personal" {
			t.Errorf("name = %q", renamed.Name)
		}

		if _, err := svc.RenameFolder(ctx, "owner-2", folder.ID, "Stolen"); errType(t, err) != apperror.NotFoundError {
			t.Error("cross-owner rename must be a not-found")
		}
		if _, err := svc.RenameFolder(ctx, "owner-1", "bad-id", "X"); errType(t, err) != apperror.InvalidIDError {
			t.Error("malformed id must be rejected")
		}
	})

	t.Run("delete is idempotent and has no cascade", func(t *testing.T) {
		store := newFakeFolderStore()
		svc := NewFolderService(store)

		folder, err := svc.CreateFolder(ctx, "owner-1", "Work")
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		if err := svc.DeleteFolder(ctx, "owner-1", folder.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.DeleteFolder(ctx, "owner-1", folder.ID); err != nil {
			t.Fatalf("repeat delete must succeed: %v", err)
		}
		if err := svc.DeleteFolder(ctx, "owner-1", uuid.NewString()); err != nil {
			t.Fatalf("deleting an unknown id must succeed: %v", err)
		}
	})
}
