package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"notekeep/apperror"
)

// fakeFolderCounter owns a set of folder ids for a single user.
type fakeFolderCounter struct {
	owner   string
	folders map[string]bool
	err     error
}

func (f *fakeFolderCounter) CountOwned(ctx context.Context, userID, folderID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if userID == f.owner && f.folders[folderID] {
		return 1, nil
	}
	return 0, nil
}

type fakeTagCounter struct {
	owner string
	tags  map[string]bool
	err   error
}

func (f *fakeTagCounter) CountOwned(ctx context.Context, userID string, tagIDs []string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	// Mirrors the store: duplicates in tagIDs resolve to a single document.
	seen := map[string]bool{}
	var count int64
	for _, id := range tagIDs {
		if userID == f.owner && f.tags[id] && !seen[id] {
			seen[id] = true
			count++
		}
	}
	return count, nil
}

func errType(t *testing.T, err error) apperror.ErrorType {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Type
}

func TestValidateReferences(t *testing.T) {
	owner := "user-a"
	folderID := uuid.NewString()
	tag1 := uuid.NewString()
	tag2 := uuid.NewString()
	foreignTag := uuid.NewString()

	validator := NewReferenceValidator(
		&fakeFolderCounter{owner: owner, folders: map[string]bool{folderID: true}},
		&fakeTagCounter{owner: owner, tags: map[string]bool{tag1: true, tag2: true}},
	)

	ctx := context.Background()

	tests := []struct {
		name      string
		folderRef *string
		tagRefs   []string
		wantErr   bool
	}{
		{name: "no references", folderRef: nil, tagRefs: nil},
		{name: "cleared folder", folderRef: strPtr(""), tagRefs: nil},
		{name: "owned folder", folderRef: &folderID},
		{name: "owned tags", tagRefs: []string{tag1, tag2}},
		{name: "empty tag list", tagRefs: []string{}},
		{name: "folder and tags together", folderRef: &folderID, tagRefs: []string{tag1}},
		{name: "malformed folder id", folderRef: strPtr("not-a-uuid"), wantErr: true},
		{name: "unowned folder", folderRef: strPtr(uuid.NewString()), wantErr: true},
		{name: "malformed tag id", tagRefs: []string{tag1, "nope"}, wantErr: true},
		{name: "foreign tag in set", tagRefs: []string{tag1, foreignTag}, wantErr: true},
		{name: "duplicate tag ids", tagRefs: []string{tag1, tag1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateReferences(ctx, owner, tt.folderRef, tt.tagRefs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if got := errType(t, err); got != apperror.InvalidReferenceError {
					t.Errorf("expected InvalidReferenceError, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateReferencesFolderErrorWins(t *testing.T) {
	owner := "user-a"
	// Both references fail; the folder failure must surface.
	validator := NewReferenceValidator(
		&fakeFolderCounter{owner: owner, folders: map[string]bool{}},
		&fakeTagCounter{owner: owner, tags: map[string]bool{}},
	)

	badFolder := uuid.NewString()
	err := validator.ValidateReferences(context.Background(), owner,
		&badFolder, []string{uuid.NewString()})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T", err)
	}
	if appErr.Message != "the `folderId` does not refer to one of your folders" {
		t.Errorf("expected folder failure to take precedence, got %q", appErr.Message)
	}
}

func TestValidateReferencesStoreFailure(t *testing.T) {
	owner := "user-a"
	validator := NewReferenceValidator(
		&fakeFolderCounter{owner: owner, err: errors.New("connection reset")},
		&fakeTagCounter{owner: owner, tags: map[string]bool{}},
	)

	id := uuid.NewString()
	err := validator.ValidateReferences(context.Background(), owner, &id, nil)
	if got := errType(t, err); got != apperror.StoreError {
		t.Errorf("expected StoreError, got %v", got)
	}
}

func strPtr(s string) *string {
	return &s
}
