package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notekeep/model"
)

// testDB connects to the instance named by MONGO_URI and hands the test a
// throwaway database, dropped on cleanup. Tests are skipped without one.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set; skipping mongo-backed tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	db := client.Database("notekeep_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func seedNote(t *testing.T, repo *NoteRepo, userID, title, content string, tags []string) *model.Note {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	note := &model.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(context.Background(), note); err != nil {
		t.Fatalf("seed note: %v", err)
	}
	return note
}

func TestNoteRepoOwnerScoping(t *testing.T) {
	repo := NewNoteRepo(testDB(t))
	ctx := context.Background()

	note := seedNote(t, repo, "owner-1", "mine", "", nil)

	got, err := repo.FindByID(ctx, note.ID, "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Title != "mine" {
		t.Fatalf("owner read failed: %+v", got)
	}

	got, err = repo.FindByID(ctx, note.ID, "owner-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("cross-owner read must miss with (nil, nil)")
	}

	deleted, err := repo.Delete(ctx, note.ID, "owner-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Error("cross-owner delete must match nothing")
	}
}

func TestNoteRepoFind(t *testing.T) {
	repo := NewNoteRepo(testDB(t))
	ctx := context.Background()

	tagID := uuid.NewString()
	seedNote(t, repo, "owner-1", "Alpha ideas", "", nil)
	seedNote(t, repo, "owner-1", "Beta", "contains alpha inside", []string{tagID})
	seedNote(t, repo, "owner-2", "Alphabet", "", nil)

	t.Run("search matches title and content, case-insensitively", func(t *testing.T) {
		notes, err := repo.Find(ctx, model.NoteFilter{UserID: "owner-1", SearchTerm: "ALPHA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notes) != 2 {
			t.Errorf("expected 2 matches, got %d", len(notes))
		}
	})

	t.Run("regex metacharacters are literal", func(t *testing.T) {
		notes, err := repo.Find(ctx, model.NoteFilter{UserID: "owner-1", SearchTerm: ".*"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("'.*' must match nothing literally, got %d notes", len(notes))
		}
	})

	t.Run("tag filter", func(t *testing.T) {
		notes, err := repo.Find(ctx, model.NoteFilter{UserID: "owner-1", TagID: tagID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notes) != 1 || notes[0].Title != "Beta" {
			t.Errorf("tag filter wrong: %+v", notes)
		}
	})

	t.Run("newest update first", func(t *testing.T) {
		notes, err := repo.Find(ctx, model.NoteFilter{UserID: "owner-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(notes); i++ {
			if notes[i].UpdatedAt.After(notes[i-1].UpdatedAt) {
				t.Error("results must be sorted by updated_at descending")
			}
		}
	})
}

func TestNoteRepoUpdate(t *testing.T) {
	repo := NewNoteRepo(testDB(t))
	ctx := context.Background()

	folderID := uuid.NewString()
	note := seedNote(t, repo, "owner-1", "t", "", nil)

	fid := folderID
	updated, err := repo.Update(ctx, note.ID, "owner-1", model.NotePatch{FolderID: &fid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FolderID != folderID {
		t.Fatalf("folder not set: %+v", updated)
	}

	empty := ""
	updated, err = repo.Update(ctx, note.ID, "owner-1", model.NotePatch{FolderID: &empty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FolderID != "" {
		t.Error("clearing must unset folder_id")
	}

	title := "hijack"
	updated, err = repo.Update(ctx, note.ID, "owner-2", model.NotePatch{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != nil {
		t.Error("cross-owner update must miss with (nil, nil)")
	}
}
