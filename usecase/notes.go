package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"notekeep/apperror"
	"notekeep/model"
	"notekeep/utils"
)

// NoteService is the mutation and query engine for notes. Every operation is
// scoped to the authenticated owner; the owner identity is never taken from
// client input. Writes validate references first and only then touch the
// store — there is no transaction spanning the two, so a referent deleted in
// between slips through, but the per-document write itself is atomic.
type NoteService struct {
	Notes NoteStore
	Refs  *ReferenceValidator
}

func NewNoteService(notes NoteStore, refs *ReferenceValidator) *NoteService {
	return &NoteService{Notes: notes, Refs: refs}
}

// CreateNoteInput is untrusted client input for a create. It deliberately has
// no owner field.
type CreateNoteInput struct {
	Title    string
	Content  string
	FolderID string
	Tags     []string
}

// CreateNote validates the input and references, then persists a new note
// stamped with ownerID. An empty folder id means "no folder".
func (s *NoteService) CreateNote(ctx context.Context, ownerID string, input CreateNoteInput) (*model.Note, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.MissingField("title")
	}

	var folderRef *string
	if input.FolderID != "" {
		folderRef = &input.FolderID
	}

	if err := s.Refs.ValidateReferences(ctx, ownerID, folderRef, input.Tags); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	note := &model.Note{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Title:     title,
		Content:   input.Content,
		FolderID:  input.FolderID,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Notes.Create(ctx, note); err != nil {
		return nil, apperror.Store("failed to create note", err)
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// UpdateNote applies a whitelisted partial update. Fields absent from the
// patch are untouched; a folder id present-and-empty detaches the folder; a
// present tag set replaces the stored one wholesale. A miss — wrong id or a
// note owned by someone else — is a plain not-found either way.
func (s *NoteService) UpdateNote(ctx context.Context, ownerID, id string, patch model.NotePatch) (*model.Note, error) {
	if !isWellFormedID(id) {
		return nil, apperror.InvalidID("id")
	}

	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return nil, apperror.MissingField("title")
		}
		patch.Title = &trimmed
	}

	var folderRef *string
	if patch.SetsFolder() {
		folderRef = patch.FolderID
	}
	var tagRefs []string
	if patch.Tags != nil {
		tagRefs = *patch.Tags
	}

	if err := s.Refs.ValidateReferences(ctx, ownerID, folderRef, tagRefs); err != nil {
		return nil, err
	}

	note, err := s.Notes.Update(ctx, id, ownerID, patch)
	if err != nil {
		return nil, apperror.Store("failed to update note", err)
	}
	if note == nil {
		return nil, apperror.NotFound()
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

// DeleteNote removes an owner-scoped note. Deleting an id that does not exist
// or belongs to another owner is a no-op that still succeeds, so the call is
// idempotent.
func (s *NoteService) DeleteNote(ctx context.Context, ownerID, id string) error {
	if !isWellFormedID(id) {
		return apperror.InvalidID("id")
	}

	if _, err := s.Notes.Delete(ctx, id, ownerID); err != nil {
		return apperror.Store("failed to delete note", err)
	}

	utils.TrackNoteOperation("delete")
	return nil
}

// GetNote reads one owner-scoped note.
func (s *NoteService) GetNote(ctx context.Context, ownerID, id string) (*model.Note, error) {
	if !isWellFormedID(id) {
		return nil, apperror.InvalidID("id")
	}

	note, err := s.Notes.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, apperror.Store("failed to read note", err)
	}
	if note == nil {
		return nil, apperror.NotFound()
	}
	return note, nil
}

// ListNotes runs an owner-scoped filtered query, newest update first.
func (s *NoteService) ListNotes(ctx context.Context, ownerID, searchTerm, folderID, tagID string) ([]*model.Note, error) {
	notes, err := s.Notes.Find(ctx, model.NoteFilter{
		UserID:     ownerID,
		SearchTerm: searchTerm,
		FolderID:   folderID,
		TagID:      tagID,
	})
	if err != nil {
		return nil, apperror.Store("failed to list notes", err)
	}
	return notes, nil
}
