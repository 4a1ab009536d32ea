package dto

import (
	"notekeep/model"
	"notekeep/usecase"
)

// CreateNoteRequest is the untrusted create body. There is deliberately no
// owner field; the owner comes from the verified token.
type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}

func (r CreateNoteRequest) ToInput() usecase.CreateNoteInput {
	return usecase.CreateNoteInput{
		Title:    r.Title,
		Content:  r.Content,
		FolderID: r.FolderID,
		Tags:     r.Tags,
	}
}

// UpdateNoteRequest distinguishes an omitted field from one that is present
// and empty: nil pointers mean "leave untouched", a folderId of "" means
// "detach the folder". Any field outside this whitelist is ignored by the
// JSON decoder.
type UpdateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	FolderID *string   `json:"folderId"`
	Tags     *[]string `json:"tags"`
}

func (r UpdateNoteRequest) ToPatch() model.NotePatch {
	return model.NotePatch{
		Title:    r.Title,
		Content:  r.Content,
		FolderID: r.FolderID,
		Tags:     r.Tags,
	}
}
