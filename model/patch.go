package model

// NotePatch is a whitelisted partial update. A nil field means "leave
// untouched". FolderID pointing at an empty string means "detach the folder",
// which the store translates into an unset rather than writing "".
// Tags, when present, replace the stored set wholesale.
type NotePatch struct {
	Title    *string
	Content  *string
	FolderID *string
	Tags     *[]string
}

// IsEmpty reports whether the patch carries no changes at all.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.FolderID == nil && p.Tags == nil
}

// ClearsFolder reports whether the patch detaches the folder reference.
func (p NotePatch) ClearsFolder() bool {
	return p.FolderID != nil && *p.FolderID == ""
}

// SetsFolder reports whether the patch assigns a new folder reference.
func (p NotePatch) SetsFolder() bool {
	return p.FolderID != nil && *p.FolderID != ""
}
