package dto

// NamedRequest is the create/rename body shared by folders and tags.
type NamedRequest struct {
	Name string `json:"name"`
}
