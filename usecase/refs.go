package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"notekeep/apperror"
)

// ReferenceValidator confirms that folder and tag references on a note both
// exist and belong to the acting user. It never distinguishes "does not
// exist" from "owned by someone else", so ids cannot be probed across owners.
// All checks are read-only.
type ReferenceValidator struct {
	Folders FolderCounter
	Tags    TagCounter
}

func NewReferenceValidator(folders FolderCounter, tags TagCounter) *ReferenceValidator {
	return &ReferenceValidator{Folders: folders, Tags: tags}
}

// ValidateReferences checks an optional folder reference and an optional tag
// set for ownerID. A nil folderRef (or one cleared to "") and nil tagRefs pass
// trivially. The two store lookups run concurrently; when both fail, the
// folder failure wins so error messages stay stable.
func (v *ReferenceValidator) ValidateReferences(ctx context.Context, ownerID string, folderRef *string, tagRefs []string) error {
	checkFolder := folderRef != nil && *folderRef != ""
	checkTags := tagRefs != nil

	if checkFolder {
		if !isWellFormedID(*folderRef) {
			return apperror.InvalidReference("the `folderId` is not valid")
		}
	}
	if checkTags {
		for _, tagID := range tagRefs {
			if !isWellFormedID(tagID) {
				return apperror.InvalidReference("the `tags` array contains an invalid id")
			}
		}
	}

	var (
		wg        sync.WaitGroup
		folderErr error
		tagErr    error
	)

	if checkFolder {
		wg.Add(1)
		go func() {
			defer wg.Done()
			folderErr = v.checkFolder(ctx, ownerID, *folderRef)
		}()
	}

	if checkTags && len(tagRefs) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tagErr = v.checkTags(ctx, ownerID, tagRefs)
		}()
	}

	wg.Wait()

	if folderErr != nil {
		return folderErr
	}
	return tagErr
}

func (v *ReferenceValidator) checkFolder(ctx context.Context, ownerID, folderID string) error {
	count, err := v.Folders.CountOwned(ctx, ownerID, folderID)
	if err != nil {
		return apperror.Store("failed to look up folder", err)
	}
	if count != 1 {
		return apperror.InvalidReference("the `folderId` does not refer to one of your folders")
	}
	return nil
}

// checkTags requires the owned-and-matching count to equal the requested
// count. A duplicate requested id resolves to a single document and therefore
// fails, as does any id owned by someone else.
func (v *ReferenceValidator) checkTags(ctx context.Context, ownerID string, tagIDs []string) error {
	count, err := v.Tags.CountOwned(ctx, ownerID, tagIDs)
	if err != nil {
		return apperror.Store("failed to look up tags", err)
	}
	if count != int64(len(tagIDs)) {
		return apperror.InvalidReference("the `tags` array contains an id that does not refer to one of your tags")
	}
	return nil
}

func isWellFormedID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
