package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"notekeep/dto"
	"notekeep/middleware"
	"notekeep/usecase"
	"notekeep/utils"
)

type NoteHandler struct {
	Service *usecase.NoteService
}

func NewNoteHandler(service *usecase.NoteService) *NoteHandler {
	return &NoteHandler{Service: service}
}

// List handles GET /notes?searchTerm=&folderId=&tagId=
func (h *NoteHandler) List(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	notes, err := h.Service.ListNotes(c.Request.Context(), ownerID,
		c.Query("searchTerm"), c.Query("folderId"), c.Query("tagId"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, notes)
}

// Get handles GET /notes/:id
func (h *NoteHandler) Get(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	note, err := h.Service.GetNote(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, note)
}

// Create handles POST /notes
func (h *NoteHandler) Create(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, bindErrorMessage(err))
		return
	}

	note, err := h.Service.CreateNote(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		utils.Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%s", c.Request.URL.Path, note.ID))
	utils.Created(c, note)
}

// Update handles PUT /notes/:id with any subset of the whitelisted fields.
func (h *NoteHandler) Update(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, bindErrorMessage(err))
		return
	}

	note, err := h.Service.UpdateNote(c.Request.Context(), ownerID, c.Param("id"), req.ToPatch())
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, note)
}

// Delete handles DELETE /notes/:id. Success is reported whether or not a
// matching note existed.
func (h *NoteHandler) Delete(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	if err := h.Service.DeleteNote(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "note deleted"})
}

// bindErrorMessage keeps body-shape errors descriptive: a scalar where an
// array belongs names the field instead of a generic decode failure.
func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("the `%s` field has the wrong type", typeErr.Field)
	}
	return "invalid request body"
}
