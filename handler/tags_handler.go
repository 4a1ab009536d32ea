package handler

import (
	"github.com/gin-gonic/gin"

	"notekeep/dto"
	"notekeep/middleware"
	"notekeep/usecase"
	"notekeep/utils"
)

type TagHandler struct {
	Service *usecase.TagService
}

func NewTagHandler(service *usecase.TagService) *TagHandler {
	return &TagHandler{Service: service}
}

func (h *TagHandler) List(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	tags, err := h.Service.ListTags(c.Request.Context(), ownerID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, tags)
}

func (h *TagHandler) Get(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	tag, err := h.Service.GetTag(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, tag)
}

func (h *TagHandler) Create(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	var req dto.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	tag, err := h.Service.CreateTag(c.Request.Context(), ownerID, req.Name)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, tag)
}

func (h *TagHandler) Rename(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	var req dto.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	tag, err := h.Service.RenameTag(c.Request.Context(), ownerID, c.Param("id"), req.Name)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, tag)
}

func (h *TagHandler) Delete(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	if err := h.Service.DeleteTag(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "tag deleted"})
}
