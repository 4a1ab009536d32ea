package handler

import (
	"github.com/gin-gonic/gin"

	"notekeep/dto"
	"notekeep/middleware"
	"notekeep/usecase"
	"notekeep/utils"
)

type FolderHandler struct {
	Service *usecase.FolderService
}

func NewFolderHandler(service *usecase.FolderService) *FolderHandler {
	return &FolderHandler{Service: service}
}

func (h *FolderHandler) List(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	folders, err := h.Service.ListFolders(c.Request.Context(), ownerID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, folders)
}

func (h *FolderHandler) Get(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	folder, err := h.Service.GetFolder(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, folder)
}

func (h *FolderHandler) Create(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	var req dto.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	folder, err := h.Service.CreateFolder(c.Request.Context(), ownerID, req.Name)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, folder)
}

func (h *FolderHandler) Rename(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	var req dto.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	folder, err := h.Service.RenameFolder(c.Request.Context(), ownerID, c.Param("id"), req.Name)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, folder)
}

func (h *FolderHandler) Delete(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	if err := h.Service.DeleteFolder(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "folder deleted"})
}
