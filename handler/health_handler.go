package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"notekeep/utils"
)

type HealthHandler struct {
	Mongo *mongo.Client
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{Mongo: client}
}

// Check handles GET /health with a store ping.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		utils.InternalError(c, "database unreachable")
		return
	}

	utils.Success(c, gin.H{"status": "ok"})
}
