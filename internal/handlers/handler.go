package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niloykhan002/life-stream-server/internal/models"
)

// Handler carries the injected database handle and token secret shared
// by every route handler.
type Handler struct {
	DB     *mongo.Database
	Secret []byte
}

func NewHandler(db *mongo.Database, secret []byte) *Handler {
	return &Handler{
		DB:     db,
		Secret: secret,
	}
}

func (h *Handler) users() *mongo.Collection {
	return h.DB.Collection("users")
}

func (h *Handler) donations() *mongo.Collection {
	return h.DB.Collection("donationRequests")
}

func (h *Handler) blogs() *mongo.Collection {
	return h.DB.Collection("blogs")
}

// RoleFor implements middleware.RoleSource against the users collection.
func (h *Handler) RoleFor(ctx context.Context, email string) (string, error) {
	var user models.User
	err := h.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Life Stream is running")
}
