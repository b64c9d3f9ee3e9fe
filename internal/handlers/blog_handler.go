package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niloykhan002/life-stream-server/internal/models"
)

// CreateBlog inserts a blog post as-is.
func (h *Handler) CreateBlog(c *gin.Context) {
	var data bson.M
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.blogs().InsertOne(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListBlogs returns blogs filtered by ?blog_status= under the shared
// "all" convention.
func (h *Handler) ListBlogs(c *gin.Context) {
	filter := statusFilter("blog_status", c.Query("blog_status"))

	cursor, err := h.blogs().Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve blogs"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var blogs []models.Blog
	if err = cursor.All(c.Request.Context(), &blogs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode blogs"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// GetBlog fetches one blog by id, or null when absent.
func (h *Handler) GetBlog(c *gin.Context) {
	blogID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID"})
		return
	}

	var blog models.Blog
	err = h.blogs().FindOne(c.Request.Context(), bson.M{"_id": blogID}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve blog"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// UpdateBlogStatus patches only the blog_status field (admin only).
func (h *Handler) UpdateBlogStatus(c *gin.Context) {
	blogID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID"})
		return
	}

	var req struct {
		BlogStatus string `json:"blog_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	update := bson.M{"$set": bson.M{"blog_status": req.BlogStatus}}
	result, err := h.blogs().UpdateOne(c.Request.Context(), bson.M{"_id": blogID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteBlog removes one blog by id (admin only).
func (h *Handler) DeleteBlog(c *gin.Context) {
	blogID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID"})
		return
	}

	result, err := h.blogs().DeleteOne(c.Request.Context(), bson.M{"_id": blogID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog"})
		return
	}

	c.JSON(http.StatusOK, result)
}
