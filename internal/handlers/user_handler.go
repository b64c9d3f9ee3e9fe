package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niloykhan002/life-stream-server/internal/middleware"
	"github.com/niloykhan002/life-stream-server/internal/models"
)

// profileUpdateRequest is the allow-list for self-service profile edits.
// Anything else in the body is ignored, not an error.
type profileUpdateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Image      string `json:"image"`
	BloodGroup string `json:"blood_group"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
}

func profileSetDoc(req profileUpdateRequest) bson.M {
	return bson.M{
		"name":        req.Name,
		"email":       req.Email,
		"image":       req.Image,
		"blood_group": req.BloodGroup,
		"district":    req.District,
		"upazila":     req.Upazila,
	}
}

// accessSetDoc builds the admin-driven status/role update; each field is
// written only when supplied.
func accessSetDoc(status, role string) bson.M {
	set := bson.M{}
	if status != "" {
		set["status"] = status
	}
	if role != "" {
		set["role"] = role
	}
	return set
}

// CreateUser inserts the signup document as-is and returns the insert
// acknowledgement.
func (h *Handler) CreateUser(c *gin.Context) {
	var data bson.M
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.users().InsertOne(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListUsers returns every user, optionally narrowed by ?status= (admin only).
func (h *Handler) ListUsers(c *gin.Context) {
	filter := statusFilter("status", c.Query("status"))

	cursor, err := h.users().Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var users []models.User
	if err = cursor.All(c.Request.Context(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the caller's own account holds the admin
// role. Asking about anyone else's email is forbidden.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": h.hasRole(c.Request.Context(), email, models.RoleAdmin)})
}

// CheckVolunteer is the volunteer counterpart of CheckAdmin.
func (h *Handler) CheckVolunteer(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"volunteer": h.hasRole(c.Request.Context(), email, models.RoleVolunteer)})
}

func (h *Handler) hasRole(ctx context.Context, email, role string) bool {
	stored, err := h.RoleFor(ctx, email)
	return err == nil && stored == role
}

// ListDonors is the public donor search.
func (h *Handler) ListDonors(c *gin.Context) {
	filter := donorFilter(c.Query("group"), c.Query("district"), c.Query("upazila"))

	cursor, err := h.users().Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve donors"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var donors []models.User
	if err = cursor.All(c.Request.Context(), &donors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode donors"})
		return
	}

	c.JSON(http.StatusOK, donors)
}

// GetUserByEmail returns the single record for ?email=, or null when no
// such user exists.
func (h *Handler) GetUserByEmail(c *gin.Context) {
	var user models.User
	err := h.users().FindOne(c.Request.Context(), bson.M{"email": c.Query("email")}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile overwrites the allow-listed profile fields of a user by id.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.users().UpdateOne(c.Request.Context(), bson.M{"_id": userID}, bson.M{"$set": profileSetDoc(req)})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateUserAccess lets an admin change a user's status and/or role.
func (h *Handler) UpdateUserAccess(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req struct {
		Status string `json:"status"`
		Role   string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.users().UpdateOne(c.Request.Context(), bson.M{"_id": userID}, bson.M{"$set": accessSetDoc(req.Status, req.Role)})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, result)
}
