package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/niloykhan002/life-stream-server/internal/models"
)

// donationUpdateRequest is the allow-list for a full donation replace.
type donationUpdateRequest struct {
	RequesterName     string `json:"requester_name"`
	RequesterEmail    string `json:"requester_email"`
	RecipientName     string `json:"recipient_name"`
	RecipientDistrict string `json:"recipient_district"`
	RecipientUpazila  string `json:"recipient_upazila"`
	HospitalName      string `json:"hospital_name"`
	FullAddress       string `json:"full_address"`
	Group             string `json:"group"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	RequestMessage    string `json:"request_message"`
	DonationStatus    string `json:"donation_status"`
}

func donationSetDoc(req donationUpdateRequest) bson.M {
	return bson.M{
		"requester_name":     req.RequesterName,
		"requester_email":    req.RequesterEmail,
		"recipient_name":     req.RecipientName,
		"recipient_district": req.RecipientDistrict,
		"recipient_upazila":  req.RecipientUpazila,
		"hospital_name":      req.HospitalName,
		"full_address":       req.FullAddress,
		"group":              req.Group,
		"date":               req.Date,
		"time":               req.Time,
		"request_message":    req.RequestMessage,
		"donation_status":    req.DonationStatus,
	}
}

// CreateDonation inserts a donation request as-is. Anyone can post one;
// there is no ownership check on creation.
func (h *Handler) CreateDonation(c *gin.Context) {
	var data bson.M
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.donations().InsertOne(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation request"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecentDonations returns up to three of a requester's donation requests.
func (h *Handler) RecentDonations(c *gin.Context) {
	filter := bson.M{"requester_email": c.Query("email")}
	findOptions := options.Find().SetLimit(3)

	cursor, err := h.donations().Find(c.Request.Context(), filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve donation requests"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var requests []models.DonationRequest
	if err = cursor.All(c.Request.Context(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode donation requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ListDonations returns a requester's donation requests filtered by
// ?status= under the shared "all" convention.
func (h *Handler) ListDonations(c *gin.Context) {
	filter := statusFilter("donation_status", c.Query("status"))
	filter["requester_email"] = c.Query("email")

	cursor, err := h.donations().Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve donation requests"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var requests []models.DonationRequest
	if err = cursor.All(c.Request.Context(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode donation requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ListAllDonations returns every donation request, filtered by ?status=.
// Registered on both the admin and the volunteer dashboards; the role
// gate lives in the route middleware.
func (h *Handler) ListAllDonations(c *gin.Context) {
	filter := statusFilter("donation_status", c.Query("status"))

	cursor, err := h.donations().Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve donation requests"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var requests []models.DonationRequest
	if err = cursor.All(c.Request.Context(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode donation requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ListPendingDonations is the public feed of requests still waiting for
// a donor.
func (h *Handler) ListPendingDonations(c *gin.Context) {
	filter := bson.M{"donation_status": "pending"}

	cursor, err := h.donations().Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve donation requests"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var requests []models.DonationRequest
	if err = cursor.All(c.Request.Context(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode donation requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// GetDonation fetches one donation request by id, or null when absent.
func (h *Handler) GetDonation(c *gin.Context) {
	donationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	var request models.DonationRequest
	err = h.donations().FindOne(c.Request.Context(), bson.M{"_id": donationID}).Decode(&request)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve donation request"})
		return
	}

	c.JSON(http.StatusOK, request)
}

// UpdateDonationStatus patches only the donation_status field. Any
// authenticated caller may do this regardless of who made the request;
// ownership is intentionally not enforced here.
func (h *Handler) UpdateDonationStatus(c *gin.Context) {
	donationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	var req struct {
		DonationStatus string `json:"donation_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	update := bson.M{"$set": bson.M{"donation_status": req.DonationStatus}}
	result, err := h.donations().UpdateOne(c.Request.Context(), bson.M{"_id": donationID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation request"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ReplaceDonation writes the full allow-listed record by id, creating
// the document when the id does not exist yet.
func (h *Handler) ReplaceDonation(c *gin.Context) {
	donationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	var req donationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updateOptions := options.Update().SetUpsert(true)
	update := bson.M{"$set": donationSetDoc(req)}
	result, err := h.donations().UpdateOne(c.Request.Context(), bson.M{"_id": donationID}, update, updateOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation request"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteDonation removes one donation request by id.
func (h *Handler) DeleteDonation(c *gin.Context) {
	donationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	result, err := h.donations().DeleteOne(c.Request.Context(), bson.M{"_id": donationID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation request"})
		return
	}

	c.JSON(http.StatusOK, result)
}
