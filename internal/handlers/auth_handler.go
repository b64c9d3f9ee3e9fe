package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niloykhan002/life-stream-server/internal/utils"
)

// IssueToken signs the caller-supplied claim payload and returns the
// token string. Minting is decoupled from authentication: nothing checks
// that the email belongs to a real user.
func (h *Handler) IssueToken(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := utils.SignClaims(payload, h.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
