package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niloykhan002/life-stream-server/internal/models"
	"github.com/niloykhan002/life-stream-server/internal/utils"
)

var testSecret = []byte("test-secret")

// fakeRoleSource stands in for the users collection lookup.
type fakeRoleSource struct {
	roles map[string]string
	err   error
}

func (f *fakeRoleSource) RoleFor(ctx context.Context, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	role, ok := f.roles[email]
	if !ok {
		return "", errors.New("user not found")
	}
	return role, nil
}

func signToken(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.SignClaims(map[string]interface{}{"email": email}, testSecret)
	require.NoError(t, err)
	return token
}

func TestVerifyToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredStr, err := expired.SignedString(testSecret)
	require.NoError(t, err)

	tampered, err := utils.SignClaims(map[string]interface{}{"email": "a@x.com"}, []byte("wrong-secret"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantEmail  string
	}{
		{name: "valid token", authHeader: "Bearer " + signToken(t, "a@x.com"), wantStatus: http.StatusOK, wantEmail: "a@x.com"},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "expired token", authHeader: "Bearer " + expiredStr, wantStatus: http.StatusUnauthorized},
		{name: "tampered token", authHeader: "Bearer " + tampered, wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotEmail string
			r := gin.New()
			r.GET("/protected", VerifyToken(testSecret), func(c *gin.Context) {
				gotEmail = c.GetString(ContextEmailKey)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantEmail, gotEmail)
			} else {
				assert.Contains(t, w.Body.String(), "unauthorized access")
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		email      string
		src        RoleSource
		gate       func(RoleSource) gin.HandlerFunc
		wantStatus int
	}{
		{
			name:       "admin allowed",
			email:      "admin@x.com",
			src:        &fakeRoleSource{roles: map[string]string{"admin@x.com": models.RoleAdmin}},
			gate:       RequireAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:       "donor is not admin",
			email:      "donor@x.com",
			src:        &fakeRoleSource{roles: map[string]string{"donor@x.com": models.RoleDonor}},
			gate:       RequireAdmin,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "volunteer allowed",
			email:      "vol@x.com",
			src:        &fakeRoleSource{roles: map[string]string{"vol@x.com": models.RoleVolunteer}},
			gate:       RequireVolunteer,
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin is not volunteer",
			email:      "admin@x.com",
			src:        &fakeRoleSource{roles: map[string]string{"admin@x.com": models.RoleAdmin}},
			gate:       RequireVolunteer,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown user",
			email:      "ghost@x.com",
			src:        &fakeRoleSource{roles: map[string]string{}},
			gate:       RequireAdmin,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "lookup failure",
			email:      "admin@x.com",
			src:        &fakeRoleSource{err: errors.New("store down")},
			gate:       RequireAdmin,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/gated", VerifyToken(testSecret), tc.gate(tc.src), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/gated", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, tc.email))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "forbidden access")
			}
		})
	}
}
