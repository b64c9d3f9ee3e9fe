package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niloykhan002/life-stream-server/internal/handlers"
	"github.com/niloykhan002/life-stream-server/internal/utils"
)

var testSecret = []byte("test-secret")

// newTestRouter builds the full route table with no live database. Only
// paths that short-circuit before any collection call are exercised.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(handlers.NewHandler(nil, testSecret))
}

func TestLiveness(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Life Stream is running", w.Body.String())
}

func TestIssueToken(t *testing.T) {
	r := newTestRouter()

	body := bytes.NewBufferString(`{"email":"a@x.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/jwt", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := utils.ParseClaims(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", utils.ClaimEmail(claims))
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/admin/a@x.com"},
		{http.MethodGet, "/users/volunteer/a@x.com"},
		{http.MethodGet, "/user"},
		{http.MethodPatch, "/users/64a000000000000000000000"},
		{http.MethodPatch, "/all-users/64a000000000000000000000"},
		{http.MethodGet, "/donations/limit"},
		{http.MethodGet, "/donations"},
		{http.MethodGet, "/all-donations"},
		{http.MethodGet, "/all-donations/volunteer"},
		{http.MethodGet, "/donations/64a000000000000000000000"},
		{http.MethodPatch, "/donations/64a000000000000000000000"},
		{http.MethodPut, "/donations/64a000000000000000000000"},
		{http.MethodDelete, "/donations/64a000000000000000000000"},
		{http.MethodPatch, "/blogs/64a000000000000000000000"},
		{http.MethodDelete, "/blogs/64a000000000000000000000"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "unauthorized access")
		})
	}
}

func TestRoleCheckIsSelfOnly(t *testing.T) {
	r := newTestRouter()

	token, err := utils.SignClaims(map[string]interface{}{"email": "b@x.com"}, testSecret)
	require.NoError(t, err)

	for _, path := range []string{"/users/admin/a@x.com", "/users/volunteer/a@x.com"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Contains(t, w.Body.String(), "forbidden access")
		})
	}
}
