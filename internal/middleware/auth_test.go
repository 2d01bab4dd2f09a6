package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, id uint, role string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func runRequest(t *testing.T, token string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, uint, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uint
	var gotRole string
	h := func(c echo.Context) error {
		gotID = UserID(c)
		gotRole = Role(c)
		return c.NoContent(http.StatusOK)
	}
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, gotID, gotRole
}

func TestAuthResolvesIdentity(t *testing.T) {
	token := signToken(t, 42, model.RoleUser)

	rec, id, role := runRequest(t, token, Auth(testSecret))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, model.RoleUser, role)
}

func TestAuthRejectsMissingOrBadToken(t *testing.T) {
	rec, _, _ := runRequest(t, "", Auth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _, _ = runRequest(t, "not-a-jwt", Auth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Signed with the wrong secret.
	wrong, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  1,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	rec, _, _ = runRequest(t, wrong, Auth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	rec, _, _ := runRequest(t, signToken(t, 1, model.RoleAdmin), Auth(testSecret), RequireAdmin())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _, _ = runRequest(t, signToken(t, 2, model.RoleUser), Auth(testSecret), RequireAdmin())
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
