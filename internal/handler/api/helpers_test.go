//go:build unit

package api_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"cozycup/internal/domain/user"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/usecase/commands"
	"cozycup/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerTestUser = "X-Test-User"
	headerTestRole = "X-Test-Role"
)

// newTestRouter stands in for the auth middleware: requests carrying
// X-Test-User get that identity, everything else stays anonymous.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if raw := c.GetHeader(headerTestUser); raw != "" {
			c.Set("user_id", uuid.MustParse(raw))
			c.Set("user_role", user.Role(c.GetHeader(headerTestRole)))
		}
		c.Next()
	})
	return r
}

func customer() *commands.Principal {
	return &commands.Principal{UserID: uuid.New(), Role: user.RoleCustomer}
}

func host() *commands.Principal {
	return &commands.Principal{UserID: uuid.New(), Role: user.RoleHost}
}

// perform sends body as JSON (raw strings are sent verbatim) on behalf of caller.
func perform(t *testing.T, r *gin.Engine, method, path string, body any, caller *commands.Principal) *stdhttptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewJSONRequest(t, method, path, body)
	if caller != nil {
		req.Header.Set(headerTestUser, caller.UserID.String())
		req.Header.Set(headerTestRole, string(caller.Role))
	}

	w := stdhttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func withCookies(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *stdhttptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewJSONRequest(t, method, path, body)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := stdhttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
