//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cozycup/internal/handler/httperr"
	"cozycup/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Capacity int    `json:"capacity" binding:"gte=0"`
}

func serve(t *testing.T, h gin.HandlerFunc, body string) (*httptest.ResponseRecorder, httperr.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()

	r := gin.New()
	r.POST("/", h)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestFromError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{name: "validation", err: errs.Validation("Invalid date"), wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR", wantMsg: "Invalid date"},
		{name: "unauthorized", err: errs.Unauthorized("Invalid token"), wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED", wantMsg: "Invalid token"},
		{name: "forbidden", err: errs.Forbidden("Not your booking"), wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN", wantMsg: "Not your booking"},
		{name: "not found", err: errs.NotFound("Slot not found"), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND", wantMsg: "Slot not found"},
		{name: "conflict", err: errs.Conflict("Slot is full"), wantStatus: http.StatusConflict, wantCode: "CONFLICT", wantMsg: "Slot is full"},
		{name: "wrapped app error", err: errs.Wrap(errs.Conflict("No credits left"), "redeem"), wantStatus: http.StatusConflict, wantCode: "CONFLICT", wantMsg: "No credits left"},
		{name: "plain error is hidden", err: errs.New("dial tcp: refused"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR", wantMsg: "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := serve(t, func(c *gin.Context) { httperr.FromError(c, tc.err) }, "")

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
			assert.Equal(t, tc.wantMsg, resp.Error.Message)
		})
	}
}

func TestFromError_KeepsOriginalOnContext(t *testing.T) {
	cause := errs.Conflict("Slot is full")
	var recorded []*gin.Error

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		recorded = c.Errors
	})
	r.GET("/", func(c *gin.Context) { httperr.FromError(c, cause) })
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, recorded, 1)
	assert.ErrorIs(t, recorded[0].Err, cause)
	meta, ok := recorded[0].Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, meta.Status)
}

func TestFromBindError(t *testing.T) {
	bind := func(c *gin.Context) {
		var req sampleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.FromBindError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}

	t.Run("OK: valid body passes", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/", bind)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Morning","capacity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("NG: syntax error is BAD_JSON", func(t *testing.T) {
		w, resp := serve(t, bind, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, httperr.CodeBadJSON, resp.Error.Code)
	})

	t.Run("NG: empty body is BAD_JSON", func(t *testing.T) {
		_, resp := serve(t, bind, "")
		assert.Equal(t, httperr.CodeBadJSON, resp.Error.Code)
	})

	t.Run("NG: validation details use json names", func(t *testing.T) {
		w, resp := serve(t, bind, `{"name":"x","capacity":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

		raw, err := json.Marshal(resp.Error.Details)
		require.NoError(t, err)
		var details []httperr.FieldError
		require.NoError(t, json.Unmarshal(raw, &details))
		assert.ElementsMatch(t, []httperr.FieldError{
			{Field: "name", Message: "must be at least 2 characters"},
			{Field: "capacity", Message: "must be 0 or more"},
		}, details)
	})

	t.Run("NG: wrong type names the field", func(t *testing.T) {
		_, resp := serve(t, bind, `{"name":"Morning","capacity":"many"}`)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.Contains(t, string(mustJSON(t, resp.Error.Details)), `"field":"capacity"`)
	})
}

func TestNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(httperr.NotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"Route not found","details":null}}`, w.Body.String())
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
