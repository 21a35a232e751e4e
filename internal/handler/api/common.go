package api

import (
	"net/http"
	"strconv"

	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/handler/middleware"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.FromBindError(c, err)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, string(errs.KindValidation), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func currentPrincipal(c *gin.Context) (commands.Principal, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, string(errs.KindUnauthorized), "Unauthorized", nil)
		return commands.Principal{}, false
	}
	role, _ := middleware.GetUserRole(c)
	return commands.Principal{UserID: userID, Role: role}, true
}

// queryInt ignores values that do not parse; list bounds are clamped downstream.
func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit = queryInt(c, "limit", 0)
	offset = min(queryInt(c, "offset", 0), queries.MaxOffset)
	return limit, offset
}

func respond[R any](c *gin.Context, status int, view any) {
	out, err := resdto.From[R](view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(status, out)
}

func respondPage[R, V any](c *gin.Context, page *queries.Page[V]) {
	out, err := resdto.FromPage[R](page)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
