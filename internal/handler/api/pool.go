package api

import (
	"net/http"
	"strings"
	"time"

	"cozycup/internal/domain/pool"
	reqdto "cozycup/internal/handler/dto/request"
	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PoolHandler serves pickup windows and slots; each route binds the kind it manages.
type PoolHandler struct {
	cmds commands.PoolCommands
	q    queries.PoolQueries
}

func NewPoolHandler(cmds commands.PoolCommands, q queries.PoolQueries) *PoolHandler {
	return &PoolHandler{cmds: cmds, q: q}
}

// @Summary List pickup windows or slots
// @Description Active, non-deleted pools sorted by startAt then displayOrder
// @Tags pools
// @Produce json
// @Param from query string false "RFC3339; pools ending at or after"
// @Param to query string false "RFC3339; pools starting at or before"
// @Param includeClosed query bool false "Include closed pools"
// @Param limit query int false "1..200, default 100"
// @Param offset query int false "0..10000"
// @Success 200 {object} resdto.Page[resdto.PoolResponse]
// @Failure 400 {object} httperr.Response
// @Router /pickup-windows [get]
// @Router /slots [get]
func (h *PoolHandler) List(kind pool.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, ok := queryTime(c, "from")
		if !ok {
			return
		}
		to, ok := queryTime(c, "to")
		if !ok {
			return
		}
		limit, offset := pageParams(c)
		page, err := h.q.List(c.Request.Context(), queries.PoolFilter{
			Kind:          kind,
			From:          from,
			To:            to,
			IncludeClosed: strings.EqualFold(c.Query("includeClosed"), "true"),
			Limit:         limit,
			Offset:        offset,
		})
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		respondPage[resdto.PoolResponse](c, page)
	}
}

// @Summary Create pickup window or slot
// @Tags pools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePoolRequest true "Pool"
// @Success 201 {object} resdto.PoolResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /pickup-windows [post]
// @Router /slots [post]
func (h *PoolHandler) Create(kind pool.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := currentPrincipal(c)
		if !ok {
			return
		}
		var req reqdto.CreatePoolRequest
		if !bindJSON(c, &req) {
			return
		}
		view, err := h.cmds.Create(c.Request.Context(), caller, req.ToParams(kind))
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		respond[resdto.PoolResponse](c, http.StatusCreated, view)
	}
}

// @Summary Update pickup window or slot
// @Description Edit, close, activate or soft-delete. At least one field is required.
// @Tags pools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Param request body reqdto.PatchPoolRequest true "Changed fields"
// @Success 200 {object} resdto.PoolResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pickup-windows/{id} [patch]
// @Router /slots/{id} [patch]
func (h *PoolHandler) Patch(kind pool.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		caller, ok := currentPrincipal(c)
		if !ok {
			return
		}
		var req reqdto.PatchPoolRequest
		if !bindJSON(c, &req) {
			return
		}
		view, err := h.cmds.Patch(c.Request.Context(), caller, kind, id, req.ToPatch())
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		respond[resdto.PoolResponse](c, http.StatusOK, view)
	}
}

func queryTime(c *gin.Context, key string) (*time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, string(errs.KindValidation), "Invalid "+key+" date", nil)
		return nil, false
	}
	return &t, true
}
