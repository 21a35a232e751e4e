package api

import (
	"net/http"
	"strings"

	reqdto "cozycup/internal/handler/dto/request"
	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	cmds commands.MenuCommands
	q    queries.MenuQueries
}

func NewMenuHandler(cmds commands.MenuCommands, q queries.MenuQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, q: q}
}

// @Summary List menu
// @Description Active menu items with optional category, name search and sort
// @Tags menu
// @Produce json
// @Param category query string false "Category"
// @Param q query string false "Name contains (case-insensitive)"
// @Param sort query string false "field:dir list over displayOrder, priceCents, name, createdAt"
// @Param limit query int false "1..200, default 100"
// @Param offset query int false "0..10000"
// @Success 200 {object} resdto.Page[resdto.MenuItemResponse]
// @Failure 400 {object} httperr.Response
// @Router /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	sort, err := queries.ParseMenuSort(c.Query("sort"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	limit, offset := pageParams(c)
	page, err := h.q.List(c.Request.Context(), queries.MenuFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Query:    strings.TrimSpace(c.Query("q")),
		Sort:     sort,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respondPage[resdto.MenuItemResponse](c, page)
}

// @Summary Create menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /menu [post]
func (h *MenuHandler) Create(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), caller, req.ToParams())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.MenuItemResponse](c, http.StatusCreated, view)
}

// @Summary Update menu item
// @Description Partial update; also soft-deletes with isDeleted
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.PatchMenuItemRequest true "Changed fields"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menu/{id} [patch]
func (h *MenuHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.PatchMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Patch(c.Request.Context(), caller, id, req.ToPatch())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.MenuItemResponse](c, http.StatusOK, view)
}
