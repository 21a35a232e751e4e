package api

import (
	"net/http"

	"cozycup/internal/domain/reservation"
	reqdto "cozycup/internal/handler/dto/request"
	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.ReservationQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.ReservationQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Reserves one unit of the pickup window, then snapshots item prices
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), caller.UserID, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.ReservationResponse](c, http.StatusCreated, view)
}

// @Summary My orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param limit query int false "default 20, max 100"
// @Param offset query int false "offset"
// @Success 200 {object} resdto.Page[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Router /orders/me [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	listMine(c, h.q, reservation.KindOrder)
}

// @Summary Change order status
// @Description Hosts move orders along the prep flow; customers may only cancel their own
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.UpdateStatus(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.ReservationResponse](c, http.StatusOK, view)
}

func listMine(c *gin.Context, q queries.ReservationQueries, kind reservation.Kind) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	filter := queries.ReservationFilter{Kind: kind, CustomerID: caller.UserID}
	if raw := c.Query("status"); raw != "" {
		status, err := reservation.NewStatus(kind, raw)
		if err != nil {
			httperr.FromError(c, errs.Validation("Invalid status %q", raw))
			return
		}
		filter.Status = &status
	}
	filter.Limit, filter.Offset = pageParams(c)

	page, err := q.ListMine(c.Request.Context(), filter)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respondPage[resdto.ReservationResponse](c, page)
}
