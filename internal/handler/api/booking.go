package api

import (
	"net/http"

	"cozycup/internal/domain/reservation"
	reqdto "cozycup/internal/handler/dto/request"
	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.ReservationQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book a slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
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

// @Summary My bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param limit query int false "default 20, max 100"
// @Param offset query int false "offset"
// @Success 200 {object} resdto.Page[resdto.ReservationResponse]
// @Router /bookings/me [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	listMine(c, h.q, reservation.KindBooking)
}

// @Summary Cancel booking
// @Description Owners must cancel before the cancellation window closes; hosts may cancel any time
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [patch]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	view, err := h.cmds.Cancel(c.Request.Context(), caller, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.ReservationResponse](c, http.StatusOK, view)
}

// @Summary Mint check-in token
// @Description The booking owner gets a short-lived signed token for the kiosk
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 201 {object} resdto.QRTokenResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{id}/qr-token [post]
func (h *BookingHandler) MintQRToken(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	token, err := h.cmds.MintCheckInToken(c.Request.Context(), caller, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.QRTokenResponse{Token: token.Token, ExpiresAt: token.ExpiresAt})
}
