package api

import (
	"net/http"

	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const minCheckInTokenLen = 10

type CheckInHandler struct {
	cmds commands.CheckInCommands
}

func NewCheckInHandler(cmds commands.CheckInCommands) *CheckInHandler {
	return &CheckInHandler{cmds: cmds}
}

// @Summary Kiosk check-in
// @Description Consumes a check-in token. Scanning an already checked-in booking returns it unchanged.
// @Tags checkin
// @Produce json
// @Param token path string true "Check-in token"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkin/{token} [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	token := c.Param("token")
	if len(token) < minCheckInTokenLen {
		httperr.FromError(c, errs.Validation("Invalid token format"))
		return
	}
	view, err := h.cmds.CheckIn(c.Request.Context(), token)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.ReservationResponse](c, http.StatusOK, view)
}
