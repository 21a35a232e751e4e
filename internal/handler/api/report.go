package api

import (
	"net/http"

	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Day summary
// @Description Booking, slot, purchase and redemption totals for one UTC day
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, default today"
// @Success 200 {object} resdto.DaySummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reports/day-summary [get]
func (h *ReportHandler) DaySummary(c *gin.Context) {
	summary, err := h.q.DaySummary(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.DaySummaryResponse](c, http.StatusOK, summary)
}
