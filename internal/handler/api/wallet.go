package api

import (
	"net/http"

	reqdto "cozycup/internal/handler/dto/request"
	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	cmds commands.WalletCommands
	q    queries.WalletQueries
}

func NewWalletHandler(cmds commands.WalletCommands, q queries.WalletQueries) *WalletHandler {
	return &WalletHandler{cmds: cmds, q: q}
}

// @Summary List packages
// @Tags wallet
// @Produce json
// @Param limit query int false "default 50, max 200"
// @Param offset query int false "offset"
// @Success 200 {object} resdto.Page[resdto.PackageResponse]
// @Router /packages [get]
func (h *WalletHandler) ListPackages(c *gin.Context) {
	limit, offset := pageParams(c)
	page, err := h.q.ListPackages(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respondPage[resdto.PackageResponse](c, page)
}

// @Summary Create package
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePackageRequest true "Package"
// @Success 201 {object} resdto.PackageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /packages [post]
func (h *WalletHandler) CreatePackage(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreatePackageRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.CreatePackage(c.Request.Context(), caller, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.PackageResponse](c, http.StatusCreated, view)
}

// @Summary Buy a package
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequest true "Purchase"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /purchases [post]
func (h *WalletHandler) Purchase(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Purchase(c.Request.Context(), caller.UserID, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.PurchaseResponse](c, http.StatusCreated, view)
}

// @Summary My wallet
// @Description Purchases newest first, each with its package when it still exists
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param limit query int false "default 50, max 200"
// @Param offset query int false "offset"
// @Success 200 {object} resdto.Page[resdto.WalletItemResponse]
// @Router /purchases/me/wallet [get]
func (h *WalletHandler) MyWallet(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	limit, offset := pageParams(c)
	page, err := h.q.MyWallet(c.Request.Context(), caller.UserID, limit, offset)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respondPage[resdto.WalletItemResponse](c, page)
}

// @Summary Redeem one credit
// @Description Takes either purchaseId or a redeem token minted by the same customer
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemRequest true "Redeem"
// @Success 201 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /redeem [post]
func (h *WalletHandler) Redeem(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.RedeemRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Redeem(c.Request.Context(), caller.UserID, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.RedeemResponse](c, http.StatusCreated, result)
}

// @Summary Mint redeem token
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemTokenRequest true "Purchase to redeem from"
// @Success 201 {object} resdto.QRTokenResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /redeem/qr-token [post]
func (h *WalletHandler) MintRedeemToken(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.RedeemTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	token, err := h.cmds.MintRedeemToken(c.Request.Context(), caller.UserID, req.PurchaseID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.QRTokenResponse{Token: token.Token, ExpiresAt: token.ExpiresAt})
}
