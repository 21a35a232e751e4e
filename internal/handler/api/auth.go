package api

import (
	"net/http"

	reqdto "cozycup/internal/handler/dto/request"
	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/handler/httperr"
	"cozycup/internal/pkg/config"
	"cozycup/internal/pkg/cookie"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/jwt"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	cookieCfg  config.CookieConfig
	jwtService *jwt.Service
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		cookieCfg:  cfg.Cookie,
		jwtService: jwtService,
	}
}

// @Summary Register
// @Description Create a customer account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.writeSession(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.writeSession(c, http.StatusOK, result)
}

// @Summary Refresh tokens
// @Description Rotate the refresh token. The refresh cookie wins over the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		// an empty body is fine here, the token check below covers it
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, string(errs.KindUnauthorized), "Refresh token required", nil)
		return
	}
	result, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		cookie.ClearTokenCookies(c, h.cookieCfg)
		httperr.FromError(c, err)
		return
	}
	h.writeSession(c, http.StatusOK, result)
}

// @Summary User logout
// @Description Revoke the stored refresh token and clear cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	if err := h.cmds.Logout(c.Request.Context(), caller.UserID); err != nil {
		httperr.FromError(c, err)
		return
	}
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	caller, ok := currentPrincipal(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), caller.UserID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	respond[resdto.UserResponse](c, http.StatusOK, view)
}

func (h *AuthHandler) writeSession(c *gin.Context, status int, result *commands.AuthResult) {
	user, err := resdto.From[resdto.UserResponse](result.User)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	cookie.SetTokenCookies(c, h.cookieCfg,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())

	c.JSON(status, resdto.AuthResponse{
		User:         *user,
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
	})
}
