package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sportmeet-api/internal/application/ports"
	"sportmeet-api/internal/application/services"
	"sportmeet-api/internal/infrastructure/jwt"
	"sportmeet-api/internal/interface/api/rest/dto/auth"
	userDTO "sportmeet-api/internal/interface/api/rest/dto/user"
	"sportmeet-api/internal/interface/api/rest/middleware"
	"sportmeet-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.GET(RouteMe, middleware.AuthMiddleware(jwtService, userService), ac.MeHandler)

	return ac
}

// LoginHandler exchanges username and password for a Bearer token. The login
// field also accepts the account email; both resolve to the same account.
func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindByUsername() error", zap.Error(err))
		return
	}
	if u == nil {
		u, err = ac.userService.FindByEmail(c.Request.Context(), req.Username)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get a user"},
			)
			ac.logger.Error("FindByEmail() error", zap.Error(err))
			return
		}
	}
	if u == nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid credentials"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("user_uuid", u.UUID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	username := c.GetString(middleware.CtxUsername)

	u, err := ac.userService.FindByUsername(c.Request.Context(), username)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindByUsername() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token"},
		)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}
