package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sportmeet-api/internal/application/ports"
	"sportmeet-api/internal/domain/modalidade"
	userDomain "sportmeet-api/internal/domain/user"
	"sportmeet-api/internal/infrastructure/jwt"
	"sportmeet-api/internal/interface/api/rest/dto/user"
	"sportmeet-api/internal/interface/api/rest/middleware"
	"sportmeet-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteUserRegister, uc.RegisterHandler)
	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.PUT(RouteUsers, middleware.AuthMiddleware(jwtService, userService), uc.UpdateHandler)
	r.DELETE(RouteUsers+"/me", middleware.AuthMiddleware(jwtService, userService), uc.DeleteMeHandler)

	return uc
}

func (uc *UserController) RegisterHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUserCreate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.Register(c.Request.Context(), uDomain, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, userDomain.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"code": "EMAIL_TAKEN", "error": err.Error()})
		case errors.Is(err, userDomain.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"code": "USERNAME_TAKEN", "error": err.Error()})
		case errors.Is(err, modalidade.ErrInvalida):
			c.JSON(http.StatusBadRequest, gin.H{"code": "MODALIDADE_INVALIDA", "error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to register a user"},
			)
			uc.logger.Error("Register() error", zap.Error(err))
		}
		return
	}

	c.Header("Location", RouteUsers+"/"+u.Username)
	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	page, size, err := validator.ValidatePage(c.Query("page"), c.Query("size"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	users, total, err := uc.userService.FindPage(c.Request.Context(), page, size)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		uc.logger.Error("FindPage() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ToPageResponse(users, page, size, total))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	u, err := uc.userService.FindByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindByUsername() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

// UpdateHandler updates the authenticated user's own profile.
func (uc *UserController) UpdateHandler(c *gin.Context) {
	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUserUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	up, err := user.ToDomainUpdate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	username := c.GetString(middleware.CtxUsername)
	u, err := uc.userService.Update(c.Request.Context(), username, up)
	if err != nil {
		switch {
		case errors.Is(err, userDomain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, userDomain.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"code": "EMAIL_TAKEN", "error": err.Error()})
		case errors.Is(err, userDomain.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"code": "USERNAME_TAKEN", "error": err.Error()})
		case errors.Is(err, modalidade.ErrInvalida):
			c.JSON(http.StatusBadRequest, gin.H{"code": "MODALIDADE_INVALIDA", "error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update a user"},
			)
			uc.logger.Error("Update() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteMeHandler(c *gin.Context) {
	username := c.GetString(middleware.CtxUsername)

	if err := uc.userService.DeleteSelf(c.Request.Context(), username); err != nil {
		if errors.Is(err, userDomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete user"},
		)
		uc.logger.Error("DeleteSelf() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
