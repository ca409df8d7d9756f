package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sportmeet-api/internal/application/ports"
	"sportmeet-api/internal/application/services"
	atividadeDomain "sportmeet-api/internal/domain/atividade"
	"sportmeet-api/internal/domain/modalidade"
	userDomain "sportmeet-api/internal/domain/user"
	"sportmeet-api/internal/infrastructure/jwt"
	"sportmeet-api/internal/interface/api/rest/dto/atividade"
	"sportmeet-api/internal/interface/api/rest/middleware"
	"sportmeet-api/internal/interface/api/rest/validator"
)

type AtividadeController struct {
	atividadeService ports.AtividadeService
	logger           *zap.Logger
}

func NewAtividadeController(
	r *gin.Engine,
	atividadeService ports.AtividadeService,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AtividadeController {
	ac := &AtividadeController{
		atividadeService: atividadeService,
		logger:           logger,
	}

	auth := middleware.AuthMiddleware(jwtService, userService)

	r.GET(RouteAtividades, ac.GetAtividadesHandler)
	r.GET(RouteAtividadesProximas, ac.GetProximasHandler)
	r.POST(RouteAtividades, auth, ac.CreateHandler)
	r.PUT(RouteAtividade, auth, ac.UpdateHandler)
	r.DELETE(RouteAtividade, auth, ac.DeleteHandler)
	r.POST(RouteAtividadeInscrever, auth, ac.InscreverHandler)

	return ac
}

func (ac *AtividadeController) CreateHandler(c *gin.Context) {
	var req atividade.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateAtividadeCreate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	aDomain, err := atividade.ToDomainAtividade(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	username := c.GetString(middleware.CtxUsername)
	a, err := ac.atividadeService.Create(c.Request.Context(), aDomain, username)
	if err != nil {
		switch {
		case errors.Is(err, userDomain.ErrNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		case errors.Is(err, modalidade.ErrInvalida):
			c.JSON(http.StatusBadRequest, gin.H{"code": "MODALIDADE_INVALIDA", "error": err.Error()})
		case errors.Is(err, services.ErrCoordenadasIndisponiveis):
			c.JSON(http.StatusBadRequest, gin.H{"code": "CEP_INVALIDO", "error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to create atividade"},
			)
			ac.logger.Error("Create() error", zap.Error(err))
		}
		return
	}

	c.Header("Location", RouteAtividades+"/"+a.UUID.String())
	c.JSON(http.StatusCreated, atividade.ToResponseAtividade(*a))
}

func (ac *AtividadeController) GetAtividadesHandler(c *gin.Context) {
	page, size, err := validator.ValidatePage(c.Query("page"), c.Query("size"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	as, total, err := ac.atividadeService.FindAllPaginated(c.Request.Context(), page, size)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get atividades"},
		)
		ac.logger.Error("FindAllPaginated() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, atividade.ToPageResponse(as, page, size, total))
}

func (ac *AtividadeController) GetProximasHandler(c *gin.Context) {
	cep, distanciaKm, err := validator.ValidateNearbyQuery(c.Query("cep"), c.Query("distancia"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	page, size, err := validator.ValidatePage(c.Query("page"), c.Query("size"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	as, total, err := ac.atividadeService.FindNearbyPaginated(c.Request.Context(), cep, distanciaKm, page, size)
	if err != nil {
		if errors.Is(err, services.ErrCepNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"code": "CEP_NAO_ENCONTRADO", "error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get atividades"},
		)
		ac.logger.Error("FindNearbyPaginated() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, atividade.ToPageResponse(as, page, size, total))
}

func (ac *AtividadeController) UpdateHandler(c *gin.Context) {
	ok, atividadeUUID := validator.IsUUID(c.Param("atividade_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "atividade_id must be a valid UUID"},
		)
		return
	}

	var req atividade.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateAtividadeUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	up, err := atividade.ToDomainUpdate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if _, err = ac.atividadeService.Update(c.Request.Context(), atividadeUUID, up, username); err != nil {
		switch {
		case errors.Is(err, atividadeDomain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "atividade not found"})
		case errors.Is(err, atividadeDomain.ErrNotCriador):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, atividadeDomain.ErrCapacidadeBelow):
			c.JSON(http.StatusBadRequest, gin.H{"code": "CAPACIDADE_INVALIDA", "error": err.Error()})
		case errors.Is(err, services.ErrCoordenadasIndisponiveis):
			c.JSON(http.StatusBadRequest, gin.H{"code": "CEP_INVALIDO", "error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update atividade"},
			)
			ac.logger.Error("Update() error", zap.Error(err))
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (ac *AtividadeController) DeleteHandler(c *gin.Context) {
	ok, atividadeUUID := validator.IsUUID(c.Param("atividade_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "atividade_id must be a valid UUID"},
		)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := ac.atividadeService.DeleteByUUID(c.Request.Context(), atividadeUUID, username); err != nil {
		switch {
		case errors.Is(err, atividadeDomain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "atividade not found"})
		case errors.Is(err, atividadeDomain.ErrNotCriador):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to delete atividade"},
			)
			ac.logger.Error("DeleteByUUID() error", zap.Error(err))
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (ac *AtividadeController) InscreverHandler(c *gin.Context) {
	ok, atividadeUUID := validator.IsUUID(c.Param("atividade_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "atividade_id must be a valid UUID"},
		)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := ac.atividadeService.Inscrever(c.Request.Context(), atividadeUUID, username); err != nil {
		switch {
		case errors.Is(err, atividadeDomain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "atividade not found"})
		case errors.Is(err, atividadeDomain.ErrNotOpen),
			errors.Is(err, atividadeDomain.ErrAlreadySubscribed),
			errors.Is(err, atividadeDomain.ErrCapacityReached):
			c.JSON(http.StatusBadRequest, gin.H{"code": "INSCRICAO_INVALIDA", "error": err.Error()})
		case errors.Is(err, userDomain.ErrNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to subscribe"},
			)
			ac.logger.Error("Inscrever() error", zap.Error(err))
		}
		return
	}

	c.Status(http.StatusNoContent)
}
