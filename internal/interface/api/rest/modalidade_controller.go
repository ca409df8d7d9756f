package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sportmeet-api/internal/application/ports"
	"sportmeet-api/internal/interface/api/rest/dto/modalidade"
)

type ModalidadeController struct {
	modalidadeService ports.ModalidadeService
	logger            *zap.Logger
}

func NewModalidadeController(
	r *gin.Engine,
	modalidadeService ports.ModalidadeService,
	logger *zap.Logger,
) *ModalidadeController {
	mc := &ModalidadeController{
		modalidadeService: modalidadeService,
		logger:            logger,
	}

	r.GET(RouteModalidades, mc.GetModalidadesHandler)

	return mc
}

func (mc *ModalidadeController) GetModalidadesHandler(c *gin.Context) {
	ms, err := mc.modalidadeService.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get modalidades"},
		)
		mc.logger.Error("FindAll() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, modalidade.ResponseData{
		Data: modalidade.ToResponseModalidades(ms),
	})
}
