package restock

import (
	"context"
	"net/http"

	"bookstore/internal/api/response"
	"bookstore/internal/domain"
	"bookstore/internal/pkg/logger"
)

// RestockService define o contrato que o Handler espera da camada de Serviço.
type RestockService interface {
	Restock(ctx context.Context, lines []domain.RestockLine) (domain.RestockResult, error)
}

// Handler agrupa os métodos de Handler de reabastecimento.
type Handler struct {
	Service RestockService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc RestockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// RestockHandler lida com a requisição POST /api/restock.
// @Summary Reabastece o estoque
// @Description Aplica um lote de reabastecimento (tudo ou nada). Quantidades devem ser múltiplas de 10 e no máximo 1000 por livro.
// @Tags restock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Chave para evitar reabastecimentos duplicados"
// @Param restock body []domain.RestockLine true "Linhas do reabastecimento (livro e quantidade)"
// @Success 200 {object} domain.RestockResult "Reabastecimento realizado"
// @Failure 400 {object} domain.ErrorResponse "Lote rejeitado ou payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 403 {object} domain.ErrorResponse "Usuário sem papel de administrador"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /restock [post]
func (h *Handler) RestockHandler(w http.ResponseWriter, r *http.Request) {
	var lines []domain.RestockLine
	if err := response.Decode(w, r, &lines); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	result, err := h.Service.Restock(r.Context(), lines)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.JSON(w, h.Logger, http.StatusOK, result)
}
