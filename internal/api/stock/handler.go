package stock

import (
	"context"
	"net/http"

	"bookstore/internal/api/response"
	"bookstore/internal/domain"
	"bookstore/internal/pkg/logger"
)

// StockService define o contrato que o Handler espera da camada de Serviço.
type StockService interface {
	ListStock(ctx context.Context) ([]domain.StockView, error)
}

// Handler agrupa os métodos de Handler de estoque.
type Handler struct {
	Service StockService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc StockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ListBooksHandler lida com a requisição GET /api/books.
// @Summary Lista o inventário
// @Description Retorna título, preço e estoque atual de cada livro, na ordem do catálogo.
// @Tags books
// @Produce json
// @Success 200 {array} domain.StockView "Inventário atual"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /books [get]
func (h *Handler) ListBooksHandler(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.ListStock(r.Context())
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, views)
}
