package order

import (
	"context"
	"net/http"

	"bookstore/internal/api/response"
	"bookstore/internal/domain"
	"bookstore/internal/pkg/logger"
)

// OrderService define o contrato que o Handler espera da camada de Serviço.
type OrderService interface {
	PlaceOrder(ctx context.Context, lines []domain.OrderLine) (domain.OrderResult, error)
}

// Handler agrupa os métodos de Handler de pedidos.
type Handler struct {
	Service OrderService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc OrderService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// PlaceOrderHandler lida com a requisição POST /api/order.
// @Summary Realiza um pedido
// @Description Valida o lote inteiro (pedido vazio, valor máximo, estoque por linha) e debita o estoque apenas se todas as linhas forem válidas.
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Chave para evitar pedidos duplicados"
// @Param order body []domain.OrderLine true "Linhas do pedido (livro e quantidade)"
// @Success 200 {object} domain.OrderResult "Pedido realizado"
// @Failure 400 {object} domain.ErrorResponse "Pedido vazio, caro demais, sem estoque ou payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Requisição duplicada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /order [post]
func (h *Handler) PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
	var lines []domain.OrderLine
	if err := response.Decode(w, r, &lines); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	result, err := h.Service.PlaceOrder(r.Context(), lines)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.JSON(w, h.Logger, http.StatusOK, result)
}
