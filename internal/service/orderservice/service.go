package orderservice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bookstore/internal/domain"
	apperror "bookstore/internal/errors"
	"bookstore/internal/pkg/events"
	"bookstore/internal/pkg/logger"
)

// DefaultMaxOrderValue é o valor máximo de um pedido quando a configuração não define outro.
const DefaultMaxOrderValue = 120

const successMessage = "Order placed successfully!"

// StockLedger define o contrato que o Serviço de Pedidos espera do ledger de estoque.
type StockLedger interface {
	Lock(ids ...domain.BookID) (unlock func())
	StockOf(id domain.BookID) int
	HasAtLeast(id domain.BookID, quantity int) bool
	Decrement(id domain.BookID, quantity int)
}

// Service valida e executa pedidos em lote contra o ledger (tudo ou nada).
type Service struct {
	ledger        StockLedger
	publisher     events.Publisher
	logger        logger.Logger
	tracer        trace.Tracer
	maxOrderValue int
	newID         func() string
}

// NewService cria e retorna uma nova instância do Serviço de Pedidos.
func NewService(ledger StockLedger, publisher events.Publisher, logger logger.Logger, maxOrderValue int) *Service {
	if maxOrderValue <= 0 {
		maxOrderValue = DefaultMaxOrderValue
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		ledger:        ledger,
		publisher:     publisher,
		logger:        logger,
		tracer:        otel.Tracer("bookstore/orderservice"),
		maxOrderValue: maxOrderValue,
		newID:         uuid.NewString,
	}
}

// PlaceOrder valida o lote inteiro e, só se todas as linhas passarem, debita o estoque.
//
// Ordem das verificações:
//  1. quantidade total zero -> EmptyOrderError
//  2. valor total acima do máximo -> OrderTooExpensiveError
//  3. estoque de cada linha (sem interromper na primeira falha) -> OutOfStockError
//
// Qualquer falha deixa o ledger intacto.
func (s *Service) PlaceOrder(ctx context.Context, lines []domain.OrderLine) (domain.OrderResult, error) {
	ctx, span := s.tracer.Start(ctx, "orderservice.PlaceOrder")
	defer span.End()
	span.SetAttributes(attribute.Int("order.lines", len(lines)))

	s.logger.Debug("Iniciando processamento de pedido.", map[string]interface{}{"lines": len(lines)})

	books, err := resolveLines(lines)
	if err != nil {
		return domain.OrderResult{}, s.reject(span, err)
	}

	// 1. Pedido vazio (verificado antes de qualquer validação por linha)
	totalQuantity := 0
	for _, line := range lines {
		totalQuantity = addCapped(totalQuantity, line.Quantity)
	}
	if totalQuantity == 0 {
		return domain.OrderResult{}, s.reject(span, apperror.NewEmptyOrderError())
	}

	// 2. Valor máximo do pedido
	totalPrice := 0
	for i, line := range lines {
		totalPrice = addCapped(totalPrice, mulCapped(line.Quantity, books[i].Price))
	}
	span.SetAttributes(attribute.Int("order.total_price", totalPrice))
	if totalPrice > s.maxOrderValue {
		return domain.OrderResult{}, s.reject(span, apperror.NewOrderTooExpensiveError(totalPrice, s.maxOrderValue))
	}

	// 3. Estoque por linha, sob o lock de todos os livros do lote até o commit
	ids := bookIDs(lines)
	unlock := s.ledger.Lock(ids...)

	var stockErrors []string
	requested := make(map[domain.BookID]int, len(ids))
	for i, line := range lines {
		// Linhas repetidas do mesmo livro somam a quantidade já pedida no lote.
		requested[line.Book] = addCapped(requested[line.Book], line.Quantity)
		if !s.ledger.HasAtLeast(line.Book, requested[line.Book]) {
			stockErrors = append(stockErrors, outOfStockMessage(books[i]))
		}
	}
	if len(stockErrors) > 0 {
		unlock()
		return domain.OrderResult{}, s.reject(span, apperror.NewOutOfStockError(stockErrors))
	}

	// 4. Commit: único ponto de mutação, na ordem de entrada
	for _, line := range lines {
		s.ledger.Decrement(line.Book, line.Quantity)
	}
	stockAfter := levelsOf(s.ledger, ids)
	unlock()

	// 5. Resultado
	result := domain.OrderResult{
		OrderID:      s.newID(),
		OrderedBooks: make([]domain.OrderedBook, 0, len(lines)),
		TotalPrice:   totalPrice,
		Message:      successMessage,
	}
	for i, line := range lines {
		result.OrderedBooks = append(result.OrderedBooks, domain.NewOrderedBook(books[i], line.Quantity))
	}

	span.SetAttributes(attribute.String("order.id", result.OrderID))
	span.SetStatus(codes.Ok, "order placed")

	s.logger.Info("Pedido realizado com sucesso.", map[string]interface{}{
		"order_id":    result.OrderID,
		"total_price": totalPrice,
		"lines":       len(lines),
	})

	s.publish(ctx, domain.RKOrderPlaced, domain.OrderPlacedEvent{
		OrderID:    result.OrderID,
		Lines:      lines,
		TotalPrice: totalPrice,
		Stock:      stockAfter,
		OccurredAt: time.Now().UTC(),
	})

	return result, nil
}

// reject registra a rejeição do lote no span e no log e devolve o erro.
func (s *Service) reject(span trace.Span, err error) error {
	_, category, message := apperror.MapToHTTPStatus(err)
	span.SetAttributes(attribute.String("order.rejection", category))
	span.SetStatus(codes.Error, message)
	s.logger.Info("Pedido rejeitado.", map[string]interface{}{
		"category": category,
		"message":  message,
		"details":  apperror.Details(err),
	})
	return err
}

// publish envia o evento após o commit. Falhas são apenas registradas:
// o estoque já foi alterado e o pedido permanece válido.
func (s *Service) publish(ctx context.Context, routingKey string, event interface{}) {
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		s.logger.Warn("Falha ao publicar evento de pedido.", map[string]interface{}{
			"routing_key": routingKey,
			"error":       err.Error(),
		})
	}
}

// resolveLines busca o livro de cada linha no catálogo e recusa quantidades negativas.
func resolveLines(lines []domain.OrderLine) ([]domain.Book, error) {
	books := make([]domain.Book, len(lines))
	for i, line := range lines {
		book, ok := domain.LookupBook(line.Book)
		if !ok {
			return nil, apperror.NewValidationError(fmt.Sprintf("unknown book %q.", line.Book))
		}
		if line.Quantity < 0 {
			return nil, apperror.NewValidationError(fmt.Sprintf("quantity for %s must not be negative.", book.Title))
		}
		books[i] = book
	}
	return books, nil
}

// addCapped soma dois valores não negativos, saturando em math.MaxInt.
// Um total saturado continua acima de qualquer limite ou estoque real.
func addCapped(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// mulCapped multiplica dois valores não negativos, saturando em math.MaxInt.
func mulCapped(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}

func outOfStockMessage(book domain.Book) string {
	if book.PermanentlyUnavailable {
		return fmt.Sprintf("%s is unfortunately sold out and no more copies exist in the world. "+
			"Please remove %s from your order and try again.", book.Title, book.Title)
	}
	return fmt.Sprintf("%s is currently sold out. Please try to place the order again without this book.", book.Title)
}

func bookIDs(lines []domain.OrderLine) []domain.BookID {
	ids := make([]domain.BookID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.Book)
	}
	return ids
}

// levelsOf lê o estoque dos livros tocados pelo lote (o chamador segura os locks).
func levelsOf(ledger StockLedger, ids []domain.BookID) []domain.StockLevel {
	seen := make(map[domain.BookID]struct{}, len(ids))
	out := make([]domain.StockLevel, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, domain.StockLevel{BookID: id, Quantity: ledger.StockOf(id)})
	}
	return out
}
