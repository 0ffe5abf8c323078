package restockservice

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bookstore/internal/domain"
	apperror "bookstore/internal/errors"
	"bookstore/internal/pkg/events"
	"bookstore/internal/pkg/logger"
)

const (
	// DefaultMaxRestockQuantity é o limite por livro ("problemas de armazenamento").
	DefaultMaxRestockQuantity = 1000
	// restockMultiple: reabastecimento apenas em múltiplos de 10.
	restockMultiple = 10

	successMessage = "Restocked successfully!"
)

// StockLedger define o contrato que o Serviço de Reabastecimento espera do ledger de estoque.
type StockLedger interface {
	Lock(ids ...domain.BookID) (unlock func())
	StockOf(id domain.BookID) int
	Increment(id domain.BookID, quantity int)
}

// Service valida e executa reabastecimentos em lote (tudo ou nada).
type Service struct {
	ledger         StockLedger
	publisher      events.Publisher
	logger         logger.Logger
	tracer         trace.Tracer
	maxRestockSize int
}

// NewService cria e retorna uma nova instância do Serviço de Reabastecimento.
func NewService(ledger StockLedger, publisher events.Publisher, logger logger.Logger, maxRestockQuantity int) *Service {
	if maxRestockQuantity <= 0 {
		maxRestockQuantity = DefaultMaxRestockQuantity
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		ledger:         ledger,
		publisher:      publisher,
		logger:         logger,
		tracer:         otel.Tracer("bookstore/restockservice"),
		maxRestockSize: maxRestockQuantity,
	}
}

// Restock valida cada linha (todas, sem interromper na primeira falha) e só
// credita o estoque se nenhuma linha violar as regras. O reabastecimento é
// permitido em qualquer nível de estoque.
func (s *Service) Restock(ctx context.Context, lines []domain.RestockLine) (domain.RestockResult, error) {
	ctx, span := s.tracer.Start(ctx, "restockservice.Restock")
	defer span.End()
	span.SetAttributes(attribute.Int("restock.lines", len(lines)))

	s.logger.Debug("Iniciando reabastecimento.", map[string]interface{}{"lines": len(lines)})

	books := make([]domain.Book, len(lines))
	for i, line := range lines {
		book, ok := domain.LookupBook(line.Book)
		if !ok {
			return domain.RestockResult{}, s.reject(span, apperror.NewValidationError(fmt.Sprintf("unknown book %q.", line.Book)))
		}
		if line.Quantity < 0 {
			return domain.RestockResult{}, s.reject(span, apperror.NewValidationError(fmt.Sprintf("quantity for %s must not be negative.", book.Title)))
		}
		books[i] = book
	}

	var violations []apperror.RestockViolation
	for i, line := range lines {
		if v, ok := s.check(books[i], line.Quantity); !ok {
			violations = append(violations, v)
		}
	}
	if len(violations) > 0 {
		return domain.RestockResult{}, s.reject(span, apperror.NewRestockRejectedError(violations))
	}

	// Commit sob o lock dos livros do lote, na ordem de entrada
	ids := make([]domain.BookID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.Book)
	}
	unlock := s.ledger.Lock(ids...)
	for _, line := range lines {
		s.ledger.Increment(line.Book, line.Quantity)
	}
	stockAfter := make([]domain.StockLevel, 0, len(ids))
	seen := make(map[domain.BookID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		stockAfter = append(stockAfter, domain.StockLevel{BookID: id, Quantity: s.ledger.StockOf(id)})
	}
	unlock()

	result := domain.RestockResult{
		Message:        successMessage,
		RestockedItems: make([]domain.RestockedBook, 0, len(lines)),
	}
	for i, line := range lines {
		result.RestockedItems = append(result.RestockedItems, domain.RestockedBook{Title: books[i].Title, Quantity: line.Quantity})
	}

	span.SetStatus(codes.Ok, "restocked")
	s.logger.Info("Reabastecimento concluído com sucesso.", map[string]interface{}{"lines": len(lines)})

	if err := s.publisher.Publish(ctx, domain.RKStockRestocked, domain.StockRestockedEvent{
		Lines:      lines,
		Stock:      stockAfter,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("Falha ao publicar evento de reabastecimento.", map[string]interface{}{"error": err.Error()})
	}

	return result, nil
}

// check aplica as regras na ordem fixa: máximo > múltiplo de 10 > livro esgotado para sempre.
// Cada linha é reportada por no máximo uma razão.
func (s *Service) check(book domain.Book, quantity int) (apperror.RestockViolation, bool) {
	switch {
	case quantity > s.maxRestockSize:
		return apperror.RestockViolation{
			Reason:  apperror.RestockExceedsMax,
			Title:   book.Title,
			Message: fmt.Sprintf("Restock exceeds maximum allowed quantity of %d for book %s.", s.maxRestockSize, book.Title),
		}, false
	case quantity%restockMultiple != 0:
		return apperror.RestockViolation{
			Reason:  apperror.RestockNotMultipleOfTen,
			Title:   book.Title,
			Message: fmt.Sprintf("Restock quantity for %s must be in multiples of %d.", book.Title, restockMultiple),
		}, false
	case book.PermanentlyUnavailable:
		return apperror.RestockViolation{
			Reason: apperror.RestockPermanentlyUnavailable,
			Title:  book.Title,
			Message: fmt.Sprintf("Cannot restock %s as no more exists in the world. "+
				"Please try to create a new restock order without %s.", book.Title, book.Title),
		}, false
	}
	return apperror.RestockViolation{}, true
}

// reject registra a rejeição do lote no span e no log e devolve o erro.
func (s *Service) reject(span trace.Span, err error) error {
	_, category, message := apperror.MapToHTTPStatus(err)
	span.SetAttributes(attribute.String("restock.rejection", category))
	span.SetStatus(codes.Error, message)
	s.logger.Info("Reabastecimento rejeitado.", map[string]interface{}{
		"category": category,
		"message":  message,
		"details":  apperror.Details(err),
	})
	return err
}
