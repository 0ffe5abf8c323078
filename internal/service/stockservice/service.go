package stockservice

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"bookstore/internal/domain"
	apperror "bookstore/internal/errors"
	"bookstore/internal/pkg/logger"
)

// StockLedger define o contrato que o Serviço de Estoque espera do ledger.
type StockLedger interface {
	LockAll() (unlock func())
	Snapshot() []domain.StockLevel
}

// Service expõe a visão somente-leitura do estoque.
type Service struct {
	ledger StockLedger
	logger logger.Logger
	tracer trace.Tracer
}

// NewService cria e retorna uma nova instância do Serviço de Estoque.
func NewService(ledger StockLedger, logger logger.Logger) *Service {
	return &Service{
		ledger: ledger,
		logger: logger,
		tracer: otel.Tracer("bookstore/stockservice"),
	}
}

// ListStock retorna título, preço e estoque de cada livro, na ordem do catálogo.
// A leitura é feita sob todos os locks, então nunca mistura estados de lotes diferentes.
func (s *Service) ListStock(ctx context.Context) ([]domain.StockView, error) {
	_, span := s.tracer.Start(ctx, "stockservice.ListStock")
	defer span.End()

	unlock := s.ledger.LockAll()
	levels := s.ledger.Snapshot()
	unlock()

	views := make([]domain.StockView, 0, len(levels))
	for _, level := range levels {
		book, ok := domain.LookupBook(level.BookID)
		if !ok {
			err := apperror.NewInternalError("Livro do ledger ausente do catálogo.", nil)
			s.logger.Error("Ledger inconsistente com o catálogo.", err)
			return nil, err
		}
		views = append(views, domain.StockView{Title: book.Title, Price: book.Price, Stock: level.Quantity})
	}

	span.SetAttributes(attribute.Int("stock.books", len(views)))
	s.logger.Debug("Estoque listado.", map[string]interface{}{"books": len(views)})
	return views, nil
}
