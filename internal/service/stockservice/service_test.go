package stockservice_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore/internal/domain"
	apperror "bookstore/internal/errors"
	"bookstore/internal/pkg/logger"
	"bookstore/internal/repository/stockrepo"
	"bookstore/internal/service/stockservice"
)

// MockLedger é uma implementação mock da interface StockLedger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) LockAll() func() {
	m.Called()
	return func() {}
}

func (m *MockLedger) Snapshot() []domain.StockLevel {
	args := m.Called()
	return args.Get(0).([]domain.StockLevel)
}

// TestListStock_Success testa a listagem com o estoque inicial.
func TestListStock_Success(t *testing.T) {
	ledger := stockrepo.NewLedger(domain.InitialStock(), logger.NewNopLogger())
	svc := stockservice.NewService(ledger, logger.NewNopLogger())

	views, err := svc.ListStock(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.StockView{
		{Title: "Fellowship of the book", Price: 5, Stock: 20},
		{Title: "Books and the chamber of books", Price: 10, Stock: 20},
		{Title: "The Return of the Book", Price: 15, Stock: 20},
		{Title: "Limited Collectors Edition", Price: 75, Stock: 10},
	}, views)
}

// TestListStock_UsesLockAll garante que a listagem lê o snapshot sob todos os locks.
func TestListStock_UsesLockAll(t *testing.T) {
	mockLedger := new(MockLedger)
	mockLedger.On("LockAll").Once()
	mockLedger.On("Snapshot").Return([]domain.StockLevel{{BookID: domain.BookC, Quantity: 3}}).Once()

	svc := stockservice.NewService(mockLedger, logger.NewNopLogger())

	views, err := svc.ListStock(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.StockView{{Title: "The Return of the Book", Price: 15, Stock: 3}}, views)
	mockLedger.AssertExpectations(t)
}

// TestListStock_Fail_UnknownBook testa um ledger com livro fora do catálogo.
func TestListStock_Fail_UnknownBook(t *testing.T) {
	mockLedger := new(MockLedger)
	mockLedger.On("LockAll")
	mockLedger.On("Snapshot").Return([]domain.StockLevel{{BookID: "BOOK_Z", Quantity: 1}})

	svc := stockservice.NewService(mockLedger, logger.NewNopLogger())

	_, err := svc.ListStock(context.Background())

	assert.IsType(t, &apperror.InternalError{}, err)
}

// TestListStock_ConcurrentWithWrites lê o estoque enquanto outro goroutine altera o ledger.
func TestListStock_ConcurrentWithWrites(t *testing.T) {
	ledger := stockrepo.NewLedger(map[domain.BookID]int{domain.BookA: 100, domain.BookB: 100}, logger.NewNopLogger())
	svc := stockservice.NewService(ledger, logger.NewNopLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			unlock := ledger.Lock(domain.BookA, domain.BookB)
			ledger.Decrement(domain.BookA, 1)
			ledger.Increment(domain.BookB, 1)
			unlock()
		}
	}()

	for i := 0; i < 100; i++ {
		views, err := svc.ListStock(context.Background())
		require.NoError(t, err)
		// Cada transferência é atômica: a soma de A e B é constante em qualquer snapshot.
		assert.Equal(t, 200, views[0].Stock+views[1].Stock)
	}
	wg.Wait()
}
