package stockrepo

import (
	"sort"
	"sync"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/logger"
)

// cell guarda o estoque de um livro e o lock que serializa o acesso a ele.
type cell struct {
	mu       sync.Mutex
	quantity int
}

// Ledger é o livro-razão em memória do estoque por livro do catálogo.
//
// É propositalmente "burro": StockOf, HasAtLeast, Decrement e Increment não
// validam nenhuma regra de negócio e nunca falham. Toda validação fica nos
// serviços de pedido e reabastecimento, que chamam Lock com os livros do lote
// antes de validar e só liberam depois do commit.
//
// O mapa de células é fixo após NewLedger (o catálogo é fechado), então apenas
// os valores de cada célula mudam, sempre sob o lock da própria célula.
type Ledger struct {
	cells  map[domain.BookID]*cell
	order  []domain.BookID // ordem do catálogo, usada para adquirir locks sem deadlock
	logger logger.Logger
}

// NewLedger cria o ledger com uma célula por livro do catálogo, semeada com seed.
// Livros ausentes do seed começam com zero.
func NewLedger(seed map[domain.BookID]int, logger logger.Logger) *Ledger {
	books := domain.Catalog()
	l := &Ledger{
		cells:  make(map[domain.BookID]*cell, len(books)),
		order:  make([]domain.BookID, 0, len(books)),
		logger: logger,
	}
	for _, b := range books {
		l.cells[b.ID] = &cell{quantity: seed[b.ID]}
		l.order = append(l.order, b.ID)
	}

	logger.Info("Ledger de estoque inicializado.", map[string]interface{}{"seed": seed})
	return l
}

// Lock adquire os locks dos livros informados, sem repetição e na ordem do catálogo,
// e retorna a função que os libera. Lotes com livros em comum ficam serializados;
// lotes disjuntos seguem em paralelo.
func (l *Ledger) Lock(ids ...domain.BookID) (unlock func()) {
	seen := make(map[domain.BookID]struct{}, len(ids))
	targets := make([]domain.BookID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		if _, ok := l.cells[id]; !ok {
			continue
		}
		seen[id] = struct{}{}
		targets = append(targets, id)
	}
	sort.Slice(targets, func(i, j int) bool {
		return domain.CatalogPosition(targets[i]) < domain.CatalogPosition(targets[j])
	})

	for _, id := range targets {
		l.cells[id].mu.Lock()
	}

	return func() {
		for i := len(targets) - 1; i >= 0; i-- {
			l.cells[targets[i]].mu.Unlock()
		}
	}
}

// LockAll adquire os locks de todos os livros (usado pela listagem).
func (l *Ledger) LockAll() (unlock func()) {
	return l.Lock(l.order...)
}

// StockOf retorna o estoque atual do livro (0 para livro sem registro).
// O chamador deve segurar o lock do livro quando houver concorrência.
func (l *Ledger) StockOf(id domain.BookID) int {
	c, ok := l.cells[id]
	if !ok {
		return 0
	}
	return c.quantity
}

// HasAtLeast informa se StockOf(id) >= quantity.
func (l *Ledger) HasAtLeast(id domain.BookID, quantity int) bool {
	return l.StockOf(id) >= quantity
}

// Decrement subtrai quantity do estoque sem nenhuma verificação.
func (l *Ledger) Decrement(id domain.BookID, quantity int) {
	c, ok := l.cells[id]
	if !ok {
		return
	}
	c.quantity -= quantity
	l.logger.Debug("Estoque debitado.", map[string]interface{}{"book": id, "delta": -quantity, "quantity": c.quantity})
}

// Increment soma quantity ao estoque sem nenhuma verificação.
func (l *Ledger) Increment(id domain.BookID, quantity int) {
	c, ok := l.cells[id]
	if !ok {
		return
	}
	c.quantity += quantity
	l.logger.Debug("Estoque creditado.", map[string]interface{}{"book": id, "delta": quantity, "quantity": c.quantity})
}

// Snapshot retorna o estoque de todos os livros na ordem do catálogo.
// O chamador deve segurar LockAll para uma leitura consistente.
func (l *Ledger) Snapshot() []domain.StockLevel {
	out := make([]domain.StockLevel, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, domain.StockLevel{BookID: id, Quantity: l.cells[id].quantity})
	}
	return out
}

// Reset volta todos os livros aos valores de seed.
func (l *Ledger) Reset(seed map[domain.BookID]int) {
	unlock := l.LockAll()
	defer unlock()

	for _, id := range l.order {
		l.cells[id].quantity = seed[id]
	}
	l.logger.Info("Ledger de estoque reiniciado.", map[string]interface{}{"seed": seed})
}
