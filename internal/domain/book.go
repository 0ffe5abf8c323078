package domain

import (
	"encoding/json"
	"fmt"
)

// BookID é o identificador estável de um livro do catálogo (e.g., "BOOK_A").
type BookID string

// Identificadores do catálogo fixo.
const (
	BookA BookID = "BOOK_A"
	BookB BookID = "BOOK_B"
	BookC BookID = "BOOK_C"
	BookD BookID = "BOOK_D"
)

// Book representa um item imutável do catálogo (a Entidade).
type Book struct {
	ID    BookID `json:"id"`
	Title string `json:"title"`
	Price int    `json:"price"` // Preço unitário em unidades inteiras

	// PermanentlyUnavailable marca o livro que pode ser vendido até zero mas nunca reabastecido.
	PermanentlyUnavailable bool `json:"-"`
}

// catalog guarda os livros na ordem de declaração. A ordem é observável na listagem.
var catalog = []Book{
	{ID: BookA, Title: "Fellowship of the book", Price: 5},
	{ID: BookB, Title: "Books and the chamber of books", Price: 10},
	{ID: BookC, Title: "The Return of the Book", Price: 15},
	{ID: BookD, Title: "Limited Collectors Edition", Price: 75, PermanentlyUnavailable: true},
}

var catalogIndex = func() map[BookID]int {
	idx := make(map[BookID]int, len(catalog))
	for i, b := range catalog {
		idx[b.ID] = i
	}
	return idx
}()

// Catalog retorna uma cópia do catálogo na ordem fixa A, B, C, D.
func Catalog() []Book {
	out := make([]Book, len(catalog))
	copy(out, catalog)
	return out
}

// LookupBook busca um livro pelo identificador.
func LookupBook(id BookID) (Book, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Book{}, false
	}
	return catalog[i], true
}

// CatalogPosition retorna a posição do livro no catálogo (-1 se desconhecido).
// Usado para ordenar a aquisição de locks no ledger.
func CatalogPosition(id BookID) int {
	i, ok := catalogIndex[id]
	if !ok {
		return -1
	}
	return i
}

// UnmarshalJSON rejeita identificadores fora do catálogo, de modo que o núcleo
// nunca recebe um livro desconhecido.
func (id *BookID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("book must be a string identifier: %w", err)
	}
	candidate := BookID(raw)
	if _, ok := catalogIndex[candidate]; !ok {
		return fmt.Errorf("unknown book %q", raw)
	}
	*id = candidate
	return nil
}
