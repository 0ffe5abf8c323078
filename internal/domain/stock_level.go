package domain

// StockLevel representa a quantidade em estoque de um livro do catálogo.
// Pertence exclusivamente ao ledger (stockrepo).
type StockLevel struct {
	BookID   BookID `json:"book_id"`
	Quantity int    `json:"quantity"`
}

// InitialStock retorna o estoque semeado a cada início de processo.
func InitialStock() map[BookID]int {
	return map[BookID]int{
		BookA: 20,
		BookB: 20,
		BookC: 20,
		BookD: 10, // Máximo de 10 cópias para o livro D
	}
}

// StockView é a linha da listagem de inventário (somente leitura).
type StockView struct {
	Title string `json:"title" example:"Fellowship of the book"`
	Price int    `json:"price" example:"5"`
	Stock int    `json:"stock" example:"20"`
}
