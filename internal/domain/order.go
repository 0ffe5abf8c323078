package domain

// OrderLine é uma linha de um pedido: livro e quantidade solicitada.
type OrderLine struct {
	Book     BookID `json:"book" example:"BOOK_A"`
	Quantity int    `json:"quantity" example:"5"`
}

// OrderedBook descreve uma linha confirmada do pedido na resposta.
type OrderedBook struct {
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	PricePerBook int    `json:"pricePerBook"`
	SubTotal     int    `json:"subTotal"` // PricePerBook * Quantity
}

// OrderResult é a resposta de um pedido aceito.
type OrderResult struct {
	OrderID      string        `json:"orderId"`
	OrderedBooks []OrderedBook `json:"orderedBooks"`
	TotalPrice   int           `json:"totalPrice"`
	Message      string        `json:"message"`
}

// NewOrderedBook monta a linha da resposta calculando o subtotal.
func NewOrderedBook(book Book, quantity int) OrderedBook {
	return OrderedBook{
		Title:        book.Title,
		Quantity:     quantity,
		PricePerBook: book.Price,
		SubTotal:     book.Price * quantity,
	}
}
