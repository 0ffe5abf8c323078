package domain

// RestockLine é uma linha de reabastecimento: livro e quantidade a adicionar.
type RestockLine struct {
	Book     BookID `json:"book" example:"BOOK_A"`
	Quantity int    `json:"quantity" example:"10"`
}

// RestockedBook descreve uma linha reabastecida na resposta.
type RestockedBook struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// RestockResult é a resposta de um reabastecimento aceito.
type RestockResult struct {
	Message        string          `json:"message"`
	RestockedItems []RestockedBook `json:"restockedItems"`
}
