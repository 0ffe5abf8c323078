package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int      `json:"code" example:"400"`
	Category string   `json:"category" example:"OUT_OF_STOCK"`
	Message  string   `json:"message" example:"One or more books in the order are out of stock."`
	Errors   []string `json:"errors,omitempty"` // Presente apenas quando o lote falha em várias linhas
}
