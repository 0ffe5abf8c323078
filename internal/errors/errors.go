package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados da livraria.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "OUT_OF_STOCK", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// Detailer é implementado por erros que carregam uma mensagem por linha do lote.
type Detailer interface {
	Details() []string
}

// --- Tipos de Erro Específicos (Erros de Entrada e Acesso) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Validation error: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// UnauthorizedError representa credenciais ausentes ou inválidas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Unauthorized: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa um usuário autenticado sem a permissão necessária.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Forbidden: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden } // 403
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError cria um novo erro de autorização.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// ConflictError representa uma requisição repetida (e.g., Idempotency-Key já usada).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflict: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// TooManyRequestsError é retornado pelo rate limiter.
type TooManyRequestsError struct {
	Msg string
}

func (e *TooManyRequestsError) Error() string    { return fmt.Sprintf("Rate limit exceeded: %s", e.Msg) }
func (e *TooManyRequestsError) Category() string { return "RATE_LIMITED" }
func (e *TooManyRequestsError) HTTPStatus() int  { return http.StatusTooManyRequests } // 429
func (e *TooManyRequestsError) Unwrap() error    { return nil }

// NewTooManyRequestsError cria um novo erro de limite de requisições.
func NewTooManyRequestsError(msg string) AppError {
	return &TooManyRequestsError{Msg: msg}
}

// --- Falhas de Regra de Negócio (Pedidos) ---

// EmptyOrderError: a quantidade total do pedido é zero.
type EmptyOrderError struct{}

func (e *EmptyOrderError) Error() string    { return "No books placed in the order." }
func (e *EmptyOrderError) Category() string { return "EMPTY_ORDER" }
func (e *EmptyOrderError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *EmptyOrderError) Unwrap() error    { return nil }

// NewEmptyOrderError cria o erro de pedido vazio.
func NewEmptyOrderError() AppError {
	return &EmptyOrderError{}
}

// OrderTooExpensiveError: o valor total do pedido excede o limite configurado.
type OrderTooExpensiveError struct {
	Total int
	Limit int
}

func (e *OrderTooExpensiveError) Error() string {
	return fmt.Sprintf("Order of $%d exceeds maximum allowed value of $%d.", e.Total, e.Limit)
}
func (e *OrderTooExpensiveError) Category() string { return "ORDER_TOO_EXPENSIVE" }
func (e *OrderTooExpensiveError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *OrderTooExpensiveError) Unwrap() error    { return nil }

// NewOrderTooExpensiveError cria o erro de pedido acima do valor máximo.
func NewOrderTooExpensiveError(total, limit int) AppError {
	return &OrderTooExpensiveError{Total: total, Limit: limit}
}

// OutOfStockError carrega uma mensagem por linha sem estoque, na ordem do pedido.
type OutOfStockError struct {
	Messages []string
}

func (e *OutOfStockError) Error() string    { return "One or more books in the order are out of stock." }
func (e *OutOfStockError) Category() string { return "OUT_OF_STOCK" }
func (e *OutOfStockError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *OutOfStockError) Unwrap() error    { return nil }
func (e *OutOfStockError) Details() []string {
	return e.Messages
}

// NewOutOfStockError cria o erro de falta de estoque.
func NewOutOfStockError(messages []string) AppError {
	return &OutOfStockError{Messages: messages}
}

// --- Falhas de Regra de Negócio (Reabastecimento) ---

// RestockReason identifica a regra violada por uma linha de reabastecimento.
type RestockReason string

const (
	RestockExceedsMax             RestockReason = "QUANTITY_EXCEEDS_MAX"
	RestockNotMultipleOfTen       RestockReason = "QUANTITY_NOT_MULTIPLE_OF_TEN"
	RestockPermanentlyUnavailable RestockReason = "BOOK_PERMANENTLY_UNAVAILABLE"
)

// RestockViolation é a falha de uma única linha (no máximo uma razão por linha).
type RestockViolation struct {
	Reason  RestockReason
	Title   string
	Message string
}

// RestockRejectedError agrupa todas as linhas inválidas de um lote de reabastecimento.
type RestockRejectedError struct {
	Violations []RestockViolation
}

func (e *RestockRejectedError) Error() string    { return "The restock order was rejected." }
func (e *RestockRejectedError) Category() string { return "RESTOCK_REJECTED" }
func (e *RestockRejectedError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *RestockRejectedError) Unwrap() error    { return nil }
func (e *RestockRejectedError) Details() []string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// NewRestockRejectedError cria o erro de lote de reabastecimento rejeitado.
func NewRestockRejectedError(violations []RestockViolation) AppError {
	return &RestockRejectedError{Violations: violations}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou infraestrutura.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do Redis)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Internal error: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewCacheError é um atalho para criar um InternalError específico de falhas no Redis.
func NewCacheError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (cache): %s", msg, err.Error()), err)
}

// --- Helpers para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, categoria e mensagem.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratado como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "An unexpected error occurred."
}

// Details retorna as mensagens por linha de um erro de lote (nil para os demais).
func Details(err error) []string {
	var d Detailer
	if stderrors.As(err, &d) {
		return d.Details()
	}
	return nil
}
