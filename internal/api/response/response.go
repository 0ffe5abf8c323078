package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bookstore/internal/domain"
	apperror "bookstore/internal/errors"
	"bookstore/internal/pkg/logger"
)

// JSON envia data serializado com o status informado.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error traduz err para o envelope padronizado de erro e o envia ao cliente.
// Erros 5xx são registrados como Error; os demais como Debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"path": r.URL.Path,
		})
	}

	JSON(w, log, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Errors:   apperror.Details(err),
	})
}

// maxBodyBytes limita o tamanho do corpo aceito pelos handlers.
const maxBodyBytes = 1 << 20

// Decode lê o corpo JSON da requisição em v. Qualquer falha (JSON malformado,
// livro desconhecido, corpo grande demais) vira um ValidationError.
func Decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperror.NewValidationError(fmt.Sprintf("invalid JSON payload: %s.", err.Error()))
	}
	return nil
}
