package auth

import (
	"context"
	"net/http"

	"bookstore/internal/api/response"
	"bookstore/internal/domain"
	"bookstore/internal/pkg/logger"
)

// AuthService define o contrato para a operação de login.
type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.TokenResponse, error)
}

// Handler agrupa os métodos de Handler de autenticação.
type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// LoginHandler lida com a requisição POST /api/login.
// @Summary Autentica o administrador e retorna um JWT
// @Description Recebe usuário/senha, verifica contra a conta configurada e emite um JSON Web Token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body domain.Credentials true "Credenciais do administrador"
// @Success 200 {object} domain.TokenResponse "Token JWT emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := response.Decode(w, r, &creds); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	tok, err := h.Service.Login(r.Context(), creds)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.JSON(w, h.Logger, http.StatusOK, tok)
}
