package authservice

import (
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"bookstore/internal/domain"
	apperror "bookstore/internal/errors"
	"bookstore/internal/pkg/logger"
)

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(username string, role domain.UserRole) (string, error)
}

// Service autentica o administrador configurado e emite JWTs.
// Não há cadastro de usuários: a loja tem uma única conta administrativa.
type Service struct {
	username     string
	passwordHash []byte
	tokenSvc     TokenService
	logger       logger.Logger
}

// NewService cria uma nova instância do Serviço de Autenticação.
// passwordHash deve ser um hash bcrypt (ver HashPassword).
func NewService(username, passwordHash string, tokenSvc TokenService, logger logger.Logger) *Service {
	return &Service{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokenSvc:     tokenSvc,
		logger:       logger,
	}
}

// HashPassword gera o hash bcrypt de uma senha em texto puro.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}
	return string(hashed), nil
}

// Login verifica as credenciais e, se corretas, gera um JWT com papel de administrador.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.TokenResponse, error) {
	// 1. Validação Básica
	if creds.Username == "" || creds.Password == "" {
		return domain.TokenResponse{}, apperror.NewValidationError("username and password are required.")
	}

	// 2. Comparar usuário e senha (sempre executa o bcrypt, mesmo com usuário errado)
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(creds.Password))
	if !userOK || passErr != nil {
		s.logger.Info("Tentativa de login recusada.", map[string]interface{}{"username": creds.Username})
		return domain.TokenResponse{}, apperror.NewUnauthorizedError("invalid credentials.")
	}

	// 3. Gerar JWT
	tokenString, err := s.tokenSvc.GenerateToken(s.username, domain.RoleAdmin)
	if err != nil {
		s.logger.Error("Falha ao gerar token de autenticação.", err)
		return domain.TokenResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login administrativo realizado.", map[string]interface{}{"username": s.username})
	return domain.TokenResponse{Token: tokenString}, nil
}
