package domain

// UserRole é um tipo string para representar o papel do usuário no sistema.
type UserRole string

// Constantes para os papéis de usuário
const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// Credentials representa o payload de entrada para o login administrativo.
type Credentials struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"secret"`
}

// TokenResponse é a resposta de um login bem-sucedido.
type TokenResponse struct {
	Token string `json:"token"`
}
