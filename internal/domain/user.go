package domain

import "github.com/google/uuid"

// UserRole — роль пользователя во внешнем сервисе аутентификации.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// Principal — аутентифицированный вызывающий. Роль — явный флаг,
// а не иерархия типов: проверка прав в репозитории читает его напрямую.
type Principal struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Token — токен, выданный сервисом аутентификации.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenPayload — расшифрованное содержимое токена (ответ /validate).
type TokenPayload struct {
	UUID     string   `json:"uuid"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	IsActive bool     `json:"is_active"`
}

// Principal — собирает Principal из payload.
// Ошибка парсинга UUID трактуется как проблема аутентификации.
func (p *TokenPayload) Principal() (Principal, error) {
	id, err := uuid.Parse(p.UUID)
	if err != nil {
		return Principal{}, ErrAuthenticationFailed
	}
	return Principal{UserID: id, IsAdmin: p.Role == RoleAdmin}, nil
}
