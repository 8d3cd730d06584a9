package auth

import (
	"context"
	"fmt"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
)

// Проверка, что Service удовлетворяет интерфейсу AuthService.
var _ ports.AuthService = (*Service)(nil)

// Service — вход через внешний сервис аутентификации и резолв principal'а
// по токену с кэшированием провалидированных payload'ов.
type Service struct {
	client ports.IdentityClient
	tokens ports.TokenStore
	log    ports.Logger
}

// NewService — DI-конструктор.
func NewService(client ports.IdentityClient, tokens ports.TokenStore, log ports.Logger) *Service {
	return &Service{client: client, tokens: tokens, log: log}
}

// Login — обмен учётных данных на токен. Успешный токен сразу валидируется
// и кладётся в кэш, чтобы первый запрос пользователя не ходил во внешний
// сервис повторно.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	token, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	payload, err := s.client.Validate(ctx, token.AccessToken)
	if err != nil {
		// Токен выдан, прогрев кэша не удался — не фатально для входа.
		s.log.Warnf(ctx, "post-login validate failed user=%s: %v", username, err)
		return token, nil
	}
	if setErr := s.tokens.Set(ctx, token.AccessToken, payload); setErr != nil {
		s.log.Warnf(ctx, "token cache set failed user=%s: %v", username, setErr)
	}
	return token, nil
}

// Authenticate — principal по токену: сначала кэш, при промахе — внешний
// сервис с записью результата в кэш. Неактивный пользователь — отказ.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (domain.Principal, error) {
	if accessToken == "" {
		return domain.Principal{}, fmt.Errorf("%w: empty token", domain.ErrAuthenticationFailed)
	}

	payload, found, err := s.tokens.Get(ctx, accessToken)
	if err != nil {
		return domain.Principal{}, err
	}

	if !found {
		payload, err = s.client.Validate(ctx, accessToken)
		if err != nil {
			return domain.Principal{}, err
		}
		if setErr := s.tokens.Set(ctx, accessToken, payload); setErr != nil {
			return domain.Principal{}, setErr
		}
	}

	if !payload.IsActive {
		return domain.Principal{}, fmt.Errorf("%w: user %s is not active", domain.ErrAuthenticationFailed, payload.Username)
	}
	return payload.Principal()
}
