package domain

import "errors"

// Ошибки ядра. Транспортный слой маппит их на коды ответов 1:1,
// без локального восстановления.
var (
	// ErrOrderNotFound — заказ не существует или помечен удалённым (404).
	ErrOrderNotFound = errors.New("order not found")

	// ErrNoPermission — principal не владелец и не администратор (401,
	// код сохранён за совместимость с исходным API).
	ErrNoPermission = errors.New("no permission to perform this action")

	// ErrCacheUnavailable — key-value хранилище недоступно (503).
	// Отсутствие ключа ошибкой не является.
	ErrCacheUnavailable = errors.New("cache unavailable")

	// ErrAuthServiceUnavailable — сервис аутентификации не ответил
	// в отведённый таймаут или ошибка транспорта (503).
	ErrAuthServiceUnavailable = errors.New("auth service unavailable")

	// ErrAuthenticationFailed — неверные учётные данные либо
	// неактивный/неизвестный токен (400).
	ErrAuthenticationFailed = errors.New("authentication failed")
)
