package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	rediscache "github.com/ordersvc/order-service/internal/cache/redis"
	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
)

// Проверка, что OrderService удовлетворяет интерфейсу OrderService.
var _ ports.OrderService = (*OrderService)(nil)

// OrderService — прикладная логика работы с заказами (без знаний о
// транспорте). Политика кэша по операциям:
//
//	get    — read-through без принудительного обновления;
//	filter — read-through с ограниченным TTL;
//	update — refresh (перезапись свежим результатом);
//	delete — invalidate (удаление ключа).
//
// Ошибки кэша пробрасываются наверх: деградация до нечитающих кэш запросов
// маскировала бы отказ инфраструктуры.
type OrderService struct {
	repo      ports.OrderRepository
	cache     ports.OrderCache
	log       ports.Logger
	validator ports.OrderValidator
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	cache ports.OrderCache,
	log ports.Logger,
	validator ports.OrderValidator,
) *OrderService {
	return &OrderService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

// CreateOrder — валидация, транзакционное создание, прогрев кэша записи.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	principal domain.Principal,
	data domain.NewOrder,
) (*domain.Order, error) {
	if err := s.validator.ValidateNewOrder(ctx, &data); err != nil {
		return nil, err
	}

	order, err := s.repo.CreateWithProducts(ctx, principal, data)
	if err != nil {
		s.log.Errorf(ctx, "repo.CreateWithProducts failed user_id=%s err=%v", principal.UserID, err)
		return nil, err
	}

	if err := s.cache.SetOrder(ctx, rediscache.OrderKey(order.UUID), order); err != nil {
		return nil, err
	}
	s.log.Infof(ctx, "order created uid=%s products=%d", order.UUID, len(order.Products))
	return order, nil
}

// GetOrder — read-through: сначала кэш, при промахе — репозиторий с записью
// результата. Попадание не обходит проверку прав: владение проверяется и на
// закэшированном значении, прежде чем оно будет возвращено.
func (s *OrderService) GetOrder(
	ctx context.Context,
	orderID uuid.UUID,
	principal domain.Principal,
) (*domain.Order, error) {
	key := rediscache.OrderKey(orderID)

	if order, found, err := s.cache.GetOrder(ctx, key); err != nil {
		return nil, err
	} else if found {
		if !principal.IsAdmin && order.UserID != principal.UserID {
			return nil, domain.ErrNoPermission
		}
		s.log.Infof(ctx, "cache hit for order=%s", orderID)
		return order, nil
	}
	s.log.Infof(ctx, "cache miss for order=%s", orderID)

	start := time.Now()
	order, err := s.repo.GetOrder(ctx, orderID, principal)
	if err != nil {
		return nil, err
	}

	// Кэшируется только подтверждённый репозиторием результат.
	if err := s.cache.SetOrder(ctx, key, order); err != nil {
		return nil, err
	}
	s.log.Infof(ctx, "db fetch order=%s took=%s", orderID, time.Since(start))
	return order, nil
}

// UpdateOrder — валидация, обновление с полной заменой позиций и refresh
// ключа: кэш перезаписывается свежим результатом, а не инвалидируется,
// чтобы следующий читатель не получил устаревшие данные.
func (s *OrderService) UpdateOrder(
	ctx context.Context,
	orderID uuid.UUID,
	data domain.OrderUpdate,
	principal domain.Principal,
) (*domain.Order, error) {
	if err := s.validator.ValidateOrderUpdate(ctx, &data); err != nil {
		return nil, err
	}

	order, err := s.repo.UpdateWithProducts(ctx, orderID, data, principal)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetOrder(ctx, rediscache.OrderKey(orderID), order); err != nil {
		return nil, err
	}
	s.log.Infof(ctx, "order updated uid=%s status=%s products=%d", order.UUID, order.Status, len(order.Products))
	return order, nil
}

// FilterOrders — read-through по составному ключу фильтра с TTL списков.
func (s *OrderService) FilterOrders(
	ctx context.Context,
	principal domain.Principal,
	filter domain.OrderFilter,
) ([]*domain.Order, error) {
	filter.Normalize()
	key := rediscache.FilterKey(principal, filter)

	if orders, found, err := s.cache.GetOrders(ctx, key); err != nil {
		return nil, err
	} else if found {
		s.log.Infof(ctx, "cache hit for filter=%s", key)
		return orders, nil
	}

	orders, err := s.repo.FilterOrders(ctx, principal, filter)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetOrders(ctx, key, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteOrder — soft delete с инвалидацией ключа: кэш не должен
// маскировать удаление при последующем чтении того же id.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID, principal domain.Principal) error {
	if err := s.repo.SoftDelete(ctx, orderID, principal); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, rediscache.OrderKey(orderID)); err != nil {
		return err
	}
	s.log.Infof(ctx, "order deleted uid=%s", orderID)
	return nil
}
