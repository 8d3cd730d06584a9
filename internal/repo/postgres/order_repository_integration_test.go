//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ordersvc/order-service/internal/domain"
	pgrepo "github.com/ordersvc/order-service/internal/repo/postgres"
	"github.com/ordersvc/order-service/internal/testutil"
)

// recordingSink — потокобезопасная запись доменных событий из репозитория.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.StatusChanged
}

func (s *recordingSink) OrderStatusChanged(_ context.Context, e domain.StatusChanged) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) all() []domain.StatusChanged {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.StatusChanged(nil), s.events...)
}

func startRepo(t *testing.T) (context.Context, *pgrepo.OrderRepository, *recordingSink) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	sink := &recordingSink{}
	return ctx, pgrepo.NewOrderRepository(pg.Pool, sink), sink
}

func userPrincipal() domain.Principal {
	return domain.Principal{UserID: uuid.New()}
}

func adminPrincipal() domain.Principal {
	return domain.Principal{UserID: uuid.New(), IsAdmin: true}
}

// 1) Создание и чтение владельцем
func TestRepo_CreateAndGet_TC(t *testing.T) {
	t.Parallel()
	ctx, repo, _ := startRepo(t)

	owner := userPrincipal()
	created, err := repo.CreateWithProducts(ctx, owner, testutil.MakeNewOrder())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.UUID)
	require.Equal(t, domain.StatusPending, created.Status)
	require.Equal(t, owner.UserID, created.UserID)
	require.Len(t, created.Products, 2)

	got, err := repo.GetOrder(ctx, created.UUID, owner)
	require.NoError(t, err)
	require.Equal(t, created.UUID, got.UUID)
	require.Equal(t, created.CustomerName, got.CustomerName)
	require.Len(t, got.Products, 2)
	require.True(t, got.TotalPrice().Equal(decimal.RequireFromString("25.50")),
		"total = 10.00*2 + 5.50*1, got %s", got.TotalPrice())
}

// 2) Права: чужой заказ закрыт для пользователя, открыт для админа
func TestRepo_Permissions_TC(t *testing.T) {
	t.Parallel()
	ctx, repo, _ := startRepo(t)

	owner := userPrincipal()
	created, err := repo.CreateWithProducts(ctx, owner, testutil.MakeNewOrder())
	require.NoError(t, err)

	stranger := userPrincipal()
	_, err = repo.GetOrder(ctx, created.UUID, stranger)
	require.ErrorIs(t, err, domain.ErrNoPermission)

	got, err := repo.GetOrder(ctx, created.UUID, adminPrincipal())
	require.NoError(t, err)
	require.Equal(t, created.UUID, got.UUID)

	// несуществующий id — NotFound до любых проверок прав
	_, err = repo.GetOrder(ctx, uuid.New(), owner)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

// 3) Soft delete: заказ исчезает из чтения, повторное удаление — NotFound
func TestRepo_SoftDelete_TC(t *testing.T) {
	t.Parallel()
	ctx, repo, _ := startRepo(t)

	owner := userPrincipal()
	created, err := repo.CreateWithProducts(ctx, owner, testutil.MakeNewOrder())
	require.NoError(t, err)

	// чужой не может удалить
	require.ErrorIs(t, repo.SoftDelete(ctx, created.UUID, userPrincipal()), domain.ErrNoPermission)

	require.NoError(t, repo.SoftDelete(ctx, created.UUID, owner))

	_, err = repo.GetOrder(ctx, created.UUID, owner)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	// удалённый заказ не видит даже админ
	_, err = repo.GetOrder(ctx, created.UUID, adminPrincipal())
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	require.ErrorIs(t, repo.SoftDelete(ctx, created.UUID, owner), domain.ErrOrderNotFound)
}

// 4) Обновление: полная замена позиций и событие только при смене статуса
func TestRepo_Update_ReplacesProductsAndEmitsEvent_TC(t *testing.T) {
	t.Parallel()
	ctx, repo, sink := startRepo(t)

	owner := userPrincipal()
	created, err := repo.CreateWithProducts(ctx, owner, testutil.MakeNewOrder())
	require.NoError(t, err)

	oldProductIDs := map[uuid.UUID]bool{}
	for _, p := range created.Products {
		oldProductIDs[p.UUID] = true
	}

	// апдейт без смены статуса — событий нет
	updated, err := repo.UpdateWithProducts(ctx, created.UUID, domain.OrderUpdate{
		CustomerName: "Renamed",
		Status:       domain.StatusPending,
		Products:     []domain.NewProduct{{Name: "OnlyOne", Price: decimal.RequireFromString("7.77"), Quantity: 3}},
	}, owner)
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.CustomerName)
	require.Len(t, updated.Products, 1)
	require.False(t, oldProductIDs[updated.Products[0].UUID], "позиции должны пересоздаваться с новыми id")
	require.Empty(t, sink.all())

	// апдейт со сменой статуса — ровно одно событие
	updated, err = repo.UpdateWithProducts(ctx, created.UUID, domain.OrderUpdate{
		CustomerName: "Renamed",
		Status:       domain.StatusConfirmed,
		Products:     []domain.NewProduct{{Name: "OnlyOne", Price: decimal.RequireFromString("7.77"), Quantity: 3}},
	}, owner)
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, updated.Status)

	events := sink.all()
	require.Len(t, events, 1)
	require.Equal(t, created.UUID.String(), events[0].OrderID)
	require.Equal(t, domain.StatusPending, events[0].OldStatus)
	require.Equal(t, domain.StatusConfirmed, events[0].NewStatus)

	// чужой не может обновить
	_, err = repo.UpdateWithProducts(ctx, created.UUID, domain.OrderUpdate{
		CustomerName: "Hacked",
		Status:       domain.StatusCancelled,
	}, userPrincipal())
	require.ErrorIs(t, err, domain.ErrNoPermission)
}

// 5) Фильтрация: область видимости, границы диапазонов, пагинация
func TestRepo_FilterOrders_TC(t *testing.T) {
	t.Parallel()
	ctx, repo, _ := startRepo(t)

	alice := userPrincipal()
	bob := userPrincipal()

	// alice: totals 20.00 и 100.00; bob: total 50.00
	a1, err := repo.CreateWithProducts(ctx, alice, testutil.MakeNewOrder(testutil.WithPricedProduct("10.00", 2)))
	require.NoError(t, err)
	a2, err := repo.CreateWithProducts(ctx, alice, testutil.MakeNewOrder(testutil.WithPricedProduct("100.00", 1)))
	require.NoError(t, err)
	b1, err := repo.CreateWithProducts(ctx, bob, testutil.MakeNewOrder(testutil.WithPricedProduct("50.00", 1)))
	require.NoError(t, err)

	filter := domain.OrderFilter{Status: domain.StatusPending, Limit: 10}
	filter.Normalize()

	// не-админ видит только своё
	got, err := repo.FilterOrders(ctx, alice, filter)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, o := range got {
		require.Equal(t, alice.UserID, o.UserID)
	}

	// админ видит всех
	got, err = repo.FilterOrders(ctx, adminPrincipal(), filter)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// границы total включительные
	minT := decimal.RequireFromString("20.00")
	maxT := decimal.RequireFromString("50.00")
	ranged := filter
	ranged.MinTotal = &minT
	ranged.MaxTotal = &maxT
	got, err = repo.FilterOrders(ctx, adminPrincipal(), ranged)
	require.NoError(t, err)
	require.Len(t, got, 2)
	ids := map[uuid.UUID]bool{}
	for _, o := range got {
		ids[o.UUID] = true
	}
	require.True(t, ids[a1.UUID] && ids[b1.UUID])
	require.False(t, ids[a2.UUID])

	// фильтр по цене позиции отсекает дешёвые позиции
	minP := decimal.RequireFromString("60.00")
	priced := filter
	priced.MinPrice = &minP
	got, err = repo.FilterOrders(ctx, adminPrincipal(), priced)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, a2.UUID, got[0].UUID)

	// пагинация: limit=1 два среза без пересечений
	paged := filter
	paged.Limit = 1
	first, err := repo.FilterOrders(ctx, adminPrincipal(), paged)
	require.NoError(t, err)
	require.Len(t, first, 1)
	paged.Offset = 1
	second, err := repo.FilterOrders(ctx, adminPrincipal(), paged)
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.NotEqual(t, first[0].UUID, second[0].UUID)

	// удалённые не попадают в выборку
	require.NoError(t, repo.SoftDelete(ctx, b1.UUID, bob))
	got, err = repo.FilterOrders(ctx, adminPrincipal(), filter)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
