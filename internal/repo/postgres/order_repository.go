package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — репозиторий заказов на Postgres (pgxpool) с проверкой
// прав доступа внутри каждой операции. events — приёмник событий смены
// статуса, вызывается ПОСЛЕ коммита; может быть nil.
type OrderRepository struct {
	pool   *pgxpool.Pool
	events ports.EventSink
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool, events ports.EventSink) *OrderRepository {
	return &OrderRepository{pool: pool, events: events}
}

// CreateWithProducts — транзакционно создаёт заказ и его позиции.
// Статус всегда PENDING, владелец — principal.
func (r *OrderRepository) CreateWithProducts(
	ctx context.Context,
	principal domain.Principal,
	data domain.NewOrder,
) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		UUID:         uuid.New(),
		CustomerName: data.CustomerName,
		Status:       domain.StatusPending,
		UserID:       principal.UserID,
		Products:     buildProducts(data.Products),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer rollback(ctx, transaction)

	if _, err = transaction.Exec(ctx, `
		INSERT INTO orders (uuid, customer_name, status, user_id, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, $6)
	`, order.UUID, order.CustomerName, order.Status, order.UserID, order.CreatedAt, order.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if err = copyProducts(ctx, transaction, order.UUID, order.Products); err != nil {
		return nil, err
	}

	if err = transaction.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return order, nil
}

// GetOrder — неудалённый заказ по id с проверкой прав.
func (r *OrderRepository) GetOrder(
	ctx context.Context,
	orderID uuid.UUID,
	principal domain.Principal,
) (*domain.Order, error) {
	return r.getVisible(ctx, orderID, principal)
}

// UpdateWithProducts — lookup+проверка прав (общий getVisible, не дубль),
// затем транзакционная замена customer_name, status и всего набора позиций.
// Если статус фактически сменился — после коммита отдаёт событие в events.
func (r *OrderRepository) UpdateWithProducts(
	ctx context.Context,
	orderID uuid.UUID,
	data domain.OrderUpdate,
	principal domain.Principal,
) (*domain.Order, error) {
	current, err := r.getVisible(ctx, orderID, principal)
	if err != nil {
		return nil, err
	}

	updated := &domain.Order{
		UUID:         current.UUID,
		CustomerName: data.CustomerName,
		Status:       data.Status,
		UserID:       current.UserID,
		Products:     buildProducts(data.Products),
		CreatedAt:    current.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer rollback(ctx, transaction)

	if _, err = transaction.Exec(ctx, `
		UPDATE orders SET customer_name = $2, status = $3, updated_at = $4
		WHERE uuid = $1
	`, updated.UUID, updated.CustomerName, updated.Status, updated.UpdatedAt); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	// Позиции — replace: удаляем и вставляем набор заново, с новыми id.
	if _, err = transaction.Exec(ctx, `DELETE FROM products WHERE order_uuid = $1`, updated.UUID); err != nil {
		return nil, fmt.Errorf("delete products: %w", err)
	}
	if err = copyProducts(ctx, transaction, updated.UUID, updated.Products); err != nil {
		return nil, err
	}

	if err = transaction.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	// Diff статуса считается по значению, прочитанному этим же lookup'ом.
	// На insert событие не возникает — здесь только update.
	if r.events != nil && current.Status != updated.Status {
		r.events.OrderStatusChanged(ctx, domain.StatusChanged{
			OrderID:   updated.UUID.String(),
			OldStatus: current.Status,
			NewStatus: updated.Status,
		})
	}
	return updated, nil
}

// SoftDelete — lookup+проверка прав, затем установка is_deleted.
// Уже удалённый заказ lookup не видит, поэтому повторное удаление — NotFound.
func (r *OrderRepository) SoftDelete(ctx context.Context, orderID uuid.UUID, principal domain.Principal) error {
	if _, err := r.getVisible(ctx, orderID, principal); err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, `
		UPDATE orders SET is_deleted = TRUE, updated_at = $2 WHERE uuid = $1
	`, orderID, time.Now().UTC()); err != nil {
		return fmt.Errorf("soft delete order: %w", err)
	}
	return nil
}

// getVisible — единственная точка lookup'а для одиночных операций:
// исключает удалённые записи и проверяет владение (админ — без проверки).
// Любая новая операция репозитория обязана проходить через неё.
func (r *OrderRepository) getVisible(
	ctx context.Context,
	orderID uuid.UUID,
	principal domain.Principal,
) (*domain.Order, error) {
	order := &domain.Order{}
	err := r.pool.QueryRow(ctx, `
		SELECT uuid, customer_name, status, user_id, is_deleted, created_at, updated_at
		FROM orders
		WHERE uuid = $1 AND is_deleted = FALSE
	`, orderID).Scan(
		&order.UUID, &order.CustomerName, &order.Status, &order.UserID,
		&order.IsDeleted, &order.CreatedAt, &order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %s", domain.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	if !principal.IsAdmin && order.UserID != principal.UserID {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNoPermission, orderID)
	}

	if order.Products, err = r.productsByOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return order, nil
}

// FilterOrders — неудалённые заказы со статусом filter.Status; не-админ
// дополнительно ограничен своими заказами. Диапазон цен — «хотя бы одна
// позиция в диапазоне», диапазон сумм — агрегат по заказу (HAVING до
// limit/offset). Пагинация применяется последней.
func (r *OrderRepository) FilterOrders(
	ctx context.Context,
	principal domain.Principal,
	filter domain.OrderFilter,
) ([]*domain.Order, error) {
	filter.Normalize()

	query := `
		SELECT o.uuid, o.customer_name, o.status, o.user_id, o.is_deleted, o.created_at, o.updated_at
		FROM orders o
		JOIN products p ON p.order_uuid = o.uuid
		WHERE o.status = $1 AND o.is_deleted = FALSE`
	args := []any{filter.Status}

	if !principal.IsAdmin {
		args = append(args, principal.UserID)
		query += fmt.Sprintf(" AND o.user_id = $%d", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += fmt.Sprintf(" AND p.price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND p.price <= $%d", len(args))
	}

	query += " GROUP BY o.uuid"

	// Границы задаются независимо; HAVING собирается из присутствующих.
	var having []string
	if filter.MinTotal != nil {
		args = append(args, *filter.MinTotal)
		having = append(having, fmt.Sprintf("SUM(p.price * p.quantity) >= $%d", len(args)))
	}
	if filter.MaxTotal != nil {
		args = append(args, *filter.MaxTotal)
		having = append(having, fmt.Sprintf("SUM(p.price * p.quantity) <= $%d", len(args)))
	}
	if len(having) > 0 {
		query += " HAVING " + strings.Join(having, " AND ")
	}

	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY o.created_at DESC, o.uuid DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select filtered orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, filter.Limit)
	byUID := make(map[uuid.UUID]*domain.Order, filter.Limit)
	uids := make([]uuid.UUID, 0, filter.Limit)

	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(
			&order.UUID, &order.CustomerName, &order.Status, &order.UserID,
			&order.IsDeleted, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order base: %w", err)
		}
		orders = append(orders, order)
		byUID[order.UUID] = order
		uids = append(uids, order.UUID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil // пустая страница
	}

	// Позиции для всех UID страницы одним запросом, склейка в памяти.
	pRows, err := r.pool.Query(ctx, `
		SELECT order_uuid, uuid, name, price, quantity
		FROM products
		WHERE order_uuid = ANY($1)
		ORDER BY order_uuid, uuid
	`, uids)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer pRows.Close()

	for pRows.Next() {
		var orderUID uuid.UUID
		var product domain.Product
		if err := pRows.Scan(&orderUID, &product.UUID, &product.Name, &product.Price, &product.Quantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if order := byUID[orderUID]; order != nil {
			order.Products = append(order.Products, product)
		}
	}
	if err := pRows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}

	return orders, nil
}

// productsByOrder — позиции одного заказа (0..N).
func (r *OrderRepository) productsByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uuid, name, price, quantity
		FROM products WHERE order_uuid = $1
		ORDER BY uuid
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.UUID, &product.Name, &product.Price, &product.Quantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return products, nil
}

// buildProducts — материализует входные позиции, присваивая новые id.
func buildProducts(in []domain.NewProduct) []domain.Product {
	products := make([]domain.Product, 0, len(in))
	for _, p := range in {
		products = append(products, domain.Product{
			UUID:     uuid.New(),
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}
	return products
}

// copyProducts — вставка позиций через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyProducts(ctx context.Context, tx pgx.Tx, orderUID uuid.UUID, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{p.UUID, orderUID, p.Name, p.Price, p.Quantity})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"products"},
		[]string{"uuid", "order_uuid", "name", "price", "quantity"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy products: %w", err)
	}
	return nil
}

// rollback — откат с игнорированием ErrTxClosed после успешного коммита.
func rollback(ctx context.Context, tx pgx.Tx) {
	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		_ = rbErr
	}
}
