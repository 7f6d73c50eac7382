package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/programmer-tapa/order-service/internal/domain/apperr"
	"github.com/programmer-tapa/order-service/internal/domain/model"
	"github.com/programmer-tapa/order-service/internal/domain/repository"
)

// pgxPool is the pool surface the storage depends on, satisfied by
// *pgxpool.Pool and by pgxmock in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            customer_id TEXT NOT NULL,
            status TEXT NOT NULL,
            total_amount NUMERIC(20,4) NOT NULL,
            currency TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id TEXT PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            position INT NOT NULL,
            product_id TEXT NOT NULL,
            product_name TEXT NOT NULL DEFAULT '',
            quantity INT NOT NULL,
            unit_price NUMERIC(20,4) NOT NULL,
            line_total NUMERIC(20,4) NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id, position)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// --- OrderRepository implementation ---

// Save persists the order and its items in one transaction, assigning
// identifiers. Items are stored with their list position so reads restore
// insertion order.
func (r *orderRepository) Save(ctx context.Context, order *model.Order) (*model.Order, error) {
	if len(order.Items) == 0 {
		return nil, apperr.Validation("Order must contain at least one item")
	}

	order.ID = uuid.NewString()
	for i := range order.Items {
		order.Items[i].ID = uuid.NewString()
		order.Items[i].OrderID = order.ID
	}

	const insertOrder = `INSERT INTO orders (id, customer_id, status, total_amount, currency, created_at, updated_at)
                         VALUES ($1, $2, $3, $4, $5, $6, $7)`
	const insertItem = `INSERT INTO order_items (id, order_id, position, product_id, product_name, quantity, unit_price, line_total)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertOrder,
			order.ID, order.CustomerID, string(order.Status), order.TotalAmount,
			order.Currency, order.CreatedAt, order.UpdatedAt,
		); err != nil {
			return err
		}
		for i, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem,
				item.ID, item.OrderID, i, item.ProductID, item.ProductName,
				item.Quantity, item.UnitPrice, item.LineTotal,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperr.Conflict("Order already exists")
		}
		return nil, err
	}

	return order, nil
}

// GetByID loads an order with its items ordered by position.
func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const orderQuery = `SELECT id, customer_id, status, total_amount, currency, created_at, updated_at
                        FROM orders WHERE id=$1`
	var order model.Order
	var status string
	err := r.storage.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID, &order.CustomerID, &status, &order.TotalAmount,
		&order.Currency, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, err
	}
	order.Status = model.OrderStatus(status)

	const itemsQuery = `SELECT id, order_id, product_id, product_name, quantity, unit_price, line_total
                        FROM order_items WHERE order_id=$1 ORDER BY position`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &order, nil
}
