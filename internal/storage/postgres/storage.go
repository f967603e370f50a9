package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/pressdesk/internal/domain/errors"
	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
)

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

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Storage acts as repository facade backed by PostgreSQL.
// The seq column keeps insertion order so lists come back newest first.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type customerRepository struct {
	storage *Storage
}

type employeeRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type paymentRepository struct {
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

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Employees() repository.EmployeeRepository {
	return &employeeRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            seq BIGSERIAL,
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            account_number TEXT NOT NULL,
            company_name TEXT NOT NULL,
            contact_number TEXT NOT NULL,
            email TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS employees (
            seq BIGSERIAL,
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            role TEXT NOT NULL,
            responsibility TEXT NOT NULL,
            assigned_orders INTEGER NOT NULL DEFAULT 0,
            completed_tasks INTEGER NOT NULL DEFAULT 0,
            performance_rating DOUBLE PRECISION NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            seq BIGSERIAL,
            id TEXT PRIMARY KEY,
            customer_id TEXT NOT NULL,
            customer_name TEXT NOT NULL,
            order_type TEXT NOT NULL,
            description TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            total_price DOUBLE PRECISION NOT NULL,
            order_date TIMESTAMPTZ NOT NULL,
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            assigned_employee_id TEXT NOT NULL,
            assigned_employee_name TEXT NOT NULL,
            estimated_delivery TIMESTAMPTZ NOT NULL,
            actual_delivery TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            seq BIGSERIAL,
            id TEXT PRIMARY KEY,
            customer_id TEXT NOT NULL,
            order_id TEXT NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            paid_amount DOUBLE PRECISION NOT NULL,
            outstanding_amount DOUBLE PRECISION NOT NULL,
            payment_date TIMESTAMPTZ,
            status TEXT NOT NULL,
            payment_method TEXT,
            due_date TIMESTAMPTZ,
            is_overdue BOOLEAN NOT NULL DEFAULT FALSE,
            history JSONB NOT NULL DEFAULT '[]'
        )`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Seed inserts snapshot rows that are not stored yet. Collections are
// inserted oldest first so that newest-first listing matches the snapshot.
func (s *Storage) Seed(ctx context.Context, snapshot model.Snapshot) error {
	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for i := len(snapshot.Customers) - 1; i >= 0; i-- {
			if err := insertCustomer(ctx, tx, snapshot.Customers[i]); err != nil {
				return err
			}
		}
		for _, e := range snapshot.Employees {
			if err := insertEmployee(ctx, tx, e); err != nil {
				return err
			}
		}
		for i := len(snapshot.Orders) - 1; i >= 0; i-- {
			if err := insertOrder(ctx, tx, snapshot.Orders[i]); err != nil {
				return err
			}
		}
		for i := len(snapshot.Payments) - 1; i >= 0; i-- {
			if err := insertPayment(ctx, tx, snapshot.Payments[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("storage seeded",
			slog.Int("customers", len(snapshot.Customers)),
			slog.Int("employees", len(snapshot.Employees)),
			slog.Int("orders", len(snapshot.Orders)),
			slog.Int("payments", len(snapshot.Payments)),
		)
	}
	return nil
}

// --- CustomerRepository implementation ---

const customerColumns = `id, name, account_number, company_name, contact_number, email, created_at`

func scanCustomer(row rowScanner) (model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.Name, &c.AccountNumber, &c.CompanyName, &c.ContactNumber, &c.Email, &c.CreatedAt)
	return c, err
}

func insertCustomer(ctx context.Context, q querier, c model.Customer) error {
	const query = `INSERT INTO customers (` + customerColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   ON CONFLICT (id) DO NOTHING`
	_, err := q.Exec(ctx, query, c.ID, c.Name, c.AccountNumber, c.CompanyName, c.ContactNumber, c.Email, c.CreatedAt)
	return err
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers ORDER BY seq DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	c, err := scanCustomer(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, customer model.Customer) error {
	return insertCustomer(ctx, r.storage.pool, customer)
}

func (r *customerRepository) Update(ctx context.Context, id string, mutate func(*model.Customer)) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT ` + customerColumns + ` FROM customers WHERE id=$1 FOR UPDATE`
		c, err := scanCustomer(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}

		mutate(&c)

		const updateQuery = `UPDATE customers
                             SET name=$1, account_number=$2, company_name=$3, contact_number=$4, email=$5
                             WHERE id=$6`
		_, err = tx.Exec(ctx, updateQuery, c.Name, c.AccountNumber, c.CompanyName, c.ContactNumber, c.Email, id)
		return err
	})
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	return err
}

// --- EmployeeRepository implementation ---

const employeeColumns = `id, name, role, responsibility, assigned_orders, completed_tasks, performance_rating`

func scanEmployee(row rowScanner) (model.Employee, error) {
	var e model.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Role, &e.Responsibility, &e.AssignedOrders, &e.CompletedTasks, &e.PerformanceRating)
	return e, err
}

func insertEmployee(ctx context.Context, q querier, e model.Employee) error {
	const query = `INSERT INTO employees (` + employeeColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   ON CONFLICT (id) DO NOTHING`
	_, err := q.Exec(ctx, query, e.ID, e.Name, e.Role, e.Responsibility, e.AssignedOrders, e.CompletedTasks, e.PerformanceRating)
	return err
}

func (r *employeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees ORDER BY seq`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *employeeRepository) Get(ctx context.Context, id string) (*model.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id=$1`
	e, err := scanEmployee(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, customer_id, customer_name, order_type, description, quantity, unit_price, total_price,
                      order_date, status, payment_status, assigned_employee_id, assigned_employee_name,
                      estimated_delivery, actual_delivery`

func scanOrder(row rowScanner) (model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.OrderType, &o.Description, &o.Quantity,
		&o.UnitPrice, &o.TotalPrice, &o.OrderDate, &o.Status, &o.PaymentStatus, &o.AssignedEmployeeID,
		&o.AssignedEmployeeName, &o.EstimatedDelivery, &o.ActualDelivery)
	return o, err
}

func insertOrder(ctx context.Context, q querier, o model.Order) error {
	const query = `INSERT INTO orders (` + orderColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
                   ON CONFLICT (id) DO NOTHING`
	_, err := q.Exec(ctx, query, o.ID, o.CustomerID, o.CustomerName, o.OrderType, o.Description, o.Quantity,
		o.UnitPrice, o.TotalPrice, o.OrderDate, o.Status, o.PaymentStatus, o.AssignedEmployeeID,
		o.AssignedEmployeeName, o.EstimatedDelivery, o.ActualDelivery)
	return err
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY seq DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) CreateWithPayment(ctx context.Context, order model.Order, payment model.Payment) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := insertOrder(ctx, tx, order); err != nil {
			return err
		}
		return insertPayment(ctx, tx, payment)
	})
}

func (r *orderRepository) Update(ctx context.Context, id string, mutate repository.OrderMutation) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectOrder = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		order, err := scanOrder(tx.QueryRow(ctx, selectOrder, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}

		const selectPayments = `SELECT ` + paymentColumns + ` FROM payments WHERE order_id=$1 ORDER BY seq DESC FOR UPDATE`
		payments, err := queryPayments(ctx, tx, selectPayments, id)
		if err != nil {
			return err
		}

		changed := mutate(&order, payments)

		const updateOrder = `UPDATE orders
                             SET customer_id=$1, customer_name=$2, order_type=$3, description=$4, quantity=$5,
                                 unit_price=$6, total_price=$7, status=$8, payment_status=$9,
                                 assigned_employee_id=$10, assigned_employee_name=$11,
                                 estimated_delivery=$12, actual_delivery=$13
                             WHERE id=$14`
		if _, err := tx.Exec(ctx, updateOrder, order.CustomerID, order.CustomerName, order.OrderType,
			order.Description, order.Quantity, order.UnitPrice, order.TotalPrice, order.Status,
			order.PaymentStatus, order.AssignedEmployeeID, order.AssignedEmployeeName,
			order.EstimatedDelivery, order.ActualDelivery, id); err != nil {
			return err
		}

		if !changed {
			return nil
		}
		for _, p := range payments {
			if err := updatePayment(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- PaymentRepository implementation ---

const paymentColumns = `id, customer_id, order_id, amount, paid_amount, outstanding_amount, payment_date,
                        status, payment_method, due_date, is_overdue, history`

type transactionRecord struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Method string    `json:"method"`
}

func encodeHistory(history []model.PaymentTransaction) ([]byte, error) {
	records := make([]transactionRecord, 0, len(history))
	for _, h := range history {
		records = append(records, transactionRecord{ID: h.ID, Amount: h.Amount, Date: h.Date, Method: string(h.Method)})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return data, nil
}

func decodeHistory(data []byte) ([]model.PaymentTransaction, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	history := make([]model.PaymentTransaction, 0, len(records))
	for _, r := range records {
		history = append(history, model.PaymentTransaction{ID: r.ID, Amount: r.Amount, Date: r.Date, Method: model.PaymentMethod(r.Method)})
	}
	return history, nil
}

func scanPayment(row rowScanner) (model.Payment, error) {
	var (
		p       model.Payment
		method  *string
		history []byte
	)
	err := row.Scan(&p.ID, &p.CustomerID, &p.OrderID, &p.Amount, &p.PaidAmount, &p.OutstandingAmount,
		&p.PaymentDate, &p.Status, &method, &p.DueDate, &p.IsOverdue, &history)
	if err != nil {
		return p, err
	}
	if method != nil {
		m := model.PaymentMethod(*method)
		p.PaymentMethod = &m
	}
	p.History, err = decodeHistory(history)
	return p, err
}

func methodValue(m *model.PaymentMethod) *string {
	if m == nil {
		return nil
	}
	v := string(*m)
	return &v
}

func insertPayment(ctx context.Context, q querier, p model.Payment) error {
	history, err := encodeHistory(p.History)
	if err != nil {
		return err
	}
	const query = `INSERT INTO payments (` + paymentColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                   ON CONFLICT (id) DO NOTHING`
	_, err = q.Exec(ctx, query, p.ID, p.CustomerID, p.OrderID, p.Amount, p.PaidAmount, p.OutstandingAmount,
		p.PaymentDate, p.Status, methodValue(p.PaymentMethod), p.DueDate, p.IsOverdue, history)
	return err
}

func updatePayment(ctx context.Context, q querier, p model.Payment) error {
	history, err := encodeHistory(p.History)
	if err != nil {
		return err
	}
	const query = `UPDATE payments
                   SET paid_amount=$1, outstanding_amount=$2, payment_date=$3, status=$4,
                       payment_method=$5, due_date=$6, is_overdue=$7, history=$8
                   WHERE id=$9`
	_, err = q.Exec(ctx, query, p.PaidAmount, p.OutstandingAmount, p.PaymentDate, p.Status,
		methodValue(p.PaymentMethod), p.DueDate, p.IsOverdue, history, p.ID)
	return err
}

func queryPayments(ctx context.Context, q querier, query string, args ...any) ([]model.Payment, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments ORDER BY seq DESC`
	return queryPayments(ctx, r.storage.pool, query)
}

func (r *paymentRepository) Update(ctx context.Context, id string, mutate repository.PaymentMutation) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1 FOR UPDATE`
		p, err := scanPayment(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}

		if err := mutate(&p); err != nil {
			return err
		}
		p.ID = id
		return updatePayment(ctx, tx, p)
	})
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
