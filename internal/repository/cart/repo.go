package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/ekorolev/cart-recovery/internal/model"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrNoOpenCart   = errors.New("no open cart found")
	ErrNoCartsFound = errors.New("no carts found")
)

// Repository provides methods to interact with the abandoned_carts table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new cart repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateCart inserts a new tracking record and returns its ID.
func (r *Repository) CreateCart(ctx context.Context, cart model.CartRecord) (int64, error) {
	data, err := json.Marshal(cart.Snapshot)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal cart data: %w", err)
	}

	query := `
		INSERT INTO abandoned_carts (
		    user_id, email, customer_name, cart_data, cart_total, created_at, email_sent, recovered
		) VALUES ($1, $2, $3, $4, $5, $6, FALSE, FALSE)
		RETURNING id;
    `

	var id int64
	err = r.db.Master.QueryRowContext(
		ctx, query, nullInt64(cart.UserID), nullString(cart.Email), cart.CustomerName, data, cart.CartTotal, cart.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create cart: %w", err)
	}

	return id, nil
}

// RefreshCart overwrites an open record with a newer capture for the same
// identity, resetting created_at and the sent flag.
func (r *Repository) RefreshCart(ctx context.Context, id int64, cart model.CartRecord) error {
	data, err := json.Marshal(cart.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal cart data: %w", err)
	}

	query := `
		UPDATE abandoned_carts
		SET user_id = $1, email = $2, customer_name = $3, cart_data = $4, cart_total = $5,
		    created_at = $6, email_sent = FALSE, recovered = FALSE
		WHERE id = $7;
    `

	res, err := r.db.ExecContext(
		ctx, query, nullInt64(cart.UserID), nullString(cart.Email), cart.CustomerName, data, cart.CartTotal, cart.CreatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to refresh cart: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrCartNotFound
	}

	return nil
}

// GetOpenCartIDByEmail returns the most recent open record for an email.
func (r *Repository) GetOpenCartIDByEmail(ctx context.Context, email string) (int64, error) {
	query := `
		SELECT id
		FROM abandoned_carts
		WHERE email = $1 AND email_sent = FALSE AND recovered = FALSE
		ORDER BY id DESC
		LIMIT 1;
    `

	return r.scanOpenID(ctx, query, email)
}

// GetOpenCartIDByUserID returns the most recent open record for a user id,
// used for logged-in customers captured without an email.
func (r *Repository) GetOpenCartIDByUserID(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT id
		FROM abandoned_carts
		WHERE user_id = $1 AND email_sent = FALSE AND recovered = FALSE
		ORDER BY id DESC
		LIMIT 1;
    `

	return r.scanOpenID(ctx, query, userID)
}

func (r *Repository) scanOpenID(ctx context.Context, query string, arg interface{}) (int64, error) {
	var id int64
	err := r.db.Master.QueryRowContext(ctx, query, arg).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoOpenCart
		}

		return 0, fmt.Errorf("failed to find open cart: %w", err)
	}

	return id, nil
}

// GetCartByID retrieves a tracking record by its ID.
func (r *Repository) GetCartByID(ctx context.Context, id int64) (model.CartRecord, error) {
	query := `
		SELECT id, user_id, email, customer_name, cart_data, cart_total, created_at, email_sent, recovered
		FROM abandoned_carts
		WHERE id = $1;
    `

	cart, err := scanCart(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CartRecord{}, ErrCartNotFound
		}

		return model.CartRecord{}, fmt.Errorf("failed to get cart: %w", err)
	}

	return cart, nil
}

// SelectAbandoned retrieves open records with a non-empty email captured at or
// before the cutoff, oldest first.
func (r *Repository) SelectAbandoned(ctx context.Context, cutoff time.Time) ([]model.CartRecord, error) {
	query := `
		SELECT id, user_id, email, customer_name, cart_data, cart_total, created_at, email_sent, recovered
		FROM abandoned_carts
		WHERE created_at <= $1 AND email_sent = FALSE AND recovered = FALSE AND email IS NOT NULL AND email != ''
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to select abandoned carts: %w", err)
	}
	defer rows.Close()

	var carts []model.CartRecord
	for rows.Next() {
		cart, err := scanCart(rows)
		if err != nil {
			return nil, err
		}

		carts = append(carts, cart)
	}

	return carts, rows.Err()
}

// GetAllCarts retrieves all tracking records ordered by capture time descending.
func (r *Repository) GetAllCarts(ctx context.Context) ([]model.CartRecord, error) {
	query := `
		SELECT id, user_id, email, customer_name, cart_data, cart_total, created_at, email_sent, recovered
		FROM abandoned_carts
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all carts: %w", err)
	}
	defer rows.Close()

	var carts []model.CartRecord
	for rows.Next() {
		cart, err := scanCart(rows)
		if err != nil {
			return nil, err
		}

		carts = append(carts, cart)
	}

	if len(carts) == 0 {
		return nil, ErrNoCartsFound
	}

	return carts, nil
}

// MarkEmailSent flags a record as emailed so the next sweep skips it.
func (r *Repository) MarkEmailSent(ctx context.Context, id int64) error {
	query := `
		UPDATE abandoned_carts
		SET email_sent = TRUE
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark cart emailed: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrCartNotFound
	}

	return nil
}

// DeleteCart removes a tracking record by its ID.
func (r *Repository) DeleteCart(ctx context.Context, id int64) error {
	query := `
		DELETE FROM abandoned_carts
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrCartNotFound
	}

	return nil
}

// DeleteCartsByEmail removes every tracking record for an email and returns
// the number of rows removed. Zero rows is not an error: most orders belong
// to customers who were never tracked.
func (r *Repository) DeleteCartsByEmail(ctx context.Context, email string) (int64, error) {
	query := `
		DELETE FROM abandoned_carts
		WHERE email = $1;
    `

	res, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return 0, fmt.Errorf("failed to delete carts by email: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCart(row rowScanner) (model.CartRecord, error) {
	var (
		cart   model.CartRecord
		userID sql.NullInt64
		email  sql.NullString
		data   []byte
	)

	err := row.Scan(
		&cart.ID, &userID, &email, &cart.CustomerName, &data,
		&cart.CartTotal, &cart.CreatedAt, &cart.EmailSent, &cart.Recovered,
	)
	if err != nil {
		return model.CartRecord{}, err
	}

	cart.UserID = userID.Int64
	cart.Email = email.String

	if len(data) > 0 {
		if err := json.Unmarshal(data, &cart.Snapshot); err != nil {
			return model.CartRecord{}, fmt.Errorf("failed to unmarshal cart data: %w", err)
		}
	}

	return cart, nil
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
