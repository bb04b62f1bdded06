package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

const userColumns = `id, email, coalesce(full_name, ''), coalesce(avatar_url, ''), password_hash,
	role, subscription_plan, subscription_status, simulations_used, simulations_limit,
	coalesce(stripe_customer_id, ''), created_at, updated_at`

// UserRepository is the postgres implementation of ports.UserRepository.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert inserts the profile or, when the email is already registered,
// returns the existing row untouched.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		INSERT INTO users (id, email, full_name, avatar_url, password_hash, role,
			subscription_plan, subscription_status, simulations_used, simulations_limit,
			created_at, updated_at)
		VALUES ($1, $2, nullif($3, ''), nullif($4, ''), $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (email) DO NOTHING
		RETURNING ` + userColumns

	existing := &domain.User{}
	err := r.db.QueryRowContext(ctx, query,
		u.ID, u.Email, u.FullName, u.AvatarURL, u.PasswordHash, u.Role,
		u.SubscriptionPlan, u.SubscriptionStatus, u.SimulationsUsed, u.SimulationsLimit,
		u.CreatedAt, u.UpdatedAt,
	).Scan(scanUserFields(existing)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// conflict: the profile already exists, reuse it
			return r.FindByEmail(ctx, u.Email)
		}
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return existing, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id).
		Scan(scanUserFields(u)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email).
		Scan(scanUserFields(u)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// TryReserveSlot calls the atomic check-and-increment stored procedure.
func (r *UserRepository) TryReserveSlot(ctx context.Context, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT increment_usage_if_under_limit($1)`, userID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("reserve slot: %w", err)
	}
	return ok, nil
}

func (r *UserRepository) ReleaseSlot(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `SELECT release_usage_slot($1)`, userID); err != nil {
		return fmt.Errorf("release slot: %w", err)
	}
	return nil
}

func scanUserFields(u *domain.User) []any {
	return []any{
		&u.ID, &u.Email, &u.FullName, &u.AvatarURL, &u.PasswordHash,
		&u.Role, &u.SubscriptionPlan, &u.SubscriptionStatus,
		&u.SimulationsUsed, &u.SimulationsLimit,
		&u.StripeCustomerID, &u.CreatedAt, &u.UpdatedAt,
	}
}
