/**
 * @description
 * This file implements the data access layer for account-related operations.
 * It provides a clean interface for the application logic to interact with the
 * `accounts` table in the database.
 *
 * @dependencies
 * - github.com/jackc/pgx/v5/pgxpool: The PostgreSQL driver.
 * - github.com/shopspring/decimal: Fixed-point balance values.
 *
 * @notes
 * - Balances cross the SQL boundary as text (`$n::numeric` in, `balance::text`
 *   out) so they are never coerced through a binary float.
 * - Row updates are guarded by a version column. A concurrent writer bumps the
 *   version, and the losing update reports domain.ErrVersionConflict instead
 *   of silently overwriting.
 */
package store

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oriemcapital/banking-service/internal/domain"
)

const accountColumns = `id, user_id, account_type, balance::text, status, nickname, version, created_at, updated_at`

// PostgresAccountRepository is the PostgreSQL implementation of AccountRepository.
type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

// NewPostgresAccountRepository creates a new instance of PostgresAccountRepository.
func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// CreateAccount inserts a new account record and returns it with its assigned
// identifier and timestamps.
func (r *PostgresAccountRepository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id, account_type, balance, status, nickname)
        VALUES ($1, $2, $3::numeric, $4, $5)
        RETURNING ` + accountColumns

	row := r.db.QueryRow(ctx, query,
		account.UserID,
		account.Type,
		account.Balance.StringFixed(2),
		account.Status,
		account.Nickname,
	)

	created, err := scanAccount(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Error creating account: unique constraint violation on %s", pgErr.ConstraintName)
			return nil, domain.ErrDuplicateAccount
		}
		log.Printf("Error inserting account into database: %v", err)
		return nil, err
	}

	return created, nil
}

// ListAccountsByOwner returns every account for the owner that has not been
// closed. Ordering is unspecified; callers must not depend on it.
func (r *PostgresAccountRepository) ListAccountsByOwner(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND status <> 'closed'`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		log.Printf("Error listing accounts for user %s: %v", userID, err)
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

// FindAccountByID retrieves a single account scoped by its owner. An account
// owned by someone else is indistinguishable from one that does not exist.
func (r *PostgresAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND user_id = $2`

	account, err := scanAccount(r.db.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		log.Printf("Error finding account %s: %v", accountID, err)
		return nil, err
	}
	return account, nil
}

// SaveAccount persists the mutable fields (nickname, status) of an existing
// account inside a transaction. The update is a compare-and-swap on the row's
// version; losing a concurrent race reports domain.ErrVersionConflict.
func (r *PostgresAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
        UPDATE accounts
        SET nickname = $1, status = $2, version = version + 1, updated_at = NOW()
        WHERE id = $3 AND user_id = $4 AND version = $5
        RETURNING ` + accountColumns

	saved, err := scanAccount(tx.QueryRow(ctx, query,
		account.Nickname,
		account.Status,
		account.ID,
		account.UserID,
		account.Version,
	))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Error saving account %s: %v", account.ID, err)
			return nil, err
		}
		// Zero rows means either the account is gone (or not ours) or a
		// concurrent writer bumped the version. Distinguish the two.
		var exists bool
		checkErr := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1 AND user_id = $2)`,
			account.ID, account.UserID,
		).Scan(&exists)
		if checkErr != nil {
			return nil, checkErr
		}
		if exists {
			return nil, domain.ErrVersionConflict
		}
		return nil, domain.ErrAccountNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return saved, nil
}

// scanAccount maps a row in accountColumns order onto a domain.Account.
func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account domain.Account
		balance string
	)
	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Type,
		&balance,
		&account.Status,
		&account.Nickname,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
