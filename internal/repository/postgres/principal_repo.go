package postgres

import (
	"context"
	"errors"
	"time"

	"go-interview-report-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type principalRepo struct {
	db *pgxpool.Pool
}

func NewPrincipalRepository(db *pgxpool.Pool) domain.PrincipalRepository {
	return &principalRepo{db: db}
}

const principalColumns = `uid, role, fullname, email, COALESCE(phone, ''), experience,
	COALESCE(profile_photo_url, ''), account_status, created_at, updated_at`

func (r *principalRepo) GetByUID(ctx context.Context, uid string) (*domain.Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM users WHERE uid = $1`

	p, err := scanPrincipal(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *principalRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Principal, error) {
	query := `SELECT ` + principalColumns + `
		FROM users
		WHERE role = $1
		ORDER BY created_at DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	principals := []domain.Principal{}
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, err
		}
		principals = append(principals, p)
	}
	return principals, rows.Err()
}

func (r *principalRepo) UpdateAccountStatus(ctx context.Context, uid string, status domain.AccountStatus) (time.Time, error) {
	query := `UPDATE users SET account_status = $2, updated_at = clock_timestamp()
		WHERE uid = $1
		RETURNING updated_at`

	var updatedAt time.Time
	if err := r.db.QueryRow(ctx, query, uid, string(status)).Scan(&updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, err
	}
	return updatedAt.UTC(), nil
}

func scanPrincipal(row pgx.Row) (domain.Principal, error) {
	var (
		p                    domain.Principal
		role, accountStatus  string
		createdAt, updatedAt *time.Time
	)
	err := row.Scan(
		&p.UID, &role, &p.FullName, &p.Email, &p.Phone, &p.Experience,
		&p.ProfilePhotoURL, &accountStatus, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Principal{}, err
	}

	p.Role = domain.ParseRole(role)
	p.AccountStatus = domain.ParseAccountStatus(accountStatus)
	if createdAt != nil {
		p.CreatedAt = createdAt.UTC()
	}
	if updatedAt != nil {
		p.UpdatedAt = updatedAt.UTC()
	}
	return p, nil
}
