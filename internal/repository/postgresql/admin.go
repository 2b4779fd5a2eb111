package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) user.AdminRepository {
	return &adminRepository{db: db}
}

// Create implements user.AdminRepository.
func (r *adminRepository) Create(ctx context.Context, admin user.Admin) (user.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admins (uid, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		admin.UID, admin.Name, admin.Email, admin.PasswordHash,
	).Scan(&admin.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.Admin{}, user.ErrAdminEmailExists
		}
		return user.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// GetByUID implements user.AdminRepository.
func (r *adminRepository) GetByUID(ctx context.Context, uid string) (user.Admin, error) {
	return r.getOne(ctx, "uid = $1", uid)
}

// GetByEmail implements user.AdminRepository.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (user.Admin, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *adminRepository) getOne(ctx context.Context, where string, arg any) (user.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT uid, name, email, password_hash, created_at
		FROM admins
		WHERE ` + where

	var a user.Admin
	err := q.QueryRow(ctx, query, arg).Scan(
		&a.UID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Admin{}, user.ErrAdminNotFound
		}
		return user.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return a, nil
}

// List implements user.AdminRepository.
func (r *adminRepository) List(ctx context.Context) ([]user.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT uid, name, email, password_hash, created_at
		FROM admins
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []user.Admin
	for rows.Next() {
		var a user.Admin
		if err := rows.Scan(&a.UID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, a)
	}

	return admins, rows.Err()
}
