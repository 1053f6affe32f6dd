package handlers

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sportstroy-calc-backend/internal/domain"
)

// GetUserByID достаёт пользователя по id из БД.
func (e *Env) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if e.DB == nil {
		return nil, errors.New("db is nil")
	}

	row := e.DB.QueryRowContext(ctx, `
SELECT id, email, name, role, created_at
FROM users
WHERE id = $1
`, id)

	var u domain.User
	var role string
	var createdAt time.Time

	if err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	u.Role = domain.Role(role)
	u.CreatedAt = createdAt

	return &u, nil
}

// ListUsers возвращает всех пользователей (для /api/admin/users).
func (e *Env) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if e.DB == nil {
		return nil, errors.New("db is nil")
	}

	rows, err := e.DB.QueryContext(ctx, `
SELECT id, email, name, role, created_at
FROM users
ORDER BY created_at ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.User

	for rows.Next() {
		var u domain.User
		var role string
		var createdAt time.Time

		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &role, &createdAt); err != nil {
			return nil, err
		}

		u.Role = domain.Role(role)
		u.CreatedAt = createdAt

		res = append(res, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

// SetUserPassword устанавливает новый пароль (bcrypt-хеш).
func (e *Env) SetUserPassword(ctx context.Context, id, password string) error {
	if e.DB == nil {
		return errors.New("db is nil")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res, err := e.DB.ExecContext(ctx, `
UPDATE users
SET password_hash = $2
WHERE id = $1
`, id, string(hash))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("user not found")
	}
	return nil
}

// CheckUserPassword сверяет пароль с bcrypt-хешем из БД.
func (e *Env) CheckUserPassword(ctx context.Context, id, password string) (bool, error) {
	if e.DB == nil {
		return false, errors.New("db is nil")
	}

	var hash string
	err := e.DB.QueryRowContext(ctx, `
SELECT password_hash
FROM users
WHERE id = $1
`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if hash == "" {
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
