package postgres

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"clmi/internal/domain/user"
)

// UserDirectory is the durable credential store. It satisfies
// user.Directory so the auth service never knows whether it is talking
// to this or to the in-memory variants.
type UserDirectory struct {
	db *DB

	stmtInsert     *sql.Stmt
	stmtGetByEmail *sql.Stmt
}

func NewUserDirectory(db *DB) (*UserDirectory, error) {
	d := &UserDirectory{db: db}

	var err error
	d.stmtInsert, err = db.sqlDB().PrepareContext(
		context.Background(),
		`INSERT INTO users (id, name, email, role, password_hash) VALUES ($1, $2, $3, $4, $5)`,
	)
	if err != nil {
		_ = d.Close()
		return nil, err
	}

	d.stmtGetByEmail, err = db.sqlDB().PrepareContext(
		context.Background(),
		`SELECT id, name, email, role, password_hash, created_at, updated_at FROM users WHERE email = $1`,
	)
	if err != nil {
		_ = d.Close()
		return nil, err
	}

	return d, nil
}

func (d *UserDirectory) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(d.stmtInsert)
	closeStmt(d.stmtGetByEmail)

	return firstErr
}

func (d *UserDirectory) Register(ctx context.Context, u user.User, password string) error {
	if _, _, err := d.getByEmail(ctx, u.Email); err == nil {
		return user.ErrDuplicate
	} else if !errors.Is(err, user.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = d.stmtInsert.ExecContext(ctx, u.ID, u.Name, u.Email, u.Role, string(hash))
	return err
}

func (d *UserDirectory) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	u, hash, err := d.getByEmail(ctx, email)
	if err != nil {
		return user.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (d *UserDirectory) getByEmail(ctx context.Context, email string) (user.User, string, error) {
	var (
		u    user.User
		hash string
	)
	row := d.stmtGetByEmail.QueryRowContext(ctx, email)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &hash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, "", user.ErrNotFound
		}
		return user.User{}, "", err
	}
	return u, hash, nil
}
