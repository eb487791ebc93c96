package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "github.com/Yarwood-cmd/texas-airport-fullstack/internal/config"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
)

const userColumns = `id, name, email, password_hash, phone_number, customer_type, miles_flown, membership_level, role`

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.PhoneNumber,
		&u.CustomerType,
		&u.MilesFlown,
		&u.MembershipLevel,
		&u.Role,
	)
	return u, err
}

func (r UserRepository) FindByID(id int64) (models.User, error) {
	u, err := scanUser(r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r UserRepository) FindByEmail(email string) (models.User, error) {
	u, err := scanUser(r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE email=? LIMIT 1`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r UserRepository) EmailExists(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email=?`, email).Scan(&n); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return n > 0, nil
}

func (r UserRepository) Create(u models.User) (models.User, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, password_hash, phone_number, customer_type, miles_flown, membership_level, role)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, u.PhoneNumber, u.CustomerType, u.MilesFlown, u.MembershipLevel, u.Role,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("user insert id: %w", err)
	}
	u.ID = id
	return u, nil
}

func (r UserRepository) Update(u models.User) error {
	_, err := r.db().Exec(`
		UPDATE users
		SET name=?, phone_number=?, customer_type=?, miles_flown=?, membership_level=?, role=?
		WHERE id=?`,
		u.Name, u.PhoneNumber, u.CustomerType, u.MilesFlown, u.MembershipLevel, u.Role, u.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
