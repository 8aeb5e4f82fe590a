package repository

import (
	"database/sql"
	"food-storefront/logger"
	"food-storefront/model"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts the user. A second registration with the same email
// returns ErrDuplicate.
func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (first_name, last_name, email, password, phone_no, role)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.DB.QueryRow(query, user.FirstName, user.LastName, user.Email, user.Password, user.PhoneNo, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		logger.Log.WithError(err).WithField("email", user.Email).Error("Failed to execute create user query")
		return err
	}
	return nil
}

const selectUser = `SELECT id, first_name, last_name, email, password, phone_no, role, created_at FROM users`

func scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password, &user.PhoneNo, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	return scanUser(r.DB.QueryRow(selectUser+` WHERE LOWER(email) = LOWER($1)`, email))
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	return scanUser(r.DB.QueryRow(selectUser+` WHERE id = $1`, id))
}
