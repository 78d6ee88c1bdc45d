package repository

import (
	"context"
	"database/sql"
	"errors"

	"campground-server/config"
	"campground-server/internal/model"
	"campground-server/internal/util"

	"github.com/lib/pq"
)

// ErrEmailTaken возвращается при нарушении уникальности email
var ErrEmailTaken = errors.New("email уже занят")

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя.
// Уникальность email обеспечивает constraint в БД, а не проверка в коде
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, email, password_hash, first_name, last_name)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING uuid, email, password_hash, first_name, last_name, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.UUID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
	).StructScan(createdUser)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByEmail : ищет пользователя по email.
// Отсутствие записи не считается ошибкой, возвращается nil
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT uuid, email, password_hash, first_name, last_name, created_at FROM users WHERE email = $1`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("[UserRepo] ошибка поиска пользователя по email", err)
	}

	return &user, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, email, password_hash, first_name, last_name, created_at FROM users WHERE uuid = $1`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("[UserRepo] ошибка поиска пользователя по uuid", err)
	}

	return &user, nil
}
