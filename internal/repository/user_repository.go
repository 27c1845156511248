package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/utils"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepo resolves demo accounts.  Every fixture user shares one demo
// password whose bcrypt hash is computed once at construction.
type UserRepo struct {
	users []model.User
	hash  string
}

// NewUserRepo hashes demoPassword with the given bcrypt cost.
func NewUserRepo(users []model.User, demoPassword string, cost int) (*UserRepo, error) {
	const op = "repository.NewUserRepo"

	hash, err := utils.HashPassword(demoPassword, cost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &UserRepo{users: users, hash: hash}, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, ok := lo.Find(r.users, func(u model.User) bool { return strings.EqualFold(u.Email, email) })
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u.Clone(), nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	u, ok := lo.Find(r.users, func(u model.User) bool { return u.ID == id })
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u.Clone(), nil
}

// Authenticate checks the demo password for the account behind email.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	if !utils.VerifyPassword(r.hash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Exists reports whether email belongs to a fixture account.
func (r *UserRepo) Exists(ctx context.Context, email string) bool {
	_, err := r.GetByEmail(ctx, email)
	return err == nil
}
