package repository

import (
	"context"
	"fmt"

	"github.com/shopswift/shopswift-api/internal/domain"
	"github.com/shopswift/shopswift-api/internal/repository/store"
)

var ErrUserNotFound = store.ErrUserNotFound

type UserStore interface {
	FindUserByID(id string) (domain.User, error)
	FindUserByEmail(email string) (domain.User, error)
}

type UserRepository struct {
	store UserStore
}

func NewUserRepository(store UserStore) *UserRepository {
	return &UserRepository{
		store: store,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	user, err := r.store.FindUserByID(id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.store.FindUserByID -> %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := r.store.FindUserByEmail(email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.store.FindUserByEmail -> %w", err)
	}

	return user, nil
}
