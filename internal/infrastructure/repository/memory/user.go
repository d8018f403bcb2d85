package memory

import (
	"context"
	"fmt"

	"github.com/goalmaven/goal-maven/internal/domain/storage"
	"github.com/goalmaven/goal-maven/internal/domain/user"
)

type UserRepository struct {
	c *catalog[user.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{c: newCatalog(
		func(item *user.User) *int64 { return &item.ID },
		func(item user.User) string { return item.Email },
	)}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	item, ok := r.c.getByKey(email)
	return item, ok, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) (user.User, error) {
	if _, exists := r.c.getByKey(item.Email); exists {
		return user.User{}, fmt.Errorf("user email: %w", storage.ErrDuplicateKey)
	}
	return r.c.create(item), nil
}

func (r *UserRepository) Update(ctx context.Context, item user.User) (bool, error) {
	return r.c.update(item), nil
}

type TokenRepository struct {
	c *catalog[user.Token]
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{c: newCatalog(
		func(item *user.Token) *int64 { return &item.ID },
		func(item user.Token) string { return item.TokenHash },
	)}
}

func (r *TokenRepository) Create(ctx context.Context, item user.Token) (user.Token, error) {
	return r.c.create(item), nil
}

func (r *TokenRepository) GetByHash(ctx context.Context, tokenHash string) (user.Token, bool, error) {
	item, ok := r.c.getByKey(tokenHash)
	return item, ok, nil
}

func (r *TokenRepository) DeleteByUser(ctx context.Context, userID int64) error {
	for _, t := range r.c.filter(func(t user.Token) bool { return t.UserID == userID }) {
		r.c.delete(t.ID)
	}
	return nil
}
