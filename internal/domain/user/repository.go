package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) (bool, error)
}

type TokenRepository interface {
	Create(ctx context.Context, t Token) (Token, error)
	GetByHash(ctx context.Context, tokenHash string) (Token, bool, error)
	DeleteByUser(ctx context.Context, userID int64) error
}
