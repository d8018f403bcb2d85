package player

import "context"

type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type RoleRepository interface {
	List(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id int64) (Role, bool, error)
	GetByName(ctx context.Context, name string) (Role, bool, error)
	Create(ctx context.Context, r Role) (Role, error)
	Update(ctx context.Context, r Role) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
