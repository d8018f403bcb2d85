package memory

import (
	"context"

	"github.com/goalmaven/goal-maven/internal/domain/player"
)

type PlayerRepository struct {
	c *catalog[player.Player]
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{c: newCatalog(
		func(item *player.Player) *int64 { return &item.ID },
		func(item player.Player) string { return item.Name },
	)}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.c.list(), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	return r.c.create(item), nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (bool, error) {
	return r.c.update(item), nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

type PlayerRoleRepository struct {
	c *catalog[player.Role]
}

func NewPlayerRoleRepository() *PlayerRoleRepository {
	return &PlayerRoleRepository{c: newCatalog(
		func(item *player.Role) *int64 { return &item.ID },
		func(item player.Role) string { return item.Name },
	)}
}

func (r *PlayerRoleRepository) List(ctx context.Context) ([]player.Role, error) {
	return r.c.list(), nil
}

func (r *PlayerRoleRepository) GetByID(ctx context.Context, id int64) (player.Role, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *PlayerRoleRepository) GetByName(ctx context.Context, name string) (player.Role, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *PlayerRoleRepository) Create(ctx context.Context, item player.Role) (player.Role, error) {
	return r.c.create(item), nil
}

func (r *PlayerRoleRepository) Update(ctx context.Context, item player.Role) (bool, error) {
	return r.c.update(item), nil
}

func (r *PlayerRoleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}
