package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goalmaven/goal-maven/internal/domain/player"
	qb "github.com/goalmaven/goal-maven/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) getBy(ctx context.Context, cond qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertInto("players").
		Columns("name", "jersey_number", "date_of_birth", "career_start", "nation_id",
			"height", "weight", "role_id", "total_appearances", "team_id").
		Values(item.Name, item.JerseyNumber, item.DateOfBirth, item.CareerStart, item.NationID,
			item.Height, item.Weight, item.RoleID, item.TotalAppearances, nullInt64(item.TeamID)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (bool, error) {
	query, args, err := qb.Update("players").
		Set("name", item.Name).
		Set("jersey_number", item.JerseyNumber).
		Set("date_of_birth", item.DateOfBirth).
		Set("career_start", item.CareerStart).
		Set("nation_id", item.NationID).
		Set("height", item.Height).
		Set("weight", item.Weight).
		Set("role_id", item.RoleID).
		Set("total_appearances", item.TotalAppearances).
		Set("team_id", nullInt64(item.TeamID)).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player query: %w", err)
	}
	return execAffected(ctx, r.db, "update player", query, args)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}
	return execAffected(ctx, r.db, "delete player", query, args)
}

type PlayerRoleRepository struct {
	db *sqlx.DB
}

func NewPlayerRoleRepository(db *sqlx.DB) *PlayerRoleRepository {
	return &PlayerRoleRepository{db: db}
}

func (r *PlayerRoleRepository) List(ctx context.Context) ([]player.Role, error) {
	query, args, err := qb.Select("*").From("player_roles").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player roles query: %w", err)
	}

	var rows []playerRoleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player roles: %w", err)
	}

	out := make([]player.Role, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRoleRepository) getBy(ctx context.Context, cond qb.Condition) (player.Role, bool, error) {
	query, args, err := qb.Select("*").From("player_roles").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return player.Role{}, false, fmt.Errorf("build select player role query: %w", err)
	}

	var row playerRoleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Role{}, false, nil
		}
		return player.Role{}, false, fmt.Errorf("select player role: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRoleRepository) GetByID(ctx context.Context, id int64) (player.Role, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *PlayerRoleRepository) GetByName(ctx context.Context, name string) (player.Role, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *PlayerRoleRepository) Create(ctx context.Context, item player.Role) (player.Role, error) {
	query, args, err := qb.InsertInto("player_roles").
		Columns("name", "short_name").
		Values(item.Name, item.ShortName).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return player.Role{}, fmt.Errorf("build insert player role query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return player.Role{}, fmt.Errorf("insert player role: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *PlayerRoleRepository) Update(ctx context.Context, item player.Role) (bool, error) {
	query, args, err := qb.Update("player_roles").
		Set("name", item.Name).
		Set("short_name", item.ShortName).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player role query: %w", err)
	}
	return execAffected(ctx, r.db, "update player role", query, args)
}

func (r *PlayerRoleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("player_roles").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player role query: %w", err)
	}
	return execAffected(ctx, r.db, "delete player role", query, args)
}
