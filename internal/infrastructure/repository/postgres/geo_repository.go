package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goalmaven/goal-maven/internal/domain/continent"
	"github.com/goalmaven/goal-maven/internal/domain/nation"
	qb "github.com/goalmaven/goal-maven/internal/platform/querybuilder"
)

type ContinentRepository struct {
	db *sqlx.DB
}

func NewContinentRepository(db *sqlx.DB) *ContinentRepository {
	return &ContinentRepository{db: db}
}

func (r *ContinentRepository) List(ctx context.Context) ([]continent.Continent, error) {
	query, args, err := qb.Select("*").From("continents").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select continents query: %w", err)
	}

	var rows []continentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select continents: %w", err)
	}

	out := make([]continent.Continent, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ContinentRepository) getBy(ctx context.Context, cond qb.Condition) (continent.Continent, bool, error) {
	query, args, err := qb.Select("*").From("continents").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return continent.Continent{}, false, fmt.Errorf("build select continent query: %w", err)
	}

	var row continentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return continent.Continent{}, false, nil
		}
		return continent.Continent{}, false, fmt.Errorf("select continent: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ContinentRepository) GetByID(ctx context.Context, id int64) (continent.Continent, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *ContinentRepository) GetByName(ctx context.Context, name string) (continent.Continent, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *ContinentRepository) Create(ctx context.Context, item continent.Continent) (continent.Continent, error) {
	query, args, err := qb.InsertInto("continents").
		Columns("name").
		Values(item.Name).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return continent.Continent{}, fmt.Errorf("build insert continent query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return continent.Continent{}, fmt.Errorf("insert continent: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *ContinentRepository) Update(ctx context.Context, item continent.Continent) (bool, error) {
	query, args, err := qb.Update("continents").
		Set("name", item.Name).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update continent query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update continent: %w", wrapDuplicate(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update continent rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *ContinentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("continents").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete continent query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete continent: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete continent rows affected: %w", err)
	}
	return affected > 0, nil
}

type NationRepository struct {
	db *sqlx.DB
}

func NewNationRepository(db *sqlx.DB) *NationRepository {
	return &NationRepository{db: db}
}

func (r *NationRepository) List(ctx context.Context) ([]nation.Nation, error) {
	query, args, err := qb.Select("*").From("nations").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select nations query: %w", err)
	}

	var rows []nationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select nations: %w", err)
	}

	out := make([]nation.Nation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *NationRepository) getBy(ctx context.Context, cond qb.Condition) (nation.Nation, bool, error) {
	query, args, err := qb.Select("*").From("nations").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return nation.Nation{}, false, fmt.Errorf("build select nation query: %w", err)
	}

	var row nationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nation.Nation{}, false, nil
		}
		return nation.Nation{}, false, fmt.Errorf("select nation: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *NationRepository) GetByID(ctx context.Context, id int64) (nation.Nation, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *NationRepository) GetByName(ctx context.Context, name string) (nation.Nation, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *NationRepository) Create(ctx context.Context, item nation.Nation) (nation.Nation, error) {
	query, args, err := qb.InsertInto("nations").
		Columns("name", "continent_id").
		Values(item.Name, item.ContinentID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return nation.Nation{}, fmt.Errorf("build insert nation query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return nation.Nation{}, fmt.Errorf("insert nation: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *NationRepository) Update(ctx context.Context, item nation.Nation) (bool, error) {
	query, args, err := qb.Update("nations").
		Set("name", item.Name).
		Set("continent_id", item.ContinentID).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update nation query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update nation: %w", wrapDuplicate(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update nation rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *NationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("nations").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete nation query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete nation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete nation rows affected: %w", err)
	}
	return affected > 0, nil
}

type CityRepository struct {
	db *sqlx.DB
}

func NewCityRepository(db *sqlx.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) List(ctx context.Context) ([]nation.City, error) {
	query, args, err := qb.Select("*").From("cities").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select cities query: %w", err)
	}

	var rows []cityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cities: %w", err)
	}

	out := make([]nation.City, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CityRepository) getBy(ctx context.Context, cond qb.Condition) (nation.City, bool, error) {
	query, args, err := qb.Select("*").From("cities").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return nation.City{}, false, fmt.Errorf("build select city query: %w", err)
	}

	var row cityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nation.City{}, false, nil
		}
		return nation.City{}, false, fmt.Errorf("select city: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *CityRepository) GetByID(ctx context.Context, id int64) (nation.City, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *CityRepository) GetByName(ctx context.Context, name string) (nation.City, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *CityRepository) Create(ctx context.Context, item nation.City) (nation.City, error) {
	query, args, err := qb.InsertInto("cities").
		Columns("name", "nation_id").
		Values(item.Name, item.NationID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return nation.City{}, fmt.Errorf("build insert city query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return nation.City{}, fmt.Errorf("insert city: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *CityRepository) Update(ctx context.Context, item nation.City) (bool, error) {
	query, args, err := qb.Update("cities").
		Set("name", item.Name).
		Set("nation_id", item.NationID).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update city query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update city: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update city rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *CityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("cities").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete city query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete city: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete city rows affected: %w", err)
	}
	return affected > 0, nil
}

type StadiumRepository struct {
	db *sqlx.DB
}

func NewStadiumRepository(db *sqlx.DB) *StadiumRepository {
	return &StadiumRepository{db: db}
}

func (r *StadiumRepository) List(ctx context.Context) ([]nation.Stadium, error) {
	query, args, err := qb.Select("*").From("stadiums").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stadiums query: %w", err)
	}

	var rows []stadiumTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stadiums: %w", err)
	}

	out := make([]nation.Stadium, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StadiumRepository) getBy(ctx context.Context, cond qb.Condition) (nation.Stadium, bool, error) {
	query, args, err := qb.Select("*").From("stadiums").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return nation.Stadium{}, false, fmt.Errorf("build select stadium query: %w", err)
	}

	var row stadiumTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nation.Stadium{}, false, nil
		}
		return nation.Stadium{}, false, fmt.Errorf("select stadium: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *StadiumRepository) GetByID(ctx context.Context, id int64) (nation.Stadium, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *StadiumRepository) GetByName(ctx context.Context, name string) (nation.Stadium, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *StadiumRepository) Create(ctx context.Context, item nation.Stadium) (nation.Stadium, error) {
	query, args, err := qb.InsertInto("stadiums").
		Columns("name", "city_id", "capacity").
		Values(item.Name, item.CityID, item.Capacity).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return nation.Stadium{}, fmt.Errorf("build insert stadium query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return nation.Stadium{}, fmt.Errorf("insert stadium: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *StadiumRepository) Update(ctx context.Context, item nation.Stadium) (bool, error) {
	query, args, err := qb.Update("stadiums").
		Set("name", item.Name).
		Set("city_id", item.CityID).
		Set("capacity", item.Capacity).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update stadium query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update stadium: %w", wrapDuplicate(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update stadium rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *StadiumRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("stadiums").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete stadium query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete stadium: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete stadium rows affected: %w", err)
	}
	return affected > 0, nil
}
