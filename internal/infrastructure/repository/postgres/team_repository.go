package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goalmaven/goal-maven/internal/domain/team"
	qb "github.com/goalmaven/goal-maven/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) getBy(ctx context.Context, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *TeamRepository) GetByManager(ctx context.Context, managerID int64) (team.Team, bool, error) {
	return r.getBy(ctx, qb.Eq("manager_id", managerID))
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertInto("teams").
		Columns("name", "est_date", "league_id", "stadium_id", "manager_id").
		Values(item.Name, item.EstDate, nullInt64(item.LeagueID), item.StadiumID, nullInt64(item.ManagerID)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (bool, error) {
	query, args, err := qb.Update("teams").
		Set("name", item.Name).
		Set("est_date", item.EstDate).
		Set("league_id", nullInt64(item.LeagueID)).
		Set("stadium_id", item.StadiumID).
		Set("manager_id", nullInt64(item.ManagerID)).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update team query: %w", err)
	}
	return execAffected(ctx, r.db, "update team", query, args)
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("teams").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete team query: %w", err)
	}
	return execAffected(ctx, r.db, "delete team", query, args)
}

type ManagerRepository struct {
	db *sqlx.DB
}

func NewManagerRepository(db *sqlx.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) List(ctx context.Context) ([]team.Manager, error) {
	query, args, err := qb.Select("*").From("managers").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select managers query: %w", err)
	}

	var rows []managerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select managers: %w", err)
	}

	out := make([]team.Manager, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ManagerRepository) getBy(ctx context.Context, cond qb.Condition) (team.Manager, bool, error) {
	query, args, err := qb.Select("*").From("managers").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return team.Manager{}, false, fmt.Errorf("build select manager query: %w", err)
	}

	var row managerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Manager{}, false, nil
		}
		return team.Manager{}, false, fmt.Errorf("select manager: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ManagerRepository) GetByID(ctx context.Context, id int64) (team.Manager, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *ManagerRepository) GetByName(ctx context.Context, name string) (team.Manager, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *ManagerRepository) Create(ctx context.Context, item team.Manager) (team.Manager, error) {
	query, args, err := qb.InsertInto("managers").
		Columns("name", "nation_id", "date_of_birth", "career_start").
		Values(item.Name, item.NationID, item.DateOfBirth, item.CareerStart).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return team.Manager{}, fmt.Errorf("build insert manager query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return team.Manager{}, fmt.Errorf("insert manager: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *ManagerRepository) Update(ctx context.Context, item team.Manager) (bool, error) {
	query, args, err := qb.Update("managers").
		Set("name", item.Name).
		Set("nation_id", item.NationID).
		Set("date_of_birth", item.DateOfBirth).
		Set("career_start", item.CareerStart).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update manager query: %w", err)
	}
	return execAffected(ctx, r.db, "update manager", query, args)
}

func (r *ManagerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("managers").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete manager query: %w", err)
	}
	return execAffected(ctx, r.db, "delete manager", query, args)
}

type RefereeRepository struct {
	db *sqlx.DB
}

func NewRefereeRepository(db *sqlx.DB) *RefereeRepository {
	return &RefereeRepository{db: db}
}

func (r *RefereeRepository) List(ctx context.Context) ([]team.Referee, error) {
	query, args, err := qb.Select("*").From("referees").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select referees query: %w", err)
	}

	var rows []refereeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select referees: %w", err)
	}

	out := make([]team.Referee, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RefereeRepository) getBy(ctx context.Context, cond qb.Condition) (team.Referee, bool, error) {
	query, args, err := qb.Select("*").From("referees").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return team.Referee{}, false, fmt.Errorf("build select referee query: %w", err)
	}

	var row refereeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Referee{}, false, nil
		}
		return team.Referee{}, false, fmt.Errorf("select referee: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *RefereeRepository) GetByID(ctx context.Context, id int64) (team.Referee, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *RefereeRepository) GetByName(ctx context.Context, name string) (team.Referee, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *RefereeRepository) Create(ctx context.Context, item team.Referee) (team.Referee, error) {
	query, args, err := qb.InsertInto("referees").
		Columns("name", "nation_id", "career_start", "matches_officiated", "yellow_cards_issued", "red_cards_issued").
		Values(item.Name, item.NationID, item.CareerStart, item.MatchesOfficiated, item.YellowCardsIssued, item.RedCardsIssued).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return team.Referee{}, fmt.Errorf("build insert referee query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return team.Referee{}, fmt.Errorf("insert referee: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *RefereeRepository) Update(ctx context.Context, item team.Referee) (bool, error) {
	query, args, err := qb.Update("referees").
		Set("name", item.Name).
		Set("nation_id", item.NationID).
		Set("career_start", item.CareerStart).
		Set("matches_officiated", item.MatchesOfficiated).
		Set("yellow_cards_issued", item.YellowCardsIssued).
		Set("red_cards_issued", item.RedCardsIssued).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update referee query: %w", err)
	}
	return execAffected(ctx, r.db, "update referee", query, args)
}

func (r *RefereeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("referees").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete referee query: %w", err)
	}
	return execAffected(ctx, r.db, "delete referee", query, args)
}
