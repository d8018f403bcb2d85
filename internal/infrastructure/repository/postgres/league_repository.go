package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goalmaven/goal-maven/internal/domain/league"
	qb "github.com/goalmaven/goal-maven/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]league.Season, error) {
	query, args, err := qb.Select("*").From("seasons").OrderBy("start_date").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]league.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonRepository) getBy(ctx context.Context, cond qb.Condition) (league.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return league.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Season{}, false, nil
		}
		return league.Season{}, false, fmt.Errorf("select season: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (league.Season, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *SeasonRepository) GetByName(ctx context.Context, name string) (league.Season, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *SeasonRepository) Create(ctx context.Context, item league.Season) (league.Season, error) {
	query, args, err := qb.InsertInto("seasons").
		Columns("name", "start_date", "end_date", "is_concluded",
			"number_of_leagues", "number_of_matches", "goals_scored").
		Values(item.Name, item.StartDate, item.EndDate, item.IsConcluded,
			item.NumberOfLeagues, item.NumberOfMatches, item.GoalsScored).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return league.Season{}, fmt.Errorf("build insert season query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return league.Season{}, fmt.Errorf("insert season: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *SeasonRepository) Update(ctx context.Context, item league.Season) (bool, error) {
	query, args, err := qb.Update("seasons").
		Set("name", item.Name).
		Set("start_date", item.StartDate).
		Set("end_date", item.EndDate).
		Set("is_concluded", item.IsConcluded).
		Set("number_of_leagues", item.NumberOfLeagues).
		Set("number_of_matches", item.NumberOfMatches).
		Set("goals_scored", item.GoalsScored).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update season query: %w", err)
	}
	return execAffected(ctx, r.db, "update season", query, args)
}

func (r *SeasonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("seasons").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete season query: %w", err)
	}
	return execAffected(ctx, r.db, "delete season", query, args)
}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) ListBySeason(ctx context.Context, seasonID int64) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) getBy(ctx context.Context, cond qb.Condition) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build select league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("select league: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, id int64) (league.League, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *LeagueRepository) GetByName(ctx context.Context, name string) (league.League, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	query, args, err := qb.InsertInto("leagues").
		Columns("name", "nation_id", "season_id", "total_teams", "match_day",
			"top_scorer_id", "most_assists_id", "is_concluded", "champion_id", "runner_up_id").
		Values(item.Name, item.NationID, item.SeasonID, item.TotalTeams, item.MatchDay,
			nullInt64(item.TopScorerID), nullInt64(item.MostAssistsID), item.IsConcluded,
			nullInt64(item.ChampionID), nullInt64(item.RunnerUpID)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return league.League{}, fmt.Errorf("build insert league query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return league.League{}, fmt.Errorf("insert league: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) (bool, error) {
	query, args, err := qb.Update("leagues").
		Set("name", item.Name).
		Set("nation_id", item.NationID).
		Set("season_id", item.SeasonID).
		Set("total_teams", item.TotalTeams).
		Set("match_day", item.MatchDay).
		Set("top_scorer_id", nullInt64(item.TopScorerID)).
		Set("most_assists_id", nullInt64(item.MostAssistsID)).
		Set("is_concluded", item.IsConcluded).
		Set("champion_id", nullInt64(item.ChampionID)).
		Set("runner_up_id", nullInt64(item.RunnerUpID)).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update league query: %w", err)
	}
	return execAffected(ctx, r.db, "update league", query, args)
}

func (r *LeagueRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("leagues").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete league query: %w", err)
	}
	return execAffected(ctx, r.db, "delete league", query, args)
}

type LeagueTableRepository struct {
	db *sqlx.DB
}

func NewLeagueTableRepository(db *sqlx.DB) *LeagueTableRepository {
	return &LeagueTableRepository{db: db}
}

func (r *LeagueTableRepository) ListBySeason(ctx context.Context, seasonID int64) ([]league.TableRow, error) {
	query, args, err := qb.Select("*").From("league_tables").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("league_id", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league tables query: %w", err)
	}

	var rows []leagueTableRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league tables: %w", err)
	}

	out := make([]league.TableRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueTableRepository) getBy(ctx context.Context, conds ...qb.Condition) (league.TableRow, bool, error) {
	query, args, err := qb.Select("*").From("league_tables").Where(conds...).Limit(1).ToSQL()
	if err != nil {
		return league.TableRow{}, false, fmt.Errorf("build select league table row query: %w", err)
	}

	var row leagueTableRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.TableRow{}, false, nil
		}
		return league.TableRow{}, false, fmt.Errorf("select league table row: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *LeagueTableRepository) GetByID(ctx context.Context, id int64) (league.TableRow, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *LeagueTableRepository) GetByTeamAndSeason(ctx context.Context, teamID, seasonID int64) (league.TableRow, bool, error) {
	return r.getBy(ctx, qb.Eq("team_id", teamID), qb.Eq("season_id", seasonID))
}

func (r *LeagueTableRepository) Create(ctx context.Context, item league.TableRow) (league.TableRow, error) {
	query, args, err := qb.InsertInto("league_tables").
		Columns("league_id", "season_id", "team_id", "points", "position",
			"matches_played", "matches_won", "matches_drawn", "matches_lost",
			"goals_scored", "goals_against", "goal_difference").
		Values(item.LeagueID, item.SeasonID, item.TeamID, item.Points, item.Position,
			item.MatchesPlayed, item.MatchesWon, item.MatchesDrawn, item.MatchesLost,
			item.GoalsScored, item.GoalsAgainst, item.GoalDifference).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return league.TableRow{}, fmt.Errorf("build insert league table row query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return league.TableRow{}, fmt.Errorf("insert league table row: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *LeagueTableRepository) Update(ctx context.Context, item league.TableRow) (bool, error) {
	query, args, err := qb.Update("league_tables").
		Set("points", item.Points).
		Set("position", item.Position).
		Set("matches_played", item.MatchesPlayed).
		Set("matches_won", item.MatchesWon).
		Set("matches_drawn", item.MatchesDrawn).
		Set("matches_lost", item.MatchesLost).
		Set("goals_scored", item.GoalsScored).
		Set("goals_against", item.GoalsAgainst).
		Set("goal_difference", item.GoalDifference).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update league table row query: %w", err)
	}
	return execAffected(ctx, r.db, "update league table row", query, args)
}

func (r *LeagueTableRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("league_tables").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete league table row query: %w", err)
	}
	return execAffected(ctx, r.db, "delete league table row", query, args)
}
