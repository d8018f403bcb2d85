package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goalmaven/goal-maven/internal/domain/fixture"
	qb "github.com/goalmaven/goal-maven/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func fixturesBySeasonQuery(seasonID int64) (string, []any, error) {
	return qb.Select("*").From("fixtures").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("id").
		ToSQL()
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, seasonID int64) ([]fixture.Fixture, error) {
	query, args, err := fixturesBySeasonQuery(seasonID)
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, id int64) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build select fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("select fixture: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *FixtureRepository) ExistsPairing(ctx context.Context, seasonID, leagueID, homeTeamID, awayTeamID int64) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("fixtures").
		Where(
			qb.Eq("season_id", seasonID),
			qb.Eq("league_id", leagueID),
			qb.Eq("home_team_id", homeTeamID),
			qb.Eq("away_team_id", awayTeamID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build count fixture pairing query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("count fixture pairing: %w", err)
	}
	return count > 0, nil
}

func (r *FixtureRepository) CreateWithMatch(ctx context.Context, f fixture.Fixture, m fixture.Match) (fixture.Fixture, fixture.Match, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("begin create fixture tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	fixtureQuery, fixtureArgs, err := qb.InsertInto("fixtures").
		Columns("season_id", "league_id", "match_day", "home_team_id", "away_team_id",
			"home_manager_name", "away_manager_name", "stadium_id", "match_date",
			"kickoff", "referee_id", "status_id").
		Values(f.SeasonID, f.LeagueID, f.MatchDay, f.HomeTeamID, f.AwayTeamID,
			f.HomeManagerName, f.AwayManagerName, f.StadiumID, f.MatchDate,
			f.Kickoff, f.RefereeID, f.StatusID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("build insert fixture query: %w", err)
	}
	if err := tx.GetContext(ctx, &f.ID, fixtureQuery, fixtureArgs...); err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("insert fixture: %w", wrapDuplicate(err))
	}

	m.FixtureID = f.ID
	columns := append([]string{"fixture_id", "attendance", "result", "winner_team_id", "extra_time", "injury_time"},
		append(sideColumns("home"), sideColumns("away")...)...)
	values := append([]any{m.FixtureID, m.Attendance, m.Result, nullInt64(m.WinnerTeamID), m.ExtraTime, m.InjuryTime},
		append(sideValues(m.Home), sideValues(m.Away)...)...)
	matchQuery, matchArgs, err := qb.InsertInto("matches").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("build insert match query: %w", err)
	}
	if err := tx.GetContext(ctx, &m.ID, matchQuery, matchArgs...); err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("insert match: %w", wrapDuplicate(err))
	}

	if err := tx.Commit(); err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("commit create fixture tx: %w", err)
	}
	return f, m, nil
}

func (r *FixtureRepository) Update(ctx context.Context, f fixture.Fixture) (bool, error) {
	query, args, err := qb.Update("fixtures").
		Set("match_day", f.MatchDay).
		Set("stadium_id", f.StadiumID).
		Set("match_date", f.MatchDate).
		Set("kickoff", f.Kickoff).
		Set("referee_id", f.RefereeID).
		Set("status_id", f.StatusID).
		Where(qb.Eq("id", f.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update fixture query: %w", err)
	}
	return execAffected(ctx, r.db, "update fixture", query, args)
}

// Delete removes the fixture; the paired match row goes with it through the
// ON DELETE CASCADE on matches.fixture_id.
func (r *FixtureRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("fixtures").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete fixture query: %w", err)
	}
	return execAffected(ctx, r.db, "delete fixture", query, args)
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func matchesBySeasonQuery(seasonID int64) (string, []any, error) {
	return qb.Select("matches.*").From("matches").
		Join("fixtures ON fixtures.id = matches.fixture_id").
		Where(qb.Eq("fixtures.season_id", seasonID)).
		OrderBy("matches.id").
		ToSQL()
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID int64) ([]fixture.Match, error) {
	query, args, err := matchesBySeasonQuery(seasonID)
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]fixture.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) getBy(ctx context.Context, cond qb.Condition) (fixture.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return fixture.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Match{}, false, nil
		}
		return fixture.Match{}, false, fmt.Errorf("select match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (fixture.Match, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *MatchRepository) GetByFixture(ctx context.Context, fixtureID int64) (fixture.Match, bool, error) {
	return r.getBy(ctx, qb.Eq("fixture_id", fixtureID))
}

func (r *MatchRepository) Update(ctx context.Context, m fixture.Match) (bool, error) {
	builder := qb.Update("matches").
		Set("attendance", m.Attendance).
		Set("result", m.Result).
		Set("winner_team_id", nullInt64(m.WinnerTeamID)).
		Set("extra_time", m.ExtraTime).
		Set("injury_time", m.InjuryTime)
	homeValues := sideValues(m.Home)
	for i, column := range sideColumns("home") {
		builder = builder.Set(column, homeValues[i])
	}
	awayValues := sideValues(m.Away)
	for i, column := range sideColumns("away") {
		builder = builder.Set(column, awayValues[i])
	}

	query, args, err := builder.Where(qb.Eq("id", m.ID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update match query: %w", err)
	}
	return execAffected(ctx, r.db, "update match", query, args)
}

type MatchStatusRepository struct {
	db *sqlx.DB
}

func NewMatchStatusRepository(db *sqlx.DB) *MatchStatusRepository {
	return &MatchStatusRepository{db: db}
}

func (r *MatchStatusRepository) List(ctx context.Context) ([]fixture.Status, error) {
	query, args, err := qb.Select("*").From("match_statuses").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match statuses query: %w", err)
	}

	var rows []matchStatusTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match statuses: %w", err)
	}

	out := make([]fixture.Status, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchStatusRepository) getBy(ctx context.Context, cond qb.Condition) (fixture.Status, bool, error) {
	query, args, err := qb.Select("*").From("match_statuses").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return fixture.Status{}, false, fmt.Errorf("build select match status query: %w", err)
	}

	var row matchStatusTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Status{}, false, nil
		}
		return fixture.Status{}, false, fmt.Errorf("select match status: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchStatusRepository) GetByID(ctx context.Context, id int64) (fixture.Status, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *MatchStatusRepository) GetByName(ctx context.Context, name string) (fixture.Status, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *MatchStatusRepository) Create(ctx context.Context, item fixture.Status) (fixture.Status, error) {
	query, args, err := qb.InsertInto("match_statuses").
		Columns("name").
		Values(item.Name).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fixture.Status{}, fmt.Errorf("build insert match status query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return fixture.Status{}, fmt.Errorf("insert match status: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *MatchStatusRepository) Update(ctx context.Context, item fixture.Status) (bool, error) {
	query, args, err := qb.Update("match_statuses").
		Set("name", item.Name).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update match status query: %w", err)
	}
	return execAffected(ctx, r.db, "update match status", query, args)
}

func (r *MatchStatusRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("match_statuses").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match status query: %w", err)
	}
	return execAffected(ctx, r.db, "delete match status", query, args)
}
