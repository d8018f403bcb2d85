package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goalmaven/goal-maven/internal/domain/matchevent"
	qb "github.com/goalmaven/goal-maven/internal/platform/querybuilder"
)

type MatchEventRepository struct {
	db *sqlx.DB
}

func NewMatchEventRepository(db *sqlx.DB) *MatchEventRepository {
	return &MatchEventRepository{db: db}
}

func (r *MatchEventRepository) List(ctx context.Context) ([]matchevent.Event, error) {
	query, args, err := qb.Select("*").From("match_events").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match events query: %w", err)
	}

	var rows []matchEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match events: %w", err)
	}

	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchEventRepository) GetByID(ctx context.Context, id int64) (matchevent.Event, bool, error) {
	query, args, err := qb.Select("*").From("match_events").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return matchevent.Event{}, false, fmt.Errorf("build select match event query: %w", err)
	}

	var row matchEventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchevent.Event{}, false, nil
		}
		return matchevent.Event{}, false, fmt.Errorf("select match event: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchEventRepository) Create(ctx context.Context, item matchevent.Event) (matchevent.Event, error) {
	query, args, err := qb.InsertInto("match_events").
		Columns("event_type_id", "match_id", "player_id", "minute", "second",
			"is_extra_time", "pitch_location_id", "associated_player_id").
		Values(item.EventTypeID, item.MatchID, nullInt64(item.PlayerID), item.Minute, item.Second,
			item.IsExtraTime, nullInt64(item.PitchLocationID), nullInt64(item.AssociatedPlayerID)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("build insert match event query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return matchevent.Event{}, fmt.Errorf("insert match event: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *MatchEventRepository) Update(ctx context.Context, item matchevent.Event) (bool, error) {
	query, args, err := qb.Update("match_events").
		Set("event_type_id", item.EventTypeID).
		Set("player_id", nullInt64(item.PlayerID)).
		Set("minute", item.Minute).
		Set("second", item.Second).
		Set("is_extra_time", item.IsExtraTime).
		Set("pitch_location_id", nullInt64(item.PitchLocationID)).
		Set("associated_player_id", nullInt64(item.AssociatedPlayerID)).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update match event query: %w", err)
	}
	return execAffected(ctx, r.db, "update match event", query, args)
}

func (r *MatchEventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("match_events").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match event query: %w", err)
	}
	return execAffected(ctx, r.db, "delete match event", query, args)
}

// seasonEventSelect chains an event row to its season through match and fixture.
func seasonEventSelect(columns ...string) *qb.SelectBuilder {
	return qb.Select(columns...).From("match_events").
		Join("event_types ON event_types.id = match_events.event_type_id").
		Join("matches ON matches.id = match_events.match_id").
		Join("fixtures ON fixtures.id = matches.fixture_id")
}

func playerEventCountsQuery(playerID, seasonID int64) (string, []any, error) {
	return seasonEventSelect("event_types.name AS type_name", "COUNT(1) AS count").
		Where(
			qb.Eq("match_events.player_id", playerID),
			qb.Eq("fixtures.season_id", seasonID),
		).
		GroupBy("event_types.name").
		OrderBy("event_types.name").
		ToSQL()
}

func (r *MatchEventRepository) CountsByPlayerAndSeason(ctx context.Context, playerID, seasonID int64) ([]matchevent.TypeCount, error) {
	query, args, err := playerEventCountsQuery(playerID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("build player event counts query: %w", err)
	}

	var rows []typeCountRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player event counts: %w", err)
	}

	out := make([]matchevent.TypeCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchevent.TypeCount{TypeName: row.TypeName, Count: row.Count})
	}
	return out, nil
}

func assistCountQuery(playerID, seasonID int64) (string, []any, error) {
	return seasonEventSelect("COUNT(1)").
		Where(
			qb.Eq("match_events.associated_player_id", playerID),
			qb.Eq("fixtures.season_id", seasonID),
			qb.In("event_types.name", namesToAny(matchevent.GoalTypes)),
		).
		ToSQL()
}

func (r *MatchEventRepository) AssistCount(ctx context.Context, playerID, seasonID int64) (int, error) {
	query, args, err := assistCountQuery(playerID, seasonID)
	if err != nil {
		return 0, fmt.Errorf("build assist count query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("select assist count: %w", err)
	}
	return count, nil
}

func topPlayerQuery(teamID, seasonID int64, typeNames []string, subjectColumn string) (string, []any, error) {
	return seasonEventSelect("players.id AS player_id", "players.name AS player_name", "COUNT(1) AS count").
		Join("players ON players.id = match_events." + subjectColumn).
		Where(
			qb.Eq("fixtures.season_id", seasonID),
			qb.Eq("players.team_id", teamID),
			qb.In("event_types.name", namesToAny(typeNames)),
		).
		GroupBy("players.id", "players.name").
		OrderBy("count DESC", "players.id").
		Limit(1).
		ToSQL()
}

func (r *MatchEventRepository) topBy(ctx context.Context, teamID, seasonID int64, typeNames []string, subjectColumn string) (matchevent.PlayerCount, bool, error) {
	query, args, err := topPlayerQuery(teamID, seasonID, typeNames, subjectColumn)
	if err != nil {
		return matchevent.PlayerCount{}, false, fmt.Errorf("build team top player query: %w", err)
	}

	var row playerCountRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchevent.PlayerCount{}, false, nil
		}
		return matchevent.PlayerCount{}, false, fmt.Errorf("select team top player: %w", err)
	}
	return matchevent.PlayerCount{PlayerID: row.PlayerID, PlayerName: row.PlayerName, Count: row.Count}, true, nil
}

func (r *MatchEventRepository) TopForTeam(ctx context.Context, teamID, seasonID int64, typeNames []string) (matchevent.PlayerCount, bool, error) {
	return r.topBy(ctx, teamID, seasonID, typeNames, "player_id")
}

func (r *MatchEventRepository) TopAssistsForTeam(ctx context.Context, teamID, seasonID int64) (matchevent.PlayerCount, bool, error) {
	return r.topBy(ctx, teamID, seasonID, matchevent.GoalTypes, "associated_player_id")
}

func namesToAny(names []string) []any {
	out := make([]any, 0, len(names))
	for _, name := range names {
		out = append(out, name)
	}
	return out
}

type EventTypeRepository struct {
	db *sqlx.DB
}

func NewEventTypeRepository(db *sqlx.DB) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

func (r *EventTypeRepository) List(ctx context.Context) ([]matchevent.EventType, error) {
	query, args, err := qb.Select("*").From("event_types").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select event types query: %w", err)
	}

	var rows []eventTypeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select event types: %w", err)
	}

	out := make([]matchevent.EventType, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *EventTypeRepository) getBy(ctx context.Context, cond qb.Condition) (matchevent.EventType, bool, error) {
	query, args, err := qb.Select("*").From("event_types").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return matchevent.EventType{}, false, fmt.Errorf("build select event type query: %w", err)
	}

	var row eventTypeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchevent.EventType{}, false, nil
		}
		return matchevent.EventType{}, false, fmt.Errorf("select event type: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *EventTypeRepository) GetByID(ctx context.Context, id int64) (matchevent.EventType, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *EventTypeRepository) GetByName(ctx context.Context, name string) (matchevent.EventType, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *EventTypeRepository) Create(ctx context.Context, item matchevent.EventType) (matchevent.EventType, error) {
	query, args, err := qb.InsertInto("event_types").
		Columns("name").
		Values(item.Name).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return matchevent.EventType{}, fmt.Errorf("build insert event type query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return matchevent.EventType{}, fmt.Errorf("insert event type: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *EventTypeRepository) Update(ctx context.Context, item matchevent.EventType) (bool, error) {
	query, args, err := qb.Update("event_types").
		Set("name", item.Name).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update event type query: %w", err)
	}
	return execAffected(ctx, r.db, "update event type", query, args)
}

func (r *EventTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("event_types").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete event type query: %w", err)
	}
	return execAffected(ctx, r.db, "delete event type", query, args)
}

type PitchLocationRepository struct {
	db *sqlx.DB
}

func NewPitchLocationRepository(db *sqlx.DB) *PitchLocationRepository {
	return &PitchLocationRepository{db: db}
}

func (r *PitchLocationRepository) List(ctx context.Context) ([]matchevent.PitchLocation, error) {
	query, args, err := qb.Select("*").From("pitch_locations").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select pitch locations query: %w", err)
	}

	var rows []pitchLocationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select pitch locations: %w", err)
	}

	out := make([]matchevent.PitchLocation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PitchLocationRepository) getBy(ctx context.Context, cond qb.Condition) (matchevent.PitchLocation, bool, error) {
	query, args, err := qb.Select("*").From("pitch_locations").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return matchevent.PitchLocation{}, false, fmt.Errorf("build select pitch location query: %w", err)
	}

	var row pitchLocationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchevent.PitchLocation{}, false, nil
		}
		return matchevent.PitchLocation{}, false, fmt.Errorf("select pitch location: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PitchLocationRepository) GetByID(ctx context.Context, id int64) (matchevent.PitchLocation, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *PitchLocationRepository) GetByName(ctx context.Context, name string) (matchevent.PitchLocation, bool, error) {
	return r.getBy(ctx, qb.Eq("name", name))
}

func (r *PitchLocationRepository) Create(ctx context.Context, item matchevent.PitchLocation) (matchevent.PitchLocation, error) {
	query, args, err := qb.InsertInto("pitch_locations").
		Columns("name").
		Values(item.Name).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return matchevent.PitchLocation{}, fmt.Errorf("build insert pitch location query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return matchevent.PitchLocation{}, fmt.Errorf("insert pitch location: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *PitchLocationRepository) Update(ctx context.Context, item matchevent.PitchLocation) (bool, error) {
	query, args, err := qb.Update("pitch_locations").
		Set("name", item.Name).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update pitch location query: %w", err)
	}
	return execAffected(ctx, r.db, "update pitch location", query, args)
}

func (r *PitchLocationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("pitch_locations").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete pitch location query: %w", err)
	}
	return execAffected(ctx, r.db, "delete pitch location", query, args)
}
