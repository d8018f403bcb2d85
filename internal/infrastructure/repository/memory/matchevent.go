package memory

import (
	"context"

	"github.com/goalmaven/goal-maven/internal/domain/matchevent"
)

type EventTypeRepository struct {
	c *catalog[matchevent.EventType]
}

func NewEventTypeRepository() *EventTypeRepository {
	return &EventTypeRepository{c: newCatalog(
		func(item *matchevent.EventType) *int64 { return &item.ID },
		func(item matchevent.EventType) string { return item.Name },
	)}
}

func (r *EventTypeRepository) List(ctx context.Context) ([]matchevent.EventType, error) {
	return r.c.list(), nil
}

func (r *EventTypeRepository) GetByID(ctx context.Context, id int64) (matchevent.EventType, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *EventTypeRepository) GetByName(ctx context.Context, name string) (matchevent.EventType, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *EventTypeRepository) Create(ctx context.Context, item matchevent.EventType) (matchevent.EventType, error) {
	return r.c.create(item), nil
}

func (r *EventTypeRepository) Update(ctx context.Context, item matchevent.EventType) (bool, error) {
	return r.c.update(item), nil
}

func (r *EventTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

type PitchLocationRepository struct {
	c *catalog[matchevent.PitchLocation]
}

func NewPitchLocationRepository() *PitchLocationRepository {
	return &PitchLocationRepository{c: newCatalog(
		func(item *matchevent.PitchLocation) *int64 { return &item.ID },
		func(item matchevent.PitchLocation) string { return item.Name },
	)}
}

func (r *PitchLocationRepository) List(ctx context.Context) ([]matchevent.PitchLocation, error) {
	return r.c.list(), nil
}

func (r *PitchLocationRepository) GetByID(ctx context.Context, id int64) (matchevent.PitchLocation, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *PitchLocationRepository) GetByName(ctx context.Context, name string) (matchevent.PitchLocation, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *PitchLocationRepository) Create(ctx context.Context, item matchevent.PitchLocation) (matchevent.PitchLocation, error) {
	return r.c.create(item), nil
}

func (r *PitchLocationRepository) Update(ctx context.Context, item matchevent.PitchLocation) (bool, error) {
	return r.c.update(item), nil
}

func (r *PitchLocationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

// MatchEventRepository resolves the aggregate views by walking its sibling
// stores the way the postgres implementation joins tables.
type MatchEventRepository struct {
	c        *catalog[matchevent.Event]
	types    *EventTypeRepository
	fixtures *FixtureRepository
	players  *PlayerRepository
}

func NewMatchEventRepository(types *EventTypeRepository, fixtures *FixtureRepository, players *PlayerRepository) *MatchEventRepository {
	return &MatchEventRepository{
		c: newCatalog(
			func(item *matchevent.Event) *int64 { return &item.ID },
			nil,
		),
		types:    types,
		fixtures: fixtures,
		players:  players,
	}
}

func (r *MatchEventRepository) List(ctx context.Context) ([]matchevent.Event, error) {
	return r.c.list(), nil
}

func (r *MatchEventRepository) GetByID(ctx context.Context, id int64) (matchevent.Event, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *MatchEventRepository) Create(ctx context.Context, item matchevent.Event) (matchevent.Event, error) {
	return r.c.create(item), nil
}

func (r *MatchEventRepository) Update(ctx context.Context, item matchevent.Event) (bool, error) {
	return r.c.update(item), nil
}

func (r *MatchEventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

func (r *MatchEventRepository) inSeason(e matchevent.Event, seasonID int64) bool {
	m, ok := r.fixtures.matches.get(e.MatchID)
	if !ok {
		return false
	}
	f, ok := r.fixtures.fixtures.get(m.FixtureID)
	return ok && f.SeasonID == seasonID
}

func (r *MatchEventRepository) typeName(e matchevent.Event) string {
	t, ok := r.types.c.get(e.EventTypeID)
	if !ok {
		return ""
	}
	return t.Name
}

func (r *MatchEventRepository) CountsByPlayerAndSeason(ctx context.Context, playerID, seasonID int64) ([]matchevent.TypeCount, error) {
	byType := map[string]int{}
	order := []string{}
	for _, e := range r.c.list() {
		if e.PlayerID == nil || *e.PlayerID != playerID || !r.inSeason(e, seasonID) {
			continue
		}
		name := r.typeName(e)
		if name == "" {
			continue
		}
		if _, seen := byType[name]; !seen {
			order = append(order, name)
		}
		byType[name]++
	}
	out := make([]matchevent.TypeCount, 0, len(order))
	for _, name := range order {
		out = append(out, matchevent.TypeCount{TypeName: name, Count: byType[name]})
	}
	return out, nil
}

func (r *MatchEventRepository) AssistCount(ctx context.Context, playerID, seasonID int64) (int, error) {
	count := 0
	for _, e := range r.c.list() {
		if e.AssociatedPlayerID == nil || *e.AssociatedPlayerID != playerID || !r.inSeason(e, seasonID) {
			continue
		}
		if nameIn(r.typeName(e), matchevent.GoalTypes) {
			count++
		}
	}
	return count, nil
}

func nameIn(name string, names []string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (r *MatchEventRepository) topBy(seasonID, teamID int64, typeNames []string, subject func(matchevent.Event) *int64) (matchevent.PlayerCount, bool) {
	counts := map[int64]int{}
	for _, e := range r.c.list() {
		who := subject(e)
		if who == nil || !r.inSeason(e, seasonID) || !nameIn(r.typeName(e), typeNames) {
			continue
		}
		p, ok := r.players.c.get(*who)
		if !ok || p.TeamID == nil || *p.TeamID != teamID {
			continue
		}
		counts[*who]++
	}

	var best matchevent.PlayerCount
	for playerID, count := range counts {
		if count > best.Count || (count == best.Count && best.PlayerID != 0 && playerID < best.PlayerID) {
			p, _ := r.players.c.get(playerID)
			best = matchevent.PlayerCount{PlayerID: playerID, PlayerName: p.Name, Count: count}
		}
	}
	return best, best.PlayerID != 0
}

func (r *MatchEventRepository) TopForTeam(ctx context.Context, teamID, seasonID int64, typeNames []string) (matchevent.PlayerCount, bool, error) {
	best, found := r.topBy(seasonID, teamID, typeNames, func(e matchevent.Event) *int64 { return e.PlayerID })
	return best, found, nil
}

func (r *MatchEventRepository) TopAssistsForTeam(ctx context.Context, teamID, seasonID int64) (matchevent.PlayerCount, bool, error) {
	best, found := r.topBy(seasonID, teamID, matchevent.GoalTypes, func(e matchevent.Event) *int64 { return e.AssociatedPlayerID })
	return best, found, nil
}
