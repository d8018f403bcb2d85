package memory

import (
	"context"
	"fmt"

	"github.com/goalmaven/goal-maven/internal/domain/fixture"
	"github.com/goalmaven/goal-maven/internal/domain/storage"
)

// FixtureRepository owns both the fixture and match tables so that
// CreateWithMatch and the delete cascade stay atomic under one lock
// discipline.
type FixtureRepository struct {
	fixtures *catalog[fixture.Fixture]
	matches  *catalog[fixture.Match]
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{
		fixtures: newCatalog(
			func(item *fixture.Fixture) *int64 { return &item.ID },
			nil,
		),
		matches: newCatalog(
			func(item *fixture.Match) *int64 { return &item.ID },
			nil,
		),
	}
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, seasonID int64) ([]fixture.Fixture, error) {
	return r.fixtures.filter(func(f fixture.Fixture) bool { return f.SeasonID == seasonID }), nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, id int64) (fixture.Fixture, bool, error) {
	item, ok := r.fixtures.get(id)
	return item, ok, nil
}

func (r *FixtureRepository) ExistsPairing(ctx context.Context, seasonID, leagueID, homeTeamID, awayTeamID int64) (bool, error) {
	_, ok := r.fixtures.find(func(f fixture.Fixture) bool {
		return f.SeasonID == seasonID && f.LeagueID == leagueID &&
			f.HomeTeamID == homeTeamID && f.AwayTeamID == awayTeamID
	})
	return ok, nil
}

func (r *FixtureRepository) CreateWithMatch(ctx context.Context, f fixture.Fixture, m fixture.Match) (fixture.Fixture, fixture.Match, error) {
	if exists, _ := r.ExistsPairing(ctx, f.SeasonID, f.LeagueID, f.HomeTeamID, f.AwayTeamID); exists {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("fixture pairing: %w", storage.ErrDuplicateKey)
	}
	createdFixture := r.fixtures.create(f)
	m.FixtureID = createdFixture.ID
	createdMatch := r.matches.create(m)
	return createdFixture, createdMatch, nil
}

func (r *FixtureRepository) Update(ctx context.Context, f fixture.Fixture) (bool, error) {
	return r.fixtures.update(f), nil
}

func (r *FixtureRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := r.fixtures.delete(id)
	if deleted {
		if m, ok := r.matches.find(func(m fixture.Match) bool { return m.FixtureID == id }); ok {
			r.matches.delete(m.ID)
		}
	}
	return deleted, nil
}

type MatchRepository struct {
	owner *FixtureRepository
}

func NewMatchRepository(owner *FixtureRepository) *MatchRepository {
	return &MatchRepository{owner: owner}
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID int64) ([]fixture.Match, error) {
	return r.owner.matches.filter(func(m fixture.Match) bool {
		f, ok := r.owner.fixtures.get(m.FixtureID)
		return ok && f.SeasonID == seasonID
	}), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (fixture.Match, bool, error) {
	item, ok := r.owner.matches.get(id)
	return item, ok, nil
}

func (r *MatchRepository) GetByFixture(ctx context.Context, fixtureID int64) (fixture.Match, bool, error) {
	item, ok := r.owner.matches.find(func(m fixture.Match) bool { return m.FixtureID == fixtureID })
	return item, ok, nil
}

func (r *MatchRepository) Update(ctx context.Context, m fixture.Match) (bool, error) {
	return r.owner.matches.update(m), nil
}

type MatchStatusRepository struct {
	c *catalog[fixture.Status]
}

func NewMatchStatusRepository() *MatchStatusRepository {
	return &MatchStatusRepository{c: newCatalog(
		func(item *fixture.Status) *int64 { return &item.ID },
		func(item fixture.Status) string { return item.Name },
	)}
}

func (r *MatchStatusRepository) List(ctx context.Context) ([]fixture.Status, error) {
	return r.c.list(), nil
}

func (r *MatchStatusRepository) GetByID(ctx context.Context, id int64) (fixture.Status, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *MatchStatusRepository) GetByName(ctx context.Context, name string) (fixture.Status, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *MatchStatusRepository) Create(ctx context.Context, item fixture.Status) (fixture.Status, error) {
	return r.c.create(item), nil
}

func (r *MatchStatusRepository) Update(ctx context.Context, item fixture.Status) (bool, error) {
	return r.c.update(item), nil
}

func (r *MatchStatusRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}
