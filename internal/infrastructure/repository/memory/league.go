package memory

import (
	"context"
	"fmt"

	"github.com/goalmaven/goal-maven/internal/domain/league"
	"github.com/goalmaven/goal-maven/internal/domain/storage"
)

type SeasonRepository struct {
	c *catalog[league.Season]
}

func NewSeasonRepository() *SeasonRepository {
	return &SeasonRepository{c: newCatalog(
		func(item *league.Season) *int64 { return &item.ID },
		func(item league.Season) string { return item.Name },
	)}
}

func (r *SeasonRepository) List(ctx context.Context) ([]league.Season, error) {
	return r.c.list(), nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (league.Season, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *SeasonRepository) GetByName(ctx context.Context, name string) (league.Season, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item league.Season) (league.Season, error) {
	return r.c.create(item), nil
}

func (r *SeasonRepository) Update(ctx context.Context, item league.Season) (bool, error) {
	return r.c.update(item), nil
}

func (r *SeasonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

type LeagueRepository struct {
	c *catalog[league.League]
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{c: newCatalog(
		func(item *league.League) *int64 { return &item.ID },
		func(item league.League) string { return item.Name },
	)}
}

func (r *LeagueRepository) ListBySeason(ctx context.Context, seasonID int64) ([]league.League, error) {
	return r.c.filter(func(l league.League) bool { return l.SeasonID == seasonID }), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, id int64) (league.League, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *LeagueRepository) GetByName(ctx context.Context, name string) (league.League, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	return r.c.create(item), nil
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) (bool, error) {
	return r.c.update(item), nil
}

func (r *LeagueRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

// LeagueTableRepository enforces the (league, season, team) uniqueness the
// postgres schema expresses as a composite unique constraint.
type LeagueTableRepository struct {
	c *catalog[league.TableRow]
}

func NewLeagueTableRepository() *LeagueTableRepository {
	return &LeagueTableRepository{c: newCatalog(
		func(item *league.TableRow) *int64 { return &item.ID },
		nil,
	)}
}

func (r *LeagueTableRepository) ListBySeason(ctx context.Context, seasonID int64) ([]league.TableRow, error) {
	return r.c.filter(func(row league.TableRow) bool { return row.SeasonID == seasonID }), nil
}

func (r *LeagueTableRepository) GetByID(ctx context.Context, id int64) (league.TableRow, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *LeagueTableRepository) GetByTeamAndSeason(ctx context.Context, teamID, seasonID int64) (league.TableRow, bool, error) {
	item, ok := r.c.find(func(row league.TableRow) bool {
		return row.TeamID == teamID && row.SeasonID == seasonID
	})
	return item, ok, nil
}

func (r *LeagueTableRepository) Create(ctx context.Context, item league.TableRow) (league.TableRow, error) {
	_, dup := r.c.find(func(row league.TableRow) bool {
		return row.LeagueID == item.LeagueID && row.SeasonID == item.SeasonID && row.TeamID == item.TeamID
	})
	if dup {
		return league.TableRow{}, fmt.Errorf("league table row: %w", storage.ErrDuplicateKey)
	}
	return r.c.create(item), nil
}

func (r *LeagueTableRepository) Update(ctx context.Context, item league.TableRow) (bool, error) {
	return r.c.update(item), nil
}

func (r *LeagueTableRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}
