package memory

import (
	"context"

	"github.com/goalmaven/goal-maven/internal/domain/team"
)

type TeamRepository struct {
	c *catalog[team.Team]
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{c: newCatalog(
		func(item *team.Team) *int64 { return &item.ID },
		func(item team.Team) string { return item.Name },
	)}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return r.c.list(), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *TeamRepository) GetByManager(ctx context.Context, managerID int64) (team.Team, bool, error) {
	item, ok := r.c.find(func(t team.Team) bool {
		return t.ManagerID != nil && *t.ManagerID == managerID
	})
	return item, ok, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	return r.c.create(item), nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (bool, error) {
	return r.c.update(item), nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

// ManagerRepository releases the owning team's link on delete, mirroring the
// ON DELETE SET NULL behaviour of the postgres schema.
type ManagerRepository struct {
	c     *catalog[team.Manager]
	teams *TeamRepository
}

func NewManagerRepository(teams *TeamRepository) *ManagerRepository {
	return &ManagerRepository{
		c: newCatalog(
			func(item *team.Manager) *int64 { return &item.ID },
			func(item team.Manager) string { return item.Name },
		),
		teams: teams,
	}
}

func (r *ManagerRepository) List(ctx context.Context) ([]team.Manager, error) {
	return r.c.list(), nil
}

func (r *ManagerRepository) GetByID(ctx context.Context, id int64) (team.Manager, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *ManagerRepository) GetByName(ctx context.Context, name string) (team.Manager, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *ManagerRepository) Create(ctx context.Context, item team.Manager) (team.Manager, error) {
	return r.c.create(item), nil
}

func (r *ManagerRepository) Update(ctx context.Context, item team.Manager) (bool, error) {
	return r.c.update(item), nil
}

func (r *ManagerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := r.c.delete(id)
	if deleted && r.teams != nil {
		r.teams.c.mutate(func(t *team.Team) {
			if t.ManagerID != nil && *t.ManagerID == id {
				t.ManagerID = nil
			}
		})
	}
	return deleted, nil
}

type RefereeRepository struct {
	c *catalog[team.Referee]
}

func NewRefereeRepository() *RefereeRepository {
	return &RefereeRepository{c: newCatalog(
		func(item *team.Referee) *int64 { return &item.ID },
		func(item team.Referee) string { return item.Name },
	)}
}

func (r *RefereeRepository) List(ctx context.Context) ([]team.Referee, error) {
	return r.c.list(), nil
}

func (r *RefereeRepository) GetByID(ctx context.Context, id int64) (team.Referee, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *RefereeRepository) GetByName(ctx context.Context, name string) (team.Referee, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *RefereeRepository) Create(ctx context.Context, item team.Referee) (team.Referee, error) {
	return r.c.create(item), nil
}

func (r *RefereeRepository) Update(ctx context.Context, item team.Referee) (bool, error) {
	return r.c.update(item), nil
}

func (r *RefereeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}
