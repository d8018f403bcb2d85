package memory

import (
	"context"

	"github.com/goalmaven/goal-maven/internal/domain/continent"
	"github.com/goalmaven/goal-maven/internal/domain/nation"
)

type ContinentRepository struct {
	c *catalog[continent.Continent]
}

func NewContinentRepository() *ContinentRepository {
	return &ContinentRepository{c: newCatalog(
		func(item *continent.Continent) *int64 { return &item.ID },
		func(item continent.Continent) string { return item.Name },
	)}
}

func (r *ContinentRepository) List(ctx context.Context) ([]continent.Continent, error) {
	return r.c.list(), nil
}

func (r *ContinentRepository) GetByID(ctx context.Context, id int64) (continent.Continent, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *ContinentRepository) GetByName(ctx context.Context, name string) (continent.Continent, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *ContinentRepository) Create(ctx context.Context, item continent.Continent) (continent.Continent, error) {
	return r.c.create(item), nil
}

func (r *ContinentRepository) Update(ctx context.Context, item continent.Continent) (bool, error) {
	return r.c.update(item), nil
}

func (r *ContinentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

type NationRepository struct {
	c *catalog[nation.Nation]
}

func NewNationRepository() *NationRepository {
	return &NationRepository{c: newCatalog(
		func(item *nation.Nation) *int64 { return &item.ID },
		func(item nation.Nation) string { return item.Name },
	)}
}

func (r *NationRepository) List(ctx context.Context) ([]nation.Nation, error) {
	return r.c.list(), nil
}

func (r *NationRepository) GetByID(ctx context.Context, id int64) (nation.Nation, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *NationRepository) GetByName(ctx context.Context, name string) (nation.Nation, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *NationRepository) Create(ctx context.Context, item nation.Nation) (nation.Nation, error) {
	return r.c.create(item), nil
}

func (r *NationRepository) Update(ctx context.Context, item nation.Nation) (bool, error) {
	return r.c.update(item), nil
}

func (r *NationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

type CityRepository struct {
	c *catalog[nation.City]
}

func NewCityRepository() *CityRepository {
	return &CityRepository{c: newCatalog(
		func(item *nation.City) *int64 { return &item.ID },
		func(item nation.City) string { return item.Name },
	)}
}

func (r *CityRepository) List(ctx context.Context) ([]nation.City, error) {
	return r.c.list(), nil
}

func (r *CityRepository) GetByID(ctx context.Context, id int64) (nation.City, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *CityRepository) GetByName(ctx context.Context, name string) (nation.City, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *CityRepository) Create(ctx context.Context, item nation.City) (nation.City, error) {
	return r.c.create(item), nil
}

func (r *CityRepository) Update(ctx context.Context, item nation.City) (bool, error) {
	return r.c.update(item), nil
}

func (r *CityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}

type StadiumRepository struct {
	c *catalog[nation.Stadium]
}

func NewStadiumRepository() *StadiumRepository {
	return &StadiumRepository{c: newCatalog(
		func(item *nation.Stadium) *int64 { return &item.ID },
		func(item nation.Stadium) string { return item.Name },
	)}
}

func (r *StadiumRepository) List(ctx context.Context) ([]nation.Stadium, error) {
	return r.c.list(), nil
}

func (r *StadiumRepository) GetByID(ctx context.Context, id int64) (nation.Stadium, bool, error) {
	item, ok := r.c.get(id)
	return item, ok, nil
}

func (r *StadiumRepository) GetByName(ctx context.Context, name string) (nation.Stadium, bool, error) {
	item, ok := r.c.getByKey(name)
	return item, ok, nil
}

func (r *StadiumRepository) Create(ctx context.Context, item nation.Stadium) (nation.Stadium, error) {
	return r.c.create(item), nil
}

func (r *StadiumRepository) Update(ctx context.Context, item nation.Stadium) (bool, error) {
	return r.c.update(item), nil
}

func (r *StadiumRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.delete(id), nil
}
