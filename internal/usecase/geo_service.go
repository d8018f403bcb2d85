package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goalmaven/goal-maven/internal/domain/continent"
	"github.com/goalmaven/goal-maven/internal/domain/nation"
	"github.com/goalmaven/goal-maven/internal/domain/storage"
)

// GeoService manages the geography tree: continents, nations, cities and
// stadiums.
type GeoService struct {
	continentRepo continent.Repository
	nationRepo    nation.Repository
	cityRepo      nation.CityRepository
	stadiumRepo   nation.StadiumRepository
}

func NewGeoService(
	continentRepo continent.Repository,
	nationRepo nation.Repository,
	cityRepo nation.CityRepository,
	stadiumRepo nation.StadiumRepository,
) *GeoService {
	return &GeoService{
		continentRepo: continentRepo,
		nationRepo:    nationRepo,
		cityRepo:      cityRepo,
		stadiumRepo:   stadiumRepo,
	}
}

func conflictOr(err error, what string) error {
	if errors.Is(err, storage.ErrDuplicateKey) {
		return fmt.Errorf("%w: %s", ErrConflict, what)
	}
	return err
}

func (s *GeoService) ListContinents(ctx context.Context) ([]continent.Continent, error) {
	return s.continentRepo.List(ctx)
}

func (s *GeoService) GetContinent(ctx context.Context, id int64) (continent.Continent, error) {
	item, found, err := s.continentRepo.GetByID(ctx, id)
	if err != nil {
		return continent.Continent{}, fmt.Errorf("get continent: %w", err)
	}
	if !found {
		return continent.Continent{}, fmt.Errorf("%w: continent=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *GeoService) CreateContinent(ctx context.Context, c continent.Continent) (continent.Continent, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return continent.Continent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Advisory pre-check; the unique constraint is the source of truth.
	if _, exists, err := s.continentRepo.GetByName(ctx, c.Name); err != nil {
		return continent.Continent{}, fmt.Errorf("check continent name: %w", err)
	} else if exists {
		return continent.Continent{}, fmt.Errorf("%w: continent %q", ErrConflict, c.Name)
	}

	created, err := s.continentRepo.Create(ctx, c)
	if err != nil {
		return continent.Continent{}, conflictOr(err, fmt.Sprintf("continent %q", c.Name))
	}
	return created, nil
}

type ContinentPatch struct {
	Name *string
}

func (s *GeoService) UpdateContinent(ctx context.Context, id int64, patch ContinentPatch) (continent.Continent, error) {
	current, err := s.GetContinent(ctx, id)
	if err != nil {
		return continent.Continent{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if err := current.Validate(); err != nil {
		return continent.Continent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.continentRepo.Update(ctx, current)
	if err != nil {
		return continent.Continent{}, conflictOr(err, fmt.Sprintf("continent %q", current.Name))
	}
	if !found {
		return continent.Continent{}, fmt.Errorf("%w: continent=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *GeoService) DeleteContinent(ctx context.Context, id int64) error {
	found, err := s.continentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete continent: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: continent=%d", ErrNotFound, id)
	}
	return nil
}

func (s *GeoService) ListNations(ctx context.Context) ([]nation.Nation, error) {
	return s.nationRepo.List(ctx)
}

func (s *GeoService) GetNation(ctx context.Context, id int64) (nation.Nation, error) {
	item, found, err := s.nationRepo.GetByID(ctx, id)
	if err != nil {
		return nation.Nation{}, fmt.Errorf("get nation: %w", err)
	}
	if !found {
		return nation.Nation{}, fmt.Errorf("%w: nation=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *GeoService) CreateNation(ctx context.Context, n nation.Nation) (nation.Nation, error) {
	n.Name = strings.TrimSpace(n.Name)
	if err := n.Validate(); err != nil {
		return nation.Nation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.continentRepo.GetByID(ctx, n.ContinentID); err != nil {
		return nation.Nation{}, fmt.Errorf("check nation continent: %w", err)
	} else if !found {
		return nation.Nation{}, fmt.Errorf("%w: continent %d does not exist", ErrInvalidInput, n.ContinentID)
	}
	if _, exists, err := s.nationRepo.GetByName(ctx, n.Name); err != nil {
		return nation.Nation{}, fmt.Errorf("check nation name: %w", err)
	} else if exists {
		return nation.Nation{}, fmt.Errorf("%w: nation %q", ErrConflict, n.Name)
	}

	created, err := s.nationRepo.Create(ctx, n)
	if err != nil {
		return nation.Nation{}, conflictOr(err, fmt.Sprintf("nation %q", n.Name))
	}
	return created, nil
}

type NationPatch struct {
	Name        *string
	ContinentID *int64
}

func (s *GeoService) UpdateNation(ctx context.Context, id int64, patch NationPatch) (nation.Nation, error) {
	current, err := s.GetNation(ctx, id)
	if err != nil {
		return nation.Nation{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.ContinentID != nil {
		current.ContinentID = *patch.ContinentID
	}
	if err := current.Validate(); err != nil {
		return nation.Nation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.continentRepo.GetByID(ctx, current.ContinentID); err != nil {
		return nation.Nation{}, fmt.Errorf("check nation continent: %w", err)
	} else if !found {
		return nation.Nation{}, fmt.Errorf("%w: continent %d does not exist", ErrInvalidInput, current.ContinentID)
	}

	found, err := s.nationRepo.Update(ctx, current)
	if err != nil {
		return nation.Nation{}, conflictOr(err, fmt.Sprintf("nation %q", current.Name))
	}
	if !found {
		return nation.Nation{}, fmt.Errorf("%w: nation=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *GeoService) DeleteNation(ctx context.Context, id int64) error {
	found, err := s.nationRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete nation: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: nation=%d", ErrNotFound, id)
	}
	return nil
}

func (s *GeoService) ListCities(ctx context.Context) ([]nation.City, error) {
	return s.cityRepo.List(ctx)
}

func (s *GeoService) GetCity(ctx context.Context, id int64) (nation.City, error) {
	item, found, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		return nation.City{}, fmt.Errorf("get city: %w", err)
	}
	if !found {
		return nation.City{}, fmt.Errorf("%w: city=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *GeoService) CreateCity(ctx context.Context, c nation.City) (nation.City, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return nation.City{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.nationRepo.GetByID(ctx, c.NationID); err != nil {
		return nation.City{}, fmt.Errorf("check city nation: %w", err)
	} else if !found {
		return nation.City{}, fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, c.NationID)
	}

	created, err := s.cityRepo.Create(ctx, c)
	if err != nil {
		return nation.City{}, fmt.Errorf("create city: %w", err)
	}
	return created, nil
}

type CityPatch struct {
	Name     *string
	NationID *int64
}

func (s *GeoService) UpdateCity(ctx context.Context, id int64, patch CityPatch) (nation.City, error) {
	current, err := s.GetCity(ctx, id)
	if err != nil {
		return nation.City{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.NationID != nil {
		current.NationID = *patch.NationID
	}
	if err := current.Validate(); err != nil {
		return nation.City{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.nationRepo.GetByID(ctx, current.NationID); err != nil {
		return nation.City{}, fmt.Errorf("check city nation: %w", err)
	} else if !found {
		return nation.City{}, fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, current.NationID)
	}

	found, err := s.cityRepo.Update(ctx, current)
	if err != nil {
		return nation.City{}, fmt.Errorf("update city: %w", err)
	}
	if !found {
		return nation.City{}, fmt.Errorf("%w: city=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *GeoService) DeleteCity(ctx context.Context, id int64) error {
	found, err := s.cityRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete city: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: city=%d", ErrNotFound, id)
	}
	return nil
}

func (s *GeoService) ListStadiums(ctx context.Context) ([]nation.Stadium, error) {
	return s.stadiumRepo.List(ctx)
}

func (s *GeoService) GetStadium(ctx context.Context, id int64) (nation.Stadium, error) {
	item, found, err := s.stadiumRepo.GetByID(ctx, id)
	if err != nil {
		return nation.Stadium{}, fmt.Errorf("get stadium: %w", err)
	}
	if !found {
		return nation.Stadium{}, fmt.Errorf("%w: stadium=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *GeoService) CreateStadium(ctx context.Context, st nation.Stadium) (nation.Stadium, error) {
	st.Name = strings.TrimSpace(st.Name)
	if err := st.Validate(); err != nil {
		return nation.Stadium{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.cityRepo.GetByID(ctx, st.CityID); err != nil {
		return nation.Stadium{}, fmt.Errorf("check stadium city: %w", err)
	} else if !found {
		return nation.Stadium{}, fmt.Errorf("%w: city %d does not exist", ErrInvalidInput, st.CityID)
	}
	if _, exists, err := s.stadiumRepo.GetByName(ctx, st.Name); err != nil {
		return nation.Stadium{}, fmt.Errorf("check stadium name: %w", err)
	} else if exists {
		return nation.Stadium{}, fmt.Errorf("%w: stadium %q", ErrConflict, st.Name)
	}

	created, err := s.stadiumRepo.Create(ctx, st)
	if err != nil {
		return nation.Stadium{}, conflictOr(err, fmt.Sprintf("stadium %q", st.Name))
	}
	return created, nil
}

type StadiumPatch struct {
	Name     *string
	CityID   *int64
	Capacity *int
}

func (s *GeoService) UpdateStadium(ctx context.Context, id int64, patch StadiumPatch) (nation.Stadium, error) {
	current, err := s.GetStadium(ctx, id)
	if err != nil {
		return nation.Stadium{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.CityID != nil {
		current.CityID = *patch.CityID
	}
	if patch.Capacity != nil {
		current.Capacity = *patch.Capacity
	}
	if err := current.Validate(); err != nil {
		return nation.Stadium{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.cityRepo.GetByID(ctx, current.CityID); err != nil {
		return nation.Stadium{}, fmt.Errorf("check stadium city: %w", err)
	} else if !found {
		return nation.Stadium{}, fmt.Errorf("%w: city %d does not exist", ErrInvalidInput, current.CityID)
	}

	found, err := s.stadiumRepo.Update(ctx, current)
	if err != nil {
		return nation.Stadium{}, conflictOr(err, fmt.Sprintf("stadium %q", current.Name))
	}
	if !found {
		return nation.Stadium{}, fmt.Errorf("%w: stadium=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *GeoService) DeleteStadium(ctx context.Context, id int64) error {
	found, err := s.stadiumRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete stadium: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: stadium=%d", ErrNotFound, id)
	}
	return nil
}
