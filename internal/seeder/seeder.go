// Package seeder bulk-loads reference data from pipe-delimited text files.
// Each entity has its own file and its own typed upsert; rows are matched by
// natural name, so re-running the seeder refreshes rather than duplicates.
package seeder

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/goalmaven/goal-maven/internal/domain/continent"
	"github.com/goalmaven/goal-maven/internal/domain/nation"
	"github.com/goalmaven/goal-maven/internal/domain/player"
	"github.com/goalmaven/goal-maven/internal/domain/team"
	"github.com/goalmaven/goal-maven/internal/platform/logging"
)

const dateLayout = "2006-01-02"

// Files processed in dependency order; each later file may reference rows
// seeded by an earlier one.
var fileOrder = []string{
	"continents.txt",
	"nations.txt",
	"cities.txt",
	"stadiums.txt",
	"managers.txt",
	"referees.txt",
	"player_roles.txt",
	"players.txt",
}

// Repositories collects every store the seeder writes to or resolves
// parents from.
type Repositories struct {
	Continents continent.Repository
	Nations    nation.Repository
	Cities     nation.CityRepository
	Stadiums   nation.StadiumRepository
	Managers   team.ManagerRepository
	Referees   team.RefereeRepository
	Roles      player.RoleRepository
	Players    player.Repository
	Teams      team.Repository
}

// FileResult reports what happened to a single data file.
type FileResult struct {
	File     string
	Upserted int
	Skipped  int
	Failed   int
}

type Seeder struct {
	repos   Repositories
	logger  *logging.Logger
	workers int
}

func New(repos Repositories, logger *logging.Logger, workers int) *Seeder {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Seeder{repos: repos, logger: logger, workers: workers}
}

type rowFunc func(ctx context.Context, fields []string) (skipped bool, err error)

// Run seeds every known file found under dir. Missing files are not an
// error; a directory with only continents.txt seeds continents and nothing
// else.
func (s *Seeder) Run(ctx context.Context, dir string) ([]FileResult, error) {
	handlers := map[string]rowFunc{
		"continents.txt":   s.upsertContinent,
		"nations.txt":      s.upsertNation,
		"cities.txt":       s.upsertCity,
		"stadiums.txt":     s.upsertStadium,
		"managers.txt":     s.upsertManager,
		"referees.txt":     s.upsertReferee,
		"player_roles.txt": s.upsertPlayerRole,
		"players.txt":      s.upsertPlayer,
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	var results []FileResult
	for _, name := range fileOrder {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return results, errors.Wrapf(err, "stat %s", name)
		}

		result, err := s.seedFile(ctx, pool, path, handlers[name])
		if err != nil {
			return results, err
		}
		results = append(results, result)

		s.logger.InfoContext(ctx, "seeded file",
			"file", name,
			"upserted", result.Upserted,
			"skipped", result.Skipped,
			"failed", result.Failed,
		)
	}

	return results, nil
}

func (s *Seeder) seedFile(ctx context.Context, pool *ants.Pool, path string, handle rowFunc) (FileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileResult{}, errors.Wrapf(err, "open %s", filepath.Base(path))
	}
	defer f.Close()

	result := FileResult{File: filepath.Base(path)}

	var upserted, skipped, failed atomic.Int64
	var workers sync.WaitGroup

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitRow(line)
		rowLine := lineNo

		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			skip, err := handle(ctx, fields)
			switch {
			case err != nil:
				failed.Add(1)
				s.logger.WarnContext(ctx, "seed row failed",
					"file", result.File, "line", rowLine, "error", err)
			case skip:
				skipped.Add(1)
			default:
				upserted.Add(1)
			}
		}); err != nil {
			workers.Done()
			return FileResult{}, errors.Wrap(err, "submit row to worker pool")
		}
	}
	workers.Wait()

	if err := scanner.Err(); err != nil {
		return FileResult{}, errors.Wrapf(err, "read %s", result.File)
	}

	result.Upserted = int(upserted.Load())
	result.Skipped = int(skipped.Load())
	result.Failed = int(failed.Load())
	return result, nil
}

func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseSeedDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", raw)
	}
	return t, nil
}

// upsertContinent handles rows of shape: name
func (s *Seeder) upsertContinent(ctx context.Context, fields []string) (bool, error) {
	if len(fields) != 1 {
		return false, errors.Newf("expected 1 field, got %d", len(fields))
	}
	name := fields[0]

	existing, found, err := s.repos.Continents.GetByName(ctx, name)
	if err != nil {
		return false, err
	}
	if found {
		_, err := s.repos.Continents.Update(ctx, existing)
		return false, err
	}
	_, err = s.repos.Continents.Create(ctx, continent.Continent{Name: name})
	return false, err
}

// upsertNation handles rows of shape: name|continent_name
func (s *Seeder) upsertNation(ctx context.Context, fields []string) (bool, error) {
	if len(fields) != 2 {
		return false, errors.Newf("expected 2 fields, got %d", len(fields))
	}

	parent, found, err := s.repos.Continents.GetByName(ctx, fields[1])
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	next := nation.Nation{Name: fields[0], ContinentID: parent.ID}
	existing, found, err := s.repos.Nations.GetByName(ctx, next.Name)
	if err != nil {
		return false, err
	}
	if found {
		next.ID = existing.ID
		_, err := s.repos.Nations.Update(ctx, next)
		return false, err
	}
	_, err = s.repos.Nations.Create(ctx, next)
	return false, err
}

// upsertCity handles rows of shape: name|nation_name
func (s *Seeder) upsertCity(ctx context.Context, fields []string) (bool, error) {
	if len(fields) != 2 {
		return false, errors.Newf("expected 2 fields, got %d", len(fields))
	}

	parent, found, err := s.repos.Nations.GetByName(ctx, fields[1])
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	next := nation.City{Name: fields[0], NationID: parent.ID}
	existing, found, err := s.repos.Cities.GetByName(ctx, next.Name)
	if err != nil {
		return false, err
	}
	if found {
		next.ID = existing.ID
		_, err := s.repos.Cities.Update(ctx, next)
		return false, err
	}
	_, err = s.repos.Cities.Create(ctx, next)
	return false, err
}

// upsertStadium handles rows of shape: name|city_name|capacity
func (s *Seeder) upsertStadium(ctx context.Context, fields []string) (bool, error) {
	if len(fields) != 3 {
		return false, errors.Newf("expected 3 fields, got %d", len(fields))
	}

	parent, found, err := s.repos.Cities.GetByName(ctx, fields[1])
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	capacity, err := strconv.Atoi(fields[2])
	if err != nil {
		return false, errors.Wrapf(err, "parse capacity %q", fields[2])
	}

	next := nation.Stadium{Name: fields[0], CityID: parent.ID, Capacity: capacity}
	existing, found, err := s.repos.Stadiums.GetByName(ctx, next.Name)
	if err != nil {
		return false, err
	}
	if found {
		next.ID = existing.ID
		_, err := s.repos.Stadiums.Update(ctx, next)
		return false, err
	}
	_, err = s.repos.Stadiums.Create(ctx, next)
	return false, err
}

// upsertManager handles rows of shape: name|nation_name|date_of_birth|career_start
func (s *Seeder) upsertManager(ctx context.Context, fields []string) (bool, error) {
	if len(fields) != 4 {
		return false, errors.Newf("expected 4 fields, got %d", len(fields))
	}

	parent, found, err := s.repos.Nations.GetByName(ctx, fields[1])
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	dob, err := parseSeedDate(fields[2])
	if err != nil {
		return false, err
	}
	careerStart, err := parseSeedDate(fields[3])
	if err != nil {
		return false, err
	}

	next := team.Manager{Name: fields[0], NationID: parent.ID, DateOfBirth: dob, CareerStart: careerStart}
	existing, found, err := s.repos.Managers.GetByName(ctx, next.Name)
	if err != nil {
		return false, err
	}
	if found {
		next.ID = existing.ID
		_, err := s.repos.Managers.Update(ctx, next)
		return false, err
	}
	_, err = s.repos.Managers.Create(ctx, next)
	return false, err
}

// upsertReferee handles rows of shape: name|nation_name|career_start
func (s *Seeder) upsertReferee(ctx context.Context, fields []string) (bool, error) {
	if len(fields) != 3 {
		return false, errors.Newf("expected 3 fields, got %d", len(fields))
	}

	parent, found, err := s.repos.Nations.GetByName(ctx, fields[1])
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	careerStart, err := parseSeedDate(fields[2])
	if err != nil {
		return false, err
	}

	next := team.Referee{Name: fields[0], NationID: parent.ID, CareerStart: careerStart}
	existing, found, err := s.repos.Referees.GetByName(ctx, next.Name)
	if err != nil {
		return false, err
	}
	if found {
		// Officiating counters are API-maintained; keep them on refresh.
		next.ID = existing.ID
		next.MatchesOfficiated = existing.MatchesOfficiated
		next.YellowCardsIssued = existing.YellowCardsIssued
		next.RedCardsIssued = existing.RedCardsIssued
		_, err := s.repos.Referees.Update(ctx, next)
		return false, err
	}
	_, err = s.repos.Referees.Create(ctx, next)
	return false, err
}

// upsertPlayerRole handles rows of shape: name|short_name
func (s *Seeder) upsertPlayerRole(ctx context.Context, fields []string) (bool, error) {
	if len(fields) != 2 {
		return false, errors.Newf("expected 2 fields, got %d", len(fields))
	}

	next := player.Role{Name: fields[0], ShortName: fields[1]}
	existing, found, err := s.repos.Roles.GetByName(ctx, next.Name)
	if err != nil {
		return false, err
	}
	if found {
		next.ID = existing.ID
		_, err := s.repos.Roles.Update(ctx, next)
		return false, err
	}
	_, err = s.repos.Roles.Create(ctx, next)
	return false, err
}

// upsertPlayer handles rows of shape:
// name|jersey_number|date_of_birth|career_start|nation_name|height|weight|role_name|team_name
// team_name may be empty for free agents.
func (s *Seeder) upsertPlayer(ctx context.Context, fields []string) (bool, error) {
	if len(fields) != 9 {
		return false, errors.Newf("expected 9 fields, got %d", len(fields))
	}

	nat, found, err := s.repos.Nations.GetByName(ctx, fields[4])
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	role, found, err := s.repos.Roles.GetByName(ctx, fields[7])
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	var teamID *int64
	if fields[8] != "" {
		club, found, err := s.repos.Teams.GetByName(ctx, fields[8])
		if err != nil {
			return false, err
		}
		if !found {
			return true, nil
		}
		teamID = &club.ID
	}

	jersey, err := strconv.Atoi(fields[1])
	if err != nil {
		return false, errors.Wrapf(err, "parse jersey number %q", fields[1])
	}
	dob, err := parseSeedDate(fields[2])
	if err != nil {
		return false, err
	}
	careerStart, err := parseSeedDate(fields[3])
	if err != nil {
		return false, err
	}
	height, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return false, errors.Wrapf(err, "parse height %q", fields[5])
	}
	weight, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return false, errors.Wrapf(err, "parse weight %q", fields[6])
	}

	next := player.Player{
		Name:         fields[0],
		JerseyNumber: jersey,
		DateOfBirth:  dob,
		CareerStart:  careerStart,
		NationID:     nat.ID,
		Height:       height,
		Weight:       weight,
		RoleID:       role.ID,
		TeamID:       teamID,
	}
	existing, found, err := s.repos.Players.GetByName(ctx, next.Name)
	if err != nil {
		return false, err
	}
	if found {
		next.ID = existing.ID
		next.TotalAppearances = existing.TotalAppearances
		_, err := s.repos.Players.Update(ctx, next)
		return false, err
	}
	_, err = s.repos.Players.Create(ctx, next)
	return false, err
}
