package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goalmaven/goal-maven/internal/domain/league"
	"github.com/goalmaven/goal-maven/internal/domain/nation"
	"github.com/goalmaven/goal-maven/internal/domain/team"
)

// resolveSeason maps a season name path segment ("2023-2024") to its row.
// An unknown name is a not-found, not a bad request; the name is the
// season's public identifier.
func resolveSeason(ctx context.Context, repo league.SeasonRepository, name string) (league.Season, error) {
	season, found, err := repo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return league.Season{}, fmt.Errorf("resolve season: %w", err)
	}
	if !found {
		return league.Season{}, fmt.Errorf("%w: season %q", ErrNotFound, name)
	}
	return season, nil
}

// LeagueService manages seasons, leagues and league tables.
type LeagueService struct {
	seasonRepo league.SeasonRepository
	leagueRepo league.Repository
	tableRepo  league.TableRepository
	nationRepo nation.Repository
	teamRepo   team.Repository
}

func NewLeagueService(
	seasonRepo league.SeasonRepository,
	leagueRepo league.Repository,
	tableRepo league.TableRepository,
	nationRepo nation.Repository,
	teamRepo team.Repository,
) *LeagueService {
	return &LeagueService{
		seasonRepo: seasonRepo,
		leagueRepo: leagueRepo,
		tableRepo:  tableRepo,
		nationRepo: nationRepo,
		teamRepo:   teamRepo,
	}
}

func (s *LeagueService) ListSeasons(ctx context.Context) ([]league.Season, error) {
	return s.seasonRepo.List(ctx)
}

func (s *LeagueService) GetSeason(ctx context.Context, id int64) (league.Season, error) {
	item, found, err := s.seasonRepo.GetByID(ctx, id)
	if err != nil {
		return league.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !found {
		return league.Season{}, fmt.Errorf("%w: season=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *LeagueService) GetSeasonByName(ctx context.Context, name string) (league.Season, error) {
	return resolveSeason(ctx, s.seasonRepo, name)
}

func (s *LeagueService) CreateSeason(ctx context.Context, season league.Season) (league.Season, error) {
	season.Name = strings.TrimSpace(season.Name)
	if err := season.Validate(); err != nil {
		return league.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, exists, err := s.seasonRepo.GetByName(ctx, season.Name); err != nil {
		return league.Season{}, fmt.Errorf("check season name: %w", err)
	} else if exists {
		return league.Season{}, fmt.Errorf("%w: season %q", ErrConflict, season.Name)
	}

	created, err := s.seasonRepo.Create(ctx, season)
	if err != nil {
		return league.Season{}, conflictOr(err, fmt.Sprintf("season %q", season.Name))
	}
	return created, nil
}

type SeasonPatch struct {
	Name            *string
	StartDate       *time.Time
	EndDate         *time.Time
	IsConcluded     *bool
	NumberOfLeagues *int
	NumberOfMatches *int
	GoalsScored     *int
}

func (s *LeagueService) UpdateSeason(ctx context.Context, id int64, patch SeasonPatch) (league.Season, error) {
	current, err := s.GetSeason(ctx, id)
	if err != nil {
		return league.Season{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.StartDate != nil {
		current.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		current.EndDate = *patch.EndDate
	}
	if patch.IsConcluded != nil {
		current.IsConcluded = *patch.IsConcluded
	}
	if patch.NumberOfLeagues != nil {
		current.NumberOfLeagues = *patch.NumberOfLeagues
	}
	if patch.NumberOfMatches != nil {
		current.NumberOfMatches = *patch.NumberOfMatches
	}
	if patch.GoalsScored != nil {
		current.GoalsScored = *patch.GoalsScored
	}
	if err := current.Validate(); err != nil {
		return league.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.seasonRepo.Update(ctx, current)
	if err != nil {
		return league.Season{}, conflictOr(err, fmt.Sprintf("season %q", current.Name))
	}
	if !found {
		return league.Season{}, fmt.Errorf("%w: season=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *LeagueService) DeleteSeason(ctx context.Context, id int64) error {
	found, err := s.seasonRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: season=%d", ErrNotFound, id)
	}
	return nil
}

// ListLeagues returns the leagues of the named season.
func (s *LeagueService) ListLeagues(ctx context.Context, seasonName string) ([]league.League, error) {
	season, err := resolveSeason(ctx, s.seasonRepo, seasonName)
	if err != nil {
		return nil, err
	}
	return s.leagueRepo.ListBySeason(ctx, season.ID)
}

func (s *LeagueService) GetLeague(ctx context.Context, id int64) (league.League, error) {
	item, found, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *LeagueService) checkLeagueRefs(ctx context.Context, l league.League) error {
	if _, found, err := s.nationRepo.GetByID(ctx, l.NationID); err != nil {
		return fmt.Errorf("check league nation: %w", err)
	} else if !found {
		return fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, l.NationID)
	}
	if _, found, err := s.seasonRepo.GetByID(ctx, l.SeasonID); err != nil {
		return fmt.Errorf("check league season: %w", err)
	} else if !found {
		return fmt.Errorf("%w: season %d does not exist", ErrInvalidInput, l.SeasonID)
	}
	return nil
}

func (s *LeagueService) CreateLeague(ctx context.Context, l league.League) (league.League, error) {
	l.Name = strings.TrimSpace(l.Name)
	if err := l.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkLeagueRefs(ctx, l); err != nil {
		return league.League{}, err
	}

	created, err := s.leagueRepo.Create(ctx, l)
	if err != nil {
		return league.League{}, conflictOr(err, fmt.Sprintf("league %q", l.Name))
	}
	return created, nil
}

type LeaguePatch struct {
	Name          *string
	NationID      *int64
	SeasonID      *int64
	TotalTeams    *int
	MatchDay      *int
	TopScorerID   **int64
	MostAssistsID **int64
	IsConcluded   *bool
	ChampionID    **int64
	RunnerUpID    **int64
}

func (s *LeagueService) UpdateLeague(ctx context.Context, id int64, patch LeaguePatch) (league.League, error) {
	current, err := s.GetLeague(ctx, id)
	if err != nil {
		return league.League{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.NationID != nil {
		current.NationID = *patch.NationID
	}
	if patch.SeasonID != nil {
		current.SeasonID = *patch.SeasonID
	}
	if patch.TotalTeams != nil {
		current.TotalTeams = *patch.TotalTeams
	}
	if patch.MatchDay != nil {
		current.MatchDay = *patch.MatchDay
	}
	if patch.TopScorerID != nil {
		current.TopScorerID = *patch.TopScorerID
	}
	if patch.MostAssistsID != nil {
		current.MostAssistsID = *patch.MostAssistsID
	}
	if patch.IsConcluded != nil {
		current.IsConcluded = *patch.IsConcluded
	}
	if patch.ChampionID != nil {
		current.ChampionID = *patch.ChampionID
	}
	if patch.RunnerUpID != nil {
		current.RunnerUpID = *patch.RunnerUpID
	}
	if err := current.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkLeagueRefs(ctx, current); err != nil {
		return league.League{}, err
	}

	found, err := s.leagueRepo.Update(ctx, current)
	if err != nil {
		return league.League{}, conflictOr(err, fmt.Sprintf("league %q", current.Name))
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *LeagueService) DeleteLeague(ctx context.Context, id int64) error {
	found, err := s.leagueRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete league: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: league=%d", ErrNotFound, id)
	}
	return nil
}

// ListTableRows returns the named season's league table rows.
func (s *LeagueService) ListTableRows(ctx context.Context, seasonName string) ([]league.TableRow, error) {
	season, err := resolveSeason(ctx, s.seasonRepo, seasonName)
	if err != nil {
		return nil, err
	}
	return s.tableRepo.ListBySeason(ctx, season.ID)
}

func (s *LeagueService) GetTableRow(ctx context.Context, id int64) (league.TableRow, error) {
	item, found, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return league.TableRow{}, fmt.Errorf("get league table row: %w", err)
	}
	if !found {
		return league.TableRow{}, fmt.Errorf("%w: league table row=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *LeagueService) checkTableRefs(ctx context.Context, r league.TableRow) error {
	if _, found, err := s.leagueRepo.GetByID(ctx, r.LeagueID); err != nil {
		return fmt.Errorf("check table league: %w", err)
	} else if !found {
		return fmt.Errorf("%w: league %d does not exist", ErrInvalidInput, r.LeagueID)
	}
	if _, found, err := s.seasonRepo.GetByID(ctx, r.SeasonID); err != nil {
		return fmt.Errorf("check table season: %w", err)
	} else if !found {
		return fmt.Errorf("%w: season %d does not exist", ErrInvalidInput, r.SeasonID)
	}
	if _, found, err := s.teamRepo.GetByID(ctx, r.TeamID); err != nil {
		return fmt.Errorf("check table team: %w", err)
	} else if !found {
		return fmt.Errorf("%w: team %d does not exist", ErrInvalidInput, r.TeamID)
	}
	return nil
}

func (s *LeagueService) CreateTableRow(ctx context.Context, r league.TableRow) (league.TableRow, error) {
	if err := r.Validate(); err != nil {
		return league.TableRow{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkTableRefs(ctx, r); err != nil {
		return league.TableRow{}, err
	}
	if existing, exists, err := s.tableRepo.GetByTeamAndSeason(ctx, r.TeamID, r.SeasonID); err != nil {
		return league.TableRow{}, fmt.Errorf("check table row: %w", err)
	} else if exists && existing.LeagueID == r.LeagueID {
		return league.TableRow{}, fmt.Errorf("%w: team %d already has a table row in league %d for season %d",
			ErrConflict, r.TeamID, r.LeagueID, r.SeasonID)
	}

	created, err := s.tableRepo.Create(ctx, r)
	if err != nil {
		return league.TableRow{}, conflictOr(err, "league table row")
	}
	return created, nil
}

type TableRowPatch struct {
	Points         *int
	Position       *int
	MatchesPlayed  *int
	MatchesWon     *int
	MatchesDrawn   *int
	MatchesLost    *int
	GoalsScored    *int
	GoalsAgainst   *int
	GoalDifference *int
}

func (s *LeagueService) UpdateTableRow(ctx context.Context, id int64, patch TableRowPatch) (league.TableRow, error) {
	current, err := s.GetTableRow(ctx, id)
	if err != nil {
		return league.TableRow{}, err
	}
	if patch.Points != nil {
		current.Points = *patch.Points
	}
	if patch.Position != nil {
		current.Position = *patch.Position
	}
	if patch.MatchesPlayed != nil {
		current.MatchesPlayed = *patch.MatchesPlayed
	}
	if patch.MatchesWon != nil {
		current.MatchesWon = *patch.MatchesWon
	}
	if patch.MatchesDrawn != nil {
		current.MatchesDrawn = *patch.MatchesDrawn
	}
	if patch.MatchesLost != nil {
		current.MatchesLost = *patch.MatchesLost
	}
	if patch.GoalsScored != nil {
		current.GoalsScored = *patch.GoalsScored
	}
	if patch.GoalsAgainst != nil {
		current.GoalsAgainst = *patch.GoalsAgainst
	}
	if patch.GoalDifference != nil {
		current.GoalDifference = *patch.GoalDifference
	}

	found, err := s.tableRepo.Update(ctx, current)
	if err != nil {
		return league.TableRow{}, fmt.Errorf("update league table row: %w", err)
	}
	if !found {
		return league.TableRow{}, fmt.Errorf("%w: league table row=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *LeagueService) DeleteTableRow(ctx context.Context, id int64) error {
	found, err := s.tableRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete league table row: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: league table row=%d", ErrNotFound, id)
	}
	return nil
}
