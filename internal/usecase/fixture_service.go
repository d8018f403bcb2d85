package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goalmaven/goal-maven/internal/domain/fixture"
	"github.com/goalmaven/goal-maven/internal/domain/league"
	"github.com/goalmaven/goal-maven/internal/domain/nation"
	"github.com/goalmaven/goal-maven/internal/domain/team"
)

// FixtureService manages fixtures, their paired match records and the match
// status catalog. A match only ever comes into existence alongside its
// fixture and only ever leaves with it.
type FixtureService struct {
	fixtureRepo fixture.Repository
	matchRepo   fixture.MatchRepository
	statusRepo  fixture.StatusRepository
	seasonRepo  league.SeasonRepository
	leagueRepo  league.Repository
	teamRepo    team.Repository
	managerRepo team.ManagerRepository
	refereeRepo team.RefereeRepository
	stadiumRepo nation.StadiumRepository
}

func NewFixtureService(
	fixtureRepo fixture.Repository,
	matchRepo fixture.MatchRepository,
	statusRepo fixture.StatusRepository,
	seasonRepo league.SeasonRepository,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	managerRepo team.ManagerRepository,
	refereeRepo team.RefereeRepository,
	stadiumRepo nation.StadiumRepository,
) *FixtureService {
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		matchRepo:   matchRepo,
		statusRepo:  statusRepo,
		seasonRepo:  seasonRepo,
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		managerRepo: managerRepo,
		refereeRepo: refereeRepo,
		stadiumRepo: stadiumRepo,
	}
}

func (s *FixtureService) ListFixtures(ctx context.Context, seasonName string) ([]fixture.Fixture, error) {
	season, err := resolveSeason(ctx, s.seasonRepo, seasonName)
	if err != nil {
		return nil, err
	}
	return s.fixtureRepo.ListBySeason(ctx, season.ID)
}

func (s *FixtureService) GetFixture(ctx context.Context, id int64) (fixture.Fixture, error) {
	item, found, err := s.fixtureRepo.GetByID(ctx, id)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture: %w", err)
	}
	if !found {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *FixtureService) checkFixtureRefs(ctx context.Context, f fixture.Fixture) error {
	if _, found, err := s.seasonRepo.GetByID(ctx, f.SeasonID); err != nil {
		return fmt.Errorf("check fixture season: %w", err)
	} else if !found {
		return fmt.Errorf("%w: season %d does not exist", ErrInvalidInput, f.SeasonID)
	}
	if _, found, err := s.leagueRepo.GetByID(ctx, f.LeagueID); err != nil {
		return fmt.Errorf("check fixture league: %w", err)
	} else if !found {
		return fmt.Errorf("%w: league %d does not exist", ErrInvalidInput, f.LeagueID)
	}
	for _, teamID := range []int64{f.HomeTeamID, f.AwayTeamID} {
		if _, found, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return fmt.Errorf("check fixture team: %w", err)
		} else if !found {
			return fmt.Errorf("%w: team %d does not exist", ErrInvalidInput, teamID)
		}
	}
	if _, found, err := s.stadiumRepo.GetByID(ctx, f.StadiumID); err != nil {
		return fmt.Errorf("check fixture stadium: %w", err)
	} else if !found {
		return fmt.Errorf("%w: stadium %d does not exist", ErrInvalidInput, f.StadiumID)
	}
	if _, found, err := s.refereeRepo.GetByID(ctx, f.RefereeID); err != nil {
		return fmt.Errorf("check fixture referee: %w", err)
	} else if !found {
		return fmt.Errorf("%w: referee %d does not exist", ErrInvalidInput, f.RefereeID)
	}
	if _, found, err := s.statusRepo.GetByID(ctx, f.StatusID); err != nil {
		return fmt.Errorf("check fixture status: %w", err)
	} else if !found {
		return fmt.Errorf("%w: match status %d does not exist", ErrInvalidInput, f.StatusID)
	}
	return nil
}

// managerNameOf snapshots the current manager name of a team; a managerless
// team snapshots empty.
func (s *FixtureService) managerNameOf(ctx context.Context, teamID int64) (string, error) {
	t, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil || !found {
		return "", err
	}
	if t.ManagerID == nil {
		return "", nil
	}
	m, found, err := s.managerRepo.GetByID(ctx, *t.ManagerID)
	if err != nil || !found {
		return "", err
	}
	return m.Name, nil
}

// CreateFixture inserts a fixture and its zero-stat match atomically. The
// manager name snapshots are taken here and never rewritten.
func (s *FixtureService) CreateFixture(ctx context.Context, f fixture.Fixture) (fixture.Fixture, fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.CreateFixture")
	defer span.End()

	if f.StatusID == 0 {
		scheduled, found, err := s.statusRepo.GetByName(ctx, fixture.StatusScheduled)
		if err != nil {
			return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("resolve scheduled status: %w", err)
		}
		if !found {
			return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("%w: match status %q is not seeded", ErrInvalidInput, fixture.StatusScheduled)
		}
		f.StatusID = scheduled.ID
	}
	if err := f.Validate(); err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkFixtureRefs(ctx, f); err != nil {
		return fixture.Fixture{}, fixture.Match{}, err
	}

	exists, err := s.fixtureRepo.ExistsPairing(ctx, f.SeasonID, f.LeagueID, f.HomeTeamID, f.AwayTeamID)
	if err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("check fixture pairing: %w", err)
	}
	if exists {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("%w: fixture for this pairing already exists in the season",
			ErrConflict)
	}

	if f.HomeManagerName, err = s.managerNameOf(ctx, f.HomeTeamID); err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("snapshot home manager: %w", err)
	}
	if f.AwayManagerName, err = s.managerNameOf(ctx, f.AwayTeamID); err != nil {
		return fixture.Fixture{}, fixture.Match{}, fmt.Errorf("snapshot away manager: %w", err)
	}

	createdFixture, createdMatch, err := s.fixtureRepo.CreateWithMatch(ctx, f, fixture.Match{})
	if err != nil {
		return fixture.Fixture{}, fixture.Match{}, conflictOr(err, "fixture pairing")
	}
	return createdFixture, createdMatch, nil
}

type FixturePatch struct {
	MatchDay  *int
	StadiumID *int64
	MatchDate *time.Time
	Kickoff   *string
	RefereeID *int64
	StatusID  *int64
}

// UpdateFixture applies a partial update. Teams, league and season are fixed
// at creation; completion is final.
func (s *FixtureService) UpdateFixture(ctx context.Context, id int64, patch FixturePatch) (fixture.Fixture, error) {
	current, err := s.GetFixture(ctx, id)
	if err != nil {
		return fixture.Fixture{}, err
	}

	currentStatus, found, err := s.statusRepo.GetByID(ctx, current.StatusID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("resolve fixture status: %w", err)
	}
	if found && currentStatus.Name == fixture.StatusCompleted &&
		patch.StatusID != nil && *patch.StatusID != current.StatusID {
		return fixture.Fixture{}, fmt.Errorf("%w: a completed fixture cannot change status", ErrInvalidInput)
	}

	if patch.MatchDay != nil {
		current.MatchDay = *patch.MatchDay
	}
	if patch.StadiumID != nil {
		current.StadiumID = *patch.StadiumID
	}
	if patch.MatchDate != nil {
		current.MatchDate = *patch.MatchDate
	}
	if patch.Kickoff != nil {
		current.Kickoff = strings.TrimSpace(*patch.Kickoff)
	}
	if patch.RefereeID != nil {
		current.RefereeID = *patch.RefereeID
	}
	if patch.StatusID != nil {
		current.StatusID = *patch.StatusID
	}
	if err := current.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkFixtureRefs(ctx, current); err != nil {
		return fixture.Fixture{}, err
	}

	ok, err := s.fixtureRepo.Update(ctx, current)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture: %w", err)
	}
	if !ok {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, id)
	}
	return current, nil
}

// DeleteFixture removes the fixture; the paired match goes with it.
func (s *FixtureService) DeleteFixture(ctx context.Context, id int64) error {
	found, err := s.fixtureRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: fixture=%d", ErrNotFound, id)
	}
	return nil
}

func (s *FixtureService) ListMatches(ctx context.Context, seasonName string) ([]fixture.Match, error) {
	season, err := resolveSeason(ctx, s.seasonRepo, seasonName)
	if err != nil {
		return nil, err
	}
	return s.matchRepo.ListBySeason(ctx, season.ID)
}

func (s *FixtureService) GetMatch(ctx context.Context, id int64) (fixture.Match, error) {
	item, found, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return fixture.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return fixture.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *FixtureService) GetMatchByFixture(ctx context.Context, fixtureID int64) (fixture.Match, error) {
	item, found, err := s.matchRepo.GetByFixture(ctx, fixtureID)
	if err != nil {
		return fixture.Match{}, fmt.Errorf("get match by fixture: %w", err)
	}
	if !found {
		return fixture.Match{}, fmt.Errorf("%w: match for fixture=%d", ErrNotFound, fixtureID)
	}
	return item, nil
}

type SideStatsPatch struct {
	Goals         *int
	Possession    *int
	Shots         *int
	ShotsOnTarget *int
	CornerKicks   *int
	Offsides      *int
	Fouls         *int
	ThrowIns      *int
	YellowCards   *int
	RedCards      *int
}

type MatchPatch struct {
	Attendance *int
	ExtraTime  *bool
	InjuryTime *int
	Home       SideStatsPatch
	Away       SideStatsPatch
}

func applySideStats(stats *fixture.SideStats, patch SideStatsPatch) {
	if patch.Goals != nil {
		stats.Goals = patch.Goals
	}
	if patch.Possession != nil {
		stats.Possession = patch.Possession
	}
	if patch.Shots != nil {
		stats.Shots = patch.Shots
	}
	if patch.ShotsOnTarget != nil {
		stats.ShotsOnTarget = patch.ShotsOnTarget
	}
	if patch.CornerKicks != nil {
		stats.CornerKicks = patch.CornerKicks
	}
	if patch.Offsides != nil {
		stats.Offsides = patch.Offsides
	}
	if patch.Fouls != nil {
		stats.Fouls = patch.Fouls
	}
	if patch.ThrowIns != nil {
		stats.ThrowIns = patch.ThrowIns
	}
	if patch.YellowCards != nil {
		stats.YellowCards = patch.YellowCards
	}
	if patch.RedCards != nil {
		stats.RedCards = patch.RedCards
	}
}

// UpdateMatch applies a partial update to a fixture's match record. When the
// owning fixture is completed the derived shot columns and the outcome are
// recomputed from the submitted numbers.
func (s *FixtureService) UpdateMatch(ctx context.Context, id int64, patch MatchPatch) (fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.UpdateMatch")
	defer span.End()

	current, err := s.GetMatch(ctx, id)
	if err != nil {
		return fixture.Match{}, err
	}
	owner, err := s.GetFixture(ctx, current.FixtureID)
	if err != nil {
		return fixture.Match{}, err
	}

	if patch.Attendance != nil {
		current.Attendance = *patch.Attendance
	}
	if patch.ExtraTime != nil {
		current.ExtraTime = *patch.ExtraTime
	}
	if patch.InjuryTime != nil {
		current.InjuryTime = *patch.InjuryTime
	}
	applySideStats(&current.Home, patch.Home)
	applySideStats(&current.Away, patch.Away)

	status, found, err := s.statusRepo.GetByID(ctx, owner.StatusID)
	if err != nil {
		return fixture.Match{}, fmt.Errorf("resolve fixture status: %w", err)
	}
	if found && status.Name == fixture.StatusCompleted {
		current.Home.DeriveShotBreakdown()
		current.Away.DeriveShotBreakdown()
		if current.Home.Goals != nil && current.Away.Goals != nil {
			current.Result = true
			switch {
			case *current.Home.Goals > *current.Away.Goals:
				winner := owner.HomeTeamID
				current.WinnerTeamID = &winner
			case *current.Away.Goals > *current.Home.Goals:
				winner := owner.AwayTeamID
				current.WinnerTeamID = &winner
			default:
				current.WinnerTeamID = nil
			}
		}
	}

	ok, err := s.matchRepo.Update(ctx, current)
	if err != nil {
		return fixture.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !ok {
		return fixture.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *FixtureService) ListStatuses(ctx context.Context) ([]fixture.Status, error) {
	return s.statusRepo.List(ctx)
}

func (s *FixtureService) GetStatus(ctx context.Context, id int64) (fixture.Status, error) {
	item, found, err := s.statusRepo.GetByID(ctx, id)
	if err != nil {
		return fixture.Status{}, fmt.Errorf("get match status: %w", err)
	}
	if !found {
		return fixture.Status{}, fmt.Errorf("%w: match status=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *FixtureService) CreateStatus(ctx context.Context, st fixture.Status) (fixture.Status, error) {
	st.Name = strings.TrimSpace(st.Name)
	if err := st.Validate(); err != nil {
		return fixture.Status{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, exists, err := s.statusRepo.GetByName(ctx, st.Name); err != nil {
		return fixture.Status{}, fmt.Errorf("check match status name: %w", err)
	} else if exists {
		return fixture.Status{}, fmt.Errorf("%w: match status %q", ErrConflict, st.Name)
	}

	created, err := s.statusRepo.Create(ctx, st)
	if err != nil {
		return fixture.Status{}, conflictOr(err, fmt.Sprintf("match status %q", st.Name))
	}
	return created, nil
}

type StatusPatch struct {
	Name *string
}

func (s *FixtureService) UpdateStatus(ctx context.Context, id int64, patch StatusPatch) (fixture.Status, error) {
	current, err := s.GetStatus(ctx, id)
	if err != nil {
		return fixture.Status{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if err := current.Validate(); err != nil {
		return fixture.Status{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.statusRepo.Update(ctx, current)
	if err != nil {
		return fixture.Status{}, conflictOr(err, fmt.Sprintf("match status %q", current.Name))
	}
	if !found {
		return fixture.Status{}, fmt.Errorf("%w: match status=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *FixtureService) DeleteStatus(ctx context.Context, id int64) error {
	found, err := s.statusRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete match status: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: match status=%d", ErrNotFound, id)
	}
	return nil
}
