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

// TeamService manages teams, managers and referees. The team side owns the
// team-manager link; assigning a manager who already runs another club is a
// conflict.
type TeamService struct {
	teamRepo    team.Repository
	managerRepo team.ManagerRepository
	refereeRepo team.RefereeRepository
	stadiumRepo nation.StadiumRepository
	leagueRepo  league.Repository
	nationRepo  nation.Repository
}

func NewTeamService(
	teamRepo team.Repository,
	managerRepo team.ManagerRepository,
	refereeRepo team.RefereeRepository,
	stadiumRepo nation.StadiumRepository,
	leagueRepo league.Repository,
	nationRepo nation.Repository,
) *TeamService {
	return &TeamService{
		teamRepo:    teamRepo,
		managerRepo: managerRepo,
		refereeRepo: refereeRepo,
		stadiumRepo: stadiumRepo,
		leagueRepo:  leagueRepo,
		nationRepo:  nationRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *TeamService) GetTeam(ctx context.Context, id int64) (team.Team, error) {
	item, found, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *TeamService) checkTeamRefs(ctx context.Context, t team.Team, selfID int64) error {
	if _, found, err := s.stadiumRepo.GetByID(ctx, t.StadiumID); err != nil {
		return fmt.Errorf("check team stadium: %w", err)
	} else if !found {
		return fmt.Errorf("%w: stadium %d does not exist", ErrInvalidInput, t.StadiumID)
	}
	if t.LeagueID != nil {
		if _, found, err := s.leagueRepo.GetByID(ctx, *t.LeagueID); err != nil {
			return fmt.Errorf("check team league: %w", err)
		} else if !found {
			return fmt.Errorf("%w: league %d does not exist", ErrInvalidInput, *t.LeagueID)
		}
	}
	if t.ManagerID != nil {
		if _, found, err := s.managerRepo.GetByID(ctx, *t.ManagerID); err != nil {
			return fmt.Errorf("check team manager: %w", err)
		} else if !found {
			return fmt.Errorf("%w: manager %d does not exist", ErrInvalidInput, *t.ManagerID)
		}
		other, taken, err := s.teamRepo.GetByManager(ctx, *t.ManagerID)
		if err != nil {
			return fmt.Errorf("check manager assignment: %w", err)
		}
		if taken && other.ID != selfID {
			return fmt.Errorf("%w: manager %d already manages team %q", ErrConflict, *t.ManagerID, other.Name)
		}
	}
	return nil
}

func (s *TeamService) CreateTeam(ctx context.Context, t team.Team) (team.Team, error) {
	t.Name = strings.TrimSpace(t.Name)
	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, exists, err := s.teamRepo.GetByName(ctx, t.Name); err != nil {
		return team.Team{}, fmt.Errorf("check team name: %w", err)
	} else if exists {
		return team.Team{}, fmt.Errorf("%w: team %q", ErrConflict, t.Name)
	}
	if err := s.checkTeamRefs(ctx, t, 0); err != nil {
		return team.Team{}, err
	}

	created, err := s.teamRepo.Create(ctx, t)
	if err != nil {
		return team.Team{}, conflictOr(err, fmt.Sprintf("team %q", t.Name))
	}
	return created, nil
}

type TeamPatch struct {
	Name      *string
	EstDate   *time.Time
	LeagueID  **int64
	StadiumID *int64
	ManagerID **int64
}

func (s *TeamService) UpdateTeam(ctx context.Context, id int64, patch TeamPatch) (team.Team, error) {
	current, err := s.GetTeam(ctx, id)
	if err != nil {
		return team.Team{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.EstDate != nil {
		current.EstDate = *patch.EstDate
	}
	if patch.LeagueID != nil {
		current.LeagueID = *patch.LeagueID
	}
	if patch.StadiumID != nil {
		current.StadiumID = *patch.StadiumID
	}
	if patch.ManagerID != nil {
		current.ManagerID = *patch.ManagerID
	}
	if err := current.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkTeamRefs(ctx, current, id); err != nil {
		return team.Team{}, err
	}

	found, err := s.teamRepo.Update(ctx, current)
	if err != nil {
		return team.Team{}, conflictOr(err, fmt.Sprintf("team %q", current.Name))
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	found, err := s.teamRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: team=%d", ErrNotFound, id)
	}
	return nil
}

// TeamOfManager resolves the reverse side of the team-manager link.
func (s *TeamService) TeamOfManager(ctx context.Context, managerID int64) (team.Team, bool, error) {
	return s.teamRepo.GetByManager(ctx, managerID)
}

func (s *TeamService) ListManagers(ctx context.Context) ([]team.Manager, error) {
	return s.managerRepo.List(ctx)
}

func (s *TeamService) GetManager(ctx context.Context, id int64) (team.Manager, error) {
	item, found, err := s.managerRepo.GetByID(ctx, id)
	if err != nil {
		return team.Manager{}, fmt.Errorf("get manager: %w", err)
	}
	if !found {
		return team.Manager{}, fmt.Errorf("%w: manager=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *TeamService) CreateManager(ctx context.Context, m team.Manager) (team.Manager, error) {
	m.Name = strings.TrimSpace(m.Name)
	if err := m.Validate(); err != nil {
		return team.Manager{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.nationRepo.GetByID(ctx, m.NationID); err != nil {
		return team.Manager{}, fmt.Errorf("check manager nation: %w", err)
	} else if !found {
		return team.Manager{}, fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, m.NationID)
	}

	created, err := s.managerRepo.Create(ctx, m)
	if err != nil {
		return team.Manager{}, fmt.Errorf("create manager: %w", err)
	}
	return created, nil
}

type ManagerPatch struct {
	Name        *string
	NationID    *int64
	DateOfBirth *time.Time
	CareerStart *time.Time
}

func (s *TeamService) UpdateManager(ctx context.Context, id int64, patch ManagerPatch) (team.Manager, error) {
	current, err := s.GetManager(ctx, id)
	if err != nil {
		return team.Manager{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.NationID != nil {
		current.NationID = *patch.NationID
	}
	if patch.DateOfBirth != nil {
		current.DateOfBirth = *patch.DateOfBirth
	}
	if patch.CareerStart != nil {
		current.CareerStart = *patch.CareerStart
	}
	if err := current.Validate(); err != nil {
		return team.Manager{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.nationRepo.GetByID(ctx, current.NationID); err != nil {
		return team.Manager{}, fmt.Errorf("check manager nation: %w", err)
	} else if !found {
		return team.Manager{}, fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, current.NationID)
	}

	found, err := s.managerRepo.Update(ctx, current)
	if err != nil {
		return team.Manager{}, fmt.Errorf("update manager: %w", err)
	}
	if !found {
		return team.Manager{}, fmt.Errorf("%w: manager=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *TeamService) DeleteManager(ctx context.Context, id int64) error {
	// The team side of the link is released by the database (ON DELETE SET
	// NULL on teams.manager_id).
	found, err := s.managerRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: manager=%d", ErrNotFound, id)
	}
	return nil
}

func (s *TeamService) ListReferees(ctx context.Context) ([]team.Referee, error) {
	return s.refereeRepo.List(ctx)
}

func (s *TeamService) GetReferee(ctx context.Context, id int64) (team.Referee, error) {
	item, found, err := s.refereeRepo.GetByID(ctx, id)
	if err != nil {
		return team.Referee{}, fmt.Errorf("get referee: %w", err)
	}
	if !found {
		return team.Referee{}, fmt.Errorf("%w: referee=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *TeamService) CreateReferee(ctx context.Context, r team.Referee) (team.Referee, error) {
	r.Name = strings.TrimSpace(r.Name)
	if err := r.Validate(); err != nil {
		return team.Referee{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.nationRepo.GetByID(ctx, r.NationID); err != nil {
		return team.Referee{}, fmt.Errorf("check referee nation: %w", err)
	} else if !found {
		return team.Referee{}, fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, r.NationID)
	}

	created, err := s.refereeRepo.Create(ctx, r)
	if err != nil {
		return team.Referee{}, fmt.Errorf("create referee: %w", err)
	}
	return created, nil
}

type RefereePatch struct {
	Name              *string
	NationID          *int64
	CareerStart       *time.Time
	MatchesOfficiated *int
	YellowCardsIssued *int
	RedCardsIssued    *int
}

func (s *TeamService) UpdateReferee(ctx context.Context, id int64, patch RefereePatch) (team.Referee, error) {
	current, err := s.GetReferee(ctx, id)
	if err != nil {
		return team.Referee{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.NationID != nil {
		current.NationID = *patch.NationID
	}
	if patch.CareerStart != nil {
		current.CareerStart = *patch.CareerStart
	}
	if patch.MatchesOfficiated != nil {
		current.MatchesOfficiated = *patch.MatchesOfficiated
	}
	if patch.YellowCardsIssued != nil {
		current.YellowCardsIssued = *patch.YellowCardsIssued
	}
	if patch.RedCardsIssued != nil {
		current.RedCardsIssued = *patch.RedCardsIssued
	}
	if err := current.Validate(); err != nil {
		return team.Referee{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, found, err := s.nationRepo.GetByID(ctx, current.NationID); err != nil {
		return team.Referee{}, fmt.Errorf("check referee nation: %w", err)
	} else if !found {
		return team.Referee{}, fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, current.NationID)
	}

	found, err := s.refereeRepo.Update(ctx, current)
	if err != nil {
		return team.Referee{}, fmt.Errorf("update referee: %w", err)
	}
	if !found {
		return team.Referee{}, fmt.Errorf("%w: referee=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *TeamService) DeleteReferee(ctx context.Context, id int64) error {
	found, err := s.refereeRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete referee: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: referee=%d", ErrNotFound, id)
	}
	return nil
}
