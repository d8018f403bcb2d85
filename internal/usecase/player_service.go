package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goalmaven/goal-maven/internal/domain/nation"
	"github.com/goalmaven/goal-maven/internal/domain/player"
	"github.com/goalmaven/goal-maven/internal/domain/team"
)

// PlayerService manages players and the player role catalog.
type PlayerService struct {
	playerRepo player.Repository
	roleRepo   player.RoleRepository
	nationRepo nation.Repository
	teamRepo   team.Repository
}

func NewPlayerService(
	playerRepo player.Repository,
	roleRepo player.RoleRepository,
	nationRepo nation.Repository,
	teamRepo team.Repository,
) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		roleRepo:   roleRepo,
		nationRepo: nationRepo,
		teamRepo:   teamRepo,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	return s.playerRepo.List(ctx)
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (player.Player, error) {
	item, found, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) checkPlayerRefs(ctx context.Context, p player.Player) error {
	if _, found, err := s.nationRepo.GetByID(ctx, p.NationID); err != nil {
		return fmt.Errorf("check player nation: %w", err)
	} else if !found {
		return fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, p.NationID)
	}
	if _, found, err := s.roleRepo.GetByID(ctx, p.RoleID); err != nil {
		return fmt.Errorf("check player role: %w", err)
	} else if !found {
		return fmt.Errorf("%w: role %d does not exist", ErrInvalidInput, p.RoleID)
	}
	if p.TeamID != nil {
		if _, found, err := s.teamRepo.GetByID(ctx, *p.TeamID); err != nil {
			return fmt.Errorf("check player team: %w", err)
		} else if !found {
			return fmt.Errorf("%w: team %d does not exist", ErrInvalidInput, *p.TeamID)
		}
	}
	return nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkPlayerRefs(ctx, p); err != nil {
		return player.Player{}, err
	}

	created, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

type PlayerPatch struct {
	Name             *string
	JerseyNumber     *int
	DateOfBirth      *time.Time
	CareerStart      *time.Time
	NationID         *int64
	Height           *float64
	Weight           *float64
	RoleID           *int64
	TotalAppearances *int
	TeamID           **int64
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, patch PlayerPatch) (player.Player, error) {
	current, err := s.GetPlayer(ctx, id)
	if err != nil {
		return player.Player{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.JerseyNumber != nil {
		current.JerseyNumber = *patch.JerseyNumber
	}
	if patch.DateOfBirth != nil {
		current.DateOfBirth = *patch.DateOfBirth
	}
	if patch.CareerStart != nil {
		current.CareerStart = *patch.CareerStart
	}
	if patch.NationID != nil {
		current.NationID = *patch.NationID
	}
	if patch.Height != nil {
		current.Height = *patch.Height
	}
	if patch.Weight != nil {
		current.Weight = *patch.Weight
	}
	if patch.RoleID != nil {
		current.RoleID = *patch.RoleID
	}
	if patch.TotalAppearances != nil {
		current.TotalAppearances = *patch.TotalAppearances
	}
	if patch.TeamID != nil {
		current.TeamID = *patch.TeamID
	}
	if err := current.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkPlayerRefs(ctx, current); err != nil {
		return player.Player{}, err
	}

	found, err := s.playerRepo.Update(ctx, current)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	found, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return nil
}

func (s *PlayerService) ListRoles(ctx context.Context) ([]player.Role, error) {
	return s.roleRepo.List(ctx)
}

func (s *PlayerService) GetRole(ctx context.Context, id int64) (player.Role, error) {
	item, found, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return player.Role{}, fmt.Errorf("get role: %w", err)
	}
	if !found {
		return player.Role{}, fmt.Errorf("%w: role=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) CreateRole(ctx context.Context, r player.Role) (player.Role, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.ShortName = strings.TrimSpace(r.ShortName)
	if err := r.Validate(); err != nil {
		return player.Role{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, exists, err := s.roleRepo.GetByName(ctx, r.Name); err != nil {
		return player.Role{}, fmt.Errorf("check role name: %w", err)
	} else if exists {
		return player.Role{}, fmt.Errorf("%w: role %q", ErrConflict, r.Name)
	}

	created, err := s.roleRepo.Create(ctx, r)
	if err != nil {
		return player.Role{}, conflictOr(err, fmt.Sprintf("role %q", r.Name))
	}
	return created, nil
}

type RolePatch struct {
	Name      *string
	ShortName *string
}

func (s *PlayerService) UpdateRole(ctx context.Context, id int64, patch RolePatch) (player.Role, error) {
	current, err := s.GetRole(ctx, id)
	if err != nil {
		return player.Role{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.ShortName != nil {
		current.ShortName = strings.TrimSpace(*patch.ShortName)
	}
	if err := current.Validate(); err != nil {
		return player.Role{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.roleRepo.Update(ctx, current)
	if err != nil {
		return player.Role{}, conflictOr(err, fmt.Sprintf("role %q", current.Name))
	}
	if !found {
		return player.Role{}, fmt.Errorf("%w: role=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *PlayerService) DeleteRole(ctx context.Context, id int64) error {
	found, err := s.roleRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: role=%d", ErrNotFound, id)
	}
	return nil
}
