package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/goalmaven/goal-maven/internal/domain/league"
	"github.com/goalmaven/goal-maven/internal/domain/team"
)

func TestManagerCanOnlyRunOneTeam(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	// Try to hand the away manager the home team as well.
	if _, err := r.team.UpdateTeam(ctx, w.home.ID, TeamPatch{ManagerID: &w.away.ManagerID}); !errors.Is(err, ErrConflict) {
		t.Fatalf("double assignment error = %v, want ErrConflict", err)
	}

	// Re-assigning a team its own manager is a no-op, not a conflict.
	if _, err := r.team.UpdateTeam(ctx, w.home.ID, TeamPatch{ManagerID: &w.home.ManagerID}); err != nil {
		t.Fatalf("self re-assignment error = %v", err)
	}
}

func TestManagerMoveBetweenTeams(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	// Release the away side first, then the manager is free for the home side.
	var unassigned *int64
	if _, err := r.team.UpdateTeam(ctx, w.away.ID, TeamPatch{ManagerID: &unassigned}); err != nil {
		t.Fatalf("release manager error = %v", err)
	}
	updated, err := r.team.UpdateTeam(ctx, w.home.ID, TeamPatch{ManagerID: &w.away.ManagerID})
	if err != nil {
		t.Fatalf("reassign manager error = %v", err)
	}
	if updated.ManagerID == nil || *updated.ManagerID != *w.away.ManagerID {
		t.Errorf("home manager = %v, want %d", updated.ManagerID, *w.away.ManagerID)
	}

	// The reverse lookup follows the single link.
	owner, found, err := r.team.TeamOfManager(ctx, *w.away.ManagerID)
	if err != nil || !found {
		t.Fatalf("TeamOfManager() = %v found=%v", err, found)
	}
	if owner.ID != w.home.ID {
		t.Errorf("manager's team = %d, want %d", owner.ID, w.home.ID)
	}
}

func TestDeleteManagerReleasesTeam(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	if err := r.team.DeleteManager(ctx, *w.home.ManagerID); err != nil {
		t.Fatalf("DeleteManager() error = %v", err)
	}
	got, err := r.team.GetTeam(ctx, w.home.ID)
	if err != nil {
		t.Fatalf("GetTeam() error = %v", err)
	}
	if got.ManagerID != nil {
		t.Errorf("team manager = %v, want nil after manager delete", *got.ManagerID)
	}
}

func TestCreateTeamDuplicateName(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	before, err := r.team.ListTeams(ctx)
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	_, err = r.team.CreateTeam(ctx, team.Team{
		Name: "Real Madrid", EstDate: date(1902, 3, 6), StadiumID: w.stadiumA.ID,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate team name error = %v, want ErrConflict", err)
	}
	after, err := r.team.ListTeams(ctx)
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("team count changed on rejected create: %d -> %d", len(before), len(after))
	}
}

func TestCreateTableRowDuplicate(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	row := league.TableRow{LeagueID: w.league.ID, SeasonID: w.season.ID, TeamID: w.home.ID}
	if _, err := r.league.CreateTableRow(ctx, row); err != nil {
		t.Fatalf("first CreateTableRow() error = %v", err)
	}
	if _, err := r.league.CreateTableRow(ctx, row); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate CreateTableRow() error = %v, want ErrConflict", err)
	}
	rows, err := r.league.ListTableRows(ctx, "2023-2024")
	if err != nil {
		t.Fatalf("ListTableRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("table rows = %d, want exactly 1", len(rows))
	}
}

func TestGeoConflictAndCascade(t *testing.T) {
	r := newRig()
	r.seedWorld(t)
	ctx := context.Background()

	if _, err := r.geo.CreateContinent(ctx, continentNamed("Europe")); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate continent error = %v, want ErrConflict", err)
	}
	if _, err := r.geo.CreateContinent(ctx, continentNamed("  ")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank continent error = %v, want ErrInvalidInput", err)
	}
}
