package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/goalmaven/goal-maven/internal/domain/fixture"
)

func validFixture(w world) fixture.Fixture {
	return fixture.Fixture{
		SeasonID:   w.season.ID,
		LeagueID:   w.league.ID,
		MatchDay:   1,
		HomeTeamID: w.home.ID,
		AwayTeamID: w.away.ID,
		StadiumID:  w.stadiumA.ID,
		MatchDate:  date(2023, 9, 24),
		Kickoff:    "21:00",
		RefereeID:  w.referee.ID,
		StatusID:   w.scheduled.ID,
	}
}

func TestCreateFixturePairsZeroStatMatch(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	created, match, err := r.fixture.CreateFixture(ctx, validFixture(w))
	if err != nil {
		t.Fatalf("CreateFixture() error = %v", err)
	}
	if match.FixtureID != created.ID {
		t.Errorf("match fixture id = %d, want %d", match.FixtureID, created.ID)
	}
	if match.Home.Goals != nil || match.Away.Shots != nil {
		t.Error("paired match must start with no statistics")
	}
	if match.Result {
		t.Error("paired match must start without a result")
	}
	if created.HomeManagerName != "Carlo Ancelotti" || created.AwayManagerName != "Diego Simeone" {
		t.Errorf("manager snapshots = %q/%q", created.HomeManagerName, created.AwayManagerName)
	}

	got, err := r.fixture.GetMatchByFixture(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetMatchByFixture() error = %v", err)
	}
	if got.ID != match.ID {
		t.Errorf("GetMatchByFixture() id = %d, want %d", got.ID, match.ID)
	}
}

func TestCreateFixtureManagerSnapshotSurvivesChange(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	created, _, err := r.fixture.CreateFixture(ctx, validFixture(w))
	if err != nil {
		t.Fatalf("CreateFixture() error = %v", err)
	}

	// Sack the home manager; the fixture keeps the old name.
	if err := r.team.DeleteManager(ctx, *w.home.ManagerID); err != nil {
		t.Fatalf("DeleteManager() error = %v", err)
	}
	got, err := r.fixture.GetFixture(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetFixture() error = %v", err)
	}
	if got.HomeManagerName != "Carlo Ancelotti" {
		t.Errorf("snapshot = %q, want Carlo Ancelotti", got.HomeManagerName)
	}
}

func TestCreateFixtureDuplicatePairing(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	if _, _, err := r.fixture.CreateFixture(ctx, validFixture(w)); err != nil {
		t.Fatalf("first CreateFixture() error = %v", err)
	}
	if _, _, err := r.fixture.CreateFixture(ctx, validFixture(w)); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate pairing error = %v, want ErrConflict", err)
	}

	// The reverse pairing is a different fixture.
	reversed := validFixture(w)
	reversed.HomeTeamID, reversed.AwayTeamID = reversed.AwayTeamID, reversed.HomeTeamID
	reversed.StadiumID = w.stadiumB.ID
	if _, _, err := r.fixture.CreateFixture(ctx, reversed); err != nil {
		t.Fatalf("reverse pairing error = %v, want success", err)
	}
}

func TestCreateFixtureSameTeamTwice(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)

	f := validFixture(w)
	f.AwayTeamID = f.HomeTeamID
	if _, _, err := r.fixture.CreateFixture(context.Background(), f); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("same-team fixture error = %v, want ErrInvalidInput", err)
	}
}

func TestCreateFixtureUnknownReferences(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	f := validFixture(w)
	f.RefereeID = 999
	if _, _, err := r.fixture.CreateFixture(ctx, f); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown referee error = %v, want ErrInvalidInput", err)
	}

	f = validFixture(w)
	f.Kickoff = "9 pm"
	if _, _, err := r.fixture.CreateFixture(ctx, f); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad kickoff error = %v, want ErrInvalidInput", err)
	}
}

func TestCompletedFixtureStatusIsFinal(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	created, _, err := r.fixture.CreateFixture(ctx, validFixture(w))
	if err != nil {
		t.Fatalf("CreateFixture() error = %v", err)
	}
	if _, err := r.fixture.UpdateFixture(ctx, created.ID, FixturePatch{StatusID: &w.completed.ID}); err != nil {
		t.Fatalf("complete fixture error = %v", err)
	}
	if _, err := r.fixture.UpdateFixture(ctx, created.ID, FixturePatch{StatusID: &w.scheduled.ID}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("reopen completed fixture error = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateMatchDerivesOutcome(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	created, match, err := r.fixture.CreateFixture(ctx, validFixture(w))
	if err != nil {
		t.Fatalf("CreateFixture() error = %v", err)
	}
	if _, err := r.fixture.UpdateFixture(ctx, created.ID, FixturePatch{StatusID: &w.completed.ID}); err != nil {
		t.Fatalf("complete fixture error = %v", err)
	}

	intp := func(v int) *int { return &v }
	updated, err := r.fixture.UpdateMatch(ctx, match.ID, MatchPatch{
		Attendance: intp(78321),
		Home:       SideStatsPatch{Goals: intp(2), Shots: intp(14), ShotsOnTarget: intp(6)},
		Away:       SideStatsPatch{Goals: intp(1), Shots: intp(9), ShotsOnTarget: intp(3)},
	})
	if err != nil {
		t.Fatalf("UpdateMatch() error = %v", err)
	}
	if !updated.Result {
		t.Error("completed match must carry a result")
	}
	if updated.WinnerTeamID == nil || *updated.WinnerTeamID != w.home.ID {
		t.Errorf("winner = %v, want home team %d", updated.WinnerTeamID, w.home.ID)
	}
	if updated.Home.ShotsOffTarget == nil || *updated.Home.ShotsOffTarget != 8 {
		t.Errorf("home shots off target = %v, want 8", updated.Home.ShotsOffTarget)
	}
	if updated.Home.ShotsBlocked == nil || *updated.Home.ShotsBlocked != 4 {
		t.Errorf("home shots blocked = %v, want 4", updated.Home.ShotsBlocked)
	}
	if updated.Attendance != 78321 {
		t.Errorf("attendance = %d, want 78321", updated.Attendance)
	}
}

func TestUpdateMatchDrawHasNoWinner(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	created, match, err := r.fixture.CreateFixture(ctx, validFixture(w))
	if err != nil {
		t.Fatalf("CreateFixture() error = %v", err)
	}
	if _, err := r.fixture.UpdateFixture(ctx, created.ID, FixturePatch{StatusID: &w.completed.ID}); err != nil {
		t.Fatalf("complete fixture error = %v", err)
	}

	one := 1
	updated, err := r.fixture.UpdateMatch(ctx, match.ID, MatchPatch{
		Home: SideStatsPatch{Goals: &one},
		Away: SideStatsPatch{Goals: &one},
	})
	if err != nil {
		t.Fatalf("UpdateMatch() error = %v", err)
	}
	if !updated.Result {
		t.Error("a drawn completed match still has a result")
	}
	if updated.WinnerTeamID != nil {
		t.Errorf("winner = %v, want nil on a draw", *updated.WinnerTeamID)
	}
}

func TestDeleteFixtureRemovesMatch(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	created, match, err := r.fixture.CreateFixture(ctx, validFixture(w))
	if err != nil {
		t.Fatalf("CreateFixture() error = %v", err)
	}
	if err := r.fixture.DeleteFixture(ctx, created.ID); err != nil {
		t.Fatalf("DeleteFixture() error = %v", err)
	}
	if _, err := r.fixture.GetMatch(ctx, match.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetMatch() after fixture delete error = %v, want ErrNotFound", err)
	}
}

func TestListFixturesUnknownSeason(t *testing.T) {
	r := newRig()
	r.seedWorld(t)

	if _, err := r.fixture.ListFixtures(context.Background(), "1899-1900"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ListFixtures() with unknown season error = %v, want ErrNotFound", err)
	}
}
