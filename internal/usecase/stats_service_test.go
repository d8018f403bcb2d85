package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/goalmaven/goal-maven/internal/domain/league"
	"github.com/goalmaven/goal-maven/internal/domain/matchevent"
)

func TestPlayerStatsPartitionsEventTypes(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	goal := r.seedEventType(t, matchevent.TypeGoal)
	penalty := r.seedEventType(t, matchevent.TypePenaltyGoal)
	ownGoal := r.seedEventType(t, matchevent.TypeOwnGoal)
	foul := r.seedEventType(t, matchevent.TypeFoul)
	penaltyFoul := r.seedEventType(t, matchevent.TypePenaltyFoul)
	yellow := r.seedEventType(t, matchevent.TypeYellowCard)

	scorer := r.seedPlayer(t, w, "Vinicius Junior", w.home.ID)
	provider := r.seedPlayer(t, w, "Jude Bellingham", w.home.ID)

	_, match, err := r.fixture.CreateFixture(ctx, validFixture(w))
	if err != nil {
		t.Fatalf("CreateFixture() error = %v", err)
	}

	add := func(typeID int64, minute int, playerID int64, assistedBy *int64) {
		t.Helper()
		if _, err := r.event.CreateEvent(ctx, matchevent.Event{
			EventTypeID:        typeID,
			MatchID:            match.ID,
			PlayerID:           &playerID,
			Minute:             minute,
			AssociatedPlayerID: assistedBy,
		}); err != nil {
			t.Fatalf("CreateEvent() error = %v", err)
		}
	}

	add(goal.ID, 12, scorer.ID, &provider.ID)
	add(goal.ID, 55, scorer.ID, nil)
	add(penalty.ID, 71, scorer.ID, nil)
	add(ownGoal.ID, 80, scorer.ID, nil)
	add(foul.ID, 30, scorer.ID, nil)
	add(penaltyFoul.ID, 70, scorer.ID, nil)
	add(yellow.ID, 70, scorer.ID, nil)

	got, err := r.stats.PlayerStats(ctx, scorer.ID, "2023-2024")
	if err != nil {
		t.Fatalf("PlayerStats() error = %v", err)
	}
	if got.Goals != 3 {
		t.Errorf("goals = %d, want 3 (own goals excluded)", got.Goals)
	}
	if got.OwnGoals != 1 {
		t.Errorf("own goals = %d, want 1", got.OwnGoals)
	}
	if got.Fouls != 2 {
		t.Errorf("fouls = %d, want 2", got.Fouls)
	}
	if got.YellowCards != 1 {
		t.Errorf("yellow cards = %d, want 1", got.YellowCards)
	}
	if got.PlayerName != "Vinicius Junior" || got.SeasonName != "2023-2024" {
		t.Errorf("identity = %q/%q", got.PlayerName, got.SeasonName)
	}

	assists, err := r.stats.PlayerStats(ctx, provider.ID, "2023-2024")
	if err != nil {
		t.Fatalf("PlayerStats() error = %v", err)
	}
	if assists.Assists != 1 {
		t.Errorf("assists = %d, want 1", assists.Assists)
	}
	if assists.Goals != 0 {
		t.Errorf("provider goals = %d, want 0", assists.Goals)
	}

	if _, err := r.seasons.Create(ctx, league.Season{
		Name:      "2024-2025",
		StartDate: date(2024, 8, 16),
		EndDate:   date(2025, 5, 25),
	}); err != nil {
		t.Fatalf("seed season: %v", err)
	}
	blank, err := r.stats.PlayerStats(ctx, scorer.ID, "2024-2025")
	if err != nil {
		t.Fatalf("PlayerStats() error = %v", err)
	}
	if blank.Goals != 0 || blank.OwnGoals != 0 || blank.Fouls != 0 || blank.YellowCards != 0 {
		t.Errorf("season without events = %+v, want all zero counts", blank)
	}
}

func TestPlayerStatsUnknownPlayerOrSeason(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	p := r.seedPlayer(t, w, "Vinicius Junior", w.home.ID)
	ctx := context.Background()

	if _, err := r.stats.PlayerStats(ctx, 999, "2023-2024"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown player error = %v, want ErrNotFound", err)
	}
	if _, err := r.stats.PlayerStats(ctx, p.ID, "1899-1900"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown season error = %v, want ErrNotFound", err)
	}
}

func TestTeamStats(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	ctx := context.Background()

	goal := r.seedEventType(t, matchevent.TypeGoal)
	yellow := r.seedEventType(t, matchevent.TypeYellowCard)

	scorer := r.seedPlayer(t, w, "Vinicius Junior", w.home.ID)
	provider := r.seedPlayer(t, w, "Jude Bellingham", w.home.ID)
	rivalScorer := r.seedPlayer(t, w, "Antoine Griezmann", w.away.ID)

	if _, err := r.tables.Create(ctx, league.TableRow{
		LeagueID: w.league.ID, SeasonID: w.season.ID, TeamID: w.home.ID,
		Points: 29, Position: 1, MatchesPlayed: 11, MatchesWon: 9, MatchesDrawn: 2,
		GoalsScored: 26, GoalsAgainst: 9, GoalDifference: 17,
	}); err != nil {
		t.Fatalf("seed table row: %v", err)
	}

	_, match, err := r.fixture.CreateFixture(ctx, validFixture(w))
	if err != nil {
		t.Fatalf("CreateFixture() error = %v", err)
	}

	add := func(typeID, playerID int64, assistedBy *int64) {
		t.Helper()
		if _, err := r.event.CreateEvent(ctx, matchevent.Event{
			EventTypeID:        typeID,
			MatchID:            match.ID,
			PlayerID:           &playerID,
			Minute:             10,
			AssociatedPlayerID: assistedBy,
		}); err != nil {
			t.Fatalf("CreateEvent() error = %v", err)
		}
	}
	add(goal.ID, scorer.ID, &provider.ID)
	add(goal.ID, scorer.ID, &provider.ID)
	add(goal.ID, provider.ID, nil)
	add(goal.ID, rivalScorer.ID, nil) // other team, must not leak in
	add(yellow.ID, provider.ID, nil)

	got, err := r.stats.TeamStats(ctx, w.home.ID, "2023-2024")
	if err != nil {
		t.Fatalf("TeamStats() error = %v", err)
	}
	if got.Points != 29 || got.Position != 1 {
		t.Errorf("standing = %d pts pos %d, want 29/1", got.Points, got.Position)
	}
	if got.TopScorer == nil || got.TopScorer.PlayerName != "Vinicius Junior" || got.TopScorer.Count != 2 {
		t.Errorf("top scorer = %+v, want Vinicius Junior with 2", got.TopScorer)
	}
	if got.TopAssister == nil || got.TopAssister.PlayerName != "Jude Bellingham" || got.TopAssister.Count != 2 {
		t.Errorf("top assister = %+v, want Jude Bellingham with 2", got.TopAssister)
	}
	if got.MostYellows == nil || got.MostYellows.PlayerName != "Jude Bellingham" {
		t.Errorf("most yellows = %+v, want Jude Bellingham", got.MostYellows)
	}
	if got.MostReds != nil {
		t.Errorf("most reds = %+v, want nil with no red cards", got.MostReds)
	}
}

func TestTeamStatsWithoutStanding(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)

	if _, err := r.stats.TeamStats(context.Background(), w.home.ID, "2023-2024"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("TeamStats() without table row error = %v, want ErrNotFound", err)
	}
}
