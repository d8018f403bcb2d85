package postgres

import (
	"testing"

	"github.com/goalmaven/goal-maven/internal/domain/matchevent"
)

func TestPlayerEventCountsQuery(t *testing.T) {
	t.Parallel()

	query, args, err := playerEventCountsQuery(7, 3)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT event_types.name AS type_name, COUNT(1) AS count FROM match_events" +
		" JOIN event_types ON event_types.id = match_events.event_type_id" +
		" JOIN matches ON matches.id = match_events.match_id" +
		" JOIN fixtures ON fixtures.id = matches.fixture_id" +
		" WHERE match_events.player_id = $1 AND fixtures.season_id = $2" +
		" GROUP BY event_types.name ORDER BY event_types.name"
	if query != want {
		t.Fatalf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 2 || args[0] != int64(7) || args[1] != int64(3) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestAssistCountQuery(t *testing.T) {
	t.Parallel()

	query, args, err := assistCountQuery(7, 3)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT COUNT(1) FROM match_events" +
		" JOIN event_types ON event_types.id = match_events.event_type_id" +
		" JOIN matches ON matches.id = match_events.match_id" +
		" JOIN fixtures ON fixtures.id = matches.fixture_id" +
		" WHERE match_events.associated_player_id = $1 AND fixtures.season_id = $2" +
		" AND event_types.name IN ($3, $4, $5)"
	if query != want {
		t.Fatalf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %v", args)
	}
}

func TestTopPlayerQuery(t *testing.T) {
	t.Parallel()

	query, args, err := topPlayerQuery(5, 3, matchevent.GoalTypes, "player_id")
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT players.id AS player_id, players.name AS player_name, COUNT(1) AS count FROM match_events" +
		" JOIN event_types ON event_types.id = match_events.event_type_id" +
		" JOIN matches ON matches.id = match_events.match_id" +
		" JOIN fixtures ON fixtures.id = matches.fixture_id" +
		" JOIN players ON players.id = match_events.player_id" +
		" WHERE fixtures.season_id = $1 AND players.team_id = $2" +
		" AND event_types.name IN ($3, $4, $5)" +
		" GROUP BY players.id, players.name ORDER BY count DESC, players.id LIMIT 1"
	if query != want {
		t.Fatalf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %v", args)
	}
}
