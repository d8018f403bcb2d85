package postgres

import "testing"

func TestMatchesBySeasonQuery(t *testing.T) {
	t.Parallel()

	query, args, err := matchesBySeasonQuery(3)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT matches.* FROM matches" +
		" JOIN fixtures ON fixtures.id = matches.fixture_id" +
		" WHERE fixtures.season_id = $1 ORDER BY matches.id"
	if query != want {
		t.Fatalf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestFixturesBySeasonQueryOrdersByID(t *testing.T) {
	t.Parallel()

	query, args, err := fixturesBySeasonQuery(3)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT * FROM fixtures WHERE season_id = $1 ORDER BY id"
	if query != want {
		t.Fatalf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %v", args)
	}
}
