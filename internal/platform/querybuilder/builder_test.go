package querybuilder

import "testing"

func TestSelectToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "name").From("continents").
		Where(Eq("name", "Europe")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id, name FROM continents WHERE name = $1 ORDER BY id"
	if query != want {
		t.Fatalf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 1 || args[0] != "Europe" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectJoinGroupByLimit(t *testing.T) {
	t.Parallel()

	query, args, err := Select("p.name", "COUNT(1) AS total").
		From("match_events e").
		Join("players p ON p.id = e.player_id").
		Where(
			Eq("p.team_id", int64(7)),
			In("e.event_type_id", []any{int64(1), int64(2)}),
		).
		GroupBy("p.name").
		OrderBy("total DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT p.name, COUNT(1) AS total FROM match_events e" +
		" JOIN players p ON p.id = e.player_id" +
		" WHERE p.team_id = $1 AND e.event_type_id IN ($2, $3)" +
		" GROUP BY p.name ORDER BY total DESC LIMIT 1"
	if query != want {
		t.Fatalf("unexpected query:\n got %q\nwant %q", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
}

func TestSelectEmptyInNeverMatches(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("players").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "SELECT * FROM players WHERE 1=0" {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestInsertWithReturningSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("continents").
		Columns("name").
		Values("Oceania").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "INSERT INTO continents (name) VALUES ($1) RETURNING id" {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertRowArityMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("nations").
		Columns("name", "continent_id").
		Values("Spain").
		ToSQL()
	if err == nil {
		t.Fatal("expected arity error")
	}
}

func TestUpdateToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Update("fixtures").
		Set("match_status_id", int64(2)).
		Where(Eq("id", int64(10))).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "UPDATE fixtures SET match_status_id = $1 WHERE id = $2" {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteRequiresConditions(t *testing.T) {
	t.Parallel()

	if _, _, err := DeleteFrom("players").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}

	query, args, err := DeleteFrom("players").Where(Eq("id", int64(3))).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "DELETE FROM players WHERE id = $1" {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestExprPlaceholderRewrite(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("seasons").
		Where(Expr("start_date <= ? AND end_date >= ?", "2023-01-01", "2023-01-01")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "SELECT * FROM seasons WHERE start_date <= $1 AND end_date >= $2" {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}
