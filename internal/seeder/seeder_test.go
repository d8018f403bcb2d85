package seeder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goalmaven/goal-maven/internal/infrastructure/repository/memory"
	"github.com/goalmaven/goal-maven/internal/platform/logging"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func testRepos() Repositories {
	teams := memory.NewTeamRepository()
	return Repositories{
		Continents: memory.NewContinentRepository(),
		Nations:    memory.NewNationRepository(),
		Cities:     memory.NewCityRepository(),
		Stadiums:   memory.NewStadiumRepository(),
		Managers:   memory.NewManagerRepository(teams),
		Referees:   memory.NewRefereeRepository(),
		Roles:      memory.NewPlayerRoleRepository(),
		Players:    memory.NewPlayerRepository(),
		Teams:      teams,
	}
}

func resultFor(t *testing.T, results []FileResult, file string) FileResult {
	t.Helper()
	for _, r := range results {
		if r.File == file {
			return r
		}
	}
	t.Fatalf("no result for %s", file)
	return FileResult{}
}

func TestRun_SeedsDependentFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "continents.txt", "Europe\nSouth America\n")
	writeFile(t, dir, "nations.txt", "Spain|Europe\nBrazil|South America\n")
	writeFile(t, dir, "cities.txt", "Madrid|Spain\n")
	writeFile(t, dir, "stadiums.txt", "Santiago Bernabeu|Madrid|81044\n")
	writeFile(t, dir, "player_roles.txt", "Goalkeeper|GK\nStriker|ST\n")
	writeFile(t, dir, "players.txt",
		"Thibaut Courtois|1|1992-05-11|2009-07-01|Spain|2.0|96|Goalkeeper|\n")

	repos := testRepos()
	s := New(repos, logging.NewNop(), 2)

	results, err := s.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("run seeder: %v", err)
	}

	if got := resultFor(t, results, "nations.txt"); got.Upserted != 2 || got.Skipped != 0 {
		t.Fatalf("unexpected nations result: %+v", got)
	}
	if got := resultFor(t, results, "players.txt"); got.Upserted != 1 {
		t.Fatalf("unexpected players result: %+v", got)
	}

	stadium, found, err := repos.Stadiums.GetByName(context.Background(), "Santiago Bernabeu")
	if err != nil || !found {
		t.Fatalf("stadium not seeded (found=%t, err=%v)", found, err)
	}
	if stadium.Capacity != 81044 {
		t.Fatalf("unexpected stadium capacity: %d", stadium.Capacity)
	}

	p, found, err := repos.Players.GetByName(context.Background(), "Thibaut Courtois")
	if err != nil || !found {
		t.Fatalf("player not seeded (found=%t, err=%v)", found, err)
	}
	if p.TeamID != nil {
		t.Fatalf("expected free agent, got team %d", *p.TeamID)
	}
}

func TestRun_SkipsRowsWithMissingParent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "continents.txt", "Europe\n")
	writeFile(t, dir, "nations.txt", "Spain|Europe\nNarnia|Atlantis\n")

	s := New(testRepos(), logging.NewNop(), 1)

	results, err := s.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("run seeder: %v", err)
	}

	got := resultFor(t, results, "nations.txt")
	if got.Upserted != 1 || got.Skipped != 1 || got.Failed != 0 {
		t.Fatalf("unexpected nations result: %+v", got)
	}
}

func TestRun_UpsertRefreshesByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "continents.txt", "Europe\n")
	writeFile(t, dir, "nations.txt", "Spain|Europe\n")
	writeFile(t, dir, "cities.txt", "Madrid|Spain\n")
	writeFile(t, dir, "stadiums.txt", "Santiago Bernabeu|Madrid|75000\n")

	repos := testRepos()
	s := New(repos, logging.NewNop(), 1)

	if _, err := s.Run(context.Background(), dir); err != nil {
		t.Fatalf("first run: %v", err)
	}

	writeFile(t, dir, "stadiums.txt", "Santiago Bernabeu|Madrid|81044\n")
	if _, err := s.Run(context.Background(), dir); err != nil {
		t.Fatalf("second run: %v", err)
	}

	all, err := repos.Stadiums.List(context.Background())
	if err != nil {
		t.Fatalf("list stadiums: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 stadium after refresh, got %d", len(all))
	}
	if all[0].Capacity != 81044 {
		t.Fatalf("expected refreshed capacity, got %d", all[0].Capacity)
	}
}

func TestRun_CountsMalformedRowsAsFailed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "continents.txt", "Europe\nEurope|extra|fields\n")

	s := New(testRepos(), logging.NewNop(), 1)

	results, err := s.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("run seeder: %v", err)
	}

	got := resultFor(t, results, "continents.txt")
	if got.Upserted != 1 || got.Failed != 1 {
		t.Fatalf("unexpected continents result: %+v", got)
	}
}
