package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/goalmaven/goal-maven/internal/infrastructure/repository/memory"
	"github.com/goalmaven/goal-maven/internal/platform/logging"
	"github.com/goalmaven/goal-maven/internal/platform/token"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

type apiRig struct {
	router     http.Handler
	continents *memory.ContinentRepository
	accounts   *usecase.AccountService
}

func newAPIRig(t *testing.T) *apiRig {
	t.Helper()

	continents := memory.NewContinentRepository()
	nations := memory.NewNationRepository()
	cities := memory.NewCityRepository()
	stadiums := memory.NewStadiumRepository()
	teams := memory.NewTeamRepository()
	managers := memory.NewManagerRepository(teams)
	referees := memory.NewRefereeRepository()
	players := memory.NewPlayerRepository()
	roles := memory.NewPlayerRoleRepository()
	seasons := memory.NewSeasonRepository()
	leagues := memory.NewLeagueRepository()
	tables := memory.NewLeagueTableRepository()
	fixtures := memory.NewFixtureRepository()
	matches := memory.NewMatchRepository(fixtures)
	statuses := memory.NewMatchStatusRepository()
	eventTypes := memory.NewEventTypeRepository()
	locations := memory.NewPitchLocationRepository()
	events := memory.NewMatchEventRepository(eventTypes, fixtures, players)
	users := memory.NewUserRepository()
	tokens := memory.NewTokenRepository()

	geo := usecase.NewGeoService(continents, nations, cities, stadiums)
	teamSvc := usecase.NewTeamService(teams, managers, referees, stadiums, leagues, nations)
	playerSvc := usecase.NewPlayerService(players, roles, nations, teams)
	leagueSvc := usecase.NewLeagueService(seasons, leagues, tables, nations, teams)
	fixtureSvc := usecase.NewFixtureService(fixtures, matches, statuses, seasons, leagues, teams, managers, referees, stadiums)
	eventSvc := usecase.NewEventService(events, eventTypes, locations, matches, players)
	statsSvc := usecase.NewStatsService(players, teams, seasons, tables, events)
	accounts := usecase.NewAccountService(users, tokens, nations, teams, players, token.NewRandomGenerator(), 4)

	handler := NewHandler(geo, teamSvc, playerSvc, leagueSvc, fixtureSvc, eventSvc, statsSvc, accounts, logging.NewNop())
	router := NewRouter(handler, accounts, logging.NewNop(), []string{"*"})

	return &apiRig{router: router, continents: continents, accounts: accounts}
}

// staffToken provisions a superuser and returns a bearer token for it.
func (r *apiRig) staffToken(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	if _, err := r.accounts.CreateSuperuser(ctx, "admin@example.com", "swordfish", "admin"); err != nil {
		t.Fatalf("create superuser: %v", err)
	}
	tok, err := r.accounts.IssueToken(ctx, "admin@example.com", "swordfish")
	if err != nil {
		t.Fatalf("issue staff token: %v", err)
	}
	return tok
}

func (r *apiRig) memberToken(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	_, err := r.accounts.Register(ctx, usecase.RegisterInput{
		Email:       "fan@example.com",
		Password:    "swordfish",
		FirstName:   "Flo",
		LastName:    "Fan",
		Username:    "flofan",
		DateOfBirth: date(1990, 6, 15),
	})
	if err != nil {
		t.Fatalf("register member: %v", err)
	}
	tok, err := r.accounts.IssueToken(ctx, "fan@example.com", "swordfish")
	if err != nil {
		t.Fatalf("issue member token: %v", err)
	}
	return tok
}

func (r *apiRig) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload *bytes.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	r.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		APIVersion string         `json:"apiVersion"`
		Data       map[string]any `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v (body %s)", err, rec.Body.String())
	}
	return envelope.Data
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v (body %s)", err, rec.Body.String())
	}
	return envelope.Data
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func idOf(t *testing.T, data map[string]any) int64 {
	t.Helper()
	raw, ok := data["id"].(float64)
	if !ok {
		t.Fatalf("response has no numeric id: %v", data)
	}
	return int64(raw)
}

func TestWritesRequireAuthentication(t *testing.T) {
	rig := newAPIRig(t)

	rec := rig.do(t, http.MethodPost, "/v1/continents", "", map[string]any{"name": "Europe"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	_, found, err := rig.continents.GetByName(context.Background(), "Europe")
	if err != nil {
		t.Fatalf("lookup continent: %v", err)
	}
	if found {
		t.Fatalf("unauthenticated write must not persist")
	}
}

func TestWritesRequireStaff(t *testing.T) {
	rig := newAPIRig(t)
	member := rig.memberToken(t)

	rec := rig.do(t, http.MethodPost, "/v1/continents", member, map[string]any{"name": "Europe"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-staff, got %d", rec.Code)
	}
	if _, found, _ := rig.continents.GetByName(context.Background(), "Europe"); found {
		t.Fatalf("non-staff write must not persist")
	}
}

func TestReadsNeedOnlyAuthentication(t *testing.T) {
	rig := newAPIRig(t)
	staff := rig.staffToken(t)
	member := rig.memberToken(t)

	rec := rig.do(t, http.MethodPost, "/v1/continents", staff, map[string]any{"name": "Europe"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = rig.do(t, http.MethodGet, "/v1/continents", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}

	rec = rig.do(t, http.MethodGet, "/v1/continents", member, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for member read, got %d", rec.Code)
	}
	if items := decodeList(t, rec); len(items) != 1 || items[0]["name"] != "Europe" {
		t.Fatalf("unexpected continent list: %v", items)
	}
}

func TestListProjectsSummaryFields(t *testing.T) {
	rig := newAPIRig(t)
	staff := rig.staffToken(t)

	rec := rig.do(t, http.MethodPost, "/v1/continents", staff, map[string]any{"name": "Europe"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create continent: %d (%s)", rec.Code, rec.Body.String())
	}
	continentID := idOf(t, decodeData(t, rec))

	rec = rig.do(t, http.MethodPost, "/v1/nations", staff, map[string]any{
		"name": "Spain", "continent_id": continentID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create nation: %d (%s)", rec.Code, rec.Body.String())
	}
	nationID := idOf(t, decodeData(t, rec))

	rec = rig.do(t, http.MethodPost, "/v1/player-roles", staff, map[string]any{
		"name": "Striker", "short_name": "ST",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create role: %d (%s)", rec.Code, rec.Body.String())
	}
	roleID := idOf(t, decodeData(t, rec))

	rec = rig.do(t, http.MethodPost, "/v1/players", staff, map[string]any{
		"name":          "Vinicius Junior",
		"jersey_number": 7,
		"date_of_birth": "2000-07-12",
		"career_start":  "2017-05-13",
		"nation_id":     nationID,
		"height":        1.76,
		"weight":        73.0,
		"role_id":       roleID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create player: %d (%s)", rec.Code, rec.Body.String())
	}
	playerID := idOf(t, decodeData(t, rec))

	rec = rig.do(t, http.MethodGet, "/v1/players", staff, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list players: %d", rec.Code)
	}
	items := decodeList(t, rec)
	if len(items) != 1 {
		t.Fatalf("expected 1 player, got %d", len(items))
	}
	if items[0]["name"] != "Vinicius Junior" {
		t.Fatalf("unexpected player row: %v", items[0])
	}
	for _, field := range []string{"height", "weight", "total_appearances", "date_of_birth"} {
		if _, ok := items[0][field]; ok {
			t.Fatalf("list row leaks detail field %q: %v", field, items[0])
		}
	}

	rec = rig.do(t, http.MethodGet, "/v1/players/"+itoa(playerID), staff, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get player: %d", rec.Code)
	}
	detail := decodeData(t, rec)
	if got, _ := detail["height"].(float64); got != 1.76 {
		t.Fatalf("detail height = %v, want 1.76", detail["height"])
	}
	if got, _ := detail["date_of_birth"].(string); got != "2000-07-12" {
		t.Fatalf("detail date_of_birth = %v", detail["date_of_birth"])
	}
}

func TestDeleteReturnsNoContent(t *testing.T) {
	rig := newAPIRig(t)
	staff := rig.staffToken(t)

	rec := rig.do(t, http.MethodPost, "/v1/continents", staff, map[string]any{"name": "Europe"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	id := idOf(t, decodeData(t, rec))

	rec = rig.do(t, http.MethodDelete, "/v1/continents/"+itoa(id), staff, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on delete, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty delete body, got %q", rec.Body.String())
	}

	rec = rig.do(t, http.MethodGet, "/v1/continents/"+itoa(id), staff, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestDirectMatchLifecycleIsForbidden(t *testing.T) {
	rig := newAPIRig(t)
	staff := rig.staffToken(t)

	rec := rig.do(t, http.MethodPost, "/v1/matches", staff, map[string]any{"fixture_id": 1})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on match create, got %d", rec.Code)
	}

	rec = rig.do(t, http.MethodDelete, "/v1/matches/1", staff, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on match delete, got %d", rec.Code)
	}
}

// TestFixtureScenario drives the API end to end: build the world, schedule a
// fixture, complete it, report stats and read back the derived outcome.
func TestFixtureScenario(t *testing.T) {
	rig := newAPIRig(t)
	staff := rig.staffToken(t)

	post := func(path string, body map[string]any) map[string]any {
		t.Helper()
		rec := rig.do(t, http.MethodPost, path, staff, body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("POST %s: expected 201, got %d (%s)", path, rec.Code, rec.Body.String())
		}
		return decodeData(t, rec)
	}

	europe := post("/v1/continents", map[string]any{"name": "Europe"})
	spain := post("/v1/nations", map[string]any{"name": "Spain", "continent_id": idOf(t, europe)})
	madrid := post("/v1/cities", map[string]any{"name": "Madrid", "nation_id": idOf(t, spain)})
	bernabeu := post("/v1/stadiums", map[string]any{"name": "Santiago Bernabeu", "city_id": idOf(t, madrid), "capacity": 81044})
	metropolitano := post("/v1/stadiums", map[string]any{"name": "Metropolitano", "city_id": idOf(t, madrid), "capacity": 70460})

	season := post("/v1/seasons", map[string]any{
		"name":       "2023-2024",
		"start_date": "2023-08-11",
		"end_date":   "2024-05-26",
	})
	laLiga := post("/v1/leagues", map[string]any{
		"name":      "La Liga",
		"nation_id": idOf(t, spain),
		"season_id": idOf(t, season),
	})

	ancelotti := post("/v1/managers", map[string]any{
		"name":          "Carlo Ancelotti",
		"nation_id":     idOf(t, spain),
		"date_of_birth": "1959-06-10",
		"career_start":  "1995-07-01",
	})
	simeone := post("/v1/managers", map[string]any{
		"name":          "Diego Simeone",
		"nation_id":     idOf(t, spain),
		"date_of_birth": "1970-04-28",
		"career_start":  "2006-02-01",
	})

	real := post("/v1/teams", map[string]any{
		"name":       "Real Madrid",
		"est_date":   "1902-03-06",
		"league_id":  idOf(t, laLiga),
		"stadium_id": idOf(t, bernabeu),
		"manager_id": idOf(t, ancelotti),
	})
	atleti := post("/v1/teams", map[string]any{
		"name":       "Atletico Madrid",
		"est_date":   "1903-04-26",
		"league_id":  idOf(t, laLiga),
		"stadium_id": idOf(t, metropolitano),
		"manager_id": idOf(t, simeone),
	})

	referee := post("/v1/referees", map[string]any{
		"name":         "Jose Sanchez",
		"nation_id":    idOf(t, spain),
		"career_start": "2010-08-01",
	})

	post("/v1/match-statuses", map[string]any{"name": "Scheduled"})
	completed := post("/v1/match-statuses", map[string]any{"name": "Completed"})

	created := post("/v1/fixtures", map[string]any{
		"season_id":    idOf(t, season),
		"league_id":    idOf(t, laLiga),
		"match_day":    1,
		"home_team_id": idOf(t, real),
		"away_team_id": idOf(t, atleti),
		"stadium_id":   idOf(t, bernabeu),
		"match_date":   "2023-09-24",
		"kickoff":      "21:00",
		"referee_id":   idOf(t, referee),
	})

	fixtureData, ok := created["fixture"].(map[string]any)
	if !ok {
		t.Fatalf("create fixture response missing fixture: %v", created)
	}
	matchData, ok := created["match"].(map[string]any)
	if !ok {
		t.Fatalf("create fixture response missing match: %v", created)
	}
	if fixtureData["home_manager_name"] != "Carlo Ancelotti" || fixtureData["away_manager_name"] != "Diego Simeone" {
		t.Fatalf("manager snapshots not taken: %v", fixtureData)
	}
	if matchData["result"] != false {
		t.Fatalf("fresh match must carry no result: %v", matchData)
	}
	fixtureID := idOf(t, fixtureData)
	matchID := idOf(t, matchData)

	rec := rig.do(t, http.MethodGet, "/v1/seasons/2023-2024/fixtures", staff, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list fixtures: expected 200, got %d", rec.Code)
	}
	if items := decodeList(t, rec); len(items) != 1 {
		t.Fatalf("expected 1 fixture in season, got %d", len(items))
	}

	// Complete the fixture, then submit the final numbers.
	rec = rig.do(t, http.MethodPatch, "/v1/fixtures/"+itoa(fixtureID), staff, map[string]any{
		"status_id": idOf(t, completed),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("complete fixture: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = rig.do(t, http.MethodPatch, "/v1/matches/"+itoa(matchID), staff, map[string]any{
		"attendance": 78000,
		"home":       map[string]any{"goals": 2, "shots": 14, "shots_on_target": 6},
		"away":       map[string]any{"goals": 1, "shots": 9, "shots_on_target": 3},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update match: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	updated := decodeData(t, rec)
	if updated["result"] != true {
		t.Fatalf("completed match must carry a result: %v", updated)
	}
	if winner, _ := updated["winner_team_id"].(float64); int64(winner) != idOf(t, real) {
		t.Fatalf("expected home side as winner, got %v", updated["winner_team_id"])
	}
	home, _ := updated["home"].(map[string]any)
	if got, _ := home["shots_off_target"].(float64); got != 8 {
		t.Fatalf("expected 8 shots off target, got %v", home["shots_off_target"])
	}
	if got, _ := home["shots_blocked"].(float64); got != 4 {
		t.Fatalf("expected 4 shots blocked, got %v", home["shots_blocked"])
	}

	rec = rig.do(t, http.MethodGet, "/v1/fixtures/"+itoa(fixtureID)+"/match", staff, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get fixture match: expected 200, got %d", rec.Code)
	}
	if byFixture := decodeData(t, rec); idOf(t, byFixture) != matchID {
		t.Fatalf("fixture match lookup mismatch: %v", byFixture)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	rig := newAPIRig(t)
	member := rig.memberToken(t)

	rec := rig.do(t, http.MethodGet, "/v1/users/me", member, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get profile: expected 200, got %d", rec.Code)
	}
	profile := decodeData(t, rec)
	if profile["email"] != "fan@example.com" {
		t.Fatalf("unexpected profile email: %v", profile["email"])
	}

	rec = rig.do(t, http.MethodPatch, "/v1/users/me", member, map[string]any{"first_name": "Florence"})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch profile: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if updated := decodeData(t, rec); updated["first_name"] != "Florence" {
		t.Fatalf("profile patch not applied: %v", updated)
	}

	rec = rig.do(t, http.MethodPost, "/v1/auth/logout", member, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	rec = rig.do(t, http.MethodGet, "/v1/users/me", member, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token must not authenticate, got %d", rec.Code)
	}
}
