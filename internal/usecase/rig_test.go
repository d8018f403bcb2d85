package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/goalmaven/goal-maven/internal/domain/continent"
	"github.com/goalmaven/goal-maven/internal/domain/fixture"
	"github.com/goalmaven/goal-maven/internal/domain/league"
	"github.com/goalmaven/goal-maven/internal/domain/matchevent"
	"github.com/goalmaven/goal-maven/internal/domain/nation"
	"github.com/goalmaven/goal-maven/internal/domain/player"
	"github.com/goalmaven/goal-maven/internal/domain/team"
	"github.com/goalmaven/goal-maven/internal/infrastructure/repository/memory"
	"github.com/goalmaven/goal-maven/internal/platform/token"
)

// rig wires every service over the memory repositories and keeps the repos
// reachable for direct seeding.
type rig struct {
	continents *memory.ContinentRepository
	nations    *memory.NationRepository
	cities     *memory.CityRepository
	stadiums   *memory.StadiumRepository
	teams      *memory.TeamRepository
	managers   *memory.ManagerRepository
	referees   *memory.RefereeRepository
	players    *memory.PlayerRepository
	roles      *memory.PlayerRoleRepository
	seasons    *memory.SeasonRepository
	leagues    *memory.LeagueRepository
	tables     *memory.LeagueTableRepository
	fixtures   *memory.FixtureRepository
	matches    *memory.MatchRepository
	statuses   *memory.MatchStatusRepository
	eventTypes *memory.EventTypeRepository
	locations  *memory.PitchLocationRepository
	events     *memory.MatchEventRepository
	users      *memory.UserRepository
	tokens     *memory.TokenRepository

	geo      *GeoService
	team     *TeamService
	player   *PlayerService
	league   *LeagueService
	fixture  *FixtureService
	event    *EventService
	stats    *StatsService
	accounts *AccountService
}

func newRig() *rig {
	r := &rig{}
	r.continents = memory.NewContinentRepository()
	r.nations = memory.NewNationRepository()
	r.cities = memory.NewCityRepository()
	r.stadiums = memory.NewStadiumRepository()
	r.teams = memory.NewTeamRepository()
	r.managers = memory.NewManagerRepository(r.teams)
	r.referees = memory.NewRefereeRepository()
	r.players = memory.NewPlayerRepository()
	r.roles = memory.NewPlayerRoleRepository()
	r.seasons = memory.NewSeasonRepository()
	r.leagues = memory.NewLeagueRepository()
	r.tables = memory.NewLeagueTableRepository()
	r.fixtures = memory.NewFixtureRepository()
	r.matches = memory.NewMatchRepository(r.fixtures)
	r.statuses = memory.NewMatchStatusRepository()
	r.eventTypes = memory.NewEventTypeRepository()
	r.locations = memory.NewPitchLocationRepository()
	r.events = memory.NewMatchEventRepository(r.eventTypes, r.fixtures, r.players)
	r.users = memory.NewUserRepository()
	r.tokens = memory.NewTokenRepository()

	r.geo = NewGeoService(r.continents, r.nations, r.cities, r.stadiums)
	r.team = NewTeamService(r.teams, r.managers, r.referees, r.stadiums, r.leagues, r.nations)
	r.player = NewPlayerService(r.players, r.roles, r.nations, r.teams)
	r.league = NewLeagueService(r.seasons, r.leagues, r.tables, r.nations, r.teams)
	r.fixture = NewFixtureService(r.fixtures, r.matches, r.statuses, r.seasons, r.leagues, r.teams, r.managers, r.referees, r.stadiums)
	r.event = NewEventService(r.events, r.eventTypes, r.locations, r.matches, r.players)
	r.stats = NewStatsService(r.players, r.teams, r.seasons, r.tables, r.events)
	r.accounts = NewAccountService(r.users, r.tokens, r.nations, r.teams, r.players, token.NewRandomGenerator(), 4)
	return r
}

func continentNamed(name string) continent.Continent {
	return continent.Continent{Name: name}
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// seedWorld builds the minimum graph most scenarios need: a continent, a
// nation, a city, two stadiums, two teams with managers, a referee, a season
// with a league and the Scheduled/Completed statuses.
type world struct {
	nation    nation.Nation
	stadiumA  nation.Stadium
	stadiumB  nation.Stadium
	home      team.Team
	away      team.Team
	referee   team.Referee
	season    league.Season
	league    league.League
	scheduled fixture.Status
	completed fixture.Status
	role      player.Role
}

func (r *rig) seedWorld(t *testing.T) world {
	t.Helper()
	ctx := context.Background()

	cont, err := r.continents.Create(ctx, continent.Continent{Name: "Europe"})
	if err != nil {
		t.Fatalf("seed continent: %v", err)
	}
	nat, err := r.nations.Create(ctx, nation.Nation{Name: "Spain", ContinentID: cont.ID})
	if err != nil {
		t.Fatalf("seed nation: %v", err)
	}
	city, err := r.cities.Create(ctx, nation.City{Name: "Madrid", NationID: nat.ID})
	if err != nil {
		t.Fatalf("seed city: %v", err)
	}
	stadiumA, err := r.stadiums.Create(ctx, nation.Stadium{Name: "Santiago Bernabeu", CityID: city.ID, Capacity: 81044})
	if err != nil {
		t.Fatalf("seed stadium: %v", err)
	}
	stadiumB, err := r.stadiums.Create(ctx, nation.Stadium{Name: "Metropolitano", CityID: city.ID, Capacity: 68456})
	if err != nil {
		t.Fatalf("seed stadium: %v", err)
	}
	season, err := r.seasons.Create(ctx, league.Season{
		Name:      "2023-2024",
		StartDate: date(2023, 8, 11),
		EndDate:   date(2024, 5, 26),
	})
	if err != nil {
		t.Fatalf("seed season: %v", err)
	}
	lg, err := r.leagues.Create(ctx, league.League{Name: "La Liga", NationID: nat.ID, SeasonID: season.ID})
	if err != nil {
		t.Fatalf("seed league: %v", err)
	}
	managerA, err := r.managers.Create(ctx, team.Manager{
		Name: "Carlo Ancelotti", NationID: nat.ID, DateOfBirth: date(1959, 6, 10), CareerStart: date(1995, 7, 1),
	})
	if err != nil {
		t.Fatalf("seed manager: %v", err)
	}
	managerB, err := r.managers.Create(ctx, team.Manager{
		Name: "Diego Simeone", NationID: nat.ID, DateOfBirth: date(1970, 4, 28), CareerStart: date(2006, 2, 1),
	})
	if err != nil {
		t.Fatalf("seed manager: %v", err)
	}
	home, err := r.teams.Create(ctx, team.Team{
		Name: "Real Madrid", EstDate: date(1902, 3, 6), LeagueID: &lg.ID, StadiumID: stadiumA.ID, ManagerID: &managerA.ID,
	})
	if err != nil {
		t.Fatalf("seed team: %v", err)
	}
	away, err := r.teams.Create(ctx, team.Team{
		Name: "Atletico Madrid", EstDate: date(1903, 4, 26), LeagueID: &lg.ID, StadiumID: stadiumB.ID, ManagerID: &managerB.ID,
	})
	if err != nil {
		t.Fatalf("seed team: %v", err)
	}
	referee, err := r.referees.Create(ctx, team.Referee{Name: "Mateu Lahoz", NationID: nat.ID, CareerStart: date(2008, 9, 1)})
	if err != nil {
		t.Fatalf("seed referee: %v", err)
	}
	scheduled, err := r.statuses.Create(ctx, fixture.Status{Name: fixture.StatusScheduled})
	if err != nil {
		t.Fatalf("seed status: %v", err)
	}
	completed, err := r.statuses.Create(ctx, fixture.Status{Name: fixture.StatusCompleted})
	if err != nil {
		t.Fatalf("seed status: %v", err)
	}
	role, err := r.roles.Create(ctx, player.Role{Name: "Striker", ShortName: "ST"})
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}

	return world{
		nation:    nat,
		stadiumA:  stadiumA,
		stadiumB:  stadiumB,
		home:      home,
		away:      away,
		referee:   referee,
		season:    season,
		league:    lg,
		scheduled: scheduled,
		completed: completed,
		role:      role,
	}
}

func (r *rig) seedPlayer(t *testing.T, w world, name string, teamID int64) player.Player {
	t.Helper()
	p, err := r.players.Create(context.Background(), player.Player{
		Name:        name,
		DateOfBirth: date(1995, 1, 1),
		CareerStart: date(2013, 7, 1),
		NationID:    w.nation.ID,
		RoleID:      w.role.ID,
		TeamID:      &teamID,
	})
	if err != nil {
		t.Fatalf("seed player: %v", err)
	}
	return p
}

func (r *rig) seedEventType(t *testing.T, name string) matchevent.EventType {
	t.Helper()
	et, err := r.eventTypes.Create(context.Background(), matchevent.EventType{Name: name})
	if err != nil {
		t.Fatalf("seed event type: %v", err)
	}
	return et
}
