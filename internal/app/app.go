package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/goalmaven/goal-maven/internal/config"
	"github.com/goalmaven/goal-maven/internal/infrastructure/repository/memory"
	"github.com/goalmaven/goal-maven/internal/infrastructure/repository/postgres"
	"github.com/goalmaven/goal-maven/internal/interfaces/httpapi"
	"github.com/goalmaven/goal-maven/internal/platform/logging"
	"github.com/goalmaven/goal-maven/internal/platform/token"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

// Services bundles every use case the HTTP layer depends on.
type Services struct {
	Geo      *usecase.GeoService
	Teams    *usecase.TeamService
	Players  *usecase.PlayerService
	Leagues  *usecase.LeagueService
	Fixtures *usecase.FixtureService
	Events   *usecase.EventService
	Stats    *usecase.StatsService
	Accounts *usecase.AccountService
}

// NewHTTPServer wires repositories, services and the router into a server.
// DATABASE_URL=memory selects the in-memory repositories instead of Postgres.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		services Services
		err      error
	)
	if strings.EqualFold(strings.TrimSpace(cfg.DBURL), "memory") {
		logger.Info("storage backend", "driver", "memory")
		services = NewMemoryServices(cfg)
	} else {
		services, err = newPostgresServices(cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	handler := httpapi.NewHandler(
		services.Geo,
		services.Teams,
		services.Players,
		services.Leagues,
		services.Fixtures,
		services.Events,
		services.Stats,
		services.Accounts,
		logger,
	)
	router := httpapi.NewRouter(handler, services.Accounts, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// OpenDB connects to Postgres with OpenTelemetry instrumentation.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithDBSystem("postgresql"),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}

func newPostgresServices(cfg config.Config, logger *logging.Logger) (Services, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return Services{}, err
	}
	logger.Info("storage backend", "driver", "postgres", "database", dbNameFromURL(cfg.DBURL))

	continents := postgres.NewContinentRepository(db)
	nations := postgres.NewNationRepository(db)
	cities := postgres.NewCityRepository(db)
	stadiums := postgres.NewStadiumRepository(db)
	teams := postgres.NewTeamRepository(db)
	managers := postgres.NewManagerRepository(db)
	referees := postgres.NewRefereeRepository(db)
	players := postgres.NewPlayerRepository(db)
	roles := postgres.NewPlayerRoleRepository(db)
	seasons := postgres.NewSeasonRepository(db)
	leagues := postgres.NewLeagueRepository(db)
	tables := postgres.NewLeagueTableRepository(db)
	fixtures := postgres.NewFixtureRepository(db)
	matches := postgres.NewMatchRepository(db)
	statuses := postgres.NewMatchStatusRepository(db)
	eventTypes := postgres.NewEventTypeRepository(db)
	locations := postgres.NewPitchLocationRepository(db)
	events := postgres.NewMatchEventRepository(db)
	users := postgres.NewUserRepository(db)
	tokens := postgres.NewTokenRepository(db)

	return Services{
		Geo:      usecase.NewGeoService(continents, nations, cities, stadiums),
		Teams:    usecase.NewTeamService(teams, managers, referees, stadiums, leagues, nations),
		Players:  usecase.NewPlayerService(players, roles, nations, teams),
		Leagues:  usecase.NewLeagueService(seasons, leagues, tables, nations, teams),
		Fixtures: usecase.NewFixtureService(fixtures, matches, statuses, seasons, leagues, teams, managers, referees, stadiums),
		Events:   usecase.NewEventService(events, eventTypes, locations, matches, players),
		Stats:    usecase.NewStatsService(players, teams, seasons, tables, events),
		Accounts: usecase.NewAccountService(users, tokens, nations, teams, players, token.NewRandomGenerator(), cfg.BcryptCost),
	}, nil
}

// NewMemoryServices wires every service on top of the in-memory repositories.
func NewMemoryServices(cfg config.Config) Services {
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

	return Services{
		Geo:      usecase.NewGeoService(continents, nations, cities, stadiums),
		Teams:    usecase.NewTeamService(teams, managers, referees, stadiums, leagues, nations),
		Players:  usecase.NewPlayerService(players, roles, nations, teams),
		Leagues:  usecase.NewLeagueService(seasons, leagues, tables, nations, teams),
		Fixtures: usecase.NewFixtureService(fixtures, matches, statuses, seasons, leagues, teams, managers, referees, stadiums),
		Events:   usecase.NewEventService(events, eventTypes, locations, matches, players),
		Stats:    usecase.NewStatsService(players, teams, seasons, tables, events),
		Accounts: usecase.NewAccountService(users, tokens, nations, teams, players, token.NewRandomGenerator(), cfg.BcryptCost),
	}
}
