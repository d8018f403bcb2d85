package fixture

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]Fixture, error)
	GetByID(ctx context.Context, id int64) (Fixture, bool, error)
	// ExistsPairing reports whether a fixture for the same
	// (season, league, home, away) combination already exists.
	ExistsPairing(ctx context.Context, seasonID, leagueID, homeTeamID, awayTeamID int64) (bool, error)
	// CreateWithMatch inserts the fixture and its zero-stat match in a single
	// transaction; no fixture may exist without its match.
	CreateWithMatch(ctx context.Context, f Fixture, m Match) (Fixture, Match, error)
	Update(ctx context.Context, f Fixture) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type MatchRepository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	GetByFixture(ctx context.Context, fixtureID int64) (Match, bool, error)
	Update(ctx context.Context, m Match) (bool, error)
}

type StatusRepository interface {
	List(ctx context.Context) ([]Status, error)
	GetByID(ctx context.Context, id int64) (Status, bool, error)
	GetByName(ctx context.Context, name string) (Status, bool, error)
	Create(ctx context.Context, s Status) (Status, error)
	Update(ctx context.Context, s Status) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
