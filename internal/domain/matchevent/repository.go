package matchevent

import "context"

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id int64) (Event, bool, error)
	Create(ctx context.Context, e Event) (Event, error)
	Update(ctx context.Context, e Event) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// CountsByPlayerAndSeason buckets a player's events by event type name
	// across all matches whose fixture belongs to the season.
	CountsByPlayerAndSeason(ctx context.Context, playerID, seasonID int64) ([]TypeCount, error)
	// AssistCount counts Goal events where the player is the associated
	// player.
	AssistCount(ctx context.Context, playerID, seasonID int64) (int, error)
	// TopForTeam returns the player of the team with the most events of the
	// given type names in the season; found is false when no qualifying event
	// exists.
	TopForTeam(ctx context.Context, teamID, seasonID int64, typeNames []string) (PlayerCount, bool, error)
	// TopAssistsForTeam is TopForTeam for assists: it counts Goal events by
	// the associated player rather than the scorer.
	TopAssistsForTeam(ctx context.Context, teamID, seasonID int64) (PlayerCount, bool, error)
}

type TypeRepository interface {
	List(ctx context.Context) ([]EventType, error)
	GetByID(ctx context.Context, id int64) (EventType, bool, error)
	GetByName(ctx context.Context, name string) (EventType, bool, error)
	Create(ctx context.Context, t EventType) (EventType, error)
	Update(ctx context.Context, t EventType) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type LocationRepository interface {
	List(ctx context.Context) ([]PitchLocation, error)
	GetByID(ctx context.Context, id int64) (PitchLocation, bool, error)
	GetByName(ctx context.Context, name string) (PitchLocation, bool, error)
	Create(ctx context.Context, l PitchLocation) (PitchLocation, error)
	Update(ctx context.Context, l PitchLocation) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
