package stats

// PlayerSeason aggregates a player's match events for one season. Counts are
// computed at request time from MatchEvent rows; nothing is persisted.
type PlayerSeason struct {
	PlayerID      int64
	PlayerName    string
	SeasonName    string
	Goals         int
	Assists       int
	Fouls         int
	YellowCards   int
	RedCards      int
	ShotsOnTarget int
	OwnGoals      int
}

// TopPerformer names the team player leading one event category in a season.
// A category with no qualifying events yields a nil TopPerformer.
type TopPerformer struct {
	PlayerName string `json:"player_name"`
	Count      int    `json:"count"`
}

// TeamSeason is the league-table row for a (team, season) pair plus the
// per-category top performers.
type TeamSeason struct {
	TeamID         int64
	TeamName       string
	SeasonName     string
	Points         int
	Position       int
	MatchesPlayed  int
	MatchesWon     int
	MatchesDrawn   int
	MatchesLost    int
	GoalsScored    int
	GoalsAgainst   int
	GoalDifference int
	TopScorer      *TopPerformer
	TopAssister    *TopPerformer
	MostYellows    *TopPerformer
	MostReds       *TopPerformer
}
