package league

import (
	"fmt"
	"strings"
	"time"
)

type Season struct {
	ID              int64
	Name            string
	StartDate       time.Time
	EndDate         time.Time
	IsConcluded     bool
	NumberOfLeagues int
	NumberOfMatches int
	GoalsScored     int
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return fmt.Errorf("season start and end dates are required")
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("season end date cannot precede start date")
	}
	return nil
}

type League struct {
	ID            int64
	Name          string
	NationID      int64
	SeasonID      int64
	TotalTeams    int
	MatchDay      int
	TopScorerID   *int64
	MostAssistsID *int64
	IsConcluded   bool
	ChampionID    *int64
	RunnerUpID    *int64
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if l.NationID <= 0 {
		return fmt.Errorf("league nation is required")
	}
	if l.SeasonID <= 0 {
		return fmt.Errorf("league season is required")
	}
	return nil
}

// TableRow is one team's standing in a league for a season. The
// (league, season, team) combination is unique.
type TableRow struct {
	ID             int64
	LeagueID       int64
	SeasonID       int64
	TeamID         int64
	Points         int
	Position       int
	MatchesPlayed  int
	MatchesWon     int
	MatchesDrawn   int
	MatchesLost    int
	GoalsScored    int
	GoalsAgainst   int
	GoalDifference int
}

func (r TableRow) Validate() error {
	if r.LeagueID <= 0 || r.SeasonID <= 0 || r.TeamID <= 0 {
		return fmt.Errorf("league table row requires league, season and team")
	}
	return nil
}
