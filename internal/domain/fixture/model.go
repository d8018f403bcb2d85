package fixture

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusPostponed = "Postponed"
	StatusAbandoned = "Abandoned"
)

// Status is a catalog row; Scheduled and Completed are always seeded,
// further statuses may be added through the API.
type Status struct {
	ID   int64
	Name string
}

func (s Status) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("match status name is required")
	}
	return nil
}

// Fixture is a scheduled pairing. The manager names are snapshots taken when
// the fixture is created; later manager changes do not rewrite history.
type Fixture struct {
	ID              int64
	SeasonID        int64
	LeagueID        int64
	MatchDay        int
	HomeTeamID      int64
	AwayTeamID      int64
	HomeManagerName string
	AwayManagerName string
	StadiumID       int64
	MatchDate       time.Time
	Kickoff         string
	RefereeID       int64
	StatusID        int64
}

func (f Fixture) Validate() error {
	if f.SeasonID <= 0 {
		return fmt.Errorf("fixture season is required")
	}
	if f.LeagueID <= 0 {
		return fmt.Errorf("fixture league is required")
	}
	if f.HomeTeamID <= 0 || f.AwayTeamID <= 0 {
		return fmt.Errorf("fixture home and away teams are required")
	}
	if f.HomeTeamID == f.AwayTeamID {
		return fmt.Errorf("fixture teams must differ")
	}
	if f.StadiumID <= 0 {
		return fmt.Errorf("fixture stadium is required")
	}
	if f.MatchDate.IsZero() {
		return fmt.Errorf("fixture date is required")
	}
	if err := ValidateKickoff(f.Kickoff); err != nil {
		return err
	}
	if f.RefereeID <= 0 {
		return fmt.Errorf("fixture referee is required")
	}
	if f.StatusID <= 0 {
		return fmt.Errorf("fixture status is required")
	}
	return nil
}

func ValidateKickoff(value string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("fixture kickoff must be HH:MM: %w", err)
	}
	return nil
}

// SideStats holds one team's numeric statistics for a completed match.
// Pointers stay nil until completion.
type SideStats struct {
	Goals          *int
	Possession     *int
	Shots          *int
	ShotsOnTarget  *int
	ShotsOffTarget *int
	ShotsBlocked   *int
	CornerKicks    *int
	Offsides       *int
	Fouls          *int
	ThrowIns       *int
	YellowCards    *int
	RedCards       *int
}

// Match is the one-to-one result record of a fixture. It is created together
// with the fixture and never through the API directly.
type Match struct {
	ID           int64
	FixtureID    int64
	Attendance   int
	Result       bool
	WinnerTeamID *int64
	ExtraTime    bool
	InjuryTime   int
	Home         SideStats
	Away         SideStats
}

// DeriveShotBreakdown fills the derived shot columns from shots, shots on
// target and goals. It is applied once, when the fixture completes.
func (s *SideStats) DeriveShotBreakdown() {
	if s.Shots != nil && s.ShotsOnTarget != nil {
		off := *s.Shots - *s.ShotsOnTarget
		s.ShotsOffTarget = &off
	}
	if s.ShotsOnTarget != nil && s.Goals != nil {
		blocked := *s.ShotsOnTarget - *s.Goals
		s.ShotsBlocked = &blocked
	}
}
