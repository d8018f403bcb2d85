package team

import (
	"fmt"
	"strings"
	"time"
)

// Team is a football club. ManagerID is the single source of truth for the
// mutual one-to-one with Manager: a manager's team is the reverse lookup, so
// the two sides can never disagree.
type Team struct {
	ID        int64
	Name      string
	EstDate   time.Time
	LeagueID  *int64
	StadiumID int64
	ManagerID *int64
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if t.EstDate.IsZero() {
		return fmt.Errorf("team establishment date is required")
	}
	if t.StadiumID <= 0 {
		return fmt.Errorf("team stadium is required")
	}
	return nil
}

type Manager struct {
	ID          int64
	Name        string
	NationID    int64
	DateOfBirth time.Time
	CareerStart time.Time
}

func (m Manager) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("manager name is required")
	}
	if m.NationID <= 0 {
		return fmt.Errorf("manager nation is required")
	}
	if m.DateOfBirth.IsZero() {
		return fmt.Errorf("manager date of birth is required")
	}
	if m.CareerStart.IsZero() {
		return fmt.Errorf("manager career start is required")
	}
	return nil
}

type Referee struct {
	ID                int64
	Name              string
	NationID          int64
	CareerStart       time.Time
	MatchesOfficiated int
	YellowCardsIssued int
	RedCardsIssued    int
}

func (r Referee) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("referee name is required")
	}
	if r.NationID <= 0 {
		return fmt.Errorf("referee nation is required")
	}
	if r.CareerStart.IsZero() {
		return fmt.Errorf("referee career start is required")
	}
	return nil
}
