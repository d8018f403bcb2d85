package player

import (
	"fmt"
	"strings"
	"time"
)

// Role is a catalog entry such as "Goalkeeper"/"GK". Both the full name and
// the short key are unique.
type Role struct {
	ID        int64
	Name      string
	ShortName string
}

func (r Role) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("role name is required")
	}
	if strings.TrimSpace(r.ShortName) == "" {
		return fmt.Errorf("role short name is required")
	}
	return nil
}

type Player struct {
	ID               int64
	Name             string
	JerseyNumber     int
	DateOfBirth      time.Time
	CareerStart      time.Time
	NationID         int64
	Height           float64
	Weight           float64
	RoleID           int64
	TotalAppearances int
	TeamID           *int64
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("player date of birth is required")
	}
	if p.NationID <= 0 {
		return fmt.Errorf("player nation is required")
	}
	if p.RoleID <= 0 {
		return fmt.Errorf("player role is required")
	}
	if p.JerseyNumber < 0 {
		return fmt.Errorf("player jersey number cannot be negative")
	}
	return nil
}
