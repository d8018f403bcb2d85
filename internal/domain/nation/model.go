package nation

import (
	"fmt"
	"strings"
)

// Nation belongs to a continent and anchors cities, stadiums, people and
// leagues.
type Nation struct {
	ID          int64
	Name        string
	ContinentID int64
}

func (n Nation) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("nation name is required")
	}
	if n.ContinentID <= 0 {
		return fmt.Errorf("nation continent is required")
	}
	return nil
}

type City struct {
	ID       int64
	Name     string
	NationID int64
}

func (c City) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("city name is required")
	}
	if c.NationID <= 0 {
		return fmt.Errorf("city nation is required")
	}
	return nil
}

type Stadium struct {
	ID       int64
	Name     string
	CityID   int64
	Capacity int
}

func (s Stadium) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("stadium name is required")
	}
	if s.CityID <= 0 {
		return fmt.Errorf("stadium city is required")
	}
	if s.Capacity < 0 {
		return fmt.Errorf("stadium capacity cannot be negative")
	}
	return nil
}
