package matchevent

import (
	"fmt"
	"strings"
)

// Event type names used by the aggregation views. These are catalog rows, not
// an enum; anything seeded into event_types is accepted on ingest.
const (
	TypeGoal         = "Goal"
	TypePenaltyGoal  = "Penalty Goal"
	TypeFreeKickGoal = "Free Kick Goal"
	TypeOwnGoal      = "Own Goal"
	TypeFoul         = "Foul"
	TypePenaltyFoul  = "Penalty Foul"
	TypeYellowCard   = "Yellow Card"
	TypeRedCard      = "Red Card"
	TypeShotOnTarget = "Shot On Target"
)

// GoalTypes are the event types counted as goals for a player.
var GoalTypes = []string{TypeGoal, TypePenaltyGoal, TypeFreeKickGoal}

// FoulTypes are the event types counted as fouls committed.
var FoulTypes = []string{TypeFoul, TypePenaltyFoul}

type EventType struct {
	ID   int64
	Name string
}

func (t EventType) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("event type name is required")
	}
	return nil
}

type PitchLocation struct {
	ID   int64
	Name string
}

func (l PitchLocation) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("pitch location name is required")
	}
	return nil
}

// Event is a timestamped in-match occurrence. AssociatedPlayerID names the
// second player involved, e.g. the assist provider on a goal or the fouled
// player on a foul.
type Event struct {
	ID                 int64
	EventTypeID        int64
	MatchID            int64
	PlayerID           *int64
	Minute             int
	Second             int
	IsExtraTime        bool
	PitchLocationID    *int64
	AssociatedPlayerID *int64
}

func (e Event) Validate() error {
	if e.EventTypeID <= 0 {
		return fmt.Errorf("event type is required")
	}
	if e.MatchID <= 0 {
		return fmt.Errorf("event match is required")
	}
	if e.Minute < 0 || e.Second < 0 || e.Second > 59 {
		return fmt.Errorf("event clock is out of range")
	}
	return nil
}

// PlayerCount is an aggregate bucket: how often a named player produced a
// given category of event.
type PlayerCount struct {
	PlayerID   int64
	PlayerName string
	Count      int
}

// TypeCount is an aggregate bucket keyed by event type name.
type TypeCount struct {
	TypeName string
	Count    int
}
