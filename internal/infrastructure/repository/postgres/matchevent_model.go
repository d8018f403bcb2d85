package postgres

import (
	"database/sql"

	"github.com/goalmaven/goal-maven/internal/domain/matchevent"
)

type eventTypeTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (m eventTypeTableModel) toDomain() matchevent.EventType {
	return matchevent.EventType{ID: m.ID, Name: m.Name}
}

type pitchLocationTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (m pitchLocationTableModel) toDomain() matchevent.PitchLocation {
	return matchevent.PitchLocation{ID: m.ID, Name: m.Name}
}

type matchEventTableModel struct {
	ID                 int64         `db:"id"`
	EventTypeID        int64         `db:"event_type_id"`
	MatchID            int64         `db:"match_id"`
	PlayerID           sql.NullInt64 `db:"player_id"`
	Minute             int           `db:"minute"`
	Second             int           `db:"second"`
	IsExtraTime        bool          `db:"is_extra_time"`
	PitchLocationID    sql.NullInt64 `db:"pitch_location_id"`
	AssociatedPlayerID sql.NullInt64 `db:"associated_player_id"`
}

func (m matchEventTableModel) toDomain() matchevent.Event {
	return matchevent.Event{
		ID:                 m.ID,
		EventTypeID:        m.EventTypeID,
		MatchID:            m.MatchID,
		PlayerID:           int64Ptr(m.PlayerID),
		Minute:             m.Minute,
		Second:             m.Second,
		IsExtraTime:        m.IsExtraTime,
		PitchLocationID:    int64Ptr(m.PitchLocationID),
		AssociatedPlayerID: int64Ptr(m.AssociatedPlayerID),
	}
}

type playerCountRowModel struct {
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
	Count      int    `db:"count"`
}

type typeCountRowModel struct {
	TypeName string `db:"type_name"`
	Count    int    `db:"count"`
}
