package postgres

import (
	"database/sql"
	"time"

	"github.com/goalmaven/goal-maven/internal/domain/player"
)

type playerTableModel struct {
	ID               int64         `db:"id"`
	Name             string        `db:"name"`
	JerseyNumber     int           `db:"jersey_number"`
	DateOfBirth      time.Time     `db:"date_of_birth"`
	CareerStart      time.Time     `db:"career_start"`
	NationID         int64         `db:"nation_id"`
	Height           float64       `db:"height"`
	Weight           float64       `db:"weight"`
	RoleID           int64         `db:"role_id"`
	TotalAppearances int           `db:"total_appearances"`
	TeamID           sql.NullInt64 `db:"team_id"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:               m.ID,
		Name:             m.Name,
		JerseyNumber:     m.JerseyNumber,
		DateOfBirth:      m.DateOfBirth,
		CareerStart:      m.CareerStart,
		NationID:         m.NationID,
		Height:           m.Height,
		Weight:           m.Weight,
		RoleID:           m.RoleID,
		TotalAppearances: m.TotalAppearances,
		TeamID:           int64Ptr(m.TeamID),
	}
}

type playerRoleTableModel struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	ShortName string `db:"short_name"`
}

func (m playerRoleTableModel) toDomain() player.Role {
	return player.Role{ID: m.ID, Name: m.Name, ShortName: m.ShortName}
}
