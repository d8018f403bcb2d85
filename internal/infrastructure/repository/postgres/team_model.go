package postgres

import (
	"database/sql"
	"time"

	"github.com/goalmaven/goal-maven/internal/domain/team"
)

type teamTableModel struct {
	ID        int64         `db:"id"`
	Name      string        `db:"name"`
	EstDate   time.Time     `db:"est_date"`
	LeagueID  sql.NullInt64 `db:"league_id"`
	StadiumID int64         `db:"stadium_id"`
	ManagerID sql.NullInt64 `db:"manager_id"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		EstDate:   m.EstDate,
		LeagueID:  int64Ptr(m.LeagueID),
		StadiumID: m.StadiumID,
		ManagerID: int64Ptr(m.ManagerID),
	}
}

type managerTableModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	NationID    int64     `db:"nation_id"`
	DateOfBirth time.Time `db:"date_of_birth"`
	CareerStart time.Time `db:"career_start"`
}

func (m managerTableModel) toDomain() team.Manager {
	return team.Manager{
		ID:          m.ID,
		Name:        m.Name,
		NationID:    m.NationID,
		DateOfBirth: m.DateOfBirth,
		CareerStart: m.CareerStart,
	}
}

type refereeTableModel struct {
	ID                int64     `db:"id"`
	Name              string    `db:"name"`
	NationID          int64     `db:"nation_id"`
	CareerStart       time.Time `db:"career_start"`
	MatchesOfficiated int       `db:"matches_officiated"`
	YellowCardsIssued int       `db:"yellow_cards_issued"`
	RedCardsIssued    int       `db:"red_cards_issued"`
}

func (m refereeTableModel) toDomain() team.Referee {
	return team.Referee{
		ID:                m.ID,
		Name:              m.Name,
		NationID:          m.NationID,
		CareerStart:       m.CareerStart,
		MatchesOfficiated: m.MatchesOfficiated,
		YellowCardsIssued: m.YellowCardsIssued,
		RedCardsIssued:    m.RedCardsIssued,
	}
}
