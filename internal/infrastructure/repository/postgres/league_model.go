package postgres

import (
	"database/sql"
	"time"

	"github.com/goalmaven/goal-maven/internal/domain/league"
)

type seasonTableModel struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	IsConcluded     bool      `db:"is_concluded"`
	NumberOfLeagues int       `db:"number_of_leagues"`
	NumberOfMatches int       `db:"number_of_matches"`
	GoalsScored     int       `db:"goals_scored"`
}

func (m seasonTableModel) toDomain() league.Season {
	return league.Season{
		ID:              m.ID,
		Name:            m.Name,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		IsConcluded:     m.IsConcluded,
		NumberOfLeagues: m.NumberOfLeagues,
		NumberOfMatches: m.NumberOfMatches,
		GoalsScored:     m.GoalsScored,
	}
}

type leagueTableModel struct {
	ID            int64         `db:"id"`
	Name          string        `db:"name"`
	NationID      int64         `db:"nation_id"`
	SeasonID      int64         `db:"season_id"`
	TotalTeams    int           `db:"total_teams"`
	MatchDay      int           `db:"match_day"`
	TopScorerID   sql.NullInt64 `db:"top_scorer_id"`
	MostAssistsID sql.NullInt64 `db:"most_assists_id"`
	IsConcluded   bool          `db:"is_concluded"`
	ChampionID    sql.NullInt64 `db:"champion_id"`
	RunnerUpID    sql.NullInt64 `db:"runner_up_id"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:            m.ID,
		Name:          m.Name,
		NationID:      m.NationID,
		SeasonID:      m.SeasonID,
		TotalTeams:    m.TotalTeams,
		MatchDay:      m.MatchDay,
		TopScorerID:   int64Ptr(m.TopScorerID),
		MostAssistsID: int64Ptr(m.MostAssistsID),
		IsConcluded:   m.IsConcluded,
		ChampionID:    int64Ptr(m.ChampionID),
		RunnerUpID:    int64Ptr(m.RunnerUpID),
	}
}

type leagueTableRowModel struct {
	ID             int64 `db:"id"`
	LeagueID       int64 `db:"league_id"`
	SeasonID       int64 `db:"season_id"`
	TeamID         int64 `db:"team_id"`
	Points         int   `db:"points"`
	Position       int   `db:"position"`
	MatchesPlayed  int   `db:"matches_played"`
	MatchesWon     int   `db:"matches_won"`
	MatchesDrawn   int   `db:"matches_drawn"`
	MatchesLost    int   `db:"matches_lost"`
	GoalsScored    int   `db:"goals_scored"`
	GoalsAgainst   int   `db:"goals_against"`
	GoalDifference int   `db:"goal_difference"`
}

func (m leagueTableRowModel) toDomain() league.TableRow {
	return league.TableRow{
		ID:             m.ID,
		LeagueID:       m.LeagueID,
		SeasonID:       m.SeasonID,
		TeamID:         m.TeamID,
		Points:         m.Points,
		Position:       m.Position,
		MatchesPlayed:  m.MatchesPlayed,
		MatchesWon:     m.MatchesWon,
		MatchesDrawn:   m.MatchesDrawn,
		MatchesLost:    m.MatchesLost,
		GoalsScored:    m.GoalsScored,
		GoalsAgainst:   m.GoalsAgainst,
		GoalDifference: m.GoalDifference,
	}
}
