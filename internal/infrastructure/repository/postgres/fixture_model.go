package postgres

import (
	"database/sql"
	"time"

	"github.com/goalmaven/goal-maven/internal/domain/fixture"
)

type matchStatusTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (m matchStatusTableModel) toDomain() fixture.Status {
	return fixture.Status{ID: m.ID, Name: m.Name}
}

type fixtureTableModel struct {
	ID              int64     `db:"id"`
	SeasonID        int64     `db:"season_id"`
	LeagueID        int64     `db:"league_id"`
	MatchDay        int       `db:"match_day"`
	HomeTeamID      int64     `db:"home_team_id"`
	AwayTeamID      int64     `db:"away_team_id"`
	HomeManagerName string    `db:"home_manager_name"`
	AwayManagerName string    `db:"away_manager_name"`
	StadiumID       int64     `db:"stadium_id"`
	MatchDate       time.Time `db:"match_date"`
	Kickoff         string    `db:"kickoff"`
	RefereeID       int64     `db:"referee_id"`
	StatusID        int64     `db:"status_id"`
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:              m.ID,
		SeasonID:        m.SeasonID,
		LeagueID:        m.LeagueID,
		MatchDay:        m.MatchDay,
		HomeTeamID:      m.HomeTeamID,
		AwayTeamID:      m.AwayTeamID,
		HomeManagerName: m.HomeManagerName,
		AwayManagerName: m.AwayManagerName,
		StadiumID:       m.StadiumID,
		MatchDate:       m.MatchDate,
		Kickoff:         m.Kickoff,
		RefereeID:       m.RefereeID,
		StatusID:        m.StatusID,
	}
}

type matchTableModel struct {
	ID           int64         `db:"id"`
	FixtureID    int64         `db:"fixture_id"`
	Attendance   int           `db:"attendance"`
	Result       bool          `db:"result"`
	WinnerTeamID sql.NullInt64 `db:"winner_team_id"`
	ExtraTime    bool          `db:"extra_time"`
	InjuryTime   int           `db:"injury_time"`

	HomeGoals          sql.NullInt64 `db:"home_goals"`
	HomePossession     sql.NullInt64 `db:"home_possession"`
	HomeShots          sql.NullInt64 `db:"home_shots"`
	HomeShotsOnTarget  sql.NullInt64 `db:"home_shots_on_target"`
	HomeShotsOffTarget sql.NullInt64 `db:"home_shots_off_target"`
	HomeShotsBlocked   sql.NullInt64 `db:"home_shots_blocked"`
	HomeCornerKicks    sql.NullInt64 `db:"home_corner_kicks"`
	HomeOffsides       sql.NullInt64 `db:"home_offsides"`
	HomeFouls          sql.NullInt64 `db:"home_fouls"`
	HomeThrowIns       sql.NullInt64 `db:"home_throw_ins"`
	HomeYellowCards    sql.NullInt64 `db:"home_yellow_cards"`
	HomeRedCards       sql.NullInt64 `db:"home_red_cards"`

	AwayGoals          sql.NullInt64 `db:"away_goals"`
	AwayPossession     sql.NullInt64 `db:"away_possession"`
	AwayShots          sql.NullInt64 `db:"away_shots"`
	AwayShotsOnTarget  sql.NullInt64 `db:"away_shots_on_target"`
	AwayShotsOffTarget sql.NullInt64 `db:"away_shots_off_target"`
	AwayShotsBlocked   sql.NullInt64 `db:"away_shots_blocked"`
	AwayCornerKicks    sql.NullInt64 `db:"away_corner_kicks"`
	AwayOffsides       sql.NullInt64 `db:"away_offsides"`
	AwayFouls          sql.NullInt64 `db:"away_fouls"`
	AwayThrowIns       sql.NullInt64 `db:"away_throw_ins"`
	AwayYellowCards    sql.NullInt64 `db:"away_yellow_cards"`
	AwayRedCards       sql.NullInt64 `db:"away_red_cards"`
}

func (m matchTableModel) toDomain() fixture.Match {
	return fixture.Match{
		ID:           m.ID,
		FixtureID:    m.FixtureID,
		Attendance:   m.Attendance,
		Result:       m.Result,
		WinnerTeamID: int64Ptr(m.WinnerTeamID),
		ExtraTime:    m.ExtraTime,
		InjuryTime:   m.InjuryTime,
		Home: fixture.SideStats{
			Goals:          intPtr(m.HomeGoals),
			Possession:     intPtr(m.HomePossession),
			Shots:          intPtr(m.HomeShots),
			ShotsOnTarget:  intPtr(m.HomeShotsOnTarget),
			ShotsOffTarget: intPtr(m.HomeShotsOffTarget),
			ShotsBlocked:   intPtr(m.HomeShotsBlocked),
			CornerKicks:    intPtr(m.HomeCornerKicks),
			Offsides:       intPtr(m.HomeOffsides),
			Fouls:          intPtr(m.HomeFouls),
			ThrowIns:       intPtr(m.HomeThrowIns),
			YellowCards:    intPtr(m.HomeYellowCards),
			RedCards:       intPtr(m.HomeRedCards),
		},
		Away: fixture.SideStats{
			Goals:          intPtr(m.AwayGoals),
			Possession:     intPtr(m.AwayPossession),
			Shots:          intPtr(m.AwayShots),
			ShotsOnTarget:  intPtr(m.AwayShotsOnTarget),
			ShotsOffTarget: intPtr(m.AwayShotsOffTarget),
			ShotsBlocked:   intPtr(m.AwayShotsBlocked),
			CornerKicks:    intPtr(m.AwayCornerKicks),
			Offsides:       intPtr(m.AwayOffsides),
			Fouls:          intPtr(m.AwayFouls),
			ThrowIns:       intPtr(m.AwayThrowIns),
			YellowCards:    intPtr(m.AwayYellowCards),
			RedCards:       intPtr(m.AwayRedCards),
		},
	}
}

// sideColumns returns the stat column names for one side in insert order.
func sideColumns(prefix string) []string {
	return []string{
		prefix + "_goals",
		prefix + "_possession",
		prefix + "_shots",
		prefix + "_shots_on_target",
		prefix + "_shots_off_target",
		prefix + "_shots_blocked",
		prefix + "_corner_kicks",
		prefix + "_offsides",
		prefix + "_fouls",
		prefix + "_throw_ins",
		prefix + "_yellow_cards",
		prefix + "_red_cards",
	}
}

func sideValues(s fixture.SideStats) []any {
	return []any{
		nullInt(s.Goals),
		nullInt(s.Possession),
		nullInt(s.Shots),
		nullInt(s.ShotsOnTarget),
		nullInt(s.ShotsOffTarget),
		nullInt(s.ShotsBlocked),
		nullInt(s.CornerKicks),
		nullInt(s.Offsides),
		nullInt(s.Fouls),
		nullInt(s.ThrowIns),
		nullInt(s.YellowCards),
		nullInt(s.RedCards),
	}
}
