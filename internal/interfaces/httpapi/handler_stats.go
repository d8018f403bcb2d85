package httpapi

import (
	"net/http"
	"strings"

	"github.com/goalmaven/goal-maven/internal/domain/stats"
)

type playerSeasonStatsDTO struct {
	PlayerID      int64  `json:"player_id"`
	PlayerName    string `json:"player_name"`
	SeasonName    string `json:"season_name"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	Fouls         int    `json:"fouls"`
	YellowCards   int    `json:"yellow_cards"`
	RedCards      int    `json:"red_cards"`
	ShotsOnTarget int    `json:"shots_on_target"`
	OwnGoals      int    `json:"own_goals"`
}

func playerSeasonStatsToDTO(s stats.PlayerSeason) playerSeasonStatsDTO {
	return playerSeasonStatsDTO{
		PlayerID:      s.PlayerID,
		PlayerName:    s.PlayerName,
		SeasonName:    s.SeasonName,
		Goals:         s.Goals,
		Assists:       s.Assists,
		Fouls:         s.Fouls,
		YellowCards:   s.YellowCards,
		RedCards:      s.RedCards,
		ShotsOnTarget: s.ShotsOnTarget,
		OwnGoals:      s.OwnGoals,
	}
}

type teamSeasonStatsDTO struct {
	TeamID         int64               `json:"team_id"`
	TeamName       string              `json:"team_name"`
	SeasonName     string              `json:"season_name"`
	Points         int                 `json:"points"`
	Position       int                 `json:"position"`
	MatchesPlayed  int                 `json:"matches_played"`
	MatchesWon     int                 `json:"matches_won"`
	MatchesDrawn   int                 `json:"matches_drawn"`
	MatchesLost    int                 `json:"matches_lost"`
	GoalsScored    int                 `json:"goals_scored"`
	GoalsAgainst   int                 `json:"goals_against"`
	GoalDifference int                 `json:"goal_difference"`
	TopScorer      *stats.TopPerformer `json:"top_scorer"`
	TopAssister    *stats.TopPerformer `json:"top_assister"`
	MostYellows    *stats.TopPerformer `json:"most_yellows"`
	MostReds       *stats.TopPerformer `json:"most_reds"`
}

func teamSeasonStatsToDTO(s stats.TeamSeason) teamSeasonStatsDTO {
	return teamSeasonStatsDTO{
		TeamID:         s.TeamID,
		TeamName:       s.TeamName,
		SeasonName:     s.SeasonName,
		Points:         s.Points,
		Position:       s.Position,
		MatchesPlayed:  s.MatchesPlayed,
		MatchesWon:     s.MatchesWon,
		MatchesDrawn:   s.MatchesDrawn,
		MatchesLost:    s.MatchesLost,
		GoalsScored:    s.GoalsScored,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		TopScorer:      s.TopScorer,
		TopAssister:    s.TopAssister,
		MostYellows:    s.MostYellows,
		MostReds:       s.MostReds,
	}
}

func (h *Handler) GetPlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSeasonStats")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonName := strings.TrimSpace(r.PathValue("seasonName"))

	item, err := h.statsService.PlayerStats(ctx, id, seasonName)
	if err != nil {
		h.logger.WarnContext(ctx, "player season stats failed", "player_id", id, "season", seasonName, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerSeasonStatsToDTO(item))
}

func (h *Handler) GetTeamSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSeasonStats")
	defer span.End()

	id, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonName := strings.TrimSpace(r.PathValue("seasonName"))

	item, err := h.statsService.TeamStats(ctx, id, seasonName)
	if err != nil {
		h.logger.WarnContext(ctx, "team season stats failed", "team_id", id, "season", seasonName, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamSeasonStatsToDTO(item))
}
