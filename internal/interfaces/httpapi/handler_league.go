package httpapi

import (
	"net/http"
	"strings"

	"github.com/goalmaven/goal-maven/internal/domain/league"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

type seasonSummaryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsConcluded bool   `json:"is_concluded"`
}

func seasonToSummaryDTO(s league.Season) seasonSummaryDTO {
	return seasonSummaryDTO{ID: s.ID, Name: s.Name, IsConcluded: s.IsConcluded}
}

type seasonDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	IsConcluded     bool   `json:"is_concluded"`
	NumberOfLeagues int    `json:"number_of_leagues"`
	NumberOfMatches int    `json:"number_of_matches"`
	GoalsScored     int    `json:"goals_scored"`
}

func seasonToDTO(s league.Season) seasonDTO {
	return seasonDTO{
		ID:              s.ID,
		Name:            s.Name,
		StartDate:       formatDate(s.StartDate),
		EndDate:         formatDate(s.EndDate),
		IsConcluded:     s.IsConcluded,
		NumberOfLeagues: s.NumberOfLeagues,
		NumberOfMatches: s.NumberOfMatches,
		GoalsScored:     s.GoalsScored,
	}
}

type leagueSummaryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	NationID    int64  `json:"nation_id"`
	SeasonID    int64  `json:"season_id"`
	IsConcluded bool   `json:"is_concluded"`
	ChampionID  *int64 `json:"champion_id"`
}

func leagueToSummaryDTO(l league.League) leagueSummaryDTO {
	return leagueSummaryDTO{
		ID:          l.ID,
		Name:        l.Name,
		NationID:    l.NationID,
		SeasonID:    l.SeasonID,
		IsConcluded: l.IsConcluded,
		ChampionID:  l.ChampionID,
	}
}

type leagueDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	NationID      int64  `json:"nation_id"`
	SeasonID      int64  `json:"season_id"`
	TotalTeams    int    `json:"total_teams"`
	MatchDay      int    `json:"match_day"`
	TopScorerID   *int64 `json:"top_scorer_id"`
	MostAssistsID *int64 `json:"most_assists_id"`
	IsConcluded   bool   `json:"is_concluded"`
	ChampionID    *int64 `json:"champion_id"`
	RunnerUpID    *int64 `json:"runner_up_id"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:            l.ID,
		Name:          l.Name,
		NationID:      l.NationID,
		SeasonID:      l.SeasonID,
		TotalTeams:    l.TotalTeams,
		MatchDay:      l.MatchDay,
		TopScorerID:   l.TopScorerID,
		MostAssistsID: l.MostAssistsID,
		IsConcluded:   l.IsConcluded,
		ChampionID:    l.ChampionID,
		RunnerUpID:    l.RunnerUpID,
	}
}

type tableRowSummaryDTO struct {
	ID       int64 `json:"id"`
	LeagueID int64 `json:"league_id"`
	SeasonID int64 `json:"season_id"`
	TeamID   int64 `json:"team_id"`
	Position int   `json:"position"`
	Points   int   `json:"points"`
}

func tableRowToSummaryDTO(r league.TableRow) tableRowSummaryDTO {
	return tableRowSummaryDTO{
		ID:       r.ID,
		LeagueID: r.LeagueID,
		SeasonID: r.SeasonID,
		TeamID:   r.TeamID,
		Position: r.Position,
		Points:   r.Points,
	}
}

type tableRowDTO struct {
	ID             int64 `json:"id"`
	LeagueID       int64 `json:"league_id"`
	SeasonID       int64 `json:"season_id"`
	TeamID         int64 `json:"team_id"`
	Points         int   `json:"points"`
	Position       int   `json:"position"`
	MatchesPlayed  int   `json:"matches_played"`
	MatchesWon     int   `json:"matches_won"`
	MatchesDrawn   int   `json:"matches_drawn"`
	MatchesLost    int   `json:"matches_lost"`
	GoalsScored    int   `json:"goals_scored"`
	GoalsAgainst   int   `json:"goals_against"`
	GoalDifference int   `json:"goal_difference"`
}

func tableRowToDTO(r league.TableRow) tableRowDTO {
	return tableRowDTO{
		ID:             r.ID,
		LeagueID:       r.LeagueID,
		SeasonID:       r.SeasonID,
		TeamID:         r.TeamID,
		Points:         r.Points,
		Position:       r.Position,
		MatchesPlayed:  r.MatchesPlayed,
		MatchesWon:     r.MatchesWon,
		MatchesDrawn:   r.MatchesDrawn,
		MatchesLost:    r.MatchesLost,
		GoalsScored:    r.GoalsScored,
		GoalsAgainst:   r.GoalsAgainst,
		GoalDifference: r.GoalDifference,
	}
}

type createSeasonRequest struct {
	Name            string `json:"name" validate:"required,max=50"`
	StartDate       string `json:"start_date" validate:"required"`
	EndDate         string `json:"end_date" validate:"required"`
	IsConcluded     bool   `json:"is_concluded"`
	NumberOfLeagues int    `json:"number_of_leagues" validate:"gte=0"`
	NumberOfMatches int    `json:"number_of_matches" validate:"gte=0"`
	GoalsScored     int    `json:"goals_scored" validate:"gte=0"`
}

type updateSeasonRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=50"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	IsConcluded     *bool   `json:"is_concluded"`
	NumberOfLeagues *int    `json:"number_of_leagues" validate:"omitempty,gte=0"`
	NumberOfMatches *int    `json:"number_of_matches" validate:"omitempty,gte=0"`
	GoalsScored     *int    `json:"goals_scored" validate:"omitempty,gte=0"`
}

type createLeagueRequest struct {
	Name          string `json:"name" validate:"required,max=150"`
	NationID      int64  `json:"nation_id" validate:"required,gt=0"`
	SeasonID      int64  `json:"season_id" validate:"required,gt=0"`
	TotalTeams    int    `json:"total_teams" validate:"gte=0"`
	MatchDay      int    `json:"match_day" validate:"gte=0"`
	TopScorerID   *int64 `json:"top_scorer_id" validate:"omitempty,gt=0"`
	MostAssistsID *int64 `json:"most_assists_id" validate:"omitempty,gt=0"`
	IsConcluded   bool   `json:"is_concluded"`
	ChampionID    *int64 `json:"champion_id" validate:"omitempty,gt=0"`
	RunnerUpID    *int64 `json:"runner_up_id" validate:"omitempty,gt=0"`
}

type updateLeagueRequest struct {
	Name          *string    `json:"name" validate:"omitempty,max=150"`
	NationID      *int64     `json:"nation_id" validate:"omitempty,gt=0"`
	SeasonID      *int64     `json:"season_id" validate:"omitempty,gt=0"`
	TotalTeams    *int       `json:"total_teams" validate:"omitempty,gte=0"`
	MatchDay      *int       `json:"match_day" validate:"omitempty,gte=0"`
	TopScorerID   optionalID `json:"top_scorer_id"`
	MostAssistsID optionalID `json:"most_assists_id"`
	IsConcluded   *bool      `json:"is_concluded"`
	ChampionID    optionalID `json:"champion_id"`
	RunnerUpID    optionalID `json:"runner_up_id"`
}

type createTableRowRequest struct {
	LeagueID       int64 `json:"league_id" validate:"required,gt=0"`
	SeasonID       int64 `json:"season_id" validate:"required,gt=0"`
	TeamID         int64 `json:"team_id" validate:"required,gt=0"`
	Points         int   `json:"points" validate:"gte=0"`
	Position       int   `json:"position" validate:"gte=0"`
	MatchesPlayed  int   `json:"matches_played" validate:"gte=0"`
	MatchesWon     int   `json:"matches_won" validate:"gte=0"`
	MatchesDrawn   int   `json:"matches_drawn" validate:"gte=0"`
	MatchesLost    int   `json:"matches_lost" validate:"gte=0"`
	GoalsScored    int   `json:"goals_scored" validate:"gte=0"`
	GoalsAgainst   int   `json:"goals_against" validate:"gte=0"`
	GoalDifference int   `json:"goal_difference"`
}

type updateTableRowRequest struct {
	Points         *int `json:"points" validate:"omitempty,gte=0"`
	Position       *int `json:"position" validate:"omitempty,gte=0"`
	MatchesPlayed  *int `json:"matches_played" validate:"omitempty,gte=0"`
	MatchesWon     *int `json:"matches_won" validate:"omitempty,gte=0"`
	MatchesDrawn   *int `json:"matches_drawn" validate:"omitempty,gte=0"`
	MatchesLost    *int `json:"matches_lost" validate:"omitempty,gte=0"`
	GoalsScored    *int `json:"goals_scored" validate:"omitempty,gte=0"`
	GoalsAgainst   *int `json:"goals_against" validate:"omitempty,gte=0"`
	GoalDifference *int `json:"goal_difference"`
}

func seasonNameFromPath(r *http.Request) string {
	return strings.TrimSpace(r.PathValue("seasonName"))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	items, err := h.leagueService.ListSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]seasonSummaryDTO, 0, len(items))
	for _, s := range items {
		out = append(out, seasonToSummaryDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	id, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetSeason(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req createSeasonRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.CreateSeason(ctx, league.Season{
		Name:            req.Name,
		StartDate:       startDate,
		EndDate:         endDate,
		IsConcluded:     req.IsConcluded,
		NumberOfLeagues: req.NumberOfLeagues,
		NumberOfMatches: req.NumberOfMatches,
		GoalsScored:     req.GoalsScored,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(item))
}

func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeason")
	defer span.End()

	id, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateSeasonRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startDate, err := parseDatePtr("start_date", req.StartDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endDate, err := parseDatePtr("end_date", req.EndDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.UpdateSeason(ctx, id, usecase.SeasonPatch{
		Name:            req.Name,
		StartDate:       startDate,
		EndDate:         endDate,
		IsConcluded:     req.IsConcluded,
		NumberOfLeagues: req.NumberOfLeagues,
		NumberOfMatches: req.NumberOfMatches,
		GoalsScored:     req.GoalsScored,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update season failed", "season_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeason")
	defer span.End()

	id, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.leagueService.DeleteSeason(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete season failed", "season_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListLeaguesBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaguesBySeason")
	defer span.End()

	seasonName := seasonNameFromPath(r)
	items, err := h.leagueService.ListLeagues(ctx, seasonName)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "season", seasonName, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]leagueSummaryDTO, 0, len(items))
	for _, l := range items {
		out = append(out, leagueToSummaryDTO(l))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	id, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetLeague(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req createLeagueRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.CreateLeague(ctx, league.League{
		Name:          req.Name,
		NationID:      req.NationID,
		SeasonID:      req.SeasonID,
		TotalTeams:    req.TotalTeams,
		MatchDay:      req.MatchDay,
		TopScorerID:   req.TopScorerID,
		MostAssistsID: req.MostAssistsID,
		IsConcluded:   req.IsConcluded,
		ChampionID:    req.ChampionID,
		RunnerUpID:    req.RunnerUpID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(item))
}

func (h *Handler) UpdateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLeague")
	defer span.End()

	id, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateLeagueRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.UpdateLeague(ctx, id, usecase.LeaguePatch{
		Name:          req.Name,
		NationID:      req.NationID,
		SeasonID:      req.SeasonID,
		TotalTeams:    req.TotalTeams,
		MatchDay:      req.MatchDay,
		TopScorerID:   req.TopScorerID.patch(),
		MostAssistsID: req.MostAssistsID.patch(),
		IsConcluded:   req.IsConcluded,
		ChampionID:    req.ChampionID.patch(),
		RunnerUpID:    req.RunnerUpID.patch(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update league failed", "league_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLeague")
	defer span.End()

	id, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.leagueService.DeleteLeague(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete league failed", "league_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListTableRowsBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTableRowsBySeason")
	defer span.End()

	seasonName := seasonNameFromPath(r)
	items, err := h.leagueService.ListTableRows(ctx, seasonName)
	if err != nil {
		h.logger.WarnContext(ctx, "list league tables failed", "season", seasonName, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tableRowSummaryDTO, 0, len(items))
	for _, row := range items {
		out = append(out, tableRowToSummaryDTO(row))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTableRow")
	defer span.End()

	id, err := pathID(r, "rowID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetTableRow(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, tableRowToDTO(item))
}

func (h *Handler) CreateTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTableRow")
	defer span.End()

	var req createTableRowRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.CreateTableRow(ctx, league.TableRow{
		LeagueID:       req.LeagueID,
		SeasonID:       req.SeasonID,
		TeamID:         req.TeamID,
		Points:         req.Points,
		Position:       req.Position,
		MatchesPlayed:  req.MatchesPlayed,
		MatchesWon:     req.MatchesWon,
		MatchesDrawn:   req.MatchesDrawn,
		MatchesLost:    req.MatchesLost,
		GoalsScored:    req.GoalsScored,
		GoalsAgainst:   req.GoalsAgainst,
		GoalDifference: req.GoalDifference,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create league table row failed", "league_id", req.LeagueID, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, tableRowToDTO(item))
}

func (h *Handler) UpdateTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTableRow")
	defer span.End()

	id, err := pathID(r, "rowID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateTableRowRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.UpdateTableRow(ctx, id, usecase.TableRowPatch{
		Points:         req.Points,
		Position:       req.Position,
		MatchesPlayed:  req.MatchesPlayed,
		MatchesWon:     req.MatchesWon,
		MatchesDrawn:   req.MatchesDrawn,
		MatchesLost:    req.MatchesLost,
		GoalsScored:    req.GoalsScored,
		GoalsAgainst:   req.GoalsAgainst,
		GoalDifference: req.GoalDifference,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update league table row failed", "row_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, tableRowToDTO(item))
}

func (h *Handler) DeleteTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTableRow")
	defer span.End()

	id, err := pathID(r, "rowID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.leagueService.DeleteTableRow(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete league table row failed", "row_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
