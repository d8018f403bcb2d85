package httpapi

import (
	"fmt"
	"net/http"

	"github.com/goalmaven/goal-maven/internal/domain/fixture"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

type matchStatusDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func matchStatusToDTO(s fixture.Status) matchStatusDTO {
	return matchStatusDTO{ID: s.ID, Name: s.Name}
}

type fixtureSummaryDTO struct {
	ID         int64  `json:"id"`
	SeasonID   int64  `json:"season_id"`
	LeagueID   int64  `json:"league_id"`
	MatchDay   int    `json:"match_day"`
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	MatchDate  string `json:"match_date"`
	Kickoff    string `json:"kickoff"`
	StatusID   int64  `json:"status_id"`
}

func fixtureToSummaryDTO(f fixture.Fixture) fixtureSummaryDTO {
	return fixtureSummaryDTO{
		ID:         f.ID,
		SeasonID:   f.SeasonID,
		LeagueID:   f.LeagueID,
		MatchDay:   f.MatchDay,
		HomeTeamID: f.HomeTeamID,
		AwayTeamID: f.AwayTeamID,
		MatchDate:  formatDate(f.MatchDate),
		Kickoff:    f.Kickoff,
		StatusID:   f.StatusID,
	}
}

type fixtureDTO struct {
	ID              int64  `json:"id"`
	SeasonID        int64  `json:"season_id"`
	LeagueID        int64  `json:"league_id"`
	MatchDay        int    `json:"match_day"`
	HomeTeamID      int64  `json:"home_team_id"`
	AwayTeamID      int64  `json:"away_team_id"`
	HomeManagerName string `json:"home_manager_name"`
	AwayManagerName string `json:"away_manager_name"`
	StadiumID       int64  `json:"stadium_id"`
	MatchDate       string `json:"match_date"`
	Kickoff         string `json:"kickoff"`
	RefereeID       int64  `json:"referee_id"`
	StatusID        int64  `json:"status_id"`
}

func fixtureToDTO(f fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:              f.ID,
		SeasonID:        f.SeasonID,
		LeagueID:        f.LeagueID,
		MatchDay:        f.MatchDay,
		HomeTeamID:      f.HomeTeamID,
		AwayTeamID:      f.AwayTeamID,
		HomeManagerName: f.HomeManagerName,
		AwayManagerName: f.AwayManagerName,
		StadiumID:       f.StadiumID,
		MatchDate:       formatDate(f.MatchDate),
		Kickoff:         f.Kickoff,
		RefereeID:       f.RefereeID,
		StatusID:        f.StatusID,
	}
}

type sideStatsDTO struct {
	Goals          *int `json:"goals"`
	Possession     *int `json:"possession"`
	Shots          *int `json:"shots"`
	ShotsOnTarget  *int `json:"shots_on_target"`
	ShotsOffTarget *int `json:"shots_off_target"`
	ShotsBlocked   *int `json:"shots_blocked"`
	CornerKicks    *int `json:"corner_kicks"`
	Offsides       *int `json:"offsides"`
	Fouls          *int `json:"fouls"`
	ThrowIns       *int `json:"throw_ins"`
	YellowCards    *int `json:"yellow_cards"`
	RedCards       *int `json:"red_cards"`
}

func sideStatsToDTO(s fixture.SideStats) sideStatsDTO {
	return sideStatsDTO{
		Goals:          s.Goals,
		Possession:     s.Possession,
		Shots:          s.Shots,
		ShotsOnTarget:  s.ShotsOnTarget,
		ShotsOffTarget: s.ShotsOffTarget,
		ShotsBlocked:   s.ShotsBlocked,
		CornerKicks:    s.CornerKicks,
		Offsides:       s.Offsides,
		Fouls:          s.Fouls,
		ThrowIns:       s.ThrowIns,
		YellowCards:    s.YellowCards,
		RedCards:       s.RedCards,
	}
}

type matchSummaryDTO struct {
	ID           int64  `json:"id"`
	FixtureID    int64  `json:"fixture_id"`
	Result       bool   `json:"result"`
	WinnerTeamID *int64 `json:"winner_team_id"`
}

func matchToSummaryDTO(m fixture.Match) matchSummaryDTO {
	return matchSummaryDTO{
		ID:           m.ID,
		FixtureID:    m.FixtureID,
		Result:       m.Result,
		WinnerTeamID: m.WinnerTeamID,
	}
}

type matchDTO struct {
	ID           int64        `json:"id"`
	FixtureID    int64        `json:"fixture_id"`
	Attendance   int          `json:"attendance"`
	Result       bool         `json:"result"`
	WinnerTeamID *int64       `json:"winner_team_id"`
	ExtraTime    bool         `json:"extra_time"`
	InjuryTime   int          `json:"injury_time"`
	Home         sideStatsDTO `json:"home"`
	Away         sideStatsDTO `json:"away"`
}

func matchToDTO(m fixture.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		FixtureID:    m.FixtureID,
		Attendance:   m.Attendance,
		Result:       m.Result,
		WinnerTeamID: m.WinnerTeamID,
		ExtraTime:    m.ExtraTime,
		InjuryTime:   m.InjuryTime,
		Home:         sideStatsToDTO(m.Home),
		Away:         sideStatsToDTO(m.Away),
	}
}

type fixtureWithMatchDTO struct {
	Fixture fixtureDTO `json:"fixture"`
	Match   matchDTO   `json:"match"`
}

type createFixtureRequest struct {
	SeasonID   int64  `json:"season_id" validate:"required,gt=0"`
	LeagueID   int64  `json:"league_id" validate:"required,gt=0"`
	MatchDay   int    `json:"match_day" validate:"gte=0"`
	HomeTeamID int64  `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64  `json:"away_team_id" validate:"required,gt=0"`
	StadiumID  int64  `json:"stadium_id" validate:"required,gt=0"`
	MatchDate  string `json:"match_date" validate:"required"`
	Kickoff    string `json:"kickoff" validate:"required"`
	RefereeID  int64  `json:"referee_id" validate:"required,gt=0"`
	StatusID   *int64 `json:"status_id" validate:"omitempty,gt=0"`
}

type updateFixtureRequest struct {
	MatchDay  *int    `json:"match_day" validate:"omitempty,gte=0"`
	StadiumID *int64  `json:"stadium_id" validate:"omitempty,gt=0"`
	MatchDate *string `json:"match_date"`
	Kickoff   *string `json:"kickoff"`
	RefereeID *int64  `json:"referee_id" validate:"omitempty,gt=0"`
	StatusID  *int64  `json:"status_id" validate:"omitempty,gt=0"`
}

type sideStatsRequest struct {
	Goals         *int `json:"goals" validate:"omitempty,gte=0"`
	Possession    *int `json:"possession" validate:"omitempty,gte=0,lte=100"`
	Shots         *int `json:"shots" validate:"omitempty,gte=0"`
	ShotsOnTarget *int `json:"shots_on_target" validate:"omitempty,gte=0"`
	CornerKicks   *int `json:"corner_kicks" validate:"omitempty,gte=0"`
	Offsides      *int `json:"offsides" validate:"omitempty,gte=0"`
	Fouls         *int `json:"fouls" validate:"omitempty,gte=0"`
	ThrowIns      *int `json:"throw_ins" validate:"omitempty,gte=0"`
	YellowCards   *int `json:"yellow_cards" validate:"omitempty,gte=0"`
	RedCards      *int `json:"red_cards" validate:"omitempty,gte=0"`
}

func (r sideStatsRequest) toPatch() usecase.SideStatsPatch {
	return usecase.SideStatsPatch{
		Goals:         r.Goals,
		Possession:    r.Possession,
		Shots:         r.Shots,
		ShotsOnTarget: r.ShotsOnTarget,
		CornerKicks:   r.CornerKicks,
		Offsides:      r.Offsides,
		Fouls:         r.Fouls,
		ThrowIns:      r.ThrowIns,
		YellowCards:   r.YellowCards,
		RedCards:      r.RedCards,
	}
}

type updateMatchRequest struct {
	Attendance *int             `json:"attendance" validate:"omitempty,gte=0"`
	ExtraTime  *bool            `json:"extra_time"`
	InjuryTime *int             `json:"injury_time" validate:"omitempty,gte=0"`
	Home       sideStatsRequest `json:"home"`
	Away       sideStatsRequest `json:"away"`
}

type createMatchStatusRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type updateMatchStatusRequest struct {
	Name *string `json:"name" validate:"omitempty,max=50"`
}

func (h *Handler) ListFixturesBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesBySeason")
	defer span.End()

	seasonName := seasonNameFromPath(r)
	items, err := h.fixtureService.ListFixtures(ctx, seasonName)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "season", seasonName, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]fixtureSummaryDTO, 0, len(items))
	for _, f := range items {
		out = append(out, fixtureToSummaryDTO(f))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	id, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fixtureService.GetFixture(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) CreateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFixture")
	defer span.End()

	var req createFixtureRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchDate, err := parseDate("match_date", req.MatchDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	in := fixture.Fixture{
		SeasonID:   req.SeasonID,
		LeagueID:   req.LeagueID,
		MatchDay:   req.MatchDay,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		StadiumID:  req.StadiumID,
		MatchDate:  matchDate,
		Kickoff:    req.Kickoff,
		RefereeID:  req.RefereeID,
	}
	if req.StatusID != nil {
		in.StatusID = *req.StatusID
	}

	created, match, err := h.fixtureService.CreateFixture(ctx, in)
	if err != nil {
		h.logger.WarnContext(ctx, "create fixture failed",
			"home_team_id", req.HomeTeamID,
			"away_team_id", req.AwayTeamID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, fixtureWithMatchDTO{
		Fixture: fixtureToDTO(created),
		Match:   matchToDTO(match),
	})
}

func (h *Handler) UpdateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFixture")
	defer span.End()

	id, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateFixtureRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchDate, err := parseDatePtr("match_date", req.MatchDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fixtureService.UpdateFixture(ctx, id, usecase.FixturePatch{
		MatchDay:  req.MatchDay,
		StadiumID: req.StadiumID,
		MatchDate: matchDate,
		Kickoff:   req.Kickoff,
		RefereeID: req.RefereeID,
		StatusID:  req.StatusID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update fixture failed", "fixture_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) DeleteFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFixture")
	defer span.End()

	id, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.fixtureService.DeleteFixture(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete fixture failed", "fixture_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) GetFixtureMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureMatch")
	defer span.End()

	id, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fixtureService.GetMatchByFixture(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) ListMatchesBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesBySeason")
	defer span.End()

	seasonName := seasonNameFromPath(r)
	items, err := h.fixtureService.ListMatches(ctx, seasonName)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "season", seasonName, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchSummaryDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToSummaryDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fixtureService.GetMatch(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMatchRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fixtureService.UpdateMatch(ctx, id, usecase.MatchPatch{
		Attendance: req.Attendance,
		ExtraTime:  req.ExtraTime,
		InjuryTime: req.InjuryTime,
		Home:       req.Home.toPatch(),
		Away:       req.Away.toPatch(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

// MatchLifecycleForbidden rejects direct match creation and deletion; the
// match record lives and dies with its fixture.
func (h *Handler) MatchLifecycleForbidden(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchLifecycleForbidden")
	defer span.End()

	writeError(ctx, w, fmt.Errorf("%w: matches are managed through fixtures", usecase.ErrForbidden))
}

func (h *Handler) ListMatchStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchStatuses")
	defer span.End()

	items, err := h.fixtureService.ListStatuses(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list match statuses failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchStatusDTO, 0, len(items))
	for _, s := range items {
		out = append(out, matchStatusToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStatus")
	defer span.End()

	id, err := pathID(r, "statusID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fixtureService.GetStatus(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchStatusToDTO(item))
}

func (h *Handler) CreateMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchStatus")
	defer span.End()

	var req createMatchStatusRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fixtureService.CreateStatus(ctx, fixture.Status{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "create match status failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchStatusToDTO(item))
}

func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchStatus")
	defer span.End()

	id, err := pathID(r, "statusID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMatchStatusRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fixtureService.UpdateStatus(ctx, id, usecase.StatusPatch{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "update match status failed", "status_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchStatusToDTO(item))
}

func (h *Handler) DeleteMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchStatus")
	defer span.End()

	id, err := pathID(r, "statusID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.fixtureService.DeleteStatus(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete match status failed", "status_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
