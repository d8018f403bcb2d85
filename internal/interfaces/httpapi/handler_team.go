package httpapi

import (
	"net/http"

	"github.com/goalmaven/goal-maven/internal/domain/team"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

type teamSummaryDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LeagueID *int64 `json:"league_id"`
}

func teamToSummaryDTO(t team.Team) teamSummaryDTO {
	return teamSummaryDTO{ID: t.ID, Name: t.Name, LeagueID: t.LeagueID}
}

type teamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	EstDate   string `json:"est_date"`
	LeagueID  *int64 `json:"league_id"`
	StadiumID int64  `json:"stadium_id"`
	ManagerID *int64 `json:"manager_id"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		EstDate:   formatDate(t.EstDate),
		LeagueID:  t.LeagueID,
		StadiumID: t.StadiumID,
		ManagerID: t.ManagerID,
	}
}

type managerSummaryDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	NationID int64  `json:"nation_id"`
}

func managerToSummaryDTO(m team.Manager) managerSummaryDTO {
	return managerSummaryDTO{ID: m.ID, Name: m.Name, NationID: m.NationID}
}

type managerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	NationID    int64  `json:"nation_id"`
	DateOfBirth string `json:"date_of_birth"`
	CareerStart string `json:"career_start"`
}

func managerToDTO(m team.Manager) managerDTO {
	return managerDTO{
		ID:          m.ID,
		Name:        m.Name,
		NationID:    m.NationID,
		DateOfBirth: formatDate(m.DateOfBirth),
		CareerStart: formatDate(m.CareerStart),
	}
}

type refereeSummaryDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	NationID int64  `json:"nation_id"`
}

func refereeToSummaryDTO(r team.Referee) refereeSummaryDTO {
	return refereeSummaryDTO{ID: r.ID, Name: r.Name, NationID: r.NationID}
}

type refereeDTO struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	NationID          int64  `json:"nation_id"`
	CareerStart       string `json:"career_start"`
	MatchesOfficiated int    `json:"matches_officiated"`
	YellowCardsIssued int    `json:"yellow_cards_issued"`
	RedCardsIssued    int    `json:"red_cards_issued"`
}

func refereeToDTO(r team.Referee) refereeDTO {
	return refereeDTO{
		ID:                r.ID,
		Name:              r.Name,
		NationID:          r.NationID,
		CareerStart:       formatDate(r.CareerStart),
		MatchesOfficiated: r.MatchesOfficiated,
		YellowCardsIssued: r.YellowCardsIssued,
		RedCardsIssued:    r.RedCardsIssued,
	}
}

type createTeamRequest struct {
	Name      string `json:"name" validate:"required,max=150"`
	EstDate   string `json:"est_date" validate:"required"`
	LeagueID  *int64 `json:"league_id" validate:"omitempty,gt=0"`
	StadiumID int64  `json:"stadium_id" validate:"required,gt=0"`
	ManagerID *int64 `json:"manager_id" validate:"omitempty,gt=0"`
}

type updateTeamRequest struct {
	Name      *string    `json:"name" validate:"omitempty,max=150"`
	EstDate   *string    `json:"est_date"`
	LeagueID  optionalID `json:"league_id"`
	StadiumID *int64     `json:"stadium_id" validate:"omitempty,gt=0"`
	ManagerID optionalID `json:"manager_id"`
}

type createManagerRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	NationID    int64  `json:"nation_id" validate:"required,gt=0"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	CareerStart string `json:"career_start" validate:"required"`
}

type updateManagerRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=150"`
	NationID    *int64  `json:"nation_id" validate:"omitempty,gt=0"`
	DateOfBirth *string `json:"date_of_birth"`
	CareerStart *string `json:"career_start"`
}

type createRefereeRequest struct {
	Name              string `json:"name" validate:"required,max=150"`
	NationID          int64  `json:"nation_id" validate:"required,gt=0"`
	CareerStart       string `json:"career_start" validate:"required"`
	MatchesOfficiated int    `json:"matches_officiated" validate:"gte=0"`
	YellowCardsIssued int    `json:"yellow_cards_issued" validate:"gte=0"`
	RedCardsIssued    int    `json:"red_cards_issued" validate:"gte=0"`
}

type updateRefereeRequest struct {
	Name              *string `json:"name" validate:"omitempty,max=150"`
	NationID          *int64  `json:"nation_id" validate:"omitempty,gt=0"`
	CareerStart       *string `json:"career_start"`
	MatchesOfficiated *int    `json:"matches_officiated" validate:"omitempty,gte=0"`
	YellowCardsIssued *int    `json:"yellow_cards_issued" validate:"omitempty,gte=0"`
	RedCardsIssued    *int    `json:"red_cards_issued" validate:"omitempty,gte=0"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamSummaryDTO, 0, len(items))
	for _, t := range items {
		out = append(out, teamToSummaryDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	id, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.GetTeam(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	estDate, err := parseDate("est_date", req.EstDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.CreateTeam(ctx, team.Team{
		Name:      req.Name,
		EstDate:   estDate,
		LeagueID:  req.LeagueID,
		StadiumID: req.StadiumID,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	id, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateTeamRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	estDate, err := parseDatePtr("est_date", req.EstDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.UpdateTeam(ctx, id, usecase.TeamPatch{
		Name:      req.Name,
		EstDate:   estDate,
		LeagueID:  req.LeagueID.patch(),
		StadiumID: req.StadiumID,
		ManagerID: req.ManagerID.patch(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	id, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.DeleteTeam(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListManagers")
	defer span.End()

	items, err := h.teamService.ListManagers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list managers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]managerSummaryDTO, 0, len(items))
	for _, m := range items {
		out = append(out, managerToSummaryDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManager")
	defer span.End()

	id, err := pathID(r, "managerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.GetManager(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, managerToDTO(item))
}

// GetManagerTeam answers the reverse side of the one-to-one: which team, if
// any, the manager currently runs.
func (h *Handler) GetManagerTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerTeam")
	defer span.End()

	id, err := pathID(r, "managerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if _, err := h.teamService.GetManager(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, found, err := h.teamService.TeamOfManager(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager team failed", "manager_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) CreateManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateManager")
	defer span.End()

	var req createManagerRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	careerStart, err := parseDate("career_start", req.CareerStart)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.CreateManager(ctx, team.Manager{
		Name:        req.Name,
		NationID:    req.NationID,
		DateOfBirth: dob,
		CareerStart: careerStart,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create manager failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, managerToDTO(item))
}

func (h *Handler) UpdateManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateManager")
	defer span.End()

	id, err := pathID(r, "managerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateManagerRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	dob, err := parseDatePtr("date_of_birth", req.DateOfBirth)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	careerStart, err := parseDatePtr("career_start", req.CareerStart)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.UpdateManager(ctx, id, usecase.ManagerPatch{
		Name:        req.Name,
		NationID:    req.NationID,
		DateOfBirth: dob,
		CareerStart: careerStart,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update manager failed", "manager_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, managerToDTO(item))
}

func (h *Handler) DeleteManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteManager")
	defer span.End()

	id, err := pathID(r, "managerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.DeleteManager(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete manager failed", "manager_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListReferees(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListReferees")
	defer span.End()

	items, err := h.teamService.ListReferees(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list referees failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]refereeSummaryDTO, 0, len(items))
	for _, ref := range items {
		out = append(out, refereeToSummaryDTO(ref))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReferee")
	defer span.End()

	id, err := pathID(r, "refereeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.GetReferee(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, refereeToDTO(item))
}

func (h *Handler) CreateReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateReferee")
	defer span.End()

	var req createRefereeRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	careerStart, err := parseDate("career_start", req.CareerStart)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.CreateReferee(ctx, team.Referee{
		Name:              req.Name,
		NationID:          req.NationID,
		CareerStart:       careerStart,
		MatchesOfficiated: req.MatchesOfficiated,
		YellowCardsIssued: req.YellowCardsIssued,
		RedCardsIssued:    req.RedCardsIssued,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create referee failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, refereeToDTO(item))
}

func (h *Handler) UpdateReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateReferee")
	defer span.End()

	id, err := pathID(r, "refereeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateRefereeRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	careerStart, err := parseDatePtr("career_start", req.CareerStart)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.UpdateReferee(ctx, id, usecase.RefereePatch{
		Name:              req.Name,
		NationID:          req.NationID,
		CareerStart:       careerStart,
		MatchesOfficiated: req.MatchesOfficiated,
		YellowCardsIssued: req.YellowCardsIssued,
		RedCardsIssued:    req.RedCardsIssued,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update referee failed", "referee_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, refereeToDTO(item))
}

func (h *Handler) DeleteReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteReferee")
	defer span.End()

	id, err := pathID(r, "refereeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.DeleteReferee(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete referee failed", "referee_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
