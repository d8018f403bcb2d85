package httpapi

import (
	"net/http"

	"github.com/goalmaven/goal-maven/internal/domain/player"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

type playerSummaryDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jersey_number"`
	NationID     int64  `json:"nation_id"`
	RoleID       int64  `json:"role_id"`
	TeamID       *int64 `json:"team_id"`
}

func playerToSummaryDTO(p player.Player) playerSummaryDTO {
	return playerSummaryDTO{
		ID:           p.ID,
		Name:         p.Name,
		JerseyNumber: p.JerseyNumber,
		NationID:     p.NationID,
		RoleID:       p.RoleID,
		TeamID:       p.TeamID,
	}
}

type playerDTO struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	JerseyNumber     int     `json:"jersey_number"`
	DateOfBirth      string  `json:"date_of_birth"`
	CareerStart      string  `json:"career_start"`
	NationID         int64   `json:"nation_id"`
	Height           float64 `json:"height"`
	Weight           float64 `json:"weight"`
	RoleID           int64   `json:"role_id"`
	TotalAppearances int     `json:"total_appearances"`
	TeamID           *int64  `json:"team_id"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:               p.ID,
		Name:             p.Name,
		JerseyNumber:     p.JerseyNumber,
		DateOfBirth:      formatDate(p.DateOfBirth),
		CareerStart:      formatDate(p.CareerStart),
		NationID:         p.NationID,
		Height:           p.Height,
		Weight:           p.Weight,
		RoleID:           p.RoleID,
		TotalAppearances: p.TotalAppearances,
		TeamID:           p.TeamID,
	}
}

type playerRoleDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

func playerRoleToDTO(r player.Role) playerRoleDTO {
	return playerRoleDTO{ID: r.ID, Name: r.Name, ShortName: r.ShortName}
}

type createPlayerRequest struct {
	Name             string  `json:"name" validate:"required,max=150"`
	JerseyNumber     int     `json:"jersey_number" validate:"gte=0,lte=99"`
	DateOfBirth      string  `json:"date_of_birth" validate:"required"`
	CareerStart      string  `json:"career_start" validate:"required"`
	NationID         int64   `json:"nation_id" validate:"required,gt=0"`
	Height           float64 `json:"height" validate:"gte=0"`
	Weight           float64 `json:"weight" validate:"gte=0"`
	RoleID           int64   `json:"role_id" validate:"required,gt=0"`
	TotalAppearances int     `json:"total_appearances" validate:"gte=0"`
	TeamID           *int64  `json:"team_id" validate:"omitempty,gt=0"`
}

type updatePlayerRequest struct {
	Name             *string    `json:"name" validate:"omitempty,max=150"`
	JerseyNumber     *int       `json:"jersey_number" validate:"omitempty,gte=0,lte=99"`
	DateOfBirth      *string    `json:"date_of_birth"`
	CareerStart      *string    `json:"career_start"`
	NationID         *int64     `json:"nation_id" validate:"omitempty,gt=0"`
	Height           *float64   `json:"height" validate:"omitempty,gte=0"`
	Weight           *float64   `json:"weight" validate:"omitempty,gte=0"`
	RoleID           *int64     `json:"role_id" validate:"omitempty,gt=0"`
	TotalAppearances *int       `json:"total_appearances" validate:"omitempty,gte=0"`
	TeamID           optionalID `json:"team_id"`
}

type createPlayerRoleRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	ShortName string `json:"short_name" validate:"required,max=5"`
}

type updatePlayerRoleRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=50"`
	ShortName *string `json:"short_name" validate:"omitempty,max=5"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerSummaryDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToSummaryDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetPlayer(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
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

	item, err := h.playerService.CreatePlayer(ctx, player.Player{
		Name:             req.Name,
		JerseyNumber:     req.JerseyNumber,
		DateOfBirth:      dob,
		CareerStart:      careerStart,
		NationID:         req.NationID,
		Height:           req.Height,
		Weight:           req.Weight,
		RoleID:           req.RoleID,
		TotalAppearances: req.TotalAppearances,
		TeamID:           req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePlayerRequest
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

	item, err := h.playerService.UpdatePlayer(ctx, id, usecase.PlayerPatch{
		Name:             req.Name,
		JerseyNumber:     req.JerseyNumber,
		DateOfBirth:      dob,
		CareerStart:      careerStart,
		NationID:         req.NationID,
		Height:           req.Height,
		Weight:           req.Weight,
		RoleID:           req.RoleID,
		TotalAppearances: req.TotalAppearances,
		TeamID:           req.TeamID.patch(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.DeletePlayer(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListPlayerRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerRoles")
	defer span.End()

	items, err := h.playerService.ListRoles(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list player roles failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerRoleDTO, 0, len(items))
	for _, role := range items {
		out = append(out, playerRoleToDTO(role))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayerRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRole")
	defer span.End()

	id, err := pathID(r, "roleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetRole(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerRoleToDTO(item))
}

func (h *Handler) CreatePlayerRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayerRole")
	defer span.End()

	var req createPlayerRoleRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.CreateRole(ctx, player.Role{Name: req.Name, ShortName: req.ShortName})
	if err != nil {
		h.logger.WarnContext(ctx, "create player role failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerRoleToDTO(item))
}

func (h *Handler) UpdatePlayerRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerRole")
	defer span.End()

	id, err := pathID(r, "roleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePlayerRoleRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.UpdateRole(ctx, id, usecase.RolePatch{
		Name:      req.Name,
		ShortName: req.ShortName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player role failed", "role_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerRoleToDTO(item))
}

func (h *Handler) DeletePlayerRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayerRole")
	defer span.End()

	id, err := pathID(r, "roleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.DeleteRole(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete player role failed", "role_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
