package httpapi

import (
	"fmt"
	"net/http"

	"github.com/goalmaven/goal-maven/internal/domain/user"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

type userDTO struct {
	ID              int64    `json:"id"`
	Email           string   `json:"email"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Username        string   `json:"username"`
	DateOfBirth     *string  `json:"date_of_birth"`
	CountryID       *int64   `json:"country_id"`
	FavoriteTeams   []string `json:"favorite_teams"`
	FavoritePlayers []string `json:"favorite_players"`
	IsActive        bool     `json:"is_active"`
	IsStaff         bool     `json:"is_staff"`
	DateJoined      string   `json:"date_joined"`
}

func userToDTO(u user.User) userDTO {
	var dob *string
	if !u.DateOfBirth.IsZero() {
		v := formatDate(u.DateOfBirth)
		dob = &v
	}
	return userDTO{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Username:        u.Username,
		DateOfBirth:     dob,
		CountryID:       u.CountryID,
		FavoriteTeams:   u.FavoriteTeams,
		FavoritePlayers: u.FavoritePlayers,
		IsActive:        u.IsActive,
		IsStaff:         u.IsStaff,
		DateJoined:      u.DateJoined.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type registerRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=5"`
	FirstName       string   `json:"first_name" validate:"required,max=100"`
	LastName        string   `json:"last_name" validate:"required,max=100"`
	Username        string   `json:"username" validate:"required,max=100"`
	DateOfBirth     string   `json:"date_of_birth" validate:"required"`
	CountryID       *int64   `json:"country_id" validate:"omitempty,gt=0"`
	FavoriteTeams   []string `json:"favorite_teams" validate:"omitempty,dive,required"`
	FavoritePlayers []string `json:"favorite_players" validate:"omitempty,dive,required"`
}

type issueTokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Password        *string    `json:"password" validate:"omitempty,min=5"`
	FirstName       *string    `json:"first_name" validate:"omitempty,max=100"`
	LastName        *string    `json:"last_name" validate:"omitempty,max=100"`
	Username        *string    `json:"username" validate:"omitempty,max=100"`
	DateOfBirth     *string    `json:"date_of_birth"`
	CountryID       optionalID `json:"country_id"`
	FavoriteTeams   *[]string  `json:"favorite_teams"`
	FavoritePlayers *[]string  `json:"favorite_players"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req registerRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.accountService.Register(ctx, usecase.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Username:        req.Username,
		DateOfBirth:     dob,
		CountryID:       req.CountryID,
		FavoriteTeams:   req.FavoriteTeams,
		FavoritePlayers: req.FavoritePlayers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register failed", "email", req.Email, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, userToDTO(created))
}

func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IssueToken")
	defer span.End()

	var req issueTokenRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	token, err := h.accountService.IssueToken(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "issue token failed", "email", req.Email, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	if err := h.accountService.RevokeTokens(ctx, principal.UserID); err != nil {
		h.logger.WarnContext(ctx, "logout failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"revoked": true})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	item, err := h.accountService.Profile(ctx, principal.UserID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req updateProfileRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	dob, err := parseDatePtr("date_of_birth", req.DateOfBirth)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.accountService.UpdateProfile(ctx, principal.UserID, usecase.ProfilePatch{
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Username:        req.Username,
		DateOfBirth:     dob,
		CountryID:       req.CountryID.patch(),
		FavoriteTeams:   req.FavoriteTeams,
		FavoritePlayers: req.FavoritePlayers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}
