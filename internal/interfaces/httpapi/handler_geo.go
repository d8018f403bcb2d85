package httpapi

import (
	"net/http"

	"github.com/goalmaven/goal-maven/internal/domain/continent"
	"github.com/goalmaven/goal-maven/internal/domain/nation"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

type continentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func continentToDTO(c continent.Continent) continentDTO {
	return continentDTO{ID: c.ID, Name: c.Name}
}

type nationDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContinentID int64  `json:"continent_id"`
}

func nationToDTO(n nation.Nation) nationDTO {
	return nationDTO{ID: n.ID, Name: n.Name, ContinentID: n.ContinentID}
}

type cityDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	NationID int64  `json:"nation_id"`
}

func cityToDTO(c nation.City) cityDTO {
	return cityDTO{ID: c.ID, Name: c.Name, NationID: c.NationID}
}

type stadiumSummaryDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"city_id"`
}

func stadiumToSummaryDTO(s nation.Stadium) stadiumSummaryDTO {
	return stadiumSummaryDTO{ID: s.ID, Name: s.Name, CityID: s.CityID}
}

type stadiumDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CityID   int64  `json:"city_id"`
	Capacity int    `json:"capacity"`
}

func stadiumToDTO(s nation.Stadium) stadiumDTO {
	return stadiumDTO{ID: s.ID, Name: s.Name, CityID: s.CityID, Capacity: s.Capacity}
}

type createContinentRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type updateContinentRequest struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
}

type createNationRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	ContinentID int64  `json:"continent_id" validate:"required,gt=0"`
}

type updateNationRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	ContinentID *int64  `json:"continent_id" validate:"omitempty,gt=0"`
}

type createCityRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	NationID int64  `json:"nation_id" validate:"required,gt=0"`
}

type updateCityRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	NationID *int64  `json:"nation_id" validate:"omitempty,gt=0"`
}

type createStadiumRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	CityID   int64  `json:"city_id" validate:"required,gt=0"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

type updateStadiumRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=150"`
	CityID   *int64  `json:"city_id" validate:"omitempty,gt=0"`
	Capacity *int    `json:"capacity" validate:"omitempty,gte=0"`
}

func (h *Handler) ListContinents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContinents")
	defer span.End()

	items, err := h.geoService.ListContinents(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list continents failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]continentDTO, 0, len(items))
	for _, c := range items {
		out = append(out, continentToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetContinent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContinent")
	defer span.End()

	id, err := pathID(r, "continentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.GetContinent(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, continentToDTO(item))
}

func (h *Handler) CreateContinent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateContinent")
	defer span.End()

	var req createContinentRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.CreateContinent(ctx, continent.Continent{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "create continent failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, continentToDTO(item))
}

func (h *Handler) UpdateContinent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateContinent")
	defer span.End()

	id, err := pathID(r, "continentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateContinentRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.UpdateContinent(ctx, id, usecase.ContinentPatch{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "update continent failed", "continent_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, continentToDTO(item))
}

func (h *Handler) DeleteContinent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteContinent")
	defer span.End()

	id, err := pathID(r, "continentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.geoService.DeleteContinent(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete continent failed", "continent_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListNations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNations")
	defer span.End()

	items, err := h.geoService.ListNations(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list nations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]nationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, nationToDTO(n))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetNation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNation")
	defer span.End()

	id, err := pathID(r, "nationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.GetNation(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, nationToDTO(item))
}

func (h *Handler) CreateNation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNation")
	defer span.End()

	var req createNationRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.CreateNation(ctx, nation.Nation{Name: req.Name, ContinentID: req.ContinentID})
	if err != nil {
		h.logger.WarnContext(ctx, "create nation failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, nationToDTO(item))
}

func (h *Handler) UpdateNation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateNation")
	defer span.End()

	id, err := pathID(r, "nationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateNationRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.UpdateNation(ctx, id, usecase.NationPatch{
		Name:        req.Name,
		ContinentID: req.ContinentID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update nation failed", "nation_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, nationToDTO(item))
}

func (h *Handler) DeleteNation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNation")
	defer span.End()

	id, err := pathID(r, "nationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.geoService.DeleteNation(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete nation failed", "nation_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCities")
	defer span.End()

	items, err := h.geoService.ListCities(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list cities failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]cityDTO, 0, len(items))
	for _, c := range items {
		out = append(out, cityToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCity")
	defer span.End()

	id, err := pathID(r, "cityID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.GetCity(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, cityToDTO(item))
}

func (h *Handler) CreateCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCity")
	defer span.End()

	var req createCityRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.CreateCity(ctx, nation.City{Name: req.Name, NationID: req.NationID})
	if err != nil {
		h.logger.WarnContext(ctx, "create city failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, cityToDTO(item))
}

func (h *Handler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCity")
	defer span.End()

	id, err := pathID(r, "cityID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateCityRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.UpdateCity(ctx, id, usecase.CityPatch{
		Name:     req.Name,
		NationID: req.NationID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update city failed", "city_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, cityToDTO(item))
}

func (h *Handler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCity")
	defer span.End()

	id, err := pathID(r, "cityID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.geoService.DeleteCity(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete city failed", "city_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListStadiums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStadiums")
	defer span.End()

	items, err := h.geoService.ListStadiums(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list stadiums failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]stadiumSummaryDTO, 0, len(items))
	for _, s := range items {
		out = append(out, stadiumToSummaryDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStadium")
	defer span.End()

	id, err := pathID(r, "stadiumID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.GetStadium(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, stadiumToDTO(item))
}

func (h *Handler) CreateStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateStadium")
	defer span.End()

	var req createStadiumRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.CreateStadium(ctx, nation.Stadium{
		Name:     req.Name,
		CityID:   req.CityID,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create stadium failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, stadiumToDTO(item))
}

func (h *Handler) UpdateStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateStadium")
	defer span.End()

	id, err := pathID(r, "stadiumID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateStadiumRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.geoService.UpdateStadium(ctx, id, usecase.StadiumPatch{
		Name:     req.Name,
		CityID:   req.CityID,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update stadium failed", "stadium_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, stadiumToDTO(item))
}

func (h *Handler) DeleteStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteStadium")
	defer span.End()

	id, err := pathID(r, "stadiumID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.geoService.DeleteStadium(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete stadium failed", "stadium_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
