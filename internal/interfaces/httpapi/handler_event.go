package httpapi

import (
	"net/http"

	"github.com/goalmaven/goal-maven/internal/domain/matchevent"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

type matchEventSummaryDTO struct {
	ID          int64  `json:"id"`
	EventTypeID int64  `json:"event_type_id"`
	MatchID     int64  `json:"match_id"`
	PlayerID    *int64 `json:"player_id"`
	Minute      int    `json:"minute"`
}

func matchEventToSummaryDTO(e matchevent.Event) matchEventSummaryDTO {
	return matchEventSummaryDTO{
		ID:          e.ID,
		EventTypeID: e.EventTypeID,
		MatchID:     e.MatchID,
		PlayerID:    e.PlayerID,
		Minute:      e.Minute,
	}
}

type matchEventDTO struct {
	ID                 int64  `json:"id"`
	EventTypeID        int64  `json:"event_type_id"`
	MatchID            int64  `json:"match_id"`
	PlayerID           *int64 `json:"player_id"`
	Minute             int    `json:"minute"`
	Second             int    `json:"second"`
	IsExtraTime        bool   `json:"is_extra_time"`
	PitchLocationID    *int64 `json:"pitch_location_id"`
	AssociatedPlayerID *int64 `json:"associated_player_id"`
}

func matchEventToDTO(e matchevent.Event) matchEventDTO {
	return matchEventDTO{
		ID:                 e.ID,
		EventTypeID:        e.EventTypeID,
		MatchID:            e.MatchID,
		PlayerID:           e.PlayerID,
		Minute:             e.Minute,
		Second:             e.Second,
		IsExtraTime:        e.IsExtraTime,
		PitchLocationID:    e.PitchLocationID,
		AssociatedPlayerID: e.AssociatedPlayerID,
	}
}

type eventTypeDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func eventTypeToDTO(t matchevent.EventType) eventTypeDTO {
	return eventTypeDTO{ID: t.ID, Name: t.Name}
}

type pitchLocationDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func pitchLocationToDTO(l matchevent.PitchLocation) pitchLocationDTO {
	return pitchLocationDTO{ID: l.ID, Name: l.Name}
}

type createMatchEventRequest struct {
	EventTypeID        int64  `json:"event_type_id" validate:"required,gt=0"`
	MatchID            int64  `json:"match_id" validate:"required,gt=0"`
	PlayerID           *int64 `json:"player_id" validate:"omitempty,gt=0"`
	Minute             int    `json:"minute" validate:"gte=0"`
	Second             int    `json:"second" validate:"gte=0,lte=59"`
	IsExtraTime        bool   `json:"is_extra_time"`
	PitchLocationID    *int64 `json:"pitch_location_id" validate:"omitempty,gt=0"`
	AssociatedPlayerID *int64 `json:"associated_player_id" validate:"omitempty,gt=0"`
}

type updateMatchEventRequest struct {
	EventTypeID        *int64     `json:"event_type_id" validate:"omitempty,gt=0"`
	PlayerID           optionalID `json:"player_id"`
	Minute             *int       `json:"minute" validate:"omitempty,gte=0"`
	Second             *int       `json:"second" validate:"omitempty,gte=0,lte=59"`
	IsExtraTime        *bool      `json:"is_extra_time"`
	PitchLocationID    optionalID `json:"pitch_location_id"`
	AssociatedPlayerID optionalID `json:"associated_player_id"`
}

type createEventTypeRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type updateEventTypeRequest struct {
	Name *string `json:"name" validate:"omitempty,max=50"`
}

type createPitchLocationRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type updatePitchLocationRequest struct {
	Name *string `json:"name" validate:"omitempty,max=50"`
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	items, err := h.eventService.ListEvents(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list match events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchEventSummaryDTO, 0, len(items))
	for _, e := range items {
		out = append(out, matchEventToSummaryDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchEvent")
	defer span.End()

	id, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.GetEvent(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchEventToDTO(item))
}

func (h *Handler) CreateMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchEvent")
	defer span.End()

	var req createMatchEventRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.CreateEvent(ctx, matchevent.Event{
		EventTypeID:        req.EventTypeID,
		MatchID:            req.MatchID,
		PlayerID:           req.PlayerID,
		Minute:             req.Minute,
		Second:             req.Second,
		IsExtraTime:        req.IsExtraTime,
		PitchLocationID:    req.PitchLocationID,
		AssociatedPlayerID: req.AssociatedPlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match event failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchEventToDTO(item))
}

func (h *Handler) UpdateMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchEvent")
	defer span.End()

	id, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMatchEventRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.UpdateEvent(ctx, id, usecase.EventPatch{
		EventTypeID:        req.EventTypeID,
		PlayerID:           req.PlayerID.patch(),
		Minute:             req.Minute,
		Second:             req.Second,
		IsExtraTime:        req.IsExtraTime,
		PitchLocationID:    req.PitchLocationID.patch(),
		AssociatedPlayerID: req.AssociatedPlayerID.patch(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match event failed", "event_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchEventToDTO(item))
}

func (h *Handler) DeleteMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchEvent")
	defer span.End()

	id, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.eventService.DeleteEvent(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete match event failed", "event_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEventTypes")
	defer span.End()

	items, err := h.eventService.ListTypes(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list event types failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]eventTypeDTO, 0, len(items))
	for _, t := range items {
		out = append(out, eventTypeToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetEventType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventType")
	defer span.End()

	id, err := pathID(r, "typeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.GetType(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, eventTypeToDTO(item))
}

func (h *Handler) CreateEventType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEventType")
	defer span.End()

	var req createEventTypeRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.CreateType(ctx, matchevent.EventType{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "create event type failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, eventTypeToDTO(item))
}

func (h *Handler) UpdateEventType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateEventType")
	defer span.End()

	id, err := pathID(r, "typeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateEventTypeRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.UpdateType(ctx, id, usecase.EventTypePatch{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "update event type failed", "type_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, eventTypeToDTO(item))
}

func (h *Handler) DeleteEventType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEventType")
	defer span.End()

	id, err := pathID(r, "typeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.eventService.DeleteType(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete event type failed", "type_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListPitchLocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPitchLocations")
	defer span.End()

	items, err := h.eventService.ListLocations(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list pitch locations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]pitchLocationDTO, 0, len(items))
	for _, l := range items {
		out = append(out, pitchLocationToDTO(l))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPitchLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPitchLocation")
	defer span.End()

	id, err := pathID(r, "locationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.GetLocation(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, pitchLocationToDTO(item))
}

func (h *Handler) CreatePitchLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePitchLocation")
	defer span.End()

	var req createPitchLocationRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.CreateLocation(ctx, matchevent.PitchLocation{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "create pitch location failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, pitchLocationToDTO(item))
}

func (h *Handler) UpdatePitchLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePitchLocation")
	defer span.End()

	id, err := pathID(r, "locationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePitchLocationRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.UpdateLocation(ctx, id, usecase.PitchLocationPatch{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "update pitch location failed", "location_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, pitchLocationToDTO(item))
}

func (h *Handler) DeletePitchLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePitchLocation")
	defer span.End()

	id, err := pathID(r, "locationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.eventService.DeleteLocation(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete pitch location failed", "location_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
