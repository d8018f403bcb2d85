package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/goalmaven/goal-maven/internal/domain/fixture"
	"github.com/goalmaven/goal-maven/internal/domain/matchevent"
	"github.com/goalmaven/goal-maven/internal/domain/player"
)

// EventService manages match events and the event type / pitch location
// catalogs.
type EventService struct {
	eventRepo    matchevent.Repository
	typeRepo     matchevent.TypeRepository
	locationRepo matchevent.LocationRepository
	matchRepo    fixture.MatchRepository
	playerRepo   player.Repository
}

func NewEventService(
	eventRepo matchevent.Repository,
	typeRepo matchevent.TypeRepository,
	locationRepo matchevent.LocationRepository,
	matchRepo fixture.MatchRepository,
	playerRepo player.Repository,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		typeRepo:     typeRepo,
		locationRepo: locationRepo,
		matchRepo:    matchRepo,
		playerRepo:   playerRepo,
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]matchevent.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (matchevent.Event, error) {
	item, found, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("get match event: %w", err)
	}
	if !found {
		return matchevent.Event{}, fmt.Errorf("%w: match event=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *EventService) checkEventRefs(ctx context.Context, e matchevent.Event) error {
	if _, found, err := s.typeRepo.GetByID(ctx, e.EventTypeID); err != nil {
		return fmt.Errorf("check event type: %w", err)
	} else if !found {
		return fmt.Errorf("%w: event type %d does not exist", ErrInvalidInput, e.EventTypeID)
	}
	if _, found, err := s.matchRepo.GetByID(ctx, e.MatchID); err != nil {
		return fmt.Errorf("check event match: %w", err)
	} else if !found {
		return fmt.Errorf("%w: match %d does not exist", ErrInvalidInput, e.MatchID)
	}
	for _, playerID := range []*int64{e.PlayerID, e.AssociatedPlayerID} {
		if playerID == nil {
			continue
		}
		if _, found, err := s.playerRepo.GetByID(ctx, *playerID); err != nil {
			return fmt.Errorf("check event player: %w", err)
		} else if !found {
			return fmt.Errorf("%w: player %d does not exist", ErrInvalidInput, *playerID)
		}
	}
	if e.PitchLocationID != nil {
		if _, found, err := s.locationRepo.GetByID(ctx, *e.PitchLocationID); err != nil {
			return fmt.Errorf("check event pitch location: %w", err)
		} else if !found {
			return fmt.Errorf("%w: pitch location %d does not exist", ErrInvalidInput, *e.PitchLocationID)
		}
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, e matchevent.Event) (matchevent.Event, error) {
	if err := e.Validate(); err != nil {
		return matchevent.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkEventRefs(ctx, e); err != nil {
		return matchevent.Event{}, err
	}

	created, err := s.eventRepo.Create(ctx, e)
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("create match event: %w", err)
	}
	return created, nil
}

type EventPatch struct {
	EventTypeID        *int64
	PlayerID           **int64
	Minute             *int
	Second             *int
	IsExtraTime        *bool
	PitchLocationID    **int64
	AssociatedPlayerID **int64
}

func (s *EventService) UpdateEvent(ctx context.Context, id int64, patch EventPatch) (matchevent.Event, error) {
	current, err := s.GetEvent(ctx, id)
	if err != nil {
		return matchevent.Event{}, err
	}
	if patch.EventTypeID != nil {
		current.EventTypeID = *patch.EventTypeID
	}
	if patch.PlayerID != nil {
		current.PlayerID = *patch.PlayerID
	}
	if patch.Minute != nil {
		current.Minute = *patch.Minute
	}
	if patch.Second != nil {
		current.Second = *patch.Second
	}
	if patch.IsExtraTime != nil {
		current.IsExtraTime = *patch.IsExtraTime
	}
	if patch.PitchLocationID != nil {
		current.PitchLocationID = *patch.PitchLocationID
	}
	if patch.AssociatedPlayerID != nil {
		current.AssociatedPlayerID = *patch.AssociatedPlayerID
	}
	if err := current.Validate(); err != nil {
		return matchevent.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkEventRefs(ctx, current); err != nil {
		return matchevent.Event{}, err
	}

	found, err := s.eventRepo.Update(ctx, current)
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("update match event: %w", err)
	}
	if !found {
		return matchevent.Event{}, fmt.Errorf("%w: match event=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	found, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete match event: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: match event=%d", ErrNotFound, id)
	}
	return nil
}

func (s *EventService) ListTypes(ctx context.Context) ([]matchevent.EventType, error) {
	return s.typeRepo.List(ctx)
}

func (s *EventService) GetType(ctx context.Context, id int64) (matchevent.EventType, error) {
	item, found, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return matchevent.EventType{}, fmt.Errorf("get event type: %w", err)
	}
	if !found {
		return matchevent.EventType{}, fmt.Errorf("%w: event type=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *EventService) CreateType(ctx context.Context, t matchevent.EventType) (matchevent.EventType, error) {
	t.Name = strings.TrimSpace(t.Name)
	if err := t.Validate(); err != nil {
		return matchevent.EventType{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, exists, err := s.typeRepo.GetByName(ctx, t.Name); err != nil {
		return matchevent.EventType{}, fmt.Errorf("check event type name: %w", err)
	} else if exists {
		return matchevent.EventType{}, fmt.Errorf("%w: event type %q", ErrConflict, t.Name)
	}

	created, err := s.typeRepo.Create(ctx, t)
	if err != nil {
		return matchevent.EventType{}, conflictOr(err, fmt.Sprintf("event type %q", t.Name))
	}
	return created, nil
}

type EventTypePatch struct {
	Name *string
}

func (s *EventService) UpdateType(ctx context.Context, id int64, patch EventTypePatch) (matchevent.EventType, error) {
	current, err := s.GetType(ctx, id)
	if err != nil {
		return matchevent.EventType{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if err := current.Validate(); err != nil {
		return matchevent.EventType{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.typeRepo.Update(ctx, current)
	if err != nil {
		return matchevent.EventType{}, conflictOr(err, fmt.Sprintf("event type %q", current.Name))
	}
	if !found {
		return matchevent.EventType{}, fmt.Errorf("%w: event type=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *EventService) DeleteType(ctx context.Context, id int64) error {
	found, err := s.typeRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event type: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: event type=%d", ErrNotFound, id)
	}
	return nil
}

func (s *EventService) ListLocations(ctx context.Context) ([]matchevent.PitchLocation, error) {
	return s.locationRepo.List(ctx)
}

func (s *EventService) GetLocation(ctx context.Context, id int64) (matchevent.PitchLocation, error) {
	item, found, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return matchevent.PitchLocation{}, fmt.Errorf("get pitch location: %w", err)
	}
	if !found {
		return matchevent.PitchLocation{}, fmt.Errorf("%w: pitch location=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *EventService) CreateLocation(ctx context.Context, l matchevent.PitchLocation) (matchevent.PitchLocation, error) {
	l.Name = strings.TrimSpace(l.Name)
	if err := l.Validate(); err != nil {
		return matchevent.PitchLocation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, exists, err := s.locationRepo.GetByName(ctx, l.Name); err != nil {
		return matchevent.PitchLocation{}, fmt.Errorf("check pitch location name: %w", err)
	} else if exists {
		return matchevent.PitchLocation{}, fmt.Errorf("%w: pitch location %q", ErrConflict, l.Name)
	}

	created, err := s.locationRepo.Create(ctx, l)
	if err != nil {
		return matchevent.PitchLocation{}, conflictOr(err, fmt.Sprintf("pitch location %q", l.Name))
	}
	return created, nil
}

type PitchLocationPatch struct {
	Name *string
}

func (s *EventService) UpdateLocation(ctx context.Context, id int64, patch PitchLocationPatch) (matchevent.PitchLocation, error) {
	current, err := s.GetLocation(ctx, id)
	if err != nil {
		return matchevent.PitchLocation{}, err
	}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if err := current.Validate(); err != nil {
		return matchevent.PitchLocation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.locationRepo.Update(ctx, current)
	if err != nil {
		return matchevent.PitchLocation{}, conflictOr(err, fmt.Sprintf("pitch location %q", current.Name))
	}
	if !found {
		return matchevent.PitchLocation{}, fmt.Errorf("%w: pitch location=%d", ErrNotFound, id)
	}
	return current, nil
}

func (s *EventService) DeleteLocation(ctx context.Context, id int64) error {
	found, err := s.locationRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete pitch location: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: pitch location=%d", ErrNotFound, id)
	}
	return nil
}
