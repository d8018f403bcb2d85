package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/goalmaven/goal-maven/internal/platform/logging"
	"github.com/goalmaven/goal-maven/internal/usecase"
)

const dateLayout = "2006-01-02"

type Handler struct {
	geoService     *usecase.GeoService
	teamService    *usecase.TeamService
	playerService  *usecase.PlayerService
	leagueService  *usecase.LeagueService
	fixtureService *usecase.FixtureService
	eventService   *usecase.EventService
	statsService   *usecase.StatsService
	accountService *usecase.AccountService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	geoService *usecase.GeoService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	leagueService *usecase.LeagueService,
	fixtureService *usecase.FixtureService,
	eventService *usecase.EventService,
	statsService *usecase.StatsService,
	accountService *usecase.AccountService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		geoService:     geoService,
		teamService:    teamService,
		playerService:  playerService,
		leagueService:  leagueService,
		fixtureService: fixtureService,
		eventService:   eventService,
		statsService:   statsService,
		accountService: accountService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeBody(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.StructCtx(ctx, dst); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", usecase.ErrInvalidInput, field)
	}
	return t, nil
}

func parseDatePtr(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// optionalID carries tri-state PATCH semantics for nullable references:
// absent key, explicit null and a concrete id are all distinct.
type optionalID struct {
	set   bool
	value *int64
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.value = nil
		return nil
	}
	var v int64
	if err := sonic.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = &v
	return nil
}

func (o optionalID) patch() **int64 {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}
