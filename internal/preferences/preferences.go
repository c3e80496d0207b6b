package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/iwvelando/calckit/pkg/datetime"
	"github.com/iwvelando/calckit/pkg/timecalc"
	"github.com/iwvelando/calckit/pkg/validation"
	"go.uber.org/zap"
)

// Preference keys.
const (
	KeyWorldClockCities = "world-clock-cities"
	KeyCountdownTarget  = "countdown-target"
)

// ErrUnknownKey is returned for a key that is not a known preference.
var ErrUnknownKey = errors.New("unknown preference key")

// RulePast is reported for a countdown target that has already passed.
const RulePast = "past"

// DefaultCountdownColor is the display color of a new countdown.
const DefaultCountdownColor = "#3B82F6"

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Keys lists the known preference keys.
func Keys() []string {
	return []string{KeyWorldClockCities, KeyCountdownTarget}
}

// CountdownTarget is the event a countdown runs towards.
type CountdownTarget struct {
	Name        string    `json:"eventName"`
	Description string    `json:"eventDescription"`
	Target      time.Time `json:"targetDate"`
	Color       string    `json:"color"`
	Sound       bool      `json:"soundEnabled"`
}

// Countdown is a stored countdown target, or the default one when Active
// is false.
type Countdown struct {
	Active bool            `json:"active"`
	Target CountdownTarget `json:"target"`
}

// DefaultCountdownTarget is an unnamed event at noon the day after now.
func DefaultCountdownTarget(now time.Time) CountdownTarget {
	y, m, d := now.AddDate(0, 0, 1).Date()
	return CountdownTarget{
		Target: time.Date(y, m, d, 12, 0, 0, 0, now.Location()),
		Color:  DefaultCountdownColor,
		Sound:  true,
	}
}

// Service reads and writes typed preferences on top of a Store.
type Service struct {
	store  Store
	clock  datetime.Clock
	logger *zap.Logger
}

// NewService builds a Service. A nil clock reads the wall clock and a nil
// logger discards output.
func NewService(logger *zap.Logger, store Store, clock datetime.Clock) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = datetime.SystemClock{}
	}
	return &Service{store: store, clock: clock, logger: logger}
}

// load decodes the blob under key into v. It reports false when the blob
// is missing, unreadable or corrupt; the caller then uses its default.
func (s *Service) load(ctx context.Context, session, key string, v any) bool {
	raw, err := s.store.Get(ctx, session, key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		s.logger.Warn("preference unavailable, using defaults",
			zap.String("op", "preferences.load"),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Warn("discarding corrupt preference",
			zap.String("op", "preferences.load"),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (s *Service) save(ctx context.Context, session, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode preference %s: %w", key, err)
	}
	if err := s.store.Put(ctx, session, key, raw); err != nil {
		return err
	}
	s.logger.Debug("preference saved",
		zap.String("op", "preferences.save"),
		zap.String("key", key),
	)
	return nil
}

// WorldClockCities returns the stored city selection. Unknown and repeated
// ids are dropped; an empty result yields the popular default selection.
func (s *Service) WorldClockCities(ctx context.Context, session string) []string {
	var stored []string
	if !s.load(ctx, session, KeyWorldClockCities, &stored) {
		return timecalc.DefaultCityIDs()
	}

	seen := make(map[string]bool, len(stored))
	ids := make([]string, 0, len(stored))
	for _, id := range stored {
		if _, ok := timecalc.LookupCity(id); ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return timecalc.DefaultCityIDs()
	}
	return ids
}

// SetWorldClockCities stores an ordered city selection.
func (s *Service) SetWorldClockCities(ctx context.Context, session string, ids []string) (validation.Errors, error) {
	if errs := timecalc.ValidateWorldClock(timecalc.WorldClockInput{Cities: ids}); !errs.Valid() {
		return errs, nil
	}
	return nil, s.save(ctx, session, KeyWorldClockCities, ids)
}

// Countdown returns the stored countdown. A missing target, or one that
// has already passed, yields the default target with Active unset.
func (s *Service) Countdown(ctx context.Context, session string) Countdown {
	now := s.clock.Now()
	var stored CountdownTarget
	if !s.load(ctx, session, KeyCountdownTarget, &stored) || !stored.Target.After(now) {
		return Countdown{Target: DefaultCountdownTarget(now)}
	}
	return Countdown{Active: true, Target: stored}
}

// ValidateCountdownTarget checks a target before it is stored.
func ValidateCountdownTarget(t CountdownTarget, now time.Time) validation.Errors {
	var errs validation.Errors
	switch {
	case t.Target.IsZero():
		errs.Add("targetDate", validation.RuleRequired, "target date is required")
	case !t.Target.After(now):
		errs.Add("targetDate", RulePast, "target date must be in the future")
	}
	if len([]rune(t.Name)) > 100 {
		errs.Add("eventName", validation.RuleRange, "event name must be at most 100 characters")
	}
	if t.Color != "" && !colorPattern.MatchString(t.Color) {
		errs.Add("color", validation.RuleInvalid, "color must look like #RRGGBB")
	}
	return errs
}

// SetCountdownTarget stores the countdown target. An empty color is
// replaced by the default.
func (s *Service) SetCountdownTarget(ctx context.Context, session string, t CountdownTarget) (validation.Errors, error) {
	if errs := ValidateCountdownTarget(t, s.clock.Now()); !errs.Valid() {
		return errs, nil
	}
	if t.Color == "" {
		t.Color = DefaultCountdownColor
	}
	return nil, s.save(ctx, session, KeyCountdownTarget, t)
}

// Get returns the typed value of key for session.
func (s *Service) Get(ctx context.Context, session, key string) (any, error) {
	switch key {
	case KeyWorldClockCities:
		return s.WorldClockCities(ctx, session), nil
	case KeyCountdownTarget:
		return s.Countdown(ctx, session), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Put decodes raw as the JSON value of key and stores it.
func (s *Service) Put(ctx context.Context, session, key string, raw []byte) (validation.Errors, error) {
	switch key {
	case KeyWorldClockCities:
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return invalidBody(key), nil
		}
		return s.SetWorldClockCities(ctx, session, ids)
	case KeyCountdownTarget:
		var t CountdownTarget
		if err := json.Unmarshal(raw, &t); err != nil {
			return invalidBody(key), nil
		}
		return s.SetCountdownTarget(ctx, session, t)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Delete removes the stored value of key, restoring its default.
func (s *Service) Delete(ctx context.Context, session, key string) error {
	switch key {
	case KeyWorldClockCities, KeyCountdownTarget:
		return s.store.Delete(ctx, session, key)
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

func invalidBody(key string) validation.Errors {
	var errs validation.Errors
	errs.Add(key, validation.RuleInvalid, "malformed %s value", key)
	return errs
}
