// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/super3000/internal/core/products"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/apperr"
	"github.com/taibuivan/super3000/internal/platform/metrics"
	"github.com/taibuivan/super3000/internal/platform/validate"
	"github.com/taibuivan/super3000/pkg/uuid"
)

// Lister evaluates a selection. It is satisfied by [products.Service].
type Lister interface {
	Browse(ctx context.Context, state facet.State, locale i18n.Locale, source string) products.Listing
}

// # Service Layer

// Service owns the browse session lifecycle.
type Service struct {
	repository Repository
	lister     Lister
	ttl        time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a browse [Service] whose sessions idle out after ttl.
func NewService(repository Repository, lister Lister, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{repository: repository, lister: lister, ttl: ttl, logger: logger, now: time.Now}
}

// WithClock returns a copy of the service reading time from now.
func (service *Service) WithClock(now func() time.Time) *Service {
	clone := *service
	clone.now = now
	return &clone
}

/*
Create starts a session with the given edits applied to the empty selection.

Parameters:
  - ctx: context.Context
  - locale: i18n.Locale
  - transitions: []facet.Transition (may be empty)

Returns:
  - *View: The new session and its listing
  - error: VALIDATION_ERROR for an unknown field, or a store failure
*/
func (service *Service) Create(ctx context.Context, locale i18n.Locale, transitions []facet.Transition) (*View, error) {
	state, err := applyTransitions(facet.State{}, transitions)
	if err != nil {
		return nil, err
	}

	now := service.now().UTC()
	session := Session{ID: uuid.New(), State: state, CreatedAt: now, UpdatedAt: now}

	if err := service.repository.Save(ctx, session, service.ttl); err != nil {
		return nil, err
	}

	metrics.RecordSession(EventCreated)
	service.logger.InfoContext(ctx, "browse_session_created", slog.String("session_id", session.ID))

	return service.view(ctx, session, locale), nil
}

// Get returns the session and re-evaluates its listing. Reading a session
// extends its lifetime.
func (service *Service) Get(ctx context.Context, id string, locale i18n.Locale) (*View, error) {
	session, err := service.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return service.view(ctx, *session, locale), nil
}

/*
Apply runs edits against the stored selection in order. Dependent facets are
reset by the transitions themselves, so selecting a make drops the model and
year.

Parameters:
  - ctx: context.Context
  - id: string (session id)
  - locale: i18n.Locale
  - transitions: []facet.Transition (at least one)

Returns:
  - *View: The updated session
  - error: NOT_FOUND, VALIDATION_ERROR, or a store failure
*/
func (service *Service) Apply(ctx context.Context, id string, locale i18n.Locale, transitions []facet.Transition) (*View, error) {
	err := (&validate.Validator{}).
		Custom("transitions", len(transitions) == 0, "At least one transition is required").
		Err()
	if err != nil {
		return nil, err
	}

	session, err := service.load(ctx, id)
	if err != nil {
		return nil, err
	}

	state, err := applyTransitions(session.State, transitions)
	if err != nil {
		return nil, err
	}

	return service.store(ctx, *session, state, locale, EventUpdated)
}

// Clear resets every facet of the session. Clearing twice is the same as
// clearing once.
func (service *Service) Clear(ctx context.Context, id string, locale i18n.Locale) (*View, error) {
	session, err := service.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return service.store(ctx, *session, session.State.Cleared(), locale, EventCleared)
}

// Delete ends the session. A missing session is reported as NOT_FOUND.
func (service *Service) Delete(ctx context.Context, id string) error {
	if _, err := service.load(ctx, id); err != nil {
		return err
	}
	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordSession(EventDeleted)
	service.logger.InfoContext(ctx, "browse_session_deleted", slog.String("session_id", id))
	return nil
}

// # Helpers

func (service *Service) load(ctx context.Context, id string) (*Session, error) {
	if !uuid.IsValid(id) {
		return nil, apperr.NotFound("Browse session")
	}

	session, err := service.repository.Get(ctx, id, service.ttl)
	if err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			metrics.RecordSession(EventExpired)
		}
		return nil, err
	}
	return session, nil
}

func (service *Service) store(ctx context.Context, session Session, state facet.State, locale i18n.Locale, event string) (*View, error) {
	session.State = state
	session.UpdatedAt = service.now().UTC()

	if err := service.repository.Save(ctx, session, service.ttl); err != nil {
		return nil, err
	}

	metrics.RecordSession(event)
	service.logger.DebugContext(ctx, "browse_session_"+event, slog.String("session_id", session.ID))

	return service.view(ctx, session, locale), nil
}

func (service *Service) view(ctx context.Context, session Session, locale i18n.Locale) *View {
	return &View{
		ID:        session.ID,
		ExpiresAt: service.now().UTC().Add(service.ttl),
		Listing:   service.lister.Browse(ctx, session.State, locale, SourceBrowse),
	}
}

func applyTransitions(state facet.State, transitions []facet.Transition) (facet.State, error) {
	next, err := state.ApplyAll(transitions)
	if err != nil {
		var unknown *facet.ErrUnknownField
		if errors.As(err, &unknown) {
			return state, apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   "field",
				Message: fmt.Sprintf("Unknown facet %q", unknown.Field),
			})
		}
		return state, err
	}
	return next, nil
}
