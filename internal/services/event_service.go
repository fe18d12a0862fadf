package services

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"weddy/internal/models/db_models"
	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/internal/repositories"
	"weddy/pkg/utils"
)

// maxEventRange bounds ListEventsBetween to a little over a year.
const maxEventRange = 400 * 24 * time.Hour

type EventServiceInterface interface {
	AppendEvent(ctx context.Context, actor Actor, req request_models.AppendEventRequest) (*response_models.PlanEvent, error)
	ListEvents(ctx context.Context, actor Actor, date string) ([]response_models.PlanEvent, error)
	ListEventsBetween(ctx context.Context, actor Actor, from, to string) ([]response_models.PlanEvent, error)
}

type EventService struct {
	repo repositories.EventRepository
}

func NewEventService(repo repositories.EventRepository) EventServiceInterface {
	return &EventService{repo: repo}
}

func (s *EventService) AppendEvent(ctx context.Context, actor Actor, req request_models.AppendEventRequest) (*response_models.PlanEvent, error) {
	if err := actor.requireGroup(); err != nil {
		return nil, err
	}
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !req.Kind.Valid() {
		return nil, eris.Wrapf(utils.ErrInvalidEvent, "unknown kind %q", req.Kind)
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, eris.Wrap(utils.ErrInvalidEvent, "title is required")
	}

	ev := &db_models.PlanEvent{
		GroupID:     actor.GroupID,
		Date:        date,
		Kind:        req.Kind,
		Title:       title,
		Body:        strings.TrimSpace(req.Body),
		SelectionID: req.SelectionID,
		CreatedBy:   actor.UserID,
	}
	if err := s.repo.Append(ctx, ev); err != nil {
		zap.L().Error("append event", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	out := EventResponse(*ev)
	return &out, nil
}

func (s *EventService) ListEvents(ctx context.Context, actor Actor, date string) ([]response_models.PlanEvent, error) {
	if err := actor.requireGroup(); err != nil {
		return nil, err
	}
	d, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListByDate(ctx, actor.GroupID, d)
	if err != nil {
		zap.L().Error("list events", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return eventResponses(events), nil
}

func (s *EventService) ListEventsBetween(ctx context.Context, actor Actor, from, to string) ([]response_models.PlanEvent, error) {
	if err := actor.requireGroup(); err != nil {
		return nil, err
	}
	f, err := utils.ParseDateKST(from)
	if err != nil {
		return nil, eris.Wrap(utils.ErrInvalidEvent, "from must be YYYY-MM-DD")
	}
	t, err := utils.ParseDateKST(to)
	if err != nil {
		return nil, eris.Wrap(utils.ErrInvalidEvent, "to must be YYYY-MM-DD")
	}
	if t.Before(f) || t.Sub(f) > maxEventRange {
		return nil, eris.Wrap(utils.ErrInvalidEvent, "date range is invalid")
	}

	events, err := s.repo.ListBetween(ctx, actor.GroupID, f.Format(time.DateOnly), t.Format(time.DateOnly))
	if err != nil {
		zap.L().Error("list events between", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return eventResponses(events), nil
}

func normalizeDate(s string) (string, error) {
	d, err := utils.ParseDateKST(s)
	if err != nil {
		return "", eris.Wrap(utils.ErrInvalidEvent, "date must be YYYY-MM-DD")
	}
	return d.Format(time.DateOnly), nil
}

func eventResponses(events []db_models.PlanEvent) []response_models.PlanEvent {
	out := make([]response_models.PlanEvent, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse(e))
	}
	return out
}
