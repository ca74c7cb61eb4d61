package uistate

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
)

// ErrNotFound means nothing was persisted yet for the user.
var ErrNotFound = errors.New("ui state not found")

type RecordRef struct {
	Entity string `json:"entity" binding:"required,oneof=booking venue client invoice"`
	ID     uint   `json:"id" binding:"required"`
}

// State is what the dashboard used to keep in browser local storage.
type State struct {
	SidebarCollapsed bool       `json:"sidebar_collapsed"`
	SelectedRecord   *RecordRef `json:"selected_record"`
	CalendarView     string     `json:"calendar_view" binding:"omitempty,oneof=month week day"`
}

func Default() State {
	return State{CalendarView: "month"}
}

func (s State) Validate() error {
	switch s.CalendarView {
	case "", "month", "week", "day":
	default:
		return httperr.ErrValidation("calendar_view", "invalid_calendar_view")
	}
	if s.SelectedRecord != nil {
		switch s.SelectedRecord.Entity {
		case "booking", "venue", "client", "invoice":
		default:
			return httperr.ErrValidation("selected_record.entity", "invalid_entity")
		}
	}
	return nil
}

type Store interface {
	Load(ctx context.Context, userID uint) (State, error)
	Save(ctx context.Context, userID uint, s State) error
}

// Service applies defaults on read and validation on write.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Get(ctx context.Context, userID uint) (State, error) {
	s, err := svc.store.Load(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return State{}, err
	}
	if s.CalendarView == "" {
		s.CalendarView = Default().CalendarView
	}
	return s, nil
}

func (svc *Service) Put(ctx context.Context, userID uint, s State) (State, error) {
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	if s.CalendarView == "" {
		s.CalendarView = Default().CalendarView
	}
	if err := svc.store.Save(ctx, userID, s); err != nil {
		return State{}, err
	}
	return s, nil
}
