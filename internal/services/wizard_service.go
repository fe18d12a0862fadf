package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"weddy/internal/models/db_models"
	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/internal/wizard"
	"weddy/pkg/memcache"
	"weddy/pkg/utils"
)

type WizardServiceInterface interface {
	Start(actor Actor, category db_models.Category) (*response_models.WizardResponse, error)
	Get(actor Actor, sessionID string) (*response_models.WizardResponse, error)
	Answer(actor Actor, sessionID, value string) (*response_models.WizardResponse, error)
	Skip(actor Actor, sessionID string) (*response_models.WizardResponse, error)
	Back(actor Actor, sessionID string) (*response_models.WizardResponse, error)
	GoTo(actor Actor, sessionID string, step int) (*response_models.WizardResponse, error)
	// Build emits the search request of a session at its summary step.
	Build(actor Actor, sessionID string) (request_models.SearchRequest, error)
}

type wizardSession struct {
	mu    sync.Mutex
	owner uuid.UUID
	w     *wizard.Wizard
}

type WizardService struct {
	sessions memcache.Store[*wizardSession]
}

func NewWizardService(ttl time.Duration) WizardServiceInterface {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &WizardService{sessions: memcache.New[*wizardSession](ttl, 5*time.Minute)}
}

func (s *WizardService) Start(actor Actor, category db_models.Category) (*response_models.WizardResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}
	w, err := wizard.New(category)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	s.sessions.Set(id, &wizardSession{owner: actor.UserID, w: w})
	state := w.State(id)
	return &state, nil
}

// with runs fn on the caller's session under its lock.
func (s *WizardService) with(actor Actor, sessionID string, fn func(w *wizard.Wizard) error) (*response_models.WizardResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}
	sess, ok := s.sessions.Get(sessionID)
	if !ok || sess.owner != actor.UserID {
		return nil, utils.ErrWizardSessionNotFound
	}
	s.sessions.Touch(sessionID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if fn != nil {
		if err := fn(sess.w); err != nil {
			return nil, err
		}
	}
	state := sess.w.State(sessionID)
	return &state, nil
}

func (s *WizardService) Get(actor Actor, sessionID string) (*response_models.WizardResponse, error) {
	return s.with(actor, sessionID, nil)
}

func (s *WizardService) Answer(actor Actor, sessionID, value string) (*response_models.WizardResponse, error) {
	return s.with(actor, sessionID, func(w *wizard.Wizard) error { return w.Answer(value) })
}

func (s *WizardService) Skip(actor Actor, sessionID string) (*response_models.WizardResponse, error) {
	return s.with(actor, sessionID, (*wizard.Wizard).Skip)
}

func (s *WizardService) Back(actor Actor, sessionID string) (*response_models.WizardResponse, error) {
	return s.with(actor, sessionID, (*wizard.Wizard).Back)
}

func (s *WizardService) GoTo(actor Actor, sessionID string, step int) (*response_models.WizardResponse, error) {
	return s.with(actor, sessionID, func(w *wizard.Wizard) error { return w.GoTo(step) })
}

func (s *WizardService) Build(actor Actor, sessionID string) (request_models.SearchRequest, error) {
	var req request_models.SearchRequest
	_, err := s.with(actor, sessionID, func(w *wizard.Wizard) error {
		var err error
		req, err = w.Build()
		return err
	})
	return req, err
}
