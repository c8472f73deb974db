package session

import (
	"context"
	"errors"
	"sync"

	"foodorder/internal/core/application/notify"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/selection"
	"foodorder/internal/pkg/errs"
)

// RemoteRepository is the narrow persistence port a Session needs. The
// composition root adapts the application's unit-of-work machinery to it.
type RemoteRepository interface {
	Fetch(ctx context.Context, id kernel.UUID) (*order.Order, error)
	Create(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
}

// User-facing confirmation messages.
const (
	MessageOrderPlaced  = "Your order has been placed"
	MessageOrderUpdated = "Your order has been updated"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created via a constructor.
	ErrSessionIsNotConstructed = errs.NewValueIsRequiredError("session must be created via NewCreateSession or NewEditSession")

	// ErrLoadFailed means the order an edit session targets could not be loaded.
	// The session is unusable; the caller must abandon it.
	ErrLoadFailed = errors.New("order being edited could not be loaded")

	// ErrSubmissionFailed wraps the cause of a failed submission. The ledger is
	// preserved and the session accepts another Submit.
	ErrSubmissionFailed = errors.New("order submission failed")

	// ErrSubmissionInFlight is returned by Submit while a previous submission has
	// not yet settled.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")

	// ErrSessionCompleted is returned by Submit after a successful submission.
	ErrSessionCompleted = errors.New("session has already completed")

	// ErrNotAnEditSession is returned by LoadExisting on a create session.
	ErrNotAnEditSession = errors.New("session does not edit an existing order")

	// ErrAlreadyLoaded is returned by LoadExisting when the order was loaded before.
	ErrAlreadyLoaded = errors.New("order has already been loaded")

	// ErrNotLoaded is returned by Submit on an edit session before a successful LoadExisting.
	ErrNotLoaded = errors.New("order has not been loaded")
)

// Session drives one order composition from first unit to confirmed
// submission. It owns the ledger and the quantity editor bound to it, decides
// create-versus-update from its kind, guarantees at most one submission in
// flight, and hands the confirmation to the notification sequencer.
//
// Session is safe for concurrent Submit calls; all other methods are expected
// to be driven from a single goroutine.
type Session struct {
	repo     RemoteRepository
	notifier *notify.Sequencer

	kind   Kind
	editID kernel.UUID
	ledger *order.Order
	editor *selection.Editor

	mu     sync.Mutex
	phase  Phase
	loaded bool
}

// NewCreateSession starts a session composing a brand-new order.
func NewCreateSession(repo RemoteRepository, notifier *notify.Sequencer) (*Session, error) {
	return newSession(repo, notifier, KindCreate, kernel.UUID{})
}

// NewEditSession starts a session revising the persisted order with the given
// identifier. The ledger stays empty until LoadExisting succeeds.
func NewEditSession(repo RemoteRepository, notifier *notify.Sequencer, orderID kernel.UUID) (*Session, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return newSession(repo, notifier, KindEdit, orderID)
}

func newSession(repo RemoteRepository, notifier *notify.Sequencer, kind Kind, editID kernel.UUID) (*Session, error) {
	if repo == nil {
		return nil, errs.NewValueIsRequiredError("repo")
	}
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("notifier")
	}

	ledger := order.NewDraft()
	editor, err := selection.NewEditor(ledger)
	if err != nil {
		return nil, err
	}

	return &Session{
		repo:     repo,
		notifier: notifier,
		kind:     kind,
		editID:   editID,
		ledger:   ledger,
		editor:   editor,
		phase:    PhaseIdle,
		loaded:   kind == KindCreate,
	}, nil
}

// Kind reports whether the session creates a new order or edits an existing one.
func (s *Session) Kind() Kind {
	return s.kind
}

// Phase reports the current submission lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Ledger exposes the order under composition.
func (s *Session) Ledger() *order.Order {
	return s.ledger
}

// Editor exposes the quantity editor bound to the session's ledger.
func (s *Session) Editor() *selection.Editor {
	return s.editor
}

// LoadExisting fetches the order an edit session targets and hydrates the
// ledger with its groupings and notes. Any failure, including the order not
// existing, yields ErrLoadFailed wrapping the cause: a partially loaded edit
// session must never silently degrade into a create session.
func (s *Session) LoadExisting(ctx context.Context) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.kind != KindEdit {
		return ErrNotAnEditSession
	}

	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.mu.Unlock()

	fetched, err := s.repo.Fetch(ctx, s.editID)
	if err != nil {
		return errors.Join(ErrLoadFailed, err)
	}
	if err := s.ledger.Hydrate(fetched); err != nil {
		return errors.Join(ErrLoadFailed, err)
	}

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Submit persists the ledger, creating or updating according to the session's
// kind. At most one submission is in flight at a time; a concurrent call is
// rejected with ErrSubmissionInFlight. On failure the ledger is untouched and
// the session accepts a retry. On success the session is complete, the
// confirmation message is shown, and continuation fires exactly once after the
// notification ends.
func (s *Session) Submit(ctx context.Context, continuation func()) error {
	if err := s.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	switch s.phase {
	case PhaseSubmitting:
		s.mu.Unlock()
		return ErrSubmissionInFlight
	case PhaseSucceeded:
		s.mu.Unlock()
		return ErrSessionCompleted
	}
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	s.phase = PhaseSubmitting
	s.mu.Unlock()

	var err error
	message := MessageOrderPlaced
	if s.kind == KindEdit {
		err = s.repo.Update(ctx, s.ledger)
		message = MessageOrderUpdated
	} else {
		err = s.repo.Create(ctx, s.ledger)
	}

	s.mu.Lock()
	if err != nil {
		s.phase = PhaseFailed
		s.mu.Unlock()
		return errors.Join(ErrSubmissionFailed, err)
	}
	s.phase = PhaseSucceeded
	s.mu.Unlock()

	s.notifier.Show(message, continuation)
	return nil
}

func (s *Session) validate() error {
	if s == nil || s.repo == nil {
		return ErrSessionIsNotConstructed
	}
	return nil
}
