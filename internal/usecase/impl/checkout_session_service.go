package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"eligibility/config"
	deliverycontext "eligibility/internal/delivery/context"
	"eligibility/internal/domain/entity"
	domainerrors "eligibility/internal/domain/errors"
	"eligibility/internal/domain/service"
	"eligibility/internal/errors"
	"eligibility/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	eventBufferSize = 256
	publishTimeout  = 5 * time.Second
)

// CheckoutSessionServiceParams holds dependencies for the session registry, injected by Fx
type CheckoutSessionServiceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Resolver  usecase.AddressResolver
	Evaluator usecase.DistanceEvaluator
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder `optional:"true"`
	Logger    *slog.Logger
}

type checkoutSession struct {
	id         string
	controller usecase.EligibilityController
	lastSeen   atomic.Int64
}

func (s *checkoutSession) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *checkoutSession) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastSeen.Load()))
}

// checkoutSessionService owns one eligibility controller per checkout session
type checkoutSessionService struct {
	resolver    usecase.AddressResolver
	evaluator   usecase.DistanceEvaluator
	publisher   service.EventPublisher
	metrics     service.MetricsRecorder
	logger      *slog.Logger
	restaurants *entity.RestaurantLocation

	thresholdKm    float64
	defaultCenter  entity.Coordinate
	resolveTimeout time.Duration
	idleTimeout    time.Duration
	sweepInterval  time.Duration
	maxSessions    int

	mu       sync.RWMutex
	sessions map[string]*checkoutSession
	stopped  bool

	// controllers removed from sessions but still closing
	closing sync.WaitGroup

	events     chan *service.EligibilityEvent
	dispatchWg sync.WaitGroup
	stopSweep  context.CancelFunc
	sweepDone  chan struct{}
	now        func() time.Time
}

// NewCheckoutSessionService creates the session registry. Idle sessions are
// swept and events dispatched while the application runs.
func NewCheckoutSessionService(params CheckoutSessionServiceParams) usecase.CheckoutSessionUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	cfg := params.Config
	srv := &checkoutSessionService{
		resolver:       params.Resolver,
		evaluator:      params.Evaluator,
		publisher:      params.Publisher,
		metrics:        metrics,
		logger:         params.Logger,
		restaurants:    entity.NewRestaurantLocation(cfg.Delivery.Restaurants),
		thresholdKm:    cfg.Delivery.ThresholdKm,
		defaultCenter:  entity.Coordinate{Lat: cfg.Delivery.DefaultCenter.Latitude, Lng: cfg.Delivery.DefaultCenter.Longitude},
		resolveTimeout: cfg.Geocoding.Timeout,
		idleTimeout:    cfg.Session.IdleTimeout,
		sweepInterval:  cfg.Session.SweepInterval,
		maxSessions:    cfg.Session.MaxSessions,
		sessions:       make(map[string]*checkoutSession),
		events:         make(chan *service.EligibilityEvent, eventBufferSize),
		sweepDone:      make(chan struct{}),
		now:            time.Now,
	}

	params.Lc.Append(fx.Hook{
		OnStart: srv.start,
		OnStop:  srv.stop,
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutSessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *checkoutSessionService) start(_ context.Context) error {
	sweepCtx, cancel := context.WithCancel(context.Background())
	srv.stopSweep = cancel

	srv.dispatchWg.Add(1)
	go srv.dispatch()
	go srv.sweep(sweepCtx)

	return nil
}

// stop closes every session, waits for closes already in progress, then
// drains the event queue
func (srv *checkoutSessionService) stop(_ context.Context) error {
	if srv.stopSweep != nil {
		srv.stopSweep()
		<-srv.sweepDone
	}

	srv.mu.Lock()
	srv.stopped = true
	sessions := srv.sessions
	srv.sessions = make(map[string]*checkoutSession)
	srv.mu.Unlock()

	for _, sess := range sessions {
		if err := sess.controller.Close(); err != nil {
			srv.logger.Warn("Failed to close session", slog.String("session_id", sess.id), slog.Any("error", err))
		}
	}
	srv.metrics.SessionsActive(0)

	// their observers may still queue events
	srv.closing.Wait()

	close(srv.events)
	srv.dispatchWg.Wait()

	srv.logger.Info("Checkout sessions closed", slog.Int("count", len(sessions)))

	return nil
}

// CreateSession starts a new controller for one checkout form
func (srv *checkoutSessionService) CreateSession(ctx context.Context) (*usecase.SessionInfo, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.stopped {
		return nil, errors.WithStack(domainerrors.ErrControllerClosed)
	}
	if srv.maxSessions > 0 && len(srv.sessions) >= srv.maxSessions {
		return nil, errors.WithStack(domainerrors.ErrSessionLimitExceeded)
	}

	id := uuid.NewString()
	logger := srv.logger.With(slog.String("session_id", id))

	controller := NewEligibilityController(ControllerParams{
		Resolver:       srv.resolver,
		Evaluator:      srv.evaluator,
		Restaurants:    srv.restaurants,
		ThresholdKm:    srv.thresholdKm,
		DefaultCenter:  srv.defaultCenter,
		ResolveTimeout: srv.resolveTimeout,
		Metrics:        srv.metrics,
		Logger:         logger,
	})
	controller.AddEligibilityObserver(srv.eventObserver(id, controller))

	sess := &checkoutSession{id: id, controller: controller}
	sess.touch(srv.now())
	srv.sessions[id] = sess
	srv.metrics.SessionsActive(len(srv.sessions))

	srv.log(ctx).Info("Checkout session created", slog.String("session_id", id))

	return &usecase.SessionInfo{ID: id}, nil
}

// CloseSession closes the controller and forgets the session
func (srv *checkoutSessionService) CloseSession(ctx context.Context, sessionID string) error {
	srv.mu.Lock()
	sess, ok := srv.sessions[sessionID]
	if ok {
		delete(srv.sessions, sessionID)
		srv.metrics.SessionsActive(len(srv.sessions))
		srv.closing.Add(1)
	}
	srv.mu.Unlock()

	if !ok {
		return errors.WithStack(domainerrors.ErrSessionNotFound)
	}
	defer srv.closing.Done()

	srv.log(ctx).Info("Checkout session closed", slog.String("session_id", sessionID))

	return sess.controller.Close()
}

func (srv *checkoutSessionService) SetRestaurant(ctx context.Context, sessionID string, restaurantID entity.RestaurantID) error {
	sess, err := srv.session(sessionID)
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Restaurant selected",
		slog.String("session_id", sessionID),
		slog.String("restaurant_id", string(restaurantID)),
	)

	return sess.controller.SetRestaurant(restaurantID)
}

func (srv *checkoutSessionService) SetCustomerAddress(ctx context.Context, sessionID, addressText string) error {
	sess, err := srv.session(sessionID)
	if err != nil {
		return err
	}

	return sess.controller.SetCustomerAddress(addressText)
}

func (srv *checkoutSessionService) SetAddress(ctx context.Context, sessionID string, address entity.Address) error {
	sess, err := srv.session(sessionID)
	if err != nil {
		return err
	}

	return sess.controller.SetAddress(address)
}

// ApplyPlace applies the selection and returns the form fields filled from it
func (srv *checkoutSessionService) ApplyPlace(ctx context.Context, sessionID string, place entity.Place) (*entity.Address, error) {
	sess, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.controller.ApplyPlace(place); err != nil {
		return nil, err
	}

	filled := entity.AddressFromComponents(entity.Address{}, place.Components)

	return &filled, nil
}

func (srv *checkoutSessionService) SetDeliveryMode(ctx context.Context, sessionID string, enabled bool) error {
	sess, err := srv.session(sessionID)
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Delivery mode changed",
		slog.String("session_id", sessionID),
		slog.Bool("enabled", enabled),
	)

	return sess.controller.SetDeliveryMode(enabled)
}

// GetEligibility reports whether the checkout form may proceed
func (srv *checkoutSessionService) GetEligibility(ctx context.Context, sessionID string) (*usecase.EligibilityView, error) {
	sess, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	snap := sess.controller.Snapshot()

	return &usecase.EligibilityView{
		SessionID:    sessionID,
		DistanceKm:   snap.Eligibility.DistanceKm,
		DistanceText: snap.Eligibility.DistanceText(),
		WithinRange:  snap.Eligibility.WithinRange,
		CanProceed:   !snap.DeliveryEnabled || snap.Eligibility.WithinRange,
	}, nil
}

func (srv *checkoutSessionService) GetSnapshot(ctx context.Context, sessionID string) (*usecase.ControllerSnapshot, error) {
	sess, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	snap := sess.controller.Snapshot()

	return &snap, nil
}

func (srv *checkoutSessionService) Restaurants() []entity.RestaurantEntry {
	return srv.restaurants.Entries()
}

// session looks up an open session and marks it as active
func (srv *checkoutSessionService) session(sessionID string) (*checkoutSession, error) {
	srv.mu.RLock()
	sess, ok := srv.sessions[sessionID]
	srv.mu.RUnlock()

	if !ok {
		return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
	}
	sess.touch(srv.now())

	return sess, nil
}

// eventObserver queues an EligibilityEvent for every eligibility change. It
// runs on the controller's loop and never blocks it.
func (srv *checkoutSessionService) eventObserver(sessionID string, controller usecase.EligibilityController) service.EligibilityObserver {
	return service.EligibilityObserverFunc(func(withinRange bool, eligibility entity.DeliveryEligibility) {
		event := &service.EligibilityEvent{
			EventID:      uuid.NewString(),
			SessionID:    sessionID,
			RestaurantID: string(controller.Snapshot().RestaurantID),
			DistanceKm:   eligibility.DistanceKm,
			WithinRange:  withinRange,
			OccurredAt:   srv.now().UTC(),
		}

		select {
		case srv.events <- event:
		default:
			srv.logger.Warn("Eligibility event queue full, event dropped",
				slog.String("session_id", sessionID),
				slog.String("event_id", event.EventID),
			)
		}
	})
}

func (srv *checkoutSessionService) dispatch() {
	defer srv.dispatchWg.Done()

	for event := range srv.events {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := srv.publisher.PublishEligibilityEvent(ctx, event); err != nil {
			srv.logger.Warn("Failed to publish eligibility event",
				slog.String("session_id", event.SessionID),
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}

func (srv *checkoutSessionService) sweep(ctx context.Context) {
	defer close(srv.sweepDone)

	if srv.idleTimeout <= 0 || srv.sweepInterval <= 0 {
		<-ctx.Done()

		return
	}

	ticker := time.NewTicker(srv.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.evictIdle()
		}
	}
}

// evictIdle closes every session unused for longer than the idle timeout
func (srv *checkoutSessionService) evictIdle() int {
	now := srv.now()

	srv.mu.Lock()
	var idle []*checkoutSession
	for id, sess := range srv.sessions {
		if sess.idleSince(now) > srv.idleTimeout {
			idle = append(idle, sess)
			delete(srv.sessions, id)
		}
	}
	if len(idle) > 0 {
		srv.metrics.SessionsActive(len(srv.sessions))
		srv.closing.Add(len(idle))
	}
	srv.mu.Unlock()

	for _, sess := range idle {
		srv.logger.Info("Evicting idle checkout session", slog.String("session_id", sess.id))
		if err := sess.controller.Close(); err != nil {
			srv.logger.Warn("Failed to close session", slog.String("session_id", sess.id), slog.Any("error", err))
		}
		srv.closing.Done()
	}

	return len(idle)
}
