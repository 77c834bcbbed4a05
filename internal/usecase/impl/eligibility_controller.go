package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"eligibility/internal/domain/entity"
	domainerrors "eligibility/internal/domain/errors"
	"eligibility/internal/domain/service"
	"eligibility/internal/errors"
	"eligibility/internal/usecase"
)

const (
	defaultResolveTimeout = 10 * time.Second
	eventQueueSize        = 64
)

// ControllerParams configures one eligibility controller
type ControllerParams struct {
	Resolver       usecase.AddressResolver
	Evaluator      usecase.DistanceEvaluator
	Restaurants    *entity.RestaurantLocation
	ThresholdKm    float64
	DefaultCenter  entity.Coordinate
	ResolveTimeout time.Duration
	Metrics        service.MetricsRecorder
	Logger         *slog.Logger
}

// sequenceState is the resolution state machine of one target
type sequenceState struct {
	tokens entity.TokenCounter
	state  entity.ResolutionState
	coord  *entity.Coordinate
	query  string
}

// invalidate clears the coordinate and supersedes any pending request
func (s *sequenceState) invalidate() {
	s.tokens.Next()
	s.state = entity.StateIdle
	s.coord = nil
	s.query = ""
}

// eligibilityController serializes every state mutation through a single
// goroutine. Commands and resolution completions share one queue, so the
// token comparison and the apply step can never interleave.
type eligibilityController struct {
	resolver       usecase.AddressResolver
	evaluator      usecase.DistanceEvaluator
	restaurants    *entity.RestaurantLocation
	thresholdKm    float64
	defaultCenter  entity.Coordinate
	resolveTimeout time.Duration
	metrics        service.MetricsRecorder
	logger         *slog.Logger

	// owned by the loop goroutine
	restaurantID     entity.RestaurantID
	restaurant       sequenceState
	address          sequenceState
	deliveryEnabled  bool
	lastAddressQuery string
	lastPlace        *entity.Coordinate
	eligibility      entity.DeliveryEligibility
	view             entity.MapView

	snapshot atomic.Pointer[usecase.ControllerSnapshot]

	observersMu          sync.RWMutex
	eligibilityObservers []service.EligibilityObserver
	mapObservers         []service.MapObserver

	events   chan func()
	inflight sync.WaitGroup
	baseCtx  context.Context
	closeMu  sync.RWMutex
	closed   bool
	done     chan struct{}
}

// NewEligibilityController creates a controller and starts its event loop
func NewEligibilityController(params ControllerParams) usecase.EligibilityController {
	thresholdKm := params.ThresholdKm
	if thresholdKm <= 0 {
		thresholdKm = DefaultThresholdKm
	}
	resolveTimeout := params.ResolveTimeout
	if resolveTimeout <= 0 {
		resolveTimeout = defaultResolveTimeout
	}
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	evaluator := params.Evaluator
	if evaluator == nil {
		evaluator = NewDistanceEvaluator()
	}

	c := &eligibilityController{
		resolver:        params.Resolver,
		evaluator:       evaluator,
		restaurants:     params.Restaurants,
		thresholdKm:     thresholdKm,
		defaultCenter:   params.DefaultCenter,
		resolveTimeout:  resolveTimeout,
		metrics:         metrics,
		logger:          logger,
		restaurant:      sequenceState{tokens: entity.NewTokenCounter(entity.SequenceRestaurant), state: entity.StateIdle},
		address:         sequenceState{tokens: entity.NewTokenCounter(entity.SequenceAddress), state: entity.StateIdle},
		deliveryEnabled: true,
		eligibility:     entity.UndeterminedEligibility(),
		events:          make(chan func(), eventQueueSize),
		baseCtx:         context.Background(),
		done:            make(chan struct{}),
	}
	c.view = entity.NewMapView(nil, nil, c.defaultCenter)
	c.storeSnapshot()

	go c.run()

	return c
}

func (c *eligibilityController) run() {
	defer close(c.done)

	for fn := range c.events {
		fn()
	}
}

// submit queues fn for the loop goroutine. Observers run on that goroutine
// and must not call Close.
func (c *eligibilityController) submit(fn func()) error {
	c.closeMu.RLock()
	defer c.closeMu.RUnlock()

	if c.closed {
		return errors.WithStack(domainerrors.ErrControllerClosed)
	}
	c.events <- fn

	return nil
}

// SetRestaurant selects the restaurant whose location is resolved next. An
// empty or unknown identifier clears the restaurant coordinate.
func (c *eligibilityController) SetRestaurant(id entity.RestaurantID) error {
	return c.submit(func() { c.handleSetRestaurant(id.Normalize()) })
}

// SetCustomerAddress resolves free text. Only the latest call is ever applied.
func (c *eligibilityController) SetCustomerAddress(addressText string) error {
	return c.submit(func() { c.handleSetAddress(strings.TrimSpace(addressText)) })
}

// SetAddress resolves the query built from the checkout form's address fields
func (c *eligibilityController) SetAddress(address entity.Address) error {
	return c.SetCustomerAddress(address.Query())
}

// ApplyPlace applies an autocomplete selection that already carries geometry
func (c *eligibilityController) ApplyPlace(place entity.Place) error {
	return c.submit(func() { c.handlePlace(place) })
}

// SetDeliveryMode switches between delivery and pickup. Pickup clears the
// customer coordinate; delivery re-applies the last chosen place or
// re-resolves the last entered address.
func (c *eligibilityController) SetDeliveryMode(enabled bool) error {
	return c.submit(func() { c.handleDeliveryMode(enabled) })
}

// CurrentEligibility returns the latest derived value
func (c *eligibilityController) CurrentEligibility() entity.DeliveryEligibility {
	return c.snapshot.Load().Eligibility
}

// Snapshot returns a consistent copy of the controller state
func (c *eligibilityController) Snapshot() usecase.ControllerSnapshot {
	return *c.snapshot.Load()
}

func (c *eligibilityController) AddEligibilityObserver(observer service.EligibilityObserver) {
	c.observersMu.Lock()
	defer c.observersMu.Unlock()

	c.eligibilityObservers = append(c.eligibilityObservers, observer)
}

func (c *eligibilityController) AddMapObserver(observer service.MapObserver) {
	c.observersMu.Lock()
	defer c.observersMu.Unlock()

	c.mapObservers = append(c.mapObservers, observer)
}

// Close rejects further commands, lets in-flight resolutions complete and
// drains their results before returning.
func (c *eligibilityController) Close() error {
	c.closeMu.Lock()
	if c.closed {
		c.closeMu.Unlock()
		<-c.done

		return nil
	}
	c.closed = true
	c.closeMu.Unlock()

	// every command queued before closing has been handled once the barrier runs
	barrier := make(chan struct{})
	c.events <- func() { close(barrier) }
	<-barrier

	c.inflight.Wait()
	close(c.events)
	<-c.done

	return nil
}

func (c *eligibilityController) handleSetRestaurant(id entity.RestaurantID) {
	addr, ok := c.restaurants.Lookup(id)
	if id == "" || !ok {
		if id != "" {
			c.logger.Warn("Unknown restaurant, location cleared", slog.String("restaurant_id", string(id)))
		}
		c.restaurantID = ""
		c.restaurant.invalidate()
		c.publish()

		return
	}

	// a different restaurant makes the current coordinate meaningless
	if addr != c.restaurant.query {
		c.restaurant.coord = nil
	}
	c.restaurantID = id
	c.startResolution(&c.restaurant, addr)
	c.publish()
}

func (c *eligibilityController) handleSetAddress(query string) {
	c.lastAddressQuery = query
	c.lastPlace = nil
	if !c.deliveryEnabled {
		c.logger.Debug("Pickup selected, address not resolved")

		return
	}

	if query == "" {
		c.address.invalidate()
		c.publish()

		return
	}

	if query != c.address.query {
		c.address.coord = nil
	}
	c.startResolution(&c.address, query)
	c.publish()
}

func (c *eligibilityController) handlePlace(place entity.Place) {
	if place.Location == nil {
		c.logger.Warn("Place contains no geometry")

		return
	}
	if !place.Location.Valid() {
		c.logger.Warn("Place has an invalid coordinate", slog.String("coordinate", place.Location.String()))

		return
	}

	loc := *place.Location
	c.lastAddressQuery = entity.AddressFromComponents(entity.Address{}, place.Components).Query()
	c.lastPlace = &loc
	if !c.deliveryEnabled {
		return
	}

	c.applyPlace()
	c.publish()
}

// applyPlace takes the selected place's coordinate as resolved, superseding
// any pending lookup
func (c *eligibilityController) applyPlace() {
	loc := *c.lastPlace
	c.address.tokens.Next()
	c.address.state = entity.StateResolved
	c.address.coord = &loc
	c.address.query = c.lastAddressQuery
}

func (c *eligibilityController) handleDeliveryMode(enabled bool) {
	if enabled == c.deliveryEnabled {
		return
	}
	c.deliveryEnabled = enabled

	if !enabled {
		c.address.invalidate()
		c.publish()

		return
	}

	switch {
	case c.lastPlace != nil:
		c.applyPlace()
	case c.lastAddressQuery != "":
		c.startResolution(&c.address, c.lastAddressQuery)
	}
	c.publish()
}

// startResolution issues a new token for seq and resolves query off the loop
func (c *eligibilityController) startResolution(seq *sequenceState, query string) {
	token := seq.tokens.Next()
	seq.state = entity.StateResolving
	seq.query = query

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		ctx, cancel := context.WithTimeout(c.baseCtx, c.resolveTimeout)
		coord, err := c.resolver.Resolve(ctx, query)
		cancel()

		c.events <- func() { c.handleResolution(seq, token, coord, err) }
	}()
}

// handleResolution applies a completion only if its token is still the latest
func (c *eligibilityController) handleResolution(seq *sequenceState, token entity.ResolutionToken, coord entity.Coordinate, err error) {
	if !seq.tokens.IsLatest(token) {
		c.logger.Debug("Discarding superseded resolution",
			slog.String("sequence", string(token.Sequence)),
			slog.Uint64("token", token.Value),
		)
		c.metrics.ResolutionDiscarded(string(token.Sequence))

		return
	}

	if err != nil {
		c.logger.Warn("Resolution failed",
			slog.String("sequence", string(token.Sequence)),
			slog.String("query", seq.query),
			slog.Any("error", err),
		)
		seq.state = entity.StateFailed
		seq.coord = nil
	} else {
		seq.state = entity.StateResolved
		seq.coord = &coord
	}

	c.publish()
}

// publish derives eligibility and the map view from the coordinates, stores a
// new snapshot and notifies observers of what changed
func (c *eligibilityController) publish() {
	eligibility := c.deriveEligibility()
	view := entity.NewMapView(c.restaurant.coord, c.address.coord, c.defaultCenter)

	eligibilityChanged := !eligibility.Equal(c.eligibility)
	viewChanged := !mapViewEqual(view, c.view)
	c.eligibility = eligibility
	c.view = view
	c.storeSnapshot()

	if eligibilityChanged && eligibility.Determined() {
		c.metrics.EligibilityEvaluated(eligibility.WithinRange, *eligibility.DistanceKm)
	}

	c.observersMu.RLock()
	eligibilityObservers := append([]service.EligibilityObserver(nil), c.eligibilityObservers...)
	mapObservers := append([]service.MapObserver(nil), c.mapObservers...)
	c.observersMu.RUnlock()

	if eligibilityChanged {
		for _, o := range eligibilityObservers {
			o.OnEligibilityChanged(eligibility.WithinRange, eligibility)
		}
	}
	if eligibilityChanged || viewChanged {
		for _, o := range mapObservers {
			o.OnMapChanged(view)
		}
	}
}

func (c *eligibilityController) deriveEligibility() entity.DeliveryEligibility {
	if c.restaurant.coord == nil || c.address.coord == nil {
		return entity.UndeterminedEligibility()
	}

	eligibility, err := c.evaluator.Evaluate(*c.restaurant.coord, *c.address.coord, c.thresholdKm)
	if err != nil {
		c.logger.Warn("Distance evaluation failed", slog.Any("error", err))

		return entity.UndeterminedEligibility()
	}

	return eligibility
}

func (c *eligibilityController) storeSnapshot() {
	snap := usecase.ControllerSnapshot{
		RestaurantID:    c.restaurantID,
		Restaurant:      copyCoordinate(c.restaurant.coord),
		Customer:        copyCoordinate(c.address.coord),
		RestaurantState: c.restaurant.state,
		AddressState:    c.address.state,
		DeliveryEnabled: c.deliveryEnabled,
		Eligibility:     c.eligibility,
		Map:             c.view,
	}
	c.snapshot.Store(&snap)
}

func copyCoordinate(c *entity.Coordinate) *entity.Coordinate {
	if c == nil {
		return nil
	}
	cp := *c

	return &cp
}

func mapViewEqual(a, b entity.MapView) bool {
	return coordinateEqual(a.Restaurant, b.Restaurant) &&
		coordinateEqual(a.Customer, b.Customer) &&
		a.DrawPath == b.DrawPath
}

func coordinateEqual(a, b *entity.Coordinate) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
