package service

import (
	"eligibility/internal/domain/entity"
)

// EligibilityObserver is the checkout form's proceed gate. It is invoked on
// every eligibility change.
type EligibilityObserver interface {
	OnEligibilityChanged(withinRange bool, eligibility entity.DeliveryEligibility)
}

// MapObserver receives the map view on every coordinate or eligibility change.
type MapObserver interface {
	OnMapChanged(view entity.MapView)
}

// EligibilityObserverFunc adapts a function to EligibilityObserver
type EligibilityObserverFunc func(withinRange bool, eligibility entity.DeliveryEligibility)

func (f EligibilityObserverFunc) OnEligibilityChanged(withinRange bool, eligibility entity.DeliveryEligibility) {
	f(withinRange, eligibility)
}

// MapObserverFunc adapts a function to MapObserver
type MapObserverFunc func(view entity.MapView)

func (f MapObserverFunc) OnMapChanged(view entity.MapView) {
	f(view)
}
