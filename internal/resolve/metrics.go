package resolve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var modelsResolved = promauto.NewCounter(prometheus.CounterOpts{
	Name: "modelres_models_resolved_total",
	Help: "The total number of model schemas built and registered",
})

var propertiesDropped = promauto.NewCounter(prometheus.CounterOpts{
	Name: "modelres_properties_dropped_total",
	Help: "The total number of properties omitted because their type did not resolve",
})

var cycleShortCircuits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "modelres_cycle_short_circuits_total",
	Help: "The total number of re-entrant model requests answered with a reference",
})

var subtypeCompositions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "modelres_subtype_compositions_total",
	Help: "The total number of subtype compositions, by whether they were deferred",
}, []string{"mode"})
