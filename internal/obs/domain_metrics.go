package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// CheckoutItemsTotal counts add-to-checkout outcomes.
	CheckoutItemsTotal *prometheus.CounterVec
	// CheckoutTotalsTotal counts total-calculation outcomes.
	CheckoutTotalsTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		CheckoutItemsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_items_total",
			Help:      "Count of add-to-checkout outcomes.",
		}, []string{"result"})
		CheckoutTotalsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_totals_total",
			Help:      "Count of checkout total calculations by outcome.",
		}, []string{"result"})

		mustRegisterCollector(reg, CheckoutItemsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CheckoutItemsTotal = v
			}
		})
		mustRegisterCollector(reg, CheckoutTotalsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CheckoutTotalsTotal = v
			}
		})
	})
}

// CountItemAdded records an add-to-checkout outcome if metrics are registered.
func CountItemAdded(result string) {
	if CheckoutItemsTotal != nil {
		CheckoutItemsTotal.WithLabelValues(result).Inc()
	}
}

// CountTotalCalculation records a total-calculation outcome if metrics are registered.
func CountTotalCalculation(result string) {
	if CheckoutTotalsTotal != nil {
		CheckoutTotalsTotal.WithLabelValues(result).Inc()
	}
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
