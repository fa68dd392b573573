package metrics

import (
	"github.com/goldencart/storefront/internal/core/port"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ port.Metrics = (*Storefront)(nil)

// Storefront counts user-facing operations for the /metrics endpoint.
type Storefront struct {
	catalogLoads    *prometheus.CounterVec
	cartOps         *prometheus.CounterVec
	wishlistToggles *prometheus.CounterVec
	notifications   prometheus.Counter
}

func New(reg prometheus.Registerer) *Storefront {
	factory := promauto.With(reg)
	return &Storefront{
		catalogLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_catalog_loads_total",
			Help: "Catalog load cycles by outcome.",
		}, []string{"outcome"}),
		cartOps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_cart_ops_total",
			Help: "Cart mutations by operation.",
		}, []string{"op"}),
		wishlistToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_wishlist_toggles_total",
			Help: "Wishlist toggles by direction.",
		}, []string{"direction"}),
		notifications: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_notifications_total",
			Help: "Transient notifications shown.",
		}),
	}
}

func (m *Storefront) CatalogLoad(outcome string) {
	m.catalogLoads.WithLabelValues(outcome).Inc()
}

func (m *Storefront) CartOp(op string) {
	m.cartOps.WithLabelValues(op).Inc()
}

func (m *Storefront) WishlistToggle(added bool) {
	direction := "remove"
	if added {
		direction = "add"
	}
	m.wishlistToggles.WithLabelValues(direction).Inc()
}

func (m *Storefront) NotificationShown() {
	m.notifications.Inc()
}
