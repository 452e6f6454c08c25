// Package metrics defines and registers all custom Prometheus metrics for the
// bookstore API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics self-register with the default Prometheus registry via promauto;
// HTTP-level metrics come from the echoprometheus middleware wired in the
// router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "account_disabled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the auth middleware chain.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token",
//     "token_expired", or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or role gating.",
	},
	[]string{"reason"},
)

// OrdersCreatedTotal counts order submissions.
// Label:
//   - result: "created" or "replayed" (idempotency-key hit)
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of order submissions, labelled by outcome.",
	},
	[]string{"result"},
)

// BooksCreatedTotal counts catalog additions.
var BooksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_created_total",
		Help:      "Total number of books added to the catalog.",
	},
)
