// Package metrics defines all custom Prometheus metrics for the
// ResearchSphere hub API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "researchhub"

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// PapersCreatedTotal counts uploaded papers.
// Label:
//   - type: "PAPER", "JOURNAL" or "CONFERENCE"
var PapersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "papers_created_total",
		Help:      "Total number of research papers uploaded, by type.",
	},
	[]string{"type"},
)

// BookmarksTotal counts bookmark mutations.
// Label:
//   - action: "added" or "removed"
var BookmarksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmarks_total",
		Help:      "Total number of bookmark additions and removals.",
	},
	[]string{"action"},
)
