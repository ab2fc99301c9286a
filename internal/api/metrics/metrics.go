// Package metrics defines all custom Prometheus metrics for the membership
// API. It is the single source of truth for metric names, labels, and help
// strings; collectors register themselves with the default registry on
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "membership"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ContactSubmissionsTotal counts contact-form submissions.
// Label:
//   - result: "accepted" (queued for delivery, honeypot hits included),
//     "rate_limited", or "rejected"
var ContactSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact form submissions, by result.",
	},
	[]string{"result"},
)

// LedgerSavesTotal counts successful bulk ledger replacements.
// Label:
//   - class: the user class whose grid was replaced
var LedgerSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_saves_total",
		Help:      "Total number of successful bulk ledger saves, by user class.",
	},
	[]string{"class"},
)

// AccountMutationsTotal counts account writes through the admin API.
// Labels:
//   - class: the user class the account belongs to
//   - action: "add", "update", or "delete"
var AccountMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_mutations_total",
		Help:      "Total number of successful account mutations, by class and action.",
	},
	[]string{"class", "action"},
)

// TodoMutationsTotal counts todo-board writes through the admin API.
// Label:
//   - action: "add", "edit", "toggle", or "delete"
var TodoMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "todo_mutations_total",
		Help:      "Total number of successful todo mutations, by action.",
	},
	[]string{"action"},
)
