package models

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	operationAssign = "assign"
	operationEdit   = "edit"
	operationRemove = "remove"
)

// LedgerOutcomes counts the results of allocation ledger operations.
var LedgerOutcomes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "How many allocation ledger operations have been processed, partitioned by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

func recordLedgerOutcome(operation string, err error) {
	LedgerOutcomes.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidAllocationValue):
		return "invalid_value"
	case errors.Is(err, ErrAllocationExceeded):
		return "exceeded"
	case errors.Is(err, ErrAllocationDuplicate):
		return "duplicate"
	case errors.Is(err, ErrResourceNotFound):
		return "not_found"
	default:
		return "error"
	}
}
