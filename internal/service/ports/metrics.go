package ports

import "time"

// DecisionMetrics records booking decision outcomes for observability.
type DecisionMetrics interface {
	RecordAccepted(op string)
	RecordRejected(op, reason string)
	RecordCommitLatency(d time.Duration)
}
