package job

import (
	"log/slog"
	"time"
)

type sweeper interface {
	Sweep(ttl time.Duration) int
}

// SessionSweepJob evicts console workspaces nobody has touched within ttl.
type SessionSweepJob struct {
	store sweeper
	ttl   time.Duration
}

func NewSessionSweepJob(store sweeper, ttl time.Duration) *SessionSweepJob {
	return &SessionSweepJob{store: store, ttl: ttl}
}

func (j *SessionSweepJob) SweepSessions() {
	removed := j.store.Sweep(j.ttl)
	if removed > 0 {
		slog.Info("evicted idle console sessions", "count", removed)
	}
}

// Schedule returns the cron expression the job runs on: a tenth of the ttl,
// bounded to at least a minute.
func (j *SessionSweepJob) Schedule() string {
	every := j.ttl / 10
	if every < time.Minute {
		every = time.Minute
	}
	return "@every " + every.Truncate(time.Second).String()
}
