package job

import "time"

// RetryPolicy bounds how often and how soon a failed job is re-attempted.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	MaxBackoff  time.Duration
}

// Delay is the wait after the given number of failed attempts. It doubles per
// attempt and is capped at MaxBackoff.
func (p RetryPolicy) Delay(attempts int) time.Duration {
	d := p.Backoff
	for i := 1; i < attempts; i++ {
		if p.MaxBackoff > 0 && d >= p.MaxBackoff/2 {
			return p.MaxBackoff
		}
		d *= 2
	}
	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

// NextAttemptAt returns nil once attempts reaches MaxAttempts.
func (p RetryPolicy) NextAttemptAt(attempts int, failedAt time.Time) *time.Time {
	if attempts >= p.MaxAttempts {
		return nil
	}
	next := failedAt.Add(p.Delay(attempts))
	return &next
}
