package orm

import (
	"context"
	"time"
)

// Clock supplies the time stamped on createdAt columns.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

type clockKey struct{}

// WithClock makes Create, CreateAll and Session inserts under ctx stamp
// createdAt columns from c.
func WithClock(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, clockKey{}, c)
}

// now is the stamping time for ctx in UTC at microsecond precision, the
// finest granularity every dialect stores.
func now(ctx context.Context) time.Time {
	var t time.Time
	if c, ok := ctx.Value(clockKey{}).(Clock); ok {
		t = c.Now()
	} else {
		t = time.Now()
	}
	return t.UTC().Truncate(time.Microsecond)
}
