package servingwindow

import "time"

// Clock отдает текущий момент времени. В тестах подменяется фиксированным значением.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock всегда возвращает одно и то же время.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
