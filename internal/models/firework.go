// Package models contains the value types shared across the fireworks model.
package models

// Firework defaults.
const (
	DefaultDuration = 1
	DefaultCost     = 20.0
)

// Firework is a single scheduled launch. It is never mutated after it has
// been added to a show.
type Firework struct {
	Time     int     // launch tick
	Duration int     // ticks spent in the air after launch
	Cost     float64
}

// NewFirework creates a firework. Validation belongs to the show that accepts it.
func NewFirework(time, duration int, cost float64) Firework {
	return Firework{
		Time:     time,
		Duration: duration,
		Cost:     cost,
	}
}

// IsUpAt reports whether the firework is airborne at tick t.
// Both the launch tick and the landing tick count as airborne.
func (f Firework) IsUpAt(t int) bool {
	return f.Time <= t && t <= f.Time+f.Duration
}

// EndTime returns the last tick at which the firework is airborne.
func (f Firework) EndTime() int {
	return f.Time + f.Duration
}
