package show

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"fireworks-show/internal/errors"
	"fireworks-show/internal/logging"
	"fireworks-show/internal/models"
)

// timeline is the state common to both show variants. Exported methods take
// the lock; lowercase ones expect the caller to hold it.
type timeline struct {
	mu        sync.Mutex
	name      string
	capacity  int
	fireworks []models.Firework
	current   int
	warnings  warningSet
	logger    zerolog.Logger
}

func newTimeline(name string, capacity int) timeline {
	return timeline{
		name:      name,
		capacity:  capacity,
		fireworks: make([]models.Firework, 0),
		warnings:  make(warningSet),
		logger:    zerolog.Nop(),
	}
}

// Name returns the show name.
func (tl *timeline) Name() string {
	return tl.name
}

// Capacity returns the maximum number of fireworks allowed up at once.
func (tl *timeline) Capacity() int {
	return tl.capacity
}

// SetLogger attaches a logger; shows log nothing by default.
func (tl *timeline) SetLogger(logger zerolog.Logger) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.logger = logging.WithShow(logger, tl.name)
}

// CurrentTime returns the show clock.
func (tl *timeline) CurrentTime() int {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.current
}

// Update moves the clock forward to time. Moving backwards is ignored.
func (tl *timeline) Update(time int) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.update(time)
}

// FireworksUp returns the number of fireworks airborne at the current time.
func (tl *timeline) FireworksUp() int {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.fireworksUpAt(tl.current)
}

// FireworksUpAt returns the number of fireworks airborne at time.
func (tl *timeline) FireworksUpAt(time int) int {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.fireworksUpAt(time)
}

// HasWarning reports whether the show is at or above the warning threshold now.
func (tl *timeline) HasWarning() bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.hasWarningAt(tl.current)
}

// HasWarningAt reports whether the show warns at time. A positive answer is
// remembered, so it holds for the rest of the show.
func (tl *timeline) HasWarningAt(time int) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.hasWarningAt(time)
}

// TotalWarnings returns the number of separate warning periods recorded.
func (tl *timeline) TotalWarnings() int {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return countRuns(tl.warnings.sorted())
}

// WarningTimes returns the recorded warning ticks in ascending order.
func (tl *timeline) WarningTimes() []int {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.warnings.sorted()
}

// Fireworks returns a copy of the accepted fireworks in insertion order.
func (tl *timeline) Fireworks() []models.Firework {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	out := make([]models.Firework, len(tl.fireworks))
	copy(out, tl.fireworks)
	return out
}

func (tl *timeline) update(time int) {
	if time < tl.current {
		return
	}
	for t := tl.current; t <= time; t++ {
		tl.hasWarningAt(t)
	}
	tl.current = time
}

func (tl *timeline) fireworksUpAt(time int) int {
	up := 0
	for _, fw := range tl.fireworks {
		if fw.IsUpAt(time) {
			up++
		}
	}
	return up
}

func (tl *timeline) hasWarningAt(time int) bool {
	if tl.warnings.has(time) {
		return true
	}
	up := tl.fireworksUpAt(time)
	if tl.usage(up) >= WarningThreshold {
		tl.warnings.add(time)
		logging.LogWarning(tl.logger, time, up)
		return true
	}
	return false
}

// usage returns up as a percentage of capacity.
func (tl *timeline) usage(up int) float64 {
	if tl.capacity <= 0 {
		return 0
	}
	return float64(up) / float64(tl.capacity) * 100
}

// check validates a launch against the options and the show state.
func (tl *timeline) check(time int, opts LaunchOptions) error {
	if err := validateOptions(tl.name, time, opts); err != nil {
		return err
	}
	if time < tl.current {
		return errors.NewLaunchError(tl.name, time,
			fmt.Sprintf("current time is %d", tl.current), errors.ErrTimeBeforeCursor)
	}
	if up := tl.fireworksUpAt(time); up >= tl.capacity {
		return errors.NewLaunchError(tl.name, time,
			fmt.Sprintf("%d of %d fireworks already up", up, tl.capacity), errors.ErrCapacityReached)
	}
	return nil
}

// insert appends an already checked firework and advances the clock to its launch.
func (tl *timeline) insert(time int, opts LaunchOptions) models.Firework {
	fw := models.NewFirework(time, opts.Duration, opts.Cost)
	tl.fireworks = append(tl.fireworks, fw)
	logging.LogLaunch(tl.logger, time, opts.Duration, opts.Cost, opts.Vendor)
	tl.update(time)
	return fw
}

func (tl *timeline) rejected(time int, err error) error {
	logging.LogRejected(tl.logger, time, err)
	return err
}

func (tl *timeline) cost() float64 {
	total := 0.0
	for _, fw := range tl.fireworks {
		total += fw.Cost
	}
	return total
}

func (tl *timeline) status() string {
	up := tl.fireworksUpAt(tl.current)
	pct := tl.usage(up)

	usage := "WARNING"
	if pct < WarningThreshold {
		usage = fmt.Sprintf("%.1f%%", pct)
	}
	return fmt.Sprintf("Status for %s show: %d fireworks up (%s)", tl.name, up, usage)
}

func validateOptions(show string, time int, opts LaunchOptions) error {
	if opts.Duration < 1 {
		return errors.NewLaunchError(show, time,
			fmt.Sprintf("duration %d", opts.Duration), errors.ErrInvalidDuration)
	}
	if opts.Cost < 0 {
		return errors.NewLaunchError(show, time,
			fmt.Sprintf("cost %.2f", opts.Cost), errors.ErrInvalidCost)
	}
	return nil
}
