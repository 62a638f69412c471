package show

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"fireworks-show/internal/errors"
	"fireworks-show/internal/logging"
)

// Town runs several shows on a shared clock. The town warns only when every
// one of its shows warns.
//
// The town lock is held while calling into shows; shows never call back into
// the town.
type Town struct {
	mu       sync.Mutex
	shows    []Venue
	warnings warningSet
	current  int
	logger   zerolog.Logger
}

// NewTown creates a town with no shows.
func NewTown() *Town {
	return &Town{
		shows:    make([]Venue, 0),
		warnings: make(warningSet),
		logger:   zerolog.Nop(),
	}
}

// SetLogger attaches a logger to the town.
func (t *Town) SetLogger(logger zerolog.Logger) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logger = logger.With().Str("component", "town").Logger()
}

// AddShow appends a show and returns its index. Indices are never reused.
func (t *Town) AddShow(v Venue) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shows = append(t.shows, v)
	return len(t.shows) - 1
}

// Show returns the show at index.
func (t *Town) Show(index int) (Venue, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.show(index, "get show")
}

// Len returns the number of shows in the town.
func (t *Town) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.shows)
}

// CurrentTime returns the town clock.
func (t *Town) CurrentTime() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *Town) show(index int, op string) (Venue, error) {
	if index < 0 || index >= len(t.shows) {
		return nil, errors.NewShowError(index, op,
			errors.Wrapf(errors.ErrShowNotFound, "town has %d shows", len(t.shows)))
	}
	return t.shows[index], nil
}

// Add adds a firework to the show at index and, on success, advances the
// town clock to its launch. A *errors.ShowError is returned when the index
// is unknown or a vendor-tagged launch targets a plain show; any other error
// is the show's reason for refusing the launch.
func (t *Town) Add(index, time int, opts LaunchOptions) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := validateOptions(fmt.Sprintf("#%d", index), time, opts); err != nil {
		logging.LogRejected(t.logger, time, err)
		return err
	}
	v, err := t.show(index, "add firework")
	if err != nil {
		return err
	}
	if opts.Vendor != "" && v.Kind() != KindCompany {
		return errors.NewShowError(index, "add firework",
			errors.Wrapf(errors.ErrVendorUnsupported, "%s is a %s show", v.Name(), v.Kind()))
	}
	if err := v.Add(time, opts); err != nil {
		return err
	}
	t.update(time)
	return nil
}

// AddFirework reports whether the firework was added. Refusals by the show
// yield false with a nil error; the error is reserved for dispatch failures.
func (t *Town) AddFirework(index, time int, opts LaunchOptions) (bool, error) {
	err := t.Add(index, time, opts)
	if err == nil {
		return true, nil
	}
	var showErr *errors.ShowError
	if errors.As(err, &showErr) {
		return false, err
	}
	return false, nil
}

// Update advances every show and then the town clock to time, recording
// town warnings for each tick passed. Moving backwards is ignored.
func (t *Town) Update(time int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.update(time)
}

func (t *Town) update(time int) {
	if time < t.current {
		return
	}
	for _, v := range t.shows {
		v.Update(time)
	}
	for tick := t.current; tick <= time; tick++ {
		t.hasWarningAt(tick)
	}
	t.current = time
}

// HasWarning reports whether the town warns at its current time.
func (t *Town) HasWarning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasWarningAt(t.current)
}

// HasWarningAt reports whether every show warns at time. A town without
// shows warns at every tick it is asked about.
func (t *Town) HasWarningAt(time int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasWarningAt(time)
}

func (t *Town) hasWarningAt(time int) bool {
	if t.warnings.has(time) {
		return true
	}
	for _, v := range t.shows {
		if !v.HasWarningAt(time) {
			return false
		}
	}
	t.warnings.add(time)
	logging.LogWarning(t.logger, time, t.fireworksUp())
	return true
}

// TotalWarnings returns the number of separate town warning periods.
func (t *Town) TotalWarnings() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return countRuns(t.warnings.sorted())
}

// WarningTimes returns the recorded town warning ticks in ascending order.
func (t *Town) WarningTimes() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.warnings.sorted()
}

// FireworksUp sums each show's airborne count at that show's own clock.
func (t *Town) FireworksUp() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fireworksUp()
}

func (t *Town) fireworksUp() int {
	up := 0
	for _, v := range t.shows {
		up += v.FireworksUp()
	}
	return up
}

// TotalCost sums the billed cost of every show.
func (t *Town) TotalCost() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := 0.0
	for _, v := range t.shows {
		total += v.Cost()
	}
	return total
}

// Status renders the status of every show, one per line, in insertion order.
func (t *Town) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	b.WriteString("Town status:\n")
	for _, v := range t.shows {
		b.WriteString(v.Status())
		b.WriteString("\n")
	}
	return b.String()
}

func (t *Town) String() string {
	return t.Status()
}
