package show

import (
	"fireworks-show/internal/errors"
)

// Show is a fireworks show with a limit on how many fireworks may be up at once.
type Show struct {
	timeline
}

// NewShow creates an empty show whose clock starts at 0.
func NewShow(name string, capacity int) *Show {
	return &Show{timeline: newTimeline(name, capacity)}
}

// NewDefaultShow creates a show with the default name.
func NewDefaultShow(capacity int) *Show {
	return NewShow(DefaultShowName, capacity)
}

// Kind returns KindPlain.
func (s *Show) Kind() Kind {
	return KindPlain
}

// Add adds a firework launching at time. It is refused, leaving the show
// untouched, when the options are invalid, when time is behind the show
// clock, or when the show is already at capacity at time. Plain shows do
// not track vendors, so a tagged launch is refused too.
func (s *Show) Add(time int, opts LaunchOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.Vendor != "" {
		return s.rejected(time, errors.NewLaunchError(s.name, time,
			"vendor "+opts.Vendor, errors.ErrVendorUnsupported))
	}
	if err := s.check(time, opts); err != nil {
		return s.rejected(time, err)
	}
	s.insert(time, opts)
	return nil
}

// AddFirework reports whether Add accepted the firework.
func (s *Show) AddFirework(time int, opts LaunchOptions) bool {
	return s.Add(time, opts) == nil
}

// Cost returns the sum of all firework costs.
func (s *Show) Cost() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cost()
}

// Status renders a one-line summary of the show at its current time.
func (s *Show) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

func (s *Show) String() string {
	return s.Status()
}
