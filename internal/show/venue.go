// Package show models fireworks shows: a timeline of launches with a
// capacity warning, vendor-billed company shows, and a town that aggregates
// several shows on a shared clock.
package show

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"fireworks-show/internal/models"
)

// Show defaults.
const (
	DefaultShowName        = "test"
	DefaultCompanyShowName = "company"
	UnknownVendor          = "UNKNOWN"

	// WarningThreshold is the percentage of capacity at which a show warns.
	WarningThreshold = 80

	// DiscountThreshold is the accumulated vendor bill that earns DiscountRate.
	DiscountThreshold = 100.0
	DiscountRate      = 0.05
)

// Kind identifies the show variant held behind a Venue.
type Kind int

const (
	KindPlain Kind = iota
	KindCompany
)

// String returns the scenario name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindCompany:
		return "company"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a kind name. An empty name is a plain show.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return KindPlain, nil
	case "company":
		return KindCompany, nil
	default:
		return KindPlain, fmt.Errorf("unknown show kind %q", s)
	}
}

// LaunchOptions carries the optional parameters of a launch.
// Vendor is empty for an untagged launch.
type LaunchOptions struct {
	Duration int
	Cost     float64
	Vendor   string
}

// DefaultLaunchOptions returns a one-tick, 20.0 cost, untagged launch.
func DefaultLaunchOptions() LaunchOptions {
	return LaunchOptions{
		Duration: models.DefaultDuration,
		Cost:     models.DefaultCost,
	}
}

// WithVendor returns a copy of o tagged with vendor.
func (o LaunchOptions) WithVendor(vendor string) LaunchOptions {
	o.Vendor = vendor
	return o
}

// Venue is the capability set shared by plain and company shows.
type Venue interface {
	Kind() Kind
	Name() string
	Capacity() int
	CurrentTime() int

	// Add adds a firework launching at time, returning why it was refused.
	Add(time int, opts LaunchOptions) error
	// AddFirework is Add reduced to success or failure.
	AddFirework(time int, opts LaunchOptions) bool
	// Update advances the show clock to time, recording warnings on the way.
	Update(time int)

	FireworksUp() int
	FireworksUpAt(time int) int
	HasWarning() bool
	HasWarningAt(time int) bool
	TotalWarnings() int
	WarningTimes() []int

	Cost() float64
	Status() string

	SetLogger(logger zerolog.Logger)
}

var (
	_ Venue = (*Show)(nil)
	_ Venue = (*CompanyShow)(nil)
)
