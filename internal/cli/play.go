package cli

import (
	"context"

	"github.com/google/uuid"

	"fireworks-show/internal/config"
	"fireworks-show/internal/errors"
	"fireworks-show/internal/logging"
	"fireworks-show/internal/show"
)

// Rejection records a scenario launch that was not added.
type Rejection struct {
	Launch int    `json:"launch"`
	Show   int    `json:"show"`
	Time   int    `json:"time"`
	Reason string `json:"reason"`
	// Dispatch is true when the launch could not reach a show at all.
	Dispatch bool `json:"dispatch"`
}

// Playback is the result of replaying a scenario.
type Playback struct {
	RunID      string
	Town       *show.Town
	Accepted   int
	Rejections []Rejection
}

// Play builds a town from sc and replays its launches in order. until, when
// not nil, advances the town clock after the last launch.
func Play(ctx context.Context, sc *config.Scenario, cfg *config.Config, until *int) *Playback {
	pb := &Playback{
		RunID: uuid.NewString(),
		Town:  show.NewTown(),
	}
	logger := logging.WithRunID(logging.FromContext(ctx), pb.RunID)
	pb.Town.SetLogger(logger)

	for _, v := range sc.Build() {
		v.SetLogger(logger)
		pb.Town.AddShow(v)
	}

	for i, l := range sc.Launches {
		kind := show.KindPlain
		if v, err := pb.Town.Show(l.Show); err == nil {
			kind = v.Kind()
		}

		err := pb.Town.Add(l.Show, l.Time, l.Options(cfg, kind))
		if err == nil {
			pb.Accepted++
			continue
		}

		var showErr *errors.ShowError
		dispatch := errors.As(err, &showErr)
		pb.Rejections = append(pb.Rejections, Rejection{
			Launch:   i,
			Show:     l.Show,
			Time:     l.Time,
			Reason:   err.Error(),
			Dispatch: dispatch,
		})
		event := logger.Info()
		if dispatch {
			event = logger.Warn()
		}
		event.Int("launch", i).Int("show", l.Show).Int("time", l.Time).Err(err).Msg("Launch not added")
	}

	if until == nil {
		until = sc.Until
	}
	if until != nil {
		pb.Town.Update(*until)
	}

	logger.Info().
		Int("accepted", pb.Accepted).
		Int("rejected", len(pb.Rejections)).
		Int("time", pb.Town.CurrentTime()).
		Msg("Scenario replayed")

	return pb
}

// ShowReport summarises one show.
type ShowReport struct {
	Index         int           `json:"index"`
	Name          string        `json:"name"`
	Kind          string        `json:"kind"`
	Capacity      int           `json:"capacity"`
	CurrentTime   int           `json:"current_time"`
	FireworksUp   int           `json:"fireworks_up"`
	Warning       bool          `json:"warning"`
	TotalWarnings int           `json:"total_warnings"`
	WarningTimes  []int         `json:"warning_times"`
	Cost          float64       `json:"cost"`
	Vendors       []VendorEntry `json:"vendors,omitempty"`
	Status        string        `json:"status"`
}

// VendorEntry is an undiscounted vendor bill.
type VendorEntry struct {
	Vendor string  `json:"vendor"`
	Total  float64 `json:"total"`
}

// Report summarises a replayed town.
type Report struct {
	RunID         string       `json:"run_id"`
	Scenario      string       `json:"scenario"`
	Time          int          `json:"time"`
	FireworksUp   int          `json:"fireworks_up"`
	Warning       bool         `json:"warning"`
	TotalWarnings int          `json:"total_warnings"`
	WarningTimes  []int        `json:"warning_times"`
	TotalCost     float64      `json:"total_cost"`
	Accepted      int          `json:"accepted"`
	Rejections    []Rejection  `json:"rejections"`
	Shows         []ShowReport `json:"shows"`
	Status        string       `json:"status"`
}

// NewReport summarises pb. Checking warnings at the current time records
// them, exactly as a caller polling the town would.
func NewReport(scenario string, pb *Playback) *Report {
	town := pb.Town
	r := &Report{
		RunID:         pb.RunID,
		Scenario:      scenario,
		Time:          town.CurrentTime(),
		FireworksUp:   town.FireworksUp(),
		Warning:       town.HasWarning(),
		TotalWarnings: town.TotalWarnings(),
		WarningTimes:  town.WarningTimes(),
		TotalCost:     town.TotalCost(),
		Accepted:      pb.Accepted,
		Rejections:    pb.Rejections,
		Shows:         make([]ShowReport, 0, town.Len()),
		Status:        town.Status(),
	}
	if r.Rejections == nil {
		r.Rejections = []Rejection{}
	}

	for i := 0; i < town.Len(); i++ {
		v, err := town.Show(i)
		if err != nil {
			continue
		}
		sr := ShowReport{
			Index:         i,
			Name:          v.Name(),
			Kind:          v.Kind().String(),
			Capacity:      v.Capacity(),
			CurrentTime:   v.CurrentTime(),
			FireworksUp:   v.FireworksUp(),
			Warning:       v.HasWarning(),
			TotalWarnings: v.TotalWarnings(),
			WarningTimes:  v.WarningTimes(),
			Cost:          v.Cost(),
			Status:        v.Status(),
		}
		if c, ok := v.(*show.CompanyShow); ok {
			for _, vt := range c.VendorTotals() {
				sr.Vendors = append(sr.Vendors, VendorEntry{Vendor: vt.Vendor, Total: vt.Total})
			}
		}
		r.Shows = append(r.Shows, sr)
	}
	return r
}
