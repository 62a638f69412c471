package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"fireworks-show/internal/errors"
	"fireworks-show/internal/show"
)

// Scenario describes shows and the launches to replay against them.
type Scenario struct {
	Shows    []ShowSpec   `mapstructure:"shows"`
	Launches []LaunchSpec `mapstructure:"launches"`
	Until    *int         `mapstructure:"until"`
}

// ShowSpec describes one show of a scenario.
type ShowSpec struct {
	Name     string `mapstructure:"name"`
	Capacity int    `mapstructure:"capacity"`
	Kind     string `mapstructure:"kind"` // plain, company
}

// LaunchSpec describes one launch. Omitted fields take the configured defaults.
type LaunchSpec struct {
	Show     int      `mapstructure:"show"`
	Time     int      `mapstructure:"time"`
	Duration *int     `mapstructure:"duration"`
	Cost     *float64 `mapstructure:"cost"`
	Vendor   *string  `mapstructure:"vendor"`
}

// LoadScenario reads a scenario file. TOML is assumed when the file has no
// recognised extension.
func LoadScenario(path string, cfg *Config) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	switch filepath.Ext(path) {
	case ".toml", ".yaml", ".yml", ".json":
	default:
		v.SetConfigType("toml")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading scenario %s", path)
	}

	sc := &Scenario{}
	if err := v.Unmarshal(sc); err != nil {
		return nil, errors.Wrapf(err, "decoding scenario %s", path)
	}
	if err := sc.Normalize(cfg); err != nil {
		return nil, err
	}
	return sc, nil
}

// Normalize fills show defaults from cfg and checks the scenario structure.
// Launch parameters are not checked here; refusing them is the show's job.
func (sc *Scenario) Normalize(cfg *Config) error {
	var errs []error

	if len(sc.Shows) == 0 {
		errs = append(errs, errors.NewValidationError("shows", 0, "at least one show is required"))
	}
	for i := range sc.Shows {
		spec := &sc.Shows[i]
		kind, err := show.ParseKind(spec.Kind)
		if err != nil {
			errs = append(errs, errors.NewValidationError(fmt.Sprintf("shows[%d].kind", i), spec.Kind, err.Error()))
			continue
		}
		spec.Kind = kind.String()
		if spec.Name == "" {
			spec.Name = show.DefaultShowName
			if kind == show.KindCompany {
				spec.Name = show.DefaultCompanyShowName
			}
		}
		if spec.Capacity == 0 {
			spec.Capacity = cfg.Show.DefaultCapacity
		}
		if spec.Capacity < 0 {
			errs = append(errs, errors.NewValidationError(fmt.Sprintf("shows[%d].capacity", i), spec.Capacity,
				"must not be negative"))
		}
	}
	for i, l := range sc.Launches {
		if l.Show < 0 || l.Show >= len(sc.Shows) {
			errs = append(errs, errors.NewValidationError(fmt.Sprintf("launches[%d].show", i), l.Show,
				fmt.Sprintf("scenario has %d shows", len(sc.Shows))))
		}
	}

	return errors.Join(errors.ErrScenarioInvalid, errs)
}

// Build creates the shows described by the scenario.
func (sc *Scenario) Build() []show.Venue {
	venues := make([]show.Venue, 0, len(sc.Shows))
	for _, spec := range sc.Shows {
		kind, _ := show.ParseKind(spec.Kind)
		if kind == show.KindCompany {
			venues = append(venues, show.NewCompanyShow(spec.Name, spec.Capacity))
		} else {
			venues = append(venues, show.NewShow(spec.Name, spec.Capacity))
		}
	}
	return venues
}

// Options resolves the launch options for l against a show of the given kind.
func (l LaunchSpec) Options(cfg *Config, kind show.Kind) show.LaunchOptions {
	opts := cfg.LaunchOptions(kind)
	if l.Duration != nil {
		opts.Duration = *l.Duration
	}
	if l.Cost != nil {
		opts.Cost = *l.Cost
	}
	if l.Vendor != nil {
		opts.Vendor = *l.Vendor
	}
	return opts
}
