package show

import (
	"fmt"
	"strings"
)

// VendorTotal is the undiscounted bill accumulated for one vendor.
type VendorTotal struct {
	Vendor string
	Total  float64
}

// CompanyShow is a show whose fireworks are bought from vendors. Each vendor
// is billed on its accumulated total, with a volume discount.
type CompanyShow struct {
	timeline
	vendors []string // first-seen order
	totals  map[string]float64
}

// NewCompanyShow creates an empty company show.
func NewCompanyShow(name string, capacity int) *CompanyShow {
	return &CompanyShow{
		timeline: newTimeline(name, capacity),
		vendors:  make([]string, 0),
		totals:   make(map[string]float64),
	}
}

// NewDefaultCompanyShow creates a company show with the default name.
func NewDefaultCompanyShow(capacity int) *CompanyShow {
	return NewCompanyShow(DefaultCompanyShowName, capacity)
}

// Kind returns KindCompany.
func (c *CompanyShow) Kind() Kind {
	return KindCompany
}

// Add validates like Show.Add and bills the cost to opts.Vendor, or to
// UnknownVendor when the launch is untagged.
func (c *CompanyShow) Add(time int, opts LaunchOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if opts.Vendor == "" {
		opts.Vendor = UnknownVendor
	}
	if err := c.check(time, opts); err != nil {
		return c.rejected(time, err)
	}
	c.insert(time, opts)

	if _, ok := c.totals[opts.Vendor]; !ok {
		c.vendors = append(c.vendors, opts.Vendor)
	}
	c.totals[opts.Vendor] += opts.Cost
	return nil
}

// AddFirework reports whether Add accepted the firework.
func (c *CompanyShow) AddFirework(time int, opts LaunchOptions) bool {
	return c.Add(time, opts) == nil
}

// Cost returns the billed total. A vendor whose accumulated bill reaches
// DiscountThreshold is charged DiscountRate less.
func (c *CompanyShow) Cost() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, vendor := range c.vendors {
		total += billed(c.totals[vendor])
	}
	return total
}

func billed(total float64) float64 {
	if total >= DiscountThreshold {
		return total * (1 - DiscountRate)
	}
	return total
}

// VendorTotals returns the undiscounted per-vendor totals in first-seen order.
func (c *CompanyShow) VendorTotals() []VendorTotal {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]VendorTotal, 0, len(c.vendors))
	for _, vendor := range c.vendors {
		out = append(out, VendorTotal{Vendor: vendor, Total: c.totals[vendor]})
	}
	return out
}

// Status renders the show line followed by one line per vendor. Vendor
// amounts are shown before discount.
func (c *CompanyShow) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	b.WriteString(c.status())
	for _, vendor := range c.vendors {
		fmt.Fprintf(&b, "\n--%s $%.2f", vendor, c.totals[vendor])
	}
	return b.String()
}

func (c *CompanyShow) String() string {
	return c.Status()
}
