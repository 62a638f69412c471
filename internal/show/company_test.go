package show

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fireworks-show/internal/errors"
)

func TestNewDefaultCompanyShow(t *testing.T) {
	c := NewDefaultCompanyShow(4)

	assert.Equal(t, "company", c.Name())
	assert.Equal(t, KindCompany, c.Kind())
	assert.Empty(t, c.VendorTotals())
	assert.Equal(t, 0.0, c.Cost())
}

func TestCompanyShow_DiscountsAccumulatedVendorBill(t *testing.T) {
	c := NewDefaultCompanyShow(10)

	require.True(t, c.AddFirework(0, launch(1, 60).WithVendor("A")))
	require.True(t, c.AddFirework(1, launch(1, 50).WithVendor("A")))

	assert.InDelta(t, 104.5, c.Cost(), 1e-9)
	assert.Equal(t, []VendorTotal{{Vendor: "A", Total: 110}}, c.VendorTotals())
	assert.Contains(t, c.Status(), "--A $110.00")
}

func TestCompanyShow_Cost(t *testing.T) {
	tests := []struct {
		name     string
		launches []LaunchOptions
		want     float64
	}{
		{
			name:     "no_fireworks",
			launches: nil,
			want:     0,
		},
		{
			name:     "below_threshold_is_face_value",
			launches: []LaunchOptions{launch(1, 99.99).WithVendor("A")},
			want:     99.99,
		},
		{
			name:     "exactly_threshold_is_discounted",
			launches: []LaunchOptions{launch(1, 100).WithVendor("A")},
			want:     95,
		},
		{
			name: "discount_is_per_vendor",
			launches: []LaunchOptions{
				launch(1, 80).WithVendor("A"),
				launch(1, 80).WithVendor("B"),
				launch(1, 40).WithVendor("A"),
			},
			want: 120*0.95 + 80,
		},
		{
			name: "untagged_fireworks_share_one_bill",
			launches: []LaunchOptions{
				launch(1, 60),
				launch(1, 60),
			},
			want: 120 * 0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDefaultCompanyShow(100)
			for _, opts := range tt.launches {
				require.True(t, c.AddFirework(0, opts))
			}
			assert.InDelta(t, tt.want, c.Cost(), 1e-9)
		})
	}
}

func TestCompanyShow_UntaggedLaunchesGoToUnknownVendor(t *testing.T) {
	c := NewDefaultCompanyShow(10)

	for i := 0; i < 3; i++ {
		require.True(t, c.AddFirework(i, DefaultLaunchOptions()))
	}

	assert.Equal(t, []VendorTotal{{Vendor: UnknownVendor, Total: 60}}, c.VendorTotals())
	assert.InDelta(t, 60.0, c.Cost(), 1e-9)
}

func TestCompanyShow_RejectedLaunchIsNotBilled(t *testing.T) {
	c := NewDefaultCompanyShow(1)
	require.True(t, c.AddFirework(0, launch(2, 30).WithVendor("A")))

	tests := []struct {
		name    string
		time    int
		opts    LaunchOptions
		wantErr error
	}{
		{"zero_duration", 5, launch(0, 10).WithVendor("B"), errors.ErrInvalidDuration},
		{"negative_cost", 5, launch(1, -1).WithVendor("B"), errors.ErrInvalidCost},
		{"at_capacity", 1, launch(1, 10).WithVendor("B"), errors.ErrCapacityReached},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Add(tt.time, tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	c.Update(4)
	assert.ErrorIs(t, c.Add(3, launch(1, 10).WithVendor("B")), errors.ErrTimeBeforeCursor)

	assert.Equal(t, []VendorTotal{{Vendor: "A", Total: 30}}, c.VendorTotals())
	assert.Len(t, c.Fireworks(), 1)
}

func TestCompanyShow_VendorTotalsMatchFireworkCosts(t *testing.T) {
	c := NewDefaultCompanyShow(3)
	vendors := []string{"A", "B", "", "A", "C", "B"}
	for i, v := range vendors {
		c.AddFirework(i, launch(1+i%2, float64(10*(i+1))).WithVendor(v))
	}

	sum := 0.0
	for _, fw := range c.Fireworks() {
		sum += fw.Cost
	}
	billed := 0.0
	for _, vt := range c.VendorTotals() {
		billed += vt.Total
	}
	assert.InDelta(t, sum, billed, 1e-9)
}

func TestCompanyShow_Status(t *testing.T) {
	c := NewDefaultCompanyShow(10)
	require.True(t, c.AddFirework(0, launch(1, 60).WithVendor("Acme")))
	require.True(t, c.AddFirework(1, launch(1, 50).WithVendor("Acme")))
	require.True(t, c.AddFirework(1, launch(1, 5.5)))

	want := "Status for company show: 3 fireworks up (30.0%)\n" +
		"--Acme $110.00\n" +
		"--UNKNOWN $5.50"
	assert.Equal(t, want, c.Status())
	assert.Equal(t, want, c.String())
}

func TestCompanyShow_StatusWarning(t *testing.T) {
	c := NewCompanyShow("finale", 1)
	require.True(t, c.AddFirework(0, launch(1, 1).WithVendor("A")))

	assert.Equal(t, "Status for finale show: 1 fireworks up (WARNING)\n--A $1.00", c.Status())
	assert.True(t, c.HasWarning())
}
