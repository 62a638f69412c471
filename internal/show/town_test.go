package show

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fireworks-show/internal/errors"
)

func TestTown_AddShowReturnsStableIndices(t *testing.T) {
	town := NewTown()

	assert.Equal(t, 0, town.AddShow(NewDefaultShow(2)))
	assert.Equal(t, 1, town.AddShow(NewDefaultCompanyShow(2)))
	assert.Equal(t, 2, town.AddShow(NewShow("pier", 2)))
	assert.Equal(t, 3, town.Len())

	v, err := town.Show(2)
	require.NoError(t, err)
	assert.Equal(t, "pier", v.Name())
}

func TestTown_AddFirework_Delegates(t *testing.T) {
	town := NewTown()
	plain := NewShow("plain", 5)
	other := NewShow("other", 5)
	town.AddShow(plain)
	town.AddShow(other)

	added, err := town.AddFirework(0, 3, launch(2, 10))
	require.NoError(t, err)
	require.True(t, added)

	assert.Equal(t, 1, plain.FireworksUpAt(3))
	assert.Equal(t, 3, town.CurrentTime())
	assert.Equal(t, 3, plain.CurrentTime())
	assert.Equal(t, 3, other.CurrentTime(), "town update advances every show")
}

func TestTown_AddFirework_VendorOnCompanyShow(t *testing.T) {
	town := NewTown()
	company := NewDefaultCompanyShow(5)
	idx := town.AddShow(company)

	added, err := town.AddFirework(idx, 0, launch(1, 120).WithVendor("A"))
	require.NoError(t, err)
	require.True(t, added)

	assert.Equal(t, []VendorTotal{{Vendor: "A", Total: 120}}, company.VendorTotals())
	assert.InDelta(t, 114.0, town.TotalCost(), 1e-9)
}

func TestTown_AddFirework_DispatchErrors(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		opts    LaunchOptions
		wantErr error
	}{
		{"index_out_of_range", 5, DefaultLaunchOptions(), errors.ErrShowNotFound},
		{"negative_index", -1, DefaultLaunchOptions(), errors.ErrShowNotFound},
		{"vendor_on_plain_show", 0, DefaultLaunchOptions().WithVendor("A"), errors.ErrVendorUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			town := NewTown()
			plain := NewDefaultShow(5)
			town.AddShow(plain)

			added, err := town.AddFirework(tt.index, 0, tt.opts)

			assert.False(t, added)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			var showErr *errors.ShowError
			require.True(t, errors.As(err, &showErr))
			assert.Equal(t, tt.index, showErr.Index)
			assert.Empty(t, plain.Fireworks())
		})
	}
}

func TestTown_AddFirework_InvalidOptionsCheckedFirst(t *testing.T) {
	town := NewTown()
	town.AddShow(NewDefaultShow(5))

	added, err := town.AddFirework(0, 0, launch(0, 10).WithVendor("A"))
	assert.False(t, added)
	assert.NoError(t, err)

	added, err = town.AddFirework(9, 0, launch(1, -5))
	assert.False(t, added)
	assert.NoError(t, err)

	assert.ErrorIs(t, town.Add(9, 0, launch(1, -5)), errors.ErrInvalidCost)
}

func TestTown_AddFirework_ShowRefusalIsNotAnError(t *testing.T) {
	town := NewTown()
	town.AddShow(NewDefaultShow(1))

	added, err := town.AddFirework(0, 0, launch(3, 1))
	require.NoError(t, err)
	require.True(t, added)

	added, err = town.AddFirework(0, 1, launch(1, 1))
	assert.False(t, added)
	assert.NoError(t, err)
	assert.ErrorIs(t, town.Add(0, 1, launch(1, 1)), errors.ErrCapacityReached)
	assert.Equal(t, 0, town.CurrentTime(), "refused launches do not move the clock")
}

func TestTown_WarnsOnlyWhenEveryShowWarns(t *testing.T) {
	town := NewTown()
	a := NewShow("a", 1)
	b := NewShow("b", 1)
	town.AddShow(a)
	town.AddShow(b)

	added, err := town.AddFirework(0, 2, launch(1, 1))
	require.NoError(t, err)
	require.True(t, added)

	assert.True(t, a.HasWarningAt(2))
	assert.False(t, b.HasWarningAt(2))
	assert.False(t, town.HasWarningAt(2))

	added, err = town.AddFirework(1, 2, launch(1, 1))
	require.NoError(t, err)
	require.True(t, added)

	assert.True(t, town.HasWarningAt(2))
	assert.True(t, town.HasWarning())
	assert.True(t, town.HasWarningAt(3))
	assert.False(t, town.HasWarningAt(4))
}

func TestTown_EmptyTownWarnsAtEveryTick(t *testing.T) {
	town := NewTown()
	town.Update(5)

	assert.True(t, town.HasWarningAt(3))
	assert.True(t, town.HasWarning())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, town.WarningTimes())
	assert.Equal(t, 1, town.TotalWarnings())
	assert.Equal(t, 5, town.CurrentTime())
}

func TestTown_TotalWarnings(t *testing.T) {
	town := NewTown()
	town.AddShow(NewShow("a", 1))
	town.AddShow(NewShow("b", 1))

	for _, tick := range []int{5, 10} {
		for idx := 0; idx < 2; idx++ {
			added, err := town.AddFirework(idx, tick, launch(2, 1))
			require.NoError(t, err)
			require.True(t, added)
		}
	}
	town.Update(20)

	assert.Equal(t, []int{5, 6, 7, 10, 11, 12}, town.WarningTimes())
	assert.Equal(t, 2, town.TotalWarnings())
}

func TestTown_Update(t *testing.T) {
	town := NewTown()
	a := NewShow("a", 1)
	town.AddShow(a)
	require.True(t, a.AddFirework(1, launch(1, 1)))

	town.Update(6)
	warnings := town.WarningTimes()
	town.Update(6)
	town.Update(2)

	assert.Equal(t, []int{1, 2}, warnings)
	assert.Equal(t, warnings, town.WarningTimes())
	assert.Equal(t, 6, town.CurrentTime())
	assert.Equal(t, 6, a.CurrentTime())
}

func TestTown_FireworksUpUsesEachShowClock(t *testing.T) {
	town := NewTown()
	ahead := NewShow("ahead", 5)
	require.True(t, ahead.AddFirework(10, launch(1, 1)))
	town.AddShow(ahead)

	idle := NewShow("idle", 5)
	require.True(t, idle.AddFirework(0, launch(2, 1)))
	town.AddShow(idle)

	assert.Equal(t, 0, town.CurrentTime())
	assert.Equal(t, 2, town.FireworksUp())
}

func TestTown_TotalCost(t *testing.T) {
	town := NewTown()
	plain := town.AddShow(NewDefaultShow(5))
	company := town.AddShow(NewDefaultCompanyShow(5))

	for i := 0; i < 2; i++ {
		_, err := town.AddFirework(plain, i, DefaultLaunchOptions())
		require.NoError(t, err)
	}
	_, err := town.AddFirework(company, 3, launch(1, 120).WithVendor("A"))
	require.NoError(t, err)

	assert.InDelta(t, 40+114.0, town.TotalCost(), 1e-9)
}

func TestTown_Status(t *testing.T) {
	town := NewTown()
	assert.Equal(t, "Town status:\n", town.Status())

	town.AddShow(NewShow("harbor", 4))
	town.AddShow(NewCompanyShow("pier", 2))

	_, err := town.AddFirework(0, 0, launch(1, 10))
	require.NoError(t, err)
	_, err = town.AddFirework(1, 0, launch(1, 15).WithVendor("Acme"))
	require.NoError(t, err)

	want := "Town status:\n" +
		"Status for harbor show: 1 fireworks up (25.0%)\n" +
		"Status for pier show: 1 fireworks up (50.0%)\n" +
		"--Acme $15.00\n"
	assert.Equal(t, want, town.Status())
	assert.Equal(t, want, town.String())
}
