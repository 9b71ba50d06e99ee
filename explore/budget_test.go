package explore_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyor/explore"
	"github.com/katalvlaran/surveyor/planet"
	"github.com/katalvlaran/surveyor/rover"
	"github.com/katalvlaran/surveyor/terrain"
)

const maxBattery = 20

// excursionLog collects excursions and checks the gate and kMax invariants
// on every one of them.
func excursionLog(t *testing.T, out *[]explore.Excursion) explore.Option {
	return explore.WithOnExcursion(func(ex explore.Excursion) {
		fits := float64(2*ex.Depth) <= ex.BatteryAtDequeue
		assert.Equal(t, fits, ex.Committed, "gate at %v depth %d battery %v", ex.At, ex.Depth, ex.BatteryAtDequeue)
		if ex.Committed && !ex.Abandoned {
			want := min(4, int(math.Floor(ex.BatteryAtTarget/2)))
			assert.Equal(t, want, ex.KMax, "kMax at %v", ex.At)
			assert.LessOrEqual(t, ex.Attempted, ex.KMax)
		}
		*out = append(*out, ex)
	})
}

// TestBudget_ShortCorridor: a 6-cell corridor fits entirely within a
// 20-unit round trip at one unit per move.
func TestBudget_ShortCorridor(t *testing.T) {
	var exs []explore.Excursion
	r := rover.New(corridor(6), rover.WithBattery(maxBattery))
	res := mustRun(t, explore.NewBudgetExplorer(maxBattery, excursionLog(t, &exs)).Run, r)

	assert.Equal(t, "H.....\n", res.Grid.String())
	assert.Zero(t, res.Stats.Rejected)
	assert.Zero(t, res.Stats.Strandings)
	assert.Len(t, exs, 6)
	assert.Equal(t, terrain.Home, r.Position())
	assert.Equal(t, explore.ModeBudget, res.Mode)
}

// TestBudget_CorridorCutoff pins the frontier cutoff on a 15-cell corridor
// at one unit per move: depth 10 still passes the gate (2·10 <= 20) and its
// probe discovers x=11, but the probe cost strands the rover on the way
// back. Depth 11 is then rejected and never retried.
func TestBudget_CorridorCutoff(t *testing.T) {
	var exs []explore.Excursion
	r := rover.New(corridor(15), rover.WithBattery(maxBattery))
	res := mustRun(t, explore.NewBudgetExplorer(maxBattery, excursionLog(t, &exs)).Run, r)

	assert.Equal(t, "H"+strings.Repeat(".", 11)+"\n", res.Grid.String())
	assert.Equal(t, 1, res.Stats.Rejected)
	assert.Equal(t, 1, res.Stats.Strandings)
	assert.Equal(t, 11, res.Stats.Recharges)

	last := exs[len(exs)-1]
	assert.Equal(t, terrain.Coord{X: 11, Y: 0}, last.At)
	assert.False(t, last.Committed)
	assert.Equal(t, 22, 2*last.Depth)
	assert.Equal(t, terrain.Home, r.Position())
	assert.Equal(t, float64(maxBattery), r.Battery())
}

// TestBudget_CorridorCutoffCostTwo repeats the corridor at two units per
// move: the gate still counts steps, so energy runs out first and every
// excursion from depth 5 on ends stranded.
func TestBudget_CorridorCutoffCostTwo(t *testing.T) {
	var exs []explore.Excursion
	r := rover.New(corridor(15), rover.WithBattery(maxBattery), rover.WithMoveCost(2))
	res := mustRun(t, explore.NewBudgetExplorer(maxBattery, excursionLog(t, &exs)).Run, r)

	assert.Equal(t, "H"+strings.Repeat(".", 10)+"\n", res.Grid.String())
	assert.Zero(t, res.Stats.Rejected)
	assert.Equal(t, 6, res.Stats.Strandings)
	assert.Equal(t, 11, res.Stats.Recharges)
	assert.Equal(t, 0, exs[len(exs)-1].KMax, "depth 10 arrives with an empty battery")
}

// TestBudget_StrandedRoverDocks runs a rover outside the rover package
// whose Recharge docks at home: the stranded excursion is recovered and the
// corridor cutoff matches the simulated rover.
func TestBudget_StrandedRoverDocks(t *testing.T) {
	r := newLineRover("H"+strings.Repeat(".", 14), maxBattery, true)
	res := mustRun(t, explore.NewBudgetExplorer(maxBattery).Run, r)

	assert.Equal(t, "H"+strings.Repeat(".", 11)+"\n", res.Grid.String())
	assert.Equal(t, 1, res.Stats.Strandings)
	assert.Equal(t, 1, res.Stats.Rejected)
	assert.Equal(t, 0, r.x)
}

// TestBudget_RechargeWithoutDocking stops the run when a recharge leaves
// the rover away from home.
func TestBudget_RechargeWithoutDocking(t *testing.T) {
	r := newLineRover("H"+strings.Repeat(".", 14), maxBattery, false)
	res, err := explore.NewBudgetExplorer(maxBattery).Run(r)

	require.ErrorIs(t, err, explore.ErrNotDocked)
	assert.Nil(t, res)
	assert.NotZero(t, r.x)
}

// TestBudget_RechargeRestoresMax checks the battery right after every recharge.
func TestBudget_RechargeRestoresMax(t *testing.T) {
	r := rover.New(planet.Samples()["planet_2"], rover.WithBattery(maxBattery))
	var recharges int
	b := explore.NewBudgetExplorer(maxBattery, explore.WithOnRecharge(func(max float64) {
		recharges++
		assert.Equal(t, float64(maxBattery), max)
		assert.Equal(t, float64(maxBattery), r.Battery())
		assert.Equal(t, terrain.Home, r.Position())
	}))
	res := mustRun(t, b.Run, r)
	assert.Equal(t, res.Stats.Recharges, recharges)
	assert.Positive(t, recharges)
}

// TestBudget_SmallSurfacesComplete: on surfaces well inside the budget the
// budget explorer records the same map as the unlimited one.
func TestBudget_SmallSurfacesComplete(t *testing.T) {
	for _, name := range []string{"planet_1", "planet_2"} {
		t.Run(name, func(t *testing.T) {
			s := planet.Samples()[name]
			res := mustRun(t, explore.NewBudgetExplorer(maxBattery).Run, rover.New(s, rover.WithBattery(maxBattery)))
			assertSurveyed(t, expectedMap(t, s), res.Map)
		})
	}
}

// TestBudget_TerrainMismatch abandons a branch whose target senses differently
// than recorded; nothing beyond it is discovered and no recharge follows.
func TestBudget_TerrainMismatch(t *testing.T) {
	r := &fickleRover{Rover: rover.New(corridor(4), rover.WithBattery(maxBattery)), target: terrain.Coord{X: 2, Y: 0}}
	res := mustRun(t, explore.NewBudgetExplorer(maxBattery).Run, r)

	assert.Equal(t, "H..\n", res.Grid.String())
	assert.Equal(t, 1, res.Stats.Abandoned)
	assert.Equal(t, 2, res.Stats.Recharges)
	assert.Equal(t, terrain.Home, r.Position())
	assert.Equal(t, float64(maxBattery-4), r.Battery())
}

// TestBudget_WalkFailure reverses only the completed prefix of a failed walk.
func TestBudget_WalkFailure(t *testing.T) {
	r := &stormyRover{
		Rover:  rover.New(corridor(4), rover.WithBattery(maxBattery)),
		at:     terrain.Coord{X: 1, Y: 0},
		failOn: 2,
	}
	res := mustRun(t, explore.NewBudgetExplorer(maxBattery).Run, r)

	assert.Equal(t, "H..\n", res.Grid.String())
	assert.Equal(t, 1, res.Stats.Abandoned)
	assert.Equal(t, 2, res.Stats.Recharges)
	assert.Equal(t, terrain.Home, r.Position())
	assert.Equal(t, float64(maxBattery-2), r.Battery(), "one move out, one back, no recharge")
}

// TestBudget_ObstructionsCountTowardKMax: with 5 units at the target only
// two directions may be attempted; an obstruction uses one of them.
func TestBudget_ObstructionsCountTowardKMax(t *testing.T) {
	s := planet.MustParse(".X.\n.H.\n...\n")
	var exs []explore.Excursion
	r := rover.New(s, rover.WithBattery(5))
	res := mustRun(t, explore.NewBudgetExplorer(5, excursionLog(t, &exs)).Run, r)

	home := exs[0]
	assert.Equal(t, 2, home.KMax)
	assert.Equal(t, 2, home.Attempted)
	assert.Equal(t, terrain.ObstructedMarker, res.Map.Get(terrain.Coord{X: 0, Y: -1}))
	assert.True(t, res.Map.Contains(terrain.Coord{X: 1, Y: 0}))
}

func TestBudget_Errors(t *testing.T) {
	r := rover.New(corridor(3), rover.WithBattery(maxBattery))
	_, err := explore.NewBudgetExplorer(maxBattery).Run(nil)
	assert.ErrorIs(t, err, explore.ErrNilRover)

	for _, bad := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err = explore.NewBudgetExplorer(bad).Run(r)
		assert.ErrorIs(t, err, explore.ErrInvalidBudget, "max %v", bad)
	}

	weak := &weakCharger{Rover: rover.New(corridor(3), rover.WithBattery(maxBattery)), cap: maxBattery - 1}
	_, err = explore.NewBudgetExplorer(maxBattery).Run(weak)
	require.ErrorIs(t, err, explore.ErrRechargeMismatch)
}
