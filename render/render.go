// Package render draws explorer snapshots as terminal frames: a battery
// line, the rover position and the map discovered so far with the rover
// marked 'R'.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/surveyor/explore"
	"github.com/katalvlaran/surveyor/terrain"
)

const (
	barWidth     = 20
	clearScreen  = "\x1b[H\x1b[2J"
	colorRed     = "\x1b[91m"
	colorGreen   = "\x1b[92m"
	colorYellow  = "\x1b[93m"
	colorBlue    = "\x1b[94m"
	colorReset   = "\x1b[0m"
	greenAbove   = 15
	yellowAbove  = 5
	defaultDelay = 200 * time.Millisecond
)

// Option configures an Animator.
type Option func(*Animator)

// WithDelay sets the pause after each frame.
func WithDelay(d time.Duration) Option {
	return func(a *Animator) { a.delay = d }
}

// WithRechargeSteps sets how many frames the recharge animation plays.
func WithRechargeSteps(n int) Option {
	return func(a *Animator) {
		if n > 0 {
			a.rechargeSteps = n
		}
	}
}

// WithClear toggles clearing the terminal before each frame.
func WithClear(on bool) Option {
	return func(a *Animator) { a.clear = on }
}

// WithSleep replaces time.Sleep, mainly for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(a *Animator) {
		if fn != nil {
			a.sleep = fn
		}
	}
}

// Animator writes frames to a terminal.
type Animator struct {
	w             io.Writer
	delay         time.Duration
	rechargeSteps int
	clear         bool
	sleep         func(time.Duration)
}

// NewAnimator returns an Animator writing to w.
func NewAnimator(w io.Writer, opts ...Option) *Animator {
	a := &Animator{w: w, delay: defaultDelay, rechargeSteps: 10, clear: true, sleep: time.Sleep}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Step draws one snapshot and pauses. It fits explore.WithOnStep.
func (a *Animator) Step(s explore.Snapshot) {
	if a.clear {
		fmt.Fprint(a.w, clearScreen)
	}
	fmt.Fprint(a.w, Frame(s))
	a.sleep(a.delay)
}

// Recharge plays the recharge animation. It fits explore.WithOnRecharge.
func (a *Animator) Recharge(max float64) {
	fmt.Fprint(a.w, "\nRecharging battery...\n\n")
	for i := 1; i <= a.rechargeSteps; i++ {
		level := float64(i) * max / float64(a.rechargeSteps)
		fmt.Fprintf(a.w, "\rRecharging: %.1f/%g %s", level, max, BatteryBar(level, max))
		a.sleep(a.delay)
	}
	fmt.Fprint(a.w, "\n\nBattery fully recharged!\n")
	a.sleep(a.delay)
}

// BatteryBar renders a 20-cell bar: green above 15, yellow above 5, red
// otherwise, blue infinity marks for an unlimited battery.
func BatteryBar(battery, max float64) string {
	if math.IsInf(battery, 1) || math.IsInf(max, 1) {
		return colorBlue + "[" + strings.Repeat("∞", barWidth) + "]" + colorReset
	}
	filled := 0
	if max > 0 {
		filled = int(battery / max * barWidth)
	}
	filled = min(max0(filled), barWidth)

	color := colorRed
	switch {
	case battery > greenAbove:
		color = colorGreen
	case battery > yellowAbove:
		color = colorYellow
	}
	return color + "[" + strings.Repeat("█", filled) + strings.Repeat(" ", barWidth-filled) + "]" + colorReset
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Frame renders a snapshot without clearing or pausing.
func Frame(s explore.Snapshot) string {
	var sb strings.Builder
	if math.IsInf(s.MaxBattery, 1) {
		fmt.Fprintf(&sb, "Battery: INF %s\n", BatteryBar(s.Battery, s.MaxBattery))
	} else {
		fmt.Fprintf(&sb, "Battery: %g/%g %s\n", s.Battery, s.MaxBattery, BatteryBar(s.Battery, s.MaxBattery))
	}
	fmt.Fprintf(&sb, "Position: %v\n", s.Pos)
	if s.Map == nil {
		sb.WriteString("No map data available\n")
		return sb.String()
	}

	b := s.Map.Bounds()
	border := "+" + strings.Repeat("-", 2*b.Width()-1) + "+\n"
	sb.WriteString(border)
	for y := b.MinY; y <= b.MaxY; y++ {
		sb.WriteByte('|')
		for x := b.MinX; x <= b.MaxX; x++ {
			if x > b.MinX {
				sb.WriteByte(' ')
			}
			c := terrain.Coord{X: x, Y: y}
			if c == s.Pos {
				sb.WriteRune(rune(terrain.RoverMarker))
				continue
			}
			sb.WriteRune(rune(s.Map.Get(c)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
