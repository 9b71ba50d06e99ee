package explore

import "github.com/katalvlaran/surveyor/terrain"

// ProbeKind classifies a probe.
type ProbeKind uint8

const (
	// ProbeOpen means the neighbour was entered and sensed.
	ProbeOpen ProbeKind = iota
	// ProbeObstructed means the neighbour cannot be entered.
	ProbeObstructed
	// ProbeFailed means the move failed for any other reason.
	ProbeFailed
)

func (k ProbeKind) String() string {
	switch k {
	case ProbeOpen:
		return "open"
	case ProbeObstructed:
		return "obstructed"
	default:
		return "failed"
	}
}

// ProbeOutcome is the result of one probe-and-return transaction.
type ProbeOutcome struct {
	Kind ProbeKind
	// Symbol is the sensed terrain for ProbeOpen.
	Symbol terrain.Symbol
	// Reason carries the failure reason for ProbeFailed, or the rollback
	// failure reason when Returned is false.
	Reason Reason
	// Returned is false only when an open probe could not move back; the
	// rover is then standing on the neighbour.
	Returned bool
	// Moves counts the successful moves the transaction made.
	Moves int
}

// Probe discovers the neighbour in direction d as one transaction: a
// tentative move and sense, then an unconditional move back. Rovers that
// implement Peeker are asked directly and never move.
func Probe(r Rover, d terrain.Direction) ProbeOutcome {
	return probe(r, d, nil)
}

// probe is Probe with an optional callback run while the rover stands on
// the neighbour, between the sense and the move back.
func probe(r Rover, d terrain.Direction, entered func(terrain.Symbol)) ProbeOutcome {
	if p, ok := r.(Peeker); ok {
		s, res := p.Peek(d)
		return classify(res, s, true, 0)
	}

	res := r.Move(d)
	if !res.OK {
		return classify(res, 0, true, 0)
	}
	s := r.Sense()
	if entered != nil {
		entered(s)
	}
	back := r.Move(d.Opposite())
	out := ProbeOutcome{Kind: ProbeOpen, Symbol: s, Returned: back.OK, Moves: 1}
	if back.OK {
		out.Moves++
	} else {
		out.Reason = back.Reason
	}
	return out
}

func classify(res MoveResult, s terrain.Symbol, returned bool, moves int) ProbeOutcome {
	switch {
	case res.OK:
		return ProbeOutcome{Kind: ProbeOpen, Symbol: s, Returned: returned, Moves: moves}
	case res.Reason == ReasonObstructed:
		return ProbeOutcome{Kind: ProbeObstructed, Reason: res.Reason, Returned: true}
	default:
		return ProbeOutcome{Kind: ProbeFailed, Reason: res.Reason, Returned: true}
	}
}
