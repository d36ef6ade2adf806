package progress

// BandState latches arrival at an endpoint so completion fires once per dwell
type BandState int

const (
	BandClear   BandState = iota // Outside the relaxation band, or band not yet evaluated
	BandLatched                  // Inside the band, completion already fired
)

func (s BandState) String() string {
	if s == BandLatched {
		return "latched"
	}
	return "clear"
}

// BandEdge is the transition produced by one band evaluation
type BandEdge int

const (
	EdgeNone BandEdge = iota
	EdgeEntered
	EdgeLeft
)

type bandTransition struct {
	next BandState
	edge BandEdge
}

// bandTransitions is indexed by current state then by whether the parameter is inside the band
var bandTransitions = [2][2]bandTransition{
	BandClear: {
		{next: BandClear, edge: EdgeNone},
		{next: BandLatched, edge: EdgeEntered},
	},
	BandLatched: {
		{next: BandClear, edge: EdgeLeft},
		{next: BandLatched, edge: EdgeNone},
	},
}

// evaluate advances the latch and reports the edge taken
func (s BandState) evaluate(inBand bool) (BandState, BandEdge) {
	i := 0
	if inBand {
		i = 1
	}
	tr := bandTransitions[s][i]
	return tr.next, tr.edge
}
