package hodaun

// Automation is a control-rate parameter stream. Any mono source can
// drive a combinator parameter: a Constant for a static value, a Shared
// cell through Automate for a value toggled from another goroutine, or a
// full audio-rate source for modulation. Each combinator call consumes
// one step of the automation, and a combinator whose automation ends
// ends with it.
type Automation = Source[Mono]

// Automate adapts a shared cell for use as a live parameter. The
// resulting automation reads the cell once per frame and never ends.
func Automate(cell *Shared[float64]) Automation {
	return &cellAutomation{cell: cell}
}

type cellAutomation struct {
	cell *Shared[float64]
}

func (c *cellAutomation) Next(float64) (Mono, bool) {
	return Mono(c.cell.Get()), true
}
