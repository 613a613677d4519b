package cli

import (
	"fmt"

	"github.com/obinexus/plp/pkg/lens"
)

// ObserveCmd runs the coherence lens over a sweep of inputs and prints
// one observation per line.
type ObserveCmd struct {
	From float64 `help:"Start of the sweep" default:"-3.14"`
	To   float64 `help:"End of the sweep" default:"3.14"`
	Step float64 `help:"Sweep step, must be positive" default:"1"`
}

// Run executes the observe command.
func (cmd *ObserveCmd) Run(ctx *Context) error {
	if cmd.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", cmd.Step)
	}

	for _, m := range lens.Sweep(lens.Default, cmd.From, cmd.To, cmd.Step) {
		fmt.Printf("x = %+.2f | f(x) = %+.3f | coherence = %.3f\n", m.Input, m.Output, m.Coherence)
	}
	return nil
}
