package workbench

import "github.com/desim-project/desim/sim"

// Workunit is a single piece of work with a simulated processing
// duration. It carries no behavior of its own; a Job drives it through
// the sim Client API.
type Workunit struct {
	Name     string
	Duration sim.VirtualTime
}
