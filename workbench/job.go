package workbench

import "github.com/desim-project/desim/sim"

// Job is an ordered bundle of Workunits executed sequentially by one
// simulated worker client.
type Job struct {
	Name  string
	Units []Workunit
}

// Run returns the function suitable for sim.DES.Register: it advances
// the calling client through each Workunit's duration in order,
// recording lifecycle events to log. If the client is interrupted
// (e.g. FAILURE from an upstream Interrupt call, or FINISHED at the end
// of a run), the job is recorded as failed and Run returns early.
func (j Job) Run(log *Simlog) func(c *sim.Client) {
	return func(c *sim.Client) {
		log.record(c.Now(), j.Name, EventJobStarted, "")
		for _, u := range j.Units {
			if _, err := c.Delay(u.Duration, false); err != nil {
				log.record(c.Now(), j.Name, EventJobFailed, err.Error())
				return
			}
			log.record(c.Now(), j.Name, EventWorkunitFinished, u.Name)
		}
		log.record(c.Now(), j.Name, EventJobFinished, "")
	}
}
