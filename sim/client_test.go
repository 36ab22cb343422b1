package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_IDIsStablePerRegistration(t *testing.T) {
	d := New()
	idCh := make(chan uint64, 3)
	for i := 0; i < 3; i++ {
		d.Register(func(c *Client) {
			idCh <- c.ID()
		})
	}

	d.Simulate(1.0, false)

	var ids []uint64
	for i := 0; i < 3; i++ {
		ids = append(ids, <-idCh)
	}
	assert.ElementsMatch(t, []uint64{1, 2, 3}, ids)
}
