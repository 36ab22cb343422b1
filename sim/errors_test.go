package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminationError_UnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	te := newTermination(Failure, cause)

	assert.ErrorIs(t, te, cause)
	assert.Equal(t, "sim: FAILURE: boom", te.Error())
}

func TestTerminationError_NoCause(t *testing.T) {
	te := newTermination(Idle, nil)
	assert.Equal(t, "sim: IDLE", te.Error())
	assert.Nil(t, te.Unwrap())
}

func TestTerminationReason_String(t *testing.T) {
	cases := map[TerminationReason]string{
		Unset:    "UNSET",
		Idle:     "IDLE",
		Done:     "DONE",
		Finished: "FINISHED",
		Failure:  "FAILURE",
	}
	for reason, want := range cases {
		assert.Equal(t, want, reason.String())
	}
}
