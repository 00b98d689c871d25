package adapter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dice-registry/internal/adapter"
	"github.com/feral-file/ff-dice-registry/internal/mocks"
)

var (
	_ adapter.Clock         = (*mocks.MockClock)(nil)
	_ adapter.JSON          = (*mocks.MockJSON)(nil)
	_ adapter.NatsJetStream = (*mocks.MockNatsJetStream)(nil)
)

func TestRealClock(t *testing.T) {
	clock := adapter.NewClock()

	before := time.Now()
	now := clock.Now()
	assert.False(t, now.Before(before))

	select {
	case <-clock.After(time.Millisecond):
	case <-time.After(time.Second):
		t.Fatal("clock.After did not fire")
	}
}

func TestRealJSON(t *testing.T) {
	data, err := adapter.NewJSON().Marshal(map[string]uint64{"seq": 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"seq":7}`, string(data))
}
