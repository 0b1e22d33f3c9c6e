package metric_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"pipelined.dev/flow/metric"
)

func TestMeter(t *testing.T) {
	// test cases
	var tests = []struct {
		format          string
		routines        int
		items           int
		expectedPushed  string
		expectedPads    string
		expectedDropped string
	}{
		{
			format:          "test/meter",
			routines:        2,
			items:           10,
			expectedPushed:  "20",
			expectedPads:    "2",
			expectedDropped: "0",
		},
		{
			format:          "test/meter",
			routines:        2,
			items:           10,
			expectedPushed:  "40",
			expectedPads:    "4",
			expectedDropped: "0",
		},
	}
	// function to push items.
	testFn := func(c *metric.Counters, wg *sync.WaitGroup, items int) {
		for i := 0; i < items; i++ {
			c.Pushed.Add(1)
		}
		wg.Done()
	}

	for _, c := range tests {
		wg := &sync.WaitGroup{}
		wg.Add(c.routines)
		for i := 0; i < c.routines; i++ {
			go testFn(metric.Meter(c.format), wg, c.items)
		}
		// check if no data race.
		wg.Wait()
		values := metric.Get(c.format)
		assert.Equal(t, c.expectedPushed, values[metric.PushedCounter])
		assert.Equal(t, c.expectedPads, values[metric.PadCounter])
		assert.Equal(t, c.expectedDropped, values[metric.DroppedCounter])
	}
}

func TestGetAll(t *testing.T) {
	c := metric.Meter("test/all")
	c.Events.Add(3)

	all := metric.GetAll()
	assert.Contains(t, all, "test/all")
	assert.Equal(t, "3", all["test/all"][metric.EventCounter])
	assert.Empty(t, metric.Get("test/unknown"))
}
