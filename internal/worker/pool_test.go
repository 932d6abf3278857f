package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsEverything(t *testing.T) {
	p := NewPool(3)
	var n atomic.Int64
	for i := 0; i < 100; i++ {
		assert.True(t, p.Submit(func() { n.Add(1) }))
	}
	p.Stop()
	assert.EqualValues(t, 100, n.Load())
}

func TestPoolSurvivesPanics(t *testing.T) {
	p := NewPool(1)
	var n atomic.Int64
	p.Submit(func() { panic("boom") })
	p.Submit(func() { n.Add(1) })
	p.Stop()
	assert.EqualValues(t, 1, n.Load())
}

func TestPoolRejectsAfterStop(t *testing.T) {
	p := NewPool(1)
	p.Stop()
	assert.False(t, p.Submit(func() {}))
	p.Stop()
}

func TestSubmitDoesNotBlockWhenQueueFull(t *testing.T) {
	p := NewPoolWithQueue(1, 1)
	started := make(chan struct{})
	release := make(chan struct{})

	assert.True(t, p.Submit(func() {
		close(started)
		<-release
	}))
	<-started

	assert.True(t, p.Submit(func() {}))

	done := make(chan bool)
	go func() { done <- p.Submit(func() {}) }()
	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Submit blocked on a full queue")
	}

	close(release)
	p.Stop()
}
