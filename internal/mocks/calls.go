package mocks

import "sync/atomic"

// callCounter counts method invocations on a mock.
type callCounter struct {
	n atomic.Int64
}

func (c *callCounter) record() {
	c.n.Add(1)
}

// Calls returns how many interface methods have been invoked on the mock.
func (c *callCounter) Calls() int {
	return int(c.n.Load())
}
