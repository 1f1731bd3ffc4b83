package controller

import "time"

// The progress-sync loop periodically samples the player's current time
// and duration and republishes them into the playback state. It runs only
// while the player reports Playing and is torn down with the controller.

// startProgressLocked starts the sampling loop. Starting while a loop is
// already running replaces it: any existing loop is stopped first, so
// overlapping start calls never leave two concurrent samplers.
// Called with c.mu held.
func (c *Controller) startProgressLocked() {
	c.stopProgressLocked()
	stop := make(chan struct{})
	c.progressStop = stop
	go c.runProgress(c.instGen, stop)
}

// stopProgressLocked stops the sampling loop if one is running.
// Called with c.mu held.
func (c *Controller) stopProgressLocked() {
	if c.progressStop != nil {
		close(c.progressStop)
		c.progressStop = nil
	}
}

func (c *Controller) runProgress(gen uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.sampleProgress(gen)
		}
	}
}

// sampleProgress takes one position sample. Query failures are swallowed:
// the sample is skipped and the next tick retries.
func (c *Controller) sampleProgress(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.instGen || c.instance == nil || !c.ready {
		return
	}

	currentTime, err := c.instance.CurrentTime()
	if err != nil {
		return
	}
	duration, err := c.instance.Duration()
	if err != nil {
		return
	}
	if duration <= 0 {
		return
	}

	c.state.SetPosition(currentTime, duration)
	c.notifyProgress(ProgressChange{
		CurrentTime: c.state.CurrentTime,
		Duration:    c.state.Duration,
		Percent:     c.state.Progress,
	})
}
