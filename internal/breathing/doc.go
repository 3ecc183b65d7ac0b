// Package breathing implements the guided-breathing state machine.
//
// A Cycle moves Inhale → Hold → Exhale → Inhale forever once started;
// Stop is the only way back to Idle. The machine owns no timer: Tick
// receives the current time from whoever schedules it (the UI's 30 ms
// tick in production, synthetic timestamps in tests) and reports
// whether further ticks are wanted.
//
//	c := breathing.NewCycle()
//	c.Start(4*time.Second, 4*time.Second, 6*time.Second, time.Now())
//	for c.Tick(time.Now()) {
//	    render(c.Phase(), c.Radius(minR, maxR))
//	    time.Sleep(breathing.TickInterval)
//	}
//
// Progress within a phase is clamped to [0,1] and resets to 0 on every
// phase entry; a zero-duration hold completes on its first tick.
package breathing
