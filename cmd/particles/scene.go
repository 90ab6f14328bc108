package main

import (
	"time"

	"github.com/gogpu/particles"
	"github.com/gogpu/particles/internal/swarm"
)

// fadeStep is how much the help overlay brightens or dims per tick.
const fadeStep = 0x11

// controls is the input state sampled once per tick.
type controls struct {
	quit    bool
	help    bool
	explode bool
	reset   bool
}

// demoScene drives the swarm and the help overlay.
type demoScene struct {
	swarm      *swarm.Swarm
	clock      func() time.Duration
	resetTrail func()
	input      func() controls

	fade    uint8
	elapsed time.Duration
}

func newDemoScene(s *swarm.Swarm, clock func() time.Duration, resetTrail func()) *demoScene {
	return &demoScene{swarm: s, clock: clock, resetTrail: resetTrail}
}

func (d *demoScene) Update() error {
	var in controls
	if d.input != nil {
		in = d.input()
	}
	if in.quit {
		return errQuit
	}
	if in.reset {
		d.swarm.Reset()
		if d.resetTrail != nil {
			d.resetTrail()
		}
	}
	if in.explode {
		d.swarm.Explode()
	}
	d.fade = stepFade(d.fade, in.help)

	d.elapsed = d.clock()
	d.swarm.Update(d.elapsed)
	return nil
}

func (d *demoScene) Draw(c *particles.Canvas) {
	d.swarm.Draw(c, d.elapsed)
}

func (d *demoScene) OverlayFade() uint8 {
	return d.fade
}

// stepFade ramps the overlay up while help is held and down otherwise.
func stepFade(fade uint8, held bool) uint8 {
	if held {
		if fade > 0xFF-fadeStep {
			return 0xFF
		}
		return fade + fadeStep
	}
	if fade < fadeStep {
		return 0
	}
	return fade - fadeStep
}

// frameClock returns a clock that advances a fixed step per call, so
// headless runs are reproducible.
func frameClock(step time.Duration) func() time.Duration {
	var now time.Duration
	return func() time.Duration {
		now += step
		return now
	}
}
