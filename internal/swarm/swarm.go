// Package swarm is the demo particle system drawn by the particles command.
//
// Particles live in normalized space: x in [-1, 1] left to right and y in
// [-1, 1] scaled by the canvas width so the swarm stays round on any
// aspect ratio. The swarm touches the renderer only through SetPixel and
// the coordinate helpers.
package swarm

import (
	"math"
	"math/rand"
	"time"

	"github.com/gogpu/particles"
)

const (
	// maxSpeed is the largest initial speed in normalized units per
	// millisecond.
	maxSpeed = 0.04 / 1000 * 60

	// curl turns each particle a little every update.
	curl = 0.0004
)

type particle struct {
	x, y      float64
	speed     float64
	direction float64
}

// Swarm is a set of particles emitted from the centre.
type Swarm struct {
	rng       *rand.Rand
	particles []particle
	last      time.Duration
}

// New creates n particles at the centre using rng for their directions.
func New(n int, rng *rand.Rand) *Swarm {
	s := &Swarm{
		rng:       rng,
		particles: make([]particle, n),
	}
	s.Explode()
	return s
}

// Len returns the number of particles.
func (s *Swarm) Len() int {
	return len(s.particles)
}

// Explode moves every particle back to the centre with a new random
// direction and speed.
func (s *Swarm) Explode() {
	for i := range s.particles {
		s.particles[i] = s.spawn()
	}
}

// Reset explodes the swarm and restarts its clock.
func (s *Swarm) Reset() {
	s.last = 0
	s.Explode()
}

func (s *Swarm) spawn() particle {
	speed := s.rng.Float64() * maxSpeed
	return particle{
		direction: 2 * math.Pi * s.rng.Float64(),
		speed:     speed * speed / maxSpeed,
	}
}

// Update advances the swarm to elapsed since start. Particles that leave
// the normalized square respawn at the centre.
func (s *Swarm) Update(elapsed time.Duration) {
	dt := float64((elapsed - s.last).Milliseconds())
	s.last = elapsed
	if dt <= 0 {
		return
	}
	for i := range s.particles {
		p := &s.particles[i]
		p.direction += dt * curl
		p.x += p.speed * math.Cos(p.direction) * dt
		p.y += p.speed * math.Sin(p.direction) * dt
		if p.x < -1 || p.x > 1 || p.y < -1 || p.y > 1 {
			*p = s.spawn()
		}
		if s.rng.Intn(100) == 0 {
			*p = s.spawn()
		}
	}
}

// Color returns the swarm color at elapsed; each channel cycles on its
// own period.
func Color(elapsed time.Duration) particles.Color {
	t := float64(elapsed.Milliseconds())
	r := uint8((1 + math.Sin(t*0.0002)) * 127.5)
	g := uint8((1 + math.Sin(t*0.0003)) * 127.5)
	b := uint8((1 + math.Sin(t*0.0005)) * 127.5)
	return particles.RGB(r, g, b)
}

// Draw paints every particle onto c.
func (s *Swarm) Draw(c *particles.Canvas, elapsed time.Duration) {
	w, h := c.Width(), c.Height()
	col := Color(elapsed)
	for _, p := range s.particles {
		x := particles.ToAbs(p.x+1, w)
		y := particles.ToAbs(p.y, w) + h/2
		c.SetPixel(x, y, col)
	}
}
