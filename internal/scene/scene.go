package scene

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/orbit"
)

type Scene struct {
	cfg       Config
	center    orbit.Point
	band      orbit.Band
	system    *body.System
	asteroids []orbit.Point
	stars     []Star
	frame     int
	tooltip   *Tooltip
}

// New builds a scene. The same Config always yields the same scene.
func New(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{cfg: cfg, tooltip: NewTooltip(cfg.TooltipDelay)}
	s.build()
	for _, b := range s.system.All() {
		if err := b.Orbit.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name, err)
		}
	}
	return s, nil
}

func (s *Scene) build() {
	rng := rand.New(rand.NewSource(s.cfg.Seed))
	s.center = s.cfg.Screen.Center()
	s.band = s.cfg.Band()
	s.system = body.Catalogue(s.cfg.Screen.Width, s.cfg.Bodies)
	s.asteroids = makeBelt(rng, s.cfg.Asteroids, s.center, s.band)
	s.stars = makeStars(rng, s.cfg.Stars, s.cfg.Screen)
	s.frame = 0
	for _, b := range s.system.All() {
		b.Place(s.center)
	}
}

// Reset rebuilds the scene from its configuration.
func (s *Scene) Reset() {
	s.build()
	s.tooltip.Clear()
}

// Tick advances the scene by one frame and returns the names of bodies whose
// orbit restarted at angle zero during it.
func (s *Scene) Tick() []string {
	var wrapped []string
	s.system.Sun.Update(s.center)
	for _, p := range s.system.Planets {
		if p.Update(s.center) {
			wrapped = append(wrapped, p.Name)
		}
	}
	if m := s.system.Moon; m != nil && m.Update(s.center) {
		wrapped = append(wrapped, m.Name)
	}
	for i, a := range s.asteroids {
		s.asteroids[i] = orbit.AdvanceAsteroid(a, s.center, s.band, s.cfg.AsteroidStep)
	}
	s.frame++
	return wrapped
}

// HitTest returns the body drawn on top at p, or nil. The moon wins over
// planets and planets win over the sun.
func (s *Scene) HitTest(p orbit.Point) *body.Body {
	return s.HitTestNear(p, 0)
}

// HitTestNear is HitTest with every disc grown by slack. Coarse front ends
// use it when a body is smaller than one of their pixels.
func (s *Scene) HitTestNear(p orbit.Point, slack float64) *body.Body {
	near := func(b *body.Body) bool {
		return b != nil && b.Pos.Dist(p) <= b.Radius+slack
	}
	if near(s.system.Moon) {
		return s.system.Moon
	}
	for i := len(s.system.Planets) - 1; i >= 0; i-- {
		if near(s.system.Planets[i]) {
			return s.system.Planets[i]
		}
	}
	if near(s.system.Sun) {
		return s.system.Sun
	}
	return nil
}

// Hover shows the tooltip for whatever lies under p and returns it.
func (s *Scene) Hover(p orbit.Point, now time.Time) *body.Body {
	return s.HoverNear(p, 0, now)
}

func (s *Scene) HoverNear(p orbit.Point, slack float64, now time.Time) *body.Body {
	b := s.HitTestNear(p, slack)
	if b != nil {
		s.tooltip.Show(b.Info(), now)
	}
	return b
}

func (s *Scene) Tooltip() *Tooltip        { return s.tooltip }
func (s *Scene) Config() Config           { return s.cfg }
func (s *Scene) Center() orbit.Point      { return s.center }
func (s *Scene) Band() orbit.Band         { return s.band }
func (s *Scene) Frame() int               { return s.frame }
func (s *Scene) System() *body.System     { return s.system }
func (s *Scene) Asteroids() []orbit.Point { return s.asteroids }
func (s *Scene) Stars() []Star            { return s.stars }
