package scene_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/scene"
)

var _ = Describe("Scene", func() {
	var (
		cfg scene.Config
		s   *scene.Scene
	)

	BeforeEach(func() {
		cfg = scene.DefaultConfig()
		var err error
		s, err = scene.New(cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("places the sun on the screen center", func() {
			Expect(s.System().Sun.Pos).To(Equal(orbit.Point{X: 480, Y: 540}))
		})

		It("builds the configured number of asteroids and stars", func() {
			Expect(s.Asteroids()).To(HaveLen(cfg.Asteroids))
			Expect(s.Stars()).To(HaveLen(cfg.Stars))
		})

		It("scatters the belt inside its band", func() {
			band := s.Band()
			for _, a := range s.Asteroids() {
				Expect(a.Dist(s.Center())).To(BeNumerically(">=", band.Min-1e-9))
				Expect(a.Dist(s.Center())).To(BeNumerically("<=", band.Max+1e-9))
			}
		})

		It("keeps stars on screen with sizes in [1, 3)", func() {
			for _, st := range s.Stars() {
				Expect(st.Pos.X).To(BeNumerically(">=", 0))
				Expect(st.Pos.X).To(BeNumerically("<", cfg.Screen.Width))
				Expect(st.Pos.Y).To(BeNumerically(">=", 0))
				Expect(st.Pos.Y).To(BeNumerically("<", cfg.Screen.Height))
				Expect(st.Size).To(BeNumerically(">=", 1))
				Expect(st.Size).To(BeNumerically("<", 3))
			}
		})

		It("is reproducible for a fixed seed", func() {
			other, err := scene.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(other.Snapshot()).To(Equal(s.Snapshot()))
		})

		It("differs across seeds", func() {
			cfg.Seed = 99
			other, err := scene.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(other.Asteroids()).NotTo(Equal(s.Asteroids()))
		})

		DescribeTable("rejects bad configuration",
			func(mutate func(*scene.Config), target error) {
				mutate(&cfg)
				_, err := scene.New(cfg)
				Expect(err).To(MatchError(target))
			},
			Entry("zero width", func(c *scene.Config) { c.Screen.Width = 0 }, scene.ErrScreen),
			Entry("negative asteroids", func(c *scene.Config) { c.Asteroids = -1 }, scene.ErrCounts),
			Entry("inverted band", func(c *scene.Config) { c.BandInner, c.BandOuter = 0.5, 0.4 }, orbit.ErrBand),
		)
	})

	Describe("Tick", func() {
		It("advances every planet by its own speed", func() {
			s.Tick()
			for _, p := range s.System().Planets {
				Expect(p.Orbit.Angle).To(BeNumerically("~", p.Speed, 1e-12))
			}
		})

		It("never moves the sun", func() {
			for i := 0; i < 50; i++ {
				s.Tick()
			}
			Expect(s.System().Sun.Pos).To(Equal(s.Center()))
		})

		It("keeps the moon at its orbit radius from Earth", func() {
			for i := 0; i < 200; i++ {
				s.Tick()
				moon := s.System().Moon
				earth := s.System().Find("Earth")
				Expect(moon.Pos.Dist(earth.Pos)).To(BeNumerically("~", moon.Orbit.SemiMajor, 1e-9))
			}
		})

		It("keeps asteroids in the band and rotates them", func() {
			before := append([]orbit.Point(nil), s.Asteroids()...)
			s.Tick()
			band := s.Band()
			for i, a := range s.Asteroids() {
				r := a.Dist(s.Center())
				Expect(band.Contains(r)).To(BeTrue())
				Expect(a).NotTo(Equal(before[i]))
			}
		})

		It("reports bodies whose orbit restarted", func() {
			var wrapped []string
			// Mercury needs ceil(360/0.65) frames to exceed a full turn.
			for i := 0; i < 554; i++ {
				wrapped = append(wrapped, s.Tick()...)
			}
			Expect(wrapped).To(ContainElement("Mercury"))
			Expect(wrapped).NotTo(ContainElement("Venus"))
			Expect(wrapped).NotTo(ContainElement("Pluto"))
			Expect(s.System().Find("Mercury").Orbit.Angle).To(Equal(0.0))
		})

		It("counts frames", func() {
			s.Tick()
			s.Tick()
			Expect(s.Frame()).To(Equal(2))
			Expect(s.Snapshot().Frame).To(Equal(2))
		})
	})

	Describe("Reset", func() {
		It("returns to the initial frame", func() {
			initial := s.Snapshot()
			for i := 0; i < 30; i++ {
				s.Tick()
			}
			s.Reset()
			Expect(s.Snapshot()).To(Equal(initial))
		})
	})

	Describe("Snapshot", func() {
		It("is a copy", func() {
			snap := s.Snapshot()
			s.Tick()
			earth, ok := snap.Body("Earth")
			Expect(ok).To(BeTrue())
			Expect(earth.Angle).To(Equal(0.0))
			Expect(snap.Asteroids[0]).NotTo(Equal(s.Asteroids()[0]))
		})

		It("lists the sun, nine planets and the moon", func() {
			snap := s.Snapshot()
			Expect(snap.Bodies).To(HaveLen(11))
			Expect(snap.Bodies[0].Kind).To(Equal(body.Sun))
			Expect(snap.Bodies[10].Kind).To(Equal(body.Moon))
			saturn, _ := snap.Body("Saturn")
			Expect(saturn.Rings).To(HaveLen(2))
		})

		It("reports unknown names", func() {
			_, ok := s.Snapshot().Body("Vulcan")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("HitTest", func() {
		It("picks the moon over Earth", func() {
			moon := s.System().Moon
			earth := s.System().Find("Earth")
			moon.Pos = earth.Pos
			Expect(s.HitTest(earth.Pos)).To(BeIdenticalTo(moon))
		})

		It("finds the sun at the center", func() {
			Expect(s.HitTest(s.Center())).To(BeIdenticalTo(s.System().Sun))
		})

		It("finds a planet on its disc", func() {
			mars := s.System().Find("Mars")
			Expect(s.HitTest(mars.Pos)).To(BeIdenticalTo(mars))
		})

		It("grows discs by the slack", func() {
			mars := s.System().Find("Mars")
			p := mars.Pos.Add(orbit.Point{Y: mars.Radius + 3})
			Expect(s.HitTest(p)).To(BeNil())
			Expect(s.HitTestNear(p, 4)).To(BeIdenticalTo(mars))
		})

		It("misses empty space", func() {
			Expect(s.HitTest(orbit.Point{X: 1, Y: 1})).To(BeNil())
		})
	})

	Describe("Hover", func() {
		var t0 time.Time

		BeforeEach(func() {
			t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		})

		It("shows body facts and hides them after the delay", func() {
			b := s.Hover(s.Center(), t0)
			Expect(b).NotTo(BeNil())
			Expect(s.Tooltip().Text(t0)).To(ContainSubstring("Name: Sun"))
			Expect(s.Tooltip().Text(t0.Add(cfg.TooltipDelay - time.Millisecond))).NotTo(BeEmpty())
			Expect(s.Tooltip().Text(t0.Add(cfg.TooltipDelay))).To(BeEmpty())
		})

		It("re-arms the single timer on each hover", func() {
			mars := s.System().Find("Mars")
			s.Hover(s.Center(), t0)
			s.Hover(mars.Pos, t0.Add(4*time.Second))
			text := s.Tooltip().Text(t0.Add(6 * time.Second))
			Expect(text).To(ContainSubstring("Name: Mars"))
			Expect(text).NotTo(ContainSubstring("Sun"))
			Expect(s.Tooltip().Text(t0.Add(9 * time.Second))).To(BeEmpty())
		})

		It("leaves the tooltip alone when nothing is hit", func() {
			s.Hover(s.Center(), t0)
			Expect(s.Hover(orbit.Point{X: 1, Y: 1}, t0.Add(time.Second))).To(BeNil())
			Expect(s.Tooltip().Text(t0.Add(2 * time.Second))).To(ContainSubstring("Sun"))
		})
	})
})
