package app

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atomviz/internal/atom"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/surface"
)

var _ = Describe("App", func() {
	var (
		cfg *config.Config
		a   *App
		s   *fakeSurface
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		var err error
		a, err = New(cfg)
		Expect(err).NotTo(HaveOccurred())
		s = newFakeSurface()
	})

	submit := func(text string) {
		s.queue(typeText(text)...)
		Expect(a.Frame(s)).To(BeTrue())
	}

	It("rejects an invalid configuration", func() {
		cfg.Motion.BaseSpeed = 0
		_, err := New(cfg)
		Expect(err).To(MatchError(config.ErrInvalidConfig))
	})

	Describe("Selecting", func() {
		It("starts with the prompt", func() {
			Expect(a.Mode()).To(Equal(Selecting))
			Expect(a.State()).To(BeNil())

			Expect(a.Frame(s)).To(BeTrue())
			Expect(s.hasText(PromptText)).To(BeTrue())
			Expect(s.presents).To(Equal(1))
		})

		DescribeTable("silently rejects bad entries",
			func(entry string) {
				submit(entry)
				Expect(a.Mode()).To(Equal(Selecting))
				Expect(a.Input().Text).To(BeEmpty())
				Expect(a.State()).To(BeNil())
			},
			Entry("zero", "0"),
			Entry("above the table", "31"),
			Entry("letters", "abc"),
			Entry("empty", ""),
		)

		It("accepts every atomic number in the table", func() {
			for z := 1; z <= 30; z++ {
				a, _ = New(cfg)
				submit(itoa(z))
				Expect(a.Mode()).To(Equal(Running), "Z=%d", z)
				Expect(a.State().Record.AtomicNumber).To(Equal(z))
			}
		})

		It("builds a fresh state on submission", func() {
			submit("6")
			Expect(a.Mode()).To(Equal(Running))
			st := a.State()
			Expect(st.Occupancy()).To(Equal([]int{2, 4}))
			for _, sh := range st.Shells {
				Expect(sh.Angle).To(BeZero())
				Expect(sh.Trail.Len()).To(BeZero())
			}
		})

		It("does not draw the prompt on the accepting frame", func() {
			submit("8")
			Expect(s.presents).To(BeZero())
		})

		It("supports backspace", func() {
			s.queue(surface.CharPress('2'), surface.CharPress('9'), surface.KeyPress(surface.KeyBackspace), surface.KeyPress(surface.KeyEnter))
			Expect(a.Frame(s)).To(BeTrue())
			Expect(a.State().Record.Name).To(Equal("Helium"))
		})

		It("ignores keystrokes after a click outside the box", func() {
			s.queue(surface.Click(5, 5), surface.CharPress('5'))
			a.Frame(s)
			Expect(a.Input().Text).To(BeEmpty())
			Expect(a.Input().Active).To(BeFalse())

			box := a.Input().Rect
			s.queue(surface.Click(box.X+1, box.Y+1), surface.CharPress('5'))
			a.Frame(s)
			Expect(a.Input().Text).To(Equal("5"))
		})

		It("quits from inside the prompt", func() {
			s.queue(surface.CharPress('1'), surface.Quit())
			Expect(a.Frame(s)).To(BeFalse())
		})

		It("paces the prompt slower than the animation", func() {
			a.Run(stopAfter(s, 1))
			Expect(s.fps).To(Equal([]int{cfg.Window.PromptFPS}))

			a, _ = New(cfg)
			s = newFakeSurface()
			submit("3")
			Expect(s.fps).To(Equal([]int{cfg.Window.FPS}))
		})
	})

	Describe("Running", func() {
		BeforeEach(func() {
			submit("1")
		})

		It("advances every shell once per frame", func() {
			Expect(a.Frame(s)).To(BeTrue())
			sh := a.State().Shells[0]
			Expect(sh.Angle).To(BeNumerically("~", sh.Speed, 1e-12))
			Expect(sh.Trail.Len()).To(Equal(1))
			Expect(a.State().Frames).To(Equal(1))
		})

		It("draws the nucleus with one dot per nucleon", func() {
			a.Frame(s)
			dots := s.circlesWith(cfg.Layout.NucleusDotRadius)
			Expect(dots).To(HaveLen(1))
			Expect(dots[0].c).To(Equal(mustColors(cfg).Proton))
		})

		It("shows the element and configuration lines", func() {
			a.Frame(s)
			Expect(s.hasText("Hydrogen (H)  |  Atomic Number: 1  |  Mass: 1")).To(BeTrue())
			Expect(s.hasText("Electron configuration (K,L,M,...): 1")).To(BeTrue())
			Expect(s.hasText(ButtonLabel)).To(BeTrue())
		})

		It("fades the trail from oldest to newest", func() {
			for i := 0; i < 40; i++ {
				a.Frame(s)
			}
			trail := s.circlesWith(cfg.Layout.TrailDotRadius)
			Expect(trail).To(HaveLen(cfg.Motion.TrailVisible))
			Expect(trail[0].c.A).To(Equal(uint8(10)))
			Expect(trail[len(trail)-1].c.A).To(Equal(uint8(255)))
			Expect(a.State().Shells[0].Trail.Len()).To(Equal(25))
		})

		It("labels an electron under the pointer", func() {
			c := atom.Point{X: 700, Y: 550}
			p := atom.Project(c, cfg.Layout.BaseRadius, 0, 0)
			s.pointerX, s.pointerY = p.X+3, p.Y
			a.Frame(s)
			Expect(s.hasText("Electron in shell 1")).To(BeTrue())
		})

		It("highlights the button on hover", func() {
			colors := mustColors(cfg)
			a.Frame(s)
			Expect(s.rectColors).To(ContainElement(colors.Button))

			b := a.Button()
			s.pointerX, s.pointerY = b.X+5, b.Y+5
			a.Frame(s)
			Expect(s.rectColors).To(ContainElement(colors.ButtonHover))
		})

		It("quits on the event poll", func() {
			s.queue(surface.Quit())
			Expect(a.Frame(s)).To(BeFalse())
		})

		It("returns to the prompt when the button is clicked", func() {
			b := a.Button()
			s.queue(surface.Click(b.X+b.W/2, b.Y+b.H/2))
			Expect(a.Frame(s)).To(BeTrue())
			Expect(a.Mode()).To(Equal(Selecting))
			Expect(s.fps[len(s.fps)-1]).To(Equal(cfg.Window.PromptFPS))
		})

		It("ignores clicks outside the button", func() {
			s.queue(surface.Click(10, 900))
			a.Frame(s)
			Expect(a.Mode()).To(Equal(Running))
		})

		It("returns to the prompt on the C key", func() {
			s.queue(surface.CharPress('c'))
			a.Frame(s)
			Expect(a.Mode()).To(Equal(Selecting))
		})

		It("stops animating while the prompt is open", func() {
			s.queue(surface.CharPress('c'))
			a.Frame(s)
			before := a.State().Shells[0].Angle
			a.Frame(s)
			a.Frame(s)
			Expect(a.State().Shells[0].Angle).To(Equal(before))
		})
	})

	It("resets angles and trails when switching from carbon to calcium", func() {
		submit("6")
		for i := 0; i < 50; i++ {
			a.Frame(s)
		}
		carbon := a.State()
		Expect(carbon.Shells[0].Angle).To(BeNumerically(">", 0))
		Expect(carbon.Shells[1].Trail.Len()).To(Equal(100))

		b := a.Button()
		s.queue(surface.Click(b.X+1, b.Y+1))
		a.Frame(s)
		submit("20")

		calcium := a.State()
		Expect(calcium).NotTo(BeIdenticalTo(carbon))
		Expect(calcium.Occupancy()).To(Equal([]int{2, 8, 10}))
		Expect(calcium.Protons()).To(Equal(20))
		Expect(calcium.Neutrons()).To(Equal(20))
		for _, sh := range calcium.Shells {
			Expect(sh.Angle).To(BeZero())
			Expect(sh.Trail.Len()).To(BeZero())
		}
		Expect(calcium.Frames).To(BeZero())
	})

	It("Select skips the prompt", func() {
		Expect(a.Select(26)).To(Succeed())
		Expect(a.Mode()).To(Equal(Running))
		Expect(a.Select(99)).NotTo(Succeed())
		Expect(a.State().Record.Symbol).To(Equal("Fe"))
	})

	It("Run returns once quit is observed", func() {
		s.queue(typeText("12")...)
		s.queue()
		s.queue(surface.Quit())
		a.Run(s)
		Expect(a.Mode()).To(Equal(Running))
		Expect(a.State().Frames).To(Equal(2))
	})

	DescribeTable("places the shell rings at fixed spacing",
		func(z int, radii []float64, line string, electrons int) {
			Expect(a.Select(z)).To(Succeed())
			a.Frame(s)
			var rings []float64
			for _, c := range s.circles {
				if !c.filled {
					rings = append(rings, c.r)
				}
			}
			Expect(rings).To(Equal(radii))
			Expect(s.hasText("Electron configuration (K,L,M,...): " + line)).To(BeTrue())
			Expect(s.circlesWith(cfg.Layout.ElectronRadius)).To(HaveLen(electrons))
		},
		Entry("calcium", 20, []float64{140, 240, 340}, "2 8 10", 20),
		Entry("copper keeps three shells", 29, []float64{140, 240, 340}, "2 8 18", 28),
		Entry("zinc keeps three shells", 30, []float64{140, 240, 340}, "2 8 18", 28),
	)

	It("anchors the button to the configured window width", func() {
		cfg.Window.Width = 800
		var err error
		a, err = New(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Button()).To(Equal(surface.Rect{X: 540, Y: 20, W: 240, H: 60}))

		Expect(a.Select(6)).To(Succeed())
		s.queue(surface.Click(600, 50))
		a.Frame(s)
		Expect(a.Mode()).To(Equal(Selecting))
	})

	It("flattens tilted orbits vertically", func() {
		Expect(a.Select(3)).To(Succeed())
		sh := &a.State().Shells[1]
		sh.Angle = math.Pi / 2
		a.Frame(s)
		pts := sh.Trail.Recent(sh.Trail.Len())
		Expect(pts).To(HaveLen(1))
		Expect(pts[0].Y - 550).To(BeNumerically("~", 240*math.Cos(25*math.Pi/180), 1e-9))
	})
})

func mustColors(cfg *config.Config) config.Colors {
	c, err := cfg.Palette.Resolve()
	Expect(err).NotTo(HaveOccurred())
	return c
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return itoa(n/10) + string(rune('0'+n%10))
}

// stopAfter queues a quit after n quiet frames.
func stopAfter(s *fakeSurface, n int) *fakeSurface {
	for i := 0; i < n; i++ {
		s.queue()
	}
	s.queue(surface.Quit())
	return s
}
