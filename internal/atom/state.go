package atom

import (
	"math"

	"github.com/san-kum/atomviz/internal/element"
)

// Params are the motion constants fixed when a State is built.
type Params struct {
	BaseSpeed        float64   // radians per frame for the innermost shell
	Tilts            []float64 // degrees, cycled by shell index
	TrailPerElectron int
}

func DefaultParams() Params {
	return Params{
		BaseSpeed:        0.04,
		Tilts:            []float64{0, 25, 50, 75},
		TrailPerElectron: 25,
	}
}

// Shell is one electron ring. Angle is the only field that changes after
// construction, apart from the trail contents.
type Shell struct {
	Index     int
	Electrons int
	Angle     float64
	Speed     float64
	Tilt      float64 // radians
	Trail     *Trail
}

// ElectronAngle is the angle of electron j, spread evenly around the ring.
func (s *Shell) ElectronAngle(j int) float64 {
	return s.Angle + (2*math.Pi/float64(s.Electrons))*float64(j)
}

// Advance rotates the shell by its fixed speed. The angle is never reduced
// modulo 2π; only its sine and cosine are used.
func (s *Shell) Advance() {
	s.Angle += s.Speed
}

// State is everything the render loop needs for the selected element.
// It is replaced wholesale when the element changes.
type State struct {
	Record element.Record
	Shells []Shell
	Frames int
}

// Build derives the animation state for atomicNumber.
func Build(atomicNumber int, p Params) (*State, error) {
	rec, err := element.Lookup(atomicNumber)
	if err != nil {
		return nil, err
	}
	occupancy := element.ShellOccupancy(rec.Electrons())
	st := &State{
		Record: rec,
		Shells: make([]Shell, len(occupancy)),
	}
	for i, n := range occupancy {
		st.Shells[i] = Shell{
			Index:     i,
			Electrons: n,
			Speed:     ShellSpeed(p.BaseSpeed, i),
			Tilt:      ShellTilt(p.Tilts, i),
			Trail:     NewTrail(p.TrailPerElectron * n),
		}
	}
	return st, nil
}

// New is Build for atomic numbers already validated by the input gate.
// An out-of-range number is a programming error and panics.
func New(atomicNumber int, p Params) *State {
	st, err := Build(atomicNumber, p)
	if err != nil {
		panic(err)
	}
	return st
}

// ShellSpeed makes every outer shell strictly slower than the one inside it.
func ShellSpeed(base float64, index int) float64 {
	return base / float64(index+1)
}

func ShellTilt(tiltsDeg []float64, index int) float64 {
	if len(tiltsDeg) == 0 {
		return 0
	}
	return tiltsDeg[index%len(tiltsDeg)] * math.Pi / 180
}

func (s *State) Protons() int  { return s.Record.Protons() }
func (s *State) Neutrons() int { return s.Record.Neutrons() }

func (s *State) Occupancy() []int {
	out := make([]int, len(s.Shells))
	for i, sh := range s.Shells {
		out[i] = sh.Electrons
	}
	return out
}

// Step advances every shell once and counts the frame. The render loop calls
// it after the frame has been drawn.
func (s *State) Step() {
	for i := range s.Shells {
		s.Shells[i].Advance()
	}
	s.Frames++
}

// Project places a point of a ring of the given radius on screen. The
// vertical component is flattened by cos(tilt) to fake a tilted orbit.
func Project(center Point, radius, angle, tilt float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle)*math.Cos(tilt),
	}
}

// NucleonPosition places nucleon i of total on the inner nucleus ring.
// Which slots hold protons is an arbitrary index split, not nuclear structure.
func NucleonPosition(center Point, radius float64, i, total int) Point {
	angle := 2 * math.Pi * float64(i) / float64(total)
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// TrailAlpha is the opacity of the k-th of n visible trail points, oldest
// faintest.
func TrailAlpha(k, n int) uint8 {
	if n <= 0 {
		return 0
	}
	a := 255 * (k + 1) / n
	if a > 255 {
		a = 255
	}
	return uint8(a)
}
