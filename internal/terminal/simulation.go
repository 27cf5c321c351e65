package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"moose/internal/keys"
)

// Simulation is an in-memory tcell screen for tests.
type Simulation struct {
	*TcellScreen
	sim           tcell.SimulationScreen
	width, height int
}

// NewSimulation returns an uninitialized width x height simulated screen.
func NewSimulation(width, height int) *Simulation {
	sim := tcell.NewSimulationScreen("")
	return &Simulation{
		TcellScreen: &TcellScreen{screen: sim},
		sim:         sim,
		width:       width,
		height:      height,
	}
}

func (s *Simulation) Init() error {
	if err := s.TcellScreen.Init(); err != nil {
		return err
	}
	s.sim.SetSize(s.width, s.height)
	return nil
}

// Inject queues k as if it had been typed.
func (s *Simulation) Inject(ks ...keys.Key) {
	for _, k := range ks {
		key, r, mod := tcellEvent(k)
		s.sim.InjectKey(key, r, mod)
	}
}

// Line returns the flushed text of screen row y with trailing blanks removed.
func (s *Simulation) Line(y int) string {
	var sb strings.Builder
	for x := range s.width {
		r, _, _, _ := s.sim.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// StyleAt returns the style of the cell at x, y.
func (s *Simulation) StyleAt(x, y int) Style {
	_, _, style, _ := s.sim.GetContent(x, y)
	fg, _, attrs := style.Decompose()

	st := Style{Reverse: attrs&tcell.AttrReverse != 0}
	for i := range 8 {
		if fg == tcell.PaletteColor(i) {
			st.FG = 30 + i
		}
	}
	return st
}

// Cursor returns the cursor position set by the last draw.
func (s *Simulation) Cursor() (int, int) {
	x, y, _ := s.sim.GetCursor()
	return x, y
}
