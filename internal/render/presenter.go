package render

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/chunlian/internal/model"
)

const bell = "\a"

// DefaultLineDelay paces the verse when animation is on.
const DefaultLineDelay = 400 * time.Millisecond

// Presenter writes rendered views to a terminal, applying the user's sound
// and animation settings to reveals.
type Presenter struct {
	w         io.Writer
	settings  func() model.Settings
	lineDelay time.Duration
	sleep     func(time.Duration)
}

// NewPresenter creates a Presenter. settings is consulted on every reveal
// so toggles take effect immediately.
func NewPresenter(w io.Writer, settings func() model.Settings) *Presenter {
	return &Presenter{
		w:         w,
		settings:  settings,
		lineDelay: DefaultLineDelay,
		sleep:     time.Sleep,
	}
}

// Println writes s followed by a newline.
func (p *Presenter) Println(s string) {
	fmt.Fprintln(p.w, s)
}

// RevealCouplet shows a generated couplet.
func (p *Presenter) RevealCouplet(c model.CoupletResult) {
	if p.settings().SoundEnabled {
		fmt.Fprint(p.w, bell)
	}
	fmt.Fprintln(p.w, Couplet(c))
}

// RevealFortune shows a drawn card. With animation on, the verse appears
// one line at a time.
func (p *Presenter) RevealFortune(c model.FortuneCard) {
	s := p.settings()
	if s.SoundEnabled {
		fmt.Fprint(p.w, bell)
	}

	if !s.AnimationEnabled {
		fmt.Fprintln(p.w, Card(c))
		return
	}

	fmt.Fprintln(p.w, CardHeader(c))
	fmt.Fprintln(p.w)
	for _, line := range VerseLines(c.Content) {
		p.sleep(p.lineDelay)
		fmt.Fprintln(p.w, lipgloss.NewStyle().PaddingLeft(4).Render(verseStyle.Render(line)))
	}
}

// Interpretation shows the detailed reading.
func (p *Presenter) Interpretation(c model.FortuneCard) {
	fmt.Fprintln(p.w, Interpretation(c))
}
