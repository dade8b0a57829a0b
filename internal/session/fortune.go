package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ziadkadry99/chunlian/internal/model"
)

const (
	// CardCount is the number of face-down cards offered.
	CardCount = 8
	// MinDrawDuration is the shortest time a draw stays in the drawing state.
	MinDrawDuration = 1500 * time.Millisecond
)

// ErrInvalidCard is returned for a card index outside [0, CardCount).
var ErrInvalidCard = errors.New("invalid card index")

// FortuneState is a phase of the fortune page.
type FortuneState string

const (
	FortuneSelection      FortuneState = "selection"
	FortuneDrawing        FortuneState = "drawing"
	FortuneRevealed       FortuneState = "revealed"
	FortuneInterpretation FortuneState = "interpretation"
)

// FortuneGenerator draws fortune cards; *client.Client satisfies it.
type FortuneGenerator interface {
	GenerateFortune(ctx context.Context) (*model.FortuneCard, error)
}

// FortuneHistory records drawn cards; *store.Store satisfies it.
type FortuneHistory interface {
	AddFortuneHistory(f model.FortuneCard)
}

// FortuneView is a point-in-time snapshot for rendering. Selected is -1
// when no card is chosen.
type FortuneView struct {
	State    FortuneState
	Selected int
	Card     *model.FortuneCard
	Error    string
}

// Fortune drives the fortune page:
// selection -> drawing -> revealed <-> interpretation.
type Fortune struct {
	mu      sync.Mutex
	gen     FortuneGenerator
	history FortuneHistory
	clock   Clock

	state    FortuneState
	selected int
	card     *model.FortuneCard
	err      string
}

// NewFortune creates a fortune session in the selection state. A nil
// clock uses the wall clock.
func NewFortune(gen FortuneGenerator, history FortuneHistory, clock Clock) *Fortune {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Fortune{
		gen:      gen,
		history:  history,
		clock:    clock,
		state:    FortuneSelection,
		selected: -1,
	}
}

// Select picks card index and draws a fortune. It is a no-op outside the
// selection state. The draw takes at least MinDrawDuration on success; a
// failure returns as soon as it happens.
func (f *Fortune) Select(ctx context.Context, index int) error {
	f.mu.Lock()
	if f.state != FortuneSelection {
		f.mu.Unlock()
		return nil
	}
	if index < 0 || index >= CardCount {
		f.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrInvalidCard, index)
	}
	f.selected = index
	f.state = FortuneDrawing
	f.err = ""
	f.mu.Unlock()

	var card *model.FortuneCard
	err := WaitAll(ctx,
		func(ctx context.Context) error {
			c, err := f.gen.GenerateFortune(ctx)
			card = c
			return err
		},
		Sleep(f.clock, MinDrawDuration),
	)
	if err != nil {
		f.mu.Lock()
		f.err = err.Error()
		f.selected = -1
		f.state = FortuneSelection
		f.mu.Unlock()
		return err
	}

	f.history.AddFortuneHistory(*card)

	f.mu.Lock()
	f.card = card
	f.state = FortuneRevealed
	f.mu.Unlock()
	return nil
}

// OpenInterpretation shows the detailed reading of a revealed card.
func (f *Fortune) OpenInterpretation() {
	f.transition(FortuneRevealed, FortuneInterpretation)
}

// CloseInterpretation returns to the revealed card.
func (f *Fortune) CloseInterpretation() {
	f.transition(FortuneInterpretation, FortuneRevealed)
}

func (f *Fortune) transition(from, to FortuneState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == from {
		f.state = to
	}
}

// Reset returns to card selection for another draw. It is ignored while
// a draw is in flight.
func (f *Fortune) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FortuneDrawing {
		return
	}
	f.state = FortuneSelection
	f.card = nil
	f.selected = -1
	f.err = ""
}

// ShareText formats the revealed card for sharing. It returns "" when no
// card has been drawn.
func (f *Fortune) ShareText() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.card == nil {
		return ""
	}
	return FormatShare(*f.card)
}

// FormatShare renders a fortune card as the 天马测运 share block.
func FormatShare(c model.FortuneCard) string {
	const rule = "----------------"
	return strings.TrimSpace(fmt.Sprintf("【天马测运】2026丙午马年\n%s\n卦象：上%s下%s\n%s\n%s\n%s\n%s\n%s\n解曰：%s",
		rule, c.UpperTrigram, c.LowerTrigram, rule, c.Title, rule, c.Content, rule, c.Blessing))
}

// View returns a snapshot of the session.
func (f *Fortune) View() FortuneView {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := FortuneView{
		State:    f.state,
		Selected: f.selected,
		Error:    f.err,
	}
	if f.card != nil {
		c := *f.card
		v.Card = &c
	}
	return v
}
