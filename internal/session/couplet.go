package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ziadkadry99/chunlian/internal/model"
)

var (
	// ErrEmptyTheme is returned when submitting without a theme.
	ErrEmptyTheme = errors.New("theme is empty")
	// ErrNoResult is returned when regenerating before any couplet exists.
	ErrNoResult = errors.New("no couplet to regenerate")
)

// CoupletState is a phase of the couplet page.
type CoupletState string

const (
	CoupletIdle       CoupletState = "idle"
	CoupletRequesting CoupletState = "requesting"
	CoupletResult     CoupletState = "result"
)

// CoupletGenerator produces couplets; *client.Client satisfies it.
type CoupletGenerator interface {
	GenerateCouplet(ctx context.Context, req model.CoupletRequest) (*model.CoupletResult, error)
}

// CoupletHistory records generated couplets; *store.Store satisfies it.
type CoupletHistory interface {
	AddCoupletHistory(c model.CoupletResult)
}

// CoupletView is a point-in-time snapshot for rendering.
type CoupletView struct {
	State     CoupletState
	Theme     string
	Style     model.Style
	Result    *model.CoupletResult
	Error     string
	CanSubmit bool
}

// Couplet drives the couplet page: idle -> requesting -> result, with
// failures falling back to idle.
type Couplet struct {
	mu      sync.Mutex
	gen     CoupletGenerator
	history CoupletHistory

	state  CoupletState
	theme  string
	style  model.Style
	result *model.CoupletResult
	err    string
}

// NewCouplet creates an idle couplet session.
func NewCouplet(gen CoupletGenerator, history CoupletHistory) *Couplet {
	return &Couplet{
		gen:     gen,
		history: history,
		state:   CoupletIdle,
		style:   model.StyleTraditional,
	}
}

// SetTheme updates the theme text.
func (c *Couplet) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme = theme
}

// SetStyle updates the couplet style.
func (c *Couplet) SetStyle(style model.Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.style = style
}

// CanSubmit reports whether the generate action is enabled.
func (c *Couplet) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *Couplet) canSubmitLocked() bool {
	return strings.TrimSpace(c.theme) != "" && c.state != CoupletRequesting
}

// Submit requests a couplet for the current theme. Concurrent submits are
// not rejected; callers gate on CanSubmit.
func (c *Couplet) Submit(ctx context.Context) error {
	c.mu.Lock()
	if strings.TrimSpace(c.theme) == "" {
		c.mu.Unlock()
		return ErrEmptyTheme
	}
	req := model.CoupletRequest{Theme: c.theme, Style: c.style}
	c.err = ""
	c.result = nil
	c.state = CoupletRequesting
	c.mu.Unlock()

	result, err := c.gen.GenerateCouplet(ctx, req)
	if err != nil {
		c.mu.Lock()
		c.err = err.Error()
		c.state = CoupletIdle
		c.mu.Unlock()
		return err
	}

	c.history.AddCoupletHistory(*result)

	c.mu.Lock()
	c.result = result
	c.state = CoupletResult
	c.mu.Unlock()
	return nil
}

// Regenerate re-submits the current theme from the result state.
func (c *Couplet) Regenerate(ctx context.Context) error {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	if state != CoupletResult {
		return ErrNoResult
	}
	return c.Submit(ctx)
}

// CopyText formats the current couplet for the clipboard. It returns ""
// when there is no result.
func (c *Couplet) CopyText() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.result == nil {
		return ""
	}
	return FormatCouplet(*c.result)
}

// FormatCouplet renders a couplet as 上联/下联/横批 lines.
func FormatCouplet(r model.CoupletResult) string {
	return fmt.Sprintf("上联：%s\n下联：%s\n横批：%s", r.Upper, r.Lower, r.Horizontal)
}

// View returns a snapshot of the session.
func (c *Couplet) View() CoupletView {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := CoupletView{
		State:     c.state,
		Theme:     c.theme,
		Style:     c.style,
		Error:     c.err,
		CanSubmit: c.canSubmitLocked(),
	}
	if c.result != nil {
		r := *c.result
		v.Result = &r
	}
	return v
}
