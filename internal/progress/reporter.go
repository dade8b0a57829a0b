package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter shows that a slow request is in flight.
type Reporter interface {
	Start(message string)
	Stop()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: os.Stderr}
	}
	return &TerminalReporter{w: os.Stderr}
}

// Track runs fn with r showing message until fn returns.
func Track(r Reporter, message string, fn func() error) error {
	r.Start(message)
	defer r.Stop()
	return fn()
}

// TerminalReporter displays a spinner in the terminal.
type TerminalReporter struct {
	w    io.Writer
	bar  *progressbar.ProgressBar
	stop chan struct{}
	wg   sync.WaitGroup
}

func (r *TerminalReporter) Start(message string) {
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	r.stop = make(chan struct{})

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = r.bar.Add(1)
			case <-r.stop:
				return
			}
		}
	}()
}

func (r *TerminalReporter) Stop() {
	if r.bar == nil {
		return
	}
	close(r.stop)
	r.wg.Wait()
	_ = r.bar.Finish()
	r.bar = nil
}

// CIReporter prints one line per request, suitable for logs.
type CIReporter struct {
	w     io.Writer
	start time.Time
}

func (r *CIReporter) Start(message string) {
	r.start = time.Now()
	fmt.Fprintf(r.w, "%s...\n", message)
}

func (r *CIReporter) Stop() {
	fmt.Fprintf(r.w, "done in %s\n", time.Since(r.start).Round(time.Millisecond))
}
