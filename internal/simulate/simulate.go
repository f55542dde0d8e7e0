// Package simulate drives the renderer through a synthetic transfer.
// No bytes move; it exists to eyeball ETA, percentage, and bar fill
// against a multi-gigabyte file without needing one.
package simulate

import (
	"time"

	"github.com/vcat-tools/vcat/internal/progress"
)

// Defaults for the synthetic transfer: a ~5 GB file advancing at a rate
// that keeps the bar on screen for around ten seconds.
const (
	DefaultName = "/some/example/filename.xyz"
	DefaultSize = 5_000_000_000
	DefaultStep = 456_789_012
)

// DefaultInterval is the pause between synthetic ticks.
const DefaultInterval = time.Second

// Options configures a simulated transfer. Zero fields fall back to the
// defaults above. Sleep is injectable so tests run instantly.
type Options struct {
	Name     string
	Size     int64
	Step     int64
	Interval time.Duration
	Sleep    func(time.Duration)
}

// Run renders a complete synthetic transfer. It always succeeds.
func Run(r *progress.Renderer, opts Options) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}

	t := progress.NewTransfer(opts.Name, opts.Size)
	r.Start(t)
	var pos int64
	for pos < opts.Size {
		opts.Sleep(opts.Interval)
		pos += opts.Step
		r.Render(t, pos)
	}
	r.Finish()
}
