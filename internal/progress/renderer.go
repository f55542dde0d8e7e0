// Package progress renders the single-line transfer progress bar.
//
// One frame is a line of exactly the terminal's width: a leading space,
// the (possibly shortened) source name, padding, and a right-aligned
// "[ETA mm:ss] ppp%" trailer. The line is drawn in bright white on a
// green background up to the cross-over column, blue from there on, and
// ends with a carriage return so the next frame overwrites it in place.
package progress

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vcat-tools/vcat/internal/term"
)

// etaCeiling is the largest remaining-time estimate (in seconds) worth
// displaying. Anything at or above it shows the 99:99 sentinel.
const etaCeiling = 6000

// Transfer describes one active source: what to call it on screen, how
// many bytes to expect (0 when unknown, e.g. piped stdin), and when the
// copy started. It is passed into every render call so the renderer
// itself holds no per-transfer state.
type Transfer struct {
	Name    string
	Size    int64
	Started time.Time
}

// NewTransfer starts the clock for a source.
func NewTransfer(name string, size int64) Transfer {
	return Transfer{Name: name, Size: size, Started: time.Now()}
}

// WidthFunc reports the current terminal width. It is queried before
// every frame so the bar tracks live window resizes; an error means
// "skip this frame", not "abort the transfer".
type WidthFunc func() (int, error)

// Renderer draws progress frames to a terminal stream.
type Renderer struct {
	out       io.Writer
	ctrl      term.Control
	width     WidthFunc
	now       func() time.Time
	lastWidth int
}

// NewRenderer returns a renderer writing to out using the given control
// backend and geometry query.
func NewRenderer(out io.Writer, ctrl term.Control, width WidthFunc) *Renderer {
	return &Renderer{out: out, ctrl: ctrl, width: width, now: time.Now}
}

// StderrWidth is the usual WidthFunc for a renderer on standard error.
func StderrWidth(fd int) WidthFunc {
	return func() (int, error) { return term.Width(fd) }
}

// Start renders the initial zero-position frame, giving visual feedback
// before the first block is read.
func (r *Renderer) Start(t Transfer) {
	r.Render(t, 0)
}

// Render draws one frame for the transfer at the given position. A
// failed or out-of-range geometry query skips the frame silently; the
// next call re-queries. When the width changed since the previous
// frame, the screen is cleared from the cursor down first so remnants
// of a wider line do not linger.
func (r *Renderer) Render(t Transfer, pos int64) {
	w, err := r.width()
	if err != nil {
		return
	}

	var b bytes.Buffer
	if r.lastWidth != 0 && w != r.lastWidth {
		b.WriteString(r.ctrl.ClearToEnd())
	}
	r.lastWidth = w

	min, sec := eta(r.now().Sub(t.Started), pos, t.Size)
	line := layout(t.Name, w, min, sec, percent(pos, t.Size))

	x := crossOver(w, pos, t.Size)
	b.WriteString(r.ctrl.BarColors())
	for i, c := range line {
		if i == x {
			b.WriteString(r.ctrl.DoneBackground())
		}
		if c == 0 {
			c = ' '
		}
		b.WriteByte(c)
	}
	b.WriteByte('\r')
	b.WriteString(r.ctrl.Reset())

	// One Write per frame; stderr is unbuffered so the frame is
	// visible immediately.
	_, _ = r.out.Write(b.Bytes())
}

// Finish terminates the progress line so subsequent output starts on a
// fresh line. Called on success and failure alike.
func (r *Renderer) Finish() {
	fmt.Fprintln(r.out)
}

// percent computes completion as a truncated percentage. An unknown
// size (0) always reads as complete, as does any position at or past
// the end.
func percent(pos, size int64) int {
	if size > 0 && pos < size {
		return int(100 * pos / size)
	}
	return 100
}

// eta estimates remaining minutes and seconds by linear extrapolation
// from the observed throughput, biased up by one second so the display
// does not flicker to zero early. Returns 00:00 once the transfer is
// complete and the 99:99 sentinel when no estimate is possible or the
// estimate is too large to be useful.
func eta(elapsed time.Duration, pos, size int64) (min, sec int) {
	if pos >= size {
		return 0, 0
	}
	if pos <= 0 {
		return 99, 99
	}
	remaining := int64(elapsed/time.Second)*(size-pos)/pos + 1
	if remaining >= etaCeiling {
		return 99, 99
	}
	return int(remaining / 60), int(remaining % 60)
}

// crossOver is the column where the bar switches background color. An
// unknown size pins it past the end of the line, so such transfers are
// drawn entirely in the leading color.
func crossOver(width int, pos, size int64) int {
	if size > 0 {
		return int(int64(width) * pos / size)
	}
	return width
}

// layout fills a width-sized cell buffer: " name ... [ETA mm:ss] ppp%".
// Unwritten cells stay zero and render as blanks. The trailer is
// right-aligned and wins over the name when space is short; when even
// the trailer does not fit, its left portion is kept.
func layout(name string, width, min, sec, pct int) []byte {
	buf := make([]byte, width)

	trailer := fmt.Sprintf("[ETA %02d:%02d] %3d%%", min, sec, pct)
	ts := len(trailer)
	if ts > width {
		ts = width
	}

	if space := width - ts - 2; space > 0 {
		copy(buf[1:], fitName(name, space))
	}
	copy(buf[width-ts:], trailer[:ts])
	return buf
}

// fitName shortens name to at most max bytes by stripping whole leading
// path segments; if the final segment alone is still too long it is cut
// hard. A non-positive max yields an empty name.
func fitName(name string, max int) string {
	if max <= 0 {
		return ""
	}
	for len(name) > max {
		i := strings.IndexByte(name, '/')
		if i < 0 {
			break
		}
		name = name[i+1:]
	}
	if len(name) > max {
		name = name[:max]
	}
	return name
}
