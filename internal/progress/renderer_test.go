package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vcat-tools/vcat/internal/term"
)

func fixedWidth(w int) WidthFunc {
	return func() (int, error) { return w, nil }
}

func failingWidth() WidthFunc {
	return func() (int, error) { return 0, errors.New("inappropriate ioctl for device") }
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		pos  int64
		size int64
		want int
	}{
		{"Start", 0, 100, 0},
		{"Half", 50, 100, 50},
		{"Complete", 100, 100, 100},
		{"PastEnd", 150, 100, 100},
		{"Truncates", 1, 3, 33},
		{"AlmostDone", 999, 1000, 99},
		{"UnknownSize", 0, 0, 100},
		{"UnknownSizeWithProgress", 5, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percent(tt.pos, tt.size); got != tt.want {
				t.Errorf("percent(%d, %d) = %d, want %d", tt.pos, tt.size, got, tt.want)
			}
		})
	}
}

func TestETA(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		pos     int64
		size    int64
		wantMin int
		wantSec int
	}{
		{"Complete", 10 * time.Second, 100, 100, 0, 0},
		{"PastEnd", 10 * time.Second, 150, 100, 0, 0},
		{"ZeroSizeComplete", 0, 0, 0, 0, 0},
		{"NoProgressYet", 10 * time.Second, 0, 100, 99, 99},
		{"LinearExtrapolation", 10 * time.Second, 50, 100, 0, 11}, // 10*50/50+1
		{"SplitsMinutes", 120 * time.Second, 50, 100, 2, 1},       // 120*50/50+1 = 121s
		{"HugeEstimate", 100 * time.Second, 1, 1000, 99, 99},
		{"AtCeiling", 5999 * time.Second, 1, 2, 99, 99},   // 5999+1 = 6000
		{"JustBelowCeiling", 5998 * time.Second, 1, 2, 99, 59}, // 5998+1 = 5999
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, sec := eta(tt.elapsed, tt.pos, tt.size)
			if min != tt.wantMin || sec != tt.wantSec {
				t.Errorf("eta(%v, %d, %d) = %02d:%02d, want %02d:%02d",
					tt.elapsed, tt.pos, tt.size, min, sec, tt.wantMin, tt.wantSec)
			}
		})
	}
}

func TestCrossOver(t *testing.T) {
	tests := []struct {
		name  string
		width int
		pos   int64
		size  int64
		want  int
	}{
		{"Start", 80, 0, 100, 0},
		{"Half", 80, 50, 100, 40},
		{"Complete", 80, 100, 100, 80},
		{"Truncates", 10, 1, 3, 3},
		{"UnknownSize", 80, 0, 0, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := crossOver(tt.width, tt.pos, tt.size); got != tt.want {
				t.Errorf("crossOver(%d, %d, %d) = %d, want %d", tt.width, tt.pos, tt.size, got, tt.want)
			}
		})
	}
}

func TestFitName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"Fits", "file.txt", 20, "file.txt"},
		{"ExactFit", "file.txt", 8, "file.txt"},
		{"StripsLeadingSlash", "/file.txt", 8, "file.txt"},
		{"StripsOneSegment", "/var/log/syslog", 11, "log/syslog"},
		{"StripsAllSegments", "/very/long/path/name.txt", 8, "name.txt"},
		{"HardTruncatesFinalSegment", "/a/really-long-name.bin", 10, "really-lon"},
		{"NoSeparator", "really-long-name.bin", 10, "really-lon"},
		{"NoSpace", "file.txt", 0, ""},
		{"NegativeSpace", "file.txt", -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitName(tt.in, tt.max); got != tt.want {
				t.Errorf("fitName(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

// asText maps NUL cells to spaces the way the renderer does.
func asText(line []byte) string {
	out := make([]byte, len(line))
	for i, c := range line {
		if c == 0 {
			c = ' '
		}
		out[i] = c
	}
	return string(out)
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		width int
		min   int
		sec   int
		pct   int
		want  string
	}{
		{
			name: "NameAndTrailer",
			file: "file.txt", width: 30, min: 1, sec: 5, pct: 42,
			want: " file.txt     [ETA 01:05]  42%",
		},
		{
			name: "FullPercent",
			file: "a", width: 20, min: 0, sec: 0, pct: 100,
			want: " a  [ETA 00:00] 100%",
		},
		{
			name: "Sentinel",
			file: "a", width: 20, min: 99, sec: 99, pct: 0,
			want: " a  [ETA 99:99]   0%",
		},
		{
			name: "TrailerOnlyWhenNoRoom",
			file: "file.txt", width: 16, min: 0, sec: 30, pct: 7,
			want: "[ETA 00:30]   7%",
		},
		{
			name: "TrailerTruncatedToWidth",
			file: "file.txt", width: 10, min: 0, sec: 30, pct: 7,
			want: "[ETA 00:30",
		},
		{
			name: "SingleColumn",
			file: "file.txt", width: 1, min: 99, sec: 99, pct: 0,
			want: "[",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout(tt.file, tt.width, tt.min, tt.sec, tt.pct)
			if len(got) != tt.width {
				t.Fatalf("layout length = %d, want %d", len(got), tt.width)
			}
			if asText(got) != tt.want {
				t.Errorf("layout = %q, want %q", asText(got), tt.want)
			}
		})
	}
}

func TestLayoutLengthMatchesWidth(t *testing.T) {
	for _, w := range []int{1, 2, 15, 16, 17, 40, 80, 200, 9999} {
		got := layout("/some/path/file.txt", w, 12, 34, 56)
		if len(got) != w {
			t.Errorf("width %d: layout length = %d", w, len(got))
		}
	}
}

func TestRenderZeroSizeFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, term.ANSI{}, fixedWidth(20))

	r.Render(Transfer{Name: "a", Size: 0, Started: time.Now()}, 0)

	// Zero size reads as complete: 100%, ETA 00:00, cross-over pinned
	// past the end so the line never switches to blue.
	want := "\033[1;37;42m a  [ETA 00:00] 100%\r\033[0m"
	if got := buf.String(); got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestRenderCrossOverSplitsBackground(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, term.ANSI{}, fixedWidth(10))
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return started.Add(10 * time.Second) }

	r.Render(Transfer{Name: "a", Size: 100, Started: started}, 50)

	// Width 10 leaves room for the trailer's left half only; the
	// background switches at column 5.
	want := "\033[1;37;42m[ETA \033[44m00:11\r\033[0m"
	if got := buf.String(); got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestRenderSkipsWhenWidthUnavailable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, term.ANSI{}, failingWidth())

	r.Render(Transfer{Name: "a", Size: 100, Started: time.Now()}, 50)

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestRenderClearsOnResize(t *testing.T) {
	widths := []int{30, 30, 20}
	i := 0
	var buf bytes.Buffer
	r := NewRenderer(&buf, term.ANSI{}, func() (int, error) {
		w := widths[i]
		i++
		return w, nil
	})
	tr := Transfer{Name: "a", Size: 0, Started: time.Now()}

	r.Render(tr, 0)
	first := buf.String()
	if strings.Contains(first, "\033[0J") {
		t.Errorf("first frame should not clear the screen: %q", first)
	}

	buf.Reset()
	r.Render(tr, 0)
	if strings.Contains(buf.String(), "\033[0J") {
		t.Errorf("unchanged width should not clear the screen: %q", buf.String())
	}

	buf.Reset()
	r.Render(tr, 0)
	if !strings.HasPrefix(buf.String(), "\033[0J") {
		t.Errorf("resize should clear before redrawing: %q", buf.String())
	}
}

func TestRenderIdempotent(t *testing.T) {
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := started.Add(3 * time.Second)
	tr := Transfer{Name: "/some/file", Size: 1000, Started: started}

	var first, second bytes.Buffer
	r := NewRenderer(&first, term.ANSI{}, fixedWidth(40))
	r.now = func() time.Time { return now }
	r.Render(tr, 400)

	r.out = &second
	r.Render(tr, 400)

	if first.String() != second.String() {
		t.Errorf("same inputs rendered differently:\n%q\n%q", first.String(), second.String())
	}
}

func TestStartAndFinish(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, term.Plain{}, fixedWidth(25))

	tr := Transfer{Name: "f", Size: 100, Started: time.Now()}
	r.Start(tr)
	if !strings.Contains(buf.String(), "[ETA 99:99]   0%") {
		t.Errorf("initial frame should show zero progress: %q", buf.String())
	}

	buf.Reset()
	r.Finish()
	if buf.String() != "\n" {
		t.Errorf("Finish wrote %q, want newline", buf.String())
	}
}

func TestNewTransferStartsClock(t *testing.T) {
	before := time.Now()
	tr := NewTransfer("f", 42)
	after := time.Now()

	if tr.Name != "f" || tr.Size != 42 {
		t.Errorf("unexpected transfer: %+v", tr)
	}
	if tr.Started.Before(before) || tr.Started.After(after) {
		t.Errorf("Started = %v, want between %v and %v", tr.Started, before, after)
	}
}
