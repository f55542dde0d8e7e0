// Package copier implements the streaming copy loop.
package copier

import (
	"fmt"
	"io"
)

const (
	// DefaultBlockSize is the per-read block. Large enough to keep
	// system-call overhead down, small enough that flaky network
	// filesystems (CIFS is the known offender) do not stall reading
	// the tail of large files a megabyte at a time.
	DefaultBlockSize = 64 * 1024

	// DefaultRenderEvery throttles progress callbacks to one per MiB
	// of transferred data, decoupling redraw rate from block size.
	DefaultRenderEvery = 1 << 20
)

// ProgressFunc receives the cumulative byte count each time the copy
// crosses a reporting threshold.
type ProgressFunc func(pos int64)

// Copy streams src to dst in blockSize blocks, invoking progress once
// per `every` bytes of cumulative transfer. It returns the number of
// bytes written to dst and the first read or write error. A write that
// consumes less than the block it was given terminates the copy: the
// destination is broken (full disk, closed pipe) and retrying would
// only duplicate data.
//
// Copy does not report the final position; the caller renders the last
// frame so it fires exactly once, error or not.
func Copy(src io.Reader, dst io.Writer, blockSize int, every int64, progress ProgressFunc) (int64, error) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if every <= 0 {
		every = DefaultRenderEvery
	}
	if progress == nil {
		progress = func(int64) {}
	}

	buf := make([]byte, blockSize)
	var pos int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			wn, werr := dst.Write(buf[:n])
			pos += int64(wn)
			if werr != nil {
				return pos, fmt.Errorf("write: %w", werr)
			}
			if wn < n {
				return pos, fmt.Errorf("write: %w", io.ErrShortWrite)
			}
			if pos/every > (pos-int64(n))/every {
				progress(pos)
			}
		}
		if rerr == io.EOF {
			return pos, nil
		}
		if rerr != nil {
			return pos, fmt.Errorf("read: %w", rerr)
		}
	}
}
