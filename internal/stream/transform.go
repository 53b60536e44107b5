package stream

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/trfilter/internal/charset"
	"github.com/specialistvlad/trfilter/internal/ctxlog"
)

// DefaultBufferSize is the read chunk size used when none is configured.
const DefaultBufferSize = 64 * 1024

// Stats counts the bytes a transform consumed and produced.
type Stats struct {
	BytesIn  int64
	BytesOut int64
}

// Options tunes a transform.
type Options struct {
	BufferSize int
}

func (o Options) bufferSize() int {
	if o.BufferSize < 1 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

// Translate copies r to w, substituting every byte through m.
func Translate(ctx context.Context, r io.Reader, w io.Writer, m *charset.Mapping, opts Options) (Stats, error) {
	ctxlog.FromContext(ctx).Debug("Translate started.", "source_len", m.Len(), "buffer_size", opts.bufferSize())
	return pump(ctx, r, w, opts.bufferSize(), func(p []byte) []byte {
		m.Apply(p)
		return p
	})
}

// Delete copies r to w, dropping every byte contained in set.
func Delete(ctx context.Context, r io.Reader, w io.Writer, set *charset.Membership, opts Options) (Stats, error) {
	ctxlog.FromContext(ctx).Debug("Delete started.", "set_len", set.Len(), "buffer_size", opts.bufferSize())
	return pump(ctx, r, w, opts.bufferSize(), set.Filter)
}

// pump reads r chunk by chunk until EOF, passes each chunk through fn and
// writes the result to w.
func pump(ctx context.Context, r io.Reader, w io.Writer, size int, fn func([]byte) []byte) (Stats, error) {
	var stats Stats
	buf := make([]byte, size)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		n, readErr := r.Read(buf)
		if n > 0 {
			stats.BytesIn += int64(n)
			out := fn(buf[:n])
			if len(out) > 0 {
				written, err := w.Write(out)
				stats.BytesOut += int64(written)
				if err != nil {
					return stats, fmt.Errorf("failed to write output: %w", err)
				}
				if written != len(out) {
					return stats, fmt.Errorf("failed to write output: %w", io.ErrShortWrite)
				}
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return stats, nil
			}
			return stats, fmt.Errorf("failed to read input: %w", readErr)
		}
	}
}
