package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/trfilter/internal/charset"
	"github.com/specialistvlad/trfilter/internal/ctxlog"
	"github.com/specialistvlad/trfilter/internal/stream"
)

// Run compiles the sets named by cfg and streams in to out through the
// selected transform. No input is read if a set fails to compile.
func (a *App) Run(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", cfg.Mode, "truncate", cfg.Truncate)

	var transform func(context.Context, io.Reader, io.Writer) (stream.Stats, error)
	switch cfg.Mode {
	case ModeTranslate:
		mapping, err := buildMapping(ctx, cfg.Set1, cfg.Set2, cfg.Truncate)
		if err != nil {
			return err
		}
		transform = func(ctx context.Context, r io.Reader, w io.Writer) (stream.Stats, error) {
			return stream.Translate(ctx, r, w, mapping, stream.Options{BufferSize: a.bufferSize})
		}
	case ModeDelete:
		set, err := parseSet(cfg.Set1)
		if err != nil {
			return err
		}
		membership := charset.NewMembership(set)
		a.logger.Debug("Deletion set compiled.", "set_len", len(set), "distinct", membership.Len())
		transform = func(ctx context.Context, r io.Reader, w io.Writer) (stream.Stats, error) {
			return stream.Delete(ctx, r, w, membership, stream.Options{BufferSize: a.bufferSize})
		}
	default:
		return fmt.Errorf("unknown mode %d", cfg.Mode)
	}

	r, err := stream.NewReader(in, a.inputComp)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close input: %w", cerr))
		}
	}()

	w, err := stream.NewWriter(out, a.outputComp)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to flush output: %w", cerr))
		}
	}()

	stats, err := transform(ctx, r, w)
	if err != nil {
		return fmt.Errorf("%s failed: %w", cfg.Mode, err)
	}
	a.logger.Debug("App.Run method finished.", "bytes_in", stats.BytesIn, "bytes_out", stats.BytesOut)
	return nil
}

// buildMapping compiles the source and target arguments into a Mapping.
func buildMapping(ctx context.Context, source, target string, truncate bool) (*charset.Mapping, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := parseSet(source)
	if err != nil {
		return nil, err
	}
	dst, err := parseSet(target)
	if err != nil {
		return nil, err
	}
	logger.Debug("Sets expanded.", "source_len", len(src), "target_len", len(dst))

	src, dst, err = charset.Reconcile(src, dst, truncate)
	if err != nil {
		return nil, fmt.Errorf("cannot translate %q to %q: %w", source, target, err)
	}
	logger.Debug("Sets reconciled.", "source_len", len(src), "target_len", len(dst))

	return charset.NewMapping(src, dst), nil
}

func parseSet(arg string) ([]byte, error) {
	set, err := charset.Parse(arg)
	if err != nil {
		return nil, fmt.Errorf("%w in %q", err, arg)
	}
	return set, nil
}
