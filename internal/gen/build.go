// Package gen renders CIE 1931 lightness tables as Go source at build time.
//
// It backs the cie1931gen command: a Config lists the tables, Build compiles
// and renders them concurrently, and Write or Check reconcile the results
// with the files on disk.
package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/on-the-ground/cie1931/lut"

	"github.com/dustin/go-humanize"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrStale = errors.New("generated file is out of date")

// Result is one rendered table.
type Result struct {
	Spec   TableSpec
	Params lut.Params
	Source []byte
	Digest uint64
}

// Build compiles and renders every table in cfg using up to cfg.Workers
// goroutines. Results are returned in config order.
func Build(ctx context.Context, cfg Config, logger *zap.Logger) ([]Result, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(cfg.Tables))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, spec := range cfg.Tables {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := build(cfg.Package, spec, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func build(pkg string, spec TableSpec, logger *zap.Logger) (Result, error) {
	start := time.Now()

	p, err := spec.Params()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", spec.Name, err)
	}
	data, err := lut.Compile(p)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", spec.Name, err)
	}
	src, err := Render(pkg, Table{Name: spec.Name, Params: p, Data: data})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", spec.Name, err)
	}

	span := timespan.BetweenTimes(start, time.Now())
	res := Result{Spec: spec, Params: p, Source: src, Digest: lut.Digest(data)}
	logger.Info("generated table",
		zap.String("name", spec.Name),
		zap.Stringer("params", p),
		zap.String("size", humanize.Bytes(uint64(p.ByteLen()))),
		zap.String("digest", fmt.Sprintf("%016x", res.Digest)),
		zap.Stringer("id", p.ID()),
		zap.Duration("elapsed", span.Duration()),
	)
	return res, nil
}

// Write stores each result under dir, skipping files whose contents are already current.
func Write(dir string, results []Result, logger *zap.Logger) error {
	for _, res := range results {
		path := filepath.Join(dir, res.Spec.Output)
		current, err := os.ReadFile(path)
		if err == nil && bytes.Equal(current, res.Source) {
			logger.Debug("table unchanged", zap.String("path", path))
			continue
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := os.WriteFile(path, res.Source, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("wrote table", zap.String("path", path), zap.String("size", humanize.Bytes(uint64(len(res.Source)))))
	}
	return nil
}

// Check compares each result with the file under dir and returns ErrStale
// naming every file that is missing or differs.
func Check(dir string, results []Result, logger *zap.Logger) error {
	var stale []string
	for _, res := range results {
		path := filepath.Join(dir, res.Spec.Output)
		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if !bytes.Equal(current, res.Source) {
			logger.Warn("stale table", zap.String("path", path), zap.String("name", res.Spec.Name))
			stale = append(stale, path)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %v", ErrStale, stale)
	}
	return nil
}
