// Package ioextract implements Extractor interface. It reads trade facts
// joined with their dimensions and writes the precomputed dashboard
// document.
package ioextract

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/egytrade/tradedb/internal/ioregions"
	"github.com/egytrade/tradedb/pkg/config"
	"github.com/egytrade/tradedb/pkg/dashboard"
	"github.com/egytrade/tradedb/pkg/db"
	"github.com/egytrade/tradedb/pkg/lifecycle"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

type extractor struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Extractor.
func New(cfg *config.Config, op db.Operator) lifecycle.Extractor {
	return &extractor{cfg: cfg, operator: op}
}

func (e *extractor) Extract(ctx context.Context) (*dashboard.Dashboard, error) {
	start := time.Now()
	slog.Info("Starting extraction", "output", e.cfg.Extract.OutputPath)

	rows, err := e.operator.TradeRows(ctx)
	if err != nil {
		return nil, ReadError(err)
	}
	slog.Info("Read trade facts", "count", humanize.Comma(int64(len(rows))))

	regions, err := ioregions.Load(e.cfg)
	if err != nil {
		return nil, err
	}

	res, anomalies := dashboard.Build(rows, regions, e.options())
	if anomalies.Total() > 0 {
		slog.Warn("Data anomalies in trade facts",
			"anomalies", anomalies.String())
		gn.Warn("Data anomalies: %s", anomalies.String())
	}

	enc := gnfmt.GNjson{Pretty: e.cfg.Extract.Pretty}
	data, err := enc.Encode(res)
	if err != nil {
		return nil, EncodeError(err)
	}

	path := e.cfg.Extract.OutputPath
	if err = writeFile(path, data); err != nil {
		return nil, WriteError(path, err)
	}

	dur := time.Since(start)
	slog.Info("Extraction finished",
		"output", path,
		"years", len(res.YearlyData),
		"bytes", len(data),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(
		"Wrote dashboard of <em>%d</em> years (%s) to <em>%s</em>",
		len(res.YearlyData), humanize.Bytes(uint64(len(data))), path,
	)
	return res, nil
}

func (e *extractor) options() dashboard.Options {
	ext := e.cfg.Extract
	return dashboard.Options{
		SampleSize:     ext.SampleSize,
		TopPartners:    ext.TopPartners,
		TopCommodities: ext.TopCommodities,
		TreemapSize:    ext.TreemapSize,
	}
}

// writeFile replaces path with data in one rename, a reader never sees
// a partially written document.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
