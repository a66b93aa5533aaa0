// Package ioload implements Loader interface for the trade and economy
// feeds. A load reads JSON extracts, resolves dimension keys and inserts
// facts inside a single transaction.
package ioload

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/egytrade/tradedb/pkg/config"
	"github.com/egytrade/tradedb/pkg/db"
	"github.com/egytrade/tradedb/pkg/lifecycle"
	"github.com/egytrade/tradedb/pkg/star"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

const (
	FeedTrade   = "trade"
	FeedEconomy = "economy"
)

// Feeds lists feeds in the order they are loaded by "load all".
var Feeds = []string{FeedEconomy, FeedTrade}

type buildFunc func(
	ctx context.Context,
	files []inputFile,
	jobs int,
) (*batch, int, error)

// loader implements the Loader interface.
type loader struct {
	feed     string
	pattern  string
	build    buildFunc
	cfg      *config.Config
	operator db.Operator
}

// New creates a Loader of the named feed.
func New(
	feed string,
	cfg *config.Config,
	op db.Operator,
) (lifecycle.Loader, error) {
	switch feed {
	case FeedTrade:
		return NewTrade(cfg, op), nil
	case FeedEconomy:
		return NewEconomy(cfg, op), nil
	}
	return nil, UnknownFeedError(feed)
}

// NewTrade creates a Loader of UN Comtrade extracts.
func NewTrade(cfg *config.Config, op db.Operator) lifecycle.Loader {
	return &loader{
		feed:     FeedTrade,
		pattern:  cfg.Load.TradePattern,
		build:    buildTrade,
		cfg:      cfg,
		operator: op,
	}
}

// NewEconomy creates a Loader of the World Bank indicators extract.
func NewEconomy(cfg *config.Config, op db.Operator) lifecycle.Loader {
	return &loader{
		feed:     FeedEconomy,
		pattern:  cfg.Load.EconomyFile,
		build:    buildEconomy,
		cfg:      cfg,
		operator: op,
	}
}

func (l *loader) Feed() string {
	return l.feed
}

// Load runs one unit of work and records it in etl_runs. The record is
// written after the transaction ends, on success and on failure alike.
func (l *loader) Load(ctx context.Context) (star.LoadRun, error) {
	run := star.LoadRun{
		ID:        uuid.NewString(),
		Feed:      l.feed,
		Status:    star.RunSuccess,
		Anomalies: star.Anomalies{},
		StartedAt: time.Now().UTC(),
	}
	slog.Info("Starting load", "feed", l.feed, "run_id", run.ID)

	skipped, err := l.load(ctx, &run)
	switch {
	case err != nil:
		run.Status = star.RunFailed
		run.Error = err.Error()
		run.FactsInserted = 0
		run.FactsReplaced = 0
	case skipped:
		run.Status = star.RunSkipped
	}
	run.FinishedAt = time.Now().UTC()

	if logErr := l.operator.RecordRun(
		context.WithoutCancel(ctx), run,
	); logErr != nil {
		if err != nil {
			slog.Error("Cannot record failed run",
				"feed", l.feed, "error", logErr)
			return run, err
		}
		return run, RunLogError(l.feed, logErr)
	}

	if err == nil {
		l.report(run)
	}
	return run, err
}

func (l *loader) load(ctx context.Context, run *star.LoadRun) (bool, error) {
	paths, err := globInput(l.cfg.Load.InputDir, l.pattern)
	if err != nil {
		return false, InputPatternError(l.feed, l.pattern, err)
	}
	if len(paths) == 0 {
		return false, NoInputError(l.feed, l.pattern)
	}
	slog.Info("Found input files", "feed", l.feed, "files", len(paths))

	files, err := readInput(ctx, paths, l.cfg.JobsNumber)
	if err != nil {
		return false, err
	}
	run.Fingerprint = fingerprint(files)

	if l.cfg.Load.SkipUnchanged {
		last, err := l.operator.LastRun(ctx, l.feed, star.RunSuccess)
		if err != nil {
			return false, err
		}
		if last != nil && last.Fingerprint == run.Fingerprint {
			slog.Info("Input is unchanged, skipping",
				"feed", l.feed,
				"fingerprint", run.Fingerprint,
				"last_run", last.ID,
			)
			return true, nil
		}
	}

	b, rowsRead, err := l.build(ctx, files, l.cfg.JobsNumber)
	if err != nil {
		return false, err
	}
	run.RowsRead = rowsRead
	run.Anomalies = b.anomalies

	return false, l.write(ctx, run, b)
}

// write is the transactional part of a load. Any error rolls back
// dimension and fact rows of the batch.
func (l *loader) write(
	ctx context.Context,
	run *star.LoadRun,
	b *batch,
) error {
	tx, err := l.operator.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	keys, err := resolve(ctx, tx, b)
	if err != nil {
		return err
	}

	proj := b.project(keys)
	if proj.dropped > 0 {
		slog.Warn("Rows dropped",
			"feed", l.feed,
			"dropped", proj.dropped,
			"anomalies", b.anomalies.String(),
		)
	}
	if l.cfg.Load.Strict && b.anomalies.Dropping() > 0 {
		return StrictAnomalyError(l.feed, b.anomalies)
	}

	if l.cfg.Load.RerunPolicy == "append" {
		slog.Warn("Append policy, facts of reloaded periods are kept",
			"feed", l.feed, "periods", len(proj.periods))
	} else if len(proj.periods) > 0 {
		n, err := tx.DeleteFacts(ctx, b.fact, b.periodCols, proj.periods)
		if err != nil {
			return ReplaceError(b.fact.Table, err)
		}
		run.FactsReplaced = n
		slog.Info("Replaced facts of reloaded periods",
			"table", b.fact.Table,
			"periods", len(proj.periods),
			"deleted", n,
		)
	}

	n, err := l.insert(ctx, tx, b.fact, proj.rows)
	if err != nil {
		return err
	}
	run.FactsInserted = n

	if err = tx.Commit(ctx); err != nil {
		return CommitError(l.feed, err)
	}
	return nil
}

// insert sends fact rows in chunks of the configured batch size.
func (l *loader) insert(
	ctx context.Context,
	tx db.Tx,
	fact star.Fact,
	rows [][]any,
) (int64, error) {
	size := max(l.cfg.Database.BatchSize, 1)
	var total int64

	bar := newProgressBar(len(rows), fact.Table)
	defer bar.Finish()

	for i := 0; i < len(rows); i += size {
		end := min(i+size, len(rows))
		n, err := tx.InsertFacts(ctx, fact, rows[i:end])
		if err != nil {
			return 0, InsertError(fact.Table, err)
		}
		total += n
		bar.Add(end - i)
	}
	return total, nil
}

func (l *loader) report(run star.LoadRun) {
	dur := run.FinishedAt.Sub(run.StartedAt)
	slog.Info("Load finished",
		"feed", run.Feed,
		"status", run.Status,
		"rows_read", run.RowsRead,
		"facts_inserted", run.FactsInserted,
		"facts_replaced", run.FactsReplaced,
		"anomalies", run.Anomalies.Total(),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)

	if run.Status == star.RunSkipped {
		gn.Info("<em>%s</em> input is unchanged, nothing to load", run.Feed)
		return
	}
	gn.Info(
		"Loaded <em>%s</em> %s facts from %s rows in %s",
		humanize.Comma(run.FactsInserted),
		run.Feed,
		humanize.Comma(int64(run.RowsRead)),
		gnfmt.TimeString(dur.Seconds()),
	)
	if run.Anomalies.Total() > 0 {
		gn.Warn("Data anomalies: %s", run.Anomalies.String())
	}
}

func buildTrade(
	ctx context.Context,
	files []inputFile,
	jobs int,
) (*batch, int, error) {
	recs, err := decodeInput[star.TradeRecord](ctx, files, jobs)
	if err != nil {
		return nil, 0, err
	}
	return tradeBatch(recs), len(recs), nil
}

func buildEconomy(
	ctx context.Context,
	files []inputFile,
	jobs int,
) (*batch, int, error) {
	recs, err := decodeInput[star.EconomyRecord](ctx, files, jobs)
	if err != nil {
		return nil, 0, err
	}
	return economyBatch(recs), len(recs), nil
}
