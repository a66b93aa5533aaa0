package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Load.Strict, Load.SkipUnchanged).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	db := c.Database
	for _, v := range []struct {
		val string
		opt func(string) Option
	}{
		{db.Kind, OptDatabaseKind},
		{db.Host, OptDatabaseHost},
		{db.User, OptDatabaseUser},
		{db.Password, OptDatabasePassword},
		{db.Database, OptDatabaseDatabase},
		{db.SSLMode, OptDatabaseSSLMode},
		{db.Path, OptDatabasePath},
		{c.Load.InputDir, OptLoadInputDir},
		{c.Load.TradePattern, OptLoadTradePattern},
		{c.Load.EconomyFile, OptLoadEconomyFile},
		{c.Load.RerunPolicy, OptLoadRerunPolicy},
		{c.Extract.OutputPath, OptExtractOutputPath},
	} {
		if v.val != "" {
			res = append(res, v.opt(v.val))
		}
	}

	i = db.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	i = db.BatchSize
	if i > 0 {
		res = append(res, OptDatabaseBatchSize(i))
	}

	ex := c.Extract
	for _, v := range []struct {
		val int
		opt func(int) Option
	}{
		{ex.SampleSize, OptExtractSampleSize},
		{ex.TopPartners, OptExtractTopPartners},
		{ex.TopCommodities, OptExtractTopCommodities},
		{ex.TreemapSize, OptExtractTreemapSize},
	} {
		if v.val > 0 {
			res = append(res, v.opt(v.val))
		}
	}
	res = append(res, OptExtractPretty(ex.Pretty))

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.Kind": {"postgres": s, "sqlite": s},
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Load.RerunPolicy": {"replace": s, "append": s},
		"Log.Level":        {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":       {"json": s, "text": s, "tint": s},
		"Log.Destination":  {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
