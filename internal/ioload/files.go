package ioload

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
)

type inputFile struct {
	path string
	data []byte
}

// globInput returns files matching the pattern inside dir, sorted by name.
func globInput(dir, pattern string) ([]string, error) {
	res, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	slices.Sort(res)
	return res, nil
}

// readInput reads files concurrently, keeping their order.
func readInput(
	ctx context.Context,
	paths []string,
	jobs int,
) ([]inputFile, error) {
	res := make([]inputFile, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return ReadInputError(path, err)
			}
			res[i] = inputFile{path: path, data: data}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// decodeInput decodes JSON arrays of every file concurrently and joins
// them in file order.
func decodeInput[T any](
	ctx context.Context,
	files []inputFile,
	jobs int,
) ([]T, error) {
	parts := make([][]T, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var recs []T
			enc := gnfmt.GNjson{}
			if err := enc.Decode(f.data, &recs); err != nil {
				return DecodeError(f.path, err)
			}
			parts[i] = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(parts...), nil
}

// fingerprint is a UUID v5 of file names and contents. The same input
// produces the same fingerprint regardless of the input directory.
func fingerprint(files []inputFile) string {
	var sb strings.Builder
	for _, f := range files {
		sb.WriteString(filepath.Base(f.path))
		sb.WriteByte(0)
		sb.Write(f.data)
		sb.WriteByte(0)
	}
	return gnuuid.New(sb.String()).String()
}
