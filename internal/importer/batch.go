package importer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/saveup-dev/saveup/internal/model"
)

// maxParallelParses bounds how many statements are read at once.
const maxParallelParses = 4

// FileParse is the outcome of parsing one file in a batch.
type FileParse struct {
	Path         string
	Transactions []model.ParsedTransaction
	Err          error
}

// ParseFiles parses paths concurrently and returns one FileParse per path in
// the same order. A failing file does not stop the others; its error is kept
// on its FileParse. The returned error is non-nil only when ctx ends first.
func (im *Importer) ParseFiles(ctx context.Context, paths []string, format string) ([]FileParse, error) {
	results := make([]FileParse, len(paths))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelParses)
	for i, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			parsed, err := im.ParseFile(path, format)
			results[i] = FileParse{Path: path, Transactions: parsed, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
