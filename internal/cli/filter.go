package cli

import (
	"io"

	"github.com/leeovery/fivewords/internal/filter"
	"github.com/leeovery/fivewords/internal/storage"
)

// Filter reduces words.txt to 5words.txt, logging duplicate-letter and
// already-seen rejections to stdout. Returns the exit code (0 for success,
// 1 for error).
func (a *App) Filter() int {
	return a.exit(a.runFilter())
}

func (a *App) runFilter() error {
	lines, err := storage.ReadLines(a.path(InputFile))
	if err != nil {
		return err
	}

	pipeline := filter.NewPipeline(filter.NewReporter(a.stdout))
	return a.writeLocked(a.path(FilteredFile), func(w io.Writer) error {
		_, err := pipeline.Run(lines, w)
		return err
	})
}
