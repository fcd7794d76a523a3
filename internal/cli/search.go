package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/leeovery/fivewords/internal/doctor"
	"github.com/leeovery/fivewords/internal/search"
	"github.com/leeovery/fivewords/internal/storage"
)

// Search finds sets of five letter-disjoint words in 5words.txt and writes
// them to result.txt. Found sets are also printed to stdout and progress to
// stderr. Returns the exit code (0 for success, 1 for error).
func (a *App) Search(ctx context.Context) int {
	return a.exit(a.runSearch(ctx))
}

func (a *App) runSearch(ctx context.Context) error {
	inputPath := a.path(FilteredFile)
	lines, err := a.scanLocked(inputPath)
	if err != nil {
		return err
	}

	report := doctor.NewWordListRunner().RunAll(doctor.WithWordLines(ctx, lines), inputPath)
	if report.HasIssues() {
		doctor.FormatReport(a.stderr, report)
	}
	if report.HasErrors() {
		return fmt.Errorf("%s failed %d check(s)", FilteredFile, report.ErrorCount())
	}

	var res search.Result
	err = a.writeLocked(a.path(ResultFile), func(w io.Writer) error {
		opts := []search.Option{
			search.WithEcho(a.stdout),
			search.WithProgress(a.stderr),
		}
		if a.feedbackEvery > 0 {
			opts = append(opts, search.WithFeedbackEvery(a.feedbackEvery))
		}
		s, err := search.New(doctor.Words(lines), w, opts...)
		if err != nil {
			return err
		}
		res, err = s.Run(ctx)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Checked %s combinations\n", humanize.Comma(res.Checked))
	fmt.Fprintf(a.stdout, "Time taken: %ss\n", strconv.FormatFloat(res.Elapsed.Seconds(), 'f', -1, 64))
	return nil
}

// scanLocked reads the word list under a shared lock, so a concurrent filter
// run cannot replace it mid-read.
func (a *App) scanLocked(path string) ([]doctor.WordLine, error) {
	unlock, err := storage.RLock(path, a.lockTimeout)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return doctor.ScanWordLines(path)
}
