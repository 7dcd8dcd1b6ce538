package extract

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/dtnitsch/metasift/pkg/headmeta"
	"github.com/dtnitsch/metasift/pkg/manifest"
	"github.com/dtnitsch/metasift/pkg/mapreduce"
	"github.com/dtnitsch/metasift/pkg/storage"
)

// Error types recorded in the run manifest.
const (
	ErrorTypeRead      = "read_error"
	ErrorTypeEncoding  = "invalid_utf8"
	ErrorTypeCancelled = "cancelled"
)

var errInvalidUTF8 = errors.New("input is not valid UTF-8 text")

// Job defines a task for a worker to perform.
type Job struct {
	Index  int
	Source string
}

type jobResult struct {
	index int
	manifest.InputResult
}

// run extracts every input with workerCount workers and returns the
// results in input order.
func run(ctx context.Context, logger *slog.Logger, s *storage.Storage, inputs []string, workerCount int) []manifest.InputResult {
	logger.Info("Starting extraction", "input_count", len(inputs), "workers", workerCount)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(inputs))
	results := make(chan jobResult, len(inputs))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, s, &wg, jobs, results)
	}

	for i, source := range inputs {
		jobs <- Job{Index: i, Source: source}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All extraction workers finished")

	ordered := make([]manifest.InputResult, len(inputs))
	for r := range results {
		ordered[r.index] = r.InputResult
	}
	return ordered
}

// worker processes jobs from the jobs channel and sends results to the
// results channel. Once ctx is done the remaining jobs are marked cancelled.
func worker(ctx context.Context, id int, logger *slog.Logger, s *storage.Storage, wg *sync.WaitGroup, jobs <-chan Job, results chan<- jobResult) {
	defer wg.Done()
	for job := range jobs {
		result := jobResult{index: job.Index, InputResult: manifest.InputResult{Source: job.Source}}

		if err := ctx.Err(); err != nil {
			result.Error = err
			result.ErrorType = ErrorTypeCancelled
			results <- result
			continue
		}

		logger.Debug("Worker started job", "worker_id", id, "source", job.Source)

		data, err := s.ReadFile(job.Source)
		if err != nil {
			logger.Error("Error reading input", "worker_id", id, "source", job.Source, "error", err)
			result.Error = err
			result.ErrorType = ErrorTypeRead
			results <- result
			continue
		}
		result.SizeBytes = int64(len(data))
		if job.Source != storage.Stdin {
			if stats, err := s.GetFileStats(job.Source); err == nil {
				result.SizeBytes = stats.SizeBytes
			}
		}

		md := headmeta.ExtractBytes(data)
		if md.IsEmpty() && !utf8.Valid(data) {
			logger.Error("Error decoding input", "worker_id", id, "source", job.Source, "error", errInvalidUTF8)
			result.Error = errInvalidUTF8
			result.ErrorType = ErrorTypeEncoding
			results <- result
			continue
		}

		result.Metadata = md
		result.KeywordCounts = mapreduce.Map(md)
		results <- result

		logger.Debug("Worker finished job", "worker_id", id, "source", job.Source)
	}
}
