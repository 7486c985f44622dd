// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package audit

import (
	"bufio"
	"os"
	"runtime"
	"sync"

	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
)

// Lines are handed to the workers in chunks to keep scheduling
// overhead low on large files.
const linesChunkLen = 4 * 1024

// Auditor scores every line of a candidate file, one password per
// line, fanning the work out over a bounded pool.
type Auditor struct {
	analyzer    *strength.Analyzer
	parallelism int
	stat        *status
	report      *Report
	linesPool   sync.Pool
}

func NewAuditor(analyzer *strength.Analyzer, parallelism int) *Auditor {
	return &Auditor{
		analyzer:    analyzer,
		parallelism: parallelism,
		linesPool: sync.Pool{New: func() interface{} {
			lines := make([]string, 0, linesChunkLen)
			return lines
		}},
	}
}

// Process audits the whole file. Rows carry the line number and the
// derived metrics; the password text itself is dropped as soon as it
// is scored.
func (a *Auditor) Process(in *os.File) (*Report, error) {
	s := util.Stats()
	defer s()

	var threads int
	if a.parallelism > 0 {
		threads = a.parallelism
	} else {
		// Scoring is CPU bound, so one worker per core is the sweet spot.
		threads = runtime.NumCPU()
	}

	// This is a bounded thread pool. I just didn't want to implement it myself...
	auditTasks, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * threads,
		NumWorkers:    threads,
	})
	if err != nil {
		return nil, err
	}
	defer auditTasks.Close()

	log.Debug().Msgf("auditing %s with %d threads", in.Name(), threads)

	a.report = NewReport()
	a.stat = newStatus(util.EstimateFileLines(in))
	a.stat.BeginProgress()

	lines := a.linesPool.Get().([]string)[:0]

	scanner := bufio.NewScanner(in)
	lineNo := 0
	firstLine := 1
	// Read first line
	willScan := scanner.Scan()
	for willScan {
		lineNo++
		lines = append(lines, scanner.Text())
		willScan = scanner.Scan()

		if len(lines) == linesChunkLen || !willScan {
			linesToProcess := lines
			start := firstLine
			if err = auditTasks.Publish(a.processChunk, linesToProcess, start); err != nil {
				log.Panic().Err(err).Msgf("there is a programming error here.")
			}

			firstLine = lineNo + 1
			// Clear slice
			lines = a.linesPool.Get().([]string)[:0]
		}
	}
	scanErr := scanner.Err()

	// Wait for all coroutines to finish
	auditTasks.Wait()
	a.stat.Done()

	if scanErr != nil {
		return nil, scanErr
	}
	return a.report, nil
}

func (a *Auditor) processChunk(chunk []string, firstLine int) {
	for i, password := range chunk {
		if password == "" {
			// Blank lines are noise, not candidates.
			continue
		}

		result := a.analyzer.Analyze(password)
		a.report.Add(Row{Line: firstLine + i, Result: result})
		a.stat.LineAnalyzed(result.Verdict == strength.VerdictVeryWeak || result.Verdict == strength.VerdictWeak)
	}

	a.linesPool.Put(chunk)
}
