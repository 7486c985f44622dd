// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package audit

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type status struct {
	linesAnalyzed uint64
	weakFound     uint64
	start         time.Time
	ticker        *time.Ticker
	progress      chan bool
	totalLines    uint64
}

func newStatus(totalLines uint64) *status {
	return &status{
		start:      time.Now(),
		ticker:     time.NewTicker(5 * time.Second),
		progress:   make(chan bool),
		totalLines: totalLines,
	}
}

// BeginProgress reports the progress of the audit every 5 seconds.
func (s *status) BeginProgress() {
	go func() {
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				done := atomic.LoadUint64(&s.linesAnalyzed)
				if s.totalLines > 0 {
					log.Info().Msgf("%.2f%% lines audited. %.0f passwords/s", (float64(done)*100)/float64(s.totalLines), s.linesPerSecond())
				} else {
					log.Info().Msgf("%d lines audited. %.0f passwords/s", done, s.linesPerSecond())
				}
			}
		}
	}()
}

func (s *status) LineAnalyzed(weak bool) {
	atomic.AddUint64(&s.linesAnalyzed, 1)
	if weak {
		atomic.AddUint64(&s.weakFound, 1)
	}
}

func (s *status) linesPerSecond() float64 {
	elapsed := time.Since(s.start)
	if elapsed.Nanoseconds() > 0 {
		return float64(atomic.LoadUint64(&s.linesAnalyzed)) / elapsed.Seconds()
	}

	return float64(atomic.LoadUint64(&s.linesAnalyzed))
}

func (s *status) Done() {
	s.progress <- true
	s.ticker.Stop()

	p := message.NewPrinter(language.English)
	log.Info().Msgf("Finished auditing %s lines in %s. %.0f passwords/s",
		p.Sprintf("%d", atomic.LoadUint64(&s.linesAnalyzed)), time.Since(s.start), s.linesPerSecond())
	log.Debug().Msgf("%s of the audited passwords scored below Moderate",
		p.Sprintf("%d", atomic.LoadUint64(&s.weakFound)))
}
