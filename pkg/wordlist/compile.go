// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Compile normalizes a raw password list into the canonical reference
// form: trimmed, lowercased, sorted, deduplicated, one entry per line.
// Blank lines and # comments are dropped. Returns the raw and unique
// entry counts.
func Compile(in *os.File, out io.Writer) (total uint64, unique uint64, err error) {
	// Stop early if holding the whole list in memory cannot work.
	estimated := util.EstimateFileLines(in)
	util.CheckRam(estimated)

	s := util.Stats()
	defer s()

	entries := make([]string, 0, estimated)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entries = append(entries, strings.ToLower(line))
	}
	if err = scanner.Err(); err != nil {
		return 0, 0, err
	}

	total = uint64(len(entries))
	log.Debug().Msgf("sorting %d entries", total)
	sorty.SortSlice(entries)
	entries = dedup(entries)
	unique = uint64(len(entries))

	writer := bufio.NewWriter(out)
	for _, entry := range entries {
		if _, err = writer.WriteString(entry + "\n"); err != nil {
			return total, unique, err
		}
	}
	if err = writer.Flush(); err != nil {
		return total, unique, err
	}

	p := message.NewPrinter(language.English)
	log.Info().Msgf("compiled %s raw entries into %s unique reference passwords",
		p.Sprintf("%d", total), p.Sprintf("%d", unique))
	return total, unique, nil
}

// dedup removes duplicates from a sorted slice in place.
func dedup(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}

	var e = 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			continue
		}
		sorted[e] = sorted[i]
		e++
	}

	return sorted[:e]
}
