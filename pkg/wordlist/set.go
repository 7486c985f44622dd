// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package wordlist holds the reference list of known weak passwords
// used to classify candidates, plus tooling to fetch and normalize
// such lists.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Bundled default list. Source: top entries of the public SecLists
// 10k-most-common dataset.
//
//go:embed common_passwords.txt
var embedded string

// Set is a case-insensitive reference list of known weak passwords.
// Read-only after construction, safe for concurrent lookups.
type Set struct {
	entries map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the bundled reference list.
func Default() *Set {
	defaultOnce.Do(func() {
		set, err := FromReader(strings.NewReader(embedded))
		if err != nil {
			panic(fmt.Sprintf("wordlist: bundled list is invalid: %s", err))
		}
		defaultSet = set
	})

	return defaultSet
}

// FromFile loads a reference list from a file, one password per line.
func FromFile(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	set, err := FromReader(file)
	if err != nil {
		return nil, fmt.Errorf("error reading reference list %s: %w", path, err)
	}

	return set, nil
}

// FromReader parses a reference list, one password per line. Entries
// are trimmed and lowercased; blank lines and # comments are skipped.
// A list with no entries is an error, since it would classify nothing.
func FromReader(r io.Reader) (*Set, error) {
	entries := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entries[strings.ToLower(line)] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, errors.New("reference list has no entries")
	}

	return &Set{entries: entries}, nil
}

// Contains reports whether the password, lowercased, is an exact
// member of the list. No fuzzy matching.
func (s *Set) Contains(password string) bool {
	_, ok := s.entries[strings.ToLower(password)]
	return ok
}

// Len returns the number of entries in the list.
func (s *Set) Len() int {
	return len(s.entries)
}
