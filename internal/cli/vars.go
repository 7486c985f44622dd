// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// check, audit, serve
	wordlistFile string
	// check, audit, serve
	policyFile string
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// audit, compile
	inputFile string
	// audit, fetch, compile
	outFile string
	// check
	interactive bool
	// check
	jsonOutput bool
	// check
	estimate bool
	// check
	noColor bool
	// audit
	format string
	// audit
	threads int
	// fetch
	sourceURL string
	// fetch, compile
	overwrite bool
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
	// serve
	allowedOrigins []string
)
