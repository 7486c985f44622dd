package util

import (
	"fmt"
	"io"
	"math"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/mem"
)

func Stats() func() {
	return func() {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		log.Debug().Msgf("Alloc: %d MB, TotalAlloc: %d MB, Requested: %d MB",
			ms.Alloc/1024/1024, ms.TotalAlloc/1024/1024, ms.Sys/1024/1024)
		log.Debug().Msgf("Mallocs: %d, Frees: %d, GC: %d", ms.Mallocs, ms.Frees, ms.NumGC)
		log.Debug().Msgf("HeapAlloc: %d MB, HeapSys: %d MB, HeapIdle: %d MB",
			ms.HeapAlloc/1024/1024, ms.HeapSys/1024/1024, ms.HeapIdle/1024/1024)
		log.Debug().Msgf("HeapObjects: %d", ms.HeapObjects)
	}
}

func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Warn().Msgf("Verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("Profiling is enabled for this session. Server will listen on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf(":%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("Error starting profiling server on port %d", pprofPort)
				return
			}
		}()
	}
}

// CheckRam stops the process when holding the given number of list
// entries in memory would not fit in the available RAM. Assumes about
// 32 bytes per retained entry, the rough cost of a short password
// string plus slice and map overhead.
func CheckRam(items uint64) {
	required := (items * 32) / (1024 * 1024)
	if memStat, err := mem.VirtualMemory(); err == nil {
		log.Debug().Msgf("System has %.2f MiB of RAM available", float64(memStat.Available)/(1024*1024))
		if required > memStat.Available/(1024*1024) {
			log.Fatal().Msgf("Your system does not have the minimum required RAM (%d MiB) to execute this process.", required)
		}
	} else {
		log.Warn().Msgf("Estimated memory use for %d entries is %d MiB", items, required)
		log.Warn().Msgf("This process will cause disk swapping and general slowness if your "+
			"current system memory is not at least %d MiB.", required)
	}
}

// EstimateFileLines samples up to the first 16 MiB of a file and
// extrapolates its line count. The error rate is about 1% on uniform
// files. The file position is rewound to the start afterwards.
func EstimateFileLines(f *os.File) uint64 {
	// 16MiB
	const estimateLimit = 1024 * 1024 * 16

	info, err := f.Stat()
	if err != nil {
		log.Fatal().Err(err).Msg("Error estimating lines of file")
	}

	size := info.Size()
	if size == 0 {
		return 0
	}

	sampleSize := math.Min(float64(size), estimateLimit)
	buffer := make([]byte, int64(sampleSize))
	if _, err = f.Read(buffer); err != nil {
		log.Fatal().Err(err).Msg("Error estimating lines of file")
	}
	// Reset the file pointer to the start of the file so the actual
	// read will not be missing the sampled chunk
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		log.Fatal().Err(err).Msg("Error estimating lines of file")
	}

	ascii := []byte("\n")[0]
	sample := 0
	for _, b := range buffer {
		if b == ascii {
			sample++
		}
	}

	return uint64(sample) * (uint64(size) / uint64(sampleSize))
}

// ToScreamingSnakeCase converts Go field names like "TLSCert" or
// "SelfTLS" to their environment variable form ("TLS_CERT",
// "SELF_TLS"). Space separated lists of names are converted word by
// word.
func ToScreamingSnakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}
