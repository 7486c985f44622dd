package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alvinbaena/pwd-strength/internal/audit"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Audit a candidate password file, one password per line",
		Long: "Audit a candidate password file, one password per line. The report carries line " +
			"numbers and derived metrics only; the audited passwords are never written anywhere.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	auditCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Candidate passwords input file, one per line (required)")
	auditCmd.MarkFlagRequired("in-file")
	auditCmd.Flags().StringVarP(&outFile, "out-file", "o", "", "Report output path. Defaults to stdout for the text and ndjson formats.")
	auditCmd.Flags().StringVarP(&format, "format", "f", "text", "Report format. One of text, ndjson, or xlsx.")
	auditCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use for the audit. If omitted, defaults to the number of logical processors of the machine.")
	auditCmd.Flags().StringVarP(&wordlistFile, "wordlist", "w", "", "Common passwords reference file. Uses the bundled list if omitted.")
	auditCmd.Flags().StringVar(&policyFile, "policy", "", "Scoring policy YAML file. Uses the default weights if omitted.")

	rootCmd.AddCommand(auditCmd)
}

func auditCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	if format != "text" && format != "ndjson" && format != "xlsx" {
		return fmt.Errorf("unknown report format %q", format)
	}
	if format == "xlsx" && outFile == "" {
		return errors.New("the xlsx format requires the out-file flag")
	}

	analyzer, err := strength.NewAnalyzerFromFiles(wordlistFile, policyFile)
	if err != nil {
		return err
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing candidates file")
		}
	}(file)

	auditor := audit.NewAuditor(analyzer, threads)
	report, err := auditor.Process(file)
	if err != nil {
		return err
	}

	return writeReport(report)
}

func writeReport(report *audit.Report) error {
	if format == "xlsx" {
		abs, err := filepath.Abs(outFile)
		if err != nil {
			log.Fatal().Err(err).Msgf("could not get absolute path of file")
		}

		log.Info().Msgf("writing report to %s", abs)
		return report.WriteXLSX(abs)
	}

	out := os.Stdout
	if outFile != "" {
		abs, err := filepath.Abs(outFile)
		if err != nil {
			log.Fatal().Err(err).Msgf("could not get absolute path of file")
		}

		f, err := os.Create(abs)
		if err != nil {
			return err
		}

		defer func(f *os.File) {
			if err = f.Close(); err != nil {
				log.Error().Err(err).Msg("error closing report file")
			}
		}(f)
		out = f
	}

	if format == "ndjson" {
		return report.WriteNDJSON(out)
	}
	return report.WriteText(out)
}
