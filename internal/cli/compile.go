package cli

import (
	"os"
	"path/filepath"

	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/alvinbaena/pwd-strength/pkg/wordlist"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	compileCmd = &cobra.Command{
		Use:   "compile",
		Short: "Compile a raw password dump into a normalized reference list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return compileCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	compileCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Raw password dump input file path (required)")
	compileCmd.MarkFlagRequired("in-file")
	compileCmd.Flags().StringVarP(&outFile, "out-file", "o", "./common-passwords.txt", "Reference list output path")
	compileCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite any existing files while writing the results.")

	rootCmd.AddCommand(compileCmd)
}

func compileCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing raw dump file")
		}
	}(file)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("could not get absolute path of file")
	}

	if !overwrite {
		_, err = os.Stat(abs)
		if !os.IsNotExist(err) {
			log.Fatal().Msgf("file %s exists and overwrite flag is not set", outFile)
		}
	}

	out, err := os.Create(abs)
	if err != nil {
		return err
	}

	defer func(out *os.File) {
		if err = out.Close(); err != nil {
			log.Error().Err(err).Msg("error closing reference list file")
		}
	}(out)

	if _, _, err = wordlist.Compile(file, out); err != nil {
		return err
	}

	return nil
}
