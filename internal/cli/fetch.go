package cli

import (
	"os"
	"path/filepath"

	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/alvinbaena/pwd-strength/pkg/wordlist"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// The SecLists 10k list is a good default size for the reference list:
// big enough to catch the classics, small enough to load instantly.
const defaultWordlistURL = "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10k-most-common.txt"

var (
	fetchCmd = &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a common passwords reference list to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	fetchCmd.Flags().StringVarP(&sourceURL, "url", "u", defaultWordlistURL, "URL of the reference list to download.")
	fetchCmd.Flags().StringVarP(&outFile, "out-file", "o", "./common-passwords.txt", "Output file path. Can be absolute or relative.")
	fetchCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite any existing files while writing the results.")

	rootCmd.AddCommand(fetchCmd)
}

func fetchCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("could not get absolute path of file")
	}

	if !overwrite {
		_, err := os.Stat(abs)
		if err == nil {
			log.Fatal().Msgf("file %s exists and overwrite flag is not set", abs)
		}
	}

	file, err := os.Create(abs)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing reference list file")
		}
	}(file)

	if _, err = wordlist.Download(sourceURL, file); err != nil {
		return err
	}

	return nil
}
