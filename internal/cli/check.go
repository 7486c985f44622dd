package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/manifoldco/promptui"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [PASSWORD]",
		Short: "Check the strength of a single password",
		Long: "Check the strength of a single password. Passing the password as an argument may " +
			"leave it in your shell history; prefer the --interactive flag, which prompts for it masked.",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				// Dummy string
				return checkCommand("")
			} else {
				return checkCommand(args[0])
			}
		},
	}
)

type crackEstimate struct {
	CrackTimeSeconds float64 `json:"crack_time_seconds"`
	CrackTimeDisplay string  `json:"crack_time_display"`
	Score            int     `json:"score"`
}

type checkReport struct {
	strength.Result
	CrackEstimate *crackEstimate `json:"crack_estimate,omitempty"`
}

//goland:noinspection GoUnhandledErrorResult
func init() {
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. Prompts for the password masked, never echoing it.")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full analysis as JSON instead of the text report.")
	checkCmd.Flags().BoolVarP(&estimate, "estimate", "e", false, "Include a zxcvbn crack time estimate in the report.")
	checkCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output in the text report.")
	checkCmd.Flags().StringVarP(&wordlistFile, "wordlist", "w", "", "Common passwords reference file. Uses the bundled list if omitted.")
	checkCmd.Flags().StringVar(&policyFile, "policy", "", "Scoring policy YAML file. Uses the default weights if omitted.")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand(password string) (err error) {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	analyzer, err := strength.NewAnalyzerFromFiles(wordlistFile, policyFile)
	if err != nil {
		return
	}

	if interactive {
		prompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
			Validate: func(input string) error {
				if len(input) == 0 {
					return errors.New("please enter a password")
				}
				return nil
			},
		}

		log.Info().Msgf("Running interactive session. ^C to exit")
		if err = runInteractiveSession(prompt, analyzer); err != nil {
			if err.Error() == "^C" || err.Error() == "^D" {
				log.Info().Msgf("Goodbye")
			} else {
				log.Error().Err(err).Msgf("Error during interactive session")
			}
			// No return to avoid the default cobra error message
			return nil
		}

		return
	}

	return reportResult(analyzer, password)
}

func runInteractiveSession(prompt promptui.Prompt, analyzer *strength.Analyzer) error {
	for {
		password, err := prompt.Run()
		if err != nil {
			return err
		}

		if err = reportResult(analyzer, password); err != nil {
			log.Error().Err(err).Msg("Error during analysis")
		}
	}
}

func reportResult(analyzer *strength.Analyzer, password string) error {
	result := analyzer.Analyze(password)
	est := buildEstimate(password)

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(checkReport{Result: result, CrackEstimate: est})
	}

	printTextReport(result, est)
	return nil
}

func buildEstimate(password string) *crackEstimate {
	if !estimate || password == "" {
		return nil
	}

	entropy := zxcvbn.PasswordStrength(password, nil)
	return &crackEstimate{
		CrackTimeSeconds: entropy.CrackTime,
		CrackTimeDisplay: entropy.CrackTimeDisplay,
		Score:            entropy.Score,
	}
}

func printTextReport(result strength.Result, est *crackEstimate) {
	verdict := string(result.Verdict)
	if !noColor {
		verdict = colorVerdict(result.Verdict)
	}

	fmt.Println("Password Strength Report")
	fmt.Println("------------------------")
	fmt.Printf("Length          : %d\n", result.Length)
	fmt.Printf("Classes         : %s\n", classList(result.Features))
	fmt.Printf("Entropy         : %.2f bits\n", result.EntropyBits)
	fmt.Printf("Common password : %s\n", yesNo(result.IsCommon))
	fmt.Printf("Repeated run    : %s\n", yesNo(result.HasRepeatRun))
	fmt.Printf("Sequential run  : %s\n", yesNo(result.HasSequentialRun))
	fmt.Printf("Score           : %d / 100\n", result.Score)
	fmt.Printf("Verdict         : %s\n", verdict)

	if est != nil {
		fmt.Printf("Crack time      : %s (zxcvbn estimate)\n", est.CrackTimeDisplay)
	}

	if len(result.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range result.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
}

func classList(f strength.Features) string {
	classes := make([]string, 0, 4)
	if f.HasLower {
		classes = append(classes, "lower")
	}
	if f.HasUpper {
		classes = append(classes, "upper")
	}
	if f.HasDigit {
		classes = append(classes, "digit")
	}
	if f.HasSpecial {
		classes = append(classes, "special")
	}

	if len(classes) == 0 {
		return "none"
	}
	return strings.Join(classes, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func colorVerdict(v strength.Verdict) string {
	switch v {
	case strength.VerdictVeryWeak, strength.VerdictWeak:
		return fmt.Sprintf("\x1b[31m%s\x1b[0m", v) // red
	case strength.VerdictModerate:
		return fmt.Sprintf("\x1b[33m%s\x1b[0m", v) // yellow
	default:
		return fmt.Sprintf("\x1b[32m%s\x1b[0m", v) // green
	}
}
