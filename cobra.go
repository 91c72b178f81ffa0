package args

import (
	"github.com/spf13/cobra"
)

// RunFunc is the function run by a command once its words are parsed.
type RunFunc func(cmd *cobra.Command, res *Result) error

// Command returns a cobra command whose words are parsed by the set.
// Cobra's own flag parsing is disabled: when the help option is given,
// the usage and help texts are printed and run is not called, and when
// parsing fails, the usage line is printed along with the error.
func (s *Set) Command(use string, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:                use,
		DisableFlagParsing: true,
		SilenceUsage:       true,
	}

	cmd.RunE = func(cmd *cobra.Command, words []string) error {
		res, err := s.Parse(append([]string{cmd.Name()}, words...))
		if err != nil {
			cmd.PrintErrln("Usage: " + s.Usage(cmd.CommandPath()))

			return err
		}

		if res.HelpWanted {
			cmd.Println("Usage: " + s.Usage(cmd.CommandPath()))
			cmd.Println()
			cmd.Print(s.Help())

			return nil
		}

		if run == nil {
			return nil
		}

		return run(cmd, res)
	}

	return cmd
}
