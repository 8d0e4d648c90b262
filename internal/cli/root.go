package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"quiz-cli/internal/domain"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("QUIZ_CONFIG")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:          "quiz",
		Short:        "Author, take and score multiple-choice quizzes",
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			msg, _ := failureMessage(args[0], domain.ErrUnknownCommand)
			writeStatus(cmd.OutOrStdout(), statusError, msg)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	for _, def := range commandDefs {
		cmd.AddCommand(newDomainCmd(def, &configPath))
	}
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}

// normalizeArgs accepts the legacy dash-prefixed command form, e.g. -create-user.
func normalizeArgs(args []string) []string {
	out := append([]string(nil), args...)
	i := 0
	for i < len(out) && strings.HasPrefix(out[i], "--") {
		if out[i] == "--config" {
			i++
		}
		i++
	}
	if i < len(out) && strings.HasPrefix(out[i], "-") {
		if _, ok := lookupCommand(strings.TrimPrefix(out[i], "-")); ok {
			out[i] = strings.TrimPrefix(out[i], "-")
		}
	}
	return out
}
