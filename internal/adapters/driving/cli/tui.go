package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/helix-labs/helix-hr/internal/adapters/driving/tui"
)

var tuiEmployee string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive ask session",
	Long: `Launch an interactive terminal session for asking HR questions.

Each question is answered from assembled context, with citations.

Controls:
  Enter  - Ask the typed question
  Esc, Ctrl+C - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiEmployee, "employee", "e", "",
		"employee id to ground the session on (e.g. EMP1001)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}

	stopWatch := startDataWatch()
	defer stopWatch()

	return tui.Run(contextService, answerService, tuiEmployee)
}
