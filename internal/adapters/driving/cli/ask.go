package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var askEmployee string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer an HR question with citations",
	Long: `Assembles grounded context for the question and prompts the
configured LLM for a cited answer. The model only sees the assembled
context; a question the context cannot support comes back prefixed
with INSUFFICIENT_DATA instead of a guess.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askEmployee, "employee", "e", "",
		"employee id to ground the answer on (e.g. EMP1001)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("no LLM configured; run 'helix-hr configure' first")
	}

	answer, err := answerService.Answer(cmd.Context(), args[0], askEmployee)
	if err != nil {
		return err
	}

	cmd.Println(answer)
	return nil
}
