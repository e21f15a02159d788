package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

var (
	contextEmployee string
	contextJSON     bool
)

var contextCmd = &cobra.Command{
	Use:   "context [query]",
	Short: "Assemble grounded context for an HR question",
	Long: `Assembles the grounded context the assistant would answer from:
the employee record, the most relevant policy excerpts, and any
computed business-rule results, each with its citation.

A query that yields no context at all fails with an INSUFFICIENT_DATA
error rather than returning an empty result.`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func init() {
	contextCmd.Flags().StringVarP(&contextEmployee, "employee", "e", "",
		"employee id to ground the context on (e.g. EMP1001)")
	contextCmd.Flags().BoolVar(&contextJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
	if contextService == nil {
		return errors.New("context service not configured")
	}

	result, err := contextService.Build(cmd.Context(), args[0], contextEmployee)
	if err != nil {
		return err
	}

	if contextJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal context: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printContext(cmd, result)
	return nil
}

func printContext(cmd *cobra.Command, result *domain.ContextResult) {
	cmd.Printf("Intent: %s (query %s)\n\n", result.Intent, result.QueryID)

	for i, block := range result.Blocks {
		cmd.Printf("[%d] %s\n", i+1, block.Title)
		cmd.Printf("    Source: %s\n", block.Source)
		cmd.Printf("    %s\n\n", block.Text)
	}

	cmd.Println("Citations:")
	for _, c := range result.Citations {
		cmd.Printf("  - %s (%s)\n", c.Source, c.Note)
	}
}
