package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	searchK    int
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the indexed policy documents",
	Long: `Runs raw semantic search over the policy index and prints the hits
with their similarity scores, without the thresholding and capping the
context pipeline applies.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchK, "limit", "n", 0,
		"maximum number of hits (0 = configured default)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output hits as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	hits, err := searchService.SearchPolicies(cmd.Context(), args[0], searchK)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(hits, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal hits: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(hits) == 0 {
		cmd.Println("No hits.")
		return nil
	}
	for i, hit := range hits {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, hit.Source, hit.Score)
		cmd.Printf("      %s\n\n", hit.Text)
	}
	return nil
}
