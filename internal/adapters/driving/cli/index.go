package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var indexDocsDir string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the policy index from a documents directory",
	Long: `Walks the documents directory, chunks every .md and .txt file,
embeds the chunks and writes the index artifacts into the data
directory. Builds are full rebuilds; the previous index is replaced.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexDocsDir, "docs", "",
		"documents directory (default from config docs.dir)")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	docsDir := indexDocsDir
	if docsDir == "" && configStore != nil {
		docsDir = configStore.GetString("docs.dir")
	}
	if docsDir == "" {
		return errors.New("no documents directory; pass --docs or set docs.dir")
	}

	stats, err := indexService.BuildIndex(cmd.Context(), docsDir)
	if err != nil {
		return err
	}

	cmd.Printf("Indexed %d documents into %d chunks.\n", stats.Documents, stats.Chunks)
	return nil
}
