// Package cli implements the helix-hr command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
	"github.com/helix-labs/helix-hr/internal/core/ports/driving"
	"github.com/helix-labs/helix-hr/internal/datawatch"
	"github.com/helix-labs/helix-hr/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute runs.
var (
	contextService driving.ContextService
	searchService  driving.SearchService
	answerService  driving.AnswerService
	indexService   driving.IndexService
	configStore    driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "helix-hr",
	Short: "Grounded context assembly for HR question answering",
	Long: `helix-hr assembles grounded, citable context for HR questions from
three local sources: structured employee records, an indexed policy
handbook, and deterministic HR business rules.

Typical workflow:
  helix-hr configure            # store provider settings and API key
  helix-hr index --docs ./docs  # build the policy index
  helix-hr context "How many leave days do I have left" --employee EMP1001
  helix-hr ask "Can I take leave next week" --employee EMP1001`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Services bundles everything the commands need.
type Services struct {
	Context driving.ContextService
	Search  driving.SearchService
	Answer  driving.AnswerService
	Index   driving.IndexService
	Config  driven.ConfigStore
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	contextService = s.Context
	searchService = s.Search
	answerService = s.Answer
	indexService = s.Index
	configStore = s.Config
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// startDataWatch begins watching the configured data directory for
// mutation under a long-running command. The returned stop function is
// always safe to call.
func startDataWatch() func() {
	if configStore == nil {
		return func() {}
	}
	dataDir := configStore.GetString("data.dir")
	if dataDir == "" {
		return func() {}
	}

	w, err := datawatch.New(dataDir)
	if err != nil {
		logger.Warn("data watch disabled: %v", err)
		return func() {}
	}
	return func() { _ = w.Close() }
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose diagnostic output")
}
