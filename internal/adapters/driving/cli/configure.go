package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/helix-labs/helix-hr/internal/adapters/driven/ai"
	"github.com/helix-labs/helix-hr/internal/logger"
)

var (
	configureEmbedProvider string
	configureLLMProvider   string
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store provider settings and API keys",
	Long: `Writes provider settings into the config file. When a Gemini
provider is selected, the API key is prompted for without echo and
stored alongside the other settings.

Supported providers: ollama (local, no key) and gemini.`,
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().StringVar(&configureEmbedProvider, "embedding-provider", "",
		"embedding provider (ollama or gemini)")
	configureCmd.Flags().StringVar(&configureLLMProvider, "llm-provider", "",
		"LLM provider (ollama or gemini)")
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	selections := []struct {
		key   string
		value string
	}{
		{"embedding.provider", configureEmbedProvider},
		{"llm.provider", configureLLMProvider},
	}
	for _, sel := range selections {
		if sel.value == "" {
			continue
		}
		provider := strings.ToLower(sel.value)
		if provider != "ollama" && provider != "gemini" {
			return fmt.Errorf("unknown provider %q (want ollama or gemini)", sel.value)
		}
		if err := configStore.Set(sel.key, provider); err != nil {
			return fmt.Errorf("saving %s: %w", sel.key, err)
		}
	}

	needsKey := configStore.GetString("embedding.provider") == "gemini" ||
		configStore.GetString("llm.provider") == "gemini"
	if needsKey {
		if err := promptGeminiKey(cmd); err != nil {
			return err
		}
	}

	if err := ai.ValidateEmbedding(cmd.Context(), configStore); err != nil {
		logger.Warn("embedding provider check failed: %v", err)
	}

	cmd.Printf("Configuration written to %s\n", configStore.Path())
	return nil
}

// promptGeminiKey reads the API key without echo and stores it. An
// empty entry keeps whatever key is already stored.
func promptGeminiKey(cmd *cobra.Command) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("gemini provider selected but stdin is not a terminal; cannot prompt for API key")
	}

	cmd.Print("Gemini API key (leave empty to keep current): ")
	key, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return fmt.Errorf("reading API key: %w", err)
	}

	if len(key) == 0 {
		if configStore.GetString("gemini.api_key") == "" {
			return errors.New("no Gemini API key stored")
		}
		return nil
	}
	if err := configStore.Set("gemini.api_key", strings.TrimSpace(string(key))); err != nil {
		return fmt.Errorf("saving API key: %w", err)
	}
	return nil
}
