package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/madder-sh/madder/internal/genwall"
	"github.com/madder-sh/madder/internal/state"
)

// backendCmd groups the generation backend selection subcommands.
var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Select the wallpaper generation backend and model",
}

// backendShowCmd represents the backend show command
var backendShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the selected generation backend and model",
	RunE:  runBackendShow,
}

// backendSetCmd represents the backend set command
var backendSetCmd = &cobra.Command{
	Use:   "set <backend> [model]",
	Short: "Set the generation backend, and optionally the model",
	Long: `Set the generation backend used by 'madder wallpaper generate'.

Valid backends are gemini-api and vertex-ai. Omitting the model selects
the backend's default model.

Examples:
  # Switch to the public Gemini API with the default model
  madder backend set gemini-api

  # Vertex AI with a specific Imagen model
  madder backend set vertex-ai imagen-4.0-generate-001`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBackendSet,
}

func init() {
	backendCmd.AddCommand(backendShowCmd)
	backendCmd.AddCommand(backendSetCmd)
}

// runBackendShow executes the backend show command.
func runBackendShow(cmd *cobra.Command, args []string) error {
	records, err := openRecordStore()
	if err != nil {
		return err
	}

	record, err := records.Load()
	if err != nil {
		return err
	}

	model := record.Model
	if model == "" {
		model = fmt.Sprintf("%s (default)", genwall.DefaultModel)
	}

	fmt.Printf("Backend: %s\n", record.Backend)
	fmt.Printf("Model:   %s\n", model)
	fmt.Printf("Record:  %s\n", records.Path())
	return nil
}

// runBackendSet executes the backend set command.
func runBackendSet(cmd *cobra.Command, args []string) error {
	backend, err := state.ParseBackend(args[0])
	if err != nil {
		return err
	}
	model := ""
	if len(args) == 2 {
		model = args[1]
	}

	records, err := openRecordStore()
	if err != nil {
		return err
	}
	record, err := records.Load()
	if err != nil {
		return err
	}

	record.Backend = backend
	record.BackendIndex = slices.Index(state.Backends(), backend)
	if record.Model != model {
		record.Model = model
		record.ModelIndex = 0
	}

	if err := records.Save(record); err != nil {
		return err
	}

	if model == "" {
		fmt.Printf("✓ Generation backend set to %s\n", backend)
	} else {
		fmt.Printf("✓ Generation backend set to %s (model %s)\n", backend, model)
	}
	return nil
}

// openRecordStore opens the generation record at its default location.
func openRecordStore() (*state.FileStore, error) {
	path, err := state.DefaultPath()
	if err != nil {
		return nil, err
	}
	return state.NewFileStore(path, logger.Named("state")), nil
}
