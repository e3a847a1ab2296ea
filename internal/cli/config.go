package cli

import (
	"fmt"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/madder-sh/madder/internal/config"
)

// configCmd groups the configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change madder's configuration",
}

// configListCmd represents the config list command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration keys with their current values",
	RunE:  runConfigList,
}

// configGetCmd represents the config get command
var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a configuration key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeConfigKeys,
	RunE:              runConfigGet,
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key in the config file",
	Long: `Set a configuration key and persist it to the config file. List
values are comma-separated.

Examples:
  madder config set wallpaper.directory ~/Walls
  madder config set theme.colours 12
  madder config set targets.disabled qt,gtk`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeConfigKeys,
	RunE:              runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

// runConfigList executes the config list command.
func runConfigList(cmd *cobra.Command, args []string) error {
	table := NewTable("KEY", "VALUE", "ENVIRONMENT", "DESCRIPTION")
	table.SetColumnMaxWidth(3, 44)

	for _, field := range config.Fields() {
		table.AddRow(field.Key, formatConfigValue(viper.Get(field.Key)), field.Env(), field.Description)
	}

	fmt.Print(table.Render())
	return nil
}

// runConfigGet executes the config get command.
func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, ok := config.Default[key]; !ok {
		return errUnknownKey(key)
	}
	fmt.Println(formatConfigValue(viper.Get(key)))
	return nil
}

// runConfigSet executes the config set command.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	field, ok := config.Default[key]
	if !ok {
		return errUnknownKey(key)
	}

	value, err := parseConfigValue(field, args[1])
	if err != nil {
		return err
	}

	viper.Set(key, value)
	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			err = viper.SafeWriteConfig()
		}
		if err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
	}

	fmt.Printf("✓ %s set to %s\n", key, formatConfigValue(value))
	return nil
}

// parseConfigValue converts the raw argument into the key's registered type.
func parseConfigValue(field config.Field, raw string) (any, error) {
	switch field.Value.(type) {
	case string:
		return raw, nil
	case int:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q for %s", raw, field.Key)
		}
		return parsed, nil
	case bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value %q for %s", raw, field.Key)
		}
		return parsed, nil
	case []string:
		if raw == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts, nil
	default:
		return nil, fmt.Errorf("unsupported value type for %s", field.Key)
	}
}

// formatConfigValue renders a configuration value for display.
func formatConfigValue(value any) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// errUnknownKey rejects a key that is not in the defaults registry,
// suggesting the closest registered one.
func errUnknownKey(key string) error {
	closest := ""
	best := -1
	for _, field := range config.Fields() {
		if d := levenshtein.Distance(key, field.Key); best < 0 || d < best {
			closest, best = field.Key, d
		}
	}
	if closest == "" {
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return fmt.Errorf("unknown configuration key %q, did you mean %q?", key, closest)
}

// completeConfigKeys offers the registered keys for shell completion.
func completeConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	keys := make([]string, 0, len(config.Default))
	for _, field := range config.Fields() {
		keys = append(keys, field.Key)
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
