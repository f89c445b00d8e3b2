package main

import (
	"fmt"
	"reflect"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"harborhq/quay/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the resolved configuration",
	Long: `Resolve the layered configuration sources (inline document, config
file, environment overrides, defaults) and inspect the result.`,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Resolve and validate the configuration",
	Long: `Resolve the configuration from all sources and run semantic
validation on the result.

Exits non-zero when a mandatory option is missing, the schema version is
unsupported, a source cannot be parsed, or a resolved value fails a
semantic check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cfgFile)
		if err != nil {
			return err
		}
		if err := settings.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration OK")
		return nil
	},
}

var showFlags struct {
	format string
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration from all sources and print the effective
document with secrets masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cfgFile)
		if err != nil {
			return err
		}
		doc, err := renderSettings(settings.Redacted(), showFlags.format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(doc)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().StringVar(&showFlags.format, "format", "toml", "output format: toml, yaml")
}

// resolveSettings discovers the configuration sources from the
// environment, falling back to defaultPath, and resolves them.
func resolveSettings(defaultPath string) (config.Settings, error) {
	info, err := config.NewInfo(defaultPath)
	if err != nil {
		return config.Settings{}, err
	}
	return config.LoadSettings(info)
}

// renderSettings marshals a resolved settings tree into a TOML or YAML
// document. Callers that print the result should pass a redacted tree.
func renderSettings(settings config.Settings, format string) ([]byte, error) {
	tree := koanf.New(".")
	if err := tree.Load(structs.Provider(settings, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to flatten settings: %w", err)
	}

	doc := koanf.New(".")
	if err := doc.Load(confmap.Provider(pruneNil(tree.Raw()), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to rebuild settings document: %w", err)
	}

	switch format {
	case "toml":
		return doc.Marshal(toml.Parser())
	case "yaml":
		return doc.Marshal(yaml.Parser())
	default:
		return nil, fmt.Errorf("unsupported format: %s (expected toml or yaml)", format)
	}
}

// pruneNil walks a nested settings map, dropping entries for absent
// optional sections and reducing named string types to plain strings so
// the document marshalers accept every value.
func pruneNil(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for key, value := range m {
		if child, ok := value.(map[string]interface{}); ok {
			out[key] = pruneNil(child)
			continue
		}
		if value == nil {
			continue
		}
		rv := reflect.ValueOf(value)
		switch {
		case rv.Kind() == reflect.Ptr && rv.IsNil():
			continue
		case rv.Kind() == reflect.String:
			out[key] = rv.String()
		default:
			out[key] = value
		}
	}
	return out
}
