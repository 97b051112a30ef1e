package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/magarcia/cuentica-sdk/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and update the cuentica CLI configuration stored in ~/.cuentica/config.yml",
	}

	cmd.AddCommand(newConfigSetTokenCommand())
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token",
		Short: "Store the API token",
		Long:  "Prompt for the Cuentica API token and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(os.Stderr, "API token: ")

			tokenBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Fprintln(os.Stderr)

			if err != nil {
				return fmt.Errorf("reading token: %w", err)
			}

			token := strings.TrimSpace(string(tokenBytes))
			if token == "" {
				return constants.ErrTokenEmpty
			}

			return writeConfigValue("token", token)
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Long:  "Show the resolved configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			type configView struct {
				API    string `json:"api"    yaml:"api"`
				Token  string `json:"token"  yaml:"token"`
				Output string `json:"output" yaml:"output"`
			}

			token := constants.NotAvailable
			if viper.GetString("token") != "" {
				token = constants.MaskedSecret
			}

			api := viper.GetString("api")
			if api == "" {
				api = constants.DefaultAPIEndpoint
			}

			view := configView{
				API:    api,
				Token:  token,
				Output: viper.GetString("output"),
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(view)
			default:
				return StandardYAMLRenderer(view)
			}
		},
	}
}

// writeConfigValue persists a single key into ~/.cuentica/config.yml,
// preserving any existing keys.
func writeConfigValue(key, value string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".cuentica")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	settings := map[string]interface{}{}

	if data, err := os.ReadFile(configPath); err == nil {
		_ = yaml.Unmarshal(data, &settings)
	}

	settings[key] = value

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(configPath, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Configuration saved to", configPath)

	return nil
}
