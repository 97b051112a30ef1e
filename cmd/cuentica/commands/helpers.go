// Package commands implements the cuentica CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/magarcia/cuentica-sdk/internal/constants"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
	"github.com/magarcia/cuentica-sdk/pkg/cuenticaclient"
)

// Output formats.
const (
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML
	OutputFormatTable = constants.FormatTable
)

// CreateClient builds a cuentica.Client from the CLI configuration. The
// token resolves from the --token flag, the config file, or the
// CUENTICA_API_TOKEN environment variable (handled by the SDK).
func CreateClient() (cuentica.Client, error) {
	config := &cuentica.Config{
		Token:   viper.GetString("token"),
		BaseURL: viper.GetString("api"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = cuentica.NewLogger("cuentica", "debug")
	}

	client, err := cuenticaclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("building client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer encodes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// ParseID parses a positional resource identifier.
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("parsing id %q: %w", arg, err)
	}

	return id, nil
}

// FormatAmount renders a monetary amount for table output.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
