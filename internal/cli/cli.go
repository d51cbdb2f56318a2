package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/figvars/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("figvars", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
figvars - normalize and render design variables.

Usage:
  figvars [options] [PAYLOAD_PATH]

Arguments:
  PAYLOAD_PATH
    Path to a local variables JSON payload. Without it the payload is
    fetched from the API using -file-key or -asset-url.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an .hcl config file or a directory of them.")
	cFlag := flagSet.String("c", "", "Path to an .hcl config file or directory (shorthand).")
	envFileFlag := flagSet.String("env-file", ".env", "Env file to load before reading FIGMA_TOKEN. Missing files are ignored.")
	fileKeyFlag := flagSet.String("file-key", "", "Design file key to fetch variables for.")
	assetURLFlag := flagSet.String("asset-url", "", "Asset URL wrapping the design file URL in its 'url' query parameter.")
	apiBaseFlag := flagSet.String("api-base", "", "Base URL of the variables API.")
	formatFlag := flagSet.String("format", "", "Output format. Options: 'table', 'palette', 'json', 'yaml', 'hcl'. Default 'table'.")
	modeFlag := flagSet.String("mode", "", "Mode name or id for the palette view. Defaults to each collection's default mode.")
	editingFlag := flagSet.Bool("editing", false, "Show hidden groups and variables.")
	searchFlag := flagSet.String("search", "", "Only show groups whose name, variables or subgroups contain this text.")
	groupFlag := flagSet.String("group", "", "Only show this group (slash-joined path, e.g. 'Color/Red') and its direct subgroups in the table.")
	backrefsFlag := flagSet.String("backrefs", "", "Back-reference policy. Options: 'all' or 'last'. Default 'all'.")
	servePortFlag := flagSet.Int("serve-port", 0, "Serve the normalized variables over HTTP on this port. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if len(args) == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one PAYLOAD_PATH, got %d", flagSet.NArg())}
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:  configPath,
		EnvFile:     *envFileFlag,
		PayloadPath: flagSet.Arg(0),
		FileKey:     *fileKeyFlag,
		AssetURL:    *assetURLFlag,
		APIBase:     *apiBaseFlag,
		Format:      strings.ToLower(*formatFlag),
		Mode:        *modeFlag,
		Search:      *searchFlag,
		Group:       *groupFlag,
		Editing:     *editingFlag,
		Backrefs:    strings.ToLower(*backrefsFlag),
		ServePort:   *servePortFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config_path", config.ConfigPath, "payload_path", config.PayloadPath)
	return config, false, nil
}
