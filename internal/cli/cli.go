package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/bundlegrid/internal/app"
	"github.com/specialistvlad/bundlegrid/internal/output"
)

// ProjectEnv names the environment variable consulted when no project path is
// given on the command line.
const ProjectEnv = "BUNDLEGRID_PROJECT"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, outW io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("bundlegrid", flag.ContinueOnError)
	flagSet.SetOutput(outW)

	flagSet.Usage = func() {
		fmt.Fprint(outW, `
BundleGrid - assembles the bundle descriptors for packaging a JavaScript library.

Usage:
  bundlegrid [options] [PROJECT_PATH]

Arguments:
  PROJECT_PATH
    Optional path to a project .hcl file or a directory of .hcl files.
    Defaults to $`+ProjectEnv+`, then to the built-in coco-ssd project.

Options:
`)
		flagSet.PrintDefaults()
	}

	ciFlag := flagSet.Bool("ci", false, "Add the minified UMD target.")
	npmFlag := flagSet.Bool("npm", false, "Add every publishable target (minified UMD, UMD, minified ES2017).")
	visualizeFlag := flagSet.Bool("visualize", false, "Emit a bundle visualization report for the minified UMD target.")
	projectFlag := flagSet.String("project", "", "Path to the project file or directory.")
	pFlag := flagSet.String("p", "", "Path to the project file or directory (shorthand).")
	formatFlag := flagSet.String("output", "json", "Plan output format. Options: 'json', 'yaml' or 'table'.")
	oFlag := flagSet.String("o", "", "Plan output format (shorthand).")
	outFlag := flagSet.String("out", "", "Write the plan to this file instead of stdout.")
	yearFlag := flagSet.Int("year", 0, "Copyright year for the license banner. 0 uses the current year.")
	warningsFlag := flagSet.String("warnings", "", "Replay engine warnings (JSON lines) from this file, or '-' for stdin.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. 'warn' hides the visualization notice and 'error' also hides surfaced engine warnings.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one project path, got %d", flagSet.NArg())}
	}

	path := ""
	if *projectFlag != "" {
		path = *projectFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	} else {
		path = os.Getenv(ProjectEnv)
	}
	slog.Debug("Project path determined.", "path", path)

	formatStr := *formatFlag
	if *oFlag != "" {
		formatStr = *oFlag
	}
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
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
		CI:           *ciFlag,
		NPM:          *npmFlag,
		Visualize:    *visualizeFlag,
		ProjectPath:  path,
		OutputFormat: format,
		OutPath:      *outFlag,
		Year:         *yearFlag,
		WarningsPath: *warningsFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
