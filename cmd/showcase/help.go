package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: showcase [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  update     Regenerate the project list in the README (default)")
	fmt.Fprintln(w, "  check      Validate markers and projects without fetching")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'showcase help <command>' for details on a specific command.")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
}

func printSourceFlags(w io.Writer) {
	fmt.Fprintln(w, "Source:")
	fmt.Fprintln(w, "  -r, --readme <path>       README to update (default README.md)")
	fmt.Fprintln(w, "  -s, --section <name>      Marker section (default INSERT-PROJECTS)")
	fmt.Fprintln(w, "  -p, --projects <path>     Projects file, JSON or YAML (default projects.json)")
	fmt.Fprintln(w, "      --strict              Reject duplicate or misordered markers")
}

// printUpdateUsage prints usage for the update command.
func printUpdateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: showcase update [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch a preview for every project and replace the lines between")
	fmt.Fprintln(w, "<!-- SECTION:START --> and <!-- SECTION:END --> in the README.")
	fmt.Fprintln(w)
	printSourceFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch:")
	fmt.Fprintln(w, "  -w, --workers <n>         Concurrent previews (0 = one per project)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-request timeout, e.g. 10s (0 = none)")
	fmt.Fprintln(w, "      --user-agent <s>      HTTP User-Agent header")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render:")
	fmt.Fprintln(w, "      --image-height <n>    Preview image height in pixels (1-2000)")
	fmt.Fprintln(w, "      --template <s>        Template name (project, compact) or file path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --dry-run             Print the updated README instead of writing it")
	fmt.Fprintln(w, "      --html <path>         Also write an HTML preview of the README")
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SHOWCASE_CONFIG, SHOWCASE_README, SHOWCASE_SECTION, SHOWCASE_PROJECTS,")
	fmt.Fprintln(w, "  SHOWCASE_WORKERS, SHOWCASE_TIMEOUT, SHOWCASE_USER_AGENT, SHOWCASE_STRICT,")
	fmt.Fprintln(w, "  SHOWCASE_IMAGE_HEIGHT, SHOWCASE_TEMPLATE, SHOWCASE_LOG_LEVEL, SHOWCASE_LOG_FORMAT")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: showcase check [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate README markers strictly and parse the projects file.")
	fmt.Fprintln(w, "No network requests are made.")
	fmt.Fprintln(w)
	printSourceFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: showcase config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after merging defaults, the config file,")
	fmt.Fprintln(w, "SHOWCASE_* environment variables and flags. Accepts the update flags.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "update":
		printUpdateUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: showcase version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: showcase help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
