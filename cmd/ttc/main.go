package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"ttc/common"
	"ttc/convert"
	"ttc/misc"
	"ttc/state"
)

const sourceHelp = `
SOURCE:
    TTML document(s) to compile (.ttml, .dfxp, .xml), one of:
        path to a file: "[path_to_file]file.ttml"
        path to a directory: "[path_to_directory]directory" - recursively compile all documents and zip archives under directory
        path to archive: "[path_to_archive]archive.zip" - compile all documents in archive
        path to archive with path inside: "[path_to_archive]archive.zip[path_in_archive]" - compile documents under archive path

    Archives inside archives are not looked into.

DESTINATION:
    always a path, output file name(s) and extension are derived from configuration and --to
    if absent - current working directory
`

const inspectHelp = `
DOCUMENT:
    path to a single TTML document

Prints document parameters and table of compiled cues. With --at cues showing
at that moment are marked with "*", cue which would be picked as current with
"-" (or "**" when it is showing too).
`

const dumpconfigHelp = `
DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "TTML subtitle compiler",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "compile",
				Usage:        "Compiles TTML document(s) into styled cues",
				OnUsageError: usageErrorHandler,
				Action:       convert.Run,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to",
						Usage: "output `TYPE`, overrides configuration (supported types: " + strings.Join(common.OutputFmtNames(), ", ") + ")"},
					&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "when producing output do not keep input directory structure"},
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exits, overwrite files"},
				},
				ArgsUsage:          "SOURCE [DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp,
			},
			{
				Name:         "inspect",
				Usage:        "Compiles single TTML document and prints its cues",
				OnUsageError: usageErrorHandler,
				Action:       convert.Inspect,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "at", Usage: "mark cues showing at `TIME` (seconds or HH:MM:SS.fff)"},
					&cli.BoolFlag{Name: "tree", Usage: "print complete compiled document instead of cue table"},
				},
				ArgsUsage:          "DOCUMENT",
				CustomHelpTemplate: cli.CommandHelpTemplate + inspectHelp,
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError:       usageErrorHandler,
				Action:             outputConfiguration,
				ArgsUsage:          "DESTINATION",
				CustomHelpTemplate: cli.CommandHelpTemplate + dumpconfigHelp,
			},
		},
	}

	var err error
	// os.Exit skips deferred calls, this must stay the only one
	defer func() {
		stop()
		if err != nil {
			// log may be not ready yet or closed already
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
