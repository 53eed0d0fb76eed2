// Package cmd implements the scenedemo commands.
//
// A root command dispatches to subcommands (run, dump). Global flags select
// a custom resource table shared by every widget in the scene.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/sceneui/pkg/errors"
	"github.com/go-drift/sceneui/pkg/resources"
)

// Version information set at build time.
var Version = "0.1.0-dev"

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(opts *Options, args []string) error
}

// Options are the global flags.
type Options struct {
	// ResourcesPath is a YAML resource table replacing the built-in one.
	ResourcesPath string
	// AtlasPath is an atlas image whose size overrides the table's sheet.
	AtlasPath string
	// Verbose logs reported errors with their kind and stack.
	Verbose bool

	Out io.Writer
}

// Resources loads the resource table selected by the flags.
func (o *Options) Resources() (*resources.Table, error) {
	table := resources.Default()
	if o.ResourcesPath != "" {
		f, err := os.Open(o.ResourcesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open resource table: %w", err)
		}
		defer f.Close()
		if table, err = resources.Load(f); err != nil {
			return nil, err
		}
	}
	if o.AtlasPath != "" {
		f, err := os.Open(o.AtlasPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open atlas image: %w", err)
		}
		defer f.Close()
		w, h, err := resources.SheetSize(f)
		if err != nil {
			return nil, err
		}
		if table, err = table.WithSheet(w, h); err != nil {
			return nil, err
		}
	}
	return table, nil
}

var rootCmd = &Command{
	Name:  "scenedemo",
	Short: "Widget showcase",
	Long: `scenedemo builds the showcase scene: the three ready-made prompts, a
custom prompt, an announcement, a loading indicator, icons, a counter, a
corner label and a progress bar.

Use "scenedemo <command> --help" for more information about a command.`,
	Usage: "scenedemo <command> [flags]",
}

var (
	commands     = make(map[string]*Command)
	commandOrder []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	commandOrder = append(commandOrder, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	opts := &Options{Out: os.Stdout}

	var filtered []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp(opts.Out)
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version", "version":
			if len(filtered) == 0 {
				fmt.Fprintf(opts.Out, "scenedemo version %s\n", Version)
				return nil
			}
			filtered = append(filtered, arg)
		case "--verbose":
			opts.Verbose = true
		case "--resources", "--atlas":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", arg)
			}
			setPathFlag(opts, arg, args[i+1])
			i++
		default:
			if name, value, ok := strings.Cut(arg, "="); ok && (name == "--resources" || name == "--atlas") {
				setPathFlag(opts, name, value)
				continue
			}
			filtered = append(filtered, arg)
		}
	}

	errors.SetHandler(&errors.LogHandler{Verbose: opts.Verbose})

	if len(filtered) == 0 {
		printHelp(opts.Out)
		return nil
	}

	name := filtered[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := filtered[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(opts.Out, cmd)
			return nil
		}
	}
	return cmd.Run(opts, cmdArgs)
}

func setPathFlag(opts *Options, name, value string) {
	if name == "--atlas" {
		opts.AtlasPath = value
		return
	}
	opts.ResourcesPath = value
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range commandOrder {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --resources FILE     Load the resource table from FILE")
	fmt.Fprintln(w, "  --atlas IMAGE        Take the atlas size from IMAGE (png, jpeg, gif, bmp, tiff, webp)")
	fmt.Fprintln(w, "  --verbose            Log errors with kind and stack trace")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  scenedemo run                  Interactive view")
	fmt.Fprintln(w, "  scenedemo dump -o scene.yaml   Write the render tree as YAML")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
