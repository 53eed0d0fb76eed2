package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Write the render tree as YAML",
		Long: `Build the scene, optionally open one prompt and advance time, then
write the render tree as YAML.

Flags:
  -o FILE          Write to FILE instead of stdout
  --prompt N       Open prompt N (1 fill-in, 2 option, 3 ok, 4 custom)
  --after DURATION Advance the frame loop before dumping (e.g. 3s)`,
		Usage: "scenedemo dump [-o FILE] [--prompt N] [--after DURATION]",
		Run:   runDump,
	})
}

type dumpOptions struct {
	output string
	prompt int
	after  time.Duration
}

func parseDumpArgs(args []string) (dumpOptions, error) {
	var o dumpOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if i+1 >= len(args) {
			return o, fmt.Errorf("unexpected argument %q", arg)
		}
		value := args[i+1]
		i++
		switch arg {
		case "-o", "--output":
			o.output = value
		case "--prompt":
			if _, err := fmt.Sscanf(value, "%d", &o.prompt); err != nil || o.prompt < 1 || o.prompt > 4 {
				return o, fmt.Errorf("--prompt must be 1-4, got %q", value)
			}
		case "--after":
			d, err := time.ParseDuration(value)
			if err != nil {
				return o, fmt.Errorf("invalid --after: %w", err)
			}
			o.after = d
		default:
			return o, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return o, nil
}

func runDump(opts *Options, args []string) error {
	dopts, err := parseDumpArgs(args)
	if err != nil {
		return err
	}
	res, err := opts.Resources()
	if err != nil {
		return err
	}

	d := newDemo(res, io.Discard)
	if dopts.prompt > 0 {
		d.togglePrompt(dopts.prompt - 1)
	}
	if dopts.after > 0 {
		d.loop.Step(dopts.after)
	}

	var buf bytes.Buffer
	if err := writeYAML(&buf, d); err != nil {
		return err
	}
	if dopts.output == "" {
		_, err = opts.Out.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(dopts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dopts.output, err)
	}
	return nil
}

func writeYAML(w io.Writer, d *demo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.render()); err != nil {
		return fmt.Errorf("failed to encode render tree: %w", err)
	}
	return enc.Close()
}
