/*
File    : curvelang/cmd/curvelang/main.go
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/curvelang/curvelang/eval"
	"github.com/curvelang/curvelang/render"
	"github.com/curvelang/curvelang/repl"
)

const (
	version = "v0.1.0"
	author  = "curvelang"
	license = "MIT"
	line    = "----------------------------------------------------------------"
	prompt  = "curve >>> "
)

const banner = `
   ___                     _
  / __|_  _ _ ___ _____   | |   __ _ _ _  __ _
 | (__| || | '_\ V / -_)  | |__/ _' | ' \/ _' |
  \___|\_,_|_|  \_/\___|  |____\__,_|_||_\__, |
                                          |___/
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "curvelang",
		Short: "curvelang renders parametric curves described in a small drawing language",
		Long: `curvelang parses a program of ORIGIN/SCALE/ROT/FOR/DEF/LET statements,
drives a parametric loop over the generated expressions, applies the
configured affine transform, culls to the viewport, and renders the
resulting points.`,
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var out string
	var width, height int

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a curvelang program and render it to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			red := color.New(color.FgRed)

			f, err := os.Open(args[0])
			if err != nil {
				red.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
				os.Exit(1)
			}
			defer f.Close()

			outFile, err := os.Create(out)
			if err != nil {
				red.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
				os.Exit(1)
			}
			defer outFile.Close()

			sink := render.NewPNGSink(outFile)
			sink.Width, sink.Height = width, height

			if err := eval.Run(f, sink); err != nil {
				red.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "out.png", "path to write the rendered PNG to")
	cmd.Flags().IntVar(&width, "width", 512, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 512, "canvas height in pixels")
	return cmd
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive curvelang session",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.NewRepl(banner, version, author, line, license, prompt)
			r.Start(os.Stdout)
			return nil
		},
	}
}
