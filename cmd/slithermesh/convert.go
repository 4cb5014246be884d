package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/slithermesh/grid"
)

var convertOutput string

func init() {
	convertCmd := &cobra.Command{
		Use:   "convert IN.obj",
		Short: "Convert an OBJ export to grid JSON",
		Long: `Convert a polyHedronisme OBJ export into the grid JSON format.

The surface is validated (closed, manifold, F + V = E + 2) before any
output is written; a partial or open mesh fails the conversion.

Examples:
  slithermesh convert rhombille.obj
  slithermesh convert rhombille.obj -o rhombille.json`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open obj: %w", err)
	}
	defer in.Close()

	g, err := grid.ParseOBJ(in)
	if err != nil {
		return err
	}
	log.Info().
		Str("grid", g.GridID).
		Int("faces", len(g.Faces)).
		Int("vertices", len(g.Vertices)).
		Msg("obj converted")

	out := os.Stdout
	if convertOutput != "" {
		f, err := os.Create(convertOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return g.WriteJSON(out)
}
