package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/builder"
)

var generateKinds = []string{"path", "cycle", "star", "wheel", "complete", "grid", "random"}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n, rows, cols int
		p             float64
		seed          int64
		minW, maxW    int64
		offset        int64
	)
	cmd := &cobra.Command{
		Use:   "generate <" + strings.Join(generateKinds, "|") + ">",
		Short: "Print a fixture graph as an edge list",
		Long: `generate prints a deterministic fixture topology in the format that the
other commands read. With --min-weight < --max-weight, edge weights are drawn
uniformly from that range using --seed.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: generateKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			var con builder.Constructor
			switch kind {
			case "path":
				con = builder.Path(n)
			case "cycle":
				con = builder.Cycle(n)
			case "star":
				con = builder.Star(n)
			case "wheel":
				con = builder.Wheel(n)
			case "complete":
				con = builder.Complete(n)
			case "grid":
				con = builder.Grid(rows, cols)
			case "random":
				con = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("unknown kind %q (want one of %s)", kind, strings.Join(generateKinds, ", "))
			}
			if minW < 0 || maxW < minW {
				return fmt.Errorf("%w: weight range [%d, %d]", builder.ErrOptionViolation, minW, maxW)
			}

			opts := []builder.Option{builder.WithSeed(seed), builder.WithOffset(offset)}
			if minW == maxW {
				opts = append(opts, builder.WithConstantWeight(minW))
			} else {
				opts = append(opts, builder.WithUniformWeight(minW, maxW))
			}

			bw := bufio.NewWriter(cmd.OutOrStdout())
			if err := builder.Build(&lineSink{w: bw}, opts, con); err != nil {
				return err
			}
			a.log.Debug("fixture generated", "kind", kind, "seed", seed)

			return bw.Flush()
		},
	}
	f := cmd.Flags()
	f.IntVar(&n, "n", 5, "Vertex count (path, cycle, star, wheel, complete, random)")
	f.IntVar(&rows, "rows", 3, "Grid rows")
	f.IntVar(&cols, "cols", 3, "Grid columns")
	f.Float64Var(&p, "p", 0.5, "Edge probability for random")
	f.Int64Var(&seed, "seed", 1, "Random seed")
	f.Int64Var(&minW, "min-weight", 1, "Lowest edge weight")
	f.Int64Var(&maxW, "max-weight", 1, "Highest edge weight")
	f.Int64Var(&offset, "offset", 1, "Id of the first vertex")

	return cmd
}
