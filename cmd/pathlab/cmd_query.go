package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/network"
	"github.com/katalvlaran/pathlab/report"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		from, to int64
		all      bool
		limit    int
		steps    bool
	)
	cmd := &cobra.Command{
		Use:   "path <file>",
		Short: "Shortest distance and path between two nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var (
				res   dijkstra.Result
				trace []network.Step
			)
			if steps {
				res, trace = n.DistanceSteps(ctx, from, to)
			} else {
				res = n.Distance(ctx, from, to)
			}

			p := report.Path{From: from, To: to, Code: res.Code.String(), Path: res.Path, Steps: trace}
			switch {
			case res.Code.OK():
				d := res.Distance
				p.Distance = &d
				if all {
					p.Paths, _ = n.AllPaths(ctx, from, to, limit)
				}
			case res.Code == dijkstra.Unreachable:
				if p.SourceComponent, err = n.Reachable(ctx, from); err != nil {
					return err
				}
			}
			if err := a.out.Path(p); err != nil {
				return err
			}

			switch res.Code {
			case dijkstra.NodeNotFound, dijkstra.InternalError:
				return fmt.Errorf("%w: %d -> %d: %s", errQuery, from, to, res.Code)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.Int64Var(&from, "from", 0, "Source node id")
	f.Int64Var(&to, "to", 0, "Target node id")
	f.BoolVar(&all, "all", false, "List every tied shortest path")
	f.IntVar(&limit, "limit", 0, "Cap on --all paths (0 means no cap)")
	f.BoolVar(&steps, "steps", false, "Include the engine's visit sequence")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Node, edge, degree and connectivity statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			return a.out.Stats(n.Summary())
		},
	}
}

func newNeighborsCmd(a *app) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "neighbors <file>",
		Short: "Edges incident to one node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			if err := a.out.Neighbors(report.NeighborsOf(id, n.Neighbors(id))); err != nil {
				return err
			}
			if !n.HasNode(id) {
				return fmt.Errorf("%w: unknown node %d", errQuery, id)
			}

			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Node id")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components <file>",
		Short: "Connected components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			return a.out.Components(n.Components())
		},
	}
}
