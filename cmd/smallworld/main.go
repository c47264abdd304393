// SPDX-License-Identifier: MIT
//
// smallworld — generate small-world ring topologies, inspect their
// structure, and run darknet location-swap experiments over them.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/darknet"
	"github.com/katalvlaran/smallworld/degree"
	"github.com/katalvlaran/smallworld/graph"
	"github.com/katalvlaran/smallworld/linklength"
	"github.com/katalvlaran/smallworld/sample"
	"github.com/katalvlaran/smallworld/topology"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "smallworld",
		Short:         "Synthesize and analyze small-world ring topologies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newStatsCmd(), newSwapCmd(), newWalkTestCmd())

	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		nodes       int
		mode        string
		fixedDeg    int
		poissonMean float64
		degreeFile  string
		seed        int64
		randomLocs  bool
		out         string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a topology and write it to a graph file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []builder.Option{builder.WithSeed(seed)}
			if randomLocs {
				opts = append(opts, builder.WithRandomLocations())
			}
			switch {
			case degreeFile != "":
				table, err := sample.LoadWeightedDistribution(degreeFile)
				if err != nil {
					return err
				}
				src := degree.NewDistribution(table, rand.New(rand.NewSource(seed+1)))
				opts = append(opts, builder.WithDegreeSource(src))
			case poissonMean > 0:
				opts = append(opts, builder.WithDegreeSource(degree.NewPoisson(poissonMean, uint64(seed))))
			default:
				opts = append(opts, builder.WithDegreeSource(degree.Fixed(fixedDeg)))
			}

			var cons builder.Constructor
			switch mode {
			case "sandberg":
				cons = builder.Sandberg(nodes)
			case "kleinberg":
				cons = builder.Kleinberg(nodes, true)
			case "kleinberg-exact":
				cons = builder.Kleinberg(nodes, false)
			case "uniform-lengths":
				cons = builder.FromLengths(nodes, linklength.Uniform{})
			case "inverse-lengths":
				src, err := linklength.NewInverse(1.0/float64(nodes), graph.MaxDistance)
				if err != nil {
					return err
				}
				cons = builder.FromLengths(nodes, src)
			default:
				return fmt.Errorf("unknown mode %q", mode)
			}

			g, err := builder.BuildGraph(nodes, opts, cons)
			if err != nil {
				return err
			}

			printStats(cmd, topology.GraphStats(g))

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			return g.Write(f)
		},
	}

	cmd.Flags().IntVar(&nodes, "nodes", 4000, "number of nodes")
	cmd.Flags().StringVar(&mode, "mode", "kleinberg", "sandberg | kleinberg | kleinberg-exact | uniform-lengths | inverse-lengths")
	cmd.Flags().IntVar(&fixedDeg, "degree", 12, "fixed target degree")
	cmd.Flags().Float64Var(&poissonMean, "poisson-mean", 0, "Poisson degree mean (overrides --degree when > 0)")
	cmd.Flags().StringVar(&degreeFile, "degree-file", "", "recorded value/occurrence degree table (overrides --degree and --poisson-mean)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().BoolVar(&randomLocs, "random-locations", false, "sorted uniform-random node locations")
	cmd.Flags().StringVar(&out, "out", "graph.swg", "output graph file")

	return cmd
}

func newStatsCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print topology statistics for a graph file",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(in, rand.New(rand.NewSource(0)))
			if err != nil {
				return err
			}
			printStats(cmd, topology.GraphStats(g))

			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "graph.swg", "input graph file")

	return cmd
}

func newSwapCmd() *cobra.Command {
	var (
		in          string
		seed        int64
		attempts    int
		uniform     bool
		walkHops    int
		uniformWalk bool
	)

	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Run darknet location-swap rounds over a graph file",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			g, err := readGraph(in, rng)
			if err != nil {
				return err
			}
			sim, err := darknet.NewSimulator(g, rng)
			if err != nil {
				return err
			}
			accepted := sim.SwapRound(attempts, uniform, walkHops, uniformWalk)
			cmd.Printf("accepted %d of %d swap attempts\n", accepted, attempts)

			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "graph.swg", "input graph file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&attempts, "attempts", 10000, "swap attempts")
	cmd.Flags().BoolVar(&uniform, "uniform", false, "centralized uniform target selection")
	cmd.Flags().IntVar(&walkHops, "walk-hops", 20, "random-walk hops for decentralized selection")
	cmd.Flags().BoolVar(&uniformWalk, "uniform-walk", false, "skip the walk's degree-bias correction")

	return cmd
}

func newWalkTestCmd() *cobra.Command {
	var (
		in      string
		seed    int64
		walks   int
		hops    int
		uniform bool
	)

	cmd := &cobra.Command{
		Use:   "walktest",
		Short: "Tally random-walk terminal nodes over a graph file",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			g, err := readGraph(in, rng)
			if err != nil {
				return err
			}
			sim, err := darknet.NewSimulator(g, rng)
			if err != nil {
				return err
			}
			freq, originReturns := sim.WalkDistribution(walks, hops, uniform)

			min, max := freq[0], freq[0]
			for _, f := range freq[1:] {
				if f < min {
					min = f
				}
				if f > max {
					max = f
				}
			}
			cmd.Printf("origin selected as destination on %d walks out of %d\n", originReturns, walks)
			cmd.Printf("terminal tally per node: min %d, max %d, mean %.2f\n",
				min, max, float64(walks)/float64(len(freq)))

			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "graph.swg", "input graph file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&walks, "walks", 1000000, "number of walks")
	cmd.Flags().IntVar(&hops, "hops", 20, "hops per walk")
	cmd.Flags().BoolVar(&uniform, "uniform", true, "uniform walk (no degree-bias correction)")

	return cmd
}

func readGraph(path string, rng *rand.Rand) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graph.Read(f, rng)
}

func printStats(cmd *cobra.Command, st topology.Stats) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Size:\t%d\n", st.Size)
	fmt.Fprintf(w, "Edges:\t%d\n", st.Edges)
	fmt.Fprintf(w, "Min degree:\t%d\n", st.MinDegree)
	fmt.Fprintf(w, "Max degree:\t%d\n", st.MaxDegree)
	fmt.Fprintf(w, "Mean degree:\t%.4f\n", st.Degree.Mean)
	fmt.Fprintf(w, "Degree stddev:\t%.4f\n", st.Degree.StdDev)
	fmt.Fprintf(w, "Mean local clustering coefficient:\t%.6f\n", st.LocalCC.Mean)
	fmt.Fprintf(w, "Global clustering coefficient:\t%.6f\n", st.GlobalClusterCoeff)
	w.Flush()
}
