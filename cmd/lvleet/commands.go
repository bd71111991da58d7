package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvleet/cases"
	"github.com/katalvlaran/lvleet/cyclefixture"
	"github.com/katalvlaran/lvleet/problems/linkedlistcycle"
	"github.com/katalvlaran/lvleet/runner"
	"github.com/katalvlaran/lvleet/trie"
)

// newProblemsCmd lists registered problems with their case counts.
func newProblemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the available problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suites, err := a.suites()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tTITLE\tCASES")
			for _, slug := range a.reg.Slugs() {
				p, _ := a.reg.Get(slug)
				n := 0
				if s, ok := suites[slug]; ok {
					n = len(s.Cases)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\n", p.Slug, p.Title, n)
			}

			return tw.Flush()
		},
	}
}

// newRunCmd runs the named suites, or every suite when no slug is given.
func newRunCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "run [slug...]",
		Short: "Run case suites against the reference solutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1) Select suites.
			all, err := a.suites()
			if err != nil {
				return err
			}
			selected := all
			if len(args) > 0 {
				selected = make(map[string]*cases.Suite, len(args))
				for _, slug := range args {
					s, ok := all[slug]
					if !ok {
						return fmt.Errorf("lvleet: no cases for %q", slug)
					}
					selected[slug] = s
				}
			}

			// 2) Run.
			reports, err := runner.RunAll(cmd.Context(), a.reg, selected, a.cfg.RunnerOptions(a.logger)...)
			if err != nil {
				return err
			}

			// 3) Render.
			switch output {
			case "yaml":
				err = writeYAML(cmd.OutOrStdout(), reports)
			case "text":
				err = writeText(cmd.OutOrStdout(), reports)
			default:
				return fmt.Errorf("lvleet: unknown output format %q", output)
			}
			if err != nil {
				return err
			}

			for _, rep := range reports {
				if rep.Status != runner.StatusSuccess {
					a.logger.Warn("suite did not pass",
						zap.String("problem", rep.Problem),
						zap.String("status", string(rep.Status)),
					)
					return ErrCasesFailed
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")

	return cmd
}

// writeText prints one line per case followed by a suite summary.
func writeText(w io.Writer, reports []*runner.Report) error {
	for _, rep := range reports {
		for _, r := range rep.Results {
			line := fmt.Sprintf("%-8s %s (%v)", r.Status, r.Case, r.Duration)
			if r.Err != "" {
				line += ": " + r.Err
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			if r.Diff != "" {
				if _, err := fmt.Fprintf(w, "  (-want +got)\n%s", r.Diff); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %s, %d passed, %d failed in %v\n",
			rep.Problem, rep.Status, rep.Passed, rep.Failed, rep.Duration); err != nil {
			return err
		}
	}

	return nil
}

// writeYAML encodes the reports as a YAML sequence.
func writeYAML(w io.Writer, reports []*runner.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}

	return enc.Close()
}

// newCycleCmd builds a cyclic list and runs both detectors on it.
func newCycleCmd() *cobra.Command {
	var (
		values []int
		pos    int
	)

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Build a linked list with an optional cycle and detect it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := cyclefixture.CreateCycleList(values, pos)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "list:     %s\n", l)
			fmt.Fprintf(out, "floyd:    %t\n", linkedlistcycle.New().HasCycle(l))
			fmt.Fprintf(out, "visited:  %t\n", linkedlistcycle.NewVisited().HasCycle(l))

			return nil
		},
	}
	cmd.Flags().IntSliceVar(&values, "values", nil, "node values, e.g. 3,2,0,-4")
	cmd.Flags().IntVar(&pos, "pos", cyclefixture.NoCycle, "index the tail links back to, -1 for none")

	return cmd
}

// newTrieCmd inserts the given words and answers search/prefix queries.
func newTrieCmd() *cobra.Command {
	var search, prefix []string

	cmd := &cobra.Command{
		Use:   "trie word...",
		Short: "Insert words into a trie and query it",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := trie.New()
			for _, w := range args {
				t.Insert(w)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "words:    %d\n", t.Len())
			for _, w := range search {
				fmt.Fprintf(out, "search(%q) = %t\n", w, t.Search(w))
			}
			for _, p := range prefix {
				fmt.Fprintf(out, "startsWith(%q) = %t %q\n", p, t.StartsWith(p), t.WordsWithPrefix(p))
			}

			return nil
		},
	}
	cmd.Flags().StringSliceVar(&search, "search", nil, "words to look up")
	cmd.Flags().StringSliceVar(&prefix, "prefix", nil, "prefixes to test")

	return cmd
}
