package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/report"
	"github.com/giantswarm/sut-eval/internal/runner"
)

func newReevalCmd() *cobra.Command {
	var (
		outputDir    string
		caseSetsDir  string
		templatePath string
	)

	cmd := &cobra.Command{
		Use:   "reeval <run-id> <case-id>",
		Short: "Re-evaluate a single case of a past run",
		Long: `Re-run one case from a completed run and replace its result in place. The
run's results file and spreadsheet report are regenerated; results for the
other cases are untouched. When the re-evaluation fails, the run files are
left exactly as they were.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadEvalConfig(cmd)
			if err != nil {
				return err
			}

			runID := args[0]
			caseID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("case ID must be numeric, got %q", args[1])
			}

			run, err := runner.LoadRun(outputDir, runID)
			if err != nil {
				return err
			}

			cs, err := evalcase.Load(run.CaseSet, caseSetsDir)
			if err != nil {
				return fmt.Errorf("failed to load case set %q: %w", run.CaseSet, err)
			}

			var tc *evalcase.TestCase
			for i := range cs.Cases {
				if cs.Cases[i].ID == caseID {
					tc = &cs.Cases[i]
					break
				}
			}
			if tc == nil {
				return fmt.Errorf("case %d not found in case set %q", caseID, run.CaseSet)
			}

			fmt.Printf("Re-evaluating case %d: %s\n", tc.ID, tc.Question)

			results, err := runner.ReEvaluate(cmd.Context(), newCaseRunner(cfg), run.Results, *tc, cfg.HasJudgeCredentials())
			if err != nil {
				return err
			}

			if err := ensureTemplate(templatePath); err != nil {
				return err
			}
			if err := runner.RewriteRun(run, templatePath, results); err != nil {
				return err
			}

			for _, r := range results {
				if r.ID == caseID {
					fmt.Printf("Verdict: %s (average score %.2f)\n", r.FinalVerdict, r.AverageScore)
				}
			}
			fmt.Printf("Updated: %s\n", run.ResultsFile)
			fmt.Printf("Updated: %s\n", run.ReportFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "results", "Directory for run artifacts")
	cmd.Flags().StringVar(&caseSetsDir, "case-sets-dir", "", "External case sets directory (optional)")
	cmd.Flags().StringVar(&templatePath, "template", report.DefaultTemplateFile, "Spreadsheet template for the report")

	return cmd
}
