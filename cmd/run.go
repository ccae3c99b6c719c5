package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/giantswarm/sut-eval/internal/evalcase"
	"github.com/giantswarm/sut-eval/internal/report"
	"github.com/giantswarm/sut-eval/internal/runner"
	"github.com/giantswarm/sut-eval/internal/sut"
)

func newRunCmd() *cobra.Command {
	var (
		outputDir    string
		caseSetsDir  string
		templatePath string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run <case-set>",
		Short: "Evaluate a case set against the service under test",
		Long: `Send every question in a case set to the service under test, score each
answer with the LLM judge, and write the run artifacts: a JSON results file
and a styled spreadsheet report.

The service is probed first; the run refuses to start when the probe fails,
when judge credentials are missing, or when the case set is empty. Failure of
any single case aborts the whole run and discards the partial results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			cfg, err := loadEvalConfig(cmd)
			if err != nil {
				return err
			}

			caseSetName := args[0]
			cs, err := evalcase.Load(caseSetName, caseSetsDir)
			if err != nil {
				return fmt.Errorf("failed to load case set: %w", err)
			}

			if err := ensureTemplate(templatePath); err != nil {
				return err
			}

			fmt.Printf("Case set: %s (%d cases)\n", cs.Name, len(cs.Cases))
			fmt.Printf("Endpoint: %s\n", cfg.SUT.Endpoint())

			probed := sut.Probe(ctx, sut.NewClient(cfg.SUT))
			fmt.Println(probed.Message)
			fmt.Println()

			batch := runner.NewBatch(newCaseRunner(cfg), runner.Preconditions{
				Probed:           probed.Reachable,
				JudgeCredentials: cfg.HasJudgeCredentials(),
			})
			batch.SetProgressFunc(func(current, total int, questionPreview string) {
				fmt.Printf("\r  [%d/%d] %s...", current, total, questionPreview)
			})

			started := time.Now()
			results, err := batch.RunAll(ctx, cs.Cases)
			if err != nil {
				fmt.Println()
				return err
			}

			run, err := runner.WriteRunArtifacts(outputDir, cs.Name, templatePath, results, started)
			if err != nil {
				return err
			}

			passed := 0
			for _, r := range results {
				if r.FinalVerdict == evalcase.VerdictPass {
					passed++
				}
			}

			fmt.Printf("\n\nEvaluation completed.\n")
			fmt.Printf("Run ID: %s\n", run.ID)
			fmt.Printf("Verdicts: %d PASS, %d FAIL\n", passed, len(results)-passed)
			fmt.Printf("Results: %s\n", run.ResultsFile)
			fmt.Printf("Report:  %s\n", run.ReportFile)

			slog.Info("evaluation run complete", "run_id", run.ID, "cases", len(results), "passed", passed)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "results", "Directory for run artifacts")
	cmd.Flags().StringVar(&caseSetsDir, "case-sets-dir", "", "External case sets directory (optional)")
	cmd.Flags().StringVar(&templatePath, "template", report.DefaultTemplateFile, "Spreadsheet template for the report")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall timeout for the run (e.g. 30m, 1h). 0 means no timeout")

	return cmd
}
