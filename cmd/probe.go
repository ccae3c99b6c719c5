package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/sut-eval/internal/sut"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check that the configured service under test answers",
		Long: `Send a sample question to the service under test and report whether it
responds. The exit code is non-zero when the service is unreachable, so the
command can gate evaluation runs in scripts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadEvalConfig(cmd)
			if err != nil {
				return err
			}

			client := sut.NewClient(cfg.SUT)
			probed := sut.Probe(cmd.Context(), client)

			fmt.Printf("Endpoint: %s\n", cfg.SUT.Endpoint())
			fmt.Println(probed.Message)

			if !probed.Reachable {
				return fmt.Errorf("service under test is not reachable")
			}
			return nil
		},
	}
}
