package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wlanops/apvlan/pkg/audit"
	"github.com/wlanops/apvlan/pkg/cli"
	"github.com/wlanops/apvlan/pkg/settings"
)

func newAuditCmd() *cobra.Command {
	var (
		file    string
		outcome string
		venueID string
		runID   string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List recorded row outcomes",
		Long: `List per-row provisioning outcomes from the audit log.

Every processed row is recorded with its outcome (configured, planned,
skipped, failed) and detail. Useful for finding which ports of a large
batch need another pass.

  apvlan audit                        # most recent outcomes
  apvlan audit --outcome failed       # only failed rows
  apvlan audit --venue 38f07d10 -n 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userSettings, err := settings.Load()
			if err != nil {
				userSettings = &settings.Settings{}
			}
			path := file
			if path == "" {
				path = userSettings.GetAuditFile()
			}

			auditLog, err := audit.NewFileLogger(path, audit.RotationConfig{})
			if err != nil {
				return err
			}
			defer auditLog.Close()

			events, err := auditLog.Query(audit.Filter{
				Outcome: audit.Outcome(outcome),
				VenueID: venueID,
				RunID:   runID,
				Limit:   limit,
			})
			if err != nil {
				return fmt.Errorf("querying audit log: %w", err)
			}
			if len(events) == 0 {
				fmt.Println("No matching audit events")
				return nil
			}

			t := cli.NewTable(os.Stdout, "TIME", "ROW", "OUTCOME", "VENUE", "AP", "PORT", "VLAN", "DETAIL")
			for _, e := range events {
				port, vlan := "", ""
				if e.Outcome != audit.OutcomeSkipped {
					port, vlan = strconv.Itoa(e.PortID), strconv.Itoa(e.VLANID)
				}
				t.Row(
					e.Timestamp.Format("2006-01-02 15:04:05"),
					strconv.Itoa(e.Row),
					colorOutcome(e.Outcome),
					e.VenueID,
					e.APSerial,
					port,
					vlan,
					e.Detail,
				)
			}
			t.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Audit log path (default from settings)")
	cmd.Flags().StringVar(&outcome, "outcome", "", "Filter by outcome (configured, planned, skipped, failed)")
	cmd.Flags().StringVar(&venueID, "venue", "", "Filter by venue ID")
	cmd.Flags().StringVar(&runID, "run", "", "Filter by run ID")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most N events")
	return cmd
}

func colorOutcome(o audit.Outcome) string {
	switch o {
	case audit.OutcomeConfigured:
		return cli.Green(string(o))
	case audit.OutcomeFailed:
		return cli.Red(string(o))
	case audit.OutcomeSkipped:
		return cli.Yellow(string(o))
	default:
		return string(o)
	}
}
