// Apvlan - bulk AP LAN port VLAN provisioning for RUCKUS One
//
// Reads a CSV of port assignments and applies each row to the RUCKUS One
// cloud API: one OAuth2 client-credentials authentication per run, then one
// port-settings request per valid row. Rows are processed strictly in file
// order, one request at a time; a bad row is skipped and logged, never
// aborting the batch.
//
// CSV format (fixed column order, optional leading '#' comment lines):
//
//	# venue_id, ap_serial, port_id, vlan_id
//	38f07d10...,982309000123,1,100
//	38f07d10...,982309000456,2,200
//
// Credentials come from a three-line file (tenant ID, client ID, client
// secret) or an interactive prompt when the file is absent.
//
// Usage:
//
//	apvlan ports.csv                 # apply all rows
//	apvlan ports.csv --dry-run       # validate only, no API calls
//	apvlan audit --outcome failed    # inspect past row outcomes
//	apvlan settings set api-url https://api.eu.ruckus.cloud
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wlanops/apvlan/pkg/version"
)

var (
	credentialsFlag string
	apiURLFlag      string
	logFileFlag     string
	auditFileFlag   string
	verboseFlag     bool
	dryRunFlag      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "apvlan <ports.csv>",
	Short: "Bulk AP LAN port VLAN provisioning for RUCKUS One",
	Long: `Apvlan bulk-configures AP switch port VLANs on RUCKUS One from a CSV file.

Each row assigns one untagged VLAN to one AP LAN port:

  venue_id, ap_serial, port_id, vlan_id

Leading '#' comment lines are ignored. Invalid rows (missing identifiers,
non-numeric port or VLAN, VLAN outside 1-4094) are skipped with a reason;
a failed API call is reported and the run continues with the next row.
Per-row failures do not change the exit code — only a usage error, bad
credentials, failed authentication, or an unreadable CSV do.

  apvlan ports.csv
  apvlan ports.csv --dry-run -c /etc/apvlan/credentials`,
	Args:              cobra.ExactArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&credentialsFlag, "credentials", "c", "", "Credentials file path (default \"credentials\")")
	rootCmd.Flags().StringVar(&apiURLFlag, "api-url", "", "RUCKUS One API base URL")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "Run log path (default \"apvlan.log\")")
	rootCmd.Flags().StringVar(&auditFileFlag, "audit-file", "", "Audit log path (default \"apvlan_audit.log\")")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Validate rows without calling the API")

	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version.Version == "dev" {
				fmt.Println("apvlan dev build (use 'make build' for version info)")
			} else {
				fmt.Printf("apvlan %s (%s)\n", version.Version, version.GitCommit)
			}
		},
	})
}
