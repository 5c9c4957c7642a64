package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wlanops/apvlan/pkg/cli"
	"github.com/wlanops/apvlan/pkg/settings"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage persistent settings",
		Long: `Manage persistent settings stored in ~/.apvlan/settings.yaml.

Settings provide defaults for flags:
  - api_url:          RUCKUS One API base URL (--api-url)
  - credentials_file: Credentials file path (-c)
  - log_file:         Run log path (--log-file)
  - audit_file:       Audit log path (--audit-file)

Examples:
  apvlan settings show
  apvlan settings set api-url https://api.eu.ruckus.cloud
  apvlan settings set credentials /etc/apvlan/credentials
  apvlan settings clear`,
	}

	cmd.AddCommand(newSettingsShowCmd(), newSettingsSetCmd(), newSettingsClearCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

			t := cli.NewTable(os.Stdout, "SETTING", "VALUE")
			printSetting := func(name, value string) {
				if value == "" {
					value = "(not set)"
				}
				t.Row(name, value)
			}
			printSetting("api_url", s.APIURL)
			printSetting("credentials_file", s.CredentialsFile)
			printSetting("log_file", s.LogFile)
			printSetting("audit_file", s.AuditFile)
			t.Flush()
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <setting> <value>",
		Short: "Set a setting value",
		Long: `Set a persistent setting value.

Available settings:
  api-url      - RUCKUS One API base URL
  credentials  - Credentials file path
  log-file     - Run log path
  audit-file   - Audit log path

Examples:
  apvlan settings set api-url https://api.eu.ruckus.cloud
  apvlan settings set credentials /etc/apvlan/credentials`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setting := args[0]
			value := args[1]

			s, err := settings.Load()
			if err != nil {
				s = &settings.Settings{}
			}

			switch setting {
			case "api-url", "api_url":
				s.APIURL = value
				fmt.Printf("API base URL set to: %s\n", value)
			case "credentials", "credentials_file":
				s.CredentialsFile = value
				fmt.Printf("Credentials file set to: %s\n", value)
			case "log-file", "log_file":
				s.LogFile = value
				fmt.Printf("Run log path set to: %s\n", value)
			case "audit-file", "audit_file":
				s.AuditFile = value
				fmt.Printf("Audit log path set to: %s\n", value)
			default:
				return fmt.Errorf("unknown setting: %s (api-url, credentials, log-file, audit-file)", setting)
			}

			return s.Save()
		},
	}
}

func newSettingsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &settings.Settings{}
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Println("Settings cleared")
			return nil
		},
	}
}
