package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wlanops/apvlan/pkg/audit"
	"github.com/wlanops/apvlan/pkg/batch"
	"github.com/wlanops/apvlan/pkg/credentials"
	"github.com/wlanops/apvlan/pkg/ruckus"
	"github.com/wlanops/apvlan/pkg/settings"
	"github.com/wlanops/apvlan/pkg/util"
)

// runBatch wires the components and executes one batch run. All fatal
// conditions come back as errors; only main decides on process exit.
// Per-row failures are reported but never returned.
func runBatch(ctx context.Context, csvPath string) error {
	userSettings, err := settings.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load settings: %v\n", err)
		userSettings = &settings.Settings{}
	}

	logPath := logFileFlag
	if logPath == "" {
		logPath = userSettings.GetLogFile()
	}
	log, logCloser, err := util.NewLogger(logPath)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	if verboseFlag {
		util.SetLogLevel(log, "debug")
	}

	runID := uuid.NewString()
	entry := log.WithField("run_id", runID)

	credPath := credentialsFlag
	if credPath == "" {
		credPath = userSettings.GetCredentialsFile()
	}
	creds, err := credentials.Load(credPath, os.Stdin, os.Stderr)
	if err != nil {
		entry.Errorf("loading credentials: %v", err)
		return err
	}

	apiURL := apiURLFlag
	if apiURL == "" {
		apiURL = userSettings.APIURL
	}
	if apiURL == "" {
		apiURL = ruckus.DefaultBaseURL
	}

	client := ruckus.New(apiURL, creds.TenantID, ruckus.WithLogger(entry))
	if !dryRunFlag {
		if err := client.Authenticate(ctx, creds.ClientID, creds.ClientSecret); err != nil {
			return fmt.Errorf("%w (see %s for details)", err, logPath)
		}
	}

	auditLog := openAudit(userSettings, entry)
	if auditLog != nil {
		defer auditLog.Close()
	}

	runner := &batch.Runner{
		Client:   client,
		Log:      entry,
		Progress: batch.NewConsoleProgress(),
		Audit:    auditLog,
		RunID:    runID,
		DryRun:   dryRunFlag,
	}
	_, err = runner.Run(ctx, csvPath)
	return err
}

// openAudit opens the audit log, warning rather than failing: a run without
// audit records is degraded, not broken.
func openAudit(userSettings *settings.Settings, log *logrus.Entry) *audit.FileLogger {
	path := auditFileFlag
	if path == "" {
		path = userSettings.GetAuditFile()
	}
	auditLog, err := audit.NewFileLogger(path, audit.RotationConfig{
		MaxSize:    10 * 1024 * 1024, // 10MB
		MaxBackups: 10,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit logging disabled: %v\n", err)
		log.Warnf("audit logging disabled: %v", err)
		return nil
	}
	return auditLog
}
