package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wlanops/apvlan/pkg/audit"
	"github.com/wlanops/apvlan/pkg/ruckus"
)

// Runner streams CSV rows through validation and port configuration,
// strictly sequentially and in file order. Row outcomes are independent:
// nothing is accumulated across rows beyond the counters in Report.
type Runner struct {
	Client   *ruckus.Client
	Log      *logrus.Entry
	Progress ProgressReporter
	Audit    *audit.FileLogger // optional; audit failures never fail the run
	RunID    string
	DryRun   bool
}

// Report summarizes a batch run.
type Report struct {
	Total      int
	Configured int
	Skipped    int
	Failed     int
}

// Run processes the CSV at csvPath. The returned error covers only fatal
// conditions (the file cannot be opened); per-row failures are counted in
// the Report and never abort the batch.
func (r *Runner) Run(ctx context.Context, csvPath string) (*Report, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		r.Log.Errorf("opening CSV %s: %v", csvPath, err)
		return nil, fmt.Errorf("opening CSV %s: %w", csvPath, err)
	}
	defer f.Close()

	r.Log.Infof("opened CSV file: %s", csvPath)
	r.Progress.RunStart(csvPath, r.DryRun)
	start := time.Now()

	reader := csv.NewReader(SkipLeadingComments(f))
	reader.FieldsPerRecord = -1 // field count validated per row
	reader.TrimLeadingSpace = true

	rep := &Report{}
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rep.Total++

		if err != nil {
			// Malformed CSV line (bad quoting etc). Per-row, not fatal.
			r.skip(row, record, &RowError{Reason: ReasonParseError, Err: err}, rep)
			continue
		}

		r.Log.Infof("processing row %d: %v", row, record)

		pa, perr := ParseRow(record)
		if perr != nil {
			r.skip(row, record, perr, rep)
			continue
		}

		if r.DryRun {
			rep.Configured++
			r.Progress.RowPlanned(row, pa)
			r.record(audit.NewEvent(r.RunID, row, audit.OutcomePlanned).
				WithPort(pa.VenueID, pa.APSerial, pa.PortID, pa.VLANID))
			continue
		}

		if err := r.Client.ConfigureLANPort(ctx, pa.VenueID, pa.APSerial, pa.PortID, pa.VLANID); err != nil {
			rep.Failed++
			r.Log.Errorf("row %d: failed to configure port %d on %s at venue %s: %v",
				row, pa.PortID, pa.APSerial, pa.VenueID, err)
			r.Progress.RowFailed(row, pa, err)
			r.record(audit.NewEvent(r.RunID, row, audit.OutcomeFailed).
				WithPort(pa.VenueID, pa.APSerial, pa.PortID, pa.VLANID).
				WithDetail(err.Error()))
			continue
		}

		rep.Configured++
		r.Progress.RowConfigured(row, pa)
		r.record(audit.NewEvent(r.RunID, row, audit.OutcomeConfigured).
			WithPort(pa.VenueID, pa.APSerial, pa.PortID, pa.VLANID))
	}

	r.Progress.RunEnd(rep, time.Since(start))
	r.Log.Infof("batch complete: %d rows, %d configured, %d skipped, %d failed",
		rep.Total, rep.Configured, rep.Skipped, rep.Failed)
	return rep, nil
}

func (r *Runner) skip(row int, record []string, err error, rep *Report) {
	rep.Skipped++

	reason := err.Error()
	var rowErr *RowError
	if errors.As(err, &rowErr) {
		reason = rowErr.Reason
	}

	r.Log.Warnf("skipping row %d (%s): %v | row: %v", row, reason, err, record)
	r.Progress.RowSkipped(row, record, reason)
	r.record(audit.NewEvent(r.RunID, row, audit.OutcomeSkipped).WithDetail(err.Error()))
}

// record writes an audit event, warning on failure rather than surfacing it.
func (r *Runner) record(event *audit.Event) {
	if r.Audit == nil {
		return
	}
	if err := r.Audit.Log(event); err != nil {
		r.Log.Warnf("audit: %v", err)
	}
}
