package batch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/wlanops/apvlan/pkg/ruckus"
	"github.com/wlanops/apvlan/pkg/util"
)

// newTestClient returns an authenticated client whose port-settings requests
// hit handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *ruckus.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok"})
	})
	mux.HandleFunc("/venues/", handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := ruckus.New(srv.URL, "tenant-1")
	if err := c.Authenticate(context.Background(), "cid", "secret"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	return c
}

func newTestRunner(client *ruckus.Client) *Runner {
	return &Runner{
		Client:   client,
		Log:      logrus.NewEntry(util.NewDiscardLogger()),
		Progress: NopProgress{},
		RunID:    "test-run",
	}
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ports.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing CSV: %v", err)
	}
	return path
}

func TestRun_SkipsInvalidRows(t *testing.T) {
	var puts []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		puts = append(puts, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	csv := "#venue_id,ap_serial,port_id,vlan_id\nV1,AP100,1,10\nV2,AP200,2,5000\n"
	rep, err := newTestRunner(client).Run(context.Background(), writeCSV(t, csv))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if rep.Total != 2 || rep.Configured != 1 || rep.Skipped != 1 || rep.Failed != 0 {
		t.Errorf("report = %+v", rep)
	}
	if len(puts) != 1 {
		t.Fatalf("expected exactly 1 configuration request, got %d", len(puts))
	}
	if puts[0] != "/venues/V1/aps/AP100/lanPorts/1/settings" {
		t.Errorf("request path = %q", puts[0])
	}
}

func TestRun_NoRequestForInvalidVLANs(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	})

	csv := "V1,AP100,1,0\nV1,AP100,1,4095\nV1,AP100,x,100\n,AP100,1,100\nV1,,1,100\n"
	rep, err := newTestRunner(client).Run(context.Background(), writeCSV(t, csv))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if requests != 0 {
		t.Errorf("expected no configuration requests, got %d", requests)
	}
	if rep.Skipped != 5 {
		t.Errorf("Skipped = %d, want 5", rep.Skipped)
	}
}

func TestRun_ServerErrorContinues(t *testing.T) {
	var statuses = []int{http.StatusInternalServerError, http.StatusOK}
	row := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statuses[row])
		row++
	})

	csv := "V1,AP100,1,10\nV2,AP200,2,20\n"
	rep, err := newTestRunner(client).Run(context.Background(), writeCSV(t, csv))
	if err != nil {
		t.Fatalf("Run should not fail on per-row HTTP errors: %v", err)
	}

	if rep.Failed != 1 || rep.Configured != 1 {
		t.Errorf("report = %+v, want 1 failed and 1 configured", rep)
	}
	if row != 2 {
		t.Errorf("expected both rows attempted, got %d requests", row)
	}
}

func TestRun_MissingCSVIsFatal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := newTestRunner(client).Run(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Run should fail when the CSV cannot be opened")
	}
}

func TestRun_DryRunIssuesNoRequests(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	runner := newTestRunner(client)
	runner.DryRun = true

	csv := "V1,AP100,1,10\nV2,AP200,2,20\n"
	rep, err := runner.Run(context.Background(), writeCSV(t, csv))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if requests != 0 {
		t.Errorf("dry run issued %d requests", requests)
	}
	if rep.Configured != 2 {
		t.Errorf("Configured = %d, want 2", rep.Configured)
	}
}

func TestRun_MalformedCSVLineIsPerRow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// The unterminated quote makes the rest of the file unparseable; the
	// first row still configures and the run completes without error.
	csv := "V1,AP100,1,10\n\"V2,AP200,2,20\nV3,AP300,3,30\n"
	rep, err := newTestRunner(client).Run(context.Background(), writeCSV(t, csv))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Configured == 0 || rep.Skipped == 0 {
		t.Errorf("report = %+v, want at least one configured and one skipped", rep)
	}
}
