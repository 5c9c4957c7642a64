package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFile(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom should tolerate a missing file: %v", err)
	}
	if *s != (Settings{}) {
		t.Errorf("expected empty settings, got %+v", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.yaml")

	s := &Settings{
		APIURL:          "https://api.eu.ruckus.cloud",
		CredentialsFile: "/etc/apvlan/credentials",
		LogFile:         "/var/log/apvlan.log",
	}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if *loaded != *s {
		t.Errorf("round trip: got %+v, want %+v", loaded, s)
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("api_url: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom should fail on malformed YAML")
	}
}

func TestFallbacks(t *testing.T) {
	s := &Settings{}
	if got := s.GetCredentialsFile(); got != DefaultCredentialsFile {
		t.Errorf("GetCredentialsFile() = %q", got)
	}
	if got := s.GetLogFile(); got != DefaultLogFile {
		t.Errorf("GetLogFile() = %q", got)
	}
	if got := s.GetAuditFile(); got != DefaultAuditFile {
		t.Errorf("GetAuditFile() = %q", got)
	}

	s.LogFile = "custom.log"
	if got := s.GetLogFile(); got != "custom.log" {
		t.Errorf("GetLogFile() = %q, want override", got)
	}
}

func TestClear(t *testing.T) {
	s := &Settings{APIURL: "https://example.com", LogFile: "x.log"}
	s.Clear()
	if *s != (Settings{}) {
		t.Errorf("Clear left %+v", s)
	}
}
