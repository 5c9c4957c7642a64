// Package credentials loads RUCKUS One API credentials from a local file
// or an interactive prompt.
//
// The file form is three plain-text lines, in order: tenant ID, client ID,
// client secret. When the file is absent, all three values are prompted for
// interactively; there is no fallback between the two sources.
package credentials

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultPath is the credentials file looked for in the working directory.
const DefaultPath = "credentials"

// Credentials identifies an API client within a tenant. Loaded once at
// startup and immutable for the life of the process.
type Credentials struct {
	TenantID     string
	ClientID     string
	ClientSecret string
}

// FileError reports an unusable credentials file.
type FileError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("credentials file %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("credentials file %s: %s", e.Path, e.Reason)
}

func (e *FileError) Unwrap() error { return e.Err }

// Load reads credentials from path when the file exists, otherwise prompts
// on in/out. Errors from either source are fatal to the run; the caller
// decides on process exit.
func Load(path string, in io.Reader, out io.Writer) (*Credentials, error) {
	if _, err := os.Stat(path); err == nil {
		return FromFile(path)
	}
	return Prompt(in, out)
}

// FromFile reads credentials from a three-line plain-text file.
func FromFile(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Reason: "unreadable", Err: err}
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	if len(lines) < 3 {
		return nil, &FileError{Path: path, Reason: "must have at least 3 lines: tenant ID, client ID, client secret"}
	}

	c := &Credentials{
		TenantID:     lines[0],
		ClientID:     lines[1],
		ClientSecret: lines[2],
	}
	if c.TenantID == "" || c.ClientID == "" || c.ClientSecret == "" {
		return nil, &FileError{Path: path, Reason: "tenant ID, client ID, and client secret must be non-empty"}
	}
	return c, nil
}

// Prompt reads all three credential fields interactively. The client secret
// is read without echo when in is a terminal. Any empty field is an error.
func Prompt(in io.Reader, out io.Writer) (*Credentials, error) {
	reader := bufio.NewReader(in)

	tenantID, err := promptLine(reader, out, "Enter Tenant ID: ")
	if err != nil {
		return nil, err
	}
	clientID, err := promptLine(reader, out, "Enter Client ID: ")
	if err != nil {
		return nil, err
	}
	clientSecret, err := promptSecret(reader, in, out, "Enter Client Secret: ")
	if err != nil {
		return nil, err
	}

	c := &Credentials{TenantID: tenantID, ClientID: clientID, ClientSecret: clientSecret}
	if c.TenantID == "" || c.ClientID == "" || c.ClientSecret == "" {
		return nil, fmt.Errorf("tenant ID, client ID, and client secret are all required")
	}
	return c, nil
}

func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading credential input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptSecret disables echo when reading from a terminal; otherwise it
// falls back to a plain line read (pipes, tests).
func promptSecret(reader *bufio.Reader, in io.Reader, out io.Writer, prompt string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, prompt)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("reading client secret: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}
	return promptLine(reader, out, prompt)
}
