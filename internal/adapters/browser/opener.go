package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener implements ports.URLOpener
type Opener struct {
	goos string
}

// NewOpener creates an opener for the running platform
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// Open hands rawURL to the platform's default handler
func (o *Opener) Open(rawURL string) error {
	cmd, err := o.Command(rawURL)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the exec.Cmd that opens rawURL
func (o *Opener) Command(rawURL string) (*exec.Cmd, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", rawURL), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", rawURL), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", rawURL), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// ValidateURL accepts absolute http and https URLs only. Local placeholders
// such as the pokeball sprite are rejected.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("not a web URL: %s", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host: %s", rawURL)
	}
	return nil
}
