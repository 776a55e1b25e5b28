package probe

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"pingmon/internal/config"
	"pingmon/internal/models"
)

// New builds the prober named by kind and verifies the probe capability is
// usable on this host. A missing capability is a configuration error the
// caller should treat as fatal.
func New(kind string, count int, timeout time.Duration) (models.Prober, error) {
	switch kind {
	case config.ProbeExec:
		if _, err := exec.LookPath("ping"); err != nil {
			return nil, fmt.Errorf("ping binary not available: %w", err)
		}
		return &ExecProber{Count: count, Timeout: timeout}, nil
	case config.ProbeNative:
		return &NativeProber{Count: count, Timeout: timeout}, nil
	default:
		return nil, fmt.Errorf("unknown probe type %q", kind)
	}
}

// ExecProber shells out to the system ping binary, one burst of echo
// requests per probe.
type ExecProber struct {
	Count   int
	Timeout time.Duration
}

// Probe runs one ping burst and returns the combined output. A non-nil
// error means the target did not answer or could not be resolved; that is
// a normal per-sample outcome, not a fault. The command is never killed
// mid-flight: ping's own timeout bounds the call.
func (p *ExecProber) Probe(target string) (string, error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("ping", "-n", strconv.Itoa(p.Count),
			"-w", strconv.Itoa(int(p.Timeout.Milliseconds())), target)
	} else {
		seconds := int(p.Timeout.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		cmd = exec.Command("ping", "-c", strconv.Itoa(p.Count),
			"-W", strconv.Itoa(seconds), target)
	}

	output, err := cmd.CombinedOutput()
	return string(output), err
}
