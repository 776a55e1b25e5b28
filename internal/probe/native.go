package probe

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-ping/ping"
)

// NativeProber sends ICMP echo requests in-process, for hosts where no
// ping binary is installed.
type NativeProber struct {
	Count   int
	Timeout time.Duration
}

// Probe sends one burst of echo requests and returns a summary in the
// same shape the system ping prints, so the result parser stays the
// single point interpreting probe output.
func (p *NativeProber) Probe(target string) (string, error) {
	pinger, err := ping.NewPinger(target)
	if err != nil {
		return "", err
	}
	pinger.Count = p.Count
	pinger.Timeout = p.Timeout
	// unprivileged UDP ping works on Linux/macOS; Windows needs raw sockets
	pinger.SetPrivileged(runtime.GOOS == "windows")

	if err := pinger.Run(); err != nil {
		return "", err
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return "", fmt.Errorf("no reply from %s", target)
	}

	return fmt.Sprintf("rtt min/avg/max/mdev = %.3f/%.3f/%.3f/%.3f ms",
		millis(stats.MinRtt), millis(stats.AvgRtt),
		millis(stats.MaxRtt), millis(stats.StdDevRtt)), nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
