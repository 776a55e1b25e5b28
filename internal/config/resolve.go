package config

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Resolve builds the session config from flags, PINGMON_* environment
// variables and, if the target is still missing, a single stdin prompt.
// Flags win over the environment; the prompt is a last resort so the
// sampling loop itself never blocks on interactive input.
func Resolve() Config {
	// optional .env file; a missing one is not an error
	godotenv.Load()

	var (
		target   = flag.String("target", os.Getenv("PINGMON_TARGET"), "Host to ping (IP or domain)")
		interval = flag.Duration("interval", envDuration("PINGMON_INTERVAL", 5*time.Second), "Sampling interval")
		timeout  = flag.Duration("timeout", envDuration("PINGMON_TIMEOUT", 4*time.Second), "Probe timeout")
		count    = flag.Int("count", envInt("PINGMON_COUNT", 4), "Echo requests per probe")
		probe    = flag.String("probe", envOr("PINGMON_PROBE", ProbeExec), "Probe executor: exec or native")
		store    = flag.String("store", envOr("PINGMON_STORE", StoreCSV), "Log backend: csv or sqlite")
		logPath  = flag.String("log", envOr("PINGMON_LOG", "ping_results.csv"), "Measurement log path")
		viewPath = flag.String("view", envOr("PINGMON_VIEW", "ping_monitor.html"), "Live view HTML path")
		port     = flag.Int("port", envInt("PINGMON_PORT", 8080), "Web server port")
	)
	flag.Parse()

	cfg := Config{
		Target:   strings.TrimSpace(*target),
		Interval: *interval,
		Timeout:  *timeout,
		Count:    *count,
		Probe:    *probe,
		Store:    *store,
		LogPath:  *logPath,
		ViewPath: *viewPath,
		Port:     *port,
	}

	if cfg.Target == "" && flag.NArg() > 0 {
		cfg.Target = strings.TrimSpace(flag.Arg(0))
	}
	if cfg.Target == "" {
		cfg.Target = promptTarget(os.Stdin, os.Stderr)
	}
	return cfg
}

// promptTarget asks for the target host once, before the loop starts.
func promptTarget(in io.Reader, out io.Writer) string {
	fmt.Fprint(out, "Enter the IP or domain to ping (e.g. google.com): ")
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
