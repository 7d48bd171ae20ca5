package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/paxlock/paxlock/client"
	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/types"
)

var (
	cluster  = flag.String("cluster", "", "Comma-separated node list: id=host:port,... (required)")
	clientID = flag.String("id", "", "Client ID (defaults to a random UUID)")
	logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	timeout  = flag.Duration("timeout", 30*time.Second, "Overall deadline for the command")
	retries  = flag.Int("retries", client.DefaultRetryPolicy().MaxRetries, "Retries after quorum failures")
)

func main() {
	flag.Usage = showUsage
	flag.Parse()

	if flag.NArg() < 1 {
		showUsage()
		os.Exit(1)
	}
	command := flag.Arg(0)

	switch command {
	case "acquire":
		handleAcquire(flag.Args()[1:])
	case "help":
		showUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		showUsage()
		os.Exit(1)
	}
}

func handleAcquire(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Lock name required for acquire command")
		os.Exit(1)
	}
	lockName := types.LockName(args[0])

	c, err := createClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	lock, err := c.Acquire(ctx, lockName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Acquire failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Acquired %q as %s with fencing token %d\n", lock.Name(), lock.ClientID(), lock.Token())
}

func createClient() (*client.LockClient, error) {
	peers, err := parseCluster(*cluster)
	if err != nil {
		return nil, err
	}

	cfg := client.DefaultClientConfig()
	cfg.Cluster = peers
	cfg.ClientID = types.ClientID(*clientID)
	cfg.RetryPolicy.MaxRetries = *retries

	return client.NewLockClient(cfg, logger.NewStdLogger(*logLevel))
}

// parseCluster turns "n1=host:port,n2=host:port" into a peer map.
func parseCluster(s string) (map[types.NodeID]types.PeerConfig, error) {
	if s == "" {
		return nil, fmt.Errorf("-cluster is required")
	}
	peers := make(map[types.NodeID]types.PeerConfig)
	for _, entry := range strings.Split(s, ",") {
		id, addr, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || id == "" || addr == "" {
			return nil, fmt.Errorf("invalid cluster entry %q, want id=host:port", entry)
		}
		peers[types.NodeID(id)] = types.PeerConfig{ID: types.NodeID(id), Address: addr}
	}
	return peers, nil
}

func showUsage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <command> [args]

Commands:
  acquire <lock-name>   Acquire a lock and print its fencing token
  help                  Show this help

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}
