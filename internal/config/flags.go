package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-bridge-url base URL of the ledger node's bridge API
//	-bridge-timeout timeout of outbound bridge calls (e.g., "15s")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
//	-rate-limit-max requests allowed per client per window
//	-rate-limit-window counting window duration (e.g., "60s")
//	-rate-limit-sweep-interval how often stale records are evicted
//	-rate-limit-idle-ttl grace period before an expired record is evicted
//	-app-version gateway version string
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var bridgeURL string
	var bridgeTimeout time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string
	var rateLimitMax int
	var rateLimitWindow time.Duration
	var rateLimitSweepInterval time.Duration
	var rateLimitIdleTTL time.Duration
	var appVersion string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&bridgeURL, "bridge-url", "", "Ledger node bridge base URL")
	flag.DurationVar(&bridgeTimeout, "bridge-timeout", 0, "Bridge call timeout (e.g., 15s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&rateLimitMax, "rate-limit-max", 0, "Requests allowed per client per window")
	flag.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 60s)")
	flag.DurationVar(&rateLimitSweepInterval, "rate-limit-sweep-interval", 0, "Stale record sweep interval")
	flag.DurationVar(&rateLimitIdleTTL, "rate-limit-idle-ttl", 0, "Grace period before expired records are evicted")
	flag.StringVar(&appVersion, "app-version", "", "Gateway version string")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Bridge: Bridge{
			URL:     bridgeURL,
			Timeout: bridgeTimeout,
		},
		RateLimit: RateLimit{
			MaxRequests:   rateLimitMax,
			Window:        rateLimitWindow,
			SweepInterval: rateLimitSweepInterval,
			IdleTTL:       rateLimitIdleTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
