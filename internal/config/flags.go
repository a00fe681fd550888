package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-ttl session lifetime (e.g., "720h")
//	-bot-timeout timeout of a single bot call (e.g., "10s")
//	-engine-timeout timeout of a single engine call
//	-run-concurrency number of runs executed in parallel
//	-redis-addr address of the run-event bus
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-snake-bench", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var sessionTTL time.Duration
	var botTimeout time.Duration
	var engineTimeout time.Duration
	var runConcurrency int
	var redisAddr string
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 720h)")
	fs.DurationVar(&botTimeout, "bot-timeout", 0, "Timeout of a single bot call")
	fs.DurationVar(&engineTimeout, "engine-timeout", 0, "Timeout of a single engine call")
	fs.IntVar(&runConcurrency, "run-concurrency", 0, "Runs executed in parallel")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis address of the run-event bus")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:   logLevel,
			SessionTTL: sessionTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BotTimeout:    botTimeout,
			EngineTimeout: engineTimeout,
		},
		Workers: Workers{
			RunConcurrency: runConcurrency,
		},
		Redis: Redis{
			Addr: redisAddr,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, bracketing IPv6 hosts. A zero NetAddress is "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value. The host may be empty (all interfaces),
// "localhost" or an IP literal; host names are rejected so that a typo does
// not turn into a DNS lookup at listen time.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address provided: %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}
