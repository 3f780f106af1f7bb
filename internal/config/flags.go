package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags registers the configuration flags on fs and parses args.
//
// Flags:
//
//	-a HTTP server address in format [host]:[port]
//	-grpc-address gRPC health server address in format [host]:[port]
//	-d database DSN (PostgreSQL URL or SQLite file path)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-swapi-url SWAPI base URL
//	-swapi-timeout SWAPI request timeout
//	-health-interval database health probe period
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var logLevel string
	var swapiURL string
	var swapiTimeout time.Duration
	var healthInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&swapiURL, "swapi-url", "", "SWAPI base URL")
	fs.DurationVar(&swapiTimeout, "swapi-timeout", 0, "SWAPI request timeout")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Database health probe interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Host:           serverAddress.Host,
			Port:           serverAddress.Port,
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			SWAPIURL:       swapiURL,
			RequestTimeout: swapiTimeout,
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
