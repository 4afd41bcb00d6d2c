// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a lookup server listen address in format [host]:[port]
//	-lookup-url address lookup service base URL used by the client
//	-d database DSN (server)
//	-cache-dsn last-results SQLite file (client)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "10s")
//	-debounce debounce interval (e.g., "300ms")
//	-min-term-length minimum term length that triggers a lookup
//	-log-level zerolog level name
//	-rate-limit per-client lookups per second (server)
//	-rate-burst per-client burst size (server)
//	-result-limit maximum addresses per lookup (server)
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("address-search", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var lookupURL string
	var databaseDSN string
	var cacheDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var debounce time.Duration
	var minTermLength int
	var logLevel string
	var rateLimit float64
	var rateBurst int
	var resultLimit int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&lookupURL, "lookup-url", "", "Address lookup service URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&cacheDSN, "cache-dsn", "", "Last results SQLite file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&debounce, "debounce", 0, "Debounce interval (e.g., 300ms)")
	fs.IntVar(&minTermLength, "min-term-length", 0, "Minimum term length")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Lookups per second per client")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Lookup burst per client")
	fs.IntVar(&resultLimit, "result-limit", 0, "Maximum addresses per lookup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Search: Search{
			Debounce:      debounce,
			MinTermLength: minTermLength,
		},
		Adapter: Adapter{
			HTTPAddress:    lookupURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Cache: Cache{DSN: cacheDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
			ResultLimit:    resultLimit,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
