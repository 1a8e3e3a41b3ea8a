/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

// blcall sends a single named call to a business-logic service and prints
// the raw result as JSON. It is a diagnostic companion to the library:
//
//	blcall -address https://svc.example.com/rpc -contract Orders \
//	    -method Read -args '{"Id":"42"}'
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/meridianapps/rpcsource"
	"github.com/meridianapps/rpcsource/config"
	"github.com/meridianapps/rpcsource/source"
	_ "github.com/meridianapps/rpcsource/transport/jsonrpc"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	configFlag   = flag.String("config", "", "Path to a YAML config file")
	addressFlag  = flag.String("address", "", "Service address (overrides config)")
	contractFlag = flag.String("contract", "", "Contract qualifying method names (overrides config)")
	methodFlag   = flag.String("method", "", "Method to call, optionally qualified (Object.Method)")
	argsFlag     = flag.String("args", "", "Call arguments as a JSON document")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := rpcsource.GetVersionInfo()
		fmt.Printf("rpcsource blcall version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blcall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *methodFlag == "" {
		return fmt.Errorf("-method is required")
	}

	cfg := &config.Config{}
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *addressFlag != "" {
		cfg.Endpoint.Address = *addressFlag
	}
	if *contractFlag != "" {
		cfg.Endpoint.Contract = *contractFlag
	}

	var args any
	if *argsFlag != "" {
		if err := json.Unmarshal([]byte(*argsFlag), &args); err != nil {
			return fmt.Errorf("parse -args: %w", err)
		}
	}

	p, err := cfg.Provider()
	if err != nil {
		return err
	}

	rpc := source.NewRPC(p)
	raw, err := rpc.Call(context.Background(), *methodFlag, args)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
