package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/cricklet/movehighlight/internal/config"
	. "github.com/cricklet/movehighlight/internal/helpers"
	"github.com/cricklet/movehighlight/internal/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
			os.Exit(1)
		}
	}()

	configPath := os.Getenv("MOVEHIGHLIGHT_CONFIG")
	port := 0

	args := os.Args[1:]
	for _, arg := range args {
		if parsed, err := strconv.ParseInt(arg, 10, 64); err == nil {
			port = int(parsed)
		} else if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
			configPath = arg
		}
	}

	cfg, err := config.Load(configPath)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	logger, err := InitLogging(cfg.Log.Level, cfg.Log.Format)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	s, err := server.New(cfg, logger)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = s.ListenAndServe()
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
