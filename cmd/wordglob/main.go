// Copyright 2025 The WordGlob Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordglob web server, interactive prompt and IPC server.

wordglob finds five letter words for Wordle from a glob pattern, then drops
words holding any blacklisted letter and keeps only words holding every yellow
letter. Results come in three groups: all matches, matches without repeated
letters and matches with a repeated letter.

# Usage

Serve the web form on 0.0.0.0:5000:

	wordglob

Run the interactive prompt instead:

	wordglob -c

Answer msgpack requests on stdin/stdout:

	wordglob -ipc

Use a custom word list and a different address, with debug logs:

	wordglob -data words.txt -addr :8080 -d

# Patterns

	*      any run of characters, including none
	?      exactly one character
	[abc]  one of a, b or c; [a-e] is a range and [!abc] negates
	other  the character itself, case insensitive

Only five letter words are ever returned, so 'h*' finds 'hello' but not 'hi'.

# Word Lists

The binary carries a bundled list. A custom list is picked by extension:
.json (array of strings), .txt (one word per line, # comments) or
.msgpack/.bin (msgpack array). Entries that are not five letters are dropped.
A list that cannot be read stops the program before any lookup.

	wordglob -data words.txt -export words.msgpack

converts a list to another format and exits.

# Configuration

A TOML file is created with defaults under ~/.config/wordglob on first run:

	[web]
	addr = "0.0.0.0:5000"
	rate_limit = 120
	access_log = true

	[dict]
	path = ""

Flags override the file.

# Web

	GET  /            blank form
	POST /            form fields pattern, blacklist, yellow
	GET  /api/query   same fields as query params, JSON response
	GET  /healthz     dictionary size
	GET  /metrics     Prometheus metrics

# Command Line Flags

	-data string
	    Word list file (default: bundled list)
	-config string
	    Config file path
	-addr string
	    Web listen address
	-c  Run the interactive prompt
	-ipc
	    Run the msgpack IPC server on stdin/stdout
	-export string
	    Write the loaded word list to this file and exit
	-no-color
	    Disable colors in the prompt
	-d  Toggle debug mode
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordglob/internal/cli"
	"github.com/bastiangx/wordglob/internal/logger"
	"github.com/bastiangx/wordglob/internal/utils"
	"github.com/bastiangx/wordglob/internal/web"
	"github.com/bastiangx/wordglob/pkg/config"
	"github.com/bastiangx/wordglob/pkg/dictionary"
	"github.com/bastiangx/wordglob/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	Version = "0.3.0"
	AppName = "wordglob"
	gh      = "https://github.com/bastiangx/wordglob"
)

// sigHandler is a simple handler for OS signals to exit normally.
// The web server installs its own handler for graceful shutdown.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, logging and the dictionary, then hands off to one front end.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config file")
	dataPath := flag.String("data", "", "Word list file (.json, .txt, .msgpack, .bin); empty uses the bundled list")
	addr := flag.String("addr", "", "Web listen address (default from config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive prompt")
	ipcMode := flag.Bool("ipc", false, "Run the msgpack IPC server on stdin/stdout")
	exportPath := flag.String("export", "", "Write the loaded word list to this file and exit")
	noColor := flag.Bool("no-color", false, "Disable colors in the prompt")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Override(*addr, *dataPath, *noColor)

	closeLog, err := logger.Setup(cfg.Log.Level, cfg.Log.File, *debugMode)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()
	if usedConfig != "" {
		log.Debugf("Using config file: (%s)", usedConfig)
	}

	dict := loadDictionary(cfg.Dict.Path)

	if *exportPath != "" {
		if err := dict.Export(*exportPath); err != nil {
			log.Fatalf("Failed to export word list: %v", err)
		}
		log.Printf("Wrote %s words to %s", utils.FormatWithCommas(dict.Len()), *exportPath)
		return
	}

	switch {
	case *ipcMode:
		sigHandler()
		log.Debug("spawning IPC")
		srv := server.NewServer(dict, os.Stdin, os.Stdout)
		if err := srv.Start(); err != nil {
			log.Fatalf("IPC server error: %v", err)
		}

	case *cliMode:
		sigHandler()
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(dict, os.Stdin, os.Stdout, cfg.CLI)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}

	default:
		runWeb(cfg, dict)
	}
}

// loadDictionary resolves the word list path and loads it, exiting on failure.
func loadDictionary(path string) *dictionary.Dictionary {
	if path != "" {
		pathResolver, err := utils.NewPathResolver()
		if err != nil {
			log.Fatalf("Failed to initialize path resolver: %v", err)
		}
		path, err = pathResolver.ResolveDataFile(path)
		if err != nil {
			log.Fatalf("Failed to resolve word list: %v", err)
		}
		log.Debugf("Using word list at: %s", path)
	}

	dict, err := dictionary.Load(path)
	if err != nil {
		log.Fatalf("Failed to load words: %v", err)
	}
	log.Debugf("Loaded %d words", dict.Len())
	return dict
}

// runWeb serves the web front end until SIGINT or SIGTERM.
func runWeb(cfg *config.Config, dict *dictionary.Dictionary) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv, err := web.New(cfg, dict, reg)
	if err != nil {
		log.Fatalf("Failed to create web server: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Errorf("Server error: %v", err)
		}
	}()

	showStartupInfo(cfg.Web.Addr, dict.Len())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited")
}

func printVersion() {
	vlog := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ wordglob ] Five letter words from glob patterns")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the web server.
func showStartupInfo(addr string, words int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words: %s", utils.FormatWithCommas(words))
	log.Infof("listening on: ( %s )", addr)
	log.Info("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
