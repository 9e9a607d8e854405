package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/monshift/internal/config"
	"github.com/1broseidon/monshift/internal/hotkeys"
	"github.com/1broseidon/monshift/internal/mover"
	"github.com/1broseidon/monshift/internal/topology"
	"github.com/1broseidon/monshift/internal/tui"
	"github.com/1broseidon/monshift/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "daemon":
		if len(os.Args) > 2 && (os.Args[2] == "help" || os.Args[2] == "-h" || os.Args[2] == "--help") {
			fmt.Fprintln(os.Stdout, "Usage: monshift daemon")
			os.Exit(0)
		}
		if len(os.Args) > 2 {
			fmt.Fprintln(os.Stderr, "daemon takes no arguments")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Usage: monshift daemon")
			os.Exit(2)
		}
		runDaemon()
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: monshift <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  move <direction>    Move the active window (left, right, up, down,")
	fmt.Fprintln(w, "                      next, prev, here)")
	fmt.Fprintln(w, "  monitors            Show monitors, usable areas and move order")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  daemon              Run in the background with global hotkeys")
	fmt.Fprintln(w, "  tui                 Open the interactive monitor map")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'monshift <command> --help' for command-specific options.")
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	}))
}

// setup loads the config and connects to X. Every command that touches the
// display goes through here.
func setup() (*x11.Connection, *mover.Mover, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	conn, err := x11.NewConnection()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to display: %w", err)
	}

	m := mover.New(conn, cfg, newLogger(cfg.LogLevel))
	return conn, m, cfg, nil
}

func runMove(args []string) int {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	ratio := fs.Bool("ratio", false, "Scale the window to keep monitor-relative proportions")
	noPanels := fs.Bool("no-panels", false, "Ignore panels when computing usable monitor area")
	axis := fs.String("axis", "", "Override next/prev ordering axis: x or y")
	dryRun := fs.Bool("dry-run", false, "Print the planned geometry without moving")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: monshift move [options] <direction>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Directions: left, right, up, down, next, prev, here")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "move requires exactly one direction")
		fs.Usage()
		return 2
	}

	dir, err := topology.ParseDirection(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	conn, m, _, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer conn.Close()

	req := m.RequestFromConfig(dir)
	if *ratio {
		req.PreserveRatio = true
	}
	if *noPanels {
		req.AdjustForPanels = false
	}
	switch *axis {
	case "":
	case "x":
		req.Axis = topology.AxisX
	case "y":
		req.Axis = topology.AxisY
	default:
		fmt.Fprintln(os.Stderr, "axis must be x or y")
		return 2
	}
	req.DryRun = *dryRun

	res, err := m.Move(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	verb := "moved"
	if *dryRun {
		verb = "would move"
	}
	fmt.Printf("%s window 0x%x: %s -> %s (%d,%d %dx%d)\n",
		verb, res.Window, res.From, res.To,
		res.NewRect.X, res.NewRect.Y, res.NewRect.W, res.NewRect.H)
	return 0
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Print as JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: monshift monitors [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the monitor arrangement, usable areas after panel trimming,")
		fmt.Fprintln(os.Stderr, "and the rotational order used by next/prev moves.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	conn, m, _, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer conn.Close()

	snap, err := m.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	fmt.Printf("arrangement: %s\n", snap.Shape)
	fmt.Printf("order:       %v\n", snap.Order)
	for _, mon := range snap.Monitors {
		marker := " "
		if snap.Active != nil && snap.Active.Monitor == mon.Tag {
			marker = "*"
		}
		fmt.Printf("%s %-12s %5dx%-5d at (%d,%d)", marker, mon.Tag, mon.Rect.W, mon.Rect.H, mon.Rect.X, mon.Rect.Y)
		if mon.Usable != mon.Rect {
			fmt.Printf("  usable %dx%d at (%d,%d)", mon.Usable.W, mon.Usable.H, mon.Usable.X, mon.Usable.Y)
		}
		fmt.Println()
	}
	if len(snap.Panels) > 0 {
		fmt.Printf("panels:      %d\n", len(snap.Panels))
	}
	if snap.Active != nil {
		fmt.Printf("window:      0x%x on %s (%d,%d %dx%d)\n",
			snap.Active.ID, snap.Active.Monitor,
			snap.Active.Rect.X, snap.Active.Rect.Y, snap.Active.Rect.W, snap.Active.Rect.H)
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  monshift config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  monshift config print [--path PATH] [--defaults]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/monshift/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var err error
		if *path == "" {
			_, err = config.Load()
		} else {
			_, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/monshift/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var cfg *config.Config
		var err error
		if *printDefaults {
			cfg = config.DefaultConfig()
		} else if *path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func runDaemon() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (%d hotkeys)", len(cfg.Hotkeys))

	conn, err := x11.NewConnection()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer conn.Close()

	logger := newLogger(cfg.LogLevel)
	m := mover.New(conn, cfg, logger)

	handler := hotkeys.NewHandler(conn, logger)
	if err := handler.RegisterMoves(cfg.Hotkeys, func(dir topology.Direction) {
		res, err := m.Move(m.RequestFromConfig(dir))
		if err != nil {
			logger.Warn("move failed", "direction", dir, "error", err)
			return
		}
		logger.Info("window moved",
			"direction", dir,
			"window", res.Window,
			"from", res.From,
			"to", res.To)
	}); err != nil {
		log.Fatalf("Failed to register hotkeys: %v", err)
	}

	// SIGHUP reloads the config; SIGINT/SIGTERM shut down.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGHUP:
				log.Println("Received SIGHUP, reloading config...")
				newCfg, err := config.Load()
				if err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				m.UpdateConfig(newCfg)
				log.Println("Config reloaded successfully")
			case os.Interrupt, syscall.SIGTERM:
				log.Println("Shutting down monshift daemon...")
				conn.Close()
				os.Exit(0)
			}
		}
	}()

	log.Println("monshift daemon started successfully")
	conn.EventLoop()
}

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	ratio := fs.Bool("ratio", false, "Start with ratio-preserving scaling enabled")

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stderr, "Usage: monshift tui [--ratio]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Interactive monitor map. Moves the active window with the arrow keys.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  ←→↑↓, hjkl  Move the active window between monitors")
		fmt.Fprintln(os.Stderr, "  n/p         Move to next/previous monitor in rotational order")
		fmt.Fprintln(os.Stderr, "  .           Re-fit the window on its current monitor")
		fmt.Fprintln(os.Stderr, "  s           Toggle ratio-preserving scaling")
		fmt.Fprintln(os.Stderr, "  r           Refresh the monitor map")
		fmt.Fprintln(os.Stderr, "  ?           Toggle full help")
		fmt.Fprintln(os.Stderr, "  q, Ctrl+C   Quit")
		return 0
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	conn, m, cfg, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer conn.Close()

	preserveRatio := cfg.PreserveRatio || *ratio
	if err := tui.Run(m, preserveRatio); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
