package main

import (
	"bufio"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/hailam/duelrewind/internal/config"
	"github.com/hailam/duelrewind/internal/duel"
	"github.com/hailam/duelrewind/internal/interpreter"
	"github.com/hailam/duelrewind/internal/message"
	"github.com/hailam/duelrewind/internal/metrics"
	"github.com/hailam/duelrewind/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// cli is the command-line surface kong parses into. The replay vocabulary
// below (append/forward/backward/show/checkpoint) is this program's
// equivalent of a protocol handler's command set.
var cli struct {
	Config  string `help:"Path to a YAML config file." short:"c"`
	Session string `help:"Session ID to resume or create." default:""`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("duelrewind-cli"),
		kong.Description("Interactive harness for the duel replay engine."))

	logger := newLogger(cli.Verbose)
	defer logger.Sync()

	cfg := config.Default()
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			logger.Fatal("loading config", zap.Error(err))
		}
		cfg = loaded
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Fatal("opening checkpoint store", zap.Error(err))
	}
	defer store.Close()

	recorder := metrics.New()
	if cfg.MetricsEnabled {
		go serveMetrics(cfg.MetricsAddr, recorder, logger)
	}

	sessionID := cli.Session
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	eng, err := resumeOrNew(store, sessionID, logger)
	if err != nil {
		logger.Fatal("restoring session", zap.Error(err))
	}
	locked := interpreter.NewLocked(eng)

	fmt.Printf("duelrewind-cli: session %s ready (%d/%d states)\n",
		sessionID, locked.CurrentState(), locked.TotalStates())

	createdAt := time.Now()
	stopTicker := startPeriodicCheckpoint(cfg.CheckpointInterval, store, sessionID, locked, recorder, logger)
	defer stopTicker()

	runLoop(locked, store, sessionID, recorder, logger)

	if err := store.RecordSession(storage.SessionSummary{
		SessionID:   sessionID,
		TotalStates: locked.TotalStates(),
		CreatedAt:   createdAt,
		LastSavedAt: time.Now(),
	}); err != nil {
		logger.Warn("recording session stats", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func openStore(cfg *config.Config) (*storage.Store, error) {
	if cfg.DataDir != "" {
		return storage.OpenAt(cfg.DataDir)
	}
	return storage.Open()
}

// serveMetrics exposes the recorder's registry over HTTP until the
// process exits or the listener fails.
func serveMetrics(addr string, recorder *metrics.Recorder, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(recorder.Registry, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warn("metrics server stopped", zap.Error(err))
	}
}

// startPeriodicCheckpoint saves a checkpoint every interval, the
// unprompted counterpart to the "checkpoint" command, so a crash between
// explicit saves loses at most one interval's worth of history. Returns a
// func to stop the ticker; the background goroutine itself exits with
// the process.
func startPeriodicCheckpoint(interval time.Duration, store *storage.Store, sessionID string, locked *interpreter.Locked, recorder *metrics.Recorder, logger *zap.Logger) func() {
	if interval <= 0 {
		return func() {}
	}
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			err := saveCheckpoint(store, sessionID, locked)
			recorder.ObserveCheckpoint("periodic-save", err)
			if err != nil {
				logger.Warn("periodic checkpoint failed", zap.Error(err))
			}
		}
	}()
	return ticker.Stop
}

func resumeOrNew(store *storage.Store, sessionID string, logger *zap.Logger) (*interpreter.Engine, error) {
	cp, found, err := store.LoadCheckpoint(sessionID)
	if err != nil {
		return nil, err
	}
	board := duel.New()
	eng := interpreter.New(board, logger)
	if !found {
		return eng, nil
	}
	for _, m := range cp.Messages {
		eng.Append(m)
	}
	for i := 0; i < cp.ProcessedState; i++ {
		if err := eng.Forward(); err != nil {
			return nil, fmt.Errorf("replaying checkpoint: %w", err)
		}
	}
	for i := cp.State; i < cp.ProcessedState; i++ {
		if err := eng.Backward(); err != nil {
			return nil, fmt.Errorf("restoring checkpoint cursor: %w", err)
		}
	}
	return eng, nil
}

// runLoop reads one command per line from stdin, the way a UCI-style
// protocol handler does, until EOF or "quit".
func runLoop(locked *interpreter.Locked, store *storage.Store, sessionID string, recorder *metrics.Recorder, logger *zap.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "forward":
			if err := locked.Forward(); err != nil {
				fmt.Println("error:", err)
				recorder.ObserveMalformed(errorKind(err))
			} else {
				recorder.ObserveForward()
				recorder.SetStateGap(locked.ProcessedStates(), locked.CurrentState())
			}
		case "backward":
			if err := locked.Backward(); err != nil {
				fmt.Println("error:", err)
				recorder.ObserveMalformed(errorKind(err))
			} else {
				recorder.ObserveBackward()
				recorder.SetStateGap(locked.ProcessedStates(), locked.CurrentState())
			}
		case "show":
			fmt.Printf("state %d/%d realtime=%v\n", locked.CurrentState(), locked.TotalStates(), locked.IsRealtime())
		case "checkpoint":
			err := saveCheckpoint(store, sessionID, locked)
			recorder.ObserveCheckpoint("save", err)
			if err != nil {
				fmt.Println("checkpoint error:", err)
			} else {
				fmt.Println("checkpoint saved")
			}
		case "append-newturn":
			player := parseUint8(args, 0)
			locked.Append(message.Any{NewTurn: &message.NewTurn{TurnPlayer: player}})
			recorder.ObserveAppend()
			fmt.Println("appended")
		case "append-lp":
			player := parseUint8(args, 0)
			amount := parseUint32(args, 1)
			locked.Append(message.Any{LpChange: &message.LpChange{Player: player, Kind: message.LpDamage, Amount: amount}})
			recorder.ObserveAppend()
			fmt.Println("appended")
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func saveCheckpoint(store *storage.Store, sessionID string, locked *interpreter.Locked) error {
	cp := storage.Checkpoint{
		Messages:       locked.Messages(),
		State:          locked.CurrentState(),
		ProcessedState: locked.ProcessedStates(),
		SavedAt:        time.Now(),
	}
	return store.SaveCheckpoint(sessionID, cp)
}

// errorKind extracts the duel error kind label for a metrics observation,
// falling back to "unknown" for errors this package didn't raise.
func errorKind(err error) string {
	var de *duel.Error
	if errors.As(err, &de) {
		return de.Kind.String()
	}
	return "unknown"
}

func parseUint8(args []string, idx int) uint8 {
	if idx >= len(args) {
		return 0
	}
	v, _ := strconv.ParseUint(args[idx], 10, 8)
	return uint8(v)
}

func parseUint32(args []string, idx int) uint32 {
	if idx >= len(args) {
		return 0
	}
	v, _ := strconv.ParseUint(args[idx], 10, 32)
	return uint32(v)
}
