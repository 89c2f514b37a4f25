package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	siadc09 "github.com/sia-dc09/siadc09d"
	"github.com/sia-dc09/siadc09d/internal/config"
	"github.com/sia-dc09/siadc09d/internal/logging"
)

const (
	defaultConfigLoc  = `/opt/siadc09d/etc/siadc09d.conf`
	defaultConfigDLoc = `/opt/siadc09d/etc/siadc09d.conf.d`
	appName           = `siadc09d`
	appVersion        = `1.0.0`
)

var (
	confLoc  = flag.String("config-file", defaultConfigLoc, "Location for configuration file")
	confdLoc = flag.String("config-overlays", defaultConfigDLoc, "Location for configuration overlay files")
	validate = flag.Bool("validate", false, "Load and validate the configuration, then exit")
	verbose  = flag.Bool("v", false, "Display verbose status updates to stdout")
	version  = flag.Bool("version", false, "Print version and exit")
)

func main() {
	debug.SetTraceback("all")
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		return
	}

	cfg, err := config.Load(*confLoc, *confdLoc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *validate {
		fmt.Printf("configuration %s is valid, %d accounts registered\n", *confLoc, len(cfg.Accounts))
		return
	}

	lg := buildLogger(cfg)
	maxProcTune(cfg.MaxProcs)

	callback := func(evt siadc09.SIAEvent) {
		lg.Info("event",
			logging.KV("account", evt.Account),
			logging.KV("code", evt.Code),
			logging.KV("message_type", evt.MessageType),
			logging.KV("verdict", evt.Verdict.String()),
		)
	}

	transport := siadc09.TransportTCP
	if cfg.Transport == "udp" {
		transport = siadc09.TransportUDP
	}

	client, err := siadc09.New(siadc09.Config{
		BindAddress: cfg.BindAddress,
		Transport:   transport,
		Accounts:    cfg.Accounts,
		Callback:    callback,
		MaxProcs:    cfg.MaxProcs,
	})
	if err != nil {
		lg.Fatal("failed to construct client", logging.KVErr(err))
	}
	if err := client.Start(); err != nil {
		lg.Fatal("failed to start listener", logging.KV("bind", cfg.BindAddress), logging.KVErr(err))
	}
	lg.Info("listening", logging.KV("bind", cfg.BindAddress), logging.KV("transport", cfg.Transport), logging.KV("accounts", len(cfg.Accounts)))

	debugout(*verbose, "listening on %s (%s), %d accounts loaded\n", cfg.BindAddress, cfg.Transport, len(cfg.Accounts))

	waitForQuit()

	client.Stop()
	snap := client.Counts()
	lg.Info("shutdown",
		logging.KV("events", snap.Events),
		logging.KV("valid_events", snap.ValidEvents),
	)
}

func buildLogger(cfg config.Config) *logging.Logger {
	var lg *logging.Logger
	if cfg.LogFile == `` {
		lg = logging.New(os.Stderr)
	} else {
		fout, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", cfg.LogFile, err)
			lg = logging.New(os.Stderr)
		} else {
			lg = logging.New(fout)
		}
	}
	if cfg.LogLevel != `` {
		if err := lg.SetLevelString(cfg.LogLevel); err != nil {
			fmt.Fprintf(os.Stderr, "invalid Log-Level %q: %v\n", cfg.LogLevel, err)
		}
	}
	return lg
}

// maxProcTune applies GOMAXPROCS only when the operator hasn't already
// pinned it via the environment.
func maxProcTune(val int) {
	if val <= 0 {
		return
	}
	if ev := os.Getenv(`GOMAXPROCS`); ev == `` {
		runtime.GOMAXPROCS(val)
	}
}

func debugout(v bool, format string, args ...interface{}) {
	if !v {
		return
	}
	fmt.Printf(format, args...)
}

// waitForQuit blocks until SIGHUP, SIGINT, SIGQUIT, or SIGTERM arrives.
func waitForQuit() os.Signal {
	quitSig := make(chan os.Signal, 1)
	defer close(quitSig)
	signal.Notify(quitSig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	return <-quitSig
}
