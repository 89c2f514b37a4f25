// Package config loads siadc09d's INI-style configuration file: a
// [Global] section for the listener and logging, plus one [Account "ID"]
// section per registered panel.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gravwell/gcfg"

	"github.com/sia-dc09/siadc09d/internal/account"
)

const (
	maxConfigSize int64  = 4 * 1024 * 1024
	confExt       string = `.conf`

	defaultLogLevel = `INFO`
)

var (
	ErrConfigFileTooLarge = errors.New("config file is too large")
	ErrFailedFileRead     = errors.New("failed to read entire config file")
	ErrIsNotDirectory     = errors.New("path is not a directory")
	ErrNoBindAddress      = errors.New("Bind-String not set in [Global]")
	ErrInvalidTransport   = errors.New("Transport must be tcp or udp")
)

// Global holds the [Global] section: where to listen and how to log.
type Global struct {
	Bind_String string
	Transport   string // "tcp" or "udp", default "tcp"
	Log_File    string
	Log_Level   string
	Max_Procs   int
}

// AccountSection holds one [Account "ID"] section.
type AccountSection struct {
	Key_Hex         string // hex AES key, empty for an unencrypted account
	Timeband_Before int    // seconds
	Timeband_After  int    // seconds
	Device_Timezone string // IANA zone name, default UTC
}

type cfgType struct {
	Global  Global
	Account map[string]*AccountSection
}

// Config is the validated, in-memory configuration siadc09d runs with.
type Config struct {
	BindAddress string
	Transport   string
	LogFile     string
	LogLevel    string
	MaxProcs    int
	Accounts    []account.Account
}

// Load reads path (and any *.conf overlays in overlayDir), validates the
// result, and returns a ready-to-use Config.
func Load(path, overlayDir string) (Config, error) {
	var cr cfgType
	if err := loadConfigFile(&cr, path); err != nil {
		return Config{}, err
	}
	if err := loadConfigOverlays(&cr, overlayDir); err != nil {
		return Config{}, err
	}
	return cr.validate()
}

func (cr cfgType) validate() (Config, error) {
	g := cr.Global
	if g.Bind_String == `` {
		return Config{}, ErrNoBindAddress
	}
	transport := strings.ToLower(strings.TrimSpace(g.Transport))
	switch transport {
	case ``:
		transport = "tcp"
	case "tcp", "udp":
	default:
		return Config{}, ErrInvalidTransport
	}
	logLevel := g.Log_Level
	if logLevel == `` {
		logLevel = defaultLogLevel
	}

	accounts := make([]account.Account, 0, len(cr.Account))
	for id, sec := range cr.Account {
		tb := sec.timeband()
		tz := time.UTC
		if sec.Device_Timezone != `` {
			loc, err := time.LoadLocation(sec.Device_Timezone)
			if err != nil {
				return Config{}, fmt.Errorf("account %q: invalid Device-Timezone %q: %w", id, sec.Device_Timezone, err)
			}
			tz = loc
		}
		acct, err := account.New(id, sec.Key_Hex, tb, tz)
		if err != nil {
			return Config{}, fmt.Errorf("account %q: %w", id, err)
		}
		accounts = append(accounts, acct)
	}

	return Config{
		BindAddress: g.Bind_String,
		Transport:   transport,
		LogFile:     g.Log_File,
		LogLevel:    logLevel,
		MaxProcs:    g.Max_Procs,
		Accounts:    accounts,
	}, nil
}

// timeband returns nil when neither bound was configured, disabling
// timestamp validation for the account entirely.
func (a AccountSection) timeband() *account.Timeband {
	if a.Timeband_Before == 0 && a.Timeband_After == 0 {
		return nil
	}
	return &account.Timeband{
		Before: time.Duration(a.Timeband_Before) * time.Second,
		After:  time.Duration(a.Timeband_After) * time.Second,
	}
}

func loadConfigFile(v interface{}, p string) error {
	fin, err := os.Open(p)
	if err != nil {
		return err
	}
	defer fin.Close()

	fi, err := fin.Stat()
	if err != nil {
		return err
	}
	if fi.Size() > maxConfigSize {
		return ErrConfigFileTooLarge
	}

	bb := bytes.NewBuffer(nil)
	n, err := io.Copy(bb, fin)
	if err != nil {
		return err
	}
	if n != fi.Size() {
		return ErrFailedFileRead
	}
	return gcfg.ReadStringInto(v, bb.String())
}

func loadConfigOverlays(v interface{}, pth string) error {
	if pth == `` {
		return nil
	}
	fi, err := os.Stat(pth)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !fi.IsDir() {
		return ErrIsNotDirectory
	}

	dents, err := os.ReadDir(pth)
	if err != nil {
		return err
	}
	for _, dent := range dents {
		if !dent.Type().IsRegular() || filepath.Ext(dent.Name()) != confExt {
			continue
		}
		p := filepath.Join(pth, dent.Name())
		if err := loadConfigFile(v, p); err != nil {
			return fmt.Errorf("failed to load %q: %w", p, err)
		}
	}
	return nil
}
