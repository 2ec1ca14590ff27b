package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmorganca/suspendline/logutil"
)

var (
	// Set via SUSPENDLINE_DEBUG in the environment
	Debug int
	// Set via SUSPENDLINE_NOHISTORY in the environment
	NoHistory bool
	// Set via SUSPENDLINE_HISTORY in the environment
	HistoryFile string
	// Set via SUSPENDLINE_HISTORY_LIMIT in the environment
	HistoryLimit int
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"SUSPENDLINE_DEBUG":         {"SUSPENDLINE_DEBUG", Debug, "Show additional debug information (e.g. SUSPENDLINE_DEBUG=1, 2 for trace)"},
		"SUSPENDLINE_NOHISTORY":     {"SUSPENDLINE_NOHISTORY", NoHistory, "Do not preserve readline history"},
		"SUSPENDLINE_HISTORY":       {"SUSPENDLINE_HISTORY", HistoryFile, "Location of the history file (default ~/.suspendline/history)"},
		"SUSPENDLINE_HISTORY_LIMIT": {"SUSPENDLINE_HISTORY_LIMIT", HistoryLimit, "Maximum number of history lines kept (default 100)"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	// default values
	Debug = 0
	NoHistory = false
	HistoryFile = ""
	HistoryLimit = 100

	if debug := clean("SUSPENDLINE_DEBUG"); debug != "" {
		if n, err := strconv.Atoi(debug); err == nil {
			Debug = n
		} else if b, err := strconv.ParseBool(debug); err == nil {
			if b {
				Debug = 1
			}
		} else {
			Debug = 1
		}
	}

	if nohistory := clean("SUSPENDLINE_NOHISTORY"); nohistory != "" {
		if b, err := strconv.ParseBool(nohistory); err == nil {
			NoHistory = b
		} else {
			NoHistory = true
		}
	}

	HistoryFile = clean("SUSPENDLINE_HISTORY")
	if HistoryFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to lookup home directory", "error", err)
		} else {
			HistoryFile = filepath.Join(home, ".suspendline", "history")
		}
	}

	if limit := clean("SUSPENDLINE_HISTORY_LIMIT"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			slog.Error("invalid setting must be greater than zero", "SUSPENDLINE_HISTORY_LIMIT", limit, "error", err)
		} else {
			HistoryLimit = n
		}
	}
}

// LogLevel maps Debug onto a slog level.
func LogLevel() slog.Level {
	return logutil.Level(Debug)
}
