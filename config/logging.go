package config

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging points the standard logger at stdout and, when LOG_FILE is set,
// at a rotating log file as well. The returned writer is the one Echo's logger
// should use; the closer must be closed on shutdown.
func SetupLogging(cfg *Config) (io.Writer, io.Closer) {
	if cfg.LogFile == "" {
		log.SetOutput(os.Stdout)
		return os.Stdout, io.NopCloser(nil)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		log.Printf("[WARNING] Failed to create log directory for %s: %v", cfg.LogFile, err)
		return os.Stdout, io.NopCloser(nil)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB, // MB
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays, // days
		Compress:   true,
	}

	out := io.MultiWriter(os.Stdout, rotator)
	log.SetOutput(out)
	log.Printf("[INFO] Logging to %s (max %d MB, %d backups)", cfg.LogFile, cfg.LogMaxSizeMB, cfg.LogMaxBackups)
	return out, rotator
}
