package debug

// Memory logger enabled when config.Debug is true. Large source images are held in
// memory twice (original and preview), so heap and RSS are logged after each load
// and periodically.

import (
	"log/slog"
	"runtime"
	"time"
)

// StartMemLogger launches a goroutine that logs memory stats every interval.
// It is best-effort; failures to query RSS are logged once and suppressed.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for range ticker.C {
			if err := LogMemStats(logger, "memstats"); err != nil && !rssErrLogged {
				logger.Warn("memlog: rss query failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
		}
	}()
}

// LogMemStats writes a single memory snapshot under msg. The returned error only
// reports a failed RSS query; heap stats are always logged.
func LogMemStats(logger *slog.Logger, msg string) error {
	if logger == nil {
		return nil
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	rss, err := residentSetSize()
	logger.Debug(msg,
		slog.Int("goroutines", runtime.NumGoroutine()),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("heap_sys", ms.HeapSys),
		slog.Uint64("rss", rss),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	)
	return err
}
