package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/brevity/internal/prefs"
	"github.com/five82/brevity/internal/state"
)

const defaultSaveInterval = 5 * time.Second

// StartBookmarker launches a background goroutine that saves the current
// location of presentation to the prefs file at a fixed cadence. Nothing
// is written while the location is unchanged. It returns immediately.
func StartBookmarker(ctx context.Context, store *state.Store, prefsPath, presentation string, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultSaveInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		saved := ""
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			saved = saveBookmark(store, prefsPath, presentation, saved, logger)
		}
	}()
}

// saveBookmark writes the store's token when it differs from last and
// returns the token now on disk.
func saveBookmark(store *state.Store, prefsPath, presentation, last string, logger *slog.Logger) string {
	token := store.Snapshot().Token
	if token == "" || token == last {
		return last
	}
	err := prefs.Update(prefsPath, func(p prefs.Prefs) prefs.Prefs {
		return p.WithBookmark(presentation, token)
	})
	if err != nil {
		logger.Warn("save bookmark failed", "presentation", presentation, "error", err)
		return last
	}
	logger.Debug("bookmark saved", "presentation", presentation, "location", token)
	return token
}
