package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jcerise/rssg/internal/config"
	rssgerr "github.com/jcerise/rssg/internal/errors"
	"github.com/jcerise/rssg/internal/logfields"
)

// WatchCmd rebuilds the full site whenever the content or template
// directories change. Every rebuild is a complete run; there is no
// incremental mode.
type WatchCmd struct {
	Debounce time.Duration `name:"debounce" default:"250ms" help:"Quiet period after a change before rebuilding"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	// Unlike 'build', a failed pass keeps the watch alive so the operator
	// can fix the offending file and save again.
	if err := RunBuild(cfg); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return rssgerr.Wrap(err, rssgerr.CategoryFilesystem, "create file watcher")
	}
	defer func() { _ = watcher.Close() }()

	if err := syncWatchDirs(watcher, cfg); err != nil {
		return err
	}
	slog.Info("Watching for changes",
		logfields.Content(cfg.ContentLocation),
		logfields.Template(cfg.TemplateDir()))

	var debounce <-chan time.Time
	for {
		select {
		case <-sigctx.Done():
			slog.Info("Stopping watch")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Change detected", logfields.Path(ev.Name))
			debounce = time.After(w.Debounce)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(werr))
		case <-debounce:
			debounce = nil
			// Reload config and recompile templates so edits to either take
			// effect on the next pass.
			cfg, err := config.Load(root.Config)
			if err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
				continue
			}
			// The reload may have moved content_location or switched themes;
			// keep the watched directories in step with the config.
			if err := syncWatchDirs(watcher, cfg); err != nil {
				slog.Warn("Could not update watched directories", logfields.Error(err))
			}
			if err := RunBuild(cfg); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
				continue
			}
			slog.Info("Rebuild complete")
		}
	}
}

// watchDirs returns the directories a watch session follows for the given
// config: the content directory and the active theme's template directory.
func watchDirs(cfg *config.Config) []string {
	return []string{
		filepath.Clean(cfg.ContentLocation),
		filepath.Clean(cfg.TemplateDir()),
	}
}

// syncWatchDirs points the watcher at the config's current directories,
// dropping previously watched paths the config no longer references.
func syncWatchDirs(watcher *fsnotify.Watcher, cfg *config.Config) error {
	want := make(map[string]bool, 2)
	for _, dir := range watchDirs(cfg) {
		want[dir] = true
	}

	for _, dir := range watcher.WatchList() {
		if want[dir] {
			delete(want, dir)
			continue
		}
		if err := watcher.Remove(dir); err != nil {
			slog.Debug("Could not unwatch directory", logfields.Path(dir), logfields.Error(err))
		}
	}

	for dir := range want {
		if err := watcher.Add(dir); err != nil {
			return rssgerr.Wrap(err, rssgerr.CategoryFilesystem, "watch directory").WithPath(dir)
		}
	}
	return nil
}
