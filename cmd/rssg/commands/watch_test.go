package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"github.com/jcerise/rssg/internal/config"
	rssgerr "github.com/jcerise/rssg/internal/errors"
)

func mkWatchDirs(t *testing.T, root string, parts ...string) string {
	t.Helper()
	dir := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func TestSyncWatchDirs_RegistersContentAndThemeDirectories(t *testing.T) {
	root := t.TempDir()
	content := mkWatchDirs(t, root, "content")
	mkWatchDirs(t, root, "templates", "default")

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	cfg := &config.Config{
		Theme:             "default",
		ContentLocation:   content,
		TemplatesLocation: filepath.Join(root, "templates"),
	}
	require.NoError(t, syncWatchDirs(watcher, cfg))
	require.ElementsMatch(t, watchDirs(cfg), watcher.WatchList())
}

func TestSyncWatchDirs_FollowsConfigChanges(t *testing.T) {
	root := t.TempDir()
	oldContent := mkWatchDirs(t, root, "content-old")
	newContent := mkWatchDirs(t, root, "content-new")
	mkWatchDirs(t, root, "templates", "default")
	mkWatchDirs(t, root, "templates", "minimal")

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	before := &config.Config{
		Theme:             "default",
		ContentLocation:   oldContent,
		TemplatesLocation: filepath.Join(root, "templates"),
	}
	require.NoError(t, syncWatchDirs(watcher, before))

	// The operator moved the content directory and switched themes between
	// passes; the watch set must follow the reloaded config.
	after := &config.Config{
		Theme:             "minimal",
		ContentLocation:   newContent,
		TemplatesLocation: filepath.Join(root, "templates"),
	}
	require.NoError(t, syncWatchDirs(watcher, after))

	require.ElementsMatch(t, watchDirs(after), watcher.WatchList())
	require.NotContains(t, watcher.WatchList(), filepath.Clean(oldContent))
	require.NotContains(t, watcher.WatchList(), filepath.Clean(filepath.Join(root, "templates", "default")))
}

func TestSyncWatchDirs_UnchangedDirectoriesStayWatched(t *testing.T) {
	root := t.TempDir()
	content := mkWatchDirs(t, root, "content")
	mkWatchDirs(t, root, "templates", "default")
	mkWatchDirs(t, root, "templates", "minimal")

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	cfg := &config.Config{
		Theme:             "default",
		ContentLocation:   content,
		TemplatesLocation: filepath.Join(root, "templates"),
	}
	require.NoError(t, syncWatchDirs(watcher, cfg))

	cfg.Theme = "minimal"
	require.NoError(t, syncWatchDirs(watcher, cfg))

	require.Contains(t, watcher.WatchList(), filepath.Clean(content))
	require.Contains(t, watcher.WatchList(), filepath.Clean(filepath.Join(root, "templates", "minimal")))
}

func TestSyncWatchDirs_MissingDirectory_Fails(t *testing.T) {
	root := t.TempDir()
	mkWatchDirs(t, root, "templates", "default")

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	cfg := &config.Config{
		Theme:             "default",
		ContentLocation:   filepath.Join(root, "does-not-exist"),
		TemplatesLocation: filepath.Join(root, "templates"),
	}
	err = syncWatchDirs(watcher, cfg)
	require.Error(t, err)
	require.True(t, rssgerr.IsCategory(err, rssgerr.CategoryFilesystem))
}
