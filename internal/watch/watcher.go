// Package watch rebuilds blueprints when they change on disk. Events inside
// the debounce window are coalesced so the callback fires once with every
// changed path.
package watch

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 300 * time.Millisecond

// DefaultPatterns selects blueprint files
var DefaultPatterns = []string{"**/*.yaml", "**/*.yml", "**/*.toml"}

var defaultIgnores = []string{
	"**/.git/**",
	"**/*.swp",
	"**/*~",
	"**/.*.tmp",
	"**/*.docx",
}

// Config holds the parameters for a Watcher
type Config struct {
	// Patterns are doublestar globs relative to BaseDir. Empty means
	// DefaultPatterns.
	Patterns []string

	// Ignore is merged with the built-in ignores
	Ignore []string

	// Debounce is the quiet period after the last event
	Debounce time.Duration

	// BaseDir defaults to the working directory
	BaseDir string

	// OnChange receives changed paths relative to BaseDir, sorted
	OnChange func(ctx context.Context, changed []string) error

	Logger *log.Logger
}

// Watcher fires a debounced callback when matching files change. Run may be
// called once.
type Watcher struct {
	cfg      Config
	fsw      *fsnotify.Watcher
	patterns []string
	ignores  []string
	debounce time.Duration
	baseDir  string
	logger   *log.Logger
	started  atomic.Bool
}

// New validates cfg and registers every non-ignored directory under BaseDir
func New(cfg Config) (*Watcher, error) {
	baseDir := cfg.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("watch: determine working directory: %w", err)
		}
		baseDir = wd
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve base directory: %w", err)
	}

	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	if err := validatePatterns(patterns, "watch"); err != nil {
		return nil, err
	}
	if err := validatePatterns(cfg.Ignore, "ignore"); err != nil {
		return nil, err
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		patterns: patterns,
		ignores:  append(slices.Clone(defaultIgnores), cfg.Ignore...),
		debounce: debounce,
		baseDir:  absBase,
		logger:   logger,
	}

	if err := w.addDirectories(); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// BaseDir returns the absolute watched root
func (w *Watcher) BaseDir() string {
	return w.baseDir
}

// Run blocks until ctx is cancelled. It returns nil on cancellation and an
// error when the underlying watcher fails for good.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			// retry later so pending changes are not lost
			mu.Lock()
			timer.Reset(w.debounce)
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if w.cfg.OnChange == nil {
			return
		}
		if err := w.cfg.OnChange(ctx, changed); err != nil {
			w.logger.Error("rebuild failed", "err", err)
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("close watcher", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: event channel closed")
			}

			if evt.Has(fsnotify.Create) {
				w.maybeAddDir(evt.Name)
			}
			if evt.Has(fsnotify.Chmod) && !evt.Has(fsnotify.Write) {
				continue
			}

			rel, err := filepath.Rel(w.baseDir, evt.Name)
			if err != nil {
				rel = evt.Name
			}
			if !w.Matches(rel) {
				continue
			}
			w.logger.Debug("change", "path", rel, "op", evt.Op.String())

			mu.Lock()
			pending[filepath.ToSlash(rel)] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: error channel closed")
			}
			if isFatal(err) {
				return fmt.Errorf("watch: %w", err)
			}
			w.logger.Warn("watcher error", "err", err)
		}
	}
}

// Matches reports whether rel (relative to BaseDir) selects a rebuild
func (w *Watcher) Matches(rel string) bool {
	normalized := filepath.ToSlash(rel)
	return !matchAny(w.ignores, normalized) && matchAny(w.patterns, normalized)
}

// Scan lists the matching files currently under BaseDir, sorted
func (w *Watcher) Scan() ([]string, error) {
	var found []string
	for _, pat := range w.patterns {
		matches, err := doublestar.Glob(os.DirFS(w.baseDir), pat)
		if err != nil {
			return nil, fmt.Errorf("watch: glob %q: %w", pat, err)
		}
		for _, m := range matches {
			if !matchAny(w.ignores, m) {
				found = append(found, m)
			}
		}
	}
	slices.Sort(found)
	return slices.Compact(found), nil
}

func (w *Watcher) addDirectories() error {
	err := filepath.WalkDir(w.baseDir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			w.logger.Warn("skipping inaccessible path", "path", path, "err", walkErr)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignoredDir(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch: add directory %q: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch: walk directory tree: %w", err)
	}
	return nil
}

func (w *Watcher) maybeAddDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || w.ignoredDir(path) {
		return
	}
	if err := w.fsw.Add(path); err != nil {
		w.logger.Warn("add new directory", "path", path, "err", err)
	}
}

func (w *Watcher) ignoredDir(path string) bool {
	rel, err := filepath.Rel(w.baseDir, path)
	if err != nil {
		return true
	}
	if rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)
	return matchAny(w.ignores, rel) || matchAny(w.ignores, rel+"/")
}

func matchAny(patterns []string, path string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, path); err == nil && ok {
			return true
		}
	}
	return false
}

func validatePatterns(patterns []string, label string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("watch: invalid %s pattern %q", label, pat)
		}
	}
	return nil
}

// isFatal reports descriptor or watch-limit exhaustion
func isFatal(err error) bool {
	return errors.Is(err, syscall.ENOSPC) ||
		errors.Is(err, syscall.EMFILE) ||
		errors.Is(err, syscall.ENFILE)
}
