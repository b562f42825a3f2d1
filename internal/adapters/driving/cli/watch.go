package cli

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
	"github.com/custodia-labs/docstyle/internal/logger"
)

var (
	watchDebounce   time.Duration
	watchNoAnnotate bool
	watchNoHistory  bool
	watchSuffix     string
	watchStyle      string
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE...",
	Short: "Re-check documents whenever they are saved",
	Long: `Check the files once, then watch them and check again each time one
is saved. Saves are debounced so a word processor writing a file in
several steps triggers a single check. Stop with Ctrl+C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "quiet period before re-checking")
	watchCmd.Flags().BoolVar(&watchNoAnnotate, "no-annotate", false, "do not write annotated copies")
	watchCmd.Flags().BoolVar(&watchNoHistory, "no-history", false, "do not record the runs in the history")
	watchCmd.Flags().StringVar(&watchSuffix, "suffix", "", "suffix of annotated copies")
	watchCmd.Flags().StringVarP(&watchStyle, "style", "s", "", "house-style profile name or file")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := requireChecks(); err != nil {
		return err
	}
	svc, err := checkFactory.New(driving.CheckConfig{Style: watchStyle})
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	targets, err := watchTargets(args)
	if err != nil {
		return err
	}
	dirs := make(map[string]bool)
	for path := range targets {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		// Editors replace files on save, so the directory is watched.
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	opts := checkOptions(watchNoAnnotate, watchNoHistory, watchSuffix)

	for i, r := range svc.CheckAll(ctx, args, opts) {
		if i > 0 {
			fmt.Fprintln(out)
		}
		renderResult(out, r)
	}
	fmt.Fprintf(out, "\nWatching %d file(s). Press Ctrl+C to stop.\n", len(targets))

	deb := newDebouncer(watchDebounce)
	defer deb.stop()
	// Bulk changes such as a checkout touch many files at once.
	limiter := rate.NewLimiter(rate.Every(watchDebounce), len(targets))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(event.Name)
			if !targets[path] || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("%s: %s", path, event.Op)
			deb.trigger(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case path := <-deb.C:
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			fmt.Fprintf(out, "\n%s\n", outputStyles.Muted.Render(time.Now().Format("15:04:05")+" changed"))
			renderResult(out, svc.Check(ctx, path, opts))
		}
	}
}

// watchTargets resolves args to absolute, cleaned paths.
func watchTargets(args []string) (map[string]bool, error) {
	targets := make(map[string]bool, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", arg, err)
		}
		targets[filepath.Clean(abs)] = true
	}
	return targets, nil
}

// debouncer delivers a path on C once no trigger for it arrived for delay.
type debouncer struct {
	delay  time.Duration
	C      chan string
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		C:      make(chan string, 16),
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[path]; ok {
		t.Reset(d.delay)
		return
	}
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timers[path] != t {
			// Re-armed after firing; the first delivery already happened.
			d.mu.Unlock()
			return
		}
		delete(d.timers, path)
		d.mu.Unlock()
		d.C <- path
	})
	d.timers[path] = t
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for path, t := range d.timers {
		t.Stop()
		delete(d.timers, path)
	}
}
