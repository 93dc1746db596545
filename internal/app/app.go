// Package app implements the application layer for podfiler.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/podfiler/internal/build"
	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/podfiler/internal/core/ports"
	"go.trai.ch/podfiler/internal/engine/podlock"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RunOptions configures a parse-lock run.
type RunOptions struct {
	// NoCache regenerates every output even when its lock file is unchanged.
	NoCache bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	parser       ports.LockParser
	encoder      ports.LockEncoder
	files        ports.FileSystem
	hasher       ports.Hasher
	store        ports.LockInfoStore
	telemetry    ports.Telemetry
	watcher      ports.Watcher
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	parser ports.LockParser,
	encoder ports.LockEncoder,
	files ports.FileSystem,
	hasher ports.Hasher,
	store ports.LockInfoStore,
	telemetry ports.Telemetry,
	watcher ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		parser:       parser,
		encoder:      encoder,
		files:        files,
		hasher:       hasher,
		store:        store,
		telemetry:    telemetry,
		watcher:      watcher,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp lock info.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// LoadJobs reads the lock jobs declared in the configuration file at path.
func (a *App) LoadJobs(path string) ([]domain.LockJob, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if len(cfg.Jobs) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoLockFiles, "configuration declares no locks"), "path", path)
	}
	return cfg.Jobs, nil
}

// ParseLock parses every job's Podfile.lock and writes its pod locks to the job output.
// Jobs run concurrently; the first failure cancels the jobs that have not started yet.
func (a *App) ParseLock(ctx context.Context, jobs []domain.LockJob, opts RunOptions) ([]domain.JobResult, error) {
	if len(jobs) == 0 {
		return nil, domain.ErrNoLockFiles
	}

	results := make([]domain.JobResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, job := range jobs {
		g.Go(func() error {
			res, err := a.runJob(gctx, job, opts)
			if err != nil {
				return zerr.With(err, "lock", job.Lock)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *App) runJob(ctx context.Context, job domain.LockJob, opts RunOptions) (res domain.JobResult, err error) {
	if err := ctx.Err(); err != nil {
		return domain.JobResult{}, err
	}

	_, vertex := a.telemetry.Record(ctx, "parse "+job.Lock)
	defer func() {
		if err != nil {
			vertex.Log(domain.LogLevelError, err.Error())
		}
		vertex.Complete(err)
	}()

	content, err := a.files.ReadFile(job.Lock)
	if err != nil {
		return domain.JobResult{}, zerr.Wrap(err, "failed to read lock file")
	}
	inputHash := a.hasher.HashBytes(content)

	if !opts.NoCache {
		info, err := a.cachedInfo(job, inputHash)
		if err != nil {
			return domain.JobResult{}, err
		}
		if info != nil {
			vertex.Cached()
			a.logger.Info(fmt.Sprintf("%s is up to date", job.Output))
			return domain.JobResult{Job: job, Status: domain.JobStatusCached, PodCount: info.PodCount}, nil
		}
	}

	locks, err := a.parser.Parse(string(content))
	if err != nil {
		return domain.JobResult{}, zerr.Wrap(err, "failed to parse lock file")
	}

	data, err := a.encoder.Encode(locks)
	if err != nil {
		return domain.JobResult{}, err
	}
	if err := a.files.WriteFile(job.Output, data); err != nil {
		return domain.JobResult{}, zerr.With(zerr.Wrap(err, "failed to write output file"), "output", job.Output)
	}

	err = a.store.Put(domain.LockInfo{
		LockPath:   job.Lock,
		OutputPath: job.Output,
		InputHash:  inputHash,
		OutputHash: a.hasher.HashBytes(data),
		Version:    build.Version,
		PodCount:   len(locks),
		Timestamp:  a.now(),
	})
	if err != nil {
		return domain.JobResult{}, zerr.Wrap(err, "failed to record lock state")
	}

	msg := fmt.Sprintf("wrote %d pods to %s", len(locks), job.Output)
	vertex.Log(domain.LogLevelInfo, msg)
	a.logger.Info(msg)
	return domain.JobResult{Job: job, Status: domain.JobStatusCompleted, PodCount: len(locks)}, nil
}

// cachedInfo returns the stored lock info when the output generated from the
// same lock content is still in place, and nil otherwise.
func (a *App) cachedInfo(job domain.LockJob, inputHash string) (*domain.LockInfo, error) {
	info, err := a.store.Get(job.Lock)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read lock state")
	}
	if info == nil || info.InputHash != inputHash || info.OutputPath != job.Output {
		return nil, nil
	}
	// Outputs written by a different build may use another encoding.
	if info.Version != build.Version {
		return nil, nil
	}

	outputHash, err := a.hasher.HashFile(job.Output)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to hash output file"), "output", job.Output)
	}
	if outputHash != info.OutputHash {
		return nil, nil
	}
	return info, nil
}

// Watch runs jobs once and then again whenever one of their lock files changes,
// until ctx is canceled. Failed runs are logged and do not end the watch.
func (a *App) Watch(ctx context.Context, jobs []domain.LockJob, opts RunOptions) error {
	if len(jobs) == 0 {
		return domain.ErrNoLockFiles
	}

	byLock := make(map[string][]domain.LockJob, len(jobs))
	paths := make([]string, 0, len(jobs))
	for _, job := range jobs {
		lock := filepath.Clean(job.Lock)
		if _, ok := byLock[lock]; !ok {
			paths = append(paths, lock)
		}
		byLock[lock] = append(byLock[lock], job)
	}

	if err := a.watcher.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn("failed to stop watcher: " + err.Error())
		}
	}()

	var mu sync.Mutex
	run := func(jobs []domain.LockJob) {
		mu.Lock()
		defer mu.Unlock()
		if _, err := a.ParseLock(ctx, jobs, opts); err != nil && ctx.Err() == nil {
			a.logger.Error(err)
		}
	}

	run(jobs)
	a.logger.Info(fmt.Sprintf("watching %d lock files", len(paths)))

	for changed := range a.watcher.Changes() {
		var affected []domain.LockJob
		for _, path := range changed {
			affected = append(affected, byLock[path]...)
		}
		if len(affected) > 0 {
			run(affected)
		}
	}
	return ctx.Err()
}

// Diff parses two Podfile.lock files and reports how the second differs from the first.
func (a *App) Diff(oldPath, newPath string) (*domain.LockDiff, error) {
	old, err := a.readLocks(oldPath)
	if err != nil {
		return nil, err
	}
	updated, err := a.readLocks(newPath)
	if err != nil {
		return nil, err
	}
	return podlock.Diff(old, updated), nil
}

func (a *App) readLocks(path string) ([]domain.PodLock, error) {
	content, err := a.files.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read lock file")
	}
	locks, err := a.parser.Parse(string(content))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lock file"), "lock", path)
	}
	return locks, nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}
