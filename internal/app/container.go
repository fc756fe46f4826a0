// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/infra/config"
	"github.com/AlaxSwum/focus-cli/internal/infra/logging"
	"github.com/AlaxSwum/focus-cli/internal/infra/snapshot"
	"github.com/AlaxSwum/focus-cli/internal/infra/supabase"
	"github.com/AlaxSwum/focus-cli/internal/notify"
	"github.com/AlaxSwum/focus-cli/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Config       *config.Config
	ConfigLoader *config.Loader

	Timeline  *domain.Timeline
	Guard     *domain.EditGuard
	Clock     domain.Clock
	Sources   []domain.TaskSource
	Writer    domain.TaskWriter
	Snapshots domain.SnapshotStore
	Scheduler *notify.Scheduler
	Logger    *slog.Logger

	aggregate *usecase.AggregateTasks

	logFile *os.File
	closers []io.Closer
}

// New builds the full production container. The remote ports stay nil
// until the config is complete; commands that need them go through
// RequireRemote.
func New() (*Container, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewAt(path)
}

// NewAt builds a container using the config file at path.
func NewAt(path string) (*Container, error) {
	loader := config.NewLoader(path)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:       cfg,
		ConfigLoader: loader,
		Timeline:     domain.NewTimeline(),
		Guard:        domain.NewEditGuard(),
		Clock:        domain.RealClock{},
	}

	logOut := io.Writer(os.Stderr)
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		c.logFile = f
		logOut = f
	}
	c.Logger = logging.New(logOut, logging.ParseLevel(cfg.Log.Level))

	if cfg.Configured() {
		client := supabase.NewClient(cfg.Remote.URL, cfg.Remote.APIKey)
		c.Sources = []domain.TaskSource{
			supabase.NewTimeBlockSource(client),
			supabase.NewMeetingSource(client),
			supabase.NewTodoSource(client),
		}
		c.Writer = supabase.NewStore(client)
	}

	// The scheduler must be listening before the snapshot seed
	// publishes, or an offline start would answer "nothing upcoming"
	// while the timeline shows cached tasks.
	c.Scheduler = notify.NewScheduler(
		time.Duration(cfg.Notify.LeadMinutes)*time.Minute, c.Clock)
	c.Timeline.Subscribe(c.Scheduler.OnUpdate)

	if store, err := openSnapshots(); err != nil {
		c.Logger.Warn("snapshot cache unavailable", "error", err)
	} else {
		c.Snapshots = store
		c.closers = append(c.closers, store)
		c.seedFromSnapshot()
	}

	return c, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg *config.Config, sources []domain.TaskSource, writer domain.TaskWriter, clock domain.Clock, logger *slog.Logger) *Container {
	c := &Container{
		Config:   cfg,
		Timeline: domain.NewTimeline(),
		Guard:    domain.NewEditGuard(),
		Clock:    clock,
		Sources:  sources,
		Writer:   writer,
		Logger:   logger,
	}
	c.Scheduler = notify.NewScheduler(
		time.Duration(cfg.Notify.LeadMinutes)*time.Minute, clock)
	c.Timeline.Subscribe(c.Scheduler.OnUpdate)
	return c
}

func openSnapshots() (*snapshot.Store, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	return snapshot.New(filepath.Join(dir, "focus", "snapshot.db"))
}

// seedFromSnapshot publishes the cached task set so the UI has data
// before the first fetch, then wires write-back on every publication.
func (c *Container) seedFromSnapshot() {
	userID := c.Config.Remote.UserID
	if userID == "" {
		return
	}
	if tasks, err := c.Snapshots.Load(userID); err != nil {
		c.Logger.Warn("load snapshot", "error", err)
	} else if len(tasks) > 0 {
		c.Timeline.Replace(tasks)
	}
	c.Timeline.Subscribe(func(tasks []domain.Task) {
		if err := c.Snapshots.Save(userID, tasks); err != nil {
			c.Logger.Warn("save snapshot", "error", err)
		}
	})
}

// RequireRemote fails fast when the remote store is not configured.
func (c *Container) RequireRemote() error {
	if c.Writer == nil || len(c.Sources) == 0 {
		return fmt.Errorf("%w: run 'focus init' and fill in %s", domain.ErrNoRemote, c.configPath())
	}
	return nil
}

func (c *Container) configPath() string {
	if c.ConfigLoader != nil {
		return c.ConfigLoader.Path()
	}
	return config.FileName
}

// Close releases the log file and any stores the container opened.
func (c *Container) Close() error {
	var first error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// UseCase factory methods

// AggregateTasksUseCase returns the shared AggregateTasks use case.
// It is memoized: refresh serialization lives in the use case itself.
func (c *Container) AggregateTasksUseCase() *usecase.AggregateTasks {
	if c.aggregate == nil {
		c.aggregate = usecase.NewAggregateTasks(c.Sources, c.Timeline, c.Guard, c.Logger)
	}
	return c.aggregate
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Timeline, c.Guard, c.Writer, c.AggregateTasksUseCase(), c.Logger)
}

// ResizeTaskUseCase returns a new ResizeTask use case.
func (c *Container) ResizeTaskUseCase() *usecase.ResizeTask {
	return usecase.NewResizeTask(c.Timeline, c.Guard, c.Writer, c.AggregateTasksUseCase(), c.Logger)
}

// ToggleCompleteUseCase returns a new ToggleComplete use case.
func (c *Container) ToggleCompleteUseCase() *usecase.ToggleComplete {
	return usecase.NewToggleComplete(c.Timeline, c.Guard, c.Writer, c.AggregateTasksUseCase(), c.Logger)
}

// SkipTaskUseCase returns a new SkipTask use case.
func (c *Container) SkipTaskUseCase() *usecase.SkipTask {
	return usecase.NewSkipTask(c.Timeline, c.Guard, c.Writer, c.AggregateTasksUseCase(), c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Timeline, c.Writer, c.AggregateTasksUseCase(), c.Logger)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Timeline, c.Writer, c.AggregateTasksUseCase(), c.Logger)
}

// DuplicateTaskUseCase returns a new DuplicateTask use case.
func (c *Container) DuplicateTaskUseCase() *usecase.DuplicateTask {
	return usecase.NewDuplicateTask(c.Timeline, c.Writer, c.AggregateTasksUseCase(), c.Logger)
}
