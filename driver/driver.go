// Package driver advances a Game of Colors grid one generation at a time and
// hands every committed generation to a render callback.
package driver

import (
	"context"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/game-of-colors/model"
	"github.com/sheikhrachel/game-of-colors/rules"
	"github.com/sheikhrachel/game-of-colors/utils"
)

// RenderFunc receives a fully committed generation
type RenderFunc func(model.Snapshot)

// Driver owns a grid and the rule engine that advances it
type Driver struct {
	mu sync.Mutex

	cfg      utils.Config
	engine   *rules.Engine
	wrap     model.WrapMode
	strategy model.SeedStrategy
	pool     *model.GridPool
	grid     *model.Grid

	seed int64
	rng  *rand.Rand

	stats         *utils.Stats
	ticks         int
	stagnantCount int
	lastTick      time.Time

	render RenderFunc
	logger *log.Logger
}

// Option customizes a Driver
type Option func(*Driver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithRenderCallback sets the callback invoked after every commit
func WithRenderCallback(fn RenderFunc) Option {
	return func(d *Driver) {
		d.render = fn
	}
}

// New validates cfg, builds the rule engine and seeds the first generation.
// A zero seed is replaced by the current time.
func New(cfg utils.Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[driver.New]")
	}

	wrap, err := model.ParseWrapMode(cfg.WrapMode)
	if err != nil {
		return nil, errors.Wrap(err, "[driver.New]")
	}
	strategy, err := model.ParseSeedStrategy(cfg.SeedStrategy)
	if err != nil {
		return nil, errors.Wrap(err, "[driver.New]")
	}
	engine, err := rules.NewEngine(cfg.ProductionThreshold, cfg.SurvivalCounts)
	if err != nil {
		return nil, errors.Wrap(err, "[driver.New]")
	}

	d := &Driver{
		cfg:      cfg,
		engine:   engine,
		wrap:     wrap,
		strategy: strategy,
		seed:     cfg.Seed,
		logger:   log.New(io.Discard),
	}
	if cfg.UseMemoryPool {
		d.pool = model.NewGridPool()
	}
	if d.seed == 0 {
		d.seed = time.Now().UnixNano()
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.Initialize(cfg.Width, cfg.Height, strategy); err != nil {
		return nil, err
	}
	return d, nil
}

// Initialize replaces the grid with a freshly seeded width x height generation
func (d *Driver) Initialize(width, height int, strategy model.SeedStrategy) error {
	d.mu.Lock()
	d.rng = model.NewRNG(d.seed)
	colors, err := model.SeedColors(width, height, strategy, d.cfg.Density, d.rng)
	if err != nil {
		d.mu.Unlock()
		return errors.Wrap(err, "[Initialize]")
	}
	grid, err := model.NewGrid(width, height, d.wrap, colors, d.gridOptions()...)
	if err != nil {
		d.mu.Unlock()
		return errors.Wrap(err, "[Initialize]")
	}

	d.cfg.Width, d.cfg.Height = width, height
	d.strategy = strategy
	d.adopt(grid)
	snap := grid.Snapshot()
	wrap, seed := d.wrap, d.seed
	d.mu.Unlock()

	d.logger.Debug("grid initialized",
		"width", width,
		"height", height,
		"wrap", wrap,
		"strategy", strategy,
		"seed", seed,
	)
	d.emit(snap)
	return nil
}

// UseGrid replaces the grid with one built by the caller, for arbitrary initial assignments
func (d *Driver) UseGrid(grid *model.Grid) {
	d.mu.Lock()
	d.wrap = grid.Wrap()
	d.cfg.Width, d.cfg.Height = grid.GetWidth(), grid.GetHeight()
	d.adopt(grid)
	snap := grid.Snapshot()
	d.mu.Unlock()

	d.emit(snap)
}

func (d *Driver) adopt(grid *model.Grid) {
	d.grid = grid
	d.stats = utils.NewStats()
	d.stagnantCount = 0
	d.lastTick = time.Now()
}

func (d *Driver) gridOptions() []model.Option {
	return []model.Option{
		model.WithWorkers(d.cfg.Workers),
		model.WithPool(d.pool),
	}
}

// Reset reseeds the current grid from seed, keeping its size
func (d *Driver) Reset(seed int64) error {
	d.mu.Lock()
	d.seed = seed
	d.rng = model.NewRNG(seed)
	if err := d.grid.Reseed(d.strategy, d.cfg.Density, d.rng); err != nil {
		d.mu.Unlock()
		return errors.Wrap(err, "[Reset]")
	}
	d.stagnantCount = 0
	snap := d.grid.Snapshot()
	d.mu.Unlock()

	d.logger.Info("grid reset", "seed", seed)
	d.emit(snap)
	return nil
}

// OnRender sets the callback invoked after every commit
func (d *Driver) OnRender(fn RenderFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.render = fn
}

func (d *Driver) emit(snap model.Snapshot) {
	d.mu.Lock()
	render := d.render
	d.mu.Unlock()

	if render != nil {
		render(snap)
	}
}

// Tick advances one full generation and then invokes the render callback with
// the committed grid. A failed advance leaves the grid unchanged.
func (d *Driver) Tick() error {
	d.mu.Lock()

	frameStart := time.Now()
	if err := d.grid.Advance(d.engine); err != nil {
		d.mu.Unlock()
		d.logger.Error("advance failed", "error", err)
		return errors.Wrap(err, "[Tick]")
	}
	d.ticks++

	d.updateGameState(frameStart)
	snap := d.grid.Snapshot()
	d.mu.Unlock()

	d.emit(snap)
	return nil
}

// Run ticks at the configured rate until ctx is done, a tick fails, or
// max_generations ticks have run. Cancellation returns ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	interval := d.Config().TickInterval()
	if interval <= 0 {
		interval = time.Nanosecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("stopping",
				"ticks", d.Ticks(),
				"runtime", d.Stats().Runtime().Round(time.Millisecond),
			)
			return ctx.Err()
		case <-ticker.C:
		}

		if err := d.Tick(); err != nil {
			return err
		}
		if limit := d.Config().MaxGenerations; limit > 0 && d.Ticks() >= limit {
			d.logger.Info("reached maximum generations limit", "max", limit)
			return nil
		}
	}
}

// Grid returns the grid being driven
func (d *Driver) Grid() *model.Grid {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.grid
}

// Snapshot copies the current committed generation
func (d *Driver) Snapshot() model.Snapshot {
	return d.Grid().Snapshot()
}

// Engine returns the rule engine built from the configuration
func (d *Driver) Engine() *rules.Engine {
	return d.engine
}

// Config returns the effective configuration
func (d *Driver) Config() utils.Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cfg
}

// Seed returns the seed of the current run
func (d *Driver) Seed() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seed
}

// Ticks returns the number of successful ticks, across restarts
func (d *Driver) Ticks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ticks
}

// Stats returns a copy of the performance statistics
func (d *Driver) Stats() utils.Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *d.stats
}
