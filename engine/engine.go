package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/planar/physics"
	"github.com/lixenwraith/planar/vmath"
)

// Generator registers forces with the repository each step. Generators run
// every iteration of every step; anything they register is committed and
// cleared within that same iteration.
type Generator func(*physics.Repository)

// Engine owns the body list, the force repository and the fixed-timestep
// loop. All physics for one step runs to completion before the next;
// collaborators (rendering, input) run strictly between frames and touch
// the simulation only through the bodies' narrow mutation API and the
// repository.
type Engine struct {
	cfg Config
	log *zap.Logger

	bodies     []*physics.RigidBody
	repository *physics.Repository
	generators []Generator

	accumulator vmath.Scalar
	removals    []*physics.RigidBody
	ticks       uint64
}

// New builds an engine from a validated config. A nil logger disables
// logging.
func New(cfg Config, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:        cfg,
		log:        logger,
		repository: physics.NewRepository(),
	}, nil
}

// Config returns the simulation constants the engine was built with
func (e *Engine) Config() Config { return e.cfg }

// Repository exposes the force repository so collaborators can register
// forces for the current tick
func (e *Engine) Repository() *physics.Repository { return e.repository }

// Ticks returns the number of completed physics steps
func (e *Engine) Ticks() uint64 { return e.ticks }

// AddBody adopts a body into the simulation and binds its polygon to the
// body position
func (e *Engine) AddBody(b *physics.RigidBody) {
	b.Update()
	e.bodies = append(e.bodies, b)
	e.log.Debug("body added",
		zap.String("id", b.ID().String()),
		zap.Bool("static", b.IsStatic()),
	)
}

// RemoveBody enqueues a body for removal. The body stays in the simulation
// through the current tick's integrate/collide pass and is gone from the
// next tick's body list; the list is never mutated during live iteration.
func (e *Engine) RemoveBody(b *physics.RigidBody) {
	e.removals = append(e.removals, b)
}

// AddGenerator registers a per-step force generator
func (e *Engine) AddGenerator(g Generator) {
	e.generators = append(e.generators, g)
}

// Bodies returns a snapshot of the current body list for read-only
// collaborators
func (e *Engine) Bodies() []*physics.RigidBody {
	out := make([]*physics.RigidBody, len(e.bodies))
	copy(out, e.bodies)
	return out
}

// Update advances simulated time by elapsed wall seconds. Time accumulates
// until at least one fixed tick interval is pending, then whole steps run
// back to back; rendering rate never changes step size. Catch-up is capped
// at MaxStepsPerFrame, dropping the remaining backlog with a warning.
func (e *Engine) Update(elapsed vmath.Scalar) {
	e.accumulator += elapsed * e.cfg.Speed
	interval := e.cfg.TickInterval()

	steps := 0
	for e.accumulator.Gte(interval) {
		if steps >= e.cfg.MaxStepsPerFrame {
			e.log.Warn("tick backlog exceeded cap, dropping accumulated time",
				zap.Float64("dropped_seconds", e.accumulator.Float()),
				zap.Int("max_steps", e.cfg.MaxStepsPerFrame),
			)
			e.accumulator = 0
			break
		}
		e.accumulator -= interval
		e.step(interval)
		steps++
	}
}

// Step runs exactly one physics step, bypassing the accumulator. Intended
// for tests and offline simulation.
func (e *Engine) Step() {
	e.step(e.cfg.TickInterval())
}

// step performs one fixed tick: forces, integration, polygon sync,
// collision resolution, then deferred removals. Faults here are fatal to
// the step; nothing is caught or retried.
func (e *Engine) step(dt vmath.Scalar) {
	for i := 0; i < e.cfg.Iterations; i++ {
		for _, g := range e.generators {
			g(e.repository)
		}
		e.repository.Commit()
	}

	for _, b := range e.bodies {
		b.Integrate(dt)
		b.Update()
	}

	physics.ResolveAll(e.bodies)

	e.drainRemovals()
	e.ticks++
}

// drainRemovals applies deferred removals strictly after the
// integrate/collide pass
func (e *Engine) drainRemovals() {
	if len(e.removals) == 0 {
		return
	}
	for _, dead := range e.removals {
		for i, b := range e.bodies {
			if b == dead {
				e.bodies = append(e.bodies[:i], e.bodies[i+1:]...)
				e.log.Debug("body removed", zap.String("id", b.ID().String()))
				break
			}
		}
	}
	e.removals = e.removals[:0]
}
