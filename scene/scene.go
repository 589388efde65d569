package scene

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/geom"
	"github.com/lixenwraith/planar/physics"
	"github.com/lixenwraith/planar/vmath"
)

// Spec is a declarative simulation setup: engine rates, world gravity and
// the initial body list
type Spec struct {
	Engine  engine.Config `yaml:"engine"`
	Gravity [2]float64    `yaml:"gravity"`
	Bodies  []BodySpec    `yaml:"bodies"`
}

// BodySpec describes one body. Shape selects the factory: rect, square,
// triangle, isosceles, circle.
type BodySpec struct {
	Shape       string     `yaml:"shape"`
	Width       float64    `yaml:"width,omitempty"`
	Height      float64    `yaml:"height,omitempty"`
	Side        float64    `yaml:"side,omitempty"`
	Radius      float64    `yaml:"radius,omitempty"`
	Sides       int        `yaml:"sides,omitempty"`
	Mass        float64    `yaml:"mass"`
	Position    [2]float64 `yaml:"position"`
	Velocity    [2]float64 `yaml:"velocity,omitempty"`
	Rotation    float64    `yaml:"rotation,omitempty"`
	Restitution *float64   `yaml:"restitution,omitempty"`
	Damping     *float64   `yaml:"damping,omitempty"`
}

// Load decodes a YAML scene and builds a running-ready engine. Gravity, if
// non-zero, is wired as a constant-force generator re-registered for every
// dynamic body each tick.
func Load(r io.Reader, logger *zap.Logger) (*engine.Engine, error) {
	var spec Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return Build(spec, logger)
}

// LoadFile is Load over a file path
func LoadFile(path string, logger *zap.Logger) (*engine.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open: %w", err)
	}
	defer f.Close()
	return Load(f, logger)
}

// Build assembles an engine from an in-memory spec
func Build(spec Spec, logger *zap.Logger) (*engine.Engine, error) {
	cfg := spec.Engine
	if cfg == (engine.Config{}) {
		cfg = engine.DefaultConfig()
	}

	eng, err := engine.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	for i, bs := range spec.Bodies {
		body, err := buildBody(bs)
		if err != nil {
			return nil, fmt.Errorf("scene: body %d: %w", i, err)
		}
		eng.AddBody(body)
	}

	gravity := vmath.V2(vmath.S(spec.Gravity[0]), vmath.S(spec.Gravity[1]))
	if !gravity.IsZero() {
		eng.AddGenerator(func(r *physics.Repository) {
			for _, b := range eng.Bodies() {
				if b.IsStatic() {
					continue
				}
				r.Register(physics.Constant{Value: gravity}, b)
			}
		})
	}

	return eng, nil
}

func buildBody(bs BodySpec) (*physics.RigidBody, error) {
	var poly *geom.Polygon
	switch bs.Shape {
	case "rect":
		poly = geom.Rect(vmath.S(bs.Width), vmath.S(bs.Height))
	case "square":
		poly = geom.Square(vmath.S(bs.Side))
	case "triangle":
		poly = geom.Triangle(vmath.S(bs.Width), vmath.S(bs.Height))
	case "isosceles":
		poly = geom.Isosceles(vmath.S(bs.Width), vmath.S(bs.Height))
	case "circle":
		poly = geom.Circle(vmath.S(bs.Radius), bs.Sides)
	default:
		return nil, fmt.Errorf("unknown shape %q", bs.Shape)
	}

	poly.Position = vmath.V2(vmath.S(bs.Position[0]), vmath.S(bs.Position[1]))
	poly.Rotation = vmath.S(bs.Rotation)

	body := physics.NewRigidBody(poly, vmath.S(bs.Mass))
	body.SetVelocity(vmath.V2(vmath.S(bs.Velocity[0]), vmath.S(bs.Velocity[1])))
	if bs.Restitution != nil {
		body.Restitution = vmath.S(*bs.Restitution)
	}
	if bs.Damping != nil {
		body.Damping = vmath.S(*bs.Damping)
	}
	return body, nil
}
