package physics

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/planar/geom"
	"github.com/lixenwraith/planar/vmath"
)

// Default material properties, matching common engine defaults
const (
	DefaultRestitution vmath.Scalar = 0.8
	DefaultDamping     vmath.Scalar = 1.0
)

// RigidBody couples one exclusively-owned polygon with point-mass dynamics:
// velocity, a per-tick acceleration accumulator and semi-implicit Euler
// integration. Mass <= 0 marks the body immovable; such bodies ignore
// imposed forces, integration and collision-driven displacement.
//
// Rotation is stored on the polygon for placement only; angular velocity
// and torque are not integrated.
type RigidBody struct {
	id      uuid.UUID
	polygon *geom.Polygon

	position     vmath.Vec
	velocity     vmath.Vec
	acceleration vmath.Vec

	mass    vmath.Scalar
	invMass vmath.Scalar

	Restitution vmath.Scalar
	Damping     vmath.Scalar
}

// NewRigidBody builds a body around polygon, adopting the polygon's current
// world position. Mass <= 0 creates an immovable body with inverse mass 0.
func NewRigidBody(polygon *geom.Polygon, mass vmath.Scalar) *RigidBody {
	var invMass vmath.Scalar
	if mass > 0 {
		invMass = 1 / mass
	}
	return &RigidBody{
		id:          uuid.New(),
		polygon:     polygon,
		position:    polygon.Position,
		mass:        mass,
		invMass:     invMass,
		Restitution: DefaultRestitution,
		Damping:     DefaultDamping,
	}
}

// ID returns the body's stable identity
func (b *RigidBody) ID() uuid.UUID { return b.id }

// Polygon returns the owned collision polygon
func (b *RigidBody) Polygon() *geom.Polygon { return b.polygon }

// Position returns the current world position
func (b *RigidBody) Position() vmath.Vec { return b.position }

// SetPosition moves the body; the polygon follows on the next Update
func (b *RigidBody) SetPosition(p vmath.Vec) { b.position = p }

// Velocity returns the current velocity
func (b *RigidBody) Velocity() vmath.Vec { return b.velocity }

// SetVelocity overrides velocity, the narrow mutation API for collaborators
func (b *RigidBody) SetVelocity(v vmath.Vec) { b.velocity = v }

// Mass returns the configured mass, which may be <= 0 for immovable bodies
func (b *RigidBody) Mass() vmath.Scalar { return b.mass }

// InverseMass returns 1/mass for dynamic bodies and 0 for immovable ones
func (b *RigidBody) InverseMass() vmath.Scalar { return b.invMass }

// IsStatic reports whether the body is immovable (mass <= 0)
func (b *RigidBody) IsStatic() bool { return b.mass <= 0 }

// Impose accumulates force scaled by inverse mass into the acceleration
// buffer. No-op on immovable bodies.
func (b *RigidBody) Impose(force vmath.Vec) {
	if b.IsStatic() {
		return
	}
	b.acceleration = b.acceleration.Add(force.Scale(b.invMass))
}

// Integrate advances the body by dt with semi-implicit Euler: velocity
// first, then position from the new velocity. The acceleration buffer is
// consumed; forces must be reapplied every tick. No-op on immovable bodies.
func (b *RigidBody) Integrate(dt vmath.Scalar) {
	if b.IsStatic() {
		return
	}
	b.velocity = b.velocity.Add(b.acceleration.Scale(dt)).Scale(b.Damping)
	b.position = b.position.Add(b.velocity.Scale(dt))
	b.acceleration = vmath.Vec{}
}

// Translate shifts the body position directly, used by positional collision
// correction. Immovable bodies never move.
func (b *RigidBody) Translate(delta vmath.Vec) {
	if b.IsStatic() {
		return
	}
	b.position = b.position.Add(delta)
}

// Update writes the body position into the owned polygon so collision and
// rendering observe the latest placement
func (b *RigidBody) Update() {
	b.polygon.Position = b.position
}
