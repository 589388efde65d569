package physics

import "github.com/lixenwraith/planar/vmath"

// Registry pairs one force with the subset of bodies it acts on. Valid for
// exactly one tick.
type Registry struct {
	Force  Force
	Bodies []*RigidBody
}

// Repository collects registrations during one tick and owns the two-phase
// accumulate/commit protocol. Commit applies the net force per body exactly
// once and empties the repository, so forces never persist across ticks;
// each generator re-registers every tick it should act.
type Repository struct {
	registries []Registry
}

// NewRepository returns an empty repository
func NewRepository() *Repository {
	return &Repository{}
}

// Register adds one (force, body-subset) pairing for the current tick. A
// body may appear in any number of registrations.
func (r *Repository) Register(f Force, bodies ...*RigidBody) {
	r.registries = append(r.registries, Registry{Force: f, Bodies: bodies})
}

// Size returns the number of pending registrations
func (r *Repository) Size() int {
	return len(r.registries)
}

// Commit computes each registration's resultant exactly once, sums the net
// vector per distinct body in registration order, applies it through Impose
// exactly once per body, and clears the repository. Bodies with no
// registrations are untouched; a zero net force is a no-op.
func (r *Repository) Commit() {
	net := make(map[*RigidBody]vmath.Vec, len(r.registries))
	order := make([]*RigidBody, 0, len(r.registries))

	for _, reg := range r.registries {
		resultant := reg.Force.Resultant()
		for _, body := range reg.Bodies {
			if _, seen := net[body]; !seen {
				order = append(order, body)
			}
			net[body] = net[body].Add(resultant)
		}
	}

	for _, body := range order {
		f := net[body]
		if f.IsZero() {
			continue
		}
		body.Impose(f)
	}

	r.Clear()
}

// Clear drops all pending registrations
func (r *Repository) Clear() {
	r.registries = r.registries[:0]
}
