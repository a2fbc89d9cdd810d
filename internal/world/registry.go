package world

import "fmt"

// Registry owns all live entities, keyed by identity, with a parallel slice
// preserving insertion order for iteration. Identities are pre-assigned by
// entity construction; inserting a duplicate is a programming error and
// panics. Removing an unknown identity is a no-op.
//
// No structural mutation is permitted during an iteration pass: removals
// discovered mid-pass go through QueueRemoval and are applied afterwards
// with ApplyRemovals.
type Registry struct {
	byID    map[ID]Entity
	order   []Entity
	pending []ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[ID]Entity, 64)}
}

// Insert stores an entity under its pre-assigned identity.
func (r *Registry) Insert(e Entity) {
	if _, dup := r.byID[e.ID()]; dup {
		panic(fmt.Sprintf("world: duplicate entity id %d", e.ID()))
	}
	r.byID[e.ID()] = e
	r.order = append(r.order, e)
}

// Get returns the entity with the given identity, or nil.
func (r *Registry) Get(id ID) Entity {
	return r.byID[id]
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.byID)
}

// Remove deletes and returns the entity, or nil if not present.
func (r *Registry) Remove(id ID) Entity {
	e, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	for i, o := range r.order {
		if o.ID() == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return e
}

// ForEachRenderable visits every renderable entity in insertion order. The
// pass is finite and restartable; each entity is yielded at most once.
// Callers must not insert or remove during the pass; queue removals
// instead.
func (r *Registry) ForEachRenderable(fn func(Renderable)) {
	for _, e := range r.order {
		if re, ok := e.(Renderable); ok {
			fn(re)
		}
	}
}

// QueueRemoval buffers an identity for removal after the current pass.
func (r *Registry) QueueRemoval(id ID) {
	r.pending = append(r.pending, id)
}

// ApplyRemovals removes all queued identities and returns the removed
// entities. Identities queued more than once, or already gone, are skipped.
func (r *Registry) ApplyRemovals() []Entity {
	if len(r.pending) == 0 {
		return nil
	}
	removed := make([]Entity, 0, len(r.pending))
	for _, id := range r.pending {
		if e := r.Remove(id); e != nil {
			removed = append(removed, e)
		}
	}
	r.pending = r.pending[:0]
	return removed
}
