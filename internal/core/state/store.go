package state

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/numsafe/internal/core/protocol"
	"github.com/zeusync/numsafe/pkg/numeric"
)

const defaultShardCount = 16

// Entity is the last accepted state of a synchronized object.
type Entity struct {
	ID       uuid.UUID
	Position numeric.Vec3
	Velocity numeric.Vec2
	Heading  numeric.Angle
	Tint     numeric.ColorF
	Tint32   numeric.ColorByte
	Version  uint64
}

// Store keeps entity state in hash-sharded maps, one RWMutex per shard.
// Callers are expected to hand it sanitized updates only.
type Store struct {
	shards  []shard
	count   uint64
	version atomic.Uint64
}

type shard struct {
	mx       sync.RWMutex
	entities map[uuid.UUID]Entity
}

// NewStore creates a store with shardCount shards (16 when <= 0).
func NewStore(shardCount int) *Store {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}

	s := &Store{
		shards: make([]shard, shardCount),
		count:  uint64(shardCount),
	}
	for i := range s.shards {
		s.shards[i].entities = make(map[uuid.UUID]Entity)
	}
	return s
}

func (s *Store) shardFor(id uuid.UUID) *shard {
	return &s.shards[xxhash.Sum64(id[:])%s.count]
}

// Apply merges u into the entity it targets, creating it on first sight
// with an opaque black tint, and returns the new state.
func (s *Store) Apply(u protocol.Update) Entity {
	sh := s.shardFor(u.Entity)

	sh.mx.Lock()
	defer sh.mx.Unlock()

	e, ok := sh.entities[u.Entity]
	if !ok {
		e = Entity{ID: u.Entity, Tint: numeric.NewColorF(0, 0, 0), Tint32: numeric.NewColorByte(0, 0, 0)}
	}

	switch u.Kind {
	case protocol.KindPosition:
		e.Position = u.Position
	case protocol.KindVelocity:
		e.Velocity = u.Velocity
	case protocol.KindHeading:
		e.Heading = u.Heading
	case protocol.KindTint:
		e.Tint = u.Tint
	case protocol.KindTint32:
		e.Tint32 = u.Tint32
	}

	e.Version++
	sh.entities[u.Entity] = e
	s.version.Add(1)
	return e
}

// Get returns the entity with the given id.
func (s *Store) Get(id uuid.UUID) (Entity, bool) {
	sh := s.shardFor(id)

	sh.mx.RLock()
	defer sh.mx.RUnlock()

	e, ok := sh.entities[id]
	return e, ok
}

// Remove drops an entity and reports whether it existed.
func (s *Store) Remove(id uuid.UUID) bool {
	sh := s.shardFor(id)

	sh.mx.Lock()
	defer sh.mx.Unlock()

	_, ok := sh.entities[id]
	delete(sh.entities, id)
	if ok {
		s.version.Add(1)
	}
	return ok
}

// Len returns the number of entities across all shards.
func (s *Store) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mx.RLock()
		n += len(sh.entities)
		sh.mx.RUnlock()
	}
	return n
}

// Version increases on every accepted change.
func (s *Store) Version() uint64 { return s.version.Load() }

// Range calls fn for every entity until fn returns false. Each shard is
// read-locked while it is visited, so fn must not write to the store.
func (s *Store) Range(fn func(Entity) bool) {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mx.RLock()
		for _, e := range sh.entities {
			if !fn(e) {
				sh.mx.RUnlock()
				return
			}
		}
		sh.mx.RUnlock()
	}
}
