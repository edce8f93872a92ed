package state

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/numsafe/internal/core/protocol"
	"github.com/zeusync/numsafe/pkg/numeric"
)

func TestStore(t *testing.T) {
	t.Run("Apply Merges Properties", func(t *testing.T) {
		s := NewStore(4)
		id := uuid.New()

		s.Apply(protocol.Update{Entity: id, Kind: protocol.KindPosition, Position: numeric.Vec3{X: 1}})
		e := s.Apply(protocol.Update{Entity: id, Kind: protocol.KindHeading, Heading: numeric.FromRadians(2)})

		require.Equal(t, numeric.Vec3{X: 1}, e.Position)
		require.Equal(t, 2.0, e.Heading.Radians())
		require.Equal(t, numeric.NewColorF(0, 0, 0), e.Tint)
		require.Equal(t, uint64(2), e.Version)

		got, ok := s.Get(id)
		require.True(t, ok)
		require.Equal(t, e, got)
		require.Equal(t, uint64(2), s.Version())
	})

	t.Run("Default Shard Count", func(t *testing.T) {
		require.Len(t, NewStore(0).shards, defaultShardCount)
	})

	t.Run("Remove", func(t *testing.T) {
		s := NewStore(2)
		id := uuid.New()
		s.Apply(protocol.Update{Entity: id, Kind: protocol.KindTint32, Tint32: numeric.NewColorByte(1, 2, 3)})

		require.True(t, s.Remove(id))
		require.False(t, s.Remove(id))
		_, ok := s.Get(id)
		require.False(t, ok)
		require.Equal(t, 0, s.Len())
	})

	t.Run("Range", func(t *testing.T) {
		s := NewStore(3)
		for i := 0; i < 10; i++ {
			s.Apply(protocol.Update{Entity: uuid.New(), Kind: protocol.KindVelocity})
		}

		seen := 0
		s.Range(func(Entity) bool { seen++; return true })
		require.Equal(t, 10, seen)

		seen = 0
		s.Range(func(Entity) bool { seen++; return seen < 3 })
		require.Equal(t, 3, seen)
	})

	t.Run("Concurrent Apply", func(t *testing.T) {
		s := NewStore(8)
		ids := make([]uuid.UUID, 32)
		for i := range ids {
			ids[i] = uuid.New()
		}

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for _, id := range ids {
					s.Apply(protocol.Update{Entity: id, Kind: protocol.KindPosition, Position: numeric.Vec3{Z: 1}})
				}
			}()
		}
		wg.Wait()

		require.Equal(t, len(ids), s.Len())
		for _, id := range ids {
			e, ok := s.Get(id)
			require.True(t, ok)
			require.Equal(t, uint64(8), e.Version)
		}
		require.Equal(t, uint64(8*len(ids)), s.Version())
	})
}
