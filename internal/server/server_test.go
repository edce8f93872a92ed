package server

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/numsafe/internal/config"
	"github.com/zeusync/numsafe/internal/core/protocol"
	"github.com/zeusync/numsafe/pkg/numeric"
	"github.com/zeusync/numsafe/pkg/validation"
)

func TestServer_Process(t *testing.T) {
	cfg := config.Default()
	cfg.Policy.Preset = "strict"
	cfg.Policy.InvalidNumber = "substitute"
	srv, err := New(&cfg, nil)
	require.NoError(t, err)
	require.Equal(t, validation.NewPolicy(validation.InvalidSubstitute, validation.RangeReject), srv.Policy())

	id := uuid.New()

	frame, err := protocol.Encode(protocol.Update{Entity: id, Kind: protocol.KindVelocity, Velocity: numeric.Vec2{X: math.NaN(), Y: math.Inf(1)}})
	require.NoError(t, err)
	u, status, err := srv.Process(frame)
	require.NoError(t, err)
	require.Equal(t, validation.StatusNotFinite, status)
	require.Equal(t, numeric.Vec2{}, u.Velocity)

	frame, err = protocol.Encode(protocol.Update{Entity: id, Kind: protocol.KindTint, Tint: numeric.NewColorF(0, 2, 0)})
	require.NoError(t, err)
	_, status, err = srv.Process(frame)
	require.True(t, errors.Is(err, ErrRejected))
	require.Equal(t, validation.StatusOutOfRange, status)

	_, _, err = srv.Process([]byte{0})
	require.ErrorIs(t, err, protocol.ErrShortFrame)

	e, ok := srv.Store().Get(id)
	require.True(t, ok)
	require.Equal(t, uint64(1), e.Version)
}

func TestServer_ProcessBatch(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Workers = 2
	srv, err := New(&cfg, nil)
	require.NoError(t, err)

	id := uuid.New()
	var msg []byte
	for i := range 8 {
		msg, err = protocol.AppendFrame(msg, protocol.Update{
			Entity:   id,
			Kind:     protocol.KindPosition,
			Position: numeric.NewVec3(float64(i), math.Inf(1), 0),
		})
		require.NoError(t, err)
	}

	results, err := srv.ProcessBatch(context.Background(), msg)
	require.NoError(t, err)
	require.Len(t, results, 8)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.Equal(t, validation.StatusInfinity, r.Status)
		require.Equal(t, numeric.Vec3{}, r.Update.Position)
	}

	e, ok := srv.Store().Get(id)
	require.True(t, ok)
	require.Equal(t, uint64(8), e.Version)

	_, err = srv.ProcessBatch(context.Background(), msg[:len(msg)-1])
	require.ErrorIs(t, err, protocol.ErrShortFrame)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = srv.ProcessBatch(ctx, msg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestServer_New_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Policy.Preset = "whatever"
	_, err := New(&cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestServer_Lifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	srv, err := New(&cfg, nil)
	require.NoError(t, err)

	require.Nil(t, srv.Addr())
	require.ErrorIs(t, srv.Stop(context.Background()), ErrServerNotRunning)

	require.NoError(t, srv.Start(context.Background()))
	require.NotNil(t, srv.Addr())
	require.ErrorIs(t, srv.Start(context.Background()), ErrServerAlreadyRunning)

	require.NoError(t, srv.Stop(context.Background()))
}
