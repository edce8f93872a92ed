package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/numsafe/internal/config"
	"github.com/zeusync/numsafe/internal/core/adapter"
	"github.com/zeusync/numsafe/internal/core/observability/log"
	"github.com/zeusync/numsafe/internal/core/protocol"
	"github.com/zeusync/numsafe/internal/core/state"
	"github.com/zeusync/numsafe/pkg/generic"
	"github.com/zeusync/numsafe/pkg/numeric"
	"github.com/zeusync/numsafe/pkg/validation"
)

// Server accepts entity updates from untrusted peers over websocket,
// sanitizes them and keeps the latest accepted state.
type Server struct {
	cfg    config.ServerConfig
	policy validation.Policy
	logger log.Log
	store  *state.Store

	position *adapter.Guard[numeric.Vec3]
	velocity *adapter.Guard[numeric.Vec2]
	heading  *adapter.Guard[numeric.Angle]
	tint     *adapter.Guard[numeric.ColorF]

	buffers *generic.Pool[*[]byte]

	httpServer *http.Server
	listener   net.Listener
	running    atomic.Bool
	clients    atomic.Int64
}

// New builds a server from a validated configuration. A nil logger is
// replaced with a nop logger.
func New(cfg *config.Config, logger log.Log) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := cfg.ResolvePolicy()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNop()
	}

	reporter := adapter.LogReporter(logger)
	s := &Server{
		cfg:      cfg.Server,
		policy:   policy,
		logger:   logger.With(log.String("component", "server")),
		store:    state.NewStore(cfg.Server.Shards),
		position: adapter.NewGuard(validation.Vec3s, policy, reporter),
		velocity: adapter.NewGuard(validation.Vec2s, policy, reporter),
		heading:  adapter.NewGuard(validation.Angles, policy, reporter),
		tint:     adapter.NewGuard(validation.Colors, policy, reporter),
		buffers: generic.NewResettingPool(func() *[]byte {
			b := make([]byte, 0, 64)
			return &b
		}, func(b *[]byte) *[]byte {
			*b = (*b)[:0]
			return b
		}),
	}
	return s, nil
}

func (s *Server) Store() *state.Store       { return s.store }
func (s *Server) Policy() validation.Policy { return s.policy }
func (s *Server) Clients() int64            { return s.clients.Load() }

// Handler returns the HTTP handler serving the sync endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.Path, s.handleSync)
	return mux
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServerAlreadyRunning
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:     s.Handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", log.Error(err))
		}
	}()

	s.logger.Info("server started",
		log.String("addr", ln.Addr().String()),
		log.String("path", s.cfg.Path),
		log.Stringer("policy", s.policy),
	)
	return nil
}

// Addr returns the bound listener address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return ErrServerNotRunning
	}
	s.logger.Info("server stopping", log.Int("entities", s.store.Len()))
	return s.httpServer.Shutdown(ctx)
}

// Result is the outcome of one frame.
type Result struct {
	Update protocol.Update
	Status validation.Status
	Err    error
}

// Process decodes one frame, sanitizes its payload with the configured
// policy and stores the result. Rejected updates are not stored and come back
// wrapped in ErrRejected together with their status.
func (s *Server) Process(frame []byte) (protocol.Update, validation.Status, error) {
	r := s.prepare(frame)
	if r.Err == nil {
		s.store.Apply(r.Update)
	}
	return r.Update, r.Status, r.Err
}

// ProcessBatch handles a message packing one or more frames. Frames are
// decoded and sanitized concurrently, at most Workers at a time, and the
// accepted ones are stored in message order. The error is set only when the
// message cannot be split or ctx is done; per-frame failures land in Result.
func (s *Server) ProcessBatch(ctx context.Context, data []byte) ([]Result, error) {
	frames, err := protocol.Split(data)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(frames))
	eg, ctx := errgroup.WithContext(ctx)
	if s.cfg.Workers > 0 {
		eg.SetLimit(s.cfg.Workers)
	}
	for i, frame := range frames {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.prepare(frame)
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if r.Err == nil {
			s.store.Apply(r.Update)
		}
	}
	return results, nil
}

func (s *Server) prepare(frame []byte) Result {
	u, err := protocol.Decode(frame)
	if err != nil {
		return Result{Update: u, Err: err}
	}

	status, ok := s.sanitize(&u)
	if !ok {
		return Result{Update: u, Status: status, Err: fmt.Errorf("%w: %s %s", ErrRejected, u.Kind, status)}
	}
	return Result{Update: u, Status: status}
}

func (s *Server) sanitize(u *protocol.Update) (status validation.Status, ok bool) {
	switch u.Kind {
	case protocol.KindPosition:
		u.Position, status, ok = s.position.TryApply(u.Position)
	case protocol.KindVelocity:
		u.Velocity, status, ok = s.velocity.TryApply(u.Velocity)
	case protocol.KindHeading:
		u.Heading, status, ok = s.heading.TryApply(u.Heading)
	case protocol.KindTint:
		u.Tint, status, ok = s.tint.TryApply(u.Tint)
	default:
		// Byte colors cannot hold invalid numbers.
		return validation.StatusNone, true
	}
	return status, ok
}
