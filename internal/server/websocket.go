package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeusync/numsafe/internal/core/observability/log"
	"github.com/zeusync/numsafe/internal/core/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// A binary message may pack several frames. One reply is sent per frame, in
// order:
//
//	binary           the sanitized update, re-encoded
//	"reject:<status>" the policy rejected the update, nothing was stored
//	"error:<reason>"  the frame could not be decoded

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", log.Error(err))
		return
	}
	defer conn.Close()

	s.clients.Add(1)
	defer s.clients.Add(-1)

	conn.SetReadLimit(s.cfg.ReadLimit)
	peer := s.logger.With(log.String("remote", conn.RemoteAddr().String()))
	peer.Debug("peer connected")

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				peer.Warn("read failed", log.Error(err))
			}
			peer.Debug("peer disconnected")
			return
		}

		if err = s.reply(r.Context(), conn, msgType, data); err != nil {
			peer.Warn("write failed", log.Error(err))
			return
		}
	}
}

func (s *Server) reply(ctx context.Context, conn *websocket.Conn, msgType int, data []byte) error {
	if s.cfg.WriteTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
			return err
		}
	}

	if msgType != websocket.BinaryMessage {
		return writeError(conn, ErrBinaryOnly)
	}

	results, err := s.ProcessBatch(ctx, data)
	if err != nil {
		return writeError(conn, err)
	}

	for _, r := range results {
		if err = s.writeResult(conn, r); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) writeResult(conn *websocket.Conn, r Result) error {
	switch {
	case r.Err == nil:
	case errors.Is(r.Err, ErrRejected):
		return conn.WriteMessage(websocket.TextMessage, []byte("reject:"+r.Status.String()))
	default:
		return writeError(conn, r.Err)
	}

	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	var err error
	if *buf, err = protocol.AppendFrame(*buf, r.Update); err != nil {
		return writeError(conn, err)
	}
	return conn.WriteMessage(websocket.BinaryMessage, *buf)
}

func writeError(conn *websocket.Conn, err error) error {
	return conn.WriteMessage(websocket.TextMessage, []byte("error:"+err.Error()))
}
