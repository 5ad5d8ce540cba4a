package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/postfolio/meet/internal/config"
	"github.com/postfolio/meet/internal/core"
	"github.com/postfolio/meet/internal/domain"
	"github.com/postfolio/meet/internal/signaling"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Controller upgrades signaling connections and dispatches their messages
// against the hub.
type Controller struct {
	Hub     *Hub
	Limiter *JoinLimiter
	cfg     *config.Config
}

func NewController(cfg *config.Config) *Controller {
	return &Controller{
		Hub:     NewHub(),
		Limiter: NewJoinLimiter(cfg.JoinLimit, cfg.JoinInterval),
		cfg:     cfg,
	}
}

// HandleSignal is the ws entry point. Every connection gets its own id,
// the socket.id equivalent the client compares setCaller against.
func (ctl *Controller) HandleSignal(ctx context.Context, c *gin.Context) {
	id := domain.ClientID(uuid.NewString())
	log.Info().Str("module", "relay").Str("client_id", string(id)).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "relay").Msg("ws upgrade")
		return
	}

	cl := newClient(id, ws)
	ctx, cancel := context.WithCancel(ctx)

	go ctl.writePump(ctx, cl)
	go func() {
		defer cancel()
		ctl.readPump(ctx, cl)
	}()
}

func (ctl *Controller) writePump(ctx context.Context, c *client) {
	ticker := time.NewTicker(ctl.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "relay").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "relay").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, c *client) {
	defer func() {
		log.Info().Str("module", "relay").Str("client_id", string(c.id)).Msg("readPump closing")
		ctl.disconnect(c)
	}()

	c.conn.SetReadLimit(ctl.cfg.ReadLimit)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				return
			}
			ctl.handleMessage(c, data)
		}
	}
}

func (ctl *Controller) handleMessage(c *client, data []byte) {
	var env struct {
		Type string `json:"type"`
		Room string `json:"room"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "relay").Msg("bad json")
		return
	}

	switch env.Type {
	case signaling.TypeJoinRoom:
		ctl.handleJoin(c, env.Room)

	case signaling.TypeReady, signaling.TypeOffer, signaling.TypeAnswer, signaling.TypeCandidate:
		if c.room == "" {
			ctl.sendError(c, "not in a room")
			return
		}
		ctl.Hub.Forward(c, data)

	default:
		log.Warn().Str("module", "relay").Str("type", env.Type).Msg("unknown signal")
	}
}

func (ctl *Controller) handleJoin(c *client, rawRoom string) {
	name, err := domain.ParseRoomName(rawRoom)
	if err != nil {
		ctl.sendError(c, "invalid room name")
		return
	}
	if c.room != "" {
		ctl.sendError(c, "already in a room")
		return
	}
	if !ctl.Limiter.Allow(c.id) {
		ctl.sendError(c, "too many join attempts")
		return
	}

	switch ctl.Hub.Join(c, name) {
	case JoinCreated:
		ctl.sendJSON(c, &signaling.Message{
			Type:     signaling.TypeCreated,
			Room:     string(name),
			ClientID: string(c.id),
		})
	case JoinJoined:
		ctl.sendJSON(c, &signaling.Message{
			Type:     signaling.TypeJoined,
			Room:     string(name),
			ClientID: string(c.id),
		})
	case JoinFull:
		ctl.sendJSON(c, &signaling.Message{
			Type: signaling.TypeFull,
			Room: string(name),
		})
	}
}

// disconnect vacates the slot and tells the survivor who left and who is
// the caller now.
func (ctl *Controller) disconnect(c *client) {
	departed := c.id
	survivor := ctl.Hub.Leave(c)
	if survivor != nil {
		ctl.sendJSON(survivor, &signaling.Message{
			Type:     signaling.TypeUserDisconnected,
			ClientID: string(departed),
		})
		ctl.sendJSON(survivor, &signaling.Message{
			Type:     signaling.TypeSetCaller,
			ClientID: string(survivor.id),
		})
	}
	ctl.Limiter.Forget(departed)
	c.Close()
}

func (ctl *Controller) sendError(c *client, reason string) {
	ctl.sendJSON(c, map[string]string{"type": signaling.TypeError, "error": reason})
}

func (ctl *Controller) sendJSON(c *client, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "relay").Msg("sendJSON marshal")
		return
	}
	if err := c.TrySend(core.Frame(b)); err != nil {
		log.Warn().Err(err).Str("module", "relay").Str("client_id", string(c.id)).Msg("send dropped")
	}
}
