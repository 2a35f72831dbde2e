// Package gateway serves battles to browser clients over HTTP and websockets
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
)

const (
	// DefaultWriteTimeout bounds a single socket write
	DefaultWriteTimeout = 10 * time.Second

	// DefaultReadTimeout closes sockets that send nothing for this long
	DefaultReadTimeout = 2 * time.Minute

	maxMessageSize = 4096
)

// Config holds dependencies for the gateway
type Config struct {
	BattleService battle.Service
	// EventBus, when set, lets the gateway push timeouts to connected players
	EventBus events.EventBus

	// AllowedOrigins restricts websocket upgrades; empty allows any origin
	AllowedOrigins []string
	WriteTimeout   time.Duration
	ReadTimeout    time.Duration
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.WriteTimeout < 0 {
		vb.Field("WriteTimeout", "must not be negative")
	}
	if c.ReadTimeout < 0 {
		vb.Field("ReadTimeout", "must not be negative")
	}
	return vb.Build()
}

// Gateway routes HTTP and websocket traffic to the battle service
type Gateway struct {
	battles      battle.Service
	eventBus     events.EventBus
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	readTimeout  time.Duration
}

// New creates a gateway
func New(cfg *Config) (*Gateway, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	g := &Gateway{
		battles:      cfg.BattleService,
		eventBus:     cfg.EventBus,
		writeTimeout: cfg.WriteTimeout,
		readTimeout:  cfg.ReadTimeout,
	}
	if g.writeTimeout == 0 {
		g.writeTimeout = DefaultWriteTimeout
	}
	if g.readTimeout == 0 {
		g.readTimeout = DefaultReadTimeout
	}

	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	g.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(allowed) == 0 {
				return true
			}
			return allowed[r.Header.Get("Origin")]
		},
	}

	return g, nil
}

// Router returns the gateway's routes
func (g *Gateway) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", g.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/battles/{playerID}", g.handleGetBattle).Methods(http.MethodGet)
	r.HandleFunc("/ws/{playerID}", g.handleSocket)
	return r
}

func (g *Gateway) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (g *Gateway) handleGetBattle(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]

	out, err := g.battles.GetBattle(r.Context(), &battle.GetBattleInput{PlayerID: playerID})
	if err != nil {
		writeJSON(w, errors.GetCode(err).HTTPStatus(), newErrorBody(err))
		return
	}
	writeJSON(w, http.StatusOK, v1alpha1.NewBattle(out.Session))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

func (g *Gateway) handleSocket(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(r.Context(), "Websocket upgrade failed", "player_id", playerID, "error", err)
		return
	}
	defer func() { _ = conn.Close() }()
	conn.SetReadLimit(maxMessageSize)

	ctx := r.Context()
	slog.InfoContext(ctx, "Player connected", "player_id", playerID)

	sock := &socket{conn: conn, writeTimeout: g.writeTimeout}
	done := make(chan struct{})
	defer close(done)
	if g.eventBus != nil {
		subID := g.watchTimeouts(ctx, playerID, sock, done)
		defer func() { _ = g.eventBus.Unsubscribe(subID) }()
	}

	if msg := g.greeting(ctx, playerID); msg != nil {
		if err := sock.send(msg); err != nil {
			return
		}
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(g.readTimeout))

		var in ClientMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.WarnContext(ctx, "Websocket read failed", "player_id", playerID, "error", err)
			}
			slog.InfoContext(ctx, "Player disconnected", "player_id", playerID)
			return
		}

		if err := sock.send(g.dispatch(ctx, playerID, &in)); err != nil {
			slog.WarnContext(ctx, "Websocket write failed", "player_id", playerID, "error", err)
			return
		}
	}
}

// watchTimeouts subscribes to battle timeouts for one player and pushes the
// timed out battle down the socket until done is closed. The bus handler only
// signals; the write happens on the watcher goroutine.
func (g *Gateway) watchTimeouts(ctx context.Context, playerID string, sock *socket, done <-chan struct{}) string {
	pending := make(chan struct{}, 1)
	subID := g.eventBus.SubscribeFunc(battle.EventTypeBattleTimedOut, 0,
		func(_ context.Context, event events.Event) error {
			if id, ok := battle.TimedOutPlayer(event); !ok || id != playerID {
				return nil
			}
			select {
			case pending <- struct{}{}:
			default:
			}
			return nil
		})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-pending:
			}

			out, err := g.battles.GetBattle(ctx, &battle.GetBattleInput{PlayerID: playerID})
			if err != nil {
				slog.WarnContext(ctx, "Failed to load timed out battle", "player_id", playerID, "error", err)
				continue
			}
			msg := &ServerMessage{Type: TypeTimeout, Battle: v1alpha1.NewBattle(out.Session)}
			if err := sock.send(msg); err != nil {
				slog.WarnContext(ctx, "Failed to push battle timeout", "player_id", playerID, "error", err)
				return
			}
		}
	}()

	return subID
}

// greeting tells a connecting client where its battle stands
func (g *Gateway) greeting(ctx context.Context, playerID string) *ServerMessage {
	out, err := g.battles.GetBattle(ctx, &battle.GetBattleInput{PlayerID: playerID})
	if err != nil {
		if !errors.Is(err, errors.ErrNoActiveSession) {
			slog.WarnContext(ctx, "Failed to load battle on connect", "player_id", playerID, "error", err)
		}
		return nil
	}

	msgType := TypeState
	if out.Session.Status == entities.StatusTimedOut {
		msgType = TypeTimeout
	}
	return &ServerMessage{Type: msgType, Battle: v1alpha1.NewBattle(out.Session)}
}

// dispatch handles one client message. Every message counts as activity.
func (g *Gateway) dispatch(ctx context.Context, playerID string, in *ClientMessage) *ServerMessage {
	if _, err := g.battles.Touch(ctx, &battle.TouchInput{PlayerID: playerID}); err != nil {
		return errorMessage(err)
	}

	switch in.Type {
	case TypePing:
		return &ServerMessage{Type: TypePong}

	case TypeNextTurn:
		out, err := g.battles.NextTurn(ctx, &battle.NextTurnInput{PlayerID: playerID})
		if err != nil {
			return errorMessage(err)
		}
		return &ServerMessage{Type: TypeTurn, Turn: out.Outcome, Battle: v1alpha1.NewBattle(out.Session)}

	case TypeCapture:
		out, err := g.battles.AttemptCapture(ctx, &battle.AttemptCaptureInput{PlayerID: playerID, Ball: in.Ball})
		if err != nil {
			return errorMessage(err)
		}
		return &ServerMessage{Type: TypeCaptureResult, Capture: out.Outcome, Battle: v1alpha1.NewBattle(out.Session)}

	case TypeEnd:
		out, err := g.battles.EndBattle(ctx, &battle.EndBattleInput{PlayerID: playerID})
		if err != nil {
			return errorMessage(err)
		}
		return &ServerMessage{Type: TypeEnded, Battle: v1alpha1.NewBattle(out.Session)}

	default:
		return errorMessage(errors.InvalidArgumentf("unknown message type %q", in.Type))
	}
}

func errorMessage(err error) *ServerMessage {
	return &ServerMessage{Type: TypeError, Error: newErrorBody(err)}
}

// socket serializes writes from the read loop and the timeout watcher
type socket struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	writeTimeout time.Duration
}

func (s *socket) send(msg *ServerMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	return s.conn.WriteJSON(msg)
}
