package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/KBARATH13/QuizCraft/internal/generation"
	"github.com/KBARATH13/QuizCraft/internal/metrics"
	"github.com/KBARATH13/QuizCraft/internal/models"
	"github.com/KBARATH13/QuizCraft/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ChatService is the slice of the chat service the socket handler needs.
type ChatService interface {
	JoinRoom(ctx context.Context, roomID, userID string) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, roomID, userID, content string) (*models.ChatMessage, error)
	MarkRead(ctx context.Context, messageID, userID string) (*models.ChatMessage, error)
}

type clientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type serverMessage struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

type Handler struct {
	Registry *Registry
	Backend  generation.Backend
	Chat     ChatService

	upgrader websocket.Upgrader
}

func NewHandler(registry *Registry, backend generation.Backend, chat ChatService) *Handler {
	return &Handler{
		Registry: registry,
		Backend:  backend,
		Chat:     chat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the request and runs the read loop until the client
// disconnects. Any in-flight generation is cancelled on disconnect.
func (h *Handler) Serve(c *gin.Context) {
	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	wsConn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed for user %s: %v", userID, err)
		return
	}

	conn := NewConn(wsConn, userID)
	h.Registry.Register(conn)
	log.Printf("Websocket connected: user %s", userID)

	gen := &generationSlot{}
	defer func() {
		gen.cancel()
		h.Registry.Unregister(conn)
		log.Printf("Websocket disconnected: user %s", userID)
	}()

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			conn.Send(serverMessage{Type: "error", Message: "Invalid message format"})
			continue
		}
		h.dispatch(conn, gen, msg)
	}
}

func (h *Handler) dispatch(conn *Conn, gen *generationSlot, msg clientMessage) {
	switch msg.Type {
	case "generateQuizRequest":
		var req struct {
			Topic        string `json:"topic"`
			NumQuestions int    `json:"numQuestions"`
		}
		if err := json.Unmarshal(msg.Payload, &req); err != nil || req.Topic == "" {
			conn.Send(serverMessage{Type: "error", Message: "A topic is required to generate a quiz"})
			return
		}
		h.startGeneration(conn, gen, req.NumQuestions, func(ctx context.Context, s *generation.Session) {
			s.RunTopic(ctx, req.Topic)
		})

	case "generateDocQuizRequest":
		var req struct {
			SourceText   string `json:"sourceText"`
			NumQuestions int    `json:"numQuestions"`
		}
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			conn.Send(serverMessage{Type: "error", Message: "Document text is required to generate a quiz"})
			return
		}
		h.startGeneration(conn, gen, req.NumQuestions, func(ctx context.Context, s *generation.Session) {
			s.RunDocument(ctx, req.SourceText)
		})

	case "cancelQuizGeneration":
		gen.cancel()

	case "joinChatRoom":
		var req struct {
			ChatRoomID string `json:"chatRoomId"`
		}
		if err := json.Unmarshal(msg.Payload, &req); err != nil || req.ChatRoomID == "" {
			conn.Send(serverMessage{Type: "chatError", Message: "A chat room id is required"})
			return
		}
		history, err := h.Chat.JoinRoom(context.Background(), req.ChatRoomID, conn.UserID)
		if err != nil {
			conn.Send(serverMessage{Type: "chatError", Message: err.Error()})
			return
		}
		h.Registry.JoinRoom(req.ChatRoomID, conn)
		conn.Send(serverMessage{Type: "chatHistory", Payload: gin.H{
			"chatRoomId": req.ChatRoomID,
			"messages":   history,
		}})

	case "chatMessage":
		var req struct {
			ChatRoomID string `json:"chatRoomId"`
			Content    string `json:"content"`
		}
		if err := json.Unmarshal(msg.Payload, &req); err != nil || req.ChatRoomID == "" || req.Content == "" {
			conn.Send(serverMessage{Type: "chatError", Message: "A chat room id and content are required"})
			return
		}
		if _, err := h.Chat.SendMessage(context.Background(), req.ChatRoomID, conn.UserID, req.Content); err != nil {
			conn.Send(serverMessage{Type: "chatError", Message: err.Error()})
		}

	case "markMessageAsRead":
		var req struct {
			MessageID string `json:"messageId"`
		}
		if err := json.Unmarshal(msg.Payload, &req); err != nil || req.MessageID == "" {
			conn.Send(serverMessage{Type: "chatError", Message: "A message id is required"})
			return
		}
		if _, err := h.Chat.MarkRead(context.Background(), req.MessageID, conn.UserID); err != nil {
			conn.Send(serverMessage{Type: "chatError", Message: err.Error()})
		}

	default:
		conn.Send(serverMessage{Type: "error", Message: "Unknown message type: " + msg.Type})
	}
}

// startGeneration cancels any run already in flight for this connection
// and starts a new session in its own goroutine.
func (h *Handler) startGeneration(conn *Conn, gen *generationSlot, count int, run func(context.Context, *generation.Session)) {
	ctx := gen.replace()
	session := generation.NewSession(h.Backend, connSink{conn: conn}, generation.Config{RequestedCount: count})
	metrics.GenerationSessionsStarted.Inc()
	go func() {
		defer gen.finish(ctx)
		run(ctx, session)
	}()
}

// generationSlot holds at most one active generation per connection.
type generationSlot struct {
	mu        sync.Mutex
	cancelRun context.CancelFunc
	ctx       context.Context
}

// replace cancels the current run, if any, and installs a fresh context.
func (g *generationSlot) replace() context.Context {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancelRun != nil {
		g.cancelRun()
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.ctx = ctx
	g.cancelRun = cancel
	return ctx
}

func (g *generationSlot) cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancelRun != nil {
		g.cancelRun()
	}
}

// finish clears the slot if it still belongs to the given run.
func (g *generationSlot) finish(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ctx == ctx {
		g.cancelRun()
		g.cancelRun = nil
		g.ctx = nil
	}
}
