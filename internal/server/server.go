package server

import (
	"ctchen222/ox-game/internal/api/response"
	"ctchen222/ox-game/internal/hub"
	"ctchen222/ox-game/internal/hub/types"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

//go:embed web
var webFiles embed.FS

type Server struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
	engine   *gin.Engine
}

func NewServer(h *hub.Hub) *Server {
	s := &Server{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.engine = s.routes()
	return s
}

// Engine returns the HTTP handler serving the page, the websocket and the API.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	static, err := fs.Sub(webFiles, "web")
	if err != nil {
		panic(err)
	}

	engine.GET("/", s.handleIndex)
	engine.StaticFS("/static", http.FS(static))
	engine.GET("/ws", s.handleWebSocket)
	engine.GET("/healthz", s.handleHealth)
	engine.GET("/api/sessions/:id", s.handleSnapshot)
	return engine
}

func (s *Server) handleIndex(c *gin.Context) {
	page, err := webFiles.ReadFile("web/index.html")
	if err != nil {
		response.ErrorFromError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) handleHealth(c *gin.Context) {
	response.SuccessResponse(c, gin.H{
		"status":   "ok",
		"sessions": s.hub.Count(),
	})
}

func (s *Server) handleSnapshot(c *gin.Context) {
	sess, ok := s.hub.Lookup(c.Param("id"))
	if !ok {
		response.ErrorFromError(c, http.StatusInternalServerError, response.ErrSessionNotFound)
		return
	}
	response.SuccessResponse(c, sess.Snapshot())
}

// handleWebSocket's only responsibility is to upgrade the connection and
// pass a registration request to the hub, which mounts a fresh game on it.
func (s *Server) handleWebSocket(c *gin.Context) {
	r := c.Request
	ctx, span := tracer.Start(r.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", r.URL.String()),
		attribute.String("http.method", r.Method),
	))
	defer span.End()

	conn, err := s.upgrader.Upgrade(c.Writer, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	mounted := make(chan string, 1)
	s.hub.Register() <- &types.RegistrationRequest{
		Conn:    conn,
		Ctx:     ctx, // Pass the context with the span
		Mounted: mounted,
	}
	span.SetAttributes(attribute.String("session.id", <-mounted))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.DebugContext(c.Request.Context(), "http request",
			"http.method", c.Request.Method,
			"http.path", c.Request.URL.Path,
			"http.status", c.Writer.Status(),
			"http.duration", time.Since(start),
		)
	}
}
