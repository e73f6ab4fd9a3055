// Package http exposes the webhook the messaging-transport gateway posts
// inbound updates to.  It only translates between the wire payload and the
// orchestrator; all conversation logic lives in internal/core.
package http

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"piribot/internal/core"
	"piribot/pkg"
)

// Server bundles the dependencies required by the HTTP handlers.
type Server struct {
	Responder *core.Responder
}

// NewServer constructs a Server around the orchestrator.
func NewServer(responder *core.Responder) *Server {
	return &Server{Responder: responder}
}

// Router builds the gin engine with CORS, request logging and the API
// routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	api := r.Group("/api")
	{
		api.POST("/webhook", s.handleWebhook)
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// handleWebhook processes one inbound update and answers with the replies
// the gateway should deliver to the user.
func (s *Server) handleWebhook(c *gin.Context) {
	var in pkg.IncomingMessage
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	text := extractText(in)
	if text == "" {
		// Nothing usable in the update: drop it with no reply and no
		// state mutation.
		c.JSON(http.StatusOK, pkg.WebhookResponse{Status: "ignored"})
		return
	}

	var replies []pkg.Reply
	switch text {
	case "/start":
		replies = s.Responder.Start(in.UserID)
	case "/help":
		replies = s.Responder.Help(in.UserID)
	case "/language":
		replies = s.Responder.AskLanguage(in.UserID)
	default:
		replies = s.Responder.Respond(c.Request.Context(), in.UserID, text)
	}

	c.JSON(http.StatusOK, pkg.WebhookResponse{Status: "message processed", Replies: replies})
}

// extractText picks the message text out of an update.  Attachments without
// a caption are treated as a generic evaluation-related image note so they
// still flow through the full pipeline.
func extractText(in pkg.IncomingMessage) string {
	text := strings.TrimSpace(in.RawText)
	if text == "" {
		text = strings.TrimSpace(in.RawCaption)
	}
	if text == "" && in.HasAttachment {
		text = core.ImageFallbackText
	}
	return text
}

// requestLogger logs method, path, status and latency for every request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%3d | %13v | %15s | %-7s %s",
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
		)
	}
}
