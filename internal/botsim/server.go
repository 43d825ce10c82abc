package botsim

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sniperdeck/sniperdeck/internal/model"
)

// Server exposes the simulated controller over the console's REST contract.
type Server struct {
	addr   string
	bot    *Bot
	server *http.Server
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates an HTTP server for the given bot.
func NewServer(addr string, bot *Bot) *Server {
	if addr == "" {
		addr = model.DefaultListenAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		bot:    bot,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Router builds the gin handler for the bot. Exposed so tests can drive the
// full REST contract without binding a port.
func Router(bot *Bot) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	s := &Server{bot: bot}
	s.registerRoutes(r)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	s.registerRoutes(r)

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/", s.handleRoot)
	r.GET("/status", s.handleStatus)
	r.GET("/tokens", s.handleTokens)
	r.GET("/trades", s.handleTrades)
	r.POST("/start", s.handleStart)
	r.POST("/stop", s.handleStop)
	r.POST("/network/:network", s.handleSetNetwork)
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Bot API is running"})
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.bot.Status())
}

func (s *Server) handleTokens(c *gin.Context) {
	tokens := s.bot.Tokens()
	if tokens == nil {
		tokens = []model.Token{}
	}
	c.JSON(http.StatusOK, tokens)
}

func (s *Server) handleTrades(c *gin.Context) {
	trades := s.bot.Trades()
	if trades == nil {
		trades = []model.Trade{}
	}
	c.JSON(http.StatusOK, trades)
}

func (s *Server) handleStart(c *gin.Context) {
	if s.bot.Start() {
		c.JSON(http.StatusOK, gin.H{"status": "Bot started successfully"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Bot is already running"})
}

func (s *Server) handleStop(c *gin.Context) {
	if s.bot.Stop() {
		c.JSON(http.StatusOK, gin.H{"status": "Bot stopped successfully"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Bot is already stopped"})
}

func (s *Server) handleSetNetwork(c *gin.Context) {
	network := c.Param("network")
	if err := s.bot.SetNetwork(network); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid network"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Network changed to " + network})
}
