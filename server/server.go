// Package server exposes a game.Controller over HTTP and hosts the wasm
// build of the board.
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"negachess/bots"
	"negachess/game"
	"negachess/rules"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// MaxSearchDepth bounds the stateless search endpoint. Cost grows roughly
// 35x per ply.
const MaxSearchDepth = 4

type Config struct {
	WebRoot      string
	AllowOrigins []string
}

type Server struct {
	ctrl *game.Controller
}

func New(ctrl *game.Controller) *Server {
	return &Server{ctrl: ctrl}
}

// Router builds the gin engine with all routes.
func (s *Server) Router(cfg Config) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", Health)

	api := router.Group("/api")
	api.GET("/game", s.GetGame)
	api.POST("/game/move", s.PostMove)
	api.POST("/game/reset", s.PostReset)
	api.GET("/game/pgn", s.GetPGN)
	api.POST("/search", PostSearch)

	if cfg.WebRoot != "" {
		router.Static("/play", cfg.WebRoot)
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/play/")
		})
	}
	return router
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) GetGame(c *gin.Context) {
	c.JSON(http.StatusOK, s.ctrl.State())
}

type moveRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// PostMove applies the human's drop. A rejected move leaves the game as it
// was and the client should snap the piece back.
func (s *Server) PostMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.ctrl.Drop(req.From, req.To); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, game.ErrIllegalMove):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, game.ErrNotYourTurn), errors.Is(err, game.ErrGameOver):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error(), "state": s.ctrl.State()})
		return
	}
	c.JSON(http.StatusOK, s.ctrl.State())
}

func (s *Server) PostReset(c *gin.Context) {
	s.ctrl.Reset()
	c.JSON(http.StatusOK, s.ctrl.State())
}

func (s *Server) GetPGN(c *gin.Context) {
	c.String(http.StatusOK, s.ctrl.PGN())
}

type searchRequest struct {
	FEN   string `json:"fen" binding:"required"`
	Depth int    `json:"depth"`
}

type searchResponse struct {
	Move        string `json:"move"`
	Score       int    `json:"score"`
	Nodes       int    `json:"nodes"`
	Evaluations int    `json:"evaluations"`
	Elapsed     string `json:"elapsed"`
}

// PostSearch runs one root search on a position given as FEN. It does not
// touch the live game.
func PostSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Depth == 0 {
		req.Depth = 3
	}
	if req.Depth < 1 || req.Depth > MaxSearchDepth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "depth must be between 1 and 4"})
		return
	}

	pos, err := rules.FromFEN(strings.TrimSpace(req.FEN))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	sel, err := bots.NewSearcher(req.Depth).SelectMove(pos)
	if errors.Is(err, bots.ErrNoMove) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     err.Error(),
			"checkmate": pos.IsCheckmate(),
			"draw":      pos.IsDraw(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, searchResponse{
		Move:        sel.Move.String(),
		Score:       sel.Score,
		Nodes:       sel.Stats.Nodes,
		Evaluations: sel.Stats.Evaluations,
		Elapsed:     time.Since(start).String(),
	})
}
