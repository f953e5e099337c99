package server

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/parity/internal/config"
	"github.com/agenthands/parity/internal/core"
	"github.com/agenthands/parity/internal/core/model"
	"github.com/agenthands/parity/internal/dataset"
	"github.com/agenthands/parity/internal/eval"
)

// Server exposes the processed dataset over HTTP. The pair list and health
// summary are recomputed from the input file on startup and on each /reload;
// reads see a consistent snapshot under the lock.
type Server struct {
	cfg      *config.Config
	pipeline *core.Pipeline

	mu      sync.RWMutex
	pairs   []model.PairRecord
	summary *model.HealthSummary
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	s := &Server{
		cfg:      cfg,
		pipeline: core.NewPipeline(cfg.Pairing),
	}

	if err := s.refresh(); err != nil {
		log.Fatalf("Failed to process dataset: %v", err)
	}

	return s
}

// NewServerWith builds a server from an already-validated config. Used by
// tests; NewServer terminates the process on failure.
func NewServerWith(cfg *config.Config) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		pipeline: core.NewPipeline(cfg.Pairing),
	}
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) refresh() error {
	src, err := dataset.Open(s.cfg.Dataset.Input, s.cfg.SeparatorRune())
	if err != nil {
		return err
	}
	rows, err := dataset.Load(src)
	if err != nil {
		return err
	}
	res, err := s.pipeline.Process(rows)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.pairs = res.Pairs
	s.summary = res.Summary
	s.mu.Unlock()

	log.Printf("Dataset processed: %d rows, %d pairs", len(rows), len(res.Pairs))
	return nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/summary", s.Summary)
	r.GET("/pairs", s.Pairs)
	r.POST("/reload", s.Reload)

	return r
}

func (s *Server) Summary(c *gin.Context) {
	s.mu.RLock()
	summary := s.summary
	s.mu.RUnlock()

	c.JSON(http.StatusOK, summary)
}

func (s *Server) Pairs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	filter := eval.Filter{
		Intent:   c.Query("intent"),
		BiasType: c.Query("bias_type"),
	}

	s.mu.RLock()
	filtered := eval.FilterPairs(s.pairs, filter)
	s.mu.RUnlock()

	total := len(filtered)
	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"total": total,
		"pairs": filtered,
	})
}

func (s *Server) Reload(c *gin.Context) {
	if err := s.refresh(); err != nil {
		log.Printf("Failed to reload dataset: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload dataset"})
		return
	}

	s.mu.RLock()
	totalRows := s.summary.SimpleStats.TotalRows
	totalPairs := len(s.pairs)
	s.mu.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"total_rows":  totalRows,
		"total_pairs": totalPairs,
	})
}
