package api

import (
	"context"
	"log/slog"
	"strings"
	"taxmemo/app/config"
	"taxmemo/app/model"
	"taxmemo/app/service/memo"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/samber/do"
)

// memoRunner is the orchestration surface the transport needs.
type memoRunner interface {
	GenerateMemo(ctx context.Context, profile *model.Profile) model.Memo
}

// Server is the HTTP boundary. It validates structure only; everything
// behind /generate_memo is failure-tolerant and always answers 200.
type Server struct {
	cfg  *config.Config
	app  *fiber.App
	memo memoRunner
}

func New(di *do.Injector) (*Server, error) {
	cfg := do.MustInvoke[*config.Config](di)
	orchestrator := do.MustInvoke[*memo.Service](di)

	return newServer(cfg, orchestrator), nil
}

func newServer(cfg *config.Config, runner memoRunner) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	if len(cfg.Server.CORSOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.Server.CORSOrigins, ","),
		}))
	}

	s := &Server{
		cfg:  cfg,
		app:  app,
		memo: runner,
	}

	app.Get("/", s.liveness)
	app.Post("/generate_memo", s.generateMemo)

	return s
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	slog.Info("http server listening", "addr", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

func (s *Server) liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "Tax Memo API is running"})
}

func (s *Server) generateMemo(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	started := time.Now()

	var profile model.Profile
	if err := c.BodyParser(&profile); err != nil {
		slog.Warn("malformed memo request", "request_id", requestID, "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
		})
	}

	result := s.memo.GenerateMemo(c.UserContext(), &profile)

	slog.Info("memo request served",
		"request_id", requestID,
		"business", profile.BusinessName,
		"sections", len(result),
		"duration", time.Since(started))

	return c.JSON(result)
}
