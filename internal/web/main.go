package web

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/config"
	fiberlog "github.com/open-notebook/open-notebook-web/internal/logger/adapter/fiber"
	"github.com/open-notebook/open-notebook-web/internal/sidebar"
	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/login"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/logout"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/page"
	sidebarhandler "github.com/open-notebook/open-notebook-web/internal/web/handler/sidebar"
	authmiddleware "github.com/open-notebook/open-notebook-web/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic and 503 while it drains.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	appName = "Open Notebook"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and drains the server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait for an interrupt
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// NewTemplateEngine creates the html template engine over the embedded templates,
// or over the local directory in dev mode.
func NewTemplateEngine(devMode bool) *html.Engine {
	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if devMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("icon", func(icon sidebar.Icon, class string) template.HTML {
		return icon.SVG(class)
	})
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})

	return templateEngine
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	title := cfg.Title
	if title == "" {
		title = appName
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          NewTemplateEngine(cfg.DevMode),
		},
	)

	// init web service
	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           db,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	app.Use(fiberlog.New(fiberlog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// basic auth middleware
	app.Use(authmiddleware.Middleware)

	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:" + handler.CSRFFormField,
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   !cfg.DevMode,
		CookieHTTPOnly: true,
		ContextKey:     handler.LocalsCSRF,
		Expiration:     cfg.Webserver.Session.ExpiryTime,
	}))

	// init handlers
	if err := login.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}

	logout.Handler.Init(app, cfg)

	if err := sidebarhandler.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init sidebar handler")
	}

	if err := page.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init page handler")
	}

	return service
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}
