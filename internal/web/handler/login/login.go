package login

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/db/models"
	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the name of the login template.
	TemplateName = "login"

	sameSiteLax = "Lax"
)

type loginForm struct {
	Username string `form:"username" validate:"required,max=100"`
	Password string `form:"password" validate:"required,max=1024"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, s.viewData(c, nil))
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	var in loginForm

	if err := c.BodyParser(&in); err != nil {
		return c.Render(TemplateName, s.viewData(c, ErrInvalidFormData))
	}

	if err := s.validator.Struct(in); err != nil {
		return c.Render(TemplateName, s.viewData(c, ErrInvalidFormData))
	}

	user, err := s.authenticate(in.Username, in.Password)
	if err != nil {
		log.Info().Err(err).Str("username", in.Username).Msg("login failed")
		return c.Render(TemplateName, s.viewData(c, err))
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return c.Render(TemplateName, s.viewData(c, ErrInternalServerError))
	}

	userSession := &session.Data{
		User: *user,
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return c.Render(TemplateName, s.viewData(c, ErrInternalServerError))
	}

	// set login cookie
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: sameSiteLax,
	})

	log.Info().Str("username", user.Username).Msg("user signed in")

	return c.Redirect(handler.HomePath)
}

// authenticate checks the credentials against the local user table.
func (s *Service) authenticate(username, password string) (*models.User, error) {
	var user models.User

	result := s.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}

		log.Error().Err(result.Error).Msg("failed to load user")

		return nil, ErrInternalServerError
	}

	if !user.Active {
		return nil, ErrInactiveUser
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s *Service) viewData(c *fiber.Ctx, err error) fiber.Map {
	data := fiber.Map{
		"AppTitle": s.cfg.Title,
		"Brand":    s.cfg.Brand,
		"CSRF":     handler.CSRFToken(c),
	}

	if err != nil {
		data["error"] = err.Error()
	}

	return data
}
