package web

import (
	"context"
	"log/slog"
	"net/http"
	"smm-order-desk/internal/catalog"
	"smm-order-desk/internal/configurator"
	"smm-order-desk/internal/pkg/config"
	"smm-order-desk/internal/session"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo     *echo.Echo
	engines  *configurator.Manager
	catalog  catalog.Repository
	sessions session.Provider
	locales  config.LocalesCfg
	topUpURL string
	listen   string
}

func NewServer(
	engines *configurator.Manager,
	cat catalog.Repository,
	sessions session.Provider,
	cfg *config.Config,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		engines:  engines,
		catalog:  cat,
		sessions: sessions,
		locales:  cfg.Locales,
		topUpURL: cfg.Web.TopUpURL,
		listen:   cfg.Web.Listen,
	}

	e.Pre(s.localeRedirect)
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/:locale/new-order", s.getOrderDesk)
	s.echo.POST("/:locale/new-order/draft", s.updateDraft)
	s.echo.POST("/:locale/new-order", s.submitOrder)
	s.echo.GET("/:locale/services", s.listServices)
	s.echo.GET("/:locale/balance", s.getBalance)
}

func (s *Server) Start() {
	go func() {
		if err := s.echo.Start(s.listen); err != nil && err != http.ErrServerClosed {
			slog.Error("Web server stopped", "error", err)
		}
	}()
	slog.Info("Started web server", "listen", s.listen)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// localeRedirect sends any request without a supported locale prefix to
// the same path under the default locale, keeping the query string (and
// with it the serviceId parameter) intact.
func (s *Server) localeRedirect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		head, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
		for _, locale := range s.locales.Supported {
			if head == locale {
				return next(c)
			}
		}

		target := "/" + s.locales.Default + path
		if raw := c.Request().URL.RawQuery; raw != "" {
			target += "?" + raw
		}
		return c.Redirect(http.StatusFound, target)
	}
}
