package web

import (
	"errors"
	"net/http"
	"smm-order-desk/internal/configurator"
	"smm-order-desk/internal/session"
	"strings"

	"github.com/labstack/echo/v4"
)

func (s *Server) getOrderDesk(c echo.Context) error {
	sess, err := s.authenticate(c)
	if err != nil {
		return err
	}

	engine := s.engines.GetOrCreate(sess.UserID, sess.Token)
	if err := engine.Start(c.Request().Context(), c.Request().URL.RequestURI()); err != nil {
		return fail(c, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Service catalog is unavailable, retry later")
	}
	return ok(c, newStateView(engine.State(), engine.DrainNotices()))
}

type draftUpdateRequest struct {
	CategoryID *int64  `json:"category_id"`
	ServiceID  *int64  `json:"service_id"`
	Link       *string `json:"link"`
	Quantity   *string `json:"quantity"`
}

func (s *Server) updateDraft(c echo.Context) error {
	sess, err := s.authenticate(c)
	if err != nil {
		return err
	}

	req := &draftUpdateRequest{}
	if err := c.Bind(req); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_BODY", "Could not parse the draft update")
	}

	engine, err := s.readyEngine(c, sess)
	if err != nil {
		return err
	}
	engine.SyncLocale(c.Param("locale"))

	if req.CategoryID != nil {
		if err := engine.SelectCategory(*req.CategoryID); err != nil {
			return s.engineFail(c, err)
		}
	}
	if req.ServiceID != nil {
		if err := engine.SelectService(*req.ServiceID); err != nil {
			return s.engineFail(c, err)
		}
	}
	if req.Link != nil {
		if err := engine.SetLink(*req.Link); err != nil {
			return s.engineFail(c, err)
		}
	}
	if req.Quantity != nil {
		if err := engine.SetQuantity(*req.Quantity); err != nil {
			return s.engineFail(c, err)
		}
	}

	return ok(c, newStateView(engine.State(), engine.DrainNotices()))
}

func (s *Server) submitOrder(c echo.Context) error {
	sess, err := s.authenticate(c)
	if err != nil {
		return err
	}

	engine, err := s.readyEngine(c, sess)
	if err != nil {
		return err
	}
	engine.SyncLocale(c.Param("locale"))

	err = engine.Submit(c.Request().Context())
	view := newStateView(engine.State(), engine.DrainNotices())
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, view)
	case errors.Is(err, configurator.ErrValidation), errors.Is(err, configurator.ErrIncompleteDraft):
		return c.JSON(http.StatusUnprocessableEntity, view)
	case errors.Is(err, configurator.ErrInsufficientBalance):
		// The draft survived, the client is expected to follow the
		// rewritten URL to the top-up page.
		return c.JSON(http.StatusPaymentRequired, view)
	case errors.Is(err, configurator.ErrCatalogNotReady):
		return fail(c, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Service catalog is unavailable, retry later")
	default:
		return c.JSON(http.StatusBadGateway, view)
	}
}

func (s *Server) listServices(c echo.Context) error {
	sess, err := s.authenticate(c)
	if err != nil {
		return err
	}

	if err := s.catalog.Load(c.Request().Context(), sess.Token); err != nil {
		return fail(c, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Service catalog is unavailable, retry later")
	}
	return ok(c, newCatalogView(s.catalog, c.Param("locale")))
}

func (s *Server) getBalance(c echo.Context) error {
	sess, err := s.authenticate(c)
	if err != nil {
		return err
	}

	return ok(c, map[string]any{
		"balance":    sess.Balance.String(),
		"top_up_url": s.topUpURL,
	})
}

func (s *Server) authenticate(c echo.Context) (*session.Session, error) {
	header := c.Request().Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
	}

	sess, err := s.sessions.Resolve(c.Request().Context(), token)
	if err != nil {
		return nil, fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token was rejected by the panel")
	}
	return sess, nil
}

// readyEngine returns the user's engine, starting it against the request
// URL when this is the first touch of the session.
func (s *Server) readyEngine(c echo.Context, sess *session.Session) (*configurator.Engine, error) {
	engine := s.engines.GetOrCreate(sess.UserID, sess.Token)
	if engine.State().Phase == configurator.PhaseUninitialized {
		if err := engine.Start(c.Request().Context(), c.Request().URL.RequestURI()); err != nil {
			return nil, fail(c, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Service catalog is unavailable, retry later")
		}
	}
	return engine, nil
}

func (s *Server) engineFail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, configurator.ErrCatalogNotReady):
		return fail(c, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Service catalog is unavailable, retry later")
	case errors.Is(err, configurator.ErrUnknownService):
		return fail(c, http.StatusBadRequest, "UNKNOWN_SERVICE", "No such service")
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL", "Unexpected error")
	}
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, map[string]any{
		"code":    code,
		"message": message,
	})
}
