// Package gateway exposes the TOPdesk client operations as an authenticated
// HTTP API under /v1.
package gateway

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/fourkey/topdesk-gateway/pkg/topdesk"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"
)

const requestIDHeader = "X-Request-Id"

// API translates inbound HTTP requests into TOPdesk client calls. The client
// is constructed once and reused for the lifetime of the process.
type API struct {
	config *Config
	client *topdesk.Client
}

func New(config *Config, opts ...topdesk.ClientOption) (*API, error) {
	client, err := topdesk.NewClient(config.TOPdesk, opts...)
	if err != nil {
		return nil, err
	}
	return &API{
		config: config,
		client: client,
	}, nil
}

func (a *API) MountRoutes(group *echo.Group) {
	group.Use(
		requestIDMiddleware,
		errorLogMiddleware,
		middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
			Realm:     "topdesk-gateway",
			Validator: a.checkCredentials,
		}),
	)
	group.GET("/incidents", a.listIncidents)
	group.GET("/incidents/:id", a.getIncident)
	group.GET("/assets", a.listAssets)
	group.GET("/assets/:id", a.getAsset)
	group.GET("/changes", a.listChanges)
	group.GET("/changes/:id", a.getChange)
}

// checkCredentials compares both fields in constant time regardless of which
// one mismatches.
func (a *API) checkCredentials(username, password string, c echo.Context) (bool, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.config.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.config.Password)) == 1
	return userOK && passOK, nil
}

func requestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(requestIDHeader)
		if id == "" {
			id = ksuid.New().String()
		}
		c.Set("request_id", id)
		c.Response().Header().Set(requestIDHeader, id)
		slog.Info("request", "id", id, "method", c.Request().Method, "path", c.Request().URL.Path)
		return next(c)
	}
}

func errorLogMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil {
			slog.Error("request failed", "error", err, "path", c.Path(), "remote_addr", c.RealIP(), "request_id", c.Get("request_id"))
		}
		return err
	}
}

func (a *API) listIncidents(c echo.Context) error {
	opts := &topdesk.ListIncidentsOptions{}
	var err error
	if opts.PageStart, err = intParam(c, "pageStart"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if opts.PageSize, err = intParam(c, "pageSize"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	incidents, err := a.client.ListIncidents(c.Request().Context(), opts)
	if err != nil {
		return a.upstreamError(c, err, []topdesk.Record{})
	}
	return c.JSON(http.StatusOK, incidents)
}

func (a *API) getIncident(c echo.Context) error {
	incident, err := a.client.GetIncident(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.upstreamError(c, err, topdesk.Record{})
	}
	return c.JSON(http.StatusOK, incident)
}

func (a *API) listAssets(c echo.Context) error {
	opts := &topdesk.ListAssetsOptions{
		TemplateID: c.QueryParam("template_id"),
		Filter:     c.QueryParam("filter"),
	}
	if fields := strings.TrimSpace(c.QueryParam("fields")); fields != "" {
		opts.Fields = strings.Split(fields, ",")
	}
	var err error
	if opts.PageStart, err = intParam(c, "pageStart"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if opts.PageSize, err = intParam(c, "pageSize"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assets, err := a.client.ListAssets(c.Request().Context(), opts)
	if err != nil {
		return a.upstreamError(c, err, []topdesk.Record{})
	}
	return c.JSON(http.StatusOK, assets)
}

func (a *API) getAsset(c echo.Context) error {
	asset, err := a.client.GetAsset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.upstreamError(c, err, topdesk.Record{})
	}
	return c.JSON(http.StatusOK, asset)
}

func (a *API) listChanges(c echo.Context) error {
	opts := &topdesk.ListChangesOptions{
		Fields: c.QueryParam("fields"),
	}

	changes, err := a.client.ListChanges(c.Request().Context(), opts)
	if err != nil {
		return a.upstreamError(c, err, []topdesk.Record{})
	}
	return c.JSON(http.StatusOK, changes)
}

func (a *API) getChange(c echo.Context) error {
	opts := &topdesk.GetChangeOptions{
		Fields: c.QueryParam("fields"),
	}

	change, err := a.client.GetChange(c.Request().Context(), c.Param("id"), opts)
	if err != nil {
		return a.upstreamError(c, err, topdesk.Record{})
	}
	return c.JSON(http.StatusOK, change)
}

// upstreamError maps a failed client call to a response. By default the
// failure surfaces as 502 (or 504 on timeout) with a diagnostic body. In
// legacy mode it is masked as a 200 with the given empty result, which is
// what the original deployment's callers saw.
func (a *API) upstreamError(c echo.Context, err error, empty any) error {
	slog.Error("upstream call failed", "error", err, "path", c.Path(), "request_id", c.Get("request_id"))

	if a.config.LegacyErrors {
		return c.JSON(http.StatusOK, empty)
	}

	status := http.StatusBadGateway
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}

// intParam reads an optional integer query parameter. Absent parameters
// return nil without error.
func intParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &value, nil
}
