package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Kajalkumari31/ministore/config"
)

// WebServer wraps the echo instance serving the public catalog API.
type WebServer struct {
	root   *echo.Echo
	config *config.AppConfig
}

var server *WebServer

// Init creates the global web server instance.
func Init(appConfig *config.AppConfig) *WebServer {
	server = NewWebServer(appConfig)
	return server
}

func NewWebServer(appConfig *config.AppConfig) *WebServer {
	ws := &WebServer{
		root:   echo.New(),
		config: appConfig,
	}
	ws.root.Pre(middleware.RemoveTrailingSlash())
	ws.root.Use(middleware.Recover())
	ws.root.Use(middleware.CORS())
	ws.root.Use(ZapLoggerMiddleware())
	ws.root.HideBanner = true
	ws.root.HidePort = true
	ws.root.Debug = appConfig.System.Debug
	ws.root.JSONSerializer = &JsoniterSerializer{}
	ws.root.Validator = &PayloadValidator{validate: validator.New()}
	ws.root.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		message := "Internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			message = fmt.Sprintf("%v", he.Message)
		}
		zap.L().Error("http request error",
			zap.String("path", c.Request().RequestURI),
			zap.Error(err))
		_ = c.JSON(code, map[string]interface{}{"code": "SERVER_ERROR", "message": message})
	}
	return ws
}

// ZapLoggerMiddleware logs every request through the global zap logger.
func ZapLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote", c.RealIP()))
			return err
		}
	}
}

// PayloadValidator adapts go-playground/validator to echo's Validator interface.
type PayloadValidator struct {
	validate *validator.Validate
}

func (v *PayloadValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Echo exposes the underlying router, mainly for handler tests.
func (ws *WebServer) Echo() *echo.Echo {
	return ws.root
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (ws *WebServer) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", ws.config.Web.Host, ws.config.Web.Port)
	zap.L().Info("starting web server", zap.String("listen", addr))

	errchan := make(chan error, 1)
	go func() {
		errchan <- ws.root.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return ws.root.Shutdown(shutctx)
	case err := <-errchan:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// ApiGET registers a GET route on the global server.
func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

// ApiPOST registers a POST route on the global server.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}
