package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"courseboard/core"
	"courseboard/core/assignment"
	"courseboard/core/discussion"
	"courseboard/core/student"
	"courseboard/core/weekly"
)

type (
	Options struct {
		Config         *core.Config
		Logger         core.Logger
		DisableReqLogs bool

		StudentSvc    *student.Service
		AssignmentSvc *assignment.Service
		DiscussionSvc *discussion.Service
		WeeklySvc     *weekly.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Config

	s.app.Pre(middleware.RemoveTrailingSlash())
	// preflight is answered before routing; no store connection is opened
	s.app.Pre(corsMiddleware)
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	api := s.app.Group("/api")
	registerStudentAPI(api, s.opts.StudentSvc)
	registerAssignmentAPI(api, s.opts.AssignmentSvc)
	registerDiscussionAPI(api, s.opts.DiscussionSvc)
	registerWeeklyAPI(api, s.opts.WeeklySvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Config.Server.Address()))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Courseboard API!")
}
