package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"courseboard/core"
	"courseboard/core/assignment"
	"courseboard/core/discussion"
	"courseboard/core/student"
	"courseboard/core/weekly"
)

var (
	errInvalidResource  = echo.NewHTTPError(http.StatusBadRequest, "Invalid resource")
	errMethodNotAllowed = echo.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
)

// statusForError maps domain sentinel errors to HTTP status codes.
// Any error not listed here is a server error.
func statusForError(err error) int {
	switch err {
	case student.ErrNotFound,
		assignment.ErrNotFound, assignment.ErrCommentNotFound,
		discussion.ErrTopicNotFound, discussion.ErrParentNotFound, discussion.ErrReplyNotFound,
		weekly.ErrNotFound, weekly.ErrCommentNotFound:
		return http.StatusNotFound
	case student.ErrExists, student.ErrEmailExists,
		discussion.ErrTopicExists, discussion.ErrReplyExists:
		return http.StatusConflict
	case student.ErrWrongPassword:
		return http.StatusUnauthorized
	case student.ErrNoFieldsToUpdate,
		assignment.ErrNoFieldsToUpdate,
		discussion.ErrNoFieldsToUpdate,
		weekly.ErrNoFieldsToUpdate:
		return http.StatusBadRequest
	}
	return 0
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how
// to handle our errors. Every failure renders the same envelope:
// {"success": false, "message": <string|field map>}.
func newAppHTTPErrorHandler(logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default:
			if code = statusForError(origErr); code != 0 {
				message = origErr.Error()
				break
			}
			// any other error is a server error; the store's text never
			// reaches the client
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg
			if logger != nil {
				logger.Error(msg, errors.Wrap(err, msg))
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}

		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, echo.Map{"success": false, "message": message})
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
