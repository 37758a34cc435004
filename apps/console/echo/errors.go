package echoconsole

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nkminh14/uniconsole/core"
)

var (
	errPageNotFound = echo.NewHTTPError(http.StatusNotFound, "Không tìm thấy trang.")
	errBadID        = echo.NewHTTPError(http.StatusNotFound, "Mã không hợp lệ.")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler rendering our errors as pages.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(s *server, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message string

		cause := errors.Cause(err)
		switch origErr := cause.(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = fmt.Sprint(origErr.Message)
			if code == http.StatusNotFound && origErr == echo.ErrNotFound {
				message = fmt.Sprint(errPageNotFound.Message)
			}
		case *core.APIError:
			code = http.StatusBadGateway
			message = core.ErrorMessage(origErr, "Máy chủ dữ liệu trả về lỗi.")
			s.deps.Logger.Warn("backend error", err, contextPerson(ctx))
		case *core.ValidationError:
			code = http.StatusBadRequest
			message = origErr.Error()
		default:
			if cause == core.ErrNotFound {
				code = http.StatusNotFound
				message = "Không tìm thấy dữ liệu."
				break
			}
			// any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = "Đã xảy ra lỗi, vui lòng thử lại sau."
			s.deps.Logger.Error(msg, errors.Wrap(err, msg), contextPerson(ctx))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.Render(code, "error", errorView{
					shell:   s.newShell(ctx, http.StatusText(code), ""),
					Code:    code,
					Message: message,
				})
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
