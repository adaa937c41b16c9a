package folio

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

// boundary is the top-level fault boundary: a panic anywhere below it is
// logged and replaced by the recovery screen.
func (a *App) boundary(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if r == http.ErrAbortHandler {
				panic(r)
			}
			fault, ok := r.(error)
			if !ok {
				fault = fmt.Errorf("%v", r)
			}
			stack := debug.Stack()
			c.Logger().Errorf("[PANIC RECOVER] %v %s", fault, stack)
			err = a.renderRecovery(c, fault, string(stack))
		}()
		return next(c)
	}
}

// renderRecovery shows the recovery screen for fault: swapped into #app for
// htmx requests, as a full page otherwise.
func (a *App) renderRecovery(c echo.Context, fault error, stack string) error {
	if c.Response().Committed {
		return nil
	}
	r := views.Recovery{
		Site:    a.site(),
		Session: a.session(c),
	}
	if a.Config.Dev {
		r.Detail = fault.Error()
		r.Stack = stack
	}
	if isHTMX(c) {
		h := c.Response().Header()
		h.Del(hxTrigger)
		h.Set(hxRetarget, "#app")
		h.Set(hxReswap, "innerHTML")
		return Render(c, views.RecoveryFragment(r))
	}
	return RenderStatus(c, http.StatusInternalServerError, views.RecoveryScreen(r))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !isHTMX(c) {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = a.renderRecovery(c, err, "")
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
