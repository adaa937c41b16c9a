package folio

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// htmx response headers.
const (
	hxRequest  = "HX-Request"
	hxTrigger  = "HX-Trigger"
	hxRefresh  = "HX-Refresh"
	hxRetarget = "HX-Retarget"
	hxReswap   = "HX-Reswap"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get(hxRequest) == "true"
}

// trigger adds a client event to the HX-Trigger response header. It must be
// called before the response is written.
func trigger(c echo.Context, event string, detail any) {
	h := c.Response().Header()
	events := map[string]any{}
	if prev := h.Get(hxTrigger); prev != "" {
		_ = json.Unmarshal([]byte(prev), &events)
	}
	events[event] = detail
	b, err := json.Marshal(events)
	if err != nil {
		c.Logger().Errorf("encode %s: %v", hxTrigger, err)
		return
	}
	h.Set(hxTrigger, string(b))
}

// Client events handled by folio.js.
const (
	eventScroll = "folio:scroll"
	eventNotify = "folio:notify"
)

type scrollDetail struct {
	Section string `json:"section"`
}

type notifyDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
