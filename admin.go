package folio

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/views"
)

// adminListLimit bounds the deliveries shown on the dashboard.
const adminListLimit = 200

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLoginPage(views.AdminLogin{Site: a.site(), CSRF: CsrfToken(c)}))
	}
	d, err := a.dashboard(c, c.QueryParam("msg"))
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboardPage(d))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	c.Logger().Warnf("admin: failed login from %s", ip)
	return Render(c, views.AdminLoginPage(views.AdminLogin{Site: a.site(), CSRF: CsrfToken(c), ShowError: true}))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	msg := "deleted"
	if err := a.Store.DeleteDelivery(id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		msg = "already deleted"
	}
	d, err := a.dashboard(c, msg)
	if err != nil {
		return err
	}
	return Render(c, views.AdminDeliveries(d))
}

func (a *App) dashboard(c echo.Context, msg string) (views.AdminDashboard, error) {
	list, err := a.Store.ListDeliveries(adminListLimit)
	if err != nil {
		return views.AdminDashboard{}, err
	}
	sent, err := a.Store.CountDeliveries(contact.DeliverySent)
	if err != nil {
		return views.AdminDashboard{}, err
	}
	failed, err := a.Store.CountDeliveries(contact.DeliveryFailed)
	if err != nil {
		return views.AdminDashboard{}, err
	}
	d := views.AdminDashboard{
		Site:    a.site(),
		CSRF:    CsrfToken(c),
		Sent:    sent,
		Failed:  failed,
		Message: msg,
	}
	for _, del := range list {
		d.Deliveries = append(d.Deliveries, views.Delivery{
			ID:        del.ID,
			Name:      del.Fields.Name,
			Email:     del.Fields.Email,
			Message:   del.Fields.Message,
			Status:    string(del.Outcome),
			Detail:    del.Detail,
			CreatedAt: del.CreatedAt.Local().Format(time.DateTime),
		})
	}
	return d, nil
}
