package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie describes the session cookie the dashboard issues.
type Cookie struct {
	Name   string
	Secure bool
}

func (ck Cookie) set(c *gin.Context, token string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, token, maxAge, "/", "", ck.Secure, true)
}

func (ck Cookie) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, "", -1, "/", "", ck.Secure, true)
}
