package middleware

import (
	"storefront_checkout/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	credentialsKey = "storefront_credentials"
	CSRFHeader     = "X-CSRFToken"
)

// StorefrontCredentials captures the buyer's storefront cookies and CSRF
// header so backend calls can be made on the buyer's behalf.
func StorefrontCredentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := entities.Credentials{CSRFToken: c.GetHeader(CSRFHeader)}
		for _, ck := range c.Request.Cookies() {
			if creds.Cookies == nil {
				creds.Cookies = map[string]string{}
			}
			creds.Cookies[ck.Name] = ck.Value
		}
		c.Set(credentialsKey, creds)
		c.Next()
	}
}

// CredentialsFrom returns what StorefrontCredentials stored, or empty
// credentials when the middleware did not run.
func CredentialsFrom(c *gin.Context) entities.Credentials {
	if v, ok := c.Get(credentialsKey); ok {
		if creds, ok := v.(entities.Credentials); ok {
			return creds
		}
	}
	return entities.Credentials{}
}
