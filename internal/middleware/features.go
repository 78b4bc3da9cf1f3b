package middleware

import (
	"edu_resources_backend/internal/service"
	"edu_resources_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// RESTEnabled gates the public resource routes on the enable_rest_api
// setting, read per request. A disabled API answers 404 as if the routes
// were never registered.
func RESTEnabled(settings *service.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := settings.Load(c.Request.Context())
		if err != nil {
			util.LogInternalError(c, err)
			c.Abort()
			return
		}

		if !current.EnableRestAPI {
			util.NotFound(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
