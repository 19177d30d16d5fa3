package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/matheuseschaves/supermarket-tracker/internal/infra"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health pings the database and checks that the column patches are applied.
// The file path is never exposed.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus, schema := "connected", "current"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus, schema = "error", "unknown"
		} else if ok, err := infra.SchemaCurrent(db.WithContext(ctx)); err != nil || !ok {
			schema = "outdated"
		}

		status := http.StatusOK
		if dbStatus != "connected" || schema != "current" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":     status == http.StatusOK,
			"db":     dbStatus,
			"schema": schema,
		})
	}
}
