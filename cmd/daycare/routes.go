package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madhawadiyanath/daycare-core/internal/config"
	inventoryhandler "github.com/madhawadiyanath/daycare-core/internal/inventory/handler"
	officehandler "github.com/madhawadiyanath/daycare-core/internal/office/handler"
	"gorm.io/gorm"
)

func registerRoutes(r *gin.Engine, invH *inventoryhandler.Handlers, offH *officehandler.Handlers, cfg *config.Config, db *gorm.DB) {
	// health checks
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// catalog
	items := r.Group("/items")
	{
		items.POST("", invH.Item.Create)
		items.GET("", invH.Item.List)
		items.PUT("/:id", invH.Item.Update)
		items.DELETE("/:id", invH.Item.Delete)
		if cfg.Inventory.EnableReconciliation {
			items.POST("/:id/reconcile", invH.Item.Reconcile)
		}
	}

	// issuance log and summaries
	r.POST("/issue", invH.Issue.Record)
	r.GET("/issues", invH.Issue.List)
	r.GET("/summary-issue", invH.Summary.Basic)
	r.GET("/detailed-summary-issue", invH.Summary.Detailed)

	// supplier directory
	suppliers := r.Group("/suppliers")
	{
		suppliers.GET("", invH.Supplier.List)
		suppliers.POST("", invH.Supplier.Create)
		suppliers.GET("/:id", invH.Supplier.Get)
		suppliers.PUT("/:id", invH.Supplier.Update)
		suppliers.DELETE("/:id", invH.Supplier.Delete)
	}

	// finance
	incomes := r.Group("/incomes")
	{
		incomes.GET("", offH.Finance.ListIncomes)
		incomes.POST("", offH.Finance.CreateIncome)
		incomes.PUT("/:id", offH.Finance.UpdateIncome)
		incomes.DELETE("/:id", offH.Finance.DeleteIncome)
	}
	expenses := r.Group("/expenses")
	{
		expenses.GET("", offH.Finance.ListExpenses)
		expenses.POST("", offH.Finance.CreateExpense)
		expenses.PUT("/:id", offH.Finance.UpdateExpense)
		expenses.DELETE("/:id", offH.Finance.DeleteExpense)
	}
	r.GET("/finance/summary", offH.Finance.Summary)

	// enrollment requests
	enrollments := r.Group("/enrollments")
	{
		enrollments.GET("", offH.Enrollment.List)
		enrollments.POST("", offH.Enrollment.Create)
		enrollments.GET("/:id", offH.Enrollment.Get)
		enrollments.PUT("/:id", offH.Enrollment.Update)
		enrollments.PUT("/:id/status", offH.Enrollment.Decide)
		enrollments.DELETE("/:id", offH.Enrollment.Delete)
	}

	// calendar
	events := r.Group("/events")
	{
		events.GET("", offH.Event.List)
		events.POST("", offH.Event.Create)
		events.GET("/:id", offH.Event.Get)
		events.PUT("/:id", offH.Event.Update)
		events.DELETE("/:id", offH.Event.Delete)
	}
}
