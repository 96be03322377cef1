package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookbarber/config"
	"bookbarber/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		bookings := api.Group("/bookings")
		{
			bookings.POST("/", h.ingestBooking)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id", h.updateAppointment)
			appointments.POST("/:id/cancel", h.cancelAppointment)
			appointments.POST("/:id/rebook", h.rebookAppointment)
			appointments.POST("/:id/complete", h.completeAppointment)
			appointments.POST("/:id/reminder", h.toggleReminder)
			appointments.GET("/:id/edit-handoff", h.getEditHandoff)
			appointments.GET("/:id/review-handoff", h.getReviewHandoff)
			appointments.GET("/:id/invoice", h.getInvoice)
			appointments.GET("/:id/invoice/pdf", h.getInvoicePDF)
		}

		assets := api.Group("/assets")
		{
			assets.POST("/", h.uploadAsset)
			assets.DELETE("/", h.deleteAsset)
		}
	}
}
