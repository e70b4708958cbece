package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/shiptrack/internal/application"
	"github.com/mahabubulhasibshawon/shiptrack/internal/domain"
)

type Handler struct {
	svc    *application.ShipmentService
	logger *zap.Logger
}

func NewHandler(svc *application.ShipmentService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

// NewRouter builds the gin engine. The list, add and edit screens map to
// GET /api/shipments, POST /api/shipments and GET|PUT /api/shipments/:trackingId.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.logger))
	h.Register(r)
	return r
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	api := r.Group("/api/shipments")
	api.GET("", h.list)
	api.POST("", h.create)
	api.GET("/:trackingId", h.get)
	api.PUT("/:trackingId", h.update)
	api.DELETE("/:trackingId", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	shipments, total, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shipments": shipments, "total": total})
}

func (h *Handler) get(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) create(c *gin.Context) {
	var req domain.Shipment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) update(c *gin.Context) {
	var req domain.Shipment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), c.Param("trackingId"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("trackingId")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shipment deleted successfully", "trackingId": c.Param("trackingId")})
}

func (h *Handler) fail(c *gin.Context, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateTrackingID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
