package http

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"counter-service/internal/domain"
	"counter-service/internal/infra"
	rabbit "counter-service/internal/infra/rabbitmq"
	"counter-service/internal/logger"
	"counter-service/internal/repository"
	"counter-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

//go:embed templates/*.html static/*
var assets embed.FS

const connKey = "conn"

type Options struct {
	PromoTTL  time.Duration
	LateAfter time.Duration
}

type Handler struct {
	store     repository.Store
	publisher rabbit.PublisherInterface
	cache     infra.Cache
	opts      Options
	now       func() time.Time
}

// NewHandler wires the routes to store. cache may be nil.
func NewHandler(store repository.Store, pub rabbit.PublisherInterface, cache infra.Cache, opts Options) *Handler {
	return &Handler{
		store:     store,
		publisher: pub,
		cache:     cache,
		opts:      opts,
		now:       time.Now,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(assets, "templates/*.html")))

	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	db := r.Group("/", h.withConn)
	db.GET("/", h.CounterPage)
	db.GET("/kitchen", h.KitchenPage)
	db.POST("/orders", h.CreateOrder)
	db.GET("/orders/:id/edit", h.EditPage)
	db.POST("/orders/:id/update", h.UpdateOrder)
	db.GET("/api/orders", h.ListOrders)
	db.PATCH("/api/orders/:id", h.ApplyAction)
	db.GET("/api/promos", h.ListPromos)
}

// withConn runs the rest of the chain on one database connection and
// returns it to the pool afterwards.
func (h *Handler) withConn(c *gin.Context) {
	err := h.store.Conn(c.Request.Context(), func(conn repository.Conn) error {
		c.Set(connKey, conn)
		c.Next()
		return nil
	})
	if err != nil {
		logger.Log.Error("acquire database connection", zap.Error(err))
		if !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "database unavailable"})
		}
	}
}

func (h *Handler) orders(c *gin.Context) *services.OrderService {
	conn := c.MustGet(connKey).(repository.Conn)
	return services.NewOrderService(conn.Orders(), h.publisher)
}

func (h *Handler) promos(c *gin.Context) *services.PromoService {
	conn := c.MustGet(connKey).(repository.Conn)
	return services.NewPromoService(conn.Promos(), h.cache, h.opts.PromoTTL)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var form OrderForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders(c).CreateOrder(c.Request.Context(), form.Input())
	if err != nil {
		h.fail(c, err)
		return
	}

	logger.Log.Info("order created", zap.Uint64("id", order.ID))
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var form OrderForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.orders(c).UpdateOrder(c.Request.Context(), id, form.Input()); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders(c).ListOrders(domain.OrderStatus(c.Query("estado")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) ApplyAction(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders(c).ApplyAction(c.Request.Context(), id, domain.Action(req.Action), req.Paid)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListPromos(c *gin.Context) {
	promos, err := h.promos(c).ListPromos(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, promos)
}

func (h *Handler) CounterPage(c *gin.Context) {
	view := c.DefaultQuery("vista", viewPending)
	orders, err := h.orders(c).ListOrders("")
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Vista":  view,
		"Orders": rows(orders, counterFilter(view), h.now(), h.opts.LateAfter),
	})
}

func (h *Handler) KitchenPage(c *gin.Context) {
	orders, err := h.orders(c).ListOrders("")
	if err != nil {
		h.fail(c, err)
		return
	}
	pending := func(o domain.Order) bool { return !o.Status.HandedOver() }
	c.HTML(http.StatusOK, "kitchen.html", gin.H{
		"Orders": rows(orders, pending, h.now(), h.opts.LateAfter),
	})
}

func (h *Handler) EditPage(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.orders(c).GetOrderById(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{"Order": order})
}

// orderID reads the :id parameter. Anything but a positive integer is
// treated as an unknown order.
func orderID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrOrderNotFound.Error()})
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrBadAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	default:
		_ = c.Error(err)
		logger.Log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
