package rest

import (
	"net/http"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/pkg/ctxmeta"
	"github.com/Gunvolt24/marketplace_vendor/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Дефолтная проекция локаций: базовые поля + раскрытие адреса
// и привязанных fulfillment set'ов.
var defaultStockLocationFields = []string{"id", "name", "address.*", "fulfillment_sets.*"}

type Handler struct {
	locations ports.StockLocationService
	orderSets ports.OrderSetService
	log       ports.Logger
}

func NewHandler(locations ports.StockLocationService, orderSets ports.OrderSetService, log ports.Logger) *Handler {
	return &Handler{locations: locations, orderSets: orderSets, log: log}
}

// NewRouter — маршруты поверхности. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	vendor := r.Group("/vendor", authRequired())
	{
		vendor.POST("/stock-locations", h.createStockLocation)
		vendor.GET("/stock-locations", h.listStockLocations)
		vendor.POST("/stock-locations/:id/fulfillment-sets", h.createFulfillmentSet)
	}

	admin := r.Group("/admin", authRequired())
	{
		admin.GET("/order-sets", h.listOrderSets)
	}

	return r
}

func (h *Handler) createStockLocation(c *gin.Context) {
	ctx := c.Request.Context()
	actorID, _ := ctxmeta.ActorIDFromContext(ctx)

	var input domain.CreateStockLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if input.Name == "" {
		writeBadRequest(c, "name is required")
		return
	}

	fields := httpx.ParseFields(c, defaultStockLocationFields)
	location, err := h.locations.CreateStockLocation(ctx, actorID, input, fields)
	if err != nil {
		h.logIfInternal(c, "CreateStockLocation", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"stock_location": location})
}

func (h *Handler) listStockLocations(c *gin.Context) {
	ctx := c.Request.Context()
	actorID, _ := ctxmeta.ActorIDFromContext(ctx)

	fields := httpx.ParseFields(c, defaultStockLocationFields)

	// Фильтры вызывающего: точечные совпадения по id и name.
	filters := map[string]any{}
	if id := c.Query("id"); id != "" {
		filters["id"] = id
	}
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}

	locations, err := h.locations.ListStockLocations(ctx, actorID, fields, filters)
	if err != nil {
		h.logIfInternal(c, "ListStockLocations", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stock_locations": locations,
		"count":           len(locations),
	})
}

func (h *Handler) createFulfillmentSet(c *gin.Context) {
	ctx := c.Request.Context()
	actorID, _ := ctxmeta.ActorIDFromContext(ctx)

	locationID := c.Param("id")
	if locationID == "" {
		writeBadRequest(c, "empty stock location id")
		return
	}

	var input domain.CreateFulfillmentSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if input.Name == "" || input.Type == "" {
		writeBadRequest(c, "name and type are required")
		return
	}

	fields := httpx.ParseFields(c, defaultStockLocationFields)
	location, err := h.locations.CreateFulfillmentSet(ctx, actorID, locationID, input, fields)
	if err != nil {
		h.logIfInternal(c, "CreateFulfillmentSet", err)
		writeError(c, err)
		return
	}
	// В ответе — обновлённая локация, поэтому 200, а не 201.
	c.JSON(http.StatusOK, gin.H{"stock_location": location})
}

func (h *Handler) listOrderSets(c *gin.Context) {
	ctx := c.Request.Context()

	// Поля вызывающего; обязательный базовый набор добавляет сервис.
	fields := httpx.ParseFields(c, nil)
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	variables := map[string]any{
		"skip": offset,
		"take": limit,
	}
	// Сортировка передаётся read-слою непрозрачно.
	if order := c.Query("order"); order != "" {
		variables["order"] = order
	}

	sets, err := h.orderSets.ListFormatted(ctx, fields, variables)
	if err != nil {
		h.logIfInternal(c, "ListOrderSets", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_sets": sets,
		"count":      len(sets),
		"offset":     offset,
		"limit":      limit,
	})
}

// logIfInternal — внутренние и инфраструктурные ошибки логируем,
// классифицированные клиентские — нет.
func (h *Handler) logIfInternal(c *gin.Context, op string, err error) {
	if isServerSide(err) {
		h.log.Errorf(c.Request.Context(), "%s failed: %v", op, err)
	}
}
