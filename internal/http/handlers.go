package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"aromashop/internal/domain"
	"aromashop/internal/metrics"
	"aromashop/internal/notify"
	"aromashop/internal/service"
)

type Server struct {
	engine     *gin.Engine
	storefront *service.StorefrontService
	orders     *service.OrderService
	products   *service.ProductService
	health     func(ctx context.Context) error
}

// Deps зависимости HTTP-слоя
type Deps struct {
	Storefront *service.StorefrontService
	Orders     *service.OrderService
	Products   *service.ProductService
	Metrics    *metrics.Metrics
	Logger     zerolog.Logger
	// AdminUser and AdminPassword enable basic auth on /api/v1/admin when set.
	AdminUser     string
	AdminPassword string
	// Health checks the store backend; nil means always healthy.
	Health func(ctx context.Context) error
}

func NewServer(d Deps) *Server {
	r := gin.New()
	r.Use(requestLogger(d.Logger, d.Metrics), gin.Recovery())
	s := &Server{engine: r, storefront: d.Storefront, orders: d.Orders, products: d.Products, health: d.Health}
	s.registerRoutes(d)
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes(d Deps) {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/health", s.healthCheck)
	if d.Metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/product", s.getProduct)
		v1.GET("/content/:section", s.getContent)

		shop := v1.Group("", sessionID())
		shop.GET("/cart", s.getCart)
		shop.POST("/cart/items", s.addCartItem)
		shop.PUT("/cart/items/:id", s.setCartItemQuantity)
		shop.DELETE("/cart/items/:id", s.removeCartItem)
		shop.DELETE("/cart", s.clearCart)
		shop.POST("/cart/open", s.setCartOpen)

		shop.GET("/checkout", s.getCheckout)
		shop.PUT("/checkout", s.updateCheckout)
		shop.POST("/checkout/proceed", s.proceedToCheckout)
		shop.POST("/checkout/back", s.backToCart)
		shop.POST("/checkout/submit", s.submitOrder)

		shop.GET("/confirmation", s.getConfirmation)

		admin := v1.Group("/admin")
		if d.AdminUser != "" {
			admin.Use(gin.BasicAuth(gin.Accounts{d.AdminUser: d.AdminPassword}))
		}
		admin.GET("/orders", s.listOrders)
		admin.GET("/orders/:id", s.getOrder)
		admin.POST("/orders/:id/status", s.updateOrderStatus)
		admin.GET("/settings/product", s.getProductSettings)
		admin.PUT("/settings/product", s.updateProductSettings)
		admin.GET("/settings/payment", s.getPaymentSettings)
		admin.PUT("/settings/payment", s.updatePaymentSettings)
		admin.GET("/settings/integration", s.getIntegrationSettings)
		admin.PUT("/settings/integration", s.updateIntegrationSettings)
		admin.PUT("/content/:section", s.updateContent)
	}
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (s *Server) healthCheck(c *gin.Context) {
	if s.health != nil {
		if err := s.health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Product card
// @Tags storefront
// @Produce json
// @Success 200 {object} domain.ProductData
// @Router /product [get]
func (s *Server) getProduct(c *gin.Context) {
	c.JSON(http.StatusOK, s.products.Product(c.Request.Context()))
}

// @Summary Page content section
// @Tags storefront
// @Produce json
// @Param section path string true "hero, features, description, gallery, reviews, faq, specs or contacts"
// @Success 200 {object} object
// @Failure 404 {object} errorResponse
// @Router /content/{section} [get]
func (s *Server) getContent(c *gin.Context) {
	raw, err := s.products.Content(c.Request.Context(), c.Param("section"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// @Summary Current cart
// @Tags cart
// @Produce json
// @Success 200 {object} service.CartView
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.storefront.Cart(c.Request.Context(), sessionFrom(c)))
}

type addCartItemReq struct {
	Color    string `json:"color" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// @Summary Add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param input body addCartItemReq true "Color value and quantity"
// @Success 200 {object} service.CartView
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json: color and quantity >= 1 are required")
		return
	}
	view, err := s.storefront.AddProduct(c.Request.Context(), sessionFrom(c), req.Color, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type setQuantityReq struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// @Summary Set line quantity
// @Description A quantity of zero or less removes the line.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Line ID"
// @Param input body setQuantityReq true "Quantity"
// @Success 200 {object} service.CartView
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /cart/items/{id} [put]
func (s *Server) setCartItemQuantity(c *gin.Context) {
	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json: quantity is required")
		return
	}
	view, err := s.storefront.SetQuantity(c.Request.Context(), sessionFrom(c), c.Param("id"), *req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Remove line
// @Tags cart
// @Produce json
// @Param id path string true "Line ID"
// @Success 200 {object} service.CartView
// @Failure 409 {object} errorResponse
// @Router /cart/items/{id} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	view, err := s.storefront.RemoveItem(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} service.CartView
// @Failure 409 {object} errorResponse
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	view, err := s.storefront.ClearCart(c.Request.Context(), sessionFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type setOpenReq struct {
	Open bool `json:"open"`
}

// @Summary Open or close the cart panel
// @Tags cart
// @Accept json
// @Produce json
// @Param input body setOpenReq true "Panel state"
// @Success 200 {object} service.CartView
// @Router /cart/open [post]
func (s *Server) setCartOpen(c *gin.Context) {
	var req setOpenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	c.JSON(http.StatusOK, s.storefront.SetCartOpen(c.Request.Context(), sessionFrom(c), req.Open))
}

// @Summary Checkout form state
// @Tags checkout
// @Produce json
// @Success 200 {object} service.CheckoutView
// @Router /checkout [get]
func (s *Server) getCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, s.storefront.Checkout(c.Request.Context(), sessionFrom(c)))
}

// @Summary Replace checkout fields
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body domain.CheckoutData true "Form fields"
// @Success 200 {object} service.CheckoutView
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /checkout [put]
func (s *Server) updateCheckout(c *gin.Context) {
	var req domain.CheckoutData
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	view, err := s.storefront.UpdateCheckout(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Proceed from cart to checkout
// @Tags checkout
// @Produce json
// @Success 200 {object} service.CheckoutView
// @Failure 409 {object} errorResponse
// @Router /checkout/proceed [post]
func (s *Server) proceedToCheckout(c *gin.Context) {
	view, err := s.storefront.Proceed(c.Request.Context(), sessionFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Back to cart
// @Tags checkout
// @Produce json
// @Success 200 {object} service.CheckoutView
// @Failure 409 {object} errorResponse
// @Router /checkout/back [post]
func (s *Server) backToCart(c *gin.Context) {
	view, err := s.storefront.Back(c.Request.Context(), sessionFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type submitReq struct {
	Referrer    string            `json:"referrer"`
	Attribution map[string]string `json:"attribution"`
}

// @Summary Place the order
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body submitReq false "Referrer and marketing attribution"
// @Success 201 {object} domain.LastOrder
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /checkout/submit [post]
func (s *Server) submitOrder(c *gin.Context) {
	var req submitReq
	// the body is optional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid json")
		return
	}
	if req.Referrer == "" {
		req.Referrer = c.Request.Referer()
	}
	attribution := make(map[string]string, len(notify.AttributionKeys))
	for _, k := range notify.AttributionKeys {
		if v := req.Attribution[k]; v != "" {
			attribution[k] = v
		}
	}
	last, err := s.orders.Submit(c.Request.Context(), sessionFrom(c), service.SubmitInput{Referrer: req.Referrer, Attribution: attribution})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, last)
}

type confirmationResp struct {
	Found      bool               `json:"found"`
	Order      *domain.LastOrder  `json:"order"`
	Messengers []domain.Messenger `json:"messengers"`
}

// @Summary Last placed order of this session
// @Description Without an order the page still renders, found is false.
// @Tags checkout
// @Produce json
// @Success 200 {object} confirmationResp
// @Router /confirmation [get]
func (s *Server) getConfirmation(c *gin.Context) {
	ctx := c.Request.Context()
	last, ok := s.orders.LastOrder(ctx, sessionFrom(c))
	c.JSON(http.StatusOK, confirmationResp{
		Found:      ok,
		Order:      last,
		Messengers: s.products.Contacts(ctx).EnabledMessengers(),
	})
}
