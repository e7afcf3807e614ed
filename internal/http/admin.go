package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"aromashop/internal/domain"
	"aromashop/internal/repository"
)

// @Summary List orders
// @Tags admin
// @Produce json
// @Param status query string false "pending, processing, shipped, delivered or rejected"
// @Param customer query string false "Name or phone contains"
// @Success 200 {array} domain.Order
// @Failure 400 {object} errorResponse
// @Router /admin/orders [get]
func (s *Server) listOrders(c *gin.Context) {
	f := repository.OrderFilter{
		Status:   domain.OrderStatus(c.Query("status")),
		Customer: c.Query("customer"),
	}
	if f.Status != "" && !f.Status.Valid() {
		badRequest(c, "unknown status")
		return
	}
	list, err := s.orders.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get order by id
// @Tags admin
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} errorResponse
// @Router /admin/orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type updateStatusReq struct {
	Status         domain.OrderStatus `json:"status" binding:"required"`
	TrackingNumber string             `json:"trackingNumber"`
}

// @Summary Change order status
// @Description pending, processing, shipped, delivered in order; rejected from any non-terminal status. Shipped needs a tracking number.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body updateStatusReq true "Target status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /admin/orders/{id}/status [post]
func (s *Server) updateOrderStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json: status is required")
		return
	}
	o, err := s.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.TrackingNumber)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary Product settings
// @Tags admin
// @Produce json
// @Success 200 {object} domain.ProductData
// @Router /admin/settings/product [get]
func (s *Server) getProductSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.products.Product(c.Request.Context()))
}

// @Summary Update product settings
// @Tags admin
// @Accept json
// @Produce json
// @Param input body domain.ProductData true "Product card"
// @Success 200 {object} domain.ProductData
// @Failure 400 {object} errorResponse
// @Router /admin/settings/product [put]
func (s *Server) updateProductSettings(c *gin.Context) {
	var req domain.ProductData
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	p, err := s.products.UpdateProduct(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Payment details
// @Tags admin
// @Produce json
// @Success 200 {object} domain.PaymentDetails
// @Router /admin/settings/payment [get]
func (s *Server) getPaymentSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.products.PaymentDetails(c.Request.Context()))
}

// @Summary Update payment details
// @Tags admin
// @Accept json
// @Produce json
// @Param input body domain.PaymentDetails true "Prepayment requisites"
// @Success 200 {object} domain.PaymentDetails
// @Failure 400 {object} errorResponse
// @Router /admin/settings/payment [put]
func (s *Server) updatePaymentSettings(c *gin.Context) {
	var req domain.PaymentDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	d, err := s.products.UpdatePaymentDetails(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary Integration settings
// @Tags admin
// @Produce json
// @Success 200 {object} domain.IntegrationSettings
// @Router /admin/settings/integration [get]
func (s *Server) getIntegrationSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.products.Integration(c.Request.Context()))
}

// @Summary Update integration settings
// @Tags admin
// @Accept json
// @Produce json
// @Param input body domain.IntegrationSettings true "Spreadsheet bridge or generic webhook"
// @Success 200 {object} domain.IntegrationSettings
// @Failure 400 {object} errorResponse
// @Router /admin/settings/integration [put]
func (s *Server) updateIntegrationSettings(c *gin.Context) {
	var req domain.IntegrationSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}
	in, err := s.products.UpdateIntegration(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

// @Summary Replace page content section
// @Tags admin
// @Accept json
// @Produce json
// @Param section path string true "Section name"
// @Param input body object true "Section document"
// @Success 200 {object} object
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /admin/content/{section} [put]
func (s *Server) updateContent(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, "cannot read body")
		return
	}
	saved, err := s.products.UpdateContent(c.Request.Context(), c.Param("section"), json.RawMessage(raw))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", saved)
}
