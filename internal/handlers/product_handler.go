package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"swolez-api/internal/models"
)

// ProductService is the product persistence the handlers need.
type ProductService interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Create(ctx context.Context, product models.Product) (string, error)
	Seed(ctx context.Context, count int) (int, error)
}

type ProductHandler struct {
	products ProductService
	log      logrus.FieldLogger
}

func NewProductHandler(products ProductService, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{
		products: products,
		log:      log.WithField("component", "product_handler"),
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter, err := parseProductFilter(c)
	if err != nil {
		respondError(c, h.log, err, "failed to list products")
		return
	}

	products, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err, "failed to list products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	product, err := models.ValidateProductCreate(in)
	if err != nil {
		respondError(c, h.log, err, "failed to create product")
		return
	}

	id, err := h.products.Create(c.Request.Context(), product)
	if err != nil {
		respondError(c, h.log, err, "failed to create product")
		return
	}

	h.log.WithFields(logrus.Fields{"id": id, "category": product.Category, "line": product.Line}).Info("product created")
	c.JSON(http.StatusCreated, models.CreateProductResponse{ID: id})
}

// SeedProducts handles POST /api/seed. The body is optional.
func (h *ProductHandler) SeedProducts(c *gin.Context) {
	var req models.SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	count, err := req.Resolve()
	if err != nil {
		respondError(c, h.log, err, "failed to seed products")
		return
	}

	created, err := h.products.Seed(c.Request.Context(), count)
	if err != nil {
		respondError(c, h.log, err, "failed to seed products")
		return
	}

	h.log.WithField("created", created).Info("🌱 products seeded")
	c.JSON(http.StatusOK, models.SeedResponse{Created: created})
}

func parseProductFilter(c *gin.Context) (models.ProductFilter, error) {
	filter := models.ProductFilter{
		Line:     c.Query("line"),
		Category: c.Query("category"),
	}

	if raw, ok := c.GetQuery("featured"); ok {
		featured, valid := parseBool(raw)
		if !valid {
			return filter, &models.ValidationError{
				Field:      "featured",
				Constraint: "bool",
				Message:    "must be a boolean",
			}
		}
		filter.Featured = &featured
	}

	return filter, nil
}

func parseBool(raw string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "1", "yes", "y", "on":
		return true, true
	case "false", "f", "0", "no", "n", "off":
		return false, true
	}
	return false, false
}
