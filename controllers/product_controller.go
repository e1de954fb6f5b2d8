package controllers

import (
	"net/http"
	"strconv"
	"time"

	"dukicks/models"
	"dukicks/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Catalog         *services.Catalog
	FeaturedLimit   int
	SuggestionLimit int
	SearchDebounce  time.Duration
}

func NewProductController(catalog *services.Catalog, featuredLimit, suggestionLimit int, searchDebounce time.Duration) *ProductController {
	return &ProductController{
		Catalog:         catalog,
		FeaturedLimit:   featuredLimit,
		SuggestionLimit: suggestionLimit,
		SearchDebounce:  searchDebounce,
	}
}

// @Summary Get all products
// @Description List the catalog with optional category, brand, price and stock filters
// @Tags Products
// @Produce json
// @Param category query string false "Category"
// @Param brand query []string false "Brand (repeatable, Todas disables the filter)"
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Param in_stock query bool false "Only products confirmed in stock"
// @Param sort query string false "Sort key" Enums(newest, price-low, price-high, discount, name-asc, name-desc)
// @Success 200 {object} models.ListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	var q models.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid query", Error: err.Error()})
		return
	}

	products := ctrl.Catalog.All()
	if q.Category != "" {
		products = ctrl.Catalog.GetByCategory(q.Category)
	}
	products = services.ApplyFilters(products, models.FilterOptions{
		Brands:   q.Brands,
		PriceMin: q.MinPrice,
		PriceMax: q.MaxPrice,
		InStock:  q.InStock,
	})
	if q.Sort != "" {
		products = services.SortProducts(products, q.Sort)
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Total:   len(products),
	})
}

// @Summary Featured products
// @Tags Products
// @Produce json
// @Param limit query int false "Maximum number of products" default(4)
// @Success 200 {object} models.ListResponse
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeatured(c *gin.Context) {
	limit := ctrl.FeaturedLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	products := ctrl.Catalog.GetFeatured(limit)
	c.JSON(http.StatusOK, models.ListResponse{Success: true, Message: "Featured products retrieved", Data: products, Total: len(products)})
}

// @Summary New arrivals
// @Tags Products
// @Produce json
// @Success 200 {object} models.ListResponse
// @Router /products/new [get]
func (ctrl *ProductController) GetNew(c *gin.Context) {
	products := ctrl.Catalog.GetNew()
	c.JSON(http.StatusOK, models.ListResponse{Success: true, Message: "New products retrieved", Data: products, Total: len(products)})
}

// @Summary Get product by ID
// @Description Product with its final price and discount breakdown
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	product, ok := ctrl.Catalog.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: ctrl.Catalog.Detail(product)})
}

// @Summary Get all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Categories retrieved", Data: ctrl.Catalog.GetCategories()})
}

// @Summary Get brands
// @Description Distinct brands sorted alphabetically
// @Tags Products
// @Produce json
// @Param include_all query bool false "Prefix the list with Todas"
// @Success 200 {object} models.Response
// @Router /brands [get]
func (ctrl *ProductController) GetBrands(c *gin.Context) {
	includeAll, _ := strconv.ParseBool(c.DefaultQuery("include_all", "false"))
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Brands retrieved",
		Data:    services.UniqueBrands(ctrl.Catalog.All(), includeAll),
	})
}

// @Summary Catalog price range
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/price-range [get]
func (ctrl *ProductController) GetPriceRange(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Price range retrieved", Data: services.PriceRange(ctrl.Catalog.All())})
}

// @Summary Sort options
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /sort-options [get]
func (ctrl *ProductController) GetSortOptions(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Sort options retrieved", Data: services.SortOptions()})
}

// @Summary Search products
// @Description Relevance-ranked search narrowed by brand, price, stock and discount
// @Tags Search
// @Produce json
// @Param q query string false "Search text"
// @Param relevance query bool false "Rank by relevance" default(true)
// @Param brand query string false "Brand"
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Param in_stock query bool false "Only available products"
// @Param has_discount query bool false "Only discounted products"
// @Param sort query string false "Sort key applied after ranking"
// @Success 200 {object} models.ListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /search [get]
func (ctrl *ProductController) Search(c *gin.Context) {
	var q models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid query", Error: err.Error()})
		return
	}

	opts := models.FilterOptions{
		PriceMin:    q.MinPrice,
		PriceMax:    q.MaxPrice,
		InStock:     q.InStock,
		HasDiscount: q.HasDiscount,
	}
	if q.Brand != "" {
		opts.Brands = []string{q.Brand}
	}

	var results []models.Product
	if q.Relevance == nil || *q.Relevance {
		results = services.SearchWithFilters(ctrl.Catalog.All(), q.Q, opts)
	} else {
		results = services.ApplyFilters(ctrl.Catalog.Search(q.Q), opts)
	}
	if q.Sort != "" {
		results = services.SortProducts(results, q.Sort)
	}

	c.JSON(http.StatusOK, models.ListResponse{Success: true, Message: "Search completed", Data: results, Total: len(results)})
}

// @Summary Search suggestions
// @Tags Search
// @Produce json
// @Param q query string true "Partial search text (at least 2 characters)"
// @Param limit query int false "Maximum suggestions" default(5)
// @Success 200 {object} models.Response
// @Router /search/suggestions [get]
func (ctrl *ProductController) GetSuggestions(c *gin.Context) {
	limit := ctrl.SuggestionLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Suggestions retrieved",
		Data:    services.Suggestions(ctrl.Catalog.All(), c.Query("q"), limit),
	})
}
