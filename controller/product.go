package controller

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Ibrahimvain/pesan-aja/catalog"
	"github.com/Ibrahimvain/pesan-aja/middleware"
	"github.com/Ibrahimvain/pesan-aja/models"
	"github.com/Ibrahimvain/pesan-aja/store"
)

type ProductController struct {
	catalog *catalog.Service
	log     *zap.Logger
}

func NewProductController(svc *catalog.Service, log *zap.Logger) *ProductController {
	return &ProductController{catalog: svc, log: log}
}

// GetProducts is public: products newest first plus all categories.
func (ct *ProductController) GetProducts(c *gin.Context) {
	result, err := ct.catalog.List(c.Request.Context())
	if err != nil {
		ct.log.Error("list products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not fetch products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result.Products, "categories": result.Categories})
}

func (ct *ProductController) CreateProduct(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	input, image, err := bindProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product, err := ct.catalog.Create(c.Request.Context(), input, image)
	if err != nil {
		ct.log.Error("create product failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

func (ct *ProductController) UpdateProduct(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	input, image, err := bindProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product, err := ct.catalog.Update(c.Request.Context(), uint(id), input, image)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		ct.log.Error("update product failed", zap.Uint64("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

func (ct *ProductController) DeleteProduct(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	if err := ct.catalog.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		ct.log.Error("delete product failed", zap.Uint64("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// requireAdmin applies the admin-only policy on top of the identity the auth
// middleware attached.
func requireAdmin(c *gin.Context) bool {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok || identity.Role != models.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
		return false
	}
	return true
}

func bindProductForm(c *gin.Context) (catalog.ProductInput, *catalog.ImageUpload, error) {
	price, err := decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		return catalog.ProductInput{}, nil, errors.New("invalid price")
	}
	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil {
		return catalog.ProductInput{}, nil, errors.New("invalid stock")
	}

	input := catalog.ProductInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Stock:       stock,
	}
	if input.Name == "" {
		return catalog.ProductInput{}, nil, errors.New("name is required")
	}
	if raw := c.PostForm("categoryId"); raw != "" {
		catID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return catalog.ProductInput{}, nil, errors.New("invalid categoryId")
		}
		id := uint(catID)
		input.CategoryID = &id
	}

	image, err := readImage(c)
	if err != nil {
		return catalog.ProductInput{}, nil, err
	}
	return input, image, nil
}

func readImage(c *gin.Context) (*catalog.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image field: nothing to upload.
		return nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New("could not read image")
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("could not read image")
	}
	return &catalog.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
