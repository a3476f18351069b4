// Package catalog implements product management: listing with a redis
// read-through cache, and the auth-gated create/update/delete operations
// with optional image upload.
package catalog

import (
	"context"
	"encoding/json"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Ibrahimvain/pesan-aja/models"
	"github.com/Ibrahimvain/pesan-aja/storage"
	"github.com/Ibrahimvain/pesan-aja/store"
)

const (
	listCacheKey = "catalog:list"
	listCacheTTL = 5 * time.Minute
)

// ListResult is the public catalog payload: products newest first plus all
// categories, the way the storefront renders them.
type ListResult struct {
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *uint
}

// ImageUpload is an optional product image taken from a multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service struct {
	catalog store.Catalog
	cache   *redis.Client // nil disables caching
	objects storage.ObjectStore
	log     *zap.Logger
}

func NewService(catalog store.Catalog, cache *redis.Client, objects storage.ObjectStore, log *zap.Logger) *Service {
	return &Service{catalog: catalog, cache: cache, objects: objects, log: log}
}

// List serves from cache when possible and falls through to the database.
func (s *Service) List(ctx context.Context) (*ListResult, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, listCacheKey).Result()
		if err == nil {
			var result ListResult
			if json.Unmarshal([]byte(cached), &result) == nil {
				return &result, nil
			}
		}
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	result := &ListResult{Products: products, Categories: categories}

	if s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			go s.cache.Set(context.Background(), listCacheKey, payload, listCacheTTL)
		}
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, in ProductInput, image *ImageUpload) (*models.Product, error) {
	imageURL, err := s.uploadImage(ctx, "prod", image)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    imageURL,
		CategoryID:  in.CategoryID,
	}
	if err := s.catalog.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate()
	s.log.Info("product created", zap.Uint("product_id", product.Id), zap.String("name", product.Name))
	return product, nil
}

func (s *Service) Update(ctx context.Context, id uint, in ProductInput, image *ImageUpload) (*models.Product, error) {
	product, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock
	product.CategoryID = in.CategoryID

	if image != nil {
		imageURL, err := s.uploadImage(ctx, "upd", image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = imageURL
	}

	if err := s.catalog.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate()
	return product, nil
}

// Delete removes the product and every order item referencing it, together.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.catalog.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	s.log.Info("product deleted", zap.Uint("product_id", id))
	return nil
}

func (s *Service) uploadImage(ctx context.Context, prefix string, image *ImageUpload) (string, error) {
	if image == nil || len(image.Data) == 0 || s.objects == nil {
		return "", nil
	}
	key := prefix + "_" + uuid.NewString() + path.Ext(image.Filename)
	return s.objects.Put(ctx, key, image.ContentType, image.Data)
}

func (s *Service) invalidate() {
	if s.cache != nil {
		go s.cache.Del(context.Background(), listCacheKey)
	}
}
