package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/common"
	"github.com/Jfgm299/centro-control-personal/internal/constants"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/logging"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
	"github.com/Jfgm299/centro-control-personal/internal/providers"
)

const (
	productCacheTTL = 1 * time.Hour

	// minLocalSearchHits is the local-hit threshold below which remote
	// results are merged into a name search.
	minLocalSearchHits = 5

	searchLimit = 20
)

// FoodService resolves products against the shared catalog, falling back to
// OpenFoodFacts on a miss. Remote search results are never persisted; only
// barcode lookups populate the catalog.
type FoodService struct {
	repo     *repositories.MacroRepository
	provider providers.FoodProvider
	cache    common.CacheInterface
}

func NewFoodService(repo *repositories.MacroRepository, provider providers.FoodProvider, cache common.CacheInterface) *FoodService {
	return &FoodService{repo: repo, provider: provider, cache: cache}
}

// GetOrFetchProductByBarcode checks cache, then the catalog, then the
// provider. A concurrent first-time scan of the same barcode can lose the
// insert race; the unique-index conflict means someone else already cached
// the row, so it is re-read rather than surfaced.
func (s *FoodService) GetOrFetchProductByBarcode(ctx context.Context, barcode string) (*dtos.ProductResponse, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, apperrors.Validation("barcode is required")
	}

	cacheKey := string(constants.CachePrefixProductBarcode) + barcode
	if cached, found := s.cache.Get(cacheKey); found {
		if product, ok := cached.(*gormModels.Product); ok {
			return dtos.NewProductResponse(product), nil
		}
	}

	product, err := s.repo.GetProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product != nil {
		s.cache.Set(cacheKey, product, productCacheTTL)
		return dtos.NewProductResponse(product), nil
	}

	fetched, err := s.provider.GetProduct(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, fetched); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, readErr := s.repo.GetProductByBarcode(ctx, barcode)
			if readErr != nil {
				return nil, readErr
			}
			if existing != nil {
				s.cache.Set(cacheKey, existing, productCacheTTL)
				return dtos.NewProductResponse(existing), nil
			}
		}
		return nil, err
	}

	s.cache.Set(cacheKey, fetched, productCacheTTL)
	return dtos.NewProductResponse(fetched), nil
}

// SearchProducts runs the catalog and provider searches concurrently. Remote
// hits only pad the response when the catalog comes up short, and a remote
// failure degrades to local-only results.
func (s *FoodService) SearchProducts(ctx context.Context, query string) (*dtos.ProductSearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.Validation("query is required")
	}

	var (
		local  []gormModels.Product
		remote []*gormModels.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		local, err = s.repo.SearchProductsByName(gctx, query, searchLimit)
		return err
	})
	g.Go(func() error {
		results, err := s.provider.SearchByName(gctx, query, searchLimit)
		if err != nil {
			logging.Warn("remote product search failed", "query", query, "error", err)
			return nil
		}
		remote = results
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dtos.ProductSearchResponse{Products: make([]*dtos.ProductResponse, 0, len(local))}
	seen := make(map[string]struct{})
	for i := range local {
		p := &local[i]
		if p.Barcode != nil {
			seen[*p.Barcode] = struct{}{}
		}
		resp.Products = append(resp.Products, dtos.NewProductResponse(p))
	}

	if len(local) < minLocalSearchHits {
		for _, p := range remote {
			if len(resp.Products) >= searchLimit {
				break
			}
			if p.Barcode != nil {
				if _, dup := seen[*p.Barcode]; dup {
					continue
				}
				seen[*p.Barcode] = struct{}{}
			}
			resp.Products = append(resp.Products, dtos.NewProductResponse(p))
		}
	}

	resp.Total = len(resp.Products)
	return resp, nil
}

func (s *FoodService) GetProduct(ctx context.Context, productID uint) (*dtos.ProductResponse, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return dtos.NewProductResponse(product), nil
}
