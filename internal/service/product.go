package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
)

type ProductService interface {
	GetProducts(ctx context.Context) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID uint, input *dto.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID uint) error
}

type productServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
	}
}

func (s *productServiceImpl) GetProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productServiceImpl) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Product", ID: productID}
		}
		return nil, fmt.Errorf("load product: %w", err)
	}

	return product, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	product := &model.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("store product: %w", err)
	}

	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, productID uint, input *dto.ProductInput) (*model.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description
	if input.Image != "" {
		product.Image = input.Image
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, productID uint) error {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return err
	}

	return s.productRepo.Delete(ctx, productID)
}
