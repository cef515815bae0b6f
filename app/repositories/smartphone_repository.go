package repositories

import (
	"context"
	"errors"

	"github.com/tvolodin/go-technoshop/app/models"
	"gorm.io/gorm"
)

type SmartphoneRepositoryImpl interface {
	VariantRepository
	Create(ctx context.Context, smartphone *models.Smartphone) error
	Update(ctx context.Context, smartphone *models.Smartphone) error
	Delete(ctx context.Context, id uint) error
}

type smartphoneRepository struct {
	db *gorm.DB
}

func NewSmartphoneRepository(db *gorm.DB) SmartphoneRepositoryImpl {
	return &smartphoneRepository{db}
}

func (r *smartphoneRepository) Kind() models.ProductKind {
	return models.KindSmartphone
}

func (r *smartphoneRepository) Create(ctx context.Context, smartphone *models.Smartphone) error {
	return r.db.WithContext(ctx).Create(smartphone).Error
}

func (r *smartphoneRepository) Update(ctx context.Context, smartphone *models.Smartphone) error {
	return r.db.WithContext(ctx).Save(smartphone).Error
}

func (r *smartphoneRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Smartphone{}, id).Error
}

func (r *smartphoneRepository) Latest(ctx context.Context, limit int) ([]models.ProductInfo, error) {
	var smartphones []models.Smartphone
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id DESC").
		Limit(limit).
		Find(&smartphones).Error
	if err != nil {
		return nil, err
	}
	return smartphoneInfos(smartphones), nil
}

func (r *smartphoneRepository) ByID(ctx context.Context, id uint) (models.ProductInfo, error) {
	var smartphone models.Smartphone
	err := r.db.WithContext(ctx).Preload("Category").First(&smartphone, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &smartphone, nil
}

func (r *smartphoneRepository) BySlug(ctx context.Context, slug string) (models.ProductInfo, error) {
	var smartphone models.Smartphone
	err := r.db.WithContext(ctx).Preload("Category").First(&smartphone, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &smartphone, nil
}

func (r *smartphoneRepository) ByCategory(ctx context.Context, categoryID uint) ([]models.ProductInfo, error) {
	var smartphones []models.Smartphone
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id DESC").
		Find(&smartphones).Error
	if err != nil {
		return nil, err
	}
	return smartphoneInfos(smartphones), nil
}

func (r *smartphoneRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Smartphone{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func smartphoneInfos(smartphones []models.Smartphone) []models.ProductInfo {
	infos := make([]models.ProductInfo, len(smartphones))
	for i := range smartphones {
		infos[i] = &smartphones[i]
	}
	return infos
}
