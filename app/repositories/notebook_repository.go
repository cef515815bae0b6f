package repositories

import (
	"context"
	"errors"

	"github.com/tvolodin/go-technoshop/app/models"
	"gorm.io/gorm"
)

type NotebookRepositoryImpl interface {
	VariantRepository
	Create(ctx context.Context, notebook *models.Notebook) error
	Update(ctx context.Context, notebook *models.Notebook) error
	Delete(ctx context.Context, id uint) error
}

type notebookRepository struct {
	db *gorm.DB
}

func NewNotebookRepository(db *gorm.DB) NotebookRepositoryImpl {
	return &notebookRepository{db}
}

func (r *notebookRepository) Kind() models.ProductKind {
	return models.KindNotebook
}

func (r *notebookRepository) Create(ctx context.Context, notebook *models.Notebook) error {
	return r.db.WithContext(ctx).Create(notebook).Error
}

func (r *notebookRepository) Update(ctx context.Context, notebook *models.Notebook) error {
	return r.db.WithContext(ctx).Save(notebook).Error
}

func (r *notebookRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Notebook{}, id).Error
}

func (r *notebookRepository) Latest(ctx context.Context, limit int) ([]models.ProductInfo, error) {
	var notebooks []models.Notebook
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id DESC").
		Limit(limit).
		Find(&notebooks).Error
	if err != nil {
		return nil, err
	}
	return notebookInfos(notebooks), nil
}

func (r *notebookRepository) ByID(ctx context.Context, id uint) (models.ProductInfo, error) {
	var notebook models.Notebook
	err := r.db.WithContext(ctx).Preload("Category").First(&notebook, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &notebook, nil
}

func (r *notebookRepository) BySlug(ctx context.Context, slug string) (models.ProductInfo, error) {
	var notebook models.Notebook
	err := r.db.WithContext(ctx).Preload("Category").First(&notebook, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &notebook, nil
}

func (r *notebookRepository) ByCategory(ctx context.Context, categoryID uint) ([]models.ProductInfo, error) {
	var notebooks []models.Notebook
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id DESC").
		Find(&notebooks).Error
	if err != nil {
		return nil, err
	}
	return notebookInfos(notebooks), nil
}

func (r *notebookRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notebook{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func notebookInfos(notebooks []models.Notebook) []models.ProductInfo {
	infos := make([]models.ProductInfo, len(notebooks))
	for i := range notebooks {
		infos[i] = &notebooks[i]
	}
	return infos
}
