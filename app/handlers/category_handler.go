package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tvolodin/go-technoshop/app/helpers"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"github.com/tvolodin/go-technoshop/app/services"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	render     *render.Render
	catalogSvc *services.CatalogService
}

func NewCategoryHandler(r *render.Render, catalogSvc *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		render:     r,
		catalogSvc: catalogSvc,
	}
}

func (h *CategoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, products, err := h.catalogSvc.CategoryProducts(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("CategoryHandler.Detail: failed to load category %q: %v", slug, err)
		http.Error(w, "Failed to load category", http.StatusInternalServerError)
		return
	}

	sidebar, err := h.catalogSvc.CategorySidebar(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.Detail: failed to load sidebar: %v", err)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":    category.Name,
		"category": category,
		"products": products,
		"sidebar":  sidebar,
	})
	_ = h.render.HTML(w, http.StatusOK, "category", datas)
}
