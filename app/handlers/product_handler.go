package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tvolodin/go-technoshop/app/helpers"
	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"github.com/tvolodin/go-technoshop/app/services"
	"github.com/tvolodin/go-technoshop/app/utils/spectable"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render     *render.Render
	catalogSvc *services.CatalogService
}

func NewProductHandler(r *render.Render, catalogSvc *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		render:     r,
		catalogSvc: catalogSvc,
	}
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := models.ProductKind(vars["kind"])
	slug := vars["slug"]

	if !kind.Valid() {
		http.NotFound(w, r)
		return
	}

	product, err := h.catalogSvc.ProductBySlug(r.Context(), kind, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("ProductHandler.Detail: failed to load %s/%s: %v", kind, slug, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":     product.GetTitle(),
		"product":   product,
		"specTable": spectable.Render(product),
	})
	_ = h.render.HTML(w, http.StatusOK, "product", datas)
}
