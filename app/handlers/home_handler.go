package handlers

import (
	"log"
	"net/http"

	"github.com/tvolodin/go-technoshop/app/helpers"
	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/tvolodin/go-technoshop/app/services"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render     *render.Render
	catalogSvc *services.CatalogService
}

func NewHomeHandler(r *render.Render, catalogSvc *services.CatalogService) *HomeHandler {
	return &HomeHandler{
		render:     r,
		catalogSvc: catalogSvc,
	}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalogSvc.LatestProducts(ctx, models.KindSmartphone, models.AllKinds...)
	if err != nil {
		log.Printf("HomeHandler.Home: failed to load latest products: %v", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	sidebar, err := h.catalogSvc.CategorySidebar(ctx)
	if err != nil {
		log.Printf("HomeHandler.Home: failed to load category sidebar: %v", err)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":    "Главная",
		"products": products,
		"sidebar":  sidebar,
	})
	_ = h.render.HTML(w, http.StatusOK, "home", datas)
}
