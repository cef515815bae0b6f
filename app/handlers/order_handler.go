package handlers

import (
	"log"
	"net/http"

	"github.com/tvolodin/go-technoshop/app/helpers"
	"github.com/tvolodin/go-technoshop/app/services"
	"github.com/tvolodin/go-technoshop/app/utils/sessions"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render      *render.Render
	checkoutSvc *services.CheckoutService
	session     sessions.SessionStore
}

func NewOrderHandler(r *render.Render, checkoutSvc *services.CheckoutService, session sessions.SessionStore) *OrderHandler {
	return &OrderHandler{
		render:      r,
		checkoutSvc: checkoutSvc,
		session:     session,
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID := h.session.GetCustomerID(r)
	if customerID == 0 {
		redirectWithMessage(w, r, "/", "error", "Войдите, чтобы посмотреть заказы")
		return
	}

	orders, err := h.checkoutSvc.OrdersByCustomer(r.Context(), customerID)
	if err != nil {
		log.Printf("OrderHandler.List: failed to load orders for customer %d: %v", customerID, err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":  "Мои заказы",
		"orders": orders,
	})
	_ = h.render.HTML(w, http.StatusOK, "orders", datas)
}
