package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tvolodin/go-technoshop/app/helpers"
	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/tvolodin/go-technoshop/app/services"
	"github.com/tvolodin/go-technoshop/app/utils/sessions"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	render      *render.Render
	cartSvc     *services.CartService
	checkoutSvc *services.CheckoutService
	session     sessions.SessionStore
}

func NewCheckoutHandler(r *render.Render, cartSvc *services.CartService, checkoutSvc *services.CheckoutService, session sessions.SessionStore) *CheckoutHandler {
	return &CheckoutHandler{
		render:      r,
		cartSvc:     cartSvc,
		checkoutSvc: checkoutSvc,
		session:     session,
	}
}

func (h *CheckoutHandler) Show(w http.ResponseWriter, r *http.Request) {
	token, err := h.session.GetCartToken(w, r)
	if err != nil {
		log.Printf("CheckoutHandler.Show: failed to get cart token: %v", err)
		http.Error(w, "Failed to load checkout", http.StatusInternalServerError)
		return
	}

	cart, err := h.cartSvc.GetSessionCart(r.Context(), token)
	if err != nil {
		log.Printf("CheckoutHandler.Show: failed to get cart: %v", err)
		http.Error(w, "Failed to load checkout", http.StatusInternalServerError)
		return
	}

	cart, err = h.cartSvc.GetCartWithProducts(r.Context(), cart.ID)
	if err != nil {
		log.Printf("CheckoutHandler.Show: failed to load cart %d: %v", cart.ID, err)
		http.Error(w, "Failed to load checkout", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Оформление заказа",
		"cart":        cart,
		"buyingTypes": []string{models.BuyingTypeSelf, models.BuyingTypeDelivery},
	})
	_ = h.render.HTML(w, http.StatusOK, "checkout", datas)
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	customerID := h.session.GetCustomerID(r)
	if customerID == 0 {
		redirectWithMessage(w, r, "/carts", "error", "Войдите, чтобы оформить заказ")
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/checkout", "error", "Invalid form data")
		return
	}

	token, err := h.session.GetCartToken(w, r)
	if err != nil {
		log.Printf("CheckoutHandler.PlaceOrder: failed to get cart token: %v", err)
		redirectWithMessage(w, r, "/checkout", "error", "Failed to load cart")
		return
	}

	cart, err := h.cartSvc.GetCustomerCart(r.Context(), customerID, token)
	if err != nil {
		log.Printf("CheckoutHandler.PlaceOrder: failed to get cart for customer %d: %v", customerID, err)
		redirectWithMessage(w, r, "/checkout", "error", "Failed to load cart")
		return
	}

	form := services.CheckoutForm{
		FirstName:  r.FormValue("first_name"),
		LastName:   r.FormValue("last_name"),
		Phone:      r.FormValue("phone"),
		Address:    r.FormValue("address"),
		BuyingType: r.FormValue("buying_type"),
		Comment:    r.FormValue("comment"),
	}

	order, err := h.checkoutSvc.PlaceOrder(r.Context(), customerID, cart.ID, form)
	if err != nil {
		log.Printf("CheckoutHandler.PlaceOrder: failed to place order for cart %d: %v", cart.ID, err)
		redirectWithMessage(w, r, "/checkout", "error", checkoutErrorMessage(err))
		return
	}

	// The session token points at the now-frozen cart; drop it so the next
	// visit starts a fresh one.
	if err := h.session.ClearCartToken(w, r); err != nil {
		log.Printf("CheckoutHandler.PlaceOrder: failed to clear cart token: %v", err)
	}

	redirectWithMessage(w, r, "/orders", "success", "Заказ "+order.OrderCode+" оформлен")
}

func checkoutErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		return "Корзина пуста"
	case errors.Is(err, services.ErrCartAlreadyOrdered):
		return "Корзина уже оформлена в заказ"
	case errors.As(err, &validationErrs):
		return "Заполните обязательные поля"
	default:
		return "Не удалось оформить заказ"
	}
}
