package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tvolodin/go-technoshop/app/helpers"
	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"github.com/tvolodin/go-technoshop/app/services"
	"github.com/tvolodin/go-technoshop/app/utils/sessions"
	"github.com/unrolled/render"
)

// CartLine pairs a stored cart line with its resolved product for display.
type CartLine struct {
	Line    models.CartProduct
	Product models.ProductInfo
}

type CartHandler struct {
	render   *render.Render
	cartSvc  *services.CartService
	registry *repositories.Registry
	session  sessions.SessionStore
}

func NewCartHandler(r *render.Render, cartSvc *services.CartService, registry *repositories.Registry, session sessions.SessionStore) *CartHandler {
	return &CartHandler{
		render:   r,
		cartSvc:  cartSvc,
		registry: registry,
		session:  session,
	}
}

func (h *CartHandler) sessionCart(w http.ResponseWriter, r *http.Request) (*models.Cart, error) {
	token, err := h.session.GetCartToken(w, r)
	if err != nil {
		return nil, err
	}
	return h.cartSvc.GetSessionCart(r.Context(), token)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.sessionCart(w, r)
	if err != nil {
		log.Printf("CartHandler.GetCart: failed to get session cart: %v", err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	cart, err = h.cartSvc.GetCartWithProducts(r.Context(), cart.ID)
	if err != nil {
		log.Printf("CartHandler.GetCart: failed to load cart %d: %v", cart.ID, err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	lines := make([]CartLine, 0, len(cart.Products))
	for _, cp := range cart.Products {
		product, err := h.registry.Resolve(r.Context(), cp.Kind, cp.ProductID)
		if err != nil {
			log.Printf("CartHandler.GetCart: dangling reference %s/%d in cart %d: %v", cp.Kind, cp.ProductID, cart.ID, err)
			continue
		}
		lines = append(lines, CartLine{Line: cp, Product: product})
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Корзина",
		"cart":       cart,
		"lines":      lines,
		"finalPrice": cart.FinalPrice,
	})
	_ = h.render.HTML(w, http.StatusOK, "cart", datas)
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/carts", "error", "Invalid form data")
		return
	}

	kind := models.ProductKind(r.FormValue("kind"))
	productID, err := strconv.ParseUint(r.FormValue("product_id"), 10, 64)
	if err != nil {
		redirectWithMessage(w, r, "/carts", "error", "Invalid product id")
		return
	}
	qty, err := strconv.Atoi(r.FormValue("qty"))
	if err != nil {
		qty = 1
	}

	cart, err := h.sessionCart(w, r)
	if err != nil {
		log.Printf("CartHandler.AddToCart: failed to get session cart: %v", err)
		redirectWithMessage(w, r, "/carts", "error", "Failed to load cart")
		return
	}

	_, err = h.cartSvc.AddProduct(r.Context(), cart.ID, cart.CustomerID, kind, uint(productID), qty)
	if err != nil {
		log.Printf("CartHandler.AddToCart: failed to add %s/%d to cart %d: %v", kind, productID, cart.ID, err)
		redirectWithMessage(w, r, "/carts", "error", cartErrorMessage(err))
		return
	}

	redirectWithMessage(w, r, "/carts", "success", "Товар добавлен в корзину")
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/carts", "error", "Invalid form data")
		return
	}

	lineID, err := strconv.ParseUint(r.FormValue("line_id"), 10, 64)
	if err != nil {
		redirectWithMessage(w, r, "/carts", "error", "Invalid cart line")
		return
	}
	qty, err := strconv.Atoi(r.FormValue("qty"))
	if err != nil {
		redirectWithMessage(w, r, "/carts", "error", "Invalid quantity")
		return
	}

	cart, err := h.sessionCart(w, r)
	if err != nil {
		log.Printf("CartHandler.UpdateQuantity: failed to get session cart: %v", err)
		redirectWithMessage(w, r, "/carts", "error", "Failed to load cart")
		return
	}

	_, err = h.cartSvc.UpdateQuantity(r.Context(), cart.ID, uint(lineID), qty)
	if err != nil {
		log.Printf("CartHandler.UpdateQuantity: failed to update line %d in cart %d: %v", lineID, cart.ID, err)
		redirectWithMessage(w, r, "/carts", "error", cartErrorMessage(err))
		return
	}

	redirectWithMessage(w, r, "/carts", "success", "Количество обновлено")
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/carts", "error", "Invalid form data")
		return
	}

	lineID, err := strconv.ParseUint(r.FormValue("line_id"), 10, 64)
	if err != nil {
		redirectWithMessage(w, r, "/carts", "error", "Invalid cart line")
		return
	}

	cart, err := h.sessionCart(w, r)
	if err != nil {
		log.Printf("CartHandler.RemoveFromCart: failed to get session cart: %v", err)
		redirectWithMessage(w, r, "/carts", "error", "Failed to load cart")
		return
	}

	_, err = h.cartSvc.RemoveProduct(r.Context(), cart.ID, uint(lineID))
	if err != nil {
		log.Printf("CartHandler.RemoveFromCart: failed to remove line %d from cart %d: %v", lineID, cart.ID, err)
		redirectWithMessage(w, r, "/carts", "error", cartErrorMessage(err))
		return
	}

	redirectWithMessage(w, r, "/carts", "success", "Товар удален из корзины")
}

func cartErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		return "Количество должно быть не меньше 1"
	case errors.Is(err, services.ErrCartInOrder):
		return "Корзина уже оформлена в заказ"
	case errors.Is(err, services.ErrLineNotFound):
		return "Позиция не найдена"
	case errors.Is(err, repositories.ErrProductNotFound):
		return "Товар не найден"
	default:
		return "Не удалось обновить корзину"
	}
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, status, message string) {
	query := url.Values{}
	query.Set("status", status)
	query.Set("message", message)
	http.Redirect(w, r, path+"?"+query.Encode(), http.StatusSeeOther)
}
