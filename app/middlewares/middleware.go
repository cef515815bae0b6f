package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/tvolodin/go-technoshop/app/helpers"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"github.com/tvolodin/go-technoshop/app/utils/sessions"
)

// CartCountMiddleware resolves the visitor's cart through the session token
// and puts its line count on the request context for the layout badge.
func CartCountMiddleware(cartRepo repositories.CartRepositoryImpl, store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := store.GetCartToken(w, r)
			if err != nil {
				log.Printf("CartCountMiddleware: Error getting cart token: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			count := 0
			cart, err := cartRepo.GetByToken(r.Context(), token)
			if err == nil {
				count, err = cartRepo.GetProductCount(r.Context(), cart.ID)
				if err != nil {
					log.Printf("CartCountMiddleware: Error getting cart line count for cart %d: %v", cart.ID, err)
					count = 0
				}
			}

			ctx := context.WithValue(r.Context(), helpers.CartCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MethodOverrideMiddleware lets HTML forms issue PUT/DELETE via a hidden
// _method field.
func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
