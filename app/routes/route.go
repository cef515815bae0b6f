package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/tvolodin/go-technoshop/app/configs"
	"github.com/tvolodin/go-technoshop/app/handlers"
	"github.com/tvolodin/go-technoshop/app/middlewares"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"github.com/tvolodin/go-technoshop/app/services"
	"github.com/tvolodin/go-technoshop/app/utils/cache"
	"github.com/tvolodin/go-technoshop/app/utils/renderer"
	"github.com/tvolodin/go-technoshop/app/utils/sessions"
	"gorm.io/gorm"
)

const catalogCacheTTL = 30 * time.Second

func NewRouter(db *gorm.DB) http.Handler {
	rnd := renderer.New()

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Printf("Session keys not configured (%v), generating ephemeral keys", err)
		keys = &configs.SessionKeys{
			AuthKey: securecookie.GenerateRandomKey(64),
			EncKey:  securecookie.GenerateRandomKey(32),
		}
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	categoryRepo := repositories.NewCategoryRepository(db)
	notebookRepo := repositories.NewNotebookRepository(db)
	smartphoneRepo := repositories.NewSmartphoneRepository(db)
	registry := repositories.NewRegistry(notebookRepo, smartphoneRepo)

	cartRepo := repositories.NewCartRepository(db)
	cartProductRepo := repositories.NewCartProductRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	catalogSvc := services.NewCatalogService(registry, categoryRepo, cache.New(catalogCacheTTL))
	cartSvc := services.NewCartService(db, cartRepo, cartProductRepo, registry)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo, customerRepo)

	homeHandler := handlers.NewHomeHandler(rnd, catalogSvc)
	productHandler := handlers.NewProductHandler(rnd, catalogSvc)
	categoryHandler := handlers.NewCategoryHandler(rnd, catalogSvc)
	cartHandler := handlers.NewCartHandler(rnd, cartSvc, registry, sessionStore)
	checkoutHandler := handlers.NewCheckoutHandler(rnd, cartSvc, checkoutSvc, sessionStore)
	orderHandler := handlers.NewOrderHandler(rnd, checkoutSvc, sessionStore)

	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.CartCountMiddleware(cartRepo, sessionStore))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/products/{kind}/{slug}", productHandler.Detail).Methods("GET")
	router.HandleFunc("/categories/{slug}", categoryHandler.Detail).Methods("GET")

	router.HandleFunc("/carts", cartHandler.GetCart).Methods("GET")
	router.HandleFunc("/carts/add", cartHandler.AddToCart).Methods("POST")
	router.HandleFunc("/carts/update", cartHandler.UpdateQuantity).Methods("POST")
	router.HandleFunc("/carts/remove", cartHandler.RemoveFromCart).Methods("POST")

	router.HandleFunc("/checkout", checkoutHandler.Show).Methods("GET")
	router.HandleFunc("/checkout", checkoutHandler.PlaceOrder).Methods("POST")

	router.HandleFunc("/orders", orderHandler.List).Methods("GET")

	csrfKey := []byte(configs.LoadENV.CSRFKey)
	if len(csrfKey) == 0 {
		log.Println("CSRF_KEY not configured, generating an ephemeral key")
		csrfKey = securecookie.GenerateRandomKey(32)
	}

	return csrf.Protect(csrfKey, csrf.Secure(false))(router)
}
