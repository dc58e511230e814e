package router

import (
	"net/http"

	"product-catalog/internal/handler"
	"product-catalog/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(productHandler *handler.ProductHandler, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Root endpoint with service description
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "Product Catalog API", "database": "PostgreSQL"}`))
	})

	mux.HandleFunc("/health", productHandler.Health)
	mux.HandleFunc("/categories", productHandler.Categories)

	// Collection routes: list and create
	collectionHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			productHandler.List(w, r)
		case http.MethodPost:
			productHandler.Create(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Item routes: get, update, delete by ID
	itemHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products/" {
			collectionHandler(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			productHandler.GetByID(w, r)
		case http.MethodPut:
			productHandler.Update(w, r)
		case http.MethodDelete:
			productHandler.Delete(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/products", collectionHandler)
	mux.HandleFunc("/products/", itemHandler)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
