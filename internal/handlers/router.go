package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"library-records/internal/memory"
)

// NewRouter buduje router HTTP z pełnym zestawem tras API
func NewRouter(store *memory.Client) chi.Router {
	r := chi.NewRouter()

	// Middleware do logowania requestów
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	booksHandler := NewBooksHandler(store)
	membersHandler := NewMembersHandler(store)
	recordsHandler := NewRecordsHandler(store)

	r.Get("/health", healthCheck)

	r.Route("/api", func(r chi.Router) {
		// Trasy dla książek
		r.Route("/books", func(r chi.Router) {
			r.Get("/", booksHandler.ListBooks)
			r.Post("/", booksHandler.CreateBook)
			r.Get("/dueondate", booksHandler.BooksDueOnDate)
			r.Get("/{id}", booksHandler.GetBook)
			r.Put("/{id}", booksHandler.UpdateBook)
			r.Delete("/{id}", booksHandler.DeleteBook)
			r.Get("/{id}/availability", booksHandler.CheckAvailability)
		})

		// Trasy dla czytelników
		r.Route("/members", func(r chi.Router) {
			r.Get("/", membersHandler.ListMembers)
			r.Post("/", membersHandler.CreateMember)
			r.Get("/{id}", membersHandler.GetMember)
			r.Put("/{id}", membersHandler.UpdateMember)
			r.Delete("/{id}", membersHandler.DeleteMember)
		})

		// Trasy dla wypożyczeń
		r.Get("/borrowing-records", recordsHandler.ListRecords)
		r.Get("/borrowing-records/{id}", recordsHandler.GetRecord)
		r.Post("/borrow", recordsHandler.BorrowBook)
		r.Put("/return/{recordId}", recordsHandler.ReturnBook)
	})

	return r
}

// healthCheck potwierdza że serwis działa (GET /health)
func healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
