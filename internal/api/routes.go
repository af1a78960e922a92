package api

import "github.com/go-chi/chi/v5"

// Routes mounts the billing endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/sessions", func(s chi.Router) {
		s.Post("/", h.CreateSession)
		s.Route("/{id}", func(session chi.Router) {
			session.Get("/", h.GetSession)
			session.Delete("/", h.DeleteSession)
			session.Post("/clear", h.ClearCart)

			session.Post("/items", h.AddItem)
			session.Put("/items/{productId}", h.UpdateItem)
			session.Delete("/items/{productId}", h.RemoveItem)

			session.Put("/customer", h.SetCustomer)
			session.Delete("/customer", h.ClearCustomer)

			session.Post("/payments", h.AddPayment)
			session.Delete("/payments/{index}", h.RemovePayment)
		})
	})
	r.Get("/gstin/{id}", h.GSTIN)
	r.Get("/format/amount", h.FormatAmount)
	r.Get("/format/words", h.FormatWords)
	return r
}
