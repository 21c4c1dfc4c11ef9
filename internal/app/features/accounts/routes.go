// internal/app/features/accounts/routes.go
package accounts

import "github.com/go-chi/chi/v5"

// MountRoutes registers the account endpoints on the supplied router.
// The paths are flat because they are a contract with existing clients.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/signup", h.HandleSignup)
	r.Post("/login", h.HandleLogin)
	r.Put("/update_profile", h.HandleUpdateProfile)
	r.Post("/upload_profile_photo", h.HandleUploadPhoto)
}
