package controllers

import (
	"net/http"

	"github.com/storegate/console/api/responses"
	"github.com/storegate/console/pkg/logger"
)

// ViewDescriptor tells the UI shell which view to render at a path.
type ViewDescriptor struct {
	View  string `json:"view"`
	Title string `json:"title"`
}

// LoginView describes the login form view.
func LoginView(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, ViewDescriptor{View: "login", Title: "Sign In"})
	}
}

// RegisterView describes the registration form view.
func RegisterView(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, ViewDescriptor{View: "register", Title: "Create Account"})
	}
}

// StorefrontIndex is the standard end-user view.
func StorefrontIndex(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"view":  "storefront",
			"title": "Storefront",
			"sections": []string{
				"categories",
				"products",
				"cart",
				"wishlist",
			},
		})
	}
}
