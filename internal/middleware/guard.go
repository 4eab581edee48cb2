package middleware

import (
	"net/http"

	"legitlah-be/internal/transport"
)

// Route policy:
//
//	buyer pages and cart/checkout/tracking calls  any authenticated  redirect /login
//	seller dashboard and actions                  Seller             redirect /login
//	admin pages                                   Admin              redirect /admin-login
//	admin JSON endpoints                          Admin              401 JSON
//	login/signup                                  public

// RequireAuth admits any authenticated caller.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IdentityFrom(r.Context()).Authenticated() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSeller admits sellers only. Admin does not imply seller access;
// the capability sets are disjoint.
func RequireSeller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IdentityFrom(r.Context()).IsSeller() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminPage guards admin pages, sending browsers to the admin
// login page.
func RequireAdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IdentityFrom(r.Context()).IsAdmin() {
			http.Redirect(w, r, "/admin-login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminAPI guards admin JSON endpoints with a 401 envelope.
func RequireAdminAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IdentityFrom(r.Context()).IsAdmin() {
			transport.Fail(w, http.StatusUnauthorized, "Admin session required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
