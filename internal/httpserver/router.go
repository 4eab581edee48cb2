package httpserver

import (
	"net/http"

	"legitlah-be/internal/auth"
	"legitlah-be/internal/cart"
	"legitlah-be/internal/listing"
	"legitlah-be/internal/logger"
	mw "legitlah-be/internal/middleware"
	"legitlah-be/internal/order"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Deps collects everything the router wires together. Listings is nil
// when no database is configured; the classifieds routes are simply not
// mounted then.
type Deps struct {
	Gate     *auth.Gate
	AuthSvc  *auth.Service
	Carts    *cart.Store
	Orders   *order.Service
	Admin    AdminRegistry
	Listings listing.Service
}

func NewRouter(deps Deps) http.Handler {
	authH := NewAuthHandler(deps.AuthSvc)
	cartH := NewCartHandler(deps.Carts, deps.Orders)
	orderH := NewOrderHandler(deps.Orders)
	sellerH := NewSellerHandler(deps.Orders)
	adminH := NewAdminHandler(deps.AuthSvc, deps.Orders, deps.Admin)

	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(mw.ResolveIdentity(deps.Gate))
	r.Use(mw.RateLimitMiddleware)
	r.Use(logger.LoggingMiddleware)

	// public
	r.Get("/login", authH.LoginPage)
	r.Post("/login", authH.Login)
	r.Get("/admin-login", authH.AdminLoginPage)
	r.Post("/admin-login", authH.AdminLogin)
	r.Get("/register", authH.RegisterPage)
	r.Post("/signup", authH.Signup)
	r.Post("/logout", authH.Logout)

	// buyer routes: any authenticated session
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth)

		r.Get("/", orderH.Home)
		r.Get("/products", orderH.Products)
		r.Get("/buy", orderH.Buy)
		r.Get("/cart", cartH.CartPage)
		r.Get("/checkout", cartH.CheckoutPage)
		r.Get("/ordertrack", orderH.OrderTrack)
		r.Get("/orderdetails", orderH.OrderDetails)
		r.Get("/orderdetails/{orderId}", orderH.OrderDetails)
		r.Get("/confirm", orderH.ConfirmPage)

		r.Get("/getCart", cartH.GetCart)
		r.Get("/getOrderData", orderH.GetOrderData)
		r.Post("/addToCart", cartH.AddToCart)
		r.Post("/removeFromCart", cartH.RemoveFromCart)
		r.Post("/processCheckout", cartH.ProcessCheckout)
		r.Post("/createOrder", orderH.CreateOrder)
		r.Post("/confirmDelivery", orderH.ConfirmDelivery)
	})

	// seller routes
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireSeller)

		r.Get("/seller", sellerH.Dashboard)
		r.Post("/createSellerProfile", sellerH.CreateProfile)
		r.Post("/acceptOrder", sellerH.AcceptOrder)
		r.Post("/shipOrder", sellerH.ShipOrder)
		r.Post("/releasePayment", sellerH.ReleasePayment)
	})

	// admin page and APIs; the page redirects, the APIs answer 401
	r.With(mw.RequireAdminPage).Get("/admin", adminH.Dashboard)
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAdminAPI)

		r.Get("/admin/users", adminH.Users)
		r.Post("/admin/promote", adminH.Promote)
		r.Post("/admin/sellerConfirm", adminH.SellerConfirm)
	})

	if deps.Listings != nil {
		listingH := NewListingHandler(deps.Listings)
		r.Get("/classifieds", listingH.Browse)
		r.Get("/classifieds/{id}", listingH.Details)
		r.With(mw.RequireAuth).Post("/classifieds", listingH.Post)
	}

	return r
}
