package routes

import (
	"net/http"

	"bistro_back_end/internal/handlers"
	"bistro_back_end/internal/middleware"
	"bistro_back_end/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Policy est la politique d'accès d'une route. Chaque route en déclare
// exactement une dans la table : les trous de couverture se voient à la
// relecture de la table, pas en chassant des appels de middleware.
type Policy int

const (
	// Public : aucune authentification.
	Public Policy = iota
	// Authenticated : bearer token valide requis.
	Authenticated
	// Self : token valide + l'email du chemin doit être celui du claim.
	Self
	// Admin : token valide + rôle admin rechargé en base.
	Admin
)

type Route struct {
	Method  string
	Path    string
	Policy  Policy
	Handler gin.HandlerFunc
	Extra   []gin.HandlerFunc
}

// Deps regroupe tout ce que la table de routes consomme, construit dans
// main et injecté ici.
type Deps struct {
	Tokens  *token.Service
	Users   middleware.UserFinder
	Redis   *redis.Client
	Menu    *handlers.MenuHandler
	User    *handlers.UserHandler
	Review  *handlers.ReviewHandler
	Cart    *handlers.CartHandler
	Payment *handlers.PaymentHandler
	Stats   *handlers.StatsHandler
}

// Table est la table déclarative des routes et de leurs politiques.
func Table(d Deps) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Policy: Public, Handler: handlers.Live},

		// Menu
		{Method: http.MethodGet, Path: "/menu", Policy: Public, Handler: d.Menu.List},
		{Method: http.MethodGet, Path: "/menu/:id", Policy: Public, Handler: d.Menu.Get},
		{Method: http.MethodPost, Path: "/menu", Policy: Admin, Handler: d.Menu.Create},
		// Garde absente sur le PATCH : parité avec le comportement
		// historique de l'API, assumée et visible ici.
		{Method: http.MethodPatch, Path: "/menu/:id", Policy: Public, Handler: d.Menu.Update},
		{Method: http.MethodDelete, Path: "/menu/:id", Policy: Admin, Handler: d.Menu.Delete},

		// Avis
		{Method: http.MethodGet, Path: "/reviews", Policy: Public, Handler: d.Review.List},

		// Tokens
		{Method: http.MethodPost, Path: "/jwt", Policy: Public, Handler: d.User.IssueToken,
			Extra: []gin.HandlerFunc{middleware.TokenRateLimit(d.Redis)}},

		// Utilisateurs
		{Method: http.MethodGet, Path: "/users", Policy: Admin, Handler: d.User.List},
		{Method: http.MethodGet, Path: "/users/admin/:email", Policy: Self, Handler: d.User.CheckAdmin},
		{Method: http.MethodPost, Path: "/users", Policy: Public, Handler: d.User.Create},
		{Method: http.MethodDelete, Path: "/users/:id", Policy: Admin, Handler: d.User.Delete},
		{Method: http.MethodPatch, Path: "/users/admin/:id", Policy: Admin, Handler: d.User.Promote},

		// Panier
		{Method: http.MethodGet, Path: "/carts", Policy: Public, Handler: d.Cart.List},
		{Method: http.MethodPost, Path: "/carts", Policy: Public, Handler: d.Cart.Create},
		{Method: http.MethodDelete, Path: "/carts/:id", Policy: Public, Handler: d.Cart.Delete},

		// Paiements
		{Method: http.MethodGet, Path: "/payments/:email", Policy: Self, Handler: d.Payment.ListByEmail},
		{Method: http.MethodPost, Path: "/create-payment-intent", Policy: Public, Handler: d.Payment.CreateIntent},
		{Method: http.MethodPost, Path: "/payments", Policy: Public, Handler: d.Payment.Create},

		// Statistiques
		{Method: http.MethodGet, Path: "/admin-stats", Policy: Admin, Handler: d.Stats.AdminStats},
		{Method: http.MethodGet, Path: "/order-stats", Policy: Public, Handler: d.Stats.OrderStats},
	}
}

// Register applique les gardes correspondant à la politique de chaque
// route puis enregistre le tout sur le moteur Gin.
func Register(r *gin.Engine, d Deps) {
	auth := middleware.RequireAuth(d.Tokens)
	admin := middleware.RequireAdmin(d.Users)
	self := middleware.RequireSelf("email")

	for _, rt := range Table(d) {
		chain := []gin.HandlerFunc{}
		switch rt.Policy {
		case Authenticated:
			chain = append(chain, auth)
		case Self:
			chain = append(chain, auth, self)
		case Admin:
			chain = append(chain, auth, admin)
		}
		chain = append(chain, rt.Extra...)
		chain = append(chain, rt.Handler)
		r.Handle(rt.Method, rt.Path, chain...)
	}
}
