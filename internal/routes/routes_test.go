package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bistro_back_end/internal/handlers"
	"bistro_back_end/internal/models"
	"bistro_back_end/internal/routes"
	"bistro_back_end/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "secret-de-test"

type stubFinder struct {
	users map[string]*models.User
}

func (s stubFinder) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return s.users[email], nil
}

func newDeps(finder stubFinder) routes.Deps {
	tokens := token.NewService(testSecret)
	return routes.Deps{
		Tokens: tokens,
		Users:  finder,
		// Client Redis jamais connecté : le rate limit laisse passer quand
		// Redis est injoignable, ce qui suffit ici.
		Redis:   redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}),
		Menu:    handlers.NewMenuHandler(nil, nil),
		User:    handlers.NewUserHandler(nil, tokens),
		Review:  handlers.NewReviewHandler(nil),
		Cart:    handlers.NewCartHandler(nil),
		Payment: handlers.NewPaymentHandler(nil, nil),
		Stats:   handlers.NewStatsHandler(nil, nil, nil),
	}
}

func issueToken(t *testing.T, email string) string {
	t.Helper()
	tok, err := token.NewService(testSecret).Issue(map[string]any{"email": email})
	if err != nil {
		t.Fatalf("émission du token de test: %v", err)
	}
	return tok
}

func TestTable(t *testing.T) {
	t.Parallel()

	want := map[string]routes.Policy{
		"GET /":                       routes.Public,
		"GET /menu":                   routes.Public,
		"GET /menu/:id":               routes.Public,
		"POST /menu":                  routes.Admin,
		"PATCH /menu/:id":             routes.Public,
		"DELETE /menu/:id":            routes.Admin,
		"GET /reviews":                routes.Public,
		"POST /jwt":                   routes.Public,
		"GET /users":                  routes.Admin,
		"GET /users/admin/:email":     routes.Self,
		"POST /users":                 routes.Public,
		"DELETE /users/:id":           routes.Admin,
		"PATCH /users/admin/:id":      routes.Admin,
		"GET /carts":                  routes.Public,
		"POST /carts":                 routes.Public,
		"DELETE /carts/:id":           routes.Public,
		"GET /payments/:email":        routes.Self,
		"POST /create-payment-intent": routes.Public,
		"POST /payments":              routes.Public,
		"GET /admin-stats":            routes.Admin,
		"GET /order-stats":            routes.Public,
	}

	table := routes.Table(newDeps(stubFinder{}))
	if len(table) != len(want) {
		t.Errorf("routes déclarées = %d, attendu %d", len(table), len(want))
	}

	seen := map[string]bool{}
	for _, rt := range table {
		key := rt.Method + " " + rt.Path
		policy, known := want[key]
		if !known {
			t.Errorf("route inattendue dans la table: %s", key)
			continue
		}
		if seen[key] {
			t.Errorf("route déclarée deux fois: %s", key)
		}
		seen[key] = true
		if rt.Policy != policy {
			t.Errorf("%s: politique = %v, attendu %v", key, rt.Policy, policy)
		}
		if rt.Handler == nil {
			t.Errorf("%s: handler nil", key)
		}
	}
	for key := range want {
		if !seen[key] {
			t.Errorf("route absente de la table: %s", key)
		}
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	newRouter := func(finder stubFinder) *gin.Engine {
		r := gin.New()
		routes.Register(r, newDeps(finder))
		return r
	}

	t.Run("la sonde de vie répond en texte brut", func(t *testing.T) {
		t.Parallel()

		r := newRouter(stubFinder{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("code = %d, attendu %d", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), "Bistro Boss") {
			t.Errorf("corps = %q, message de vie attendu", w.Body.String())
		}
	})

	t.Run("POST /jwt émet un token vérifiable", func(t *testing.T) {
		t.Parallel()

		r := newRouter(stubFinder{})
		req := httptest.NewRequest(http.MethodPost, "/jwt",
			strings.NewReader(`{"email":"alice@exemple.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("code = %d, attendu %d", w.Code, http.StatusOK)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("corps de réponse illisible: %v", err)
		}
		claims, err := token.NewService(testSecret).Verify(body["token"])
		if err != nil {
			t.Fatalf("token émis non vérifiable: %v", err)
		}
		if got, _ := claims["email"].(string); got != "alice@exemple.com" {
			t.Errorf("email du claim = %q, attendu %q", got, "alice@exemple.com")
		}
	})

	t.Run("un endpoint admin sans token répond 401", func(t *testing.T) {
		t.Parallel()

		r := newRouter(stubFinder{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, attendu %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("un token valide sans utilisateur admin en base répond 403, jamais 200", func(t *testing.T) {
		t.Parallel()

		r := newRouter(stubFinder{users: map[string]*models.User{}})
		req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "inconnu@exemple.com"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("code = %d, attendu %d", w.Code, http.StatusForbidden)
		}
	})

	t.Run("consulter les paiements d'un autre email répond 403", func(t *testing.T) {
		t.Parallel()

		r := newRouter(stubFinder{})
		req := httptest.NewRequest(http.MethodGet, "/payments/autre@exemple.com", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "moi@exemple.com"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("code = %d, attendu %d", w.Code, http.StatusForbidden)
		}
	})

	t.Run("PATCH /menu/:id n'exige pas de token (parité historique)", func(t *testing.T) {
		t.Parallel()

		// Body invalide : le handler répond 400, preuve que la requête a
		// franchi les gardes sans authentification.
		r := newRouter(stubFinder{})
		req := httptest.NewRequest(http.MethodPatch, "/menu/123", strings.NewReader("pas du json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code == http.StatusUnauthorized || w.Code == http.StatusForbidden {
			t.Fatalf("code = %d, le PATCH menu ne doit pas être gardé", w.Code)
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d, attendu %d", w.Code, http.StatusBadRequest)
		}
	})
}
