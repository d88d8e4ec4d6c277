package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storegate/console/api/controllers"
	"github.com/storegate/console/api/middleware"
	"github.com/storegate/console/internal/authz"
	"github.com/storegate/console/internal/credstore"
	"github.com/storegate/console/internal/session"
	"github.com/storegate/console/pkg/config"
	"github.com/storegate/console/pkg/logger"
)

// NewRouter assembles the console's HTTP surface: the auth operations,
// the operational endpoints, and the scope-gated view trees.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sessions *session.Manager,
	store credstore.Store,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.ScopeGate(sessions, logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, store))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(sessions, logg))
		r.Post("/register", controllers.AuthRegister(sessions, logg))
		r.Post("/logout", controllers.AuthLogout(sessions, logg))
		r.Get("/session", controllers.AuthSession(sessions, logg))
	})

	// View routes. The scope gate has already resolved reachability, so
	// each tree only mounts its own views; everything off-tree was
	// redirected or 404ed before it got here.
	r.Get(authz.UserHome, controllers.StorefrontIndex(logg))
	r.Get(authz.LoginPath, controllers.LoginView(logg))
	r.Get(authz.RegisterPath, controllers.RegisterView(logg))

	r.Route("/admin", func(r chi.Router) {
		r.Get("/dashboard", controllers.AdminDashboard(logg))
		r.Get("/orders", controllers.AdminOrders(logg))
		r.Get("/members", controllers.AdminMembers(logg))
		r.Get("/stores", controllers.AdminStores(logg))
	})

	return r
}
