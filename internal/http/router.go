package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/MrJamesThe3rd/contasimple/internal/http/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/http/dashboard"
	"github.com/MrJamesThe3rd/contasimple/internal/http/expense"
	"github.com/MrJamesThe3rd/contasimple/internal/http/report"
	"github.com/MrJamesThe3rd/contasimple/internal/http/sale"
)

type Options struct {
	Timeout            time.Duration
	AllowedOrigins     []string
	RateLimitPerMinute int
}

func New(
	opts Options,
	salesV1 *sale.Handler,
	expensesV1 *expense.Handler,
	bankIncomesV1 *bankincome.Handler,
	reportsV1 *report.Handler,
	dashboardV1 *dashboard.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Use(securityHeaders())
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if opts.RateLimitPerMinute > 0 {
		router.Use(httprate.Limit(opts.RateLimitPerMinute, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/sales", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			salesV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/bank-incomes", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json", "multipart/form-data"))
			bankIncomesV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)
		r.Route("/dashboard", dashboardV1.Routes)
	})

	return router
}

func securityHeaders() func(http.Handler) http.Handler {
	sm := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "no-referrer",
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sm.Process(w, r); err != nil {
				slog.Warn("secure headers blocked request", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
