package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jykim-dev/welfare-survey/internal/api"
	dbstore "github.com/jykim-dev/welfare-survey/internal/db"
	"github.com/jykim-dev/welfare-survey/internal/middleware"
	"github.com/jykim-dev/welfare-survey/internal/utils"
)

func main() {
	addr := utils.SafeEnv("WELFARE_ADDR", ":8080")
	dbPath := utils.SafeEnv("WELFARE_DB_PATH", "welfare.db")
	commit := os.Getenv("WELFARE_COMMIT")
	buildTime := os.Getenv("WELFARE_BUILD_TIME")

	sqliteDB, err := dbstore.Open(dbPath)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		if cerr := sqliteDB.Close(); cerr != nil {
			log.Printf("warning: failed to close sqlite db: %v", cerr)
		}
	}()
	if err := dbstore.RunMigrations(sqliteDB, os.Getenv("WELFARE_MIGRATIONS_DIR")); err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	store, err := dbstore.NewStore(sqliteDB)
	if err != nil {
		log.Fatalf("init sqlite store: %v", err)
	}
	api.EnsureSeedCatalog(store)

	rt := api.NewRouter(store)
	if err := rt.BootstrapAdmin(os.Getenv("WELFARE_ADMIN_USER"), os.Getenv("WELFARE_ADMIN_PASS")); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	mux := http.NewServeMux()
	rt.Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "Welfare Survey API",
			"locale":     locale,
			"msg":        utils.T(locale, "health.ok"),
			"commit":     commit,
			"build_time": buildTime,
		})
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	// Serve the static survey front end when configured (kiosk deployments
	// bundle it into the same image).
	if staticDir := os.Getenv("WELFARE_STATIC_DIR"); staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	handler := middleware.NoStore(middleware.CORS(middleware.Locale(middleware.WithAuth(mux))))

	log.Printf("welfare survey server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
