package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/isomorphicgo/isokit"
	"github.com/justinas/alice"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/EngineerKamesh/crisprview/common"
	"github.com/EngineerKamesh/crisprview/common/config"
	"github.com/EngineerKamesh/crisprview/common/datastore"
	"github.com/EngineerKamesh/crisprview/endpoints"
	"github.com/EngineerKamesh/crisprview/handlers"
	"github.com/EngineerKamesh/crisprview/middleware"
)

func main() {

	cfg := config.Load()

	logWriter, err := setupLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		_, _ = io.WriteString(os.Stderr, "logger setup failed: "+err.Error()+"\n")
		os.Exit(1)
	}

	db, err := datastore.NewDatastore(datastore.FILESYSTEM, cfg.AssetsDir)
	if err != nil {
		slog.Error("failed to index chart images", "assets_dir", cfg.AssetsDir, "error", err)
		os.Exit(1)
	}

	env := common.Env{Config: cfg}
	isokit.TemplateFilesPath = cfg.TemplatesDir()
	isokit.TemplateFileExtension = ".html"
	ts := isokit.NewTemplateSet()
	ts.GatherTemplates()
	env.TemplateSet = ts
	env.DB = db

	r := mux.NewRouter()

	r.Handle("/", handlers.HomeHandler(&env)).Methods("GET")
	r.Handle("/report/{crispr}", handlers.ReportHandler(&env)).Methods("GET")

	r.Handle("/api/samples", endpoints.SamplesEndpoint(&env)).Methods("GET")
	r.Handle("/api/charts", endpoints.ChartsEndpoint(&env)).Methods("GET")
	r.Handle("/api/refresh", endpoints.RefreshEndpoint(&env)).Methods("POST")

	r.Handle("/js/client.js", isokit.GopherjsScriptHandler(cfg.AppRoot))
	r.Handle("/js/client.js.map", isokit.GopherjsScriptMapHandler(cfg.AppRoot))

	r.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsDir))))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir()))))

	loggedRouter := ghandlers.LoggingHandler(logWriter, r)
	stdChain := alice.New(middleware.PanicRecoveryHandler)
	http.Handle("/", stdChain.Then(loggedRouter))

	slog.Info("crisprview listening",
		"addr", cfg.Addr,
		"tls", cfg.TLSEnabled(),
		"assets_dir", cfg.AssetsDir,
		"samples", len(db.Samples()),
		"crispr_names", len(db.CrisprNames()),
	)

	if cfg.TLSEnabled() {
		err = http.ListenAndServeTLS(cfg.Addr, cfg.TLSCert, cfg.TLSKey, nil)
	} else {
		err = http.ListenAndServe(cfg.Addr, nil)
	}
	if err != nil {
		slog.Error("ListenAndServe failed", "error", err)
		os.Exit(1)
	}

}

// setupLogger installs the default slog logger and returns the writer shared
// with the access log.
func setupLogger(level, filename string) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, err
	}

	logWriter := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    25,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   true,
	}
	w := io.MultiWriter(os.Stdout, logWriter)

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(h))
	return w, nil
}
