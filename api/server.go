package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/matt-g-everett/herotx/scene"
	"github.com/matt-g-everett/herotx/stream"
)

// Config sets where the viewport is served from.
type Config struct {
	Addr   string `yaml:"addr" env:"HERO_API_ADDR"`
	Static string `yaml:"static" env:"HERO_API_STATIC"`
}

// DefaultConfig serves client/dist on port 3000.
func DefaultConfig() Config {
	return Config{Addr: ":3000", Static: "client/dist"}
}

// Api is a render surface for browsers: it keeps the mounted scene and the
// latest frame and serves them as JSON next to the viewport client.
type Api struct {
	config Config

	mu      sync.RWMutex
	mounted bool
	scene   *scene.Scene
	frame   *stream.Frame
}

func NewApi(config Config) *Api {
	a := new(Api)
	a.config = config
	return a
}

func (a *Api) Mount(s *scene.Scene) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mounted = true
	a.scene = s
	a.frame = nil
	return nil
}

func (a *Api) Draw(f *stream.Frame) error {
	f = f.Clone()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frame = f
	return nil
}

func (a *Api) Unmount() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mounted = false
	return nil
}

// Handler routes the JSON endpoints and the static client.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /scene", a.handleScene)
	mux.HandleFunc("GET /frame", a.handleFrame)
	mux.Handle("/", http.FileServer(http.Dir(a.config.Static)))
	return mux
}

func (a *Api) handleScene(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	mounted, s := a.mounted, a.scene
	a.mu.RUnlock()

	if !mounted {
		http.Error(w, "scene not mounted", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, s)
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	mounted, f := a.mounted, a.frame
	a.mu.RUnlock()

	switch {
	case !mounted:
		http.Error(w, "scene not mounted", http.StatusServiceUnavailable)
	case f == nil:
		http.Error(w, "no frame yet", http.StatusNotFound)
	default:
		writeJSON(w, f)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// Serve listens until ctx is done.
func (a *Api) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: a.config.Addr, Handler: a.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s...", a.config.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
