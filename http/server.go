// Package http exposes dispatch services over a JSON API and serves the
// static web client.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pacchoferes/dispatch"
	"github.com/pacchoferes/dispatch/fs"
	"golang.org/x/sync/errgroup"
)

// MaxImportBytes limits the size of an import request body.
const MaxImportBytes = 5 << 20

// ImportTimeout bounds reading and answering a single import request. Imports
// commit one record at a time, so a large body can outlast the server's
// default write timeout.
const ImportTimeout = 5 * time.Minute

// StaticMaxAge is the Cache-Control max-age for static assets, in seconds.
const StaticMaxAge = 7 * 24 * 60 * 60

// Server handles HTTP requests for drivers, addresses, imports and searches.
type Server struct {
	Drivers   dispatch.DriverService
	Addresses dispatch.AddressService
	Importer  dispatch.Importer
	Searcher  dispatch.Searcher
	Logger    *slog.Logger

	// StaticDir, when set, is served at the root with a fallback to
	// index.html for client-side routes.
	StaticDir string
}

// Handler returns the router for the server.
func (s *Server) Handler() http.Handler {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))

	r.Route("/api", func(r chi.Router) {
		r.Get("/drivers", s.handleListDrivers)
		r.Post("/drivers", s.handleCreateDriver)
		r.Delete("/drivers", s.handleClearDrivers)
		r.Delete("/drivers/{name}", s.handleDeleteDriver)

		r.Get("/addresses", s.handleListAddresses)
		r.Post("/addresses", s.handleCreateAddress)
		r.Delete("/addresses", s.handleClearAddresses)

		r.Get("/board", s.handleBoard)
		r.Post("/import", s.handleImport)
		r.Get("/search", s.handleSearch)
	})

	if s.StaticDir != "" {
		r.Get("/*", s.handleStatic)
	}

	return r
}

func (s *Server) handleListDrivers(w http.ResponseWriter, r *http.Request) {
	var filter dispatch.DriverFilter
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}

	drivers, err := s.Drivers.FindDrivers(r.Context(), filter)
	if err != nil {
		Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(drivers))
}

func (s *Server) handleCreateDriver(w http.ResponseWriter, r *http.Request) {
	var driver dispatch.Driver
	if err := json.NewDecoder(r.Body).Decode(&driver); err != nil {
		Error(w, r, dispatch.Errorf(dispatch.EINVALID, "invalid JSON body"))
		return
	}
	if driver.Color == "" {
		driver.Color = dispatch.DefaultDriverColor
	}

	if err := s.Drivers.CreateDriver(r.Context(), &driver); err != nil {
		Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, driver)
}

func (s *Server) handleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	if err := s.Drivers.DeleteDriver(r.Context(), chi.URLParam(r, "name")); err != nil {
		Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearDrivers(w http.ResponseWriter, r *http.Request) {
	if err := s.Drivers.DeleteDrivers(r.Context()); err != nil {
		Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAddressFilter(r)
	if err != nil {
		Error(w, r, err)
		return
	}

	addresses, err := s.Addresses.FindAddresses(r.Context(), filter)
	if err != nil {
		Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(addresses))
}

func (s *Server) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	var address dispatch.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		Error(w, r, dispatch.Errorf(dispatch.EINVALID, "invalid JSON body"))
		return
	}
	if err := address.Validate(); err != nil {
		Error(w, r, err)
		return
	}
	if strings.TrimSpace(address.Driver) == "" {
		Error(w, r, dispatch.Errorf(dispatch.EINVALID, "driver required"))
		return
	}

	if err := s.Addresses.CreateAddress(r.Context(), &address); err != nil {
		Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, address)
}

func (s *Server) handleClearAddresses(w http.ResponseWriter, r *http.Request) {
	if err := s.Addresses.DeleteAddresses(r.Context()); err != nil {
		Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBoard returns every address joined with its driver's color.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	var drivers []*dispatch.Driver
	var addresses []*dispatch.Address

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		drivers, err = s.Drivers.FindDrivers(ctx, dispatch.DriverFilter{})
		return err
	})
	g.Go(func() (err error) {
		addresses, err = s.Addresses.FindAddresses(ctx, dispatch.AddressFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		Error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dispatch.ResolveBoard(drivers, addresses))
}

// handleImport reads the request body as import text.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	deadline := time.Now().Add(ImportTimeout)
	_ = rc.SetReadDeadline(deadline)
	_ = rc.SetWriteDeadline(deadline)

	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxImportBytes))
	if err != nil {
		Error(w, r, dispatch.Errorf(dispatch.EINVALID, "import body too large or unreadable"))
		return
	}

	text, err := fs.DecodeText(b)
	if err != nil {
		Error(w, r, err)
		return
	}

	summary, err := s.Importer.Import(r.Context(), text)
	if err != nil {
		Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.Searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(results))
}

// handleStatic serves files from StaticDir. Unknown paths outside /api fall
// back to index.html.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api") {
		http.NotFound(w, r)
		return
	}

	root := http.Dir(s.StaticDir)
	name := path.Clean("/" + r.URL.Path)
	if f, err := root.Open(name); err == nil {
		info, statErr := f.Stat()
		f.Close()
		if statErr == nil && !info.IsDir() {
			w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(StaticMaxAge))
			http.ServeFile(w, r, joinStatic(s.StaticDir, name))
			return
		}
	}

	index := joinStatic(s.StaticDir, "/index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
