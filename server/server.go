package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/kasuboski/pager/pkg/storage"
	"github.com/kasuboski/pager/pkg/transport"
	"go.uber.org/zap"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// ItemsResponse is one page of items together with everything needed to draw
// pagination controls
type ItemsResponse struct {
	Data       []storage.Item               `json:"data"`
	Pagination *pagination.ResultPagination `json:"pagination,omitempty"`
	Meta       pagination.Meta              `json:"meta"`
	Pages      []int                        `json:"pages"`
}

type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// Server houses all dependencies for the api to work such as loggers, the paginator and the query transport
type Server struct {
	baseLogger *zap.SugaredLogger
	paginator  *pagination.Paginator
	transport  *transport.Transport
}

// New creates a new api server
func New(logger *zap.SugaredLogger, paginator *pagination.Paginator, transport *transport.Transport) Server {
	return Server{
		baseLogger: logger,
		paginator:  paginator,
		transport:  transport,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	_, err = w.Write(b)
	return err
}

// Router wires every route and middleware
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)
	rtr.HandleFunc("/graphql", s.GraphQL()).Methods(http.MethodPost)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/items", s.ListItems()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(rtr)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// ListItems returns one page of catalog items. Malformed page parameters are
// repaired rather than rejected.
func (s Server) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		raw := ParsePaginationParams(r)
		params := s.paginator.Normalize(raw)
		vars := s.paginator.ToQueryVariables(raw)

		result, err := s.transport.Items(r.Context(), vars)
		if err != nil {
			log.Error("failed to list items", zap.Error(err), zap.Int("page", params.Page), zap.Int("pageSize", params.PageSize))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		total := 0
		if result.Pagination != nil {
			total = result.Pagination.Total
		}
		meta := pagination.Calculate(total, params.Page, params.PageSize)

		resp := ItemsResponse{
			Data:       result.Data,
			Pagination: result.Pagination,
			Meta:       meta,
			Pages:      s.paginator.Window(meta.CurrentPage, meta.TotalPages),
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: resp})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GraphQL executes a raw query against the transport and returns the envelope
func (s Server) GraphQL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		b, err := io.ReadAll(r.Body)
		if err != nil {
			log.Debug("invalid request body", zap.Error(err))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var request GraphQLRequest
		err = json.Unmarshal(b, &request)
		if err != nil || request.Query == "" {
			log.Debug("invalid request body", zap.ByteString("body", b))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		env, err := s.transport.Execute(r.Context(), request.Query, pagination.QueryVariables(request.Variables))
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: env})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}
