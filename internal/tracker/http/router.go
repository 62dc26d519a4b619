package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/AlibekovAA/exercise-tracker/internal/common/config"
	commonhttp "github.com/AlibekovAA/exercise-tracker/internal/common/http"
	"github.com/AlibekovAA/exercise-tracker/internal/common/logger"
	"github.com/AlibekovAA/exercise-tracker/internal/tracker/service"
)

type Handler struct {
	tracker *service.TrackerService
	cfg     config.Config
	errors  *commonhttp.ErrorHandler
	log     *logger.Logger
}

func NewHandler(tracker *service.TrackerService, cfg config.Config, log *logger.Logger) http.Handler {
	h := &Handler{
		tracker: tracker,
		cfg:     cfg,
		errors:  commonhttp.NewErrorHandler(log),
		log:     log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.HandleFunc("/api/users", h.users)
	mux.HandleFunc("/api/users/", h.userSubresource)
	return mux
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		commonhttp.WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	if r.Method != http.MethodGet {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	commonhttp.WriteText(w, http.StatusOK, "Exercise Tracker API")
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.registerUser(w, r)
	case http.MethodGet:
		h.listUsers(w, r)
	default:
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warnf("register failed: malformed form body: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, err := h.tracker.RegisterUser(ctx, service.RegisterInput{
		Username: r.FormValue("username"),
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	results, err := h.tracker.ListUsers(ctx)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, results)
}

// userSubresource dispatches /api/users/{id}/exercises and
// /api/users/{id}/logs.
func (h *Handler) userSubresource(w http.ResponseWriter, r *http.Request) {
	userID, rest, ok := splitUserPath(r.URL.Path)
	if !ok {
		commonhttp.WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	switch rest {
	case "exercises":
		if r.Method != http.MethodPost {
			commonhttp.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.addExercise(w, r, userID)
	case "logs":
		if r.Method != http.MethodGet {
			commonhttp.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.getLog(w, r, userID)
	default:
		commonhttp.WriteError(w, http.StatusNotFound, "Not found")
	}
}

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request, userID string) {
	if err := r.ParseForm(); err != nil {
		h.log.Warnf("add exercise failed: malformed form body: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, err := h.tracker.AddExercise(ctx, userID, service.AddExerciseInput{
		Description: r.FormValue("description"),
		Duration:    r.FormValue("duration"),
		Date:        r.FormValue("date"),
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) getLog(w http.ResponseWriter, r *http.Request, userID string) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	query := r.URL.Query()
	result, err := h.tracker.GetLog(ctx, userID, service.LogQuery{
		From:  query.Get("from"),
		To:    query.Get("to"),
		Limit: query.Get("limit"),
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
}

func splitUserPath(path string) (userID, rest string, ok bool) {
	remaining := strings.TrimPrefix(path, "/api/users/")
	parts := strings.Split(remaining, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
