package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/activity"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

type activityService interface {
	Query(ctx context.Context, input activity.QueryInput) (activity.QueryResult, error)
	Stats(ctx context.Context, input activity.QueryInput) (domain.ActivityStats, error)
}

type userLister interface {
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error)
}

// AdminHandler serves admin REST endpoints for operational inspection of
// accounts and the activity log. The same data is available over GraphQL;
// these endpoints exist so curl and monitoring scripts do not need a
// GraphQL client.
type AdminHandler struct {
	activity activityService
	users    userLister
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(activity activityService, users userLister, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		activity: activity,
		users:    users,
		log:      logger.With("handler", "admin"),
	}
}

// Users returns a page of registered accounts.
// GET /admin/users?limit=50&offset=0
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	users, total, err := h.users.ListUsers(r.Context(), queryInt(r, "limit", 50), queryInt(r, "offset", 0))
	if err != nil {
		h.log.ErrorContext(r.Context(), "list users", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items := make([]map[string]any, len(users))
	for i, u := range users {
		items[i] = map[string]any{
			"id":         u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"role":       u.Role,
			"created_at": u.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

// ActivityStats returns aggregate activity counts.
// GET /admin/activity/stats
func (h *AdminHandler) ActivityStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	stats, err := h.activity.Stats(r.Context(), activity.QueryInput{})
	if err != nil {
		h.log.ErrorContext(r.Context(), "get activity stats", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ActivityEvents returns recent activity events, optionally filtered by type.
// GET /admin/activity/events?type=IDEAS_GENERATED&limit=50&offset=0
func (h *AdminHandler) ActivityEvents(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	input := activity.QueryInput{
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
	}
	if v := r.URL.Query().Get("type"); v != "" {
		et := domain.EventType(v)
		input.EventType = &et
	}

	result, err := h.activity.Query(r.Context(), input)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list activity events", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": result.Events,
		"total": result.Total,
	})
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
