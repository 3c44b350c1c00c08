package dates

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	util "github.com/saulo-duarte/personal-lambda/internal/utils"
)

// Handler serves civil dates in the app's fixed timezone.
type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"today": util.Today(h.now())})
}

func (h *Handler) Tomorrow(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"tomorrow": util.Tomorrow(h.now())})
}

func (h *Handler) Week(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	config.JSON(w, http.StatusOK, map[string]any{
		"today": util.Today(now),
		"week":  util.WeekBounds(now),
		"id":    util.WeekIdentifier(now),
	})
}
