// internal/app/features/filtering/handler.go
package filtering

import (
	"context"
	"errors"
	"net/http"

	establishmentstore "github.com/cedhub/cedhub/internal/app/store/establishments"
	filteroptions "github.com/cedhub/cedhub/internal/app/store/queries/filteroptions"
	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the dashboard filter-option endpoints: the team choices a
// laboratory head or an establishment director can narrow their views by.
type Handler struct {
	Log     *zap.Logger
	Options *filteroptions.Query
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		Options: filteroptions.New(db),
	}
}

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/filtering-options/{laboratoryHeadId}", h.ForHead)
	r.Get("/director-filtering-options/{user_id}", h.ForDirector)

	return r
}

// ForHead handles GET /filtering-options/{laboratoryHeadId}.
func (h *Handler) ForHead(w http.ResponseWriter, r *http.Request) {
	headID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "laboratoryHeadId"))
	if err != nil {
		httpapi.Error(w, http.StatusBadRequest, "invalid laboratory head id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	opts, err := h.Options.ForHead(ctx, headID)
	if err != nil {
		httpapi.Internal(w, h.Log, "laboratory head filtering options", err)
		return
	}
	httpapi.JSON(w, http.StatusOK, opts)
}

// ForDirector handles GET /director-filtering-options/{user_id}. A user who
// directs no establishment gets a 404 rather than an empty list, so the
// dashboard can distinguish "no establishment" from "no teams".
func (h *Handler) ForDirector(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "user_id"))
	if err != nil {
		httpapi.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	opts, err := h.Options.ForDirector(ctx, userID)
	if err != nil {
		if errors.Is(err, establishmentstore.ErrNoEstablishment) {
			httpapi.Error(w, http.StatusNotFound, err.Error())
			return
		}
		httpapi.Internal(w, h.Log, "director filtering options", err)
		return
	}
	httpapi.JSON(w, http.StatusOK, opts)
}
