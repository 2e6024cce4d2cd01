// internal/app/features/follows/list.go
package follows

import (
	"context"
	"errors"
	"net/http"

	labstore "github.com/cedhub/cedhub/internal/app/store/laboratories"
	teamstore "github.com/cedhub/cedhub/internal/app/store/teams"
	"github.com/cedhub/cedhub/internal/app/system/httpapi"
	"github.com/cedhub/cedhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// List handles GET /followed-users. With no filter every followed author is
// returned; a laboratory_abbreviation or team_abbreviation query parameter
// narrows the result to followed authors with an active membership in that
// scope. Supplying both filters is rejected.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	labAbbrev := r.URL.Query().Get("laboratory_abbreviation")
	teamAbbrev := r.URL.Query().Get("team_abbreviation")

	if labAbbrev != "" && teamAbbrev != "" {
		httpapi.Error(w, http.StatusBadRequest,
			"laboratory_abbreviation and team_abbreviation are mutually exclusive")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	switch {
	case labAbbrev != "":
		members, err := h.Members.ByLaboratory(ctx, labAbbrev)
		if err != nil {
			if errors.Is(err, labstore.ErrLaboratoryNotFound) {
				httpapi.Error(w, http.StatusNotFound, err.Error())
				return
			}
			httpapi.Internal(w, h.Log, "list followed by laboratory", err)
			return
		}
		h.Log.Debug("followed listing",
			zap.String("laboratory", labAbbrev),
			zap.Int("count", len(members)))
		httpapi.JSON(w, http.StatusOK, members)

	case teamAbbrev != "":
		members, err := h.Members.ByTeam(ctx, teamAbbrev)
		if err != nil {
			if errors.Is(err, teamstore.ErrTeamNotFound) {
				httpapi.Error(w, http.StatusNotFound, err.Error())
				return
			}
			httpapi.Internal(w, h.Log, "list followed by team", err)
			return
		}
		httpapi.JSON(w, http.StatusOK, members)

	default:
		all, err := h.Followed.ListAll(ctx)
		if err != nil {
			httpapi.Internal(w, h.Log, "list followed users", err)
			return
		}
		httpapi.JSON(w, http.StatusOK, all)
	}
}
