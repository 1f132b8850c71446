package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hddy2000/steam-reviews/internal/export"
	"github.com/hddy2000/steam-reviews/internal/store"
	"github.com/hddy2000/steam-reviews/internal/types"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "ok")
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.store.ListGames(r.Context())
	if err != nil {
		s.log.WithRequest(r).WithError(err).Error("list games failed")
		writeError(w, http.StatusInternalServerError, "failed to list games")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "games": games})
}

func (s *Server) handleAddGame(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r)

	var body struct {
		AppID int    `json:"appid"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.AppID == 0 || body.Name == "" {
		writeError(w, http.StatusBadRequest, "missing appid or name")
		return
	}

	game, err := s.store.AddGame(r.Context(), body.AppID, body.Name, s.cfg.Report.GameLimit)
	switch {
	case errors.Is(err, store.ErrGameExists):
		writeError(w, http.StatusConflict, "game already exists")
		return
	case errors.Is(err, store.ErrGameLimit):
		writeError(w, http.StatusForbidden, fmt.Sprintf("limited to %d games", s.cfg.Report.GameLimit))
		return
	case err != nil:
		reqLog.WithError(err).Error("add game failed")
		writeError(w, http.StatusInternalServerError, "failed to add game")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "game": game})
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	appID, ok := intParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if err := s.store.DeleteGame(r.Context(), appID); err != nil {
		s.log.WithRequest(r).WithError(err).Error("delete game failed")
		writeError(w, http.StatusInternalServerError, "failed to delete game")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// handleReviews serves two actions: fetch pulls fresh reviews from Steam,
// classifies and persists them; get reads the stored window back.
func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "reviews")

	appID, ok := intParam(r, "appid")
	if !ok {
		writeError(w, http.StatusBadRequest, "missing appid")
		return
	}

	action := r.URL.Query().Get("action")
	if action == "" {
		action = "fetch"
	}

	switch action {
	case "fetch":
		reviews, err := s.steam.FetchReviews(r.Context(), appID)
		if err != nil {
			reqLog.WithError(err).Error("steam fetch failed")
			writeError(w, http.StatusBadGateway, "failed to fetch reviews")
			return
		}
		for i := range reviews {
			s.classifier.Annotate(&reviews[i])
		}
		if err := s.store.UpsertReviews(r.Context(), reviews); err != nil {
			reqLog.WithError(err).Error("review upsert failed")
			writeError(w, http.StatusInternalServerError, "failed to store reviews")
			return
		}
		if err := s.store.TrimReviews(r.Context(), appID, s.cfg.Report.MaxReviews); err != nil {
			reqLog.WithError(err).Warn("review trim failed")
		}
		sample := reviews
		if len(sample) > 10 {
			sample = sample[:10]
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"count":   len(reviews),
			"reviews": sample,
		})

	case "get":
		reviews, err := s.store.ListReviews(r.Context(), appID, s.cfg.Report.MaxReviews)
		if err != nil {
			reqLog.WithError(err).Error("review list failed")
			writeError(w, http.StatusInternalServerError, "failed to load reviews")
			return
		}
		total := len(reviews)
		positive := 0
		for _, rev := range reviews {
			if rev.Recommended {
				positive++
			}
		}
		positiveRate := 0
		if total > 0 {
			positiveRate = positive * 100 / total
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":      true,
			"total":        total,
			"positive":     positive,
			"negative":     total - positive,
			"positiveRate": positiveRate,
			"reviews":      reviews,
		})

	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	appID, ok := intParam(r, "appid")
	if !ok {
		writeError(w, http.StatusBadRequest, "missing appid")
		return
	}
	refresh := r.URL.Query().Get("refresh") == "true"

	rep, cached, err := s.reportFor(r, appID, refresh)
	if err != nil {
		s.log.WithRequest(r).WithError(err).Error("report generation failed")
		writeError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"report":  rep,
		"cached":  cached,
	})
}

func (s *Server) handleReportExport(w http.ResponseWriter, r *http.Request) {
	appID, ok := intParam(r, "appid")
	if !ok {
		writeError(w, http.StatusBadRequest, "missing appid")
		return
	}

	rep, _, err := s.reportFor(r, appID, false)
	if err != nil {
		s.log.WithRequest(r).WithError(err).Error("report generation failed")
		writeError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}

	f, err := export.Workbook(rep)
	if err != nil {
		s.log.WithRequest(r).WithError(err).Error("workbook build failed")
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%d.xlsx"`, appID))
	if err := f.Write(w); err != nil {
		s.log.WithRequest(r).WithError(err).Error("workbook write failed")
	}
}

// reportFor returns the cached report when it is fresh enough, otherwise
// generates a new one from the stored review window and persists it.
func (s *Server) reportFor(r *http.Request, appID int, refresh bool) (types.Report, bool, error) {
	ctx := r.Context()
	reqLog := s.log.WithRequest(r).WithField("appid", appID)

	if !refresh {
		cached, err := s.store.FreshReport(ctx, appID, s.cfg.Report.CacheTTL)
		if err != nil {
			return types.Report{}, false, err
		}
		if cached != nil {
			reqLog.Info("serving cached report")
			return *cached, true, nil
		}
	}

	reviews, err := s.store.ListReviews(ctx, appID, s.cfg.Report.MaxReviews)
	if err != nil {
		return types.Report{}, false, err
	}
	previous, err := s.store.PreviousStats(ctx, appID)
	if err != nil {
		return types.Report{}, false, err
	}

	reqLog.WithField("reviews", len(reviews)).Info("generating report")
	rep := s.assembler.Generate(ctx, appID, reviews, previous)

	if len(reviews) > 0 {
		if err := s.store.SaveStatsSnapshot(ctx, appID, rep.Stats); err != nil {
			reqLog.WithError(err).Warn("stats snapshot save failed")
		}
	}
	if err := s.store.SaveReport(ctx, rep); err != nil {
		return types.Report{}, false, err
	}
	if err := s.store.PruneReports(ctx, appID, s.cfg.Report.Retention); err != nil {
		reqLog.WithError(err).Warn("report prune failed")
	}
	return rep, false, nil
}

func intParam(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": msg})
}
