package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/pipeline"
	"github.com/jonathan/outfit-planner/internal/types"
)

// RecommendRequest is the body of POST /recommendations
type RecommendRequest struct {
	Weather     types.Weather      `json:"weather"`
	Occasion    types.Occasion     `json:"occasion"`
	Preferences *types.Preferences `json:"preferences,omitempty"`
	MaxResults  int                `json:"max_results,omitempty"`
}

// CheckRequest is the body of POST /check
type CheckRequest struct {
	ItemIDs     []int              `json:"item_ids"`
	Weather     types.Weather      `json:"weather"`
	Occasion    types.Occasion     `json:"occasion"`
	Preferences *types.Preferences `json:"preferences,omitempty"`
}

// AvailabilityRequest is the body of PUT /wardrobe/items/{id}/availability
type AvailabilityRequest struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func (r *RecommendRequest) query(defaultMax int) (types.Query, error) {
	if r.Weather == "" {
		return types.Query{}, &ErrValidation{Field: "weather", Message: "is required"}
	}
	if r.Occasion == "" {
		return types.Query{}, &ErrValidation{Field: "occasion", Message: "is required"}
	}
	maxResults := r.MaxResults
	if maxResults == 0 {
		maxResults = defaultMax
	}
	return types.Query{
		Weather:     r.Weather,
		Occasion:    r.Occasion,
		Preferences: r.Preferences,
		MaxResults:  maxResults,
	}, nil
}

func (s *Server) decodeRecommendRequest(w http.ResponseWriter, r *http.Request) (types.Query, bool) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return types.Query{}, false
	}
	query, err := req.query(s.maxResults)
	if err != nil {
		s.errResponse(w, err)
		return types.Query{}, false
	}
	return query, true
}

// handleRecommend runs a query synchronously and returns the ranked set
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeRecommendRequest(w, r)
	if !ok {
		return
	}

	set, err := s.engine.Recommend(r.Context(), s.source.Snapshot(), query, nil)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.saveHistory(r, set)

	s.jsonResponse(w, http.StatusOK, set)
}

// handleRecommendStream runs a query and streams progress via SSE
func (s *Server) handleRecommendStream(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeRecommendRequest(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	set, err := s.engine.Recommend(r.Context(), s.source.Snapshot(), query, func(event pipeline.ProgressEvent) {
		// Ranked candidates are sent once in the result event
		event.Content = nil
		if err := sse.WriteEvent(EventProgress, event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	})
	if err != nil {
		sse.WriteError(err.Error())
		return
	}
	s.saveHistory(r, set)

	if err := sse.WriteEvent(EventResult, set); err != nil {
		log.Printf("Error writing SSE event: %v", err)
		return
	}
	sse.WriteComplete(set)
}

// saveHistory records set when a store is configured. Failures are logged, not returned.
func (s *Server) saveHistory(r *http.Request, set *types.RecommendationSet) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveRecommendationSet(r.Context(), set); err != nil {
		log.Printf("Error saving recommendation set %s: %v", set.QueryID, err)
	}
}

// handleGetRecommendations returns a previously stored set
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotImplemented, "recommendation history requires a database")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid query id")
		return
	}

	set, err := s.store.GetRecommendationSet(r.Context(), id)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	if set == nil {
		s.errorResponse(w, http.StatusNotFound, "recommendation set not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, set)
}

// handleCheck validates and scores a caller-chosen combination
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.ItemIDs) == 0 {
		s.errResponse(w, &ErrValidation{Field: "item_ids", Message: "must not be empty"})
		return
	}

	items, missing := s.source.Snapshot().Lookup(req.ItemIDs)
	if len(missing) > 0 {
		s.errResponse(w, &ErrUnknownItems{IDs: missing})
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.Check(items, req.Weather, req.Occasion, req.Preferences))
}

// handleWardrobeStats returns the wardrobe summary
func (s *Server) handleWardrobeStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.source.Wardrobe().Stats())
}

// handleUnavailable lists items that are out of rotation
func (s *Server) handleUnavailable(w http.ResponseWriter, _ *http.Request) {
	items := s.source.Wardrobe().Unavailable()
	if items == nil {
		items = []types.Item{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count": len(items),
		"items": items,
	})
}

// handleSetAvailability marks an item available or unavailable
func (s *Server) handleSetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		s.errorResponse(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	wardrobe := s.source.Wardrobe()
	prior, _ := wardrobe.Get(id)
	var item types.Item
	if req.Available {
		item, err = wardrobe.MarkAvailable(id)
	} else {
		item, err = wardrobe.MarkUnavailable(id, req.Reason)
	}
	if err != nil {
		s.errResponse(w, err)
		return
	}

	if err := s.persistAvailability(r.Context(), wardrobe, item); err != nil {
		// The served wardrobe must not drift from what is stored
		if rerr := wardrobe.RestoreAvailability(prior); rerr != nil {
			log.Printf("Error restoring availability of item %d: %v", id, rerr)
		}
		s.errResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

// persistAvailability writes an availability change to the database, or to the
// wardrobe file when the server runs without one
func (s *Server) persistAvailability(ctx context.Context, wardrobe *inventory.Wardrobe, item types.Item) error {
	switch {
	case s.store != nil:
		return s.store.SetAvailability(ctx, item.ID, item.Available, item.UnavailableReason)
	case s.wardrobePath != "":
		return inventory.WriteWardrobe(s.wardrobePath, wardrobe)
	}
	return nil
}
