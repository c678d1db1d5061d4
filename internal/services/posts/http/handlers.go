// Package http provides http transport for posts
package http

import (
	"bytes"
	"fmt"
	stdhttp "net/http"
	"strconv"

	"narrativedesk/internal/modkit/httpkit"
	"narrativedesk/internal/services/posts/domain"
)

// Register mounts posts endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// dashboard tabs
	httpkit.Get(r, "/topics", h.topics)

	// table rows plus stats of the date filtered set
	httpkit.PostJSON[domain.QueryInput](r, "/query", h.query)

	// stats only
	httpkit.PostJSON[domain.StatsInput](r, "/stats", h.stats)

	// csv download of the fully filtered set
	httpkit.GetRaw(r, "/export.csv", h.exportCSV)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /posts/topics Posts postsTopics
// @Summary List selectable topics
// @Tags Posts
// @Produce json
// @Success 200 {object} domain.TopicsResult "ok"
// @Router /posts/topics [get]
func (h *handlers) topics(_ *stdhttp.Request) (any, error) {
	return domain.TopicsResult{Topics: h.svc.Topics()}, nil
}

// swagger:route POST /posts/query Posts postsQuery
// @Summary Query a topic by date range and text
// @Description Loads the topic, keeps posts overlapping the range, then posts matching q.
// @Description Stats are computed over the date filtered set.
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body domain.QueryInput true "Query"
// @Success 200 {object} domain.QueryResult "ok"
// @Failure 503 {object} swaggerkit.ErrorResponse "query failed"
// @Router /posts/query [post]
func (h *handlers) query(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	snap, err := h.svc.Query(r.Context(), in)
	if err != nil {
		return nil, err
	}
	rows := snap.FullyFiltered
	truncated := false
	if in.Limit > 0 && len(rows) > in.Limit {
		rows, truncated = rows[:in.Limit], true
	}
	out := domain.QueryResult{
		LoadID:       snap.LoadID,
		Topic:        snap.Topic,
		Needle:       snap.Needle,
		Loaded:       snap.Loaded,
		DateFiltered: len(snap.DateFiltered),
		Matched:      len(snap.FullyFiltered),
		Truncated:    truncated,
		Posts:        rows,
		Summary:      h.svc.Summarize(snap),
	}
	if snap.Range.From != nil {
		out.From = snap.Range.From.String()
	}
	if snap.Range.To != nil {
		out.To = snap.Range.To.String()
	}
	return out, nil
}

// swagger:route POST /posts/stats Posts postsStats
// @Summary Summary stats for a topic and date range
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body domain.StatsInput true "Query"
// @Success 200 {object} aggregate.Summary "ok"
// @Failure 503 {object} swaggerkit.ErrorResponse "query failed"
// @Router /posts/stats [post]
func (h *handlers) stats(r *stdhttp.Request, in domain.StatsInput) (any, error) {
	return h.svc.Stats(r.Context(), in)
}

// swagger:route GET /posts/export.csv Posts postsExport
// @Summary Download the filtered posts as CSV
// @Tags Posts
// @Produce text/csv
// @Param topic query string true "Topic id"
// @Param from query string false "First day, 2006-01-02"
// @Param to query string false "Last day, 2006-01-02"
// @Param q query string false "Text needle"
// @Success 200 {string} string "csv"
// @Failure 503 {object} swaggerkit.ErrorResponse "query failed"
// @Router /posts/export.csv [get]
func (h *handlers) exportCSV(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := httpkit.BindQuery[domain.QueryInput](r)
	if err != nil {
		httpkit.WriteError(w, r, err)
		return
	}
	// buffered so a failed query still gets a JSON error
	var buf bytes.Buffer
	n, err := h.svc.Export(r.Context(), in, &buf)
	if err != nil {
		httpkit.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", in.Topic+"-posts.csv"))
	w.Header().Set("X-Total-Count", strconv.Itoa(n))
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
