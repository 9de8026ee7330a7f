package rest

import (
	"net/http"
	"time"

	"github.com/muhammadchandra19/quotestream/internal/domain/quote"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/muhammadchandra19/quotestream/pkg/util"
)

const defaultAverageWindow = 24 * time.Hour

// PairValidator reports whether a pair is served.
type PairValidator interface {
	IsKnownPair(pair quoteV1.Pair) bool
}

// AveragePoint is one persisted hour in the averages response.
type AveragePoint struct {
	T   string  `json:"t"`
	Avg float64 `json:"avg"`
	N   int64   `json:"n"`
}

// AveragesResponse is the body of GET /api/averages.
type AveragesResponse struct {
	Pair   quoteV1.Pair   `json:"pair"`
	Points []AveragePoint `json:"points"`
}

// LastTickResponse is one entry of GET /api/last.
type LastTickResponse struct {
	Price float64 `json:"price"`
	Ts    int64   `json:"ts"`
}

// QuoteHandler serves the persisted read side.
type QuoteHandler struct {
	usecase quote.Usecase
	pairs   PairValidator
	logger  logger.Interface
	now     func() time.Time
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(usecase quote.Usecase, pairs PairValidator, log logger.Interface) *QuoteHandler {
	return &QuoteHandler{
		usecase: usecase,
		pairs:   pairs,
		logger:  log,
		now:     time.Now,
	}
}

// Averages handles GET /api/averages?pair=&from=&to=. The range defaults to the last 24 hours.
func (h *QuoteHandler) Averages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	pair := quoteV1.Pair(query.Get("pair"))
	if !h.pairs.IsKnownPair(pair) {
		writeError(w, errors.NewErrorDetails("pair must be one of the supported pairs", string(errors.UnknownPairError), "pair"))
		return
	}

	now := h.now().UTC()
	from, err := parseTime(query.Get("from"), now.Add(-defaultAverageWindow), "from")
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := parseTime(query.Get("to"), now, "to")
	if err != nil {
		writeError(w, err)
		return
	}

	averages, err := h.usecase.HourlyAverages(ctx, quoteV1.AverageFilter{Pair: pair, From: from, To: to})
	if err != nil {
		h.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.NewField("action", "get averages"), logger.NewField("pair", pair))
		writeError(w, err)
		return
	}

	points := make([]AveragePoint, 0, len(averages))
	for _, avg := range averages {
		points = append(points, AveragePoint{
			T:   avg.HourStartUTC.UTC().Format(util.HourlyBucketLayout),
			Avg: avg.AvgPrice,
			N:   avg.TickCount,
		})
	}

	writeJSON(w, http.StatusOK, AveragesResponse{Pair: pair, Points: points})
}

// Last handles GET /api/last.
func (h *QuoteHandler) Last(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ticks, err := h.usecase.LastTicks(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.NewField("action", "get last ticks"))
		writeError(w, err)
		return
	}

	response := make(map[quoteV1.Pair]LastTickResponse, len(ticks))
	for pair, tick := range ticks {
		response[pair] = LastTickResponse{Price: tick.Price, Ts: tick.Ts}
	}

	writeJSON(w, http.StatusOK, response)
}

func parseTime(raw string, fallback time.Time, field string) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errors.NewErrorDetails(field+" must be an RFC3339 timestamp", string(errors.GeneralBadRequestError), field)
	}
	return t.UTC(), nil
}
