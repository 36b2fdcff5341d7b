package httpinterface

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/feesplit/feesplitd/internal/core/application/processor"
	"github.com/feesplit/feesplitd/internal/core/domain"
)

// hookHandler serves the engine-facing interface. The pool engine notifies
// every settled trade here and commits it only on a success response, any
// other response makes it reject the trade.
type hookHandler struct {
	processorSvc *processor.Service
}

func newHookHandler(processorSvc *processor.Service) *hookHandler {
	return &hookHandler{processorSvc}
}

func (h *hookHandler) afterTrade(w http.ResponseWriter, r *http.Request) {
	req := afterTradeRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	feeAmount, err := h.processorSvc.AfterTrade(r.Context(), req)
	if err != nil {
		tradesProcessed.WithLabelValues("failed").Inc()

		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrTradeInvalidAssetPair) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	if feeAmount == 0 {
		tradesProcessed.WithLabelValues("skipped").Inc()
	} else {
		tradesProcessed.WithLabelValues("processed").Inc()
		feesCollected.WithLabelValues(req.feeAsset()).Add(float64(feeAmount))
	}

	writeJSON(w, http.StatusOK, afterTradeResponse{feeAmount})
}

// afterTradeRequest is the engine's trade report, implementing the portable
// report consumed by the processor.
type afterTradeRequest struct {
	BaseAsset   string `json:"base_asset"`
	QuoteAsset  string `json:"quote_asset"`
	BaseDelta   int64  `json:"base_delta"`
	QuoteDelta  int64  `json:"quote_delta"`
	BaseAssetIn bool   `json:"base_asset_in"`
}

func (r afterTradeRequest) GetBaseAsset() string  { return r.BaseAsset }
func (r afterTradeRequest) GetQuoteAsset() string { return r.QuoteAsset }
func (r afterTradeRequest) GetBaseDelta() int64   { return r.BaseDelta }
func (r afterTradeRequest) GetQuoteDelta() int64  { return r.QuoteDelta }
func (r afterTradeRequest) IsBaseAssetIn() bool   { return r.BaseAssetIn }

func (r afterTradeRequest) feeAsset() string {
	if r.BaseAssetIn {
		return r.QuoteAsset
	}
	return r.BaseAsset
}

type afterTradeResponse struct {
	FeeAmount uint64 `json:"fee_amount"`
}
