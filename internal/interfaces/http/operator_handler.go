package httpinterface

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/feesplit/feesplitd/internal/core/application/operator"
	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
)

// operatorHandler serves the operator-facing interface.
type operatorHandler struct {
	operatorSvc operator.Service
}

func newOperatorHandler(operatorSvc operator.Service) *operatorHandler {
	return &operatorHandler{operatorSvc}
}

func (h *operatorHandler) getInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.operatorSvc.GetInfo(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, infoView(info))
}

func (h *operatorHandler) updateDeveloperAddress(
	w http.ResponseWriter, r *http.Request,
) {
	req := struct {
		Caller     string `json:"caller"`
		NewAddress string `json:"new_address"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.operatorSvc.UpdateDeveloperAddress(
		r.Context(), req.Caller, req.NewAddress,
	); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrConfigUnauthorized) {
			status = http.StatusUnauthorized
		}
		if errors.Is(err, domain.ErrConfigInvalidDeveloperAddress) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"developer_address": req.NewAddress,
	})
}

func (h *operatorHandler) listDistributions(
	w http.ResponseWriter, r *http.Request,
) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	distributions, err := h.operatorSvc.ListDistributions(r.Context(), page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	views := make([]distributionView, 0, len(distributions))
	for _, d := range distributions {
		views = append(views, newDistributionView(d))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"distributions": views,
	})
}

func (h *operatorHandler) getDistributionStats(
	w http.ResponseWriter, r *http.Request,
) {
	stats, err := h.operatorSvc.GetDistributionStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, statsView{
		SettlementAsset: stats.GetSettlementAsset(),
		TotalFees:       stats.GetTotalFees(),
		StrategyFees:    stats.GetStrategyFees(),
		DeveloperFees:   stats.GetDeveloperFees(),
		Count:           stats.GetCount(),
	})
}

func (h *operatorHandler) getBalance(w http.ResponseWriter, r *http.Request) {
	asset := r.URL.Query().Get("asset")

	balance, err := h.operatorSvc.GetCustodyBalance(r.Context(), asset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"balance": balance})
}

func (h *operatorHandler) addWebhook(w http.ResponseWriter, r *http.Request) {
	req := webhookRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := h.operatorSvc.AddWebhook(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *operatorHandler) removeWebhook(
	w http.ResponseWriter, r *http.Request,
) {
	id := chi.URLParam(r, "id")

	if err := h.operatorSvc.RemoveWebhook(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *operatorHandler) listWebhooks(w http.ResponseWriter, r *http.Request) {
	event := r.URL.Query().Get("event")

	hooks, err := h.operatorSvc.ListWebhooks(r.Context(), event)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	views := make([]webhookView, 0, len(hooks))
	for _, hook := range hooks {
		views = append(views, webhookView{
			Id:       hook.GetId(),
			Event:    hook.GetEvent(),
			Endpoint: hook.GetEndpoint(),
			Secured:  hook.IsSecured(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"webhooks": views})
}

func parsePage(r *http.Request) (ports.Page, error) {
	pageParam := r.URL.Query().Get("page")
	sizeParam := r.URL.Query().Get("size")
	if pageParam == "" && sizeParam == "" {
		return nil, nil
	}

	number, err := strconv.ParseInt(pageParam, 10, 64)
	if err != nil {
		return nil, err
	}
	size := int64(0)
	if sizeParam != "" {
		if size, err = strconv.ParseInt(sizeParam, 10, 64); err != nil {
			return nil, err
		}
	}
	return pageQuery{number, size}, nil
}

type pageQuery struct {
	number int64
	size   int64
}

func (p pageQuery) GetNumber() int64 { return p.number }
func (p pageQuery) GetSize() int64   { return p.size }

type webhookRequest struct {
	Event    string `json:"event"`
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret"`
}

func (r webhookRequest) GetEvent() string    { return r.Event }
func (r webhookRequest) GetEndpoint() string { return r.Endpoint }
func (r webhookRequest) GetSecret() string   { return r.Secret }

type webhookView struct {
	Id       string `json:"id"`
	Event    string `json:"event"`
	Endpoint string `json:"endpoint"`
	Secured  bool   `json:"secured"`
}

type distributionView struct {
	Id               string `json:"id"`
	FeeAsset         string `json:"fee_asset"`
	FeeAmount        uint64 `json:"fee_amount"`
	SettlementAsset  string `json:"settlement_asset"`
	TotalAmount      uint64 `json:"total_amount"`
	StrategyAmount   uint64 `json:"strategy_amount"`
	DeveloperAmount  uint64 `json:"developer_amount"`
	DeveloperAddress string `json:"developer_address"`
	ConversionPrice  string `json:"conversion_price,omitempty"`
	Timestamp        int64  `json:"timestamp"`
}

func newDistributionView(d ports.DistributionInfo) distributionView {
	return distributionView{
		Id:               d.GetId(),
		FeeAsset:         d.GetFeeAsset(),
		FeeAmount:        d.GetFeeAmount(),
		SettlementAsset:  d.GetSettlementAsset(),
		TotalAmount:      d.GetTotalAmount(),
		StrategyAmount:   d.GetStrategyAmount(),
		DeveloperAmount:  d.GetDeveloperAmount(),
		DeveloperAddress: d.GetDeveloperAddress(),
		ConversionPrice:  d.GetConversionPrice(),
		Timestamp:        d.GetTimestamp(),
	}
}

type statsView struct {
	SettlementAsset string `json:"settlement_asset"`
	TotalFees       uint64 `json:"total_fees"`
	StrategyFees    uint64 `json:"strategy_fees"`
	DeveloperFees   uint64 `json:"developer_fees"`
	Count           uint64 `json:"count"`
}

func infoView(info ports.ServiceInfo) map[string]interface{} {
	policy := info.GetFeePolicy()
	config := info.GetFeeConfig()
	buildData := info.GetBuildData()
	return map[string]interface{}{
		"fee_policy": map[string]uint64{
			"total_fee_ppm":       policy.GetTotalFeePpm(),
			"strategy_share_ppm":  policy.GetStrategySharePpm(),
			"developer_share_ppm": policy.GetDeveloperSharePpm(),
		},
		"fee_config": map[string]string{
			"settlement_asset":  config.GetSettlementAsset(),
			"developer_address": config.GetDeveloperAddress(),
		},
		"custody_account":      info.GetCustodyAccount(),
		"pool_engine_endpoint": info.GetPoolEngineEndpoint(),
		"treasury_endpoint":    info.GetTreasuryEndpoint(),
		"build_data": map[string]string{
			"version": buildData.GetVersion(),
			"commit":  buildData.GetCommit(),
			"date":    buildData.GetDate(),
		},
	}
}
