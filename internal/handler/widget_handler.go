package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/service"
	"github.com/go-chi/chi/v5"
)

type WidgetHandler struct {
	widgetService service.WidgetServiceInterface
}

func NewWidgetHandler(widgetService service.WidgetServiceInterface) *WidgetHandler {
	return &WidgetHandler{
		widgetService: widgetService,
	}
}

type widgetResponse struct {
	ID             string            `json:"id"`
	State          model.WidgetState `json:"state"`
	Amount         *float64          `json:"amount"`
	Source         model.Currency    `json:"source"`
	Target         model.Currency    `json:"target"`
	Result         string            `json:"result"`
	Error          string            `json:"error,omitempty"`
	ConvertEnabled bool              `json:"convert_enabled"`
	RatesLoaded    int               `json:"rates_loaded"`
}

func toWidgetResponse(s model.WidgetSnapshot) widgetResponse {
	return widgetResponse{
		ID:             s.ID,
		State:          s.State,
		Amount:         s.Amount,
		Source:         s.Source,
		Target:         s.Target,
		Result:         s.Result,
		Error:          s.Error,
		ConvertEnabled: s.State == model.WidgetStateReady,
		RatesLoaded:    len(s.Rates),
	}
}

func (h *WidgetHandler) CreateWidget(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.widgetService.Create(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	commons.RespondWithJSON(w, http.StatusCreated, toWidgetResponse(snapshot))
}

func (h *WidgetHandler) GetWidget(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.widgetService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, toWidgetResponse(snapshot))
}

func (h *WidgetHandler) CloseWidget(w http.ResponseWriter, r *http.Request) {
	if err := h.widgetService.Close(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WidgetHandler) SetAmount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount *float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		commons.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	snapshot, err := h.widgetService.SetAmount(r.Context(), chi.URLParam(r, "id"), body.Amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, toWidgetResponse(snapshot))
}

func (h *WidgetHandler) SetSource(w http.ResponseWriter, r *http.Request) {
	h.setCurrency(w, r, h.widgetService.SetSource)
}

func (h *WidgetHandler) SetTarget(w http.ResponseWriter, r *http.Request) {
	h.setCurrency(w, r, h.widgetService.SetTarget)
}

type currencySetter func(ctx context.Context, id string, currency model.Currency) (model.WidgetSnapshot, error)

func (h *WidgetHandler) setCurrency(w http.ResponseWriter, r *http.Request, set currencySetter) {
	var body struct {
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		commons.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	currency, err := model.ParseCurrency(body.Currency)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	snapshot, err := set(r.Context(), chi.URLParam(r, "id"), currency)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, toWidgetResponse(snapshot))
}

func (h *WidgetHandler) Swap(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.widgetService.Swap(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, toWidgetResponse(snapshot))
}

func (h *WidgetHandler) Convert(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.widgetService.Convert(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, toWidgetResponse(snapshot))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		commons.RespondWithError(w, http.StatusNotFound, "Widget session not found")
	case errors.Is(err, model.ErrUnsupportedCurrency):
		commons.RespondWithError(w, http.StatusBadRequest, "Unsupported currency")
	case errors.Is(err, model.ErrConvertDisabled):
		commons.RespondWithError(w, http.StatusConflict, "Conversion is disabled until rates are loaded")
	case errors.Is(err, model.ErrAlreadyMounted):
		commons.RespondWithError(w, http.StatusConflict, "Widget already mounted")
	case errors.Is(err, model.ErrMissingRate):
		commons.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		commons.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
