package handler

import (
	"net/http"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/model"
)

func HandlerCurrencies(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"base":       model.BaseCurrency,
		"currencies": model.CurrencyOptions(),
	})
}
