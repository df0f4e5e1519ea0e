package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petitspas/backend/internal/service"
)

type checkoutPayload struct {
	Amount      float64 `json:"amount"`
	IsRecurring bool    `json:"isRecurring"`
	Email       string  `json:"email"`
}

// CreateCheckout asks the payment processor for a hosted checkout
// session and returns its redirect URL. The caller performs the
// redirect.
func (a *API) CreateCheckout(c *gin.Context) {
	var payload checkoutPayload
	if !bindJSON(c, &payload, "Requête invalide") {
		return
	}

	url, err := a.checkout.CreateCheckout(c.Request.Context(), payload.Amount, payload.IsRecurring, payload.Email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			respondError(c, http.StatusBadRequest, "Montant invalide")
			return
		}
		c.Error(err)
		respondError(c, http.StatusBadGateway, "Une erreur est survenue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
