package checkout

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pos/internal/common"
	"github.com/noah-isme/backend-pos/internal/discount"
	"github.com/noah-isme/backend-pos/internal/obs"
	"github.com/noah-isme/backend-pos/internal/units"
)

// Handler wires the checkout service to HTTP.
type Handler struct {
	Svc      *Service
	Rules    discount.Repository
	Currency string
	Validate *validator.Validate
}

type addItemPayload struct {
	SKU            int64           `json:"sku" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity"`
	BuyUnit        string          `json:"buyUnit" validate:"omitempty,oneof=piece gram kilogram pound ounce millilitre litre gallon metre"`
	DiscountRuleID *int64          `json:"discountRuleId" validate:"omitempty,gt=0"`
}

// Get returns the checkout lines along with the recomputed total.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "checkout service not configured", nil)
		return
	}
	items, err := h.Svc.ListItems(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to load checkout", nil)
		return
	}
	total, err := h.Svc.Total(r.Context())
	if err != nil {
		obs.CountTotalCalculation("error")
		h.writeError(w, err)
		return
	}
	obs.CountTotalCalculation("ok")
	if items == nil {
		items = []Item{}
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"items":      items,
			"totalPrice": total,
			"currency":   h.Currency,
		},
	})
}

// AddItem adds a priced line to the checkout.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "checkout service not configured", nil)
		return
	}
	var payload addItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
	}
	var buyUnit units.Unit
	if payload.BuyUnit != "" {
		parsed, err := units.Parse(payload.BuyUnit)
		if err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unknown buy unit", nil)
			return
		}
		buyUnit = parsed
	}
	item, err := h.Svc.AddItem(r.Context(), AddParams{
		SKU:      payload.SKU,
		Quantity: payload.Quantity,
		BuyUnit:  buyUnit,
		RuleID:   payload.DiscountRuleID,
	})
	if err != nil {
		obs.CountItemAdded("error")
		h.writeError(w, err)
		return
	}
	obs.CountItemAdded("ok")
	common.JSON(w, http.StatusCreated, map[string]any{"data": item})
}

// RemoveItem deletes a checkout line by id.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "checkout service not configured", nil)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid item id", nil)
		return
	}
	removed, err := h.Svc.DeleteItem(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{"removed": removed}})
}

// Discounts lists the discount rule catalog.
func (h *Handler) Discounts(w http.ResponseWriter, r *http.Request) {
	if h.Rules == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "discount repository not configured", nil)
		return
	}
	rules, err := h.Rules.ListRules(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to load discount rules", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": rules})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		common.JSONError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, discount.ErrRuleNotFound):
		common.JSONError(w, http.StatusNotFound, "DISCOUNT_RULE_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, ErrInvalidPrice):
		common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_PRICE", err.Error(), nil)
	case errors.Is(err, ErrInvalidQuantity):
		common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_QUANTITY", err.Error(), nil)
	case errors.Is(err, ErrFractionalQuantity):
		common.JSONError(w, http.StatusUnprocessableEntity, "FRACTIONAL_QUANTITY", err.Error(), nil)
	case errors.Is(err, units.ErrIncompatibleUnits), errors.Is(err, units.ErrUnknownUnit):
		common.JSONError(w, http.StatusUnprocessableEntity, "INCOMPATIBLE_UNITS", err.Error(), nil)
	case errors.Is(err, discount.ErrRuleQuantity):
		common.JSONError(w, http.StatusUnprocessableEntity, "DISCOUNT_QUANTITY", err.Error(), nil)
	case errors.Is(err, discount.ErrRulePrice):
		common.JSONError(w, http.StatusUnprocessableEntity, "DISCOUNT_PRICE", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}
