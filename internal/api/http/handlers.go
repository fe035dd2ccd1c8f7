package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/service"
)

// Handler exposes the rental core over a thin REST surface. Routing and
// transport stay here; all business rules live in the services.
type Handler struct {
	rentals    *service.RentalService
	agreements *service.RentalAgreementService
	charges    *service.ChargeService
	calendar   *service.CalendarService
}

func NewHandler(
	rentals *service.RentalService,
	agreements *service.RentalAgreementService,
	charges *service.ChargeService,
	calendar *service.CalendarService,
) *Handler {
	return &Handler{
		rentals:    rentals,
		agreements: agreements,
		charges:    charges,
		calendar:   calendar,
	}
}

// Router builds the API route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/rentals", h.createRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}", h.getRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}/check-in", h.checkInRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/agreement", h.getRentalAgreementByRental).Methods(http.MethodGet)

	api.HandleFunc("/rental-agreements/{id:[0-9]+}", h.getRentalAgreement).Methods(http.MethodGet)
	api.HandleFunc("/rental-agreements/{id:[0-9]+}/accept", h.acceptRentalAgreement).Methods(http.MethodPost)
	api.HandleFunc("/rental-agreements/{id:[0-9]+}/reject", h.rejectRentalAgreement).Methods(http.MethodPost)

	api.HandleFunc("/holidays", h.listHolidays).Methods(http.MethodGet)
	api.HandleFunc("/charges", h.listCharges).Methods(http.MethodGet)

	return r
}

type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type createRentalRequest struct {
	ToolCode        string           `json:"tool_code"`
	CheckOutDate    string           `json:"check_out_date"`
	DayCount        int              `json:"day_count"`
	DiscountPercent int              `json:"discount_percent"`
	Location        string           `json:"location"`
	Customer        *customerRequest `json:"customer,omitempty"`
}

type rentalResponse struct {
	ID              int64  `json:"id"`
	ToolCode        string `json:"tool_code"`
	CheckOutDate    string `json:"check_out_date"`
	DueDate         string `json:"due_date"`
	DayCount        int    `json:"day_count"`
	DiscountPercent int    `json:"discount_percent"`
	Status          string `json:"status"`
	ChargeAmount    string `json:"charge_amount"`
	DiscountAmount  string `json:"discount_amount"`
	FinalCharge     string `json:"final_charge"`
}

func toRentalResponse(r *domain.Rental) rentalResponse {
	return rentalResponse{
		ID:              r.ID,
		ToolCode:        r.ToolCode,
		CheckOutDate:    r.CheckOutDate.Format("2006-01-02"),
		DueDate:         r.DueDate().Format("2006-01-02"),
		DayCount:        r.DayCount,
		DiscountPercent: r.DiscountPercent,
		Status:          string(r.Status),
		ChargeAmount:    r.ChargeAmount.StringFixed(2),
		DiscountAmount:  r.DiscountAmount().StringFixed(2),
		FinalCharge:     r.FinalCharge().StringFixed(2),
	}
}

func (h *Handler) createRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	checkOutDate, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "check_out_date must be yyyy-mm-dd")
		return
	}

	rentalReq := service.RentalRequest{
		ToolCode:        req.ToolCode,
		CheckOutDate:    checkOutDate,
		DayCount:        req.DayCount,
		DiscountPercent: req.DiscountPercent,
		Location:        req.Location,
	}
	if req.Customer != nil {
		rentalReq.Customer = &domain.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		}
	}

	rental, err := h.rentals.Create(r.Context(), rentalReq)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRentalResponse(rental))
}

func (h *Handler) getRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rental, err := h.rentals.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *Handler) checkInRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rental, err := h.rentals.CheckIn(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *Handler) getRentalAgreement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	agreement, err := h.agreements.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agreement)
}

func (h *Handler) getRentalAgreementByRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	agreement, err := h.agreements.GetByRentalID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agreement)
}

func (h *Handler) acceptRentalAgreement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	agreement, err := h.agreements.Accept(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agreement)
}

func (h *Handler) rejectRentalAgreement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	agreement, err := h.agreements.Reject(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agreement)
}

func (h *Handler) listHolidays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.calendar.Holidays())
}

func (h *Handler) listCharges(w http.ResponseWriter, r *http.Request) {
	charges, err := h.charges.ListCharges(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, charges)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidStateTransition), errors.Is(err, domain.ErrInventoryConflict):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRule),
		errors.Is(err, domain.ErrChargeNotFound),
		errors.Is(err, domain.ErrToolUnavailable):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
