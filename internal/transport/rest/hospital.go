package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nestling-app/nestling-backend/internal/domain"
	"github.com/nestling-app/nestling-backend/internal/service/hospital"
)

type hospitalService interface {
	Create(ctx context.Context, input hospital.CreateInput) (domain.HospitalRecord, error)
	Get(ctx context.Context, id int64) (domain.HospitalRecord, error)
	List(ctx context.Context, diaryID int64) ([]domain.HospitalRecord, error)
	ListRange(ctx context.Context, input hospital.ListRangeInput) ([]domain.HospitalRecord, error)
	Update(ctx context.Context, input hospital.UpdateInput) (domain.HospitalRecord, error)
	Delete(ctx context.Context, id int64) error
}

// HospitalHandler serves hospital-record REST endpoints.
type HospitalHandler struct {
	svc hospitalService
	log *slog.Logger
}

// NewHospitalHandler creates a HospitalHandler.
func NewHospitalHandler(svc hospitalService, logger *slog.Logger) *HospitalHandler {
	return &HospitalHandler{svc: svc, log: logger.With("handler", "hospital")}
}

type observationPayload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type createHospitalRequest struct {
	DiaryID      int64                `json:"diaryId"`
	ParentKG     *float64             `json:"parentKg"`
	BloodPress   *string              `json:"bloodPressure"`
	BabyKG       *float64             `json:"babyKg"`
	BabyCM       *float64             `json:"babyCm"`
	Observations []observationPayload `json:"observations"`
	NextVisit    *time.Time           `json:"nextVisit"`
}

type updateHospitalRequest struct {
	ParentKG     *float64              `json:"parentKg"`
	BloodPress   *string               `json:"bloodPressure"`
	BabyKG       *float64              `json:"babyKg"`
	BabyCM       *float64              `json:"babyCm"`
	Observations *[]observationPayload `json:"observations"`
	NextVisit    *time.Time            `json:"nextVisit"`
}

type hospitalResponse struct {
	ID           int64                `json:"id"`
	DiaryID      int64                `json:"diaryId"`
	ParentKG     *float64             `json:"parentKg,omitempty"`
	BloodPress   *string              `json:"bloodPressure,omitempty"`
	BabyKG       *float64             `json:"babyKg,omitempty"`
	BabyCM       *float64             `json:"babyCm,omitempty"`
	Observations []observationPayload `json:"observations"`
	NextVisit    *time.Time           `json:"nextVisit,omitempty"`
	VisitTime    time.Time            `json:"visitTime"`
}

func toObservationSet(payload []observationPayload) domain.ObservationSet {
	set := make(domain.ObservationSet, len(payload))
	for i, o := range payload {
		set[i] = domain.Observation{Name: o.Name, Value: o.Value}
	}
	return set
}

func toHospitalResponse(rec domain.HospitalRecord) hospitalResponse {
	obs := make([]observationPayload, len(rec.Observations))
	for i, o := range rec.Observations {
		obs[i] = observationPayload{Name: o.Name, Value: o.Value}
	}
	return hospitalResponse{
		ID:           rec.ID,
		DiaryID:      rec.DiaryID,
		ParentKG:     rec.ParentKG,
		BloodPress:   rec.BloodPress,
		BabyKG:       rec.BabyKG,
		BabyCM:       rec.BabyCM,
		Observations: obs,
		NextVisit:    rec.NextVisit,
		VisitTime:    rec.CreateTime,
	}
}

// Create handles POST /hospital.
func (h *HospitalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Create(r.Context(), hospital.CreateInput{
		DiaryID:      req.DiaryID,
		ParentKG:     req.ParentKG,
		BloodPress:   req.BloodPress,
		BabyKG:       req.BabyKG,
		BabyCM:       req.BabyCM,
		Observations: toObservationSet(req.Observations),
		NextVisit:    req.NextVisit,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toHospitalResponse(rec))
}

// Get handles GET /hospital/{id}.
func (h *HospitalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHospitalResponse(rec))
}

// List handles GET /hospital?diary_id=&start=&end=. With both bounds the
// listing is restricted to the inclusive day range; without them it returns
// every record of the diary.
func (h *HospitalHandler) List(w http.ResponseWriter, r *http.Request) {
	diaryID, err := strconv.ParseInt(r.URL.Query().Get("diary_id"), 10, 64)
	if err != nil || diaryID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid diary_id")
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	var recs []domain.HospitalRecord
	if startStr == "" && endStr == "" {
		recs, err = h.svc.List(r.Context(), diaryID)
	} else {
		var start, end time.Time
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start date")
			return
		}
		end, err = time.Parse("2006-01-02", endStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end date")
			return
		}
		recs, err = h.svc.ListRange(r.Context(), hospital.ListRangeInput{
			DiaryID: diaryID,
			Start:   start,
			End:     end,
		})
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]hospitalResponse, len(recs))
	for i, rec := range recs {
		items[i] = toHospitalResponse(rec)
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Update handles PUT /hospital/{id}.
func (h *HospitalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := hospital.UpdateInput{
		ID:         id,
		ParentKG:   req.ParentKG,
		BloodPress: req.BloodPress,
		BabyKG:     req.BabyKG,
		BabyCM:     req.BabyCM,
		NextVisit:  req.NextVisit,
	}
	if req.Observations != nil {
		set := toObservationSet(*req.Observations)
		input.Observations = &set
	}

	rec, err := h.svc.Update(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHospitalResponse(rec))
}

// Delete handles DELETE /hospital/{id}.
func (h *HospitalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HospitalHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "record already exists for this date")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
