package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	msgRetry         = "подписку одновременно изменяет другая операция, повторите запрос"

	maxBodyBytes = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error    string         `json:"error"`
	Code     string         `json:"code,omitempty"`
	Conflict *ConflictBody  `json:"conflict,omitempty"`
	Details  *ViolationBody `json:"details,omitempty"`
}

// ConflictBody подписка, которая уже держит носитель
type ConflictBody struct {
	SubscriptionID int64  `json:"subscriptionId"`
	Reference      string `json:"reference,omitempty"`
	ContractName   string `json:"contractName"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
}

// ViolationBody контекст нарушенного правила
type ViolationBody struct {
	AssetID   int64  `json:"assetId,omitempty"`
	AssetName string `json:"assetName,omitempty"`
	Required  string `json:"required,omitempty"`
	Actual    string `json:"actual,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ошибку с сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondConcurrentUpdate 409 с подсказкой повторить запрос
func RespondConcurrentUpdate(w http.ResponseWriter) {
	w.Header().Set("Retry-After", "1")
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: msgRetry, Code: "concurrent_update"})
}

// RespondRuleViolation отправляет бизнес-ошибку
// Занятость носителя -> 409, остальные правила -> 422
func RespondRuleViolation(w http.ResponseWriter, err error) {
	body := ErrorResponse{Error: err.Error(), Code: domain.ViolationKind(err)}

	var v *domain.RuleViolation
	if errors.As(err, &v) {
		body.Details = &ViolationBody{
			AssetID:   v.AssetID,
			AssetName: v.AssetName,
			Required:  v.Required,
			Actual:    v.Actual,
		}
		if v.Conflict != nil {
			body.Conflict = &ConflictBody{
				SubscriptionID: v.Conflict.SubscriptionID,
				Reference:      v.Conflict.Reference,
				ContractName:   v.Conflict.ContractName,
				StartDate:      v.Conflict.StartDate.Format(domain.DateFormat),
				EndDate:        v.Conflict.EndDate.Format(domain.DateFormat),
			}
		}
	}
	if errors.Is(err, domain.ErrInvalidTransition) && body.Code == "" {
		body.Code = "invalid_transition"
	}

	RespondJSON(w, ViolationStatus(err), body)
}

// ViolationStatus HTTP статус для бизнес-ошибки
func ViolationStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrAssetDoubleBooked),
		errors.Is(err, domain.ErrAssetUnavailable),
		errors.Is(err, domain.ErrAssetNotOperational):
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// ParseDate разбирает дату YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(t), nil
}
