package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

func TestRespondRuleViolation(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name: "double booked",
			err: fmt.Errorf("wrapped: %w", &domain.RuleViolation{
				Kind:      domain.ErrAssetDoubleBooked,
				AssetName: "LED 01",
				Conflict: &domain.ConflictInfo{
					SubscriptionID: 4,
					ContractName:   "CM-4",
					StartDate:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
					EndDate:        time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
				},
			}),
			status: http.StatusConflict,
			code:   "double_booked",
		},
		{"not operational", &domain.RuleViolation{Kind: domain.ErrAssetNotOperational}, http.StatusConflict, "not_operational"},
		{"artwork", &domain.RuleViolation{Kind: domain.ErrArtworkNotApproved}, http.StatusUnprocessableEntity, "artwork_not_approved"},
		{"invalid transition", fmt.Errorf("%w: expire from draft", domain.ErrInvalidTransition), http.StatusUnprocessableEntity, "invalid_transition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondRuleViolation(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestRespondRuleViolation_ConflictBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondRuleViolation(rec, &domain.RuleViolation{
		Kind: domain.ErrAssetDoubleBooked,
		Conflict: &domain.ConflictInfo{
			SubscriptionID: 4,
			ContractName:   "CM-4",
			StartDate:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
	})

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Conflict)
	assert.Equal(t, "CM-4", body.Conflict.ContractName)
	assert.Equal(t, "2024-01-01", body.Conflict.StartDate)
	assert.Equal(t, "2024-04-01", body.Conflict.EndDate)
}

func TestRespondConcurrentUpdate(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConcurrentUpdate(rec)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		AssetID int64 `json:"assetId"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"assetId": 5}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, int64(5), dst.AssetID)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"assetId": 5, "extra": true}`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)
}
