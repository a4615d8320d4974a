package partnerservice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdPlacementService/pkg/logger"
)

func TestGetCustomerWithGracefulDegradation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/customers/1":
			_, _ = w.Write([]byte(`{"id": 1, "name": "Acme S.A.S."}`))
		case "/internal/customers/2":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.Nop())

	customer, err := c.GetCustomerWithGracefulDegradation(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme S.A.S.", customer.Name)

	_, err = c.GetCustomerWithGracefulDegradation(context.Background(), 2)
	assert.True(t, errors.Is(err, ErrCustomerNotFound))

	_, err = c.GetCustomerWithGracefulDegradation(context.Background(), 3)
	assert.True(t, errors.Is(err, ErrServiceDegraded))
}
