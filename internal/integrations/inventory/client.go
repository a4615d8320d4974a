package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Client клиент каталога рекламных носителей
// Реализует AssetAttributeResolver: только чтение, снимок на момент запроса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Resolve получает снимок носителя: базовая цена, атрибуты с надбавками,
// остаток и технический статус
func (c *Client) Resolve(ctx context.Context, assetID int64) (*domain.AssetSnapshot, error) {
	url := fmt.Sprintf("%s/internal/assets/%d", c.baseURL, assetID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Inventory request failed for asset_id=%d: %v", assetID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid asset ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrAssetNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var asset Asset
	if err := json.NewDecoder(resp.Body).Decode(&asset); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	snapshot := asset.ToDomain()
	c.log.Info("Resolved asset asset_id=%d, attributes=%d, stock=%d, status=%s",
		assetID, len(snapshot.Attributes), snapshot.StockQuantity, snapshot.TechnicalStatus)

	return &snapshot, nil
}
