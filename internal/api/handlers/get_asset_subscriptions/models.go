package get_asset_subscriptions

import (
	"strings"

	"github.com/m04kA/SMC-AdPlacementService/internal/api/handlers"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// states - список через запятую, from/to - границы периода YYYY-MM-DD
func ToServiceRequest(assetID int64, statesStr, fromStr, toStr string) (*models.ListByAssetRequest, error) {
	req := &models.ListByAssetRequest{AssetID: assetID}

	if statesStr != "" {
		for _, s := range strings.Split(statesStr, ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.States = append(req.States, s)
			}
		}
	}

	if fromStr != "" {
		from, err := handlers.ParseDate(fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := handlers.ParseDate(toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	return req, nil
}
