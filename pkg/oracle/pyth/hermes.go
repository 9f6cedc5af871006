package pyth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cenkalti/backoff/v4"

	locustbackoff "github.com/stonefinance/stone-sub000/pkg/backoff"
)

const hermesBaseURL = "https://hermes.pyth.network/v2/updates/price/latest?encoding=base64"

// HermesClient fetches signed price updates from a Pyth Hermes
// instance, adapted from pkg/contracts/pyth/queryclient.go's
// queryClient.LatestPrice.
type HermesClient interface {
	LatestPrice(ctx context.Context, feedID string) (*HermesResponse, error)
}

type hermesClient struct {
	client *http.Client
}

var _ HermesClient = (*hermesClient)(nil)

// NewHermesClient builds a HermesClient against the given HTTP client.
func NewHermesClient(client *http.Client) HermesClient {
	return &hermesClient{client: client}
}

// LatestPrice fetches and decodes the latest VAA update and parsed
// price for a single Pyth feed id, retrying with the teacher's shared
// exponential backoff policy.
func (c *hermesClient) LatestPrice(ctx context.Context, feedID string) (*HermesResponse, error) {
	var resp HermesResponse
	url := fmt.Sprintf("%s&ids%%5B%%5D=%s", hermesBaseURL, feedID)

	retry := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		httpResp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer httpResp.Body.Close()

		if httpResp.StatusCode != http.StatusOK {
			return fmt.Errorf("hermes: unexpected status code %d", httpResp.StatusCode)
		}
		return json.NewDecoder(httpResp.Body).Decode(&resp)
	}

	if err := backoff.Retry(retry, locustbackoff.NewBackoff(ctx)); err != nil {
		return nil, err
	}
	if len(resp.Parsed) == 0 {
		return nil, fmt.Errorf("hermes: no parsed data found for feed %s", feedID)
	}
	return &resp, nil
}
