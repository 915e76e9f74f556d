package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/qvest/internal/domain"
)

const (
	RouteTransfers      = "/api/transfers"
	RouteTransferStatus = "/api/transfers/%s"
)

type sendRequest struct {
	Destination    string          `json:"destination"`
	Amount         decimal.Decimal `json:"amount"`
	IdempotencyKey string          `json:"idempotencyKey"`
}

type sendResponse struct {
	TxRef string `json:"txRef"`
}

type statusResponse struct {
	Status string `json:"status"`
	TxRef  string `json:"txRef,omitempty"`
}

// HTTPClient реализация service.TransferClient поверх HTTP API сервиса переводов.
// Идемпотентность обеспечивает сам сервис: повторный Send с тем же ключом возвращает
// исходный перевод, а не создает новый.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// Send отправляет перевод. Сетевые сбои, 429 и 5xx возвращаются как transient
// *domain.TransferFailedError (исход неизвестен, решает реконсиляция), остальные
// не-2xx ответы — как постоянный отказ.
//
//nolint:nonamedreturns
func (c *HTTPClient) Send(
	ctx context.Context,
	destination string,
	amount decimal.Decimal,
	idempotencyKey string,
) (txRef string, err error) {
	payload, marshalErr := json.Marshal(sendRequest{
		Destination:    destination,
		Amount:         amount,
		IdempotencyKey: idempotencyKey,
	})
	if marshalErr != nil {
		return "", fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	url := c.baseURL + RouteTransfers
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if reqErr != nil {
		return "", fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return "", &domain.TransferFailedError{Reason: doErr.Error(), Transient: true}
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return "", &domain.TransferFailedError{
			Reason:    fmt.Sprintf("transfer service responded %d", resp.StatusCode),
			Transient: true,
		}
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", &domain.TransferFailedError{
			Reason: fmt.Sprintf("transfer rejected with status %d", resp.StatusCode),
		}
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return "", &domain.TransferFailedError{Reason: readErr.Error(), Transient: true}
	}

	var response sendResponse
	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		return "", fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return response.TxRef, nil
}

// Status возвращает судьбу перевода по ключу идемпотентности. 404 означает, что
// сервис переводов ключа не видел — перевод не отправлялся.
//
//nolint:nonamedreturns
func (c *HTTPClient) Status(
	ctx context.Context,
	idempotencyKey string,
) (state domain.TransferStateType, txRef string, err error) {
	url := c.baseURL + fmt.Sprintf(RouteTransferStatus, idempotencyKey)
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return "", "", fmt.Errorf("create request: %s", reqErr.Error())
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return "", "", fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return domain.TransferStateUnknown, "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("transfer service responded %d", resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return "", "", fmt.Errorf("read response: %s", readErr.Error())
	}

	var response statusResponse
	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		return "", "", fmt.Errorf("parse response: %s", jsonErr.Error())
	}

	switch response.Status {
	case "sent", "confirmed":
		return domain.TransferStateSent, response.TxRef, nil
	case "failed":
		return domain.TransferStateFailed, "", nil
	default:
		return domain.TransferStateUnknown, "", nil
	}
}
