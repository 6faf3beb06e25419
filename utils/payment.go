package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// CheckoutPayload is the body the hosted payment gateway expects on
// POST /api/pay. payment_status is sent as "completed" to match the
// gateway's contract; the durable booking row is only written once the
// gateway redirects back. intent_id is the token the gateway appends to
// its redirect (?intent=) so the parked checkout can be finalised.
type CheckoutPayload struct {
	IntentID      string  `json:"intent_id"`
	ServiceID     uint    `json:"service_id"`
	UserID        uint    `json:"user_id"`
	ProviderID    uint    `json:"provider_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Address       string  `json:"address"`
	Notes         string  `json:"notes"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
}

type gatewayResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// CreateCheckout posts the payload to the payment gateway and returns the
// hosted checkout URL the customer must be redirected to.
func CreateCheckout(payload CheckoutPayload) (string, error) {
	endpoint := os.Getenv("PAYMENT_GATEWAY_URL")
	if endpoint == "" {
		return "", errors.New("payment gateway url not set")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var resp gatewayResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil && res.StatusCode < 400 {
		return "", err
	}

	if res.StatusCode >= 400 {
		if resp.Error != "" {
			return "", errors.New(resp.Error)
		}
		return "", fmt.Errorf("payment gateway returned status %d", res.StatusCode)
	}

	if resp.URL == "" {
		return "", errors.New("no redirect url returned from payment gateway")
	}
	return resp.URL, nil
}
