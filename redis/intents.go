package redis

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/homefixbd/home-fix-server/models"
)

// Pending checkouts live for an hour; the hosted gateway session expires
// well before that.
const intentTTL = time.Hour

func intentKey(id string) string {
	return "payment_intent:" + id
}

// SaveIntent stores a pending payment intent under its token.
func SaveIntent(intent *models.PaymentIntent) error {
	if Client == nil {
		return errors.New("redis not initialised")
	}
	data, err := json.Marshal(intent)
	if err != nil {
		return err
	}
	return Client.Set(Ctx, intentKey(intent.ID), data, intentTTL).Err()
}

// GetIntent reads a pending payment intent back by token.
func GetIntent(id string) (*models.PaymentIntent, error) {
	if Client == nil {
		return nil, errors.New("redis not initialised")
	}
	data, err := Client.Get(Ctx, intentKey(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var intent models.PaymentIntent
	if err := json.Unmarshal(data, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// DeleteIntent removes the token so a replayed redirect cannot finalise the
// same checkout twice.
func DeleteIntent(id string) error {
	if Client == nil {
		return errors.New("redis not initialised")
	}
	return Client.Del(Ctx, intentKey(id)).Err()
}
