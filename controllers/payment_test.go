package controllers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
	"github.com/homefixbd/home-fix-server/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupIntentStore points the intent store at an in-process redis for the
// duration of the test
func setupIntentStore(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.Client = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redis.Client = nil })
}

func saveIntent(t *testing.T, service *models.Service, customer *models.User) *models.PaymentIntent {
	t.Helper()
	intent := &models.PaymentIntent{
		ID:            uuid.New().String(),
		ServiceID:     service.ID,
		UserID:        customer.ID,
		ProviderID:    service.ProviderID,
		Date:          time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Time:          "10:30",
		Address:       "House 12, Road 5, Dhanmondi",
		TotalAmount:   service.Price,
		PaymentMethod: "bkash",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, redis.SaveIntent(intent))
	return intent
}

func TestPaymentLandingPages(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		path    string
		marker  string
		seconds string
	}{
		{"/payment-success", "পেমেন্ট সফল হয়েছে", "content=\"5;url=/\""},
		{"/payment-fail", "পেমেন্ট ব্যর্থ হয়েছে", "content=\"8;url=/\""},
		{"/payment-cancel", "পেমেন্ট বাতিল হয়েছে", "content=\"8;url=/\""},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			res := doRequest(t, app, fiber.MethodGet, tc.path, "", nil)
			require.Equal(t, http.StatusOK, res.StatusCode)
			assert.Contains(t, res.Header.Get("Content-Type"), "text/html")

			body, err := io.ReadAll(res.Body)
			res.Body.Close()
			require.NoError(t, err)
			html := string(body)
			assert.Contains(t, html, tc.marker)
			assert.True(t, strings.Contains(html, tc.seconds), "missing meta refresh: %s", tc.seconds)
			assert.Contains(t, html, `id="countdown"`)
		})
	}
}

func TestPaymentLandingWithUnknownIntent(t *testing.T) {
	app := setupApp(t)
	setupIntentStore(t)

	// A bogus token must not break the landing or write a booking
	res := doRequest(t, app, fiber.MethodGet, "/payment-success?intent=does-not-exist", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	require.NoError(t, db.DB.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPaymentSuccessFinalizesIntent(t *testing.T) {
	app := setupApp(t)
	setupIntentStore(t)

	customer := createUser(t, "রহিম", "rahim@example.com", models.RoleUser)
	provider := createUser(t, "জামাল", "jamal@example.com", models.RoleProvider)
	service := createService(t, provider, "ফ্যান মেরামত", 500)
	intent := saveIntent(t, service, customer)

	path := "/payment-success?intent=" + intent.ID
	res := doRequest(t, app, fiber.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var bookings []models.Booking
	require.NoError(t, db.DB.Find(&bookings).Error)
	require.Len(t, bookings, 1)
	booking := bookings[0]
	assert.Equal(t, models.PaymentCompleted, booking.PaymentStatus)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, customer.ID, booking.UserID)
	assert.Equal(t, provider.ID, booking.ProviderID)
	assert.Equal(t, 500.0, booking.TotalAmount)
	assert.Equal(t, intent.Date, booking.Date)

	// The token is consumed, so a replayed redirect cannot double-book
	res = doRequest(t, app, fiber.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var count int64
	require.NoError(t, db.DB.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPaymentFailRecordsFailedPayment(t *testing.T) {
	app := setupApp(t)
	setupIntentStore(t)

	customer := createUser(t, "রহিম", "rahim@example.com", models.RoleUser)
	provider := createUser(t, "জামাল", "jamal@example.com", models.RoleProvider)
	service := createService(t, provider, "ফ্যান মেরামত", 500)
	intent := saveIntent(t, service, customer)

	res := doRequest(t, app, fiber.MethodGet, "/payment-fail?intent="+intent.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var bookings []models.Booking
	require.NoError(t, db.DB.Find(&bookings).Error)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.PaymentFailed, bookings[0].PaymentStatus)
}

func TestPaymentCancelDiscardsIntent(t *testing.T) {
	app := setupApp(t)
	setupIntentStore(t)

	customer := createUser(t, "রহিম", "rahim@example.com", models.RoleUser)
	provider := createUser(t, "জামাল", "jamal@example.com", models.RoleProvider)
	service := createService(t, provider, "ফ্যান মেরামত", 500)
	intent := saveIntent(t, service, customer)

	res := doRequest(t, app, fiber.MethodGet, "/payment-cancel?intent="+intent.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Nothing durable is written and the token is gone
	var count int64
	require.NoError(t, db.DB.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
	_, err := redis.GetIntent(intent.ID)
	assert.Error(t, err)
}
