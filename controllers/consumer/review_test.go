package consumer_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewUpdatesServiceRating(t *testing.T) {
	app := setupApp(t)

	customer1 := createUser(t, "রহিম", "rahim@example.com", models.RoleUser)
	customer2 := createUser(t, "করিম", "karim@example.com", models.RoleUser)
	provider := createUser(t, "জামাল", "jamal@example.com", models.RoleProvider)
	service := createService(t, provider, "ফ্যান মেরামত", 500)

	res := doRequest(t, app, fiber.MethodPost, "/reviews", authToken(t, customer1), fiber.Map{
		"service_id": service.ID,
		"rating":     5,
		"comment":    "চমৎকার সার্ভিস",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res = doRequest(t, app, fiber.MethodPost, "/reviews", authToken(t, customer2), fiber.Map{
		"service_id": service.ID,
		"rating":     4,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var got models.Service
	require.NoError(t, db.DB.First(&got, service.ID).Error)
	assert.InDelta(t, 4.5, got.Rating, 0.01)
}

func TestCreateReviewOncePerCustomer(t *testing.T) {
	app := setupApp(t)

	customer := createUser(t, "রহিম", "rahim@example.com", models.RoleUser)
	provider := createUser(t, "জামাল", "jamal@example.com", models.RoleProvider)
	service := createService(t, provider, "ফ্যান মেরামত", 500)
	token := authToken(t, customer)

	res := doRequest(t, app, fiber.MethodPost, "/reviews", token, fiber.Map{
		"service_id": service.ID,
		"rating":     5,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res = doRequest(t, app, fiber.MethodPost, "/reviews", token, fiber.Map{
		"service_id": service.ID,
		"rating":     1,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	app := setupApp(t)

	customer := createUser(t, "রহিম", "rahim@example.com", models.RoleUser)
	provider := createUser(t, "জামাল", "jamal@example.com", models.RoleProvider)
	service := createService(t, provider, "ফ্যান মেরামত", 500)

	res := doRequest(t, app, fiber.MethodPost, "/reviews", authToken(t, customer), fiber.Map{
		"service_id": service.ID,
		"rating":     7,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateVerifiedReviewFromCompletedBooking(t *testing.T) {
	app := setupApp(t)

	customer := createUser(t, "রহিম", "rahim@example.com", models.RoleUser)
	provider := createUser(t, "জামাল", "jamal@example.com", models.RoleProvider)
	service := createService(t, provider, "ফ্যান মেরামত", 500)

	booking := &models.Booking{
		ServiceID:   service.ID,
		UserID:      customer.ID,
		ProviderID:  provider.ID,
		Date:        time.Now().Format("2006-01-02"),
		Time:        "10:30",
		Address:     "House 12",
		Status:      models.StatusCompleted,
		TotalAmount: 500,
	}
	require.NoError(t, db.DB.Create(booking).Error)

	res := doRequest(t, app, fiber.MethodPost, "/reviews", authToken(t, customer), fiber.Map{
		"service_id": service.ID,
		"booking_id": booking.ID,
		"rating":     5,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var review models.Review
	decodeBody(t, res, &review)
	assert.True(t, review.IsVerified)
}

func TestCreateReviewRejectsPendingBooking(t *testing.T) {
	app := setupApp(t)

	customer := createUser(t, "রহিম", "rahim@example.com", models.RoleUser)
	provider := createUser(t, "জামাল", "jamal@example.com", models.RoleProvider)
	service := createService(t, provider, "ফ্যান মেরামত", 500)

	booking := &models.Booking{
		ServiceID:   service.ID,
		UserID:      customer.ID,
		ProviderID:  provider.ID,
		Date:        time.Now().Format("2006-01-02"),
		Time:        "10:30",
		Address:     "House 12",
		Status:      models.StatusPending,
		TotalAmount: 500,
	}
	require.NoError(t, db.DB.Create(booking).Error)

	res := doRequest(t, app, fiber.MethodPost, "/reviews", authToken(t, customer), fiber.Map{
		"service_id": service.ID,
		"booking_id": booking.ID,
		"rating":     5,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetServiceReviewsIsPublic(t *testing.T) {
	app := setupApp(t)

	customer := createUser(t, "রহিম", "rahim@example.com", models.RoleUser)
	provider := createUser(t, "জামাল", "jamal@example.com", models.RoleProvider)
	service := createService(t, provider, "ফ্যান মেরামত", 500)

	review := &models.Review{
		ServiceID:  service.ID,
		ProviderID: provider.ID,
		CustomerID: customer.ID,
		Rating:     4,
		Comment:    "ভালো কাজ",
	}
	require.NoError(t, db.DB.Create(review).Error)

	res := doRequest(t, app, fiber.MethodGet, "/services/"+itoa(service.ID)+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var reviews []models.Review
	decodeBody(t, res, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, "ভালো কাজ", reviews[0].Comment)
	assert.Empty(t, reviews[0].Customer.Password)
}
