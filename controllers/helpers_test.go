package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
	"github.com/homefixbd/home-fix-server/routes"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test_secret"

// setupApp wires the full route table against a fresh in-memory database
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
	))
	db.DB = gdb

	app := fiber.New()
	routes.SetupAuthRoutes(app)
	routes.SetupCategoryRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupPaymentRoutes(app)
	routes.SetupDashboardRoutes(app)
	return app
}

func createUser(t *testing.T, name, email, role string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Phone:    "01700000000",
		Role:     role,
		Location: "ঢাকা",
		Verified: true,
	}
	if role == models.RoleProvider {
		user.Profession = "ইলেকট্রিশিয়ান"
	}
	require.NoError(t, db.DB.Create(user).Error)
	return user
}

func createService(t *testing.T, provider *models.User, title string, price float64) *models.Service {
	t.Helper()
	service := &models.Service{
		Title:      title,
		Price:      price,
		Category:   "ইলেকট্রিক্যাল",
		ProviderID: provider.ID,
		Location:   "ঢাকা",
		Available:  true,
	}
	require.NoError(t, db.DB.Create(service).Error)
	return service
}

func createBooking(t *testing.T, service *models.Service, user *models.User, status models.BookingStatus) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		ServiceID:   service.ID,
		UserID:      user.ID,
		ProviderID:  service.ProviderID,
		Date:        time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Time:        "10:30",
		Address:     "House 12, Road 5, Dhanmondi",
		Status:      status,
		TotalAmount: service.Price,
	}
	require.NoError(t, db.DB.Create(booking).Error)
	return booking
}

func authToken(t *testing.T, user *models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decodeBody(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()
	defer res.Body.Close()
	require.NoError(t, json.NewDecoder(res.Body).Decode(out))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func dbUpdate(model interface{}, column string, value interface{}) error {
	return db.DB.Model(model).Update(column, value).Error
}
