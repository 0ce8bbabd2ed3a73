package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	goredis "github.com/go-redis/redis/v8"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking-server/models"
	"hotel-booking-server/storage"
	"hotel-booking-server/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}, &models.Review{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	storage.DB = db
	return db
}

func setupTestRedis(t *testing.T) {
	t.Helper()

	mr := miniredis.RunT(t)
	storage.Redis = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
}

// buildTestApp wires the same parties as main so handlers run behind the
// real verifier middleware.
func buildTestApp(t *testing.T) *iris.Application {
	t.Helper()

	t.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	t.Setenv("REFRESH_TOKEN_SECRET", "testrefreshsecret")

	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	auth := app.Party("/api/auth")
	{
		auth.Post("/register", Register)
		auth.Post("/login", Login)
	}

	rooms := app.Party("/api/rooms")
	{
		rooms.Get("/", GetRooms)
		rooms.Get("/featured", GetFeaturedRoom)
		rooms.Get("/{id:uint}/reviews", GetRoomReviews)
		rooms.Get("/{slug}", GetRoomBySlug)
	}

	user := app.Party("/api/user", accessTokenVerifierMiddleware)
	{
		user.Get("/", GetCurrentUser)
		user.Get("/bookings", GetUserBookings)
		user.Post("/reviews", UpsertRoomReview)
	}

	app.Post("/api/stripe", accessTokenVerifierMiddleware, CreateCheckoutSession)
	app.Post("/api/webhooks", HandleStripeWebhook)

	if err := app.Build(); err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	return app
}

func signTestToken(t *testing.T, id uint) string {
	t.Helper()

	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), time.Hour)
	token, err := signer.Sign(utils.AccessToken{ID: id})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return string(token)
}

func doJSON(app *iris.Application, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func seedUser(t *testing.T, email string) models.User {
	t.Helper()

	user := models.User{Name: "Test Guest", Email: email}
	if err := storage.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedRoom(t *testing.T, slug string, price float64, discount int) models.Room {
	t.Helper()

	room := models.Room{
		Name:     "Room " + slug,
		Slug:     slug,
		RoomType: "suite",
		Price:    price,
		Discount: discount,
	}
	if err := storage.DB.Create(&room).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	return room
}

func seedBooking(t *testing.T, userID, roomID uint) models.Booking {
	t.Helper()

	checkin := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	booking := models.Booking{
		UserID:       userID,
		RoomID:       roomID,
		CheckinDate:  checkin,
		CheckoutDate: checkin.AddDate(0, 0, 3),
		NumberOfDays: 3,
		Adults:       2,
		TotalPrice:   540,
		Discount:     10,
	}
	if err := storage.DB.Create(&booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return booking
}

func uintToString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeJSONBody(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response body %q: %v", resp.Body.String(), err)
	}
}
