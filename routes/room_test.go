package routes

import (
	"net/http"
	"testing"

	"hotel-booking-server/models"
	"hotel-booking-server/storage"
)

func TestGetRoomsFiltersByTypeAndSearch(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)

	storage.DB.Create(&models.Room{Name: "Garden Suite", Slug: "garden-suite", RoomType: "suite", Price: 300})
	storage.DB.Create(&models.Room{Name: "Budget Single", Slug: "budget-single", RoomType: "basic", Price: 80})
	storage.DB.Create(&models.Room{Name: "Ocean Suite", Slug: "ocean-suite", RoomType: "suite", Price: 400})

	resp := doJSON(app, http.MethodGet, "/api/rooms?roomType=suite", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var rooms []map[string]interface{}
	decodeJSONBody(t, resp, &rooms)
	if len(rooms) != 2 {
		t.Fatalf("expected 2 suites, got %d", len(rooms))
	}

	resp = doJSON(app, http.MethodGet, "/api/rooms?searchQuery=ocean", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	rooms = nil
	decodeJSONBody(t, resp, &rooms)
	if len(rooms) != 1 {
		t.Fatalf("expected 1 room matching 'ocean', got %d", len(rooms))
	}
}

func TestGetFeaturedRoom(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)

	resp := doJSON(app, http.MethodGet, "/api/rooms/featured", "", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with no featured room, got %d", resp.Code)
	}

	storage.DB.Create(&models.Room{Name: "Penthouse", Slug: "penthouse", RoomType: "luxury", Price: 900, IsFeatured: true})

	resp = doJSON(app, http.MethodGet, "/api/rooms/featured", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var room map[string]interface{}
	decodeJSONBody(t, resp, &room)
	if room["slug"] != "penthouse" {
		t.Errorf("featured slug = %v, want penthouse", room["slug"])
	}
}

func TestGetRoomBySlug(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)

	seedRoom(t, "deluxe", 200, 10)

	resp := doJSON(app, http.MethodGet, "/api/rooms/deluxe", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = doJSON(app, http.MethodGet, "/api/rooms/missing-room", "", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug, got %d", resp.Code)
	}
}

func TestGetRoomReviewsListsRoomOnly(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)

	user := seedUser(t, "reviewer@example.com")
	roomA := seedRoom(t, "room-a", 100, 0)
	roomB := seedRoom(t, "room-b", 100, 0)

	storage.DB.Create(&models.Review{UserID: user.ID, RoomID: roomA.ID, Rating: 5, Text: "great"})
	storage.DB.Create(&models.Review{UserID: user.ID, RoomID: roomB.ID, Rating: 2, Text: "meh"})

	resp := doJSON(app, http.MethodGet, "/api/rooms/"+uintToString(roomA.ID)+"/reviews", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var reviews []map[string]interface{}
	decodeJSONBody(t, resp, &reviews)
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review for room A, got %d", len(reviews))
	}
}
