package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"hotel-booking-server/routes"
	"hotel-booking-server/storage"
	"hotel-booking-server/utils"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	auth := app.Party("/api/auth")
	{
		auth.Post("/register", routes.Register)
		auth.Post("/login", routes.Login)
		auth.Post("/google", routes.GoogleLoginOrSignUp)
		auth.Post("/apple", routes.AppleLoginOrSignUp)
		auth.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
	}

	rooms := app.Party("/api/rooms")
	{
		rooms.Get("/", routes.GetRooms)
		rooms.Get("/featured", routes.GetFeaturedRoom)
		rooms.Get("/{id:uint}/reviews", routes.GetRoomReviews)
		rooms.Get("/{slug}", routes.GetRoomBySlug)
	}

	user := app.Party("/api/user", accessTokenVerifierMiddleware)
	{
		user.Get("/", routes.GetCurrentUser)
		user.Get("/bookings", routes.GetUserBookings)
		user.Post("/reviews", routes.UpsertRoomReview)
	}

	app.Post("/api/stripe", accessTokenVerifierMiddleware, routes.CreateCheckoutSession)
	app.Post("/api/webhooks", routes.HandleStripeWebhook)
	app.Post("/api/contact", routes.SendContactMessage)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Println("Server starting on port", port)
	app.Listen(":" + port)
}
