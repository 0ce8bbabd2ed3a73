package utils

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"hotel-booking-server/storage"
)

var bgContext = context.Background()

// AccessToken is the claims payload embedded in every access token.
type AccessToken struct {
	ID uint `json:"id"`
}

func CreateTokenPair(id uint) (*jwt.TokenPair, error) {
	accessTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 24*time.Hour)
	refreshTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("REFRESH_TOKEN_SECRET"), 365*24*time.Hour)

	userID := strconv.FormatUint(uint64(id), 10)

	accessToken, err := accessTokenSigner.Sign(AccessToken{ID: id})
	if err != nil {
		return nil, err
	}

	refreshToken, err := refreshTokenSigner.Sign(jwt.Claims{Subject: userID})
	if err != nil {
		return nil, err
	}

	var tokenPair jwt.TokenPair
	tokenPair.AccessToken = accessToken
	tokenPair.RefreshToken = refreshToken

	// Refresh tokens are allow-listed in redis so they can be revoked.
	storage.Redis.Set(bgContext, string(refreshToken), "true", 365*24*time.Hour+5*time.Minute)

	return &tokenPair, nil
}

// RefreshToken exchanges a verified refresh token for a new pair. The old
// token is removed from the allow-list so it cannot be replayed.
func RefreshToken(ctx iris.Context) {
	token := jwt.GetVerifiedToken(ctx)
	tokenStr := string(token.Token)

	if _, redisErr := storage.Redis.Get(bgContext, tokenStr).Result(); redisErr != nil {
		CreateError(iris.StatusUnauthorized, "Credentials Error", "Refresh token invalid or expired.", ctx)
		return
	}

	claims := jwt.Get(ctx).(*jwt.Claims)
	id, idErr := strconv.ParseUint(claims.Subject, 10, 32)
	if idErr != nil {
		CreateInternalServerError(ctx)
		return
	}

	storage.Redis.Del(bgContext, tokenStr)

	tokenPair, tokenErr := CreateTokenPair(uint(id))
	if tokenErr != nil {
		CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}
