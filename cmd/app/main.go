package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"namdo/cmd/fx/accountfx"
	"namdo/cmd/fx/catalogfx"
	"namdo/cmd/fx/dbfx"
	"namdo/cmd/fx/favoritefx"
	"namdo/cmd/fx/schedulefx"
	"namdo/internal/api/controllers"
	"namdo/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		catalogfx.Module,
		accountfx.Module,
		favoritefx.Module,
		schedulefx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	favoriteController *controllers.FavoriteController,
	placesController *controllers.PlacesController,
	scheduleController *controllers.ScheduleController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, favoriteController, placesController, scheduleController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	favoriteController *controllers.FavoriteController,
	placesController *controllers.PlacesController,
	scheduleController *controllers.ScheduleController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/signup", accountController.SignUp)
	accountGroup.POST("/login", accountController.Login)

	r.GET("/places", placesController.ListPlaces)

	favoriteGroup := r.Group("/favorites", middleware.JWTAuthMiddleware())
	favoriteGroup.GET("/list", favoriteController.ListFavorites)
	favoriteGroup.POST("/add", favoriteController.AddFavorite)
	favoriteGroup.POST("/remove", favoriteController.RemoveFavorite)

	scheduleGroup := r.Group("/schedules", middleware.JWTAuthMiddleware())
	scheduleGroup.POST("/recommend", scheduleController.RecommendSchedule)
	scheduleGroup.GET("/recommend", scheduleController.RecommendScheduleFromFavorites)
}
