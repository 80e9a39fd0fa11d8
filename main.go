package main

import (
	"log"

	"reservation_manager/config"
	"reservation_manager/database"
	"reservation_manager/helper"
	"reservation_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	// Chạy reconcile trước khi nhận traffic: kho vé và job expire phải đúng lại
	// từ tập reservation đã lưu, kể cả khi process chết giữa chừng
	if err := helper.ReconcileOnStartup(); err != nil {
		log.Fatalf("Lỗi reconcile lúc khởi động: %v", err)
	}

	helper.StartExpirationScheduler()
	defer helper.StopExpirationScheduler()

	router.SetupRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "5000"
	}
	log.Fatal(app.Listen(":" + port))
}
