package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smartattend/attendance-backend/internal/config"
	"github.com/smartattend/attendance-backend/internal/database"
	"github.com/smartattend/attendance-backend/internal/handlers"
	"github.com/smartattend/attendance-backend/internal/middleware"
	"github.com/smartattend/attendance-backend/internal/routes"
	"github.com/smartattend/attendance-backend/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "attendance-backend",
	Short: "Attendance record and student registry service",
	Long: `Attendance record and student registry service.

Serves the dashboard API: student roster CRUD, the attendance ledger,
presigned photo-upload credentials, and daily presence statistics.
Configuration comes from environment variables or a .env file.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the attendance API server",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: run,
}

func init() {
	cobra.OnInitialize(initConfig)

	serveCmd.Flags().String("port", "3000", "port the API listens on")
	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	_ = godotenv.Load(".env.local")

	viper.AutomaticEnv()
}

func run(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	awsCfg, err := cfg.AWSConfig(context.Background())
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}

	db := database.New(awsCfg, cfg.StudentsTable, cfg.AttendanceTable)
	store := storage.New(awsCfg, cfg.S3Bucket, cfg.S3PublicBaseURL)
	h := handlers.New(db, store)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"data": gin.H{
				"status": "Server is running",
			},
		})
	})

	routes.StudentRoutes(r, h)
	routes.AttendanceRoutes(r, h)
	routes.DashboardRoutes(r, h)
	routes.UploadRoutes(r, h)

	log.Printf("Server running on port %s", cfg.Port)
	return r.Run(":" + cfg.Port)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
