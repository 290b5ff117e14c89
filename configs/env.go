package configs

import (
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// .env only exists in local development; deployed environments provide
	// real environment variables.
	_ = godotenv.Load()
}

func EnvMongoURI() string {
	return os.Getenv("MONGOURI")
}

func EnvMongoDB() string {
	if db := os.Getenv("MONGO_DB"); db != "" {
		return db
	}
	return "ecofinds"
}

func EnvJwtSecret() string {
	return os.Getenv("JWT_SECRET")
}

func EnvPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// EnvUploadsDir is where legacy listing images live on disk. New listings
// embed their image in the product document instead.
func EnvUploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}
