package services

import (
	"fmt"
	"os"
	"testing"

	"linknest/internal/db"
	"linknest/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB 连接 TEST_DATABASE_URL 指向的测试库,未设置时跳过。
// 每个用例从空表开始。
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	g, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	db.DB = g

	if err := g.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}, &models.Vote{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	if err := g.Exec("TRUNCATE TABLE votes, comments, posts, users RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("Failed to clean test database: %v", err)
	}
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "x",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return &user
}

func createTestPost(t *testing.T, userID uint, title string) *models.Post {
	t.Helper()
	post, err := CreatePost(userID, title, "", "test content for "+title)
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return post
}

func getPostByID(t *testing.T, id uint) *models.Post {
	t.Helper()
	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		t.Fatalf("Failed to reload post %d: %v", id, err)
	}
	return &post
}

func getCommentByID(t *testing.T, id uint) *models.Comment {
	t.Helper()
	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		t.Fatalf("Failed to reload comment %d: %v", id, err)
	}
	return &comment
}
