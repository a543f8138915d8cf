package db

import (
	"log"
	"os"

	"linknest/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=linknest port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	ensureVoteIndexes(DB)
}

// ensureVoteIndexes 建立 (user, 实体) 的唯一约束。
// post_id / comment_id 二选一为 NULL,普通唯一索引对 NULL 不去重,
// 所以用 PG 的 partial unique index。
func ensureVoteIndexes(g *gorm.DB) {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_votes_user_post ON votes (user_id, post_id) WHERE post_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_votes_user_comment ON votes (user_id, comment_id) WHERE comment_id IS NOT NULL`,
	}
	for _, s := range stmts {
		if err := g.Exec(s).Error; err != nil {
			log.Fatalf("Failed to create vote index: %v", err)
		}
	}
}
