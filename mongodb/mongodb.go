package mongodb

import (
	"context"
	"log"
	"time"

	"pet-blog-api/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var client *mongo.Client

// InitMongoDB 初始化MongoDB连接
func InitMongoDB() {
	cfg := config.GetConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	client = c
	log.Printf("MongoDB连接已初始化: %s", cfg.Mongo.Database)
}

// GetCollection 按配置键获取集合
func GetCollection(collectionKey string) *mongo.Collection {
	cfg := config.GetConfig()

	collectionName, exists := cfg.Mongo.Collections[collectionKey]
	if !exists {
		log.Fatalf("Collection %s not found in config", collectionKey)
	}
	if client == nil {
		log.Fatal("MongoDB client not initialized, call InitMongoDB() first")
	}
	return client.Database(cfg.Mongo.Database).Collection(collectionName)
}

// Ping 检查MongoDB连通性
func Ping(ctx context.Context) error {
	if client == nil {
		return mongo.ErrClientDisconnected
	}
	return client.Ping(ctx, readpref.Primary())
}

// CloseMongoDB 关闭MongoDB连接
func CloseMongoDB(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("关闭MongoDB连接失败: %v", err)
	}
}
