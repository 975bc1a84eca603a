package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/config"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/db"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/utils"
)

type seedCategory struct {
	Name        string
	Description string
}

type seedServiceCategory struct {
	Name        string
	Description string
}

type seedService struct {
	Name          string
	Description   string
	Price         float64
	Type          string
	EstimatedTime string
	Category      string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	now := time.Now().In(cfg.Timezone)

	categories := []seedCategory{
		{Name: "Laptops", Description: "Portable computers for work and gaming."},
		{Name: "Desktops", Description: "Tower and all-in-one desktop machines."},
		{Name: "Components", Description: "CPUs, GPUs, memory, storage and boards."},
		{Name: "Peripherals", Description: "Keyboards, mice, monitors and audio."},
		{Name: "Networking", Description: "Routers, switches and home networking gear."},
	}

	for _, cat := range categories {
		filter := bson.M{"name": cat.Name}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":         primitive.NewObjectID().Hex(),
				"name":        cat.Name,
				"description": cat.Description,
				"created_at":  now,
				"updated_at":  now,
			},
		}
		if _, err := cols.Categories.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed category %s: %v", cat.Name, err)
		}
	}

	serviceCategories := []seedServiceCategory{
		{Name: "Repair", Description: "Hardware diagnosis and repair."},
		{Name: "Upgrade", Description: "Component upgrades and installations."},
		{Name: "Maintenance", Description: "Cleaning, thermal service and tune-ups."},
	}

	for _, sc := range serviceCategories {
		slug := utils.Slugify(sc.Name)
		filter := bson.M{"slug": slug}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":         primitive.NewObjectID().Hex(),
				"name":        sc.Name,
				"slug":        slug,
				"description": sc.Description,
				"status":      "active",
				"created_at":  now,
				"updated_at":  now,
			},
		}
		if _, err := cols.ServiceCategories.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed service category %s: %v", sc.Name, err)
		}
	}

	services := []seedService{
		{Name: "Screen replacement", Description: "Laptop screen swap, parts excluded.", Price: 45, Type: "store", EstimatedTime: "2h", Category: "Repair"},
		{Name: "Thermal paste renewal", Description: "CPU/GPU repaste and fan cleaning.", Price: 25, Type: "store", EstimatedTime: "1h", Category: "Maintenance"},
		{Name: "RAM/SSD upgrade", Description: "Memory or storage upgrade with data migration.", Price: 30, Type: "store", EstimatedTime: "1h30", Category: "Upgrade"},
		{Name: "Home network setup", Description: "Router and Wi-Fi configuration at your place.", Price: 60, Type: "home", EstimatedTime: "3h", Category: "Upgrade"},
		{Name: "On-site diagnosis", Description: "We come to you and find the fault.", Price: 40, Type: "home", EstimatedTime: "2h", Category: "Repair"},
	}

	for _, svc := range services {
		filter := bson.M{"name": svc.Name}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":            primitive.NewObjectID().Hex(),
				"name":           svc.Name,
				"description":    svc.Description,
				"price":          svc.Price,
				"type":           svc.Type,
				"estimated_time": svc.EstimatedTime,
				"status":         "active",
				"created_at":     now,
				"updated_at":     now,
			},
		}
		if _, err := cols.Services.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed service %s: %v", svc.Name, err)
		}
	}

	statsUpdate := bson.M{
		"$setOnInsert": bson.M{
			"visits":         int64(0),
			"total_profit":   float64(0),
			"total_orders":   int64(0),
			"total_repairs":  int64(0),
			"total_products": int64(0),
			"created_at":     now,
			"updated_at":     now,
		},
	}
	if _, err := cols.Stats.UpdateOne(ctx, bson.M{"_id": "global"}, statsUpdate, options.Update().SetUpsert(true)); err != nil {
		log.Fatalf("seed stats: %v", err)
	}

	log.Println("seed complete")
}
