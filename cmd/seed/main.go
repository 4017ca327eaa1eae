package main

import (
	"fmt"

	"github.com/Karthikeyanbk4067/FitX/internal/config"
	"github.com/Karthikeyanbk4067/FitX/internal/constants"
	"github.com/Karthikeyanbk4067/FitX/internal/logger"
	"github.com/Karthikeyanbk4067/FitX/internal/models"
)

const (
	imageFolderPath = "assets/Products/"
	imageExtension  = "jpeg"
	styleCodePrefix = "ALPHA"
	defaultOrigin   = "Vietnam"
)

type seedProduct struct {
	ID          uint
	Name        string
	Category    string
	Price       int64
	MRP         int64
	Description string
	Badge       string
}

var catalog = []seedProduct{
	{1, "Alpha Sprint Lite", "Men", 6800, 8000, "Lightweight and agile, perfect for sprints.", constants.ProductBadgeNewArrival},
	{2, "Aura Flex Walker", "Women", 7200, 8500, "Maximum flexibility for a natural walking experience.", ""},
	{3, "Element Street Canvas", "Unisex", 7800, 9200, "A classic canvas sneaker for timeless street style.", constants.ProductBadgeBestseller},
	{4, "Terra Glide", "Men", 7950, 9500, "A versatile trainer for both gym workouts and light jogs.", ""},
	{5, "Nova Casual", "Women", 6900, 8100, "The perfect blend of comfort and casual elegance.", ""},
	{6, "Classic Court", "Unisex", 7400, 8800, "Inspired by vintage tennis shoes, offering a clean look.", ""},
	{7, "Pace Runner", "Men", 7600, 9000, "A reliable daily runner with balanced cushioning.", constants.ProductBadgeBestseller},
	{8, "Stellar Slip-On", "Women", 6500, 7800, "Effortless style meets all-day comfort.", ""},
	{9, "Urban Roam", "Unisex", 7900, 9400, "Built for city exploration, with a durable sole.", ""},
	{10, "Active Flow", "Men", 7300, 8600, "Breathable mesh and a responsive sole for active lifestyles.", ""},
	{11, "Bliss Walk", "Women", 7700, 9100, "Engineered for superior comfort on long walks.", constants.ProductBadgeNewArrival},
	{12, "Foundation Trainer", "Unisex", 7999, 9500, "A solid, all-around training shoe for any workout.", ""},
	{13, "Metro Commuter", "Men", 7100, 8400, "Sleek and professional, for the modern urban commuter.", ""},
	{14, "Sunset Sandal", "Women", 5800, 7000, "An elegant and comfortable sandal for warm evenings.", ""},
	{15, "Rebel Skate", "Unisex", 7850, 9300, "Durable suede and a flat sole for maximum board feel.", constants.ProductBadgeBestseller},
	{16, "Alpha Runner Pro", "Men", 8999, 10999, "Engineered for peak performance, perfect for marathon training.", constants.ProductBadgeBestseller},
	{17, "Velocity Knit", "Women", 9200, 11000, "Lightweight and breathable, for high-intensity workouts.", ""},
	{18, "Vortex Street High", "Unisex", 11500, 13000, "A bold, high-top sneaker that makes a statement.", constants.ProductBadgeLimited},
	{19, "Helios Racer", "Men", 10500, 12500, "A feather-light racing flat for competitive runners.", ""},
	{20, "Lunar Glide Max", "Women", 11800, 14000, "Experience cloud-like comfort with maximum cushioning.", constants.ProductBadgeNewArrival},
	{21, "Fusion XT", "Unisex", 9800, 11500, "A cross-training powerhouse with stability and flexibility.", constants.ProductBadgeBestseller},
	{22, "Strato Commute Lux", "Men", 8500, 10000, "A smart and stylish shoe for your daily commute.", ""},
	{23, "Ember Leather", "Women", 11200, 13500, "Crafted from premium leather for a luxurious feel.", ""},
	{24, "Core All-Day", "Unisex", 8200, 9800, "The ultimate versatile sneaker, your go-to for any occasion.", ""},
	{25, "Titanium Trainer X", "Men", 11900, 14200, "Maximum support and durability for demanding workouts.", constants.ProductBadgeLimited},
	{26, "Serene Yoga Slip", "Women", 8100, 9600, "A minimalist, flexible shoe for studio workouts.", ""},
	{27, "Echo Hiker Lite", "Unisex", 10800, 12800, "A lightweight hiking shoe for day trips and easy trails.", ""},
	{28, "Momentum Run 2", "Men", 9500, 11200, "Feel the energy return with every step.", constants.ProductBadgeBestseller},
	{29, "Adorn Loafer", "Women", 8800, 10500, "A sophisticated loafer for work and casual attire.", ""},
	{30, "Gridiron Cleat Pro", "Unisex", 11000, 13000, "Engineered for traction and speed on the field.", constants.ProductBadgeNewArrival},
	{31, "Stealth Jogger Night", "Men", 9999, 12000, "A sleek, all-black design for a modern aesthetic.", ""},
	{32, "Orion Cross-Trainer", "Unisex", 10200, 12200, "Versatility for any gym activity, from cardio to weights.", ""},
	{33, "Apex Trail Runner Pro", "Unisex", 12500, 15000, "Durable and rugged, built for any off-road adventure.", constants.ProductBadgeBestseller},
	{34, "Solar Boost Elite", "Men", 13500, 16000, "High-energy return with a carbon-fiber plate.", ""},
	{35, "Aura High-Fashion", "Women", 15000, 18000, "A designer collaboration sneaker with a runway-ready look.", constants.ProductBadgeLimited},
	{36, "Forge Weightlifting", "Unisex", 12200, 14500, "A flat, stable sole provides the perfect platform for heavy lifting.", ""},
	{37, "Cryo Winter Boot", "Men", 14800, 17500, "Insulated and waterproof to keep your feet warm and dry.", ""},
	{38, "Celeste Leather Sandal", "Women", 12100, 14000, "An elegant leather sandal for warm-weather events.", constants.ProductBadgeNewArrival},
	{39, "Hyper Jump Pro", "Unisex", 13800, 16500, "A basketball shoe with explosive cushioning for maximum vertical leap.", constants.ProductBadgeBestseller},
	{40, "Equinox Oxford", "Men", 14000, 17000, "A premium dress shoe crafted from the finest full-grain leather.", ""},
	{41, "Diamond Heel", "Women", 16000, 19000, "A stunning high heel for formal occasions, adorned with subtle crystals.", constants.ProductBadgeLimited},
	{42, "Summit Explorer", "Unisex", 15500, 18500, "A professional-grade mountaineering boot for serious expeditions.", ""},
	{43, "Radiant Runner", "Women", 9300, 11200, "A bright and responsive shoe that makes every run feel effortless.", constants.ProductBadgeNewArrival},
	{44, "Colossus Work Boot", "Men", 15200, 18000, "Steel-toed and built to withstand the toughest job sites.", ""},
	{45, "Simple Step Eco", "Unisex", 6200, 7500, "A minimalist sneaker made from recycled and sustainable materials.", constants.ProductBadgeSustainable},
	{46, "Empress Evening Heel", "Women", 14500, 17500, "An elegant heel designed for comfort and style during formal events.", constants.ProductBadgeLimited},
	{47, "Dynamic Dash", "Men", 8400, 10000, "Built for agility and quick movements, ideal for court sports.", ""},
	{48, "Zenith Pro Hiker", "Unisex", 16500, 19500, "Our most advanced hiking boot, ready for any professional expedition.", constants.ProductBadgeBestseller},
	{49, "Breeze Comfort Sandal", "Women", 6600, 7900, "Lightweight and supportive, this is your perfect summer sandal.", ""},
	{50, "Vector Cross-Trainer II", "Men", 11800, 14000, "The next generation of our all-around gym shoe, with enhanced stability.", constants.ProductBadgeNewArrival},
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	created := 0
	for _, item := range catalog {
		var existing models.Product
		if err := models.DB.Where("id = ?", item.ID).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", item.Name)
			continue
		}

		product := models.Product{
			ID:              item.ID,
			Name:            item.Name,
			Category:        item.Category,
			Price:           models.NewMoneyFromInt(item.Price),
			MRP:             models.NewMoneyFromInt(item.MRP),
			Description:     item.Description,
			StyleCode:       fmt.Sprintf("%s-%03d", styleCodePrefix, item.ID),
			Origin:          defaultOrigin,
			ImageMain:       fmt.Sprintf("%s%d.%s", imageFolderPath, item.ID, imageExtension),
			ImageThumb1:     fmt.Sprintf("%s%d-thumb1.%s", imageFolderPath, item.ID, imageExtension),
			ImageThumb2:     fmt.Sprintf("%s%d-thumb2.%s", imageFolderPath, item.ID, imageExtension),
			ImageThumb3:     fmt.Sprintf("%s%d-thumb3.%s", imageFolderPath, item.ID, imageExtension),
			ImageThumb4:     fmt.Sprintf("%s%d-thumb4.%s", imageFolderPath, item.ID, imageExtension),
			Badge:           item.Badge,
			ColorsAvailable: 1,
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", item.Name, err)
			continue
		}
		created++
	}

	stdLog.Printf("Seeding complete: %d products created, %d total in catalog", created, len(catalog))
}
