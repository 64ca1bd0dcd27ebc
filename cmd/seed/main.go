package main

import (
	"fmt"
	"time"

	"github.com/fleettrack/internal/config"
	"github.com/fleettrack/internal/constants"
	"github.com/fleettrack/internal/logger"
	"github.com/fleettrack/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

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

	// 添加示例司机
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("driver123"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("Failed to hash password: %v", err)
	}
	drivers := []models.Driver{
		{
			Username:     "driver_wang",
			PasswordHash: string(passwordHash),
			Name:         "王师傅",
			Phone:        "13800000001",
			VehicleType:  constants.VehicleTypeVan,
			PlateNumber:  "京A12345",
			Status:       constants.DriverStatusActive,
		},
		{
			Username:     "driver_li",
			PasswordHash: string(passwordHash),
			Name:         "李师傅",
			Phone:        "13800000002",
			VehicleType:  constants.VehicleTypeBike,
			PlateNumber:  "",
			Status:       constants.DriverStatusActive,
		},
		{
			Username:     "driver_zhao",
			PasswordHash: string(passwordHash),
			Name:         "赵师傅",
			Phone:        "13800000003",
			VehicleType:  constants.VehicleTypeTruck,
			PlateNumber:  "京B67890",
			Status:       constants.DriverStatusDisabled,
		},
	}

	for _, d := range drivers {
		var existing models.Driver
		if err := models.DB.Where("username = ?", d.Username).First(&existing).Error; err != nil {
			if err := models.DB.Create(&d).Error; err != nil {
				stdLog.Printf("Failed to create driver %s: %v", d.Username, err)
			} else {
				stdLog.Printf("Created driver: %s", d.Username)
			}
		} else {
			stdLog.Printf("Driver already exists: %s", d.Username)
		}
	}

	// 获取司机ID
	driverIDs := map[string]uint{}
	var driverList []models.Driver
	if err := models.DB.Where("username IN ?", []string{"driver_wang", "driver_li"}).Find(&driverList).Error; err != nil {
		stdLog.Printf("Failed to load drivers: %v", err)
	}
	for _, d := range driverList {
		driverIDs[d.Username] = d.ID
	}

	// 添加示例配送订单
	now := time.Now()
	wangID := driverIDs["driver_wang"]
	liID := driverIDs["driver_li"]
	orders := []models.DeliveryOrder{
		{
			OrderNo:         fmt.Sprintf("FT%s001", now.Format("20060102")),
			DriverID:        &wangID,
			Status:          constants.DeliveryStatusPending,
			CustomerName:    "张三",
			CustomerPhone:   "13900000001",
			Address:         "北京市朝阳区建国路 88 号",
			PackageCount:    2,
			Distance:        models.NewDistanceFromDecimal(decimal.NewFromFloat(12.5)),
			Instructions:    "工作日 18 点后配送",
			StatusChangedAt: now,
		},
		{
			OrderNo:         fmt.Sprintf("FT%s002", now.Format("20060102")),
			DriverID:        &liID,
			Status:          constants.DeliveryStatusPending,
			CustomerName:    "李四",
			CustomerPhone:   "13900000002",
			Address:         "北京市海淀区中关村大街 1 号",
			PackageCount:    1,
			Distance:        models.NewDistanceFromDecimal(decimal.NewFromFloat(3.2)),
			Instructions:    "",
			StatusChangedAt: now,
		},
		{
			OrderNo:         fmt.Sprintf("FT%s003", now.Format("20060102")),
			Status:          constants.DeliveryStatusPending,
			CustomerName:    "王五",
			CustomerPhone:   "13900000003",
			Address:         "北京市东城区王府井大街 138 号",
			PackageCount:    5,
			Distance:        models.NewDistanceFromDecimal(decimal.NewFromFloat(8.0)),
			Instructions:    "易碎品，轻拿轻放",
			StatusChangedAt: now,
		},
	}

	for _, o := range orders {
		var existing models.DeliveryOrder
		if err := models.DB.Where("order_no = ?", o.OrderNo).First(&existing).Error; err != nil {
			if err := models.DB.Create(&o).Error; err != nil {
				stdLog.Printf("Failed to create order %s: %v", o.OrderNo, err)
			} else {
				stdLog.Printf("Created order: %s", o.OrderNo)
			}
		} else {
			stdLog.Printf("Order already exists: %s", o.OrderNo)
		}
	}

	stdLog.Printf("Seed finished")
}
