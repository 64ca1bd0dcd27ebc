package service

import (
	"strings"

	"github.com/fleettrack/internal/models"
	"github.com/fleettrack/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderAdminService 配送订单后台管理服务
type OrderAdminService struct {
	orderRepo  repository.OrderRepository
	driverRepo repository.DriverRepository
}

// NewOrderAdminService 创建订单后台管理服务
func NewOrderAdminService(orderRepo repository.OrderRepository, driverRepo repository.DriverRepository) *OrderAdminService {
	return &OrderAdminService{
		orderRepo:  orderRepo,
		driverRepo: driverRepo,
	}
}

// OrderCreateInput 创建配送订单入参
type OrderCreateInput struct {
	OrderNo       string  `json:"order_no" binding:"required"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Address       string  `json:"address"`
	PackageCount  int     `json:"package_count"`
	DistanceKM    string  `json:"distance_km"`
	Instructions  string  `json:"instructions"`
	DriverID      *uint   `json:"driver_id"`
}

// OrderUpdateInput 更新配送订单入参
type OrderUpdateInput struct {
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	Address       *string `json:"address"`
	PackageCount  *int    `json:"package_count"`
	DistanceKM    *string `json:"distance_km"`
	Instructions  *string `json:"instructions"`
}

// List 后台查询配送订单列表
func (s *OrderAdminService) List(filter repository.OrderListFilter) ([]models.DeliveryOrder, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// Get 获取配送订单详情
func (s *OrderAdminService) Get(id uint) (*models.DeliveryOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Create 创建配送订单
func (s *OrderAdminService) Create(input OrderCreateInput) (*models.DeliveryOrder, error) {
	orderNo := strings.TrimSpace(input.OrderNo)
	if orderNo == "" {
		return nil, ErrOrderNoEmpty
	}

	if input.DriverID != nil {
		driver, err := s.driverRepo.GetByID(*input.DriverID)
		if err != nil {
			return nil, err
		}
		if driver == nil {
			return nil, ErrDriverNotFound
		}
	}

	distance, err := parseDistance(input.DistanceKM)
	if err != nil {
		return nil, err
	}
	packageCount := input.PackageCount
	if packageCount <= 0 {
		packageCount = 1
	}

	order := models.DeliveryOrder{
		OrderNo:       orderNo,
		DriverID:      input.DriverID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Address:       strings.TrimSpace(input.Address),
		PackageCount:  packageCount,
		Distance:      distance,
		Instructions:  strings.TrimSpace(input.Instructions),
	}
	if err := s.orderRepo.Create(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Update 更新配送订单资料
func (s *OrderAdminService) Update(id uint, input OrderUpdateInput) (*models.DeliveryOrder, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != nil {
		order.CustomerName = strings.TrimSpace(*input.CustomerName)
	}
	if input.CustomerPhone != nil {
		order.CustomerPhone = strings.TrimSpace(*input.CustomerPhone)
	}
	if input.Address != nil {
		order.Address = strings.TrimSpace(*input.Address)
	}
	if input.PackageCount != nil && *input.PackageCount > 0 {
		order.PackageCount = *input.PackageCount
	}
	if input.DistanceKM != nil {
		distance, err := parseDistance(*input.DistanceKM)
		if err != nil {
			return nil, err
		}
		order.Distance = distance
	}
	if input.Instructions != nil {
		order.Instructions = strings.TrimSpace(*input.Instructions)
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Assign 指派司机（driverID 为空表示取消指派）
func (s *OrderAdminService) Assign(id uint, driverID *uint) (*models.DeliveryOrder, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if driverID != nil {
		driver, err := s.driverRepo.GetByID(*driverID)
		if err != nil {
			return nil, err
		}
		if driver == nil {
			return nil, ErrDriverNotFound
		}
	}
	if err := s.orderRepo.AssignDriver(order.ID, driverID); err != nil {
		return nil, err
	}
	order.DriverID = driverID
	return order, nil
}

// Delete 删除配送订单
func (s *OrderAdminService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.orderRepo.Delete(id)
}

func parseDistance(raw string) (models.Distance, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.NewDistanceFromDecimal(decimal.Zero), nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return models.Distance{}, err
	}
	return models.NewDistanceFromDecimal(d), nil
}
