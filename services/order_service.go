package services

import (
	"context"
	"errors"
	"time"

	"game-store-service/models"
	"game-store-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// legalTransitions is the order status state machine. DELIVERED and
// CANCELLED are terminal.
var legalTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusProcessing: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:    {models.OrderStatusDelivered, models.OrderStatusCancelled},
}

// initialPaymentStatus maps a payment method to the status an order starts
// in. Only the mock card flow is considered paid up front.
func initialPaymentStatus(method models.PaymentMethod) models.PaymentStatus {
	if method == models.PaymentMethodCard {
		return models.PaymentStatusPaid
	}
	return models.PaymentStatusPending
}

// OrderService handles checkout and order lifecycle.
type OrderService interface {
	Checkout(ctx context.Context, userID string, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError)
	GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError)
	ListOrders(ctx context.Context, page, limit int) ([]models.Order, int64, *ServiceError)
	ListUserOrders(ctx context.Context, userID string, page, limit int) ([]models.Order, int64, *ServiceError)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, *ServiceError)
}

type orderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	campaigns   CampaignService
	pricing     *PricingEngine
	vouchers    VoucherService
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	campaigns CampaignService,
	pricing *PricingEngine,
	vouchers VoucherService,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		campaigns:   campaigns,
		pricing:     pricing,
		vouchers:    vouchers,
		logger:      logger,
	}
}

// Checkout creates an order exactly once. Each line item is a denormalized
// snapshot of the product at its campaign-adjusted price; later edits or
// deletion of the product do not affect the order. Gift campaigns targeting
// a purchased product mint one voucher per line item. Stock is not touched
// here — the inventory ledger is the only stock mutator.
func (s *orderServiceImpl) Checkout(ctx context.Context, userID string, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError) {
	if len(req.Items) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "At least one item is required"}
	}

	now := time.Now()
	active, err := s.campaigns.ActiveCampaigns(ctx, now)
	if err != nil {
		s.logger.Error("Failed to load campaigns for checkout", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
	}

	var (
		items    []models.OrderItem
		total    float64
		vouchers []models.Voucher
	)
	for _, item := range req.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &ServiceError{StatusCode: 404, Message: "Product not found: " + item.ProductID}
			}
			s.logger.Error("Failed to load product for checkout", zap.String("product_id", item.ProductID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
		}

		quote := s.pricing.ComputePrice(product, active)
		subtotal := quote.FinalPrice * float64(item.Quantity)
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: quote.FinalPrice,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
		total += subtotal

		if quote.GiftCampaign != nil {
			voucher, err := s.vouchers.MintForCampaign(ctx, quote.GiftCampaign, userID)
			if err != nil {
				s.logger.Error("Failed to mint voucher", zap.String("campaign_id", quote.GiftCampaign.ID), zap.Error(err))
			} else if voucher != nil {
				vouchers = append(vouchers, *voucher)
			}
		}
	}

	order := &models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         items,
		TotalAmount:   total,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: initialPaymentStatus(req.PaymentMethod),
		OrderStatus:   models.OrderStatusProcessing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.TotalAmount),
		zap.String("payment_method", string(order.PaymentMethod)),
		zap.Int("vouchers", len(vouchers)),
	)
	return &models.CheckoutResponse{Order: order, Vouchers: vouchers}, nil
}

// GetOrder retrieves an order by id.
func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch order"}
	}
	return order, nil
}

// ListOrders returns paginated orders for the admin console.
func (s *orderServiceImpl) ListOrders(ctx context.Context, page, limit int) ([]models.Order, int64, *ServiceError) {
	orders, total, err := s.orderRepo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: 500, Message: "Failed to list orders"}
	}
	return orders, total, nil
}

// ListUserOrders returns paginated orders owned by a user.
func (s *orderServiceImpl) ListUserOrders(ctx context.Context, userID string, page, limit int) ([]models.Order, int64, *ServiceError) {
	orders, total, err := s.orderRepo.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		s.logger.Error("Failed to list user orders", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: 500, Message: "Failed to list orders"}
	}
	return orders, total, nil
}

// UpdateStatus advances an order along the status state machine. Illegal
// transitions are rejected with 409; order status is the only field admins
// can mutate after creation.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	if !transitionAllowed(order.OrderStatus, status) {
		return nil, &ServiceError{
			StatusCode: 409,
			Message:    "Illegal status transition from " + string(order.OrderStatus) + " to " + string(status),
		}
	}

	order.OrderStatus = status
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order status", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	s.logger.Info("Order status updated", zap.String("id", id), zap.String("status", string(status)))
	return order, nil
}

func transitionAllowed(from, to models.OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
