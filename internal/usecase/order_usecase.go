package usecase

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

// 注文時点の配送先スナップショット
type ShippingAddressInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type PlaceOrderInput struct {
	ShippingAddress ShippingAddressInput
	PaymentMethod   string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
}

type OrderItemOutput struct {
	VariantID   int64   `json:"variant_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int64   `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

type StatusHistoryOutput struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderOutput struct {
	ID            int64                 `json:"id"`
	UserID        int64                 `json:"user_id"`
	OrderNumber   string                `json:"order_number"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"payment_status"`
	TotalAmount   float64               `json:"total_amount"`
	CreatedAt     time.Time             `json:"created_at"`
	Items         []OrderItemOutput     `json:"items"`
	History       []StatusHistoryOutput `json:"history,omitempty"`
}

// ORD-<ミリ秒>-<乱数サフィックス>。衝突確率は無視できる扱いで予約はしない
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

func roundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}

// PlaceOrder は注文確定のコア。
// カート読取→在庫減算→注文作成→カートクリア→履歴追記を1トランザクションで行う。
// どこかで失敗したら全部ロールバック
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateShippingAddress(in.ShippingAddress); err != nil {
		return OrderOutput{}, err
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "payment_method required")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カート明細取得
		cartItems, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		//在庫を確定時に再チェックして減らす
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total float64 = 0

		for _, ci := range cartItems {
			v, err := r.Variants().FindByID(ctx, ci.VariantID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid cart item")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			p, err := r.Products().FindByID(ctx, v.ProductID)
			if err == repo.ErrNotFound || (err == nil && !p.IsActive) {
				return NewHTTPError(http.StatusBadRequest, "invalid cart item")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//在庫減算（足りないなら false）。
			//読み取りと同じトランザクションなので最後の1個の取り合いでも売り越さない
			ok, err := r.Inventory().DecrementStockIfAvailable(ctx, ci.VariantID, ci.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("insufficient stock: %s (%s)", p.Name, v.Size))
			}

			//スナップショット
			unit := v.EffectivePrice()
			lineTotal := roundAmount(unit * float64(ci.Quantity))
			orderItems = append(orderItems, model.OrderItem{
				VariantID:           ci.VariantID,
				ProductNameSnapshot: p.Name,
				SizeSnapshot:        v.Size,
				ColorSnapshot:       v.Color,
				UnitPrice:           unit,
				Quantity:            ci.Quantity,
				TotalPrice:          lineTotal,
			})

			total += lineTotal
		}

		// 注文作成。total_amountはここで確定、以後再計算しない
		now := time.Now()
		order := model.Order{
			UserID:             userID,
			OrderNumber:        newOrderNumber(now),
			Status:             model.OrderStatusPending,
			PaymentStatus:      model.PaymentStatusPending,
			PaymentMethod:      strings.TrimSpace(in.PaymentMethod),
			TotalAmount:        roundAmount(total),
			CustomerName:       strings.TrimSpace(in.CustomerName),
			CustomerPhone:      strings.TrimSpace(in.CustomerPhone),
			CustomerEmail:      strings.TrimSpace(in.CustomerEmail),
			ShippingFirstName:  in.ShippingAddress.FirstName,
			ShippingLastName:   in.ShippingAddress.LastName,
			ShippingStreet:     in.ShippingAddress.Street,
			ShippingCity:       in.ShippingAddress.City,
			ShippingState:      in.ShippingAddress.State,
			ShippingPostalCode: in.ShippingAddress.PostalCode,
			ShippingCountry:    in.ShippingAddress.Country,
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートを空にする
		if err := r.CartItems().DeleteByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//履歴追記
		if err := r.StatusHistory().Create(ctx, model.OrderStatusHistory{
			OrderID: orderID,
			Status:  model.OrderStatusPending,
			Note:    "Order placed",
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, orderItems, nil)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func validateShippingAddress(a ShippingAddressInput) error {
	required := map[string]string{
		"first_name":  a.FirstName,
		"last_name":   a.LastName,
		"street":      a.Street,
		"city":        a.City,
		"postal_code": a.PostalCode,
		"country":     a.Country,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("shipping %s required", field))
		}
	}
	return nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByUserID(ctx, userID, 1, 50)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items, nil))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// 注文詳細。本人か管理者だけ見られる
func (u *OrderUsecase) GetOrderDetail(ctx context.Context, userID int64, role model.Role, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID && role != model.RoleAdmin {
			return NewHTTPError(http.StatusForbidden, "forbidden")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		history, err := r.StatusHistory().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items, history)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem, history []model.OrderStatusHistory) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			VariantID:   it.VariantID,
			ProductName: it.ProductNameSnapshot,
			Size:        it.SizeSnapshot,
			Color:       it.ColorSnapshot,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			TotalPrice:  it.TotalPrice,
		})
	}

	var outHistory []StatusHistoryOutput
	for _, h := range history {
		outHistory = append(outHistory, StatusHistoryOutput{
			Status:    string(h.Status),
			Note:      h.Note,
			CreatedAt: h.CreatedAt,
		})
	}

	return OrderOutput{
		ID:            o.ID,
		UserID:        o.UserID,
		OrderNumber:   o.OrderNumber,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		TotalAmount:   o.TotalAmount,
		CreatedAt:     o.CreatedAt,
		Items:         outItems,
		History:       outHistory,
	}
}
