package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inatfood/pos-backend/kds"
	"github.com/inatfood/pos-backend/middlewares"
	"github.com/inatfood/pos-backend/models"
	"github.com/inatfood/pos-backend/utils"
)

var errOrderNotFound = errors.New("order not found")

type OrderController struct {
	DB  *gorm.DB
	Hub *kds.Hub
}

func NewOrderController(db *gorm.DB, hub *kds.Hub) *OrderController {
	return &OrderController{DB: db, Hub: hub}
}

type createOrderRequest struct {
	Items       []models.OrderItem `json:"items"`
	TotalPrice  float64            `json:"totalPrice"`
	PrepStation string             `json:"prepStation"`
}

// CreateOrder places a new order: the next order number is drawn from the
// durable sequence, the aggregate is persisted as one unit, and only then
// is new_order broadcast to the station room. A broadcast that reaches
// nobody is fine; displays catch up through /orders/active-for-kds.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondFail(c, http.StatusUnauthorized, errors.New("user not logged in"))
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{
		WaitressID:  user.ID,
		Items:       req.Items,
		TotalPrice:  req.TotalPrice,
		Status:      models.StatusPending,
		PrepStation: req.PrepStation,
	}
	if err := order.Validate(); err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}

	// The increment is durable on its own: if persisting the order fails
	// below, the number is burnt rather than reused.
	number, err := models.NextSequence(oc.DB, models.SequenceOrderNumber)
	if err != nil {
		utils.RespondFail(c, http.StatusServiceUnavailable, fmt.Errorf("order number unavailable: %w", err))
		return
	}
	order.OrderNumber = number

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	order.Waitress = user

	utils.InfoLogger.Printf("broadcasting new_order #%d to room %q", order.OrderNumber, order.PrepStation)
	oc.Hub.EmitToRooms(kds.EventNewOrder, order, order.PrepStation)

	utils.RespondData(c, http.StatusCreated, order)
}

// GetMyActiveOrders lists the caller's own open tickets, newest first.
func (oc *OrderController) GetMyActiveOrders(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondFail(c, http.StatusUnauthorized, errors.New("user not logged in"))
		return
	}

	var orders []models.Order
	if err := oc.DB.
		Preload("Items.SelectedAddons").
		Preload("Items").
		Where("waitress_id = ? AND status IN ?", user.ID, models.ActiveStatuses).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondList(c, http.StatusOK, len(orders), orders)
}

// GetActiveKdsOrders lists open tickets for the caller's station, oldest
// first so the display works the queue front to back. The station is the
// caller's own role: Kitchen accounts see the Kitchen queue, Juice Bar
// accounts the Juice Bar queue.
func (oc *OrderController) GetActiveKdsOrders(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondFail(c, http.StatusUnauthorized, errors.New("user not logged in"))
		return
	}
	if !models.IsStation(user.Role) {
		utils.RespondFail(c, http.StatusForbidden, errors.New("only station accounts have a display queue"))
		return
	}

	var orders []models.Order
	if err := oc.DB.
		Preload("Items.SelectedAddons").
		Preload("Items").
		Preload("Waitress").
		Where("prep_station = ? AND status IN ?", user.Role, models.ActiveStatuses).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, orders)
}

// UpdateOrderStatus sets an order's status and tells every connected
// client. No transition table is enforced: staff may move a ticket to any
// status, including straight from Pending to Ready.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidStatus(req.Status) {
		utils.RespondFail(c, http.StatusBadRequest, fmt.Errorf("invalid order status %q", req.Status))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items.SelectedAddons").Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondFail(c, http.StatusNotFound, errOrderNotFound)
		} else {
			utils.RespondFail(c, http.StatusInternalServerError, err)
		}
		return
	}

	order.Status = req.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	oc.Hub.EmitAll(kds.EventOrderStatusUpdated, gin.H{
		"orderId":    order.ID,
		"newStatus":  order.Status,
		"waitressId": order.WaitressID,
	})

	utils.RespondData(c, http.StatusOK, order)
}

// CompleteOrderPayment records the payment and closes the order. No event
// is broadcast on this path; waitress views refresh on their next read.
func (oc *OrderController) CompleteOrderPayment(c *gin.Context) {
	var req struct {
		PaymentMethod string  `json:"paymentMethod"`
		AmountPaid    float64 `json:"amountPaid"`
		Tip           float64 `json:"tip"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		utils.RespondFail(c, http.StatusBadRequest, fmt.Errorf("invalid payment method %q", req.PaymentMethod))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items.SelectedAddons").Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondFail(c, http.StatusNotFound, errOrderNotFound)
		} else {
			utils.RespondFail(c, http.StatusInternalServerError, err)
		}
		return
	}

	order.PaymentMethod = &req.PaymentMethod
	order.AmountPaid = &req.AmountPaid
	order.Tip = req.Tip
	order.Status = models.StatusCompleted
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, order)
}
