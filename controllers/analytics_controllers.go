package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inatfood/pos-backend/models"
	"github.com/inatfood/pos-backend/utils"
)

// AnalyticsController aggregates completed-order sales for the Owner
// dashboard. Reports only ever read Completed orders, so the live order
// flow is never affected.
type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// periodStart resolves today/week/month to the report window start. Weeks
// start on Sunday.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "week":
		start := now.AddDate(0, 0, -int(now.Weekday()))
		return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

type itemSales struct {
	MenuItem          uint    `json:"menuItem"`
	NameAm            string  `json:"name_am"`
	NameEn            string  `json:"name_en"`
	TotalQuantitySold int     `json:"totalQuantitySold"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

type addonSales struct {
	NameAm            string  `json:"name_am"`
	NameEn            string  `json:"name_en"`
	TotalQuantitySold int     `json:"totalQuantitySold"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

func (ac *AnalyticsController) GetDashboardAnalytics(c *gin.Context) {
	start := periodStart(c.DefaultQuery("period", "today"), time.Now())

	var kpis struct {
		TotalSales  float64
		TotalOrders int64
	}
	if err := ac.DB.Raw(`
		SELECT COALESCE(SUM(total_price), 0) AS total_sales, COUNT(*) AS total_orders
		FROM orders
		WHERE status = ? AND created_at >= ?
	`, models.StatusCompleted, start).Scan(&kpis).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	var byWaitress []struct {
		Name       string
		TotalSales float64
	}
	ac.DB.Raw(`
		SELECT COALESCE(u.name, 'Unassigned') AS name, SUM(o.total_price) AS total_sales
		FROM orders o
		LEFT JOIN users u ON u.id = o.waitress_id
		WHERE o.status = ? AND o.created_at >= ?
		GROUP BY u.name
	`, models.StatusCompleted, start).Scan(&byWaitress)

	salesByWaitress := make(map[string]float64, len(byWaitress))
	for _, row := range byWaitress {
		salesByWaitress[row.Name] = row.TotalSales
	}

	var dailySales []struct {
		Date  string  `json:"date"`
		Sales float64 `json:"sales"`
	}
	ac.DB.Raw(`
		SELECT DATE(created_at) AS date, SUM(total_price) AS sales
		FROM orders
		WHERE status = ? AND created_at >= ?
		GROUP BY DATE(created_at)
		ORDER BY date
	`, models.StatusCompleted, start).Scan(&dailySales)

	var topItems []itemSales
	ac.DB.Raw(`
		SELECT oi.menu_item_id AS menu_item, MIN(oi.name_am) AS name_am, MIN(oi.name_en) AS name_en,
		       SUM(oi.quantity) AS total_quantity_sold,
		       SUM(oi.price * oi.quantity) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = ? AND o.created_at >= ?
		GROUP BY oi.menu_item_id
		ORDER BY total_quantity_sold DESC
		LIMIT 5
	`, models.StatusCompleted, start).Scan(&topItems)

	var topAddons []addonSales
	ac.DB.Raw(`
		SELECT a.name_am AS name_am, MIN(a.name_en) AS name_en,
		       SUM(oi.quantity) AS total_quantity_sold,
		       SUM(a.price * oi.quantity) AS total_revenue
		FROM order_item_addons a
		JOIN order_items oi ON oi.id = a.order_item_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = ? AND o.created_at >= ?
		GROUP BY a.name_am
		ORDER BY total_quantity_sold DESC
		LIMIT 5
	`, models.StatusCompleted, start).Scan(&topAddons)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"totalSales":      kpis.TotalSales,
			"totalOrders":     kpis.TotalOrders,
			"salesByWaitress": salesByWaitress,
			"dailySales":      dailySales,
			"topSoldItems":    topItems,
			"topSoldAddons":   topAddons,
		},
	})
}

func (ac *AnalyticsController) GetItemSalesAnalytics(c *gin.Context) {
	start := periodStart(c.DefaultQuery("period", "today"), time.Now())

	var data []itemSales
	if err := ac.DB.Raw(`
		SELECT oi.menu_item_id AS menu_item, MIN(oi.name_am) AS name_am, MIN(oi.name_en) AS name_en,
		       SUM(oi.quantity) AS total_quantity_sold,
		       SUM(oi.price * oi.quantity) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = ? AND o.created_at >= ?
		GROUP BY oi.menu_item_id
		ORDER BY total_quantity_sold DESC
	`, models.StatusCompleted, start).Scan(&data).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func (ac *AnalyticsController) GetAddonSalesAnalytics(c *gin.Context) {
	start := periodStart(c.DefaultQuery("period", "today"), time.Now())

	var data []addonSales
	if err := ac.DB.Raw(`
		SELECT a.name_am AS name_am, MIN(a.name_en) AS name_en,
		       SUM(oi.quantity) AS total_quantity_sold,
		       SUM(a.price * oi.quantity) AS total_revenue
		FROM order_item_addons a
		JOIN order_items oi ON oi.id = a.order_item_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = ? AND o.created_at >= ?
		GROUP BY a.name_am
		ORDER BY total_quantity_sold DESC
	`, models.StatusCompleted, start).Scan(&data).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

// GetWaitressSalesDetails drills into one waitress's item sales.
func (ac *AnalyticsController) GetWaitressSalesDetails(c *gin.Context) {
	start := periodStart(c.DefaultQuery("period", "today"), time.Now())

	var waitress models.User
	if err := ac.DB.Where("name = ?", c.Query("waitressName")).First(&waitress).Error; err != nil {
		utils.RespondFail(c, http.StatusNotFound, errors.New("waitress not found"))
		return
	}

	var data []itemSales
	if err := ac.DB.Raw(`
		SELECT oi.menu_item_id AS menu_item, MIN(oi.name_am) AS name_am, MIN(oi.name_en) AS name_en,
		       SUM(oi.quantity) AS total_quantity_sold,
		       SUM(oi.price * oi.quantity) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.waitress_id = ? AND o.status = ? AND o.created_at >= ?
		GROUP BY oi.menu_item_id
		ORDER BY total_quantity_sold DESC
	`, waitress.ID, models.StatusCompleted, start).Scan(&data).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

// ResetSalesAnalytics deletes every completed order. Active tickets are
// untouched.
func (ac *AnalyticsController) ResetSalesAnalytics(c *gin.Context) {
	result := ac.DB.Where("status = ?", models.StatusCompleted).Delete(&models.Order{})
	if result.Error != nil {
		utils.RespondFail(c, http.StatusInternalServerError, result.Error)
		return
	}

	utils.InfoLogger.Printf("sales analytics reset: %d completed orders deleted", result.RowsAffected)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "completed orders deleted successfully",
		"data":    gin.H{"deletedCount": result.RowsAffected},
	})
}
