package models

import "time"

// Preparation stations. Station strings are compared verbatim, so these
// are the canonical spellings used by categories and broadcast rooms.
const (
	StationKitchen  = "Kitchen"
	StationJuiceBar = "Juice Bar"
)

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	NameAm      string    `gorm:"type:varchar(255);unique;not null" json:"name_am"`
	NameEn      string    `gorm:"type:varchar(255);unique;not null" json:"name_en"`
	PrepStation string    `gorm:"type:varchar(50);not null" json:"prepStation"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Ingredient struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	NameAm        string    `gorm:"type:varchar(255);unique;not null" json:"name_am"`
	NameEn        string    `gorm:"type:varchar(255);unique;not null" json:"name_en"`
	PurchasePrice float64   `gorm:"type:decimal(10,2);not null" json:"purchasePrice"`
	PurchaseUnit  string    `gorm:"type:varchar(50);not null" json:"purchaseUnit"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Addon struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	NameAm             string      `gorm:"type:varchar(255);not null" json:"name_am"`
	NameEn             string      `gorm:"type:varchar(255);unique;not null" json:"name_en"`
	Price              float64     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	LinkedIngredientID *uint       `json:"linkedIngredient,omitempty"`
	LinkedIngredient   *Ingredient `gorm:"foreignKey:LinkedIngredientID" json:"-"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

type StockItem struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	NameAm            string    `gorm:"type:varchar(255);unique;not null" json:"name_am"`
	NameEn            string    `gorm:"type:varchar(255);unique;not null" json:"name_en"`
	Quantity          float64   `gorm:"not null;default:0" json:"quantity"`
	UnitAm            string    `gorm:"type:varchar(50);not null" json:"unit_am"`
	UnitEn            string    `gorm:"type:varchar(50);not null" json:"unit_en"`
	LowStockThreshold float64   `gorm:"default:10" json:"lowStockThreshold"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type MenuItem struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	NameAm          string       `gorm:"type:varchar(255);unique;not null" json:"name_am"`
	NameEn          string       `gorm:"type:varchar(255);unique;not null" json:"name_en"`
	Price           float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID      uint         `gorm:"not null" json:"categoryId"`
	Category        *Category    `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Image           string       `gorm:"type:varchar(512);not null" json:"image"`
	IsAvailable     bool         `gorm:"default:true" json:"isAvailable"`
	IsFasting       bool         `gorm:"default:false" json:"isFasting"`
	Recipe          []RecipeItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"recipe"`
	AvailableAddons []Addon      `gorm:"many2many:menu_item_addons" json:"availableAddons"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// RecipeItem links a menu item to the ingredients it consumes.
type RecipeItem struct {
	ID           uint        `gorm:"primaryKey" json:"-"`
	MenuItemID   uint        `gorm:"not null;index" json:"-"`
	IngredientID uint        `gorm:"not null" json:"ingredient"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID" json:"-"`
	Quantity     float64     `gorm:"not null" json:"quantity"`
	Unit         string      `gorm:"type:varchar(50);not null" json:"unit"`
}
