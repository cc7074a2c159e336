package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inatfood/pos-backend/models"
	"github.com/inatfood/pos-backend/services"
	"github.com/inatfood/pos-backend/utils"
)

type MenuItemController struct {
	DB         *gorm.DB
	Cloudinary *services.CloudinaryService
}

func NewMenuItemController(db *gorm.DB, cloudinary *services.CloudinaryService) *MenuItemController {
	return &MenuItemController{DB: db, Cloudinary: cloudinary}
}

// GetAllMenuItems always resolves the category and the available add-ons,
// so the ordering UI gets station and add-on prices in one read.
func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	GetAll[models.MenuItem](mc.DB, "Category", "AvailableAddons", "Recipe")(c)
}

func (mc *MenuItemController) GetMenuItem(c *gin.Context) {
	GetOne[models.MenuItem](mc.DB, "Category", "AvailableAddons", "Recipe")(c)
}

// GetCloudinarySignature signs upload parameters for a direct frontend
// upload without exposing the API secret.
func (mc *MenuItemController) GetCloudinarySignature(c *gin.Context) {
	var params map[string]string
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}

	signature, err := mc.Cloudinary.SignRequest(params)
	if err != nil {
		utils.ErrorLogger.Printf("cloudinary signature: %v", err)
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"signature": signature})
}

// UploadImage accepts a base64 image and proxies it to the image host.
func (mc *MenuItemController) UploadImage(c *gin.Context) {
	var req struct {
		File string `json:"file"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.File == "" {
		utils.RespondFail(c, http.StatusBadRequest, errors.New("no image file provided"))
		return
	}

	result, err := mc.Cloudinary.Upload(c.Request.Context(), req.File)
	if err != nil {
		utils.ErrorLogger.Printf("cloudinary upload: %v", err)
		utils.RespondFail(c, http.StatusInternalServerError, errors.New("image upload failed due to a server error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"url":       result.SecureURL,
		"public_id": result.PublicID,
	})
}
