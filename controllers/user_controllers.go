package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inatfood/pos-backend/middlewares"
	"github.com/inatfood/pos-backend/models"
	"github.com/inatfood/pos-backend/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

type userRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	PIN      string `json:"pin" binding:"required,len=4"`
	Role     string `json:"role"`
}

type authResponse struct {
	Status string      `json:"status"`
	Token  string      `json:"token"`
	Data   interface{} `json:"data"`
}

func sendToken(c *gin.Context, code int, user *models.User) {
	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(code, authResponse{
		Status: "success",
		Token:  token,
		Data:   gin.H{"user": user},
	})
}

// Signup creates an account and logs it in. Open so the very first Owner
// can create their account; staff are normally added via the Owner CRUD.
func (uc *UserController) Signup(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleWaitress
	}

	user := models.User{Name: req.Name, Username: req.Username, Role: role}
	if err := user.SetPIN(req.PIN); err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}

	sendToken(c, http.StatusCreated, &user)
}

func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		PIN      string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.PIN == "" {
		utils.RespondFail(c, http.StatusBadRequest, errors.New("please provide username and pin"))
		return
	}

	var user models.User
	if err := uc.DB.Where("username = ?", req.Username).First(&user).Error; err != nil || !user.CorrectPIN(req.PIN) {
		utils.RespondFail(c, http.StatusUnauthorized, errors.New("incorrect username or pin"))
		return
	}

	sendToken(c, http.StatusOK, &user)
}

// GetMe returns the caller's own profile; Protect already loaded it.
func (uc *UserController) GetMe(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondFail(c, http.StatusUnauthorized, errors.New("you are not logged in"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": user},
	})
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondList(c, http.StatusOK, len(users), users)
}

func (uc *UserController) GetUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondFail(c, http.StatusNotFound, errNoDocument)
		return
	}
	utils.RespondData(c, http.StatusOK, &user)
}

// CreateUser adds a staff member on behalf of the Owner. Unlike Signup it
// does not log the new account in.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleWaitress
	}

	user := models.User{Name: req.Name, Username: req.Username, Role: role}
	if err := user.SetPIN(req.PIN); err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondData(c, http.StatusCreated, &user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondFail(c, http.StatusNotFound, errNoDocument)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Username *string `json:"username"`
		PIN      *string `json:"pin"`
		Role     *string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.PIN != nil {
		if err := user.SetPIN(*req.PIN); err != nil {
			utils.RespondFail(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondFail(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondData(c, http.StatusOK, &user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondFail(c, http.StatusNotFound, errNoDocument)
		return
	}
	if err := uc.DB.Delete(&user).Error; err != nil {
		utils.RespondFail(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
