package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripmood/internal/models/request_models"
	"tripmood/internal/services"
	"tripmood/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// GoogleLogin godoc
// @Summary Login with a Google identity
// @Description Upsert the Google account and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.GoogleLoginRequest true "Google identity payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/google [post]
func (a *AccountController) GoogleLogin(c *gin.Context) {
	var req request_models.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.LoginWithGoogle(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// SignUp godoc
// @Summary Create an account with email and password
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AccountController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Account created successfully")
}

// Login godoc
// @Summary Login with email and password
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// GetProfile godoc
// @Summary Current account profile
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/user/profile [get]
func (a *AccountController) GetProfile(c *gin.Context) {
	accountID, _ := callerIdentity(c)
	profile, err := a.accountService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// ListUsers godoc
// @Summary List accounts
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/users [get]
func (a *AccountController) ListUsers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	users, err := a.accountService.ListAccounts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Accounts fetched successfully")
}

// UpdateRole godoc
// @Summary Change an account role
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.UpdateRoleRequest true "Role payload"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/users/{id}/role [put]
func (a *AccountController) UpdateRole(c *gin.Context) {
	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	req := request_models.UpdateRoleRequest{
		AccountID: c.Param("id"),
		Role:      body.Role,
	}
	if err := a.accountService.UpdateRole(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Role updated successfully")
}

// GetStats godoc
// @Summary Aggregate counts for the admin dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/stats [get]
func (a *AccountController) GetStats(c *gin.Context) {
	stats, err := a.accountService.AdminStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}
