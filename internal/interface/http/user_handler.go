package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/yudhapratama/userhub/internal/application"
	"github.com/yudhapratama/userhub/internal/domain/entity"
	"github.com/yudhapratama/userhub/pkg/response"
	"github.com/yudhapratama/userhub/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Search *userapp.UserSearchService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, search *userapp.UserSearchService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Search: search, Logger: logger}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
}

// updateUserRequest carries pointers so an absent field can be told apart
// from a field deliberately set to its zero value.
type updateUserRequest struct {
	Email  *string `json:"email" binding:"omitempty,email"`
	Phone  *string `json:"phone" binding:"omitempty,phone"`
	Status *string `json:"status" binding:"omitempty,oneof=enabled disabled"`
}

type userView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

const viewTimeLayout = "2006-01-02 15:04:05"

func toUserView(u *entity.User) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     maskPhone(u.Phone),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.Format(viewTimeLayout),
		UpdatedAt: u.UpdatedAt.Format(viewTimeLayout),
	}
}

// maskPhone hides the middle digits of a phone number for display.
func maskPhone(phone string) string {
	if len(phone) < 8 {
		return phone
	}
	return phone[:3] + "****" + phone[len(phone)-4:]
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), userapp.CreateUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		h.writeError(c, err, "failed to create user")
		return
	}
	response.Success(c, http.StatusCreated, toUserView(u), "user created")
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	cmd := userapp.UpdateUserCommand{
		ID:    c.Param("id"),
		Email: req.Email,
		Phone: req.Phone,
	}
	if req.Status != nil {
		st := entity.Status(*req.Status)
		cmd.Status = &st
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, err, "failed to update user")
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "user updated")
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to get user")
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "user")
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.GetAllUsers(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "failed to list users")
		return
	}
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	response.Success(c, http.StatusOK, views, "users")
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "user deleted")
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "missing query parameter q", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Search.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("user search failed")
		response.Error(c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}

// writeError maps business errors onto HTTP statuses; anything else is an
// infrastructure failure and surfaces as a 500.
func (h *UserHandler) writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, userapp.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, userapp.ErrDuplicateUsername):
		response.Error(c, http.StatusConflict, "username already exists", nil)
	default:
		h.Logger.WithError(err).Error(msg)
		response.Error(c, http.StatusInternalServerError, msg, nil)
	}
}
