package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/userhub/pkg/response"
)

type HealthHandler struct {
	AppName string
}

func NewHealthHandler(appName string) *HealthHandler {
	return &HealthHandler{AppName: appName}
}

func (h *HealthHandler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok", "app": h.AppName}, "healthy")
}
