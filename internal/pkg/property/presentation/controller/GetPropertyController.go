package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/property/persistence/repository/port"
)

type GetPropertyController struct {
	Repo repository.PropertyRepository
}

func NewGetPropertyController(repo repository.PropertyRepository) *GetPropertyController {
	return &GetPropertyController{Repo: repo}
}

func (h *GetPropertyController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h.Repo.GetProperty(c.Request.Context(), c.Param("id"))
		if err != nil {
			respond.Failure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"property": p})
	}
}
