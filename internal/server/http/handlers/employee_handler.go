package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pressdesk/internal/server/http/dto"
)

// EmployeeHandler serves the staff directory.
type EmployeeHandler struct {
	facade EmployeeFacade
}

// NewEmployeeHandler constructs EmployeeHandler.
func NewEmployeeHandler(facade EmployeeFacade) *EmployeeHandler {
	return &EmployeeHandler{facade: facade}
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.facade.Employees(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp := make([]dto.Employee, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, dto.FromEmployee(e))
	}
	c.JSON(http.StatusOK, resp)
}
