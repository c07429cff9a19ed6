package controllers

import (
	"net/http"

	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	expenses *services.ExpenseService
}

func NewExpenseController(expenses *services.ExpenseService) *ExpenseController {
	return &ExpenseController{expenses: expenses}
}

// ListExpenses returns expenses newest first, optionally within ?start=&end=
func (ec *ExpenseController) ListExpenses(c *gin.Context) {
	list, err := ec.expenses.List(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve expenses")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var input services.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	e, err := ec.expenses.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, e)
}

// UploadReceipt attaches a compressed receipt photo to an expense
func (ec *ExpenseController) UploadReceipt(c *gin.Context) {
	image, ok := readImage(c)
	if !ok {
		return
	}
	e, err := ec.expenses.AttachReceipt(c.Request.Context(), c.Param("id"), image)
	if err != nil {
		respondServiceError(c, err, "Failed to attach receipt")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	if err := ec.expenses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete expense")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
