package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/usecase/category"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	createUseCase  *category.CreateCategoryUseCase
	updateUseCase  *category.UpdateCategoryUseCase
	deleteUseCase  *category.DeleteCategoryUseCase
	listUseCase    *category.ListCategoriesUseCase
	reorderUseCase *category.ReorderCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	reorderUseCase *category.ReorderCategoriesUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		listUseCase:    listUseCase,
		reorderUseCase: reorderUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	categories := make([]dto.CategoryResponseDTO, len(output.Categories))
	for i, cat := range output.Categories {
		categories[i] = dto.ToCategoryResponse(cat)
	}
	ctx.JSON(http.StatusOK, dto.CategoryListResponseDTO{Categories: categories})
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name:  req.Name,
		Type:  entity.CategoryType(req.Type),
		Emoji: req.Emoji,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PUT /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID"})
		return
	}
	var req dto.CategoryUpdateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		ID:    id,
		Name:  req.Name,
		Emoji: req.Emoji,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID"})
		return
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{ID: id}); err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Reorder handles POST /categories/reorder requests.
func (c *CategoryController) Reorder(ctx *gin.Context) {
	var req dto.CategoryReorderRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}
	firstID, err := uuid.Parse(req.FirstID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid first_id"})
		return
	}
	secondID, err := uuid.Parse(req.SecondID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid second_id"})
		return
	}

	output, err := c.reorderUseCase.Execute(ctx.Request.Context(), category.ReorderCategoriesInput{
		FirstID:  firstID,
		SecondID: secondID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	categories := make([]dto.CategoryResponseDTO, len(output.Categories))
	for i, cat := range output.Categories {
		categories[i] = dto.ToCategoryResponse(cat)
	}
	ctx.JSON(http.StatusOK, dto.CategoryListResponseDTO{Categories: categories})
}
