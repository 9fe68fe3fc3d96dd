package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/review/usecases"
	"revu/internal/interfaces/http/middleware"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type ReviewHandler struct {
	createUseCase           usecases.CreateReviewExecutor
	createWithTicketUseCase usecases.CreateReviewWithTicketExecutor
	updateUseCase           usecases.UpdateReviewExecutor
	deleteUseCase           usecases.DeleteReviewExecutor
	logger                  logger.Interface
}

func NewReviewHandler(
	createUC usecases.CreateReviewExecutor,
	createWithTicketUC usecases.CreateReviewWithTicketExecutor,
	updateUC usecases.UpdateReviewExecutor,
	deleteUC usecases.DeleteReviewExecutor,
	logger logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		createUseCase:           createUC,
		createWithTicketUseCase: createWithTicketUC,
		updateUseCase:           updateUC,
		deleteUseCase:           deleteUC,
		logger:                  logger,
	}
}

type CreateReviewRequest struct {
	Rating   *int   `json:"rating" binding:"required"`
	Headline string `json:"headline" binding:"required"`
	Body     string `json:"body"`
}

type UpdateReviewRequest struct {
	Rating   *int   `json:"rating" binding:"required"`
	Headline string `json:"headline" binding:"required"`
	Body     string `json:"body"`
}

// Create posts a review in reply to an existing ticket.
func (h *ReviewHandler) Create(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateReviewCommand{
		AuthorID: middleware.UserID(c),
		TicketID: ticketID,
		Rating:   *req.Rating,
		Headline: req.Headline,
		Body:     req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "review created")
}

// CreateWithTicket creates a ticket and its review in one multipart request,
// for reviewing a work nobody has asked about.
func (h *ReviewHandler) CreateWithTicket(c *gin.Context) {
	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid rating")
		return
	}

	image, err := readImageUpload(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid image upload: "+err.Error())
		return
	}

	result, err := h.createWithTicketUseCase.Execute(c.Request.Context(), usecases.CreateReviewWithTicketCommand{
		AuthorID:          middleware.UserID(c),
		TicketTitle:       c.PostForm("title"),
		TicketDescription: c.PostForm("description"),
		TicketImage:       image,
		Rating:            rating,
		Headline:          c.PostForm("headline"),
		Body:              c.PostForm("body"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.ImageWarning != "" {
		utils.SuccessResponseWithWarning(c, http.StatusCreated, result.ImageWarning, result)
		return
	}
	utils.CreatedResponse(c, result, "review created")
}

// Update edits an existing review.
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateReviewCommand{
		ReviewID: reviewID,
		ActorID:  middleware.UserID(c),
		Rating:   *req.Rating,
		Headline: req.Headline,
		Body:     req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "review updated", result)
}

// Delete removes a review.
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteReviewCommand{
		ReviewID: reviewID,
		ActorID:  middleware.UserID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "review deleted", nil)
}
