package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"revu/internal/application/ticket/usecases"
	"revu/internal/interfaces/http/middleware"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

// maxImageUploadBytes caps how much of an uploaded image is read into memory.
const maxImageUploadBytes = 10 << 20

type TicketHandler struct {
	createUseCase usecases.CreateTicketExecutor
	updateUseCase usecases.UpdateTicketExecutor
	deleteUseCase usecases.DeleteTicketExecutor
	getUseCase    usecases.GetTicketExecutor
	logger        logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	updateUC usecases.UpdateTicketExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	getUC usecases.GetTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		getUseCase:    getUC,
		logger:        logger,
	}
}

type ticketResponse struct {
	TicketID  uint      `json:"ticket_id"`
	Title     string    `json:"title"`
	ImagePath string    `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// readImageUpload pulls the optional "image" part out of a multipart form.
// A request without an image part returns (nil, nil).
func readImageUpload(c *gin.Context) (*usecases.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		return nil, err
	}

	return &usecases.ImageUpload{Data: data, Filename: fileHeader.Filename}, nil
}

// Create creates a review request, optionally with a cover image.
func (h *TicketHandler) Create(c *gin.Context) {
	image, err := readImageUpload(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid image upload: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		AuthorID:    middleware.UserID(c),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Image:       image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	body := ticketResponse{
		TicketID:  result.TicketID,
		Title:     result.Title,
		ImagePath: result.ImagePath,
		CreatedAt: result.CreatedAt,
	}
	if result.ImageWarning != "" {
		utils.SuccessResponseWithWarning(c, http.StatusCreated, result.ImageWarning, body)
		return
	}
	utils.CreatedResponse(c, body, "ticket created")
}

// Get returns one ticket with its reviews.
func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update edits a ticket's text and optionally replaces its image.
func (h *TicketHandler) Update(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	image, err := readImageUpload(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid image upload: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		ActorID:     middleware.UserID(c),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Image:       image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	body := ticketResponse{
		TicketID:  result.TicketID,
		Title:     result.Title,
		ImagePath: result.ImagePath,
		CreatedAt: result.CreatedAt,
	}
	if result.ImageWarning != "" {
		utils.SuccessResponseWithWarning(c, http.StatusOK, result.ImageWarning, body)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "ticket updated", body)
}

// Delete removes a ticket, its image blob and its reviews.
func (h *TicketHandler) Delete(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
		ActorID:  middleware.UserID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted", nil)
}
