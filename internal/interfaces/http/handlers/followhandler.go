package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/application/follow/usecases"
	"revu/internal/interfaces/http/middleware"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type FollowHandler struct {
	followUseCase   usecases.FollowUserExecutor
	unfollowUseCase usecases.UnfollowUserExecutor
	listUseCase     usecases.ListFollowsExecutor
	logger          logger.Interface
}

func NewFollowHandler(
	followUC usecases.FollowUserExecutor,
	unfollowUC usecases.UnfollowUserExecutor,
	listUC usecases.ListFollowsExecutor,
	logger logger.Interface,
) *FollowHandler {
	return &FollowHandler{
		followUseCase:   followUC,
		unfollowUseCase: unfollowUC,
		listUseCase:     listUC,
		logger:          logger,
	}
}

type FollowRequest struct {
	Username string `json:"username" binding:"required"`
}

// Create subscribes the caller to another user's posts.
func (h *FollowHandler) Create(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.followUseCase.Execute(c.Request.Context(), usecases.FollowUserCommand{
		FollowerID: middleware.UserID(c),
		Username:   req.Username,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "follow created")
}

// Delete severs a follow edge by ID. Only the follower may do this.
func (h *FollowHandler) Delete(c *gin.Context) {
	edgeID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.unfollowUseCase.Execute(c.Request.Context(), usecases.UnfollowUserCommand{
		EdgeID:  edgeID,
		ActorID: middleware.UserID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "follow removed", nil)
}

// List shows who the caller follows and who follows them.
func (h *FollowHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListFollowsQuery{
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
