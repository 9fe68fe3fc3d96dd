package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/application/feed/usecases"
	"revu/internal/interfaces/http/middleware"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type FeedHandler struct {
	feedUseCase     usecases.GetActivityFeedExecutor
	ownPostsUseCase usecases.GetOwnPostsExecutor
	logger          logger.Interface
}

func NewFeedHandler(
	feedUC usecases.GetActivityFeedExecutor,
	ownPostsUC usecases.GetOwnPostsExecutor,
	logger logger.Interface,
) *FeedHandler {
	return &FeedHandler{
		feedUseCase:     feedUC,
		ownPostsUseCase: ownPostsUC,
		logger:          logger,
	}
}

// Feed returns the caller's home feed, newest first.
func (h *FeedHandler) Feed(c *gin.Context) {
	result, err := h.feedUseCase.Execute(c.Request.Context(), usecases.GetActivityFeedQuery{
		ViewerID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Posts returns only the caller's own posts, newest first.
func (h *FeedHandler) Posts(c *gin.Context) {
	result, err := h.ownPostsUseCase.Execute(c.Request.Context(), usecases.GetOwnPostsQuery{
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
