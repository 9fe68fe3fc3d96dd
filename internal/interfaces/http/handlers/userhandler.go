package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"revu/internal/application/user/usecases"
	"revu/internal/interfaces/http/middleware"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type UserHandler struct {
	listUsersUseCase usecases.ListUsersExecutor
	logger           logger.Interface
}

func NewUserHandler(listUsersUC usecases.ListUsersExecutor, logger logger.Interface) *UserHandler {
	return &UserHandler{
		listUsersUseCase: listUsersUC,
		logger:           logger,
	}
}

type userResponse struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// List returns every other account, for picking who to follow.
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.listUsersUseCase.Execute(c.Request.Context(), usecases.ListUsersQuery{
		ExcludeUserID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users := make([]userResponse, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, userResponse{
			UserID:    u.UserID,
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"users": users})
}
