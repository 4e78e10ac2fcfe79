package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"antique-assistant/internal/chat"
	"antique-assistant/pkg/response"
)

// chatRequest mirrors the frontend contract.
type chatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id"`
}

// chatResponse is the wire shape the frontend consumes. Degraded turns still
// answer 200 with success=false; provider trouble is never a transport error.
type chatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Source   string `json:"source,omitempty"`
}

// Chat handles one chat turn.
// @Summary     Chat
// @Description Send a message to the appraisal assistant and get a reply
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       request body chatRequest true "Message and optional user ID"
// @Success     200 {object} chatResponse "Reply from the remote model or the rule-based fallback"
// @Router      /api/chat [post]
func (h *handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.HandleMessage(c.Request.Context(), chat.HandleMessageInput{
		UserID:  req.UserID,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(c.Request.Context(), "Chat turn failed: %v", err)
		c.JSON(http.StatusOK, chatResponse{Success: false, Response: chat.ApologyReply})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Success:  result.Success,
		Response: result.Response,
		Source:   string(result.Source),
	})
}
