package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aosadchuk/library-catalog/internal/chat"
)

// ChatController proxies a single prompt to the chat-completion API.
type ChatController struct {
	client *chat.Client
}

// NewChatController creates a chat controller. A nil client means the API
// key was not configured at startup.
func NewChatController(client *chat.Client) *ChatController {
	return &ChatController{client: client}
}

// ChatRequest is the payload for a chat-proxy call.
type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// ChatResponse carries the upstream completion text.
type ChatResponse struct {
	Response string `json:"response"`
}

// Chat forwards the prompt upstream. Upstream failures are surfaced with
// the upstream's status code and body verbatim.
// POST /chat
func (cc *ChatController) Chat(c *gin.Context) {
	if cc.client == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "OPENAI_API_KEY is not set"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	completion, err := cc.client.Complete(c.Request.Context(), req.Prompt)
	if err != nil {
		var upstream *chat.UpstreamError
		if errors.As(err, &upstream) {
			c.String(upstream.StatusCode, "%s", upstream.Body)
			return
		}
		respondInternalError(c, err, "chat completion")
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Response: completion})
}
