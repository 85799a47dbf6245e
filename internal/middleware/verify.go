package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"github.com/yukikurage/slack-task-bot/internal/apperrors"
)

// VerifySlackSignature authenticates inbound Slack webhooks against the
// signing secret. The body is consumed for the HMAC check and restored for
// the handlers behind it.
func VerifySlackSignature(signingSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			apperrors.BadRequest(c, "Failed to read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		verifier, err := slack.NewSecretsVerifier(c.Request.Header, signingSecret)
		if err != nil {
			apperrors.Unauthorized(c, "Missing or stale Slack signature")
			c.Abort()
			return
		}

		if _, err := verifier.Write(body); err != nil {
			apperrors.InternalError(c, "")
			c.Abort()
			return
		}
		if err := verifier.Ensure(); err != nil {
			apperrors.Unauthorized(c, "Invalid Slack signature")
			c.Abort()
			return
		}

		c.Next()
	}
}
