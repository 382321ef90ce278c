package oauth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"createscale/utils"
)

// callbackPath is registered with the OAuth providers as part of the
// redirect URI.
const callbackPath = "/oauth/callback"

// CatchRedirect runs a short-lived loopback listener on 127.0.0.1:port and
// waits for the provider to redirect the browser back with an authorization
// code. A state mismatch rejects the redirect; the browser tab gets a small
// confirmation page either way. The listener is torn down as soon as one
// redirect lands or ctx expires.
func CatchRedirect(ctx context.Context, port int, expectState string) (string, error) {
	logger := utils.GetLogger()

	type outcome struct {
		code string
		err  error
	}
	results := make(chan outcome, 1)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET(callbackPath, func(c *gin.Context) {
		code := c.Query("code")
		state := c.Query("state")

		switch {
		case state != expectState:
			c.String(http.StatusBadRequest, "Sign-in rejected: state mismatch. You can close this tab.")
			results <- outcome{err: errors.New("oauth state mismatch")}
		case code == "":
			reason := c.Query("error_description")
			if reason == "" {
				reason = c.DefaultQuery("error", "no authorization code in redirect")
			}
			c.String(http.StatusBadRequest, "Sign-in failed: %s. You can close this tab.", reason)
			results <- outcome{err: fmt.Errorf("oauth redirect failed: %s", reason)}
		default:
			c.String(http.StatusOK, "Signed in. You can close this tab and return to the app.")
			results <- outcome{code: code}
		}
	})

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to open loopback listener on %s: %w", addr, err)
	}

	server := &http.Server{Handler: router}
	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Warn("Loopback listener stopped unexpectedly", zap.Error(serveErr))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	select {
	case res := <-results:
		return res.code, res.err
	case <-ctx.Done():
		return "", fmt.Errorf("sign-in not completed: %w", ctx.Err())
	}
}

// RedirectURI is the loopback address registered with the providers.
func RedirectURI(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s", port, callbackPath)
}
