// Package utils provides notification utilities for appgroup.
// Supports configurable notification behavior via NotificationConfig.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/lvim-tech/appgroup/pkg/config"
)

// NotifyWithConfig sends a notification using the provided config
func NotifyWithConfig(cfg *config.NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	sendNotification(resolveTool(cfg.Tool), title, message, cfg.Timeout, cfg.Urgency, "normal")
}

// ShowErrorNotificationWithConfig sends an error notification using the provided config
func ShowErrorNotificationWithConfig(cfg *config.NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	// Send error notification with critical urgency
	sendNotification(resolveTool(cfg.Tool), title, message, cfg.Timeout, "critical", "critical")
}

// ============================================================================
// Internal Helper Functions
// ============================================================================

func resolveTool(tool string) string {
	if tool == "" || tool == "auto" {
		return detectNotificationTool()
	}
	return tool
}

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if IsDarwin() && CommandExists("osascript") {
		return "osascript"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

// notificationCommand builds the command for the given tool, nil if unsupported
func notificationCommand(tool, title, message string, timeout int, urgency, fallbackUrgency string) *exec.Cmd {
	// Use fallback urgency if urgency is not set
	if urgency == "" {
		urgency = fallbackUrgency
	}

	// Default timeout
	if timeout <= 0 {
		timeout = 5000
	}

	switch tool {
	case "osascript":
		script := fmt.Sprintf("display notification %s with title %s",
			AppleScriptString(message), AppleScriptString(title))
		return exec.Command("osascript", "-e", script)

	case "notify-send":
		return exec.Command("notify-send",
			"-u", urgency,
			"-t", strconv.Itoa(timeout),
			title,
			message)

	default:
		return nil
	}
}

// sendNotification sends a notification using the specified tool
func sendNotification(tool, title, message string, timeout int, urgency, fallbackUrgency string) {
	cmd := notificationCommand(tool, title, message, timeout, urgency, fallbackUrgency)
	if cmd == nil {
		return
	}

	cmd.Env = os.Environ()
	cmd.Start()
}

// AppleScriptString quotes s as an AppleScript string literal
func AppleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
