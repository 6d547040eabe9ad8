// File: cinequest/services/agent/nav.go
package agent

import (
	"cinequest/utils"

	"go.uber.org/zap"
)

// LogNavigator records outward navigation in the logs. Servers have no
// page to move; clients follow the route returned on the chat result.
type LogNavigator struct{}

func (LogNavigator) Navigate(path string) {
	utils.GetLogger().Info("Navigating", zap.String("path", path))
}
