package version

import (
	"os/exec"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/greedy/internal/models"
)

var (
	version     models.VersionResponse
	versionOnce sync.Once
)

// gitCommit returns the commit the binary was built from, asking git if the build info lacks it.
func gitCommit() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	output, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	versionOnce.Do(func() {
		version.Commit = gitCommit()
	})

	return c.JSON(version)
}
