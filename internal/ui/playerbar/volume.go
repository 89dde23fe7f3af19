package playerbar

import (
	"fmt"

	"github.com/llehouerou/tplay/internal/icons"
)

// RenderVolume renders the volume indicator.
// Format: "<icon>  80%"
func RenderVolume(volume float64) string {
	pct := int(min(max(volume, 0), 1)*100 + 0.5)
	return metaStyle().Render(fmt.Sprintf("%s %3d%%", icons.Volume(), pct))
}
