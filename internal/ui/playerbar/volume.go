package playerbar

import (
	"fmt"

	"github.com/llehouerou/prodify/internal/icons"
)

// RenderVolume renders the volume indicator, e.g. "vol  80%".
// Zero volume shows the mute icon.
func RenderVolume(volume float64) string {
	pct := int(volume*100 + 0.5)
	icon := icons.Volume()
	if pct == 0 {
		icon = icons.VolumeMute()
	}
	return timeStyle().Render(fmt.Sprintf("%s %3d%%", icon, pct))
}
