package components

import (
	"charm.land/lipgloss/v2"

	"github.com/minatgo/minatgo/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗██╗███╗   ██╗ █████╗ ████████╗ ██████╗  ██████╗
 ████╗ ████║██║████╗  ██║██╔══██╗╚══██╔══╝██╔════╝ ██╔═══██╗
 ██╔████╔██║██║██╔██╗ ██║███████║   ██║   ██║  ███╗██║   ██║
 ██║╚██╔╝██║██║██║╚██╗██║██╔══██║   ██║   ██║   ██║██║   ██║
 ██║ ╚═╝ ██║██║██║ ╚████║██║  ██║   ██║   ╚██████╔╝╚██████╔╝
 ╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝   ╚═╝    ╚═════╝  ╚═════╝`

const bannerCompact = "M I N A T G O"

// BannerWidth is the column count of the full banner.
const BannerWidth = 62

// Banner returns the app banner, falling back to spaced letters when
// width is below BannerWidth.
func Banner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)
	if width < BannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
