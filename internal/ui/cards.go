package ui

import (
	"fmt"

	"helpdesk/internal/domain"
	"helpdesk/internal/ui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const minCardWidth = 16

var cardBuckets = []domain.Bucket{
	domain.BucketOpen,
	domain.BucketInProgress,
	domain.BucketResolved,
	domain.BucketUnresolved,
}

// renderCards draws one counter card per status bucket, each with its share
// of the total as a bar.
func renderCards(counts domain.Counts, width int) string {
	cardWidth := (width - 2) / len(cardBuckets)
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	inner := cardWidth - 4

	cards := make([]string, 0, len(cardBuckets))
	for _, b := range cardBuckets {
		n := counts.Of(b)
		color := bucketColor(b)

		pct := 0.0
		if counts.Total > 0 {
			pct = float64(n) / float64(counts.Total)
		}
		bar := progress.New(
			progress.WithSolidFill(color.Dark),
			progress.WithoutPercentage(),
			progress.WithWidth(inner),
		)

		label := lipgloss.NewStyle().Foreground(color).Bold(true).Render(b.String())
		value := styleNormalText().Bold(true).Render(fmt.Sprintf("%d", n))
		share := styleStatsDim().Render(fmt.Sprintf(" of %d", counts.Total))

		body := lipgloss.JoinVertical(lipgloss.Left, label, value+share, bar.ViewAs(pct))
		cards = append(cards, stylePane().
			BorderForeground(color).
			Width(cardWidth-2).
			Padding(0, 1).
			Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func bucketColor(b domain.Bucket) lipgloss.AdaptiveColor {
	th := theme.Current()
	switch b {
	case domain.BucketOpen:
		return th.Primary()
	case domain.BucketInProgress:
		return th.Info()
	case domain.BucketResolved:
		return th.Success()
	case domain.BucketUnresolved:
		return th.Warning()
	default:
		return th.TextMuted()
	}
}
