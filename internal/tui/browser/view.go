package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
	"github.com/alexisbeaulieu97/pokebrowse/internal/view"
)

const cardWidth = 32

// View renders the current model state
func (m Model) View() string {
	v := m.compose()

	var body string
	switch v.Kind {
	case view.KindLoading:
		return m.renderLoading()
	case view.KindError:
		return m.renderError(v)
	case view.KindSearch:
		body = m.renderSearch(v)
	default:
		body = m.renderPaginated(v)
	}

	var content strings.Builder
	content.WriteString(m.renderHeader())
	content.WriteString("\n")
	if v.CatalogNotice != "" {
		content.WriteString(noticeStyle.Render(v.CatalogNotice))
		content.WriteString("\n")
	}
	content.WriteString(body)
	content.WriteString("\n")
	content.WriteString(m.renderFooter())
	return content.String()
}

func (m Model) renderLoading() string {
	return fmt.Sprintf("\n  %s Loading Pokémon...\n", m.spinner.View())
}

func (m Model) renderError(v view.View) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		errorTitleStyle.Render("Error: "+v.Message),
		buttonStyle.Render("Try Again"),
		cardLabelStyle.Render(fmt.Sprintf("r: reload page %d  •  q: quit", v.RetryPage)),
	)
}

// renderHeader renders the title, theme toggle and search box
func (m Model) renderHeader() string {
	top := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("Let's Catch Pokémon"),
		toggleStyle.Render(m.themes.Theme().ToggleLabel()),
	)
	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, top, m.search.View()))
}

func (m Model) renderSearch(v view.View) string {
	if v.Empty() {
		return emptyStateStyle.Render(v.EmptyMessage() + "\n" + view.EmptyHint)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		summaryStyle.Render(v.Summary()),
		m.renderGrid(v.Entities),
	)
}

func (m Model) renderPaginated(v view.View) string {
	parts := []string{m.renderGrid(v.Entities)}
	if v.ShowPagination {
		parts = append(parts, m.renderPagination(v))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderPagination renders Previous/Next with the page indicator between them
func (m Model) renderPagination(v view.View) string {
	prev := disabledButtonStyle.Render("Previous")
	if v.HasPrev {
		prev = buttonStyle.Render("Previous")
	}
	next := disabledButtonStyle.Render("Next")
	if v.HasNext {
		next = buttonStyle.Render("Next")
	}

	indicator := v.PageIndicator()
	if v.Refreshing {
		indicator = fmt.Sprintf("%s %s", m.spinner.View(), indicator)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, prev, pageIndicatorStyle.Render(indicator), next)
}

// renderGrid lays cards out in as many columns as the terminal allows
func (m Model) renderGrid(entities []pokeapi.Pokemon) string {
	perRow := m.width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(entities); start += perRow {
		end := start + perRow
		if end > len(entities) {
			end = len(entities)
		}
		cards := make([]string, 0, end-start)
		for _, p := range entities[start:end] {
			cards = append(cards, renderCard(p))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(p pokeapi.Pokemon) string {
	types := strings.Join(p.TypeNames(), " / ")
	abilities := strings.Join(p.AbilityNames(true), ", ")

	lines := []string{
		cardTitleStyle.Render(fmt.Sprintf("#%03d %s", p.ID, displayName(p.Name))),
		cardTypeStyle.Render(types),
		fmt.Sprintf("%s %.1f m  %s %.1f kg",
			cardLabelStyle.Render("Height"), float64(p.Height)/10,
			cardLabelStyle.Render("Weight"), float64(p.Weight)/10),
		fmt.Sprintf("%s %d", cardLabelStyle.Render("Base Exp"), p.BaseExperience),
		fmt.Sprintf("%s %d  %s %d  %s %d",
			cardLabelStyle.Render("Atk"), p.Stat("attack"),
			cardLabelStyle.Render("Def"), p.Stat("defense"),
			cardLabelStyle.Render("Spd"), p.Stat("speed")),
		cardLabelStyle.Render("Abilities: ") + abilities,
	}
	return cardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// displayName capitalizes each dash-separated word.
func displayName(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, "-")
}

// renderFooter renders the key bindings
func (m Model) renderFooter() string {
	return footerStyle.Render(m.help.View(m.keys))
}
