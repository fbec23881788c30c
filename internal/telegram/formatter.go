package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hfigen/khl-miniapp/internal/stats"
)

const (
	// WelcomeMessage is the /start reply; the keyboard below it opens the mini-app.
	WelcomeMessage = "Добро пожаловать! Нажмите кнопку ниже, чтобы открыть мини‑приложение."
	// OpenAppButton labels the Web App launch button
	OpenAppButton = "Открыть статистику"
	// LeadersButton labels the inline button that requests the scoring race
	LeadersButton = "🏆 Бомбардиры"
	// LeadersCallback is the callback payload behind LeadersButton
	LeadersCallback = "leaders"
)

// HelpMessage lists the bot commands
const HelpMessage = "🏒 <b>Бот статистики КХЛ</b>\n\n" +
	"/start — открыть мини‑приложение\n" +
	"/top — лучшие бомбардиры сезона\n" +
	"/help — эта справка"

// StartKeyboard is the /start keyboard: open the mini-app, or ask the bot
// for the scoring race right in the chat.
func StartKeyboard(webAppURL string) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{
				{Text: OpenAppButton, WebApp: &WebAppInfo{URL: webAppURL}},
			},
			{
				{Text: LeadersButton, CallbackData: LeadersCallback},
			},
		},
	}
}

// FormatPlayer renders one player's season line as a Telegram HTML message
func FormatPlayer(p stats.PlayerStat, season stats.Season) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("🏒 <b>%s</b>", p.Name))
	if p.Team != "" {
		msg.WriteString(fmt.Sprintf(" (%s)", p.Team))
	}
	msg.WriteString("\n")
	msg.WriteString(fmt.Sprintf("Сезон %s\n", SeasonLabel(season)))
	if name := positionName(p.Position); name != "" {
		msg.WriteString(fmt.Sprintf("Амплуа: %s\n", name))
	}
	msg.WriteString("\n")

	msg.WriteString(fmt.Sprintf("Очки: <b>%d</b> (%d+%d)\n", p.Points, p.Goals, p.Assists))
	msg.WriteString(fmt.Sprintf("Игры: %d\n", p.Games))
	msg.WriteString(fmt.Sprintf("Полезность: %s\n", formatPlusMinus(p.PlusMinus)))
	msg.WriteString(fmt.Sprintf("Штраф: %d мин", p.Penalty))

	return msg.String()
}

// FormatLeaders renders the top of the scoring race as a Telegram HTML message.
// The players slice is expected in table order (ranked by points).
func FormatLeaders(players []stats.PlayerStat, season stats.Season, limit int) string {
	if len(players) == 0 {
		return fmt.Sprintf("Нет данных за сезон %s.", SeasonLabel(season))
	}
	if limit <= 0 || limit > len(players) {
		limit = len(players)
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("🏆 <b>Бомбардиры КХЛ</b>\nСезон %s\n\n", SeasonLabel(season)))

	for i, p := range players[:limit] {
		team := p.TeamAbbr
		if team == "" {
			team = p.Team
		}
		msg.WriteString(fmt.Sprintf("%d. <b>%s</b> (%s) — %d %s (%d+%d)\n",
			i+1, p.Name, team, p.Points, pluralizeRu(p.Points, "очко", "очка", "очков"), p.Goals, p.Assists))
	}

	return strings.TrimRight(msg.String(), "\n")
}

// SeasonLabel renders a season for display, e.g. "2024/2025" or
// "2024/2025 (плей-офф)"
func SeasonLabel(season stats.Season) string {
	label := fmt.Sprintf("%d/%d", season.Year-1, season.Year)
	if season.Playoff {
		label += " (плей-офф)"
	}
	return label
}

// positionName expands the table's position abbreviation
func positionName(abbr string) string {
	switch strings.ToLower(strings.TrimSpace(abbr)) {
	case "н":
		return "нападающий"
	case "з":
		return "защитник"
	case "в":
		return "вратарь"
	case "":
		return ""
	default:
		return abbr
	}
}

func formatPlusMinus(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return strconv.Itoa(v)
}

// pluralizeRu picks the Russian plural form for n (one/few/many)
func pluralizeRu(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	switch {
	case n%100 >= 11 && n%100 <= 14:
		return many
	case n%10 == 1:
		return one
	case n%10 >= 2 && n%10 <= 4:
		return few
	default:
		return many
	}
}
