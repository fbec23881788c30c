package main

import (
	"fmt"
	"os"

	"github.com/hfigen/khl-miniapp/internal/notifier"
	"github.com/hfigen/khl-miniapp/internal/stats"
	"github.com/hfigen/khl-miniapp/internal/telegram"
)

func main() {
	// Sample scoring race, roughly the shape the parser produces
	players := []stats.PlayerStat{
		{Name: "Гусев Никита", Team: "СКА", TeamAbbr: "СКА", Position: "н", Points: 89, Goals: 23, Assists: 66, Games: 62, PlusMinus: 28, Penalty: 22},
		{Name: "Шипачёв Вадим", Team: "Динамо Москва", TeamAbbr: "ДИН", Position: "н", Points: 81, Goals: 17, Assists: 64, Games: 60, PlusMinus: 19, Penalty: 14},
		{Name: "Да Коста Стефан", Team: "ЦСКА", TeamAbbr: "ЦСК", Position: "н", Points: 74, Goals: 30, Assists: 44, Games: 54, PlusMinus: 25, Penalty: 30},
		{Name: "Яшкин Дмитрий", Team: "Ак Барс", TeamAbbr: "АКБ", Position: "н", Points: 70, Goals: 41, Assists: 29, Games: 61, PlusMinus: 15, Penalty: 26},
		{Name: "Толчинский Сергей", Team: "Авангард", TeamAbbr: "АВГ", Position: "н", Points: 66, Goals: 26, Assists: 40, Games: 59, PlusMinus: 11, Penalty: 18},
		{Name: "Радулов Александр", Team: "Локомотив", TeamAbbr: "ЛОК", Position: "н", Points: 62, Goals: 24, Assists: 38, Games: 63, PlusMinus: 9, Penalty: 44},
	}
	season := stats.Season{Year: 2025}

	fmt.Println("Telegram digest preview:")
	fmt.Println("---")
	fmt.Println(telegram.FormatLeaders(players, season, 10))
	fmt.Println("---")
	fmt.Println()

	fmt.Println("Player card preview:")
	fmt.Println("---")
	fmt.Println(telegram.FormatPlayer(players[0], season))
	fmt.Println("---")
	fmt.Println()

	if err := notifier.NewDryRunNotifier().Announce(players, season); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Check the messages render before pointing real credentials at a chat:")
	fmt.Println("1. Paste the digest into a test chat with HTML parse mode")
	fmt.Println("2. Confirm the tweet preview fits and reads well")
}
