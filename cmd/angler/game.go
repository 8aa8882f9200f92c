package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/orchestrators/session"
	"github.com/castaway-games/angler/internal/orchestrators/skillcheck"
)

// adminCommand is the hidden menu action
const adminCommand = "admin"

type game struct {
	engine session.Service
	input  *stdinInput
}

func (g *game) run(ctx context.Context) error {
	fmt.Println("Welcome to Angler. Press space or enter during the catch bar to land your fish.")

	for {
		g.printStatus()
		g.printMenu()

		choice, ok := g.input.ReadLine()
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = g.fish(ctx)
		case "2":
			err = g.chooseZone(ctx)
		case "3":
			err = g.sell(ctx)
		case "4":
			g.printInventory()
		case "5":
			err = g.shop(ctx)
		case "6":
			g.printDiscovery()
		case "7":
			err = g.questBoard(ctx)
		case "8":
			fmt.Println("See you at the water.")
			return g.engine.Save(ctx)
		case adminCommand:
			var balance float64
			balance, err = g.engine.GrantAdminCredit(ctx)
			if err == nil {
				fmt.Printf("Balance is now %.2f\n", balance)
			}
		default:
			fmt.Println("Pick a number from the menu.")
		}

		if err != nil {
			fmt.Println(errors.GetMessage(err))
			if errors.GetCode(err).Fatal() {
				return err
			}
		}
	}
}

func (g *game) printStatus() {
	state := g.engine.State()
	zone := g.engine.CurrentZone()
	fmt.Println()
	fmt.Printf("%s | %s | Level %d (%d xp) | %.2f coins\n",
		zone.Name, describeClock(state.Clock), state.Level, state.XP, state.Balance)
}

func (g *game) printMenu() {
	fmt.Println("1) Fish  2) Travel  3) Sell  4) Inventory  5) Shop  6) Discovery  7) Quests  8) Quit")
	fmt.Print("> ")
}

func (g *game) fish(ctx context.Context) error {
	fmt.Println("Casting...")

	out, err := g.engine.Fish(ctx, &session.FishInput{
		Observer: renderFrame,
		OnBite: func() {
			fmt.Println("Something bites!")
		},
		OnBossSighted: func(name string) {
			fmt.Printf("%s\n", colorize(entities.RarityBoss, "Something enormous takes the bait: "+name+"!"))
		},
		OnBossRound: func(round, total int) {
			fmt.Printf("\nRound %d of %d. Hold on!\n", round, total)
		},
	})
	g.input.Drain()
	fmt.Println()
	if err != nil {
		return err
	}

	switch {
	case out.Cast.Caught:
		item := out.Cast.Item
		fmt.Printf("Landed a %s weighing %.1f kg, worth %.2f!\n",
			colorize(item.Rarity, item.Name), item.Weight, item.Value())
	case out.Cast.Result == skillcheck.ResultEscape:
		fmt.Printf("The %s slipped off the hook!\n", out.Cast.Name)
	case out.Cast.Boss:
		fmt.Printf("The %s got away...\n", out.Cast.Name)
	default:
		fmt.Println("It got away...")
	}

	if out.LevelsGained > 0 {
		fmt.Printf("%sLevel up! Now level %d.%s\n", ansiYellow, out.NewLevel, ansiReset)
	}
	if out.QuestsCompleted > 0 {
		fmt.Printf("%d quest(s) ready to turn in.\n", out.QuestsCompleted)
	}
	return nil
}

func (g *game) chooseZone(ctx context.Context) error {
	zones := g.engine.UnlockedZones()
	fmt.Println("Where to?")
	for i, zone := range zones {
		fmt.Printf("  %d) %s\n", i+1, zone.Name)
	}
	fmt.Print("> ")

	line, _ := g.input.ReadLine()
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > len(zones) {
		fmt.Println("Staying put.")
		return nil
	}
	return g.engine.ChooseZone(ctx, zones[idx-1].ID)
}

func (g *game) sell(ctx context.Context) error {
	if len(g.engine.State().Inventory) == 0 {
		fmt.Println("Nothing to sell.")
		return nil
	}

	fmt.Print("Sell what? (\"all\", or a name with an optional count, e.g. \"Carp 2\")\n> ")
	line, _ := g.input.ReadLine()
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if strings.EqualFold(line, "all") {
		out, err := g.engine.SellAll(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Sold %d for %.2f.\n", out.Sold, out.Credit)
		return nil
	}

	name := line
	limit := 0
	if fields := strings.Fields(line); len(fields) > 1 {
		if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
			limit = n
			name = strings.Join(fields[:len(fields)-1], " ")
		}
	}

	out, err := g.engine.Sell(ctx, name, limit)
	if err != nil {
		return err
	}
	if out.Sold == 0 {
		fmt.Printf("No %s in the bucket.\n", name)
		return nil
	}
	fmt.Printf("Sold %d %s for %.2f.\n", out.Sold, name, out.Credit)
	return nil
}

func (g *game) printInventory() {
	inventory := g.engine.State().Inventory
	if len(inventory) == 0 {
		fmt.Println("The bucket is empty.")
		return
	}
	for _, item := range inventory {
		fmt.Printf("  %s  %.1f kg  %.2f\n", colorize(item.Rarity, item.Name), item.Weight, item.Value())
	}
}

func (g *game) shop(ctx context.Context) error {
	state := g.engine.State()
	items := g.engine.ShopItems()

	fmt.Println("Shop:")
	for i, item := range items {
		owned := ""
		if state.Unlocks.Has(item.Item) {
			owned = " (owned)"
		}
		fmt.Printf("  %d) %s - %.0f%s\n     %s\n", i+1, item.Name, item.Price, owned, item.Description)
	}
	fmt.Print("Buy which? (blank to leave)\n> ")

	line, _ := g.input.ReadLine()
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > len(items) {
		return nil
	}

	out, err := g.engine.Purchase(ctx, items[idx-1].Name)
	if err != nil {
		return err
	}
	fmt.Printf("Bought %s. %.2f left.\n", out.Item.Name, out.Balance)
	return nil
}

func (g *game) printDiscovery() {
	state := g.engine.State()
	if len(state.Discovery) == 0 {
		fmt.Println("Nothing discovered yet.")
		return
	}
	for _, zone := range g.engine.UnlockedZones() {
		entries := state.Discovery[zone.ID]
		if len(entries) == 0 {
			continue
		}
		fmt.Printf("%s:\n", zone.Name)
		for _, creature := range zone.Creatures {
			if entry, ok := entries[creature.Name]; ok {
				fmt.Printf("  %s x%d, best %.1f kg (%.2f)\n",
					colorize(creature.Rarity, creature.Name), entry.Count, entry.MaxWeight, entry.MaxValue)
			}
		}
	}
}

func (g *game) questBoard(ctx context.Context) error {
	zone := g.engine.CurrentZone()
	pool := g.engine.State().Quests[zone.ID]

	fmt.Printf("Quests in %s:\n", zone.Name)
	for i, q := range pool {
		target := q.TargetName
		if q.Kind == entities.QuestRarityClass {
			target = "any " + string(q.TargetRarity)
		}
		status := fmt.Sprintf("%d/%d", q.Progress, q.Amount)
		if q.Completed() {
			status = ansiGreen + "done" + ansiReset
		}
		fmt.Printf("  %d) %s x%d - %.0f coins [%s]\n", i+1, target, q.Amount, q.Reward, status)
	}
	fmt.Print("Turn in which? (blank to leave)\n> ")

	line, _ := g.input.ReadLine()
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > len(pool) {
		return nil
	}

	out, err := g.engine.FinishQuest(ctx, zone.ID, idx-1)
	if err != nil {
		return err
	}
	fmt.Printf("Quest complete! Earned %.2f.\n", out.Reward)
	return nil
}
