package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"backend/client"
	"backend/config"
)

func main() {
	cfg := config.Load()

	server := flag.String("server", cfg.ServerURL, "base URL of the tracker server")
	token := flag.String("token", "", "bearer token (from the login command)")
	date := flag.String("date", time.Now().Format("2006-01-02"), "date to operate on (YYYY-MM-DD)")
	flag.Parse()

	api := client.NewAPI(*server)
	api.Token = *token

	if err := run(api, *date, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(api *client.API, date string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: register|login|list|add|update|delete")
	}

	switch args[0] {
	case "register":
		if len(args) != 4 {
			return fmt.Errorf("usage: register <name> <email> <password>")
		}
		return api.Register(args[1], args[2], args[3])

	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		token, err := api.Login(args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil

	case "list":
		tracker := client.NewDayTracker(api, date)
		tracker.Refresh()
		if err := tracker.Err(); err != nil {
			return err
		}
		for _, l := range tracker.Logs() {
			for _, it := range l.FoodItems {
				fmt.Printf("log %d  item %d  %s  %.0f kcal x%.1f\n", l.ID, it.ID, it.Name, it.Calories, it.Quantity)
			}
		}
		fmt.Printf("total: %.0f kcal\n", tracker.TotalCalories())
		return nil

	case "add":
		if len(args) != 4 {
			return fmt.Errorf("usage: add <name> <calories> <quantity>")
		}
		calories, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("bad calories: %w", err)
		}
		quantity, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("bad quantity: %w", err)
		}
		return api.AddLog(date, []client.FoodItemInput{
			{Name: args[1], Calories: calories, Quantity: quantity},
		})

	case "update":
		if len(args) != 6 {
			return fmt.Errorf("usage: update <logId> <foodItemId> <name> <calories> <quantity> (zero/empty leaves a field unchanged)")
		}
		logID, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("bad logId: %w", err)
		}
		itemID, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			return fmt.Errorf("bad foodItemId: %w", err)
		}
		calories, _ := strconv.ParseFloat(args[4], 64)
		quantity, _ := strconv.ParseFloat(args[5], 64)
		_, err = api.UpdateFoodItem(uint(logID), uint(itemID), client.FoodItemUpdate{
			Name:     args[3],
			Calories: calories,
			Quantity: quantity,
		})
		return err

	case "delete":
		if len(args) != 3 {
			return fmt.Errorf("usage: delete <logId> <foodItemId>")
		}
		logID, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("bad logId: %w", err)
		}
		itemID, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			return fmt.Errorf("bad foodItemId: %w", err)
		}
		logDeleted, err := api.DeleteFoodItem(uint(logID), uint(itemID))
		if err != nil {
			return err
		}
		if logDeleted {
			fmt.Println("log deleted (no items left)")
		} else {
			fmt.Println("item deleted")
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
