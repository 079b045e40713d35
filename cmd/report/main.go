// Operator utility: inspect bot statistics and force monthly report writes
// without going through Telegram.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"leadbot/internal/store"
)

func main() {
	dbPath := flag.String("db", "./leadbot.db", "path to the bot database")
	out := flag.String("out", "./statistic.txt", "monthly report file")
	year := flag.Int("year", 0, "write the report for this year (with -month)")
	month := flag.Int("month", 0, "write the report for this month 1-12 (with -year)")
	leads := flag.Int("leads", 10, "how many recent applications to print")
	flag.Parse()

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Schema init failed: %v", err)
	}

	if *year != 0 && *month != 0 {
		rep := store.NewReporter(db, *out)
		saved, err := rep.WriteMonthly(*year, time.Month(*month))
		if err != nil {
			log.Fatalf("Report failed: %v", err)
		}
		if saved {
			fmt.Printf("✅ Report for %d-%02d written to %s\n", *year, *month, *out)
		} else {
			fmt.Printf("Report for %d-%02d was already saved, skipping.\n", *year, *month)
		}
		return
	}

	total, err := db.Stats()
	if err != nil {
		log.Fatalf("Stats failed: %v", err)
	}
	window, err := db.WindowStats(30)
	if err != nil {
		log.Fatalf("Stats failed: %v", err)
	}

	fmt.Println("All time:")
	printTotals(total)
	fmt.Println("\nLast 30 days:")
	printTotals(window)

	apps, err := db.Applications(*leads)
	if err != nil {
		log.Fatalf("Applications failed: %v", err)
	}
	if len(apps) > 0 {
		fmt.Printf("\nRecent applications (%d):\n", len(apps))
		for _, a := range apps {
			fmt.Printf("  #%d %s — user %d (@%s) at %s\n",
				a.ID, a.Phone, a.UserID, a.Username, a.CreatedAt)
		}
	}
}

func printTotals(t store.Totals) {
	fmt.Printf("  users: %d\n  about clicks: %d\n  cases clicks: %d\n  messages: %d\n",
		t.Users, t.About, t.Cases, t.Messages)
}
