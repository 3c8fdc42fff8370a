// Command demo walks one booking journey end to end against the
// demo-mode client, printing each step. Useful for eyeballing the flow
// without a configured endpoint.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"solbooking/internal/sheets"
	"solbooking/internal/wizard"
)

func main() {
	godotenv.Load()

	client := sheets.NewClient(os.Getenv("WEB_APP_URL"))
	ctx := context.Background()

	if !client.Initialize(ctx) {
		log.Fatal("booking store is not reachable")
	}
	fmt.Printf("demo mode: %v\n", client.DemoMode())

	session := wizard.NewSession(client, nil)

	must(session.SelectService("immigration"))
	must(session.SelectPackage("30-min"))
	details := session.Details()
	fmt.Printf("selected: %s\n", details.FullTitle)

	must(session.OpenModal())
	must(session.SelectSolicitor("kevin-ogle"))
	session.SelectDate("15. November 2025")
	must(session.SelectTime("9:00 - 9:15"))
	must(session.ProceedToInformation())

	session.SetContact(wizard.ContactInfo{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+44 7700 900123",
		Lender:    "HSBC",
	})
	must(session.ProceedToConfirmation())

	summary := session.Summary()
	fmt.Printf("confirm: %s at %s\n", summary.Service, summary.Price)

	result := session.Finish(ctx)
	if !result.Success {
		log.Fatalf("booking failed: %s", result.Error)
	}
	fmt.Printf("booked: %s (%s)\n", result.BookingID, result.Message)

	for _, record := range client.GetBookings(ctx) {
		fmt.Printf("row: %s %s %s\n", record["booking_id"], record["service_type"], record["price"])
	}
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
