package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"pantry/pkg/application/services"
)

// Menu drives the interactive pantry shell over a reader/writer pair
type Menu struct {
	service *services.PantryService
	in      *bufio.Scanner
	out     io.Writer
}

// NewMenu creates an interactive menu bound to the given service and streams
func NewMenu(service *services.PantryService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops over the menu until the user picks the exit option or input ends
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "WELCOME!")
	fmt.Fprintln(m.out, "Note: Use the date format YYYY-MM-DD for expiration dates.")

	for {
		m.printMenu()
		choice, ok := m.readLine()
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			m.insertProduct()
		case "2":
			m.consumeProduct()
		case "3":
			m.showStatus()
		case "4":
			m.showHistory()
		case "5":
			m.checkExpirations()
		case "6":
			m.generateShoppingList()
		case "7":
			fmt.Fprintln(m.out, "Exiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "*** Pantry Menu ***")
	fmt.Fprintln(m.out, "1. Insert Product")
	fmt.Fprintln(m.out, "2. Consume Product")
	fmt.Fprintln(m.out, "3. Show Pantry Status")
	fmt.Fprintln(m.out, "4. Show Action History")
	fmt.Fprintln(m.out, "5. Check Expired Products")
	fmt.Fprintln(m.out, "6. Generate Shopping List")
	fmt.Fprintln(m.out, "7. Exit")
	fmt.Fprint(m.out, "Enter your choice: ")
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) promptQuantity(label string) (decimal.Decimal, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	quantity, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %q is not a valid quantity.\n", raw)
		return decimal.Zero, false
	}
	return quantity, true
}

func (m *Menu) insertProduct() {
	name, ok := m.prompt("Enter product name: ")
	if !ok {
		return
	}
	quantity, ok := m.promptQuantity("Enter product quantity: ")
	if !ok {
		return
	}
	expirationDate, ok := m.prompt("Enter expiration date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	if err := m.service.InsertProduct(name, quantity, expirationDate); err != nil {
		m.printError(err)
	}
}

func (m *Menu) consumeProduct() {
	name, ok := m.prompt("Enter product name: ")
	if !ok {
		return
	}
	quantity, ok := m.promptQuantity("Enter quantity to consume: ")
	if !ok {
		return
	}

	if err := m.service.ConsumeProduct(name, quantity); err != nil {
		m.printError(err)
	}
}

func (m *Menu) showStatus() {
	statuses, err := m.service.Status()
	if err != nil {
		m.printError(err)
		return
	}
	writeStatus(m.out, statuses)
}

func (m *Menu) showHistory() {
	writeHistory(m.out, m.service.History())
}

func (m *Menu) checkExpirations() {
	referenceDate, ok := m.prompt("Enter current date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	removed, err := m.service.CheckExpirations(referenceDate)
	if err != nil {
		m.printError(err)
		return
	}
	writeExpirations(m.out, removed)
}

func (m *Menu) generateShoppingList() {
	writeShoppingList(m.out, m.service.ShoppingList())
}

func (m *Menu) printError(err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		fmt.Fprintln(m.out, "Error: Product quantity must be greater than zero.")
	case errors.Is(err, services.ErrProductNotFound):
		fmt.Fprintln(m.out, "Product not found in pantry.")
	case errors.Is(err, services.ErrInsufficientQuantity):
		fmt.Fprintln(m.out, "Not enough quantity to consume.")
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}
