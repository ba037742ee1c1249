package cli

import (
	"fmt"
	"io"

	"pantry/pkg/application/dto"
)

func writeStatus(out io.Writer, statuses []dto.ProductStatus) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Current Pantry Status ---")
	if len(statuses) == 0 {
		fmt.Fprintln(out, "The pantry is empty.")
		return
	}

	for _, status := range statuses {
		fmt.Fprintf(out, "- %s: %s (Expires: %s)\n", status.Name, status.Quantity, status.ExpirationDate)
	}
}

func writeHistory(out io.Writer, entries []dto.ActionEntry) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- History of Actions ---")
	if len(entries) == 0 {
		fmt.Fprintln(out, "No actions recorded yet.")
		return
	}

	for _, entry := range entries {
		fmt.Fprintf(out, "- %s %s of %s\n", entry.Kind, entry.Amount, entry.ProductName)
	}
}

func writeExpirations(out io.Writer, removed []string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Checking Expired Products ---")
	if len(removed) == 0 {
		fmt.Fprintln(out, "No expired products found.")
		return
	}

	for _, name := range removed {
		fmt.Fprintf(out, "Product %s has expired. Please remove it.\n", name)
	}
}

func writeShoppingList(out io.Writer, suggestions []dto.ShoppingSuggestion) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Generated Shopping List ---")
	if len(suggestions) == 0 {
		fmt.Fprintln(out, "No items to suggest for shopping.")
		return
	}

	for _, suggestion := range suggestions {
		fmt.Fprintf(out, "- Buy more %s (%s)\n", suggestion.ProductName, suggestion.TotalConsumed)
	}
}
