package calculator

import (
	"strconv"
	"strings"

	"github.com/mmynk/agencydesk/internal/models"
)

// ParseCostImport turns tab-separated text into ledger lines. Each line is
// name, amount, type, category. Every non-digit in the amount is stripped
// first, so "$1.250.000" reads as 1250000. Lines without a name or without
// any amount digits are skipped; an unknown type reads as Fijo and an empty
// category as General. Returned costs carry no ID.
func ParseCostImport(text string) []models.Cost {
	var costs []models.Cost
	for _, line := range strings.Split(text, "\n") {
		cost, ok := parseImportLine(strings.TrimRight(line, "\r"))
		if ok {
			costs = append(costs, cost)
		}
	}
	return costs
}

func parseImportLine(line string) (models.Cost, bool) {
	fields := strings.Split(line, "\t")
	field := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}

	name := field(0)
	if name == "" {
		return models.Cost{}, false
	}
	amount, ok := sanitizeAmount(field(1))
	if !ok {
		return models.Cost{}, false
	}

	category := field(3)
	if category == "" {
		category = models.DefaultCostCategory
	}

	return models.Cost{
		Name:     name,
		Amount:   amount,
		Type:     models.ParseCostType(field(2)),
		Category: category,
	}, true
}

func sanitizeAmount(raw string) (int64, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	amount, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
