package laundry

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type DeliveryMethod string

const (
	DeliveryCollection DeliveryMethod = "collection"
	DeliveryDropOff    DeliveryMethod = "drop-off"
)

// Selection is a booking configuration as submitted by the client. Price is
// a function of WeightTier, AddOns and DeliveryMethod only; Items are shown
// as an informational sub-breakdown of the chosen tier.
type Selection struct {
	WeightTier     string         `json:"weightTier"`
	Items          map[string]int `json:"selectedItems"`
	AddOns         []string       `json:"selectedAddOns"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
}

type WeightTier struct {
	Key         string
	Name        string
	MaxWeightKg decimal.Decimal
	Price       decimal.Decimal
}

type AddOn struct {
	Key   string
	Name  string
	Price decimal.Decimal
}

type CatalogueItem struct {
	Key          string
	Name         string
	UnitWeightKg decimal.Decimal
	Price        decimal.Decimal
}

// Tiers ordered smallest first; TierForWeight relies on the ordering.
var weightTiers = []WeightTier{
	{Key: "0-6kg", Name: "Wash & Fold up to 6kg", MaxWeightKg: dec("6"), Price: dec("18.00")},
	{Key: "6-10kg", Name: "Wash & Fold up to 10kg", MaxWeightKg: dec("10"), Price: dec("25.00")},
}

var addOnOrder = []string{"stain_removal", "ironing", "own_products"}

var addOns = map[string]AddOn{
	"stain_removal": {Key: "stain_removal", Name: "Stain removal", Price: dec("5.00")},
	"ironing":       {Key: "ironing", Name: "Ironing", Price: dec("12.50")},
	"own_products":  {Key: "own_products", Name: "Use my own products", Price: dec("-1.50")},
}

var catalogueOrder = []string{
	"tshirt", "shirt", "jumper", "hoodie", "trousers", "jeans",
	"shorts", "skirt", "dress", "towel", "bedding_single", "bedding_double",
}

var catalogue = map[string]CatalogueItem{
	"tshirt":         {Key: "tshirt", Name: "T-shirt", UnitWeightKg: dec("0.2"), Price: dec("1.50")},
	"shirt":          {Key: "shirt", Name: "Shirt", UnitWeightKg: dec("0.25"), Price: dec("1.80")},
	"jumper":         {Key: "jumper", Name: "Jumper", UnitWeightKg: dec("0.5"), Price: dec("2.50")},
	"hoodie":         {Key: "hoodie", Name: "Hoodie", UnitWeightKg: dec("0.6"), Price: dec("2.80")},
	"trousers":       {Key: "trousers", Name: "Trousers", UnitWeightKg: dec("0.4"), Price: dec("2.20")},
	"jeans":          {Key: "jeans", Name: "Jeans", UnitWeightKg: dec("0.6"), Price: dec("2.50")},
	"shorts":         {Key: "shorts", Name: "Shorts", UnitWeightKg: dec("0.25"), Price: dec("1.60")},
	"skirt":          {Key: "skirt", Name: "Skirt", UnitWeightKg: dec("0.3"), Price: dec("1.90")},
	"dress":          {Key: "dress", Name: "Dress", UnitWeightKg: dec("0.4"), Price: dec("2.60")},
	"towel":          {Key: "towel", Name: "Towel", UnitWeightKg: dec("0.5"), Price: dec("1.40")},
	"bedding_single": {Key: "bedding_single", Name: "Bedding set (single)", UnitWeightKg: dec("2"), Price: dec("4.50")},
	"bedding_double": {Key: "bedding_double", Name: "Bedding set (double)", UnitWeightKg: dec("3"), Price: dec("5.50")},
}

var collectionFee = dec("4.99")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TotalWeight sums quantity times unit weight over the known catalogue
// items. Unknown keys are ignored.
func TotalWeight(items map[string]int) decimal.Decimal {
	total := decimal.Zero
	for key, qty := range items {
		item, ok := catalogue[key]
		if !ok || qty <= 0 {
			continue
		}
		total = total.Add(item.UnitWeightKg.Mul(decimal.NewFromInt(int64(qty))))
	}

	return total
}

// TierForWeight returns the key of the smallest tier covering the weight,
// or "" for zero weight. Weight above every tier falls back to the largest
// tier; anything over 10kg is still charged at the 10kg rate.
func TierForWeight(weight decimal.Decimal) string {
	if weight.LessThanOrEqual(decimal.Zero) {
		return ""
	}
	for _, tier := range weightTiers {
		if weight.LessThanOrEqual(tier.MaxWeightKg) {
			return tier.Key
		}
	}

	return weightTiers[len(weightTiers)-1].Key
}

func tierByKey(key string) (WeightTier, bool) {
	for _, tier := range weightTiers {
		if tier.Key == key {
			return tier, true
		}
	}
	return WeightTier{}, false
}

// Total computes the booking price. Deterministic and side-effect free, so
// the same function serves the live quote and the authoritative charge.
// The result never goes below zero whatever discounts are selected.
func Total(sel Selection) decimal.Decimal {
	total := decimal.Zero
	hasServices := false

	if tier, ok := tierByKey(sel.WeightTier); ok {
		total = total.Add(tier.Price)
		hasServices = true
	}

	for _, key := range sel.AddOns {
		if addOn, ok := addOns[key]; ok {
			total = total.Add(addOn.Price)
		}
	}

	if hasServices && sel.DeliveryMethod == DeliveryCollection {
		total = total.Add(collectionFee)
	}

	if total.LessThan(decimal.Zero) {
		return decimal.Zero
	}

	return total
}

type PriceLine struct {
	Label   string
	Price   *decimal.Decimal
	SubItem bool
}

// Breakdown renders the itemized price lines in display order: tier first,
// item sub-lines (no price of their own), add-ons, collection fee last.
func Breakdown(sel Selection) []PriceLine {
	lines := []PriceLine{}

	tier, hasTier := tierByKey(sel.WeightTier)
	if hasTier {
		price := tier.Price
		lines = append(lines, PriceLine{Label: tier.Name, Price: &price})
		for _, key := range catalogueOrder {
			qty := sel.Items[key]
			if qty <= 0 {
				continue
			}
			item := catalogue[key]
			lines = append(lines, PriceLine{
				Label:   itemLabel(item.Name, qty),
				SubItem: true,
			})
		}
	}

	for _, key := range addOnOrder {
		if !containsKey(sel.AddOns, key) {
			continue
		}
		addOn := addOns[key]
		price := addOn.Price
		lines = append(lines, PriceLine{Label: addOn.Name, Price: &price})
	}

	if hasTier && sel.DeliveryMethod == DeliveryCollection {
		price := collectionFee
		lines = append(lines, PriceLine{Label: "Collection fee", Price: &price})
	}

	return lines
}

func itemLabel(name string, qty int) string {
	return fmt.Sprintf("%s x%d", name, qty)
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
