// Package variant holds the product variant engine: the Cartesian
// combination generator and the identity-preserving reconciler used when a
// product's option set is edited.
package variant

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TitleSeparator joins the chosen option values into a variant title.
const TitleSeparator = " / "

// OptionInput is one axis of variation as submitted by the product form.
type OptionInput struct {
	ID       *uuid.UUID
	Name     string
	Position int
	Values   []ValueInput
}

// ValueInput is one concrete value along an option's axis.
type ValueInput struct {
	ID       *uuid.UUID
	Value    string
	Position int
}

// Combination is one assignment of exactly one value to each option.
type Combination struct {
	Title string
	// Selections maps option name to chosen value, in option order.
	Selections []Selection
}

type Selection struct {
	Option string
	Value  string
}

// VariantSeed is a generated variant descriptor ready to persist. ID, SKU and
// Price carry over from a prior variant when the title already existed.
type VariantSeed struct {
	ID          *uuid.UUID
	Title       string
	SKU         string
	Price       decimal.Decimal
	IsDefault   bool
	IsAvailable bool
}

// PriorVariant is the persisted state consulted during regeneration.
type PriorVariant struct {
	ID    uuid.UUID
	Title string
	SKU   string
	Price decimal.Decimal
}

// usableOptions drops options with no non-blank values; blank values within
// an otherwise usable option are skipped too.
func usableOptions(options []OptionInput) []OptionInput {
	out := make([]OptionInput, 0, len(options))
	for _, opt := range options {
		values := make([]ValueInput, 0, len(opt.Values))
		for _, v := range opt.Values {
			if strings.TrimSpace(v.Value) != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		opt.Values = values
		out = append(out, opt)
	}
	return out
}

// Combine produces the Cartesian product of the given options in input
// order: one combination per possible assignment of one value per option.
// Zero usable options yields an empty result.
func Combine(options []OptionInput) []Combination {
	options = usableOptions(options)
	if len(options) == 0 {
		return nil
	}

	var combos []Combination
	current := make([]Selection, 0, len(options))

	var walk func(idx int)
	walk = func(idx int) {
		if idx == len(options) {
			parts := make([]string, len(current))
			for i, sel := range current {
				parts[i] = sel.Value
			}
			combos = append(combos, Combination{
				Title:      strings.Join(parts, TitleSeparator),
				Selections: append([]Selection(nil), current...),
			})
			return
		}
		for _, v := range options[idx].Values {
			current = append(current, Selection{Option: options[idx].Name, Value: v.Value})
			walk(idx + 1)
			current = current[:len(current)-1]
		}
	}
	walk(0)
	return combos
}

// BuildVariants regenerates the variant set for a product after its options
// changed. Combinations whose title matches a prior variant keep that
// variant's ID, SKU and price; new titles get a derived SKU and price zero,
// except the first combination, which becomes the default variant and is
// seeded with the product's base price. Combinations no longer producible
// are simply absent from the result.
func BuildVariants(productName string, basePrice decimal.Decimal, options []OptionInput, prior []PriorVariant) []VariantSeed {
	combos := Combine(options)
	if len(combos) == 0 {
		return nil
	}

	byTitle := make(map[string]PriorVariant, len(prior))
	for _, p := range prior {
		byTitle[p.Title] = p
	}

	seeds := make([]VariantSeed, 0, len(combos))
	for i, combo := range combos {
		seed := VariantSeed{
			Title:       combo.Title,
			SKU:         GenerateSKU(productName, combo.Title),
			Price:       decimal.Zero,
			IsDefault:   i == 0,
			IsAvailable: true,
		}
		if found, ok := byTitle[combo.Title]; ok {
			id := found.ID
			seed.ID = &id
			seed.SKU = found.SKU
			seed.Price = found.Price
		} else if i == 0 {
			seed.Price = basePrice
		}
		seeds = append(seeds, seed)
	}
	return seeds
}

// GenerateSKU derives a SKU slug from the product name plus the combination
// title: each word contributes its first three letters, uppercased, joined
// with dashes ("Latte", "12oz / Hot" → "LAT-12O-HOT").
func GenerateSKU(parts ...string) string {
	var segments []string
	for _, part := range parts {
		part = strings.ReplaceAll(part, TitleSeparator, " ")
		part = strings.ReplaceAll(part, "-", " ")
		for _, word := range strings.Fields(part) {
			if len(word) > 3 {
				word = word[:3]
			}
			segments = append(segments, strings.ToUpper(word))
		}
	}
	return strings.Join(segments, "-")
}
