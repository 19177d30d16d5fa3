package format

import "strings"

// ProductName strips a trailing "(Brand)" from a product label.
func ProductName(text string) string {
	if text == "" {
		return ""
	}
	if strings.Contains(text, "(") && strings.Contains(text, ")") {
		name, _, _ := strings.Cut(text, "(")
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(text)
}

// ProductBrand returns the parenthesised brand of a product label, or ""
// when the label carries none.
func ProductBrand(text string) string {
	if !strings.Contains(text, "(") || !strings.Contains(text, ")") {
		return ""
	}
	_, rest, _ := strings.Cut(text, "(")
	rest, _, _ = strings.Cut(rest, "(")
	brand, _, _ := strings.Cut(rest, ")")
	return strings.TrimSpace(brand)
}

// ProductLabel joins name and brand the way autocomplete shows them.
func ProductLabel(name, brand string) string {
	if brand == "" {
		return name
	}
	return name + " (" + brand + ")"
}
