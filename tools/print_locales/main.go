package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/rpgo/decimaledit/internal/mask"
	fixed "github.com/rpgo/decimaledit/pkg/decimal"
)

func main() {
	samples := []string{"0", "0.05", "1234.5", "-9876543.21", "123456789012345678"}

	for _, locale := range []string{"en", "de", "fr", "de-CH", "hi"} {
		tag, err := mask.ParseLocale(locale)
		if err != nil {
			fmt.Printf("%s: %v\n", locale, err)
			continue
		}
		sym := mask.LocaleSymbols(tag)
		fmt.Printf("%s (group %q, decimal %q)\n", locale, sym.Group, sym.Decimal)

		cfg := domain.NewFieldConfig().WithDecimalDigits(2)
		cfg.Prefix, cfg.Suffix, cfg.Locale = "$", "kg", locale
		for _, s := range samples {
			v := fixed.Float64(decimal.RequireFromString(s))
			text, err := mask.Format(v, cfg)
			if err != nil {
				fmt.Printf("  %-20s error: %v\n", s, err)
				continue
			}
			back, err := mask.Parse(text, cfg)
			if err != nil {
				fmt.Printf("  %-20s %-28q parse error: %v\n", s, text, err)
				continue
			}
			fmt.Printf("  %-20s %-28q -> %v\n", s, text, back)
		}
	}
}
