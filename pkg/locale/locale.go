// Package locale carries the handful of localized strings the core emits:
// export column headers, advisory fallbacks and number/date formatting.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"orchardlog/entities"
)

// Tag maps an app language to its BCP 47 tag.
func Tag(lang entities.Language) language.Tag {
	if lang == entities.LangTR {
		return language.Turkish
	}
	return language.AmericanEnglish
}

// FormatAmount groups digits the way the language does and drops decimals.
func FormatAmount(v float64, lang entities.Language) string {
	p := message.NewPrinter(Tag(lang))
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// CSVHeaders returns the export column names in export order.
func CSVHeaders(lang entities.Language) []string {
	if lang == entities.LangTR {
		return []string{"Tarih", "Faaliyet Türü", "Parsel", "Detaylar", "Miktar", "Birim", "Maliyet", "Notlar"}
	}
	return []string{"Date", "Activity Type", "Block", "Details", "Quantity", "Unit", "Cost", "Notes"}
}

var (
	weekdaysTR = [...]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"}
	monthsTR   = [...]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"}
)

// FullDate renders t with weekday, day, month name and year.
// x/text has no calendar formatting, so the turkish names are tabled here.
func FullDate(t time.Time, lang entities.Language) string {
	if lang == entities.LangTR {
		return LongDate(t, lang) + " " + weekdaysTR[t.Weekday()]
	}
	return t.Format("Monday, January 2, 2006")
}

// LongDate is FullDate without the weekday.
func LongDate(t time.Time, lang entities.Language) string {
	if lang == entities.LangTR {
		return fmt.Sprintf("%d %s %d", t.Day(), monthsTR[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}
