package models

import "time"

// ClientQuoteUsage records that a thank-you quote was already sent to a phone.
type ClientQuoteUsage struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Phone      string    `gorm:"size:32;not null;uniqueIndex:idx_quote_phone_index,priority:1" json:"phone"`
	QuoteIndex int       `gorm:"not null;uniqueIndex:idx_quote_phone_index,priority:2" json:"quoteIndex"`
	CreatedAt  time.Time `json:"createdAt"`
}

var motivationalQuotes = []string{
	"Tu belleza comienza en el momento en que decides ser tú misma.",
	"Las uñas son el punto final de una frase llamada estilo.",
	"Que tu actitud siempre te combine con las uñas.",
	"Descubrí el arte de unas manos impecables.",
	"La elegancia es la única belleza que nunca se marchita.",
	"Hoy es un día perfecto para brillar.",
	"Eres fuerte, eres valiosa, eres hermosa.",
	"Tus manos hablan de ti.",
	"El cuidado personal no es un lujo, es una necesidad.",
	"Una mujer con uñas bonitas no necesita suerte, ya tiene actitud.",
}

// MotivationalQuotes returns a copy of the thank-you quote pool.
func MotivationalQuotes() []string {
	out := make([]string, len(motivationalQuotes))
	copy(out, motivationalQuotes)
	return out
}
