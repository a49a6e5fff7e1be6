// Package i18n holds the English and French dashboard strings.
package i18n

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"depenses/internal/core"
)

var (
	supported = []language.Tag{language.English, language.French}
	matcher   = language.NewMatcher(supported)
	catalogs  = map[language.Tag]map[string]string{
		language.English: en,
		language.French:  fr,
	}
)

// Translator looks up strings for one language. It is immutable and safe
// for concurrent use.
type Translator struct {
	tag      language.Tag
	messages map[string]string
	printer  *message.Printer
}

// New returns the Translator best matching lang ("en", "fr", "fr-BE", ...).
// Unknown or empty values fall back to English.
func New(lang string) *Translator {
	tag := language.English
	if lang != "" {
		if t, err := language.Parse(strings.TrimSpace(lang)); err == nil {
			_, idx, conf := matcher.Match(t)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Translator{
		tag:      tag,
		messages: catalogs[tag],
		printer:  message.NewPrinter(tag),
	}
}

// Supported reports whether lang names one of the shipped languages.
func Supported(lang string) bool {
	t, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return false
	}
	_, _, conf := matcher.Match(t)
	return conf != language.No
}

// Lang returns the base language code, "en" or "fr".
func (t *Translator) Lang() string {
	base, _ := t.tag.Base()
	return base.String()
}

// T returns the string for a dotted key, or the key itself when missing.
// args are name/value pairs substituted into {name} placeholders.
func (t *Translator) T(key string, args ...any) string {
	s, ok := t.messages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return s
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+fmt.Sprint(args[i])+"}", fmt.Sprint(args[i+1]))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// MonthName returns the name of month m (1-12).
func (t *Translator) MonthName(m int) string {
	if m < 1 || m > 12 {
		return strconv.Itoa(m)
	}
	return t.T("months." + strconv.Itoa(m))
}

// Money formats an amount with the language's separators and a euro sign.
func (t *Translator) Money(m core.Money) string {
	return t.printer.Sprintf("%.2f €", m.Euros())
}

// Number formats an integer with the language's grouping.
func (t *Translator) Number(n int) string {
	return t.printer.Sprintf("%d", n)
}
