package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// DefaultLanguage is used when no option overrides it.
const DefaultLanguage = "en"

// Translator renders messages from catalogs loaded once at construction.
// It is immutable afterwards and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tr := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if tr == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	t.translations = translations

	// The matcher falls back to its first tag, so the default language leads.
	t.langs = []string{t.defaultLang}
	for _, lang := range slices.Sorted(maps.Keys(translations)) {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	tags := make([]language.Tag, len(t.langs))
	for i, lang := range t.langs {
		tags[i] = language.Make(lang)
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// NewDefault creates a translator over the built-in catalogs.
func NewDefault(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, BuiltinAdapter(), options...)
}

// SupportedLanguages returns the language codes that have translations, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// Match picks the best supported language for the given preferences. Each
// preference may be a single tag ("es-MX"), a POSIX locale ("es_MX.UTF-8")
// or an Accept-Language list ("fr-CH, fr;q=0.9, en;q=0.8"). It returns the
// default language when nothing matches.
func (t *Translator) Match(prefs ...string) string {
	var tags []language.Tag
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if !strings.ContainsAny(p, ",;") {
			p, _, _ = strings.Cut(p, ".")
			p = strings.ReplaceAll(p, "_", "-")
		}
		if p == "" || strings.EqualFold(p, "C") || strings.EqualFold(p, "POSIX") {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from
// name/value argument pairs:
//
//	t.T("en", "report.summary.one", "count", "1", "total", "3")
//
// A missing translation yields the key itself, or "" when key fallback is off.
func (t *Translator) T(lang, key string, args ...string) string {
	return t.render(lang, key, pairs(args), t.missing(key))
}

// Td translates key with an explicit fallback template.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	return t.render(lang, key, pairs(args), defaultValue)
}

// N translates a plural key. It tries key.zero for 0, key.one for 1 and
// key.other otherwise, then the key itself. "count" is added to the
// arguments when absent.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	params := pairs(args)
	if _, ok := params["count"]; !ok {
		params["count"] = strconv.Itoa(n)
	}

	var forms []string
	switch n {
	case 0:
		forms = []string{"zero", "other"}
	case 1:
		forms = []string{"one"}
	default:
		forms = []string{"other"}
	}
	for _, form := range forms {
		if tmpl, ok := t.lookup(lang, key+"."+form); ok {
			return substitute(tmpl, params)
		}
	}
	return t.render(lang, key, params, t.missing(key))
}

// Error renders a rejection in lang. Errors carrying a ValidationError or a
// Translatable use their translation key and values; anything else, and any
// key missing from the catalog, falls back to the error text.
func (t *Translator) Error(lang string, err error) string {
	if err == nil {
		return ""
	}

	var ve validator.ValidationError
	if errors.As(err, &ve) {
		return t.render(lang, ve.TranslationKey, stringify(ve.TranslationValues), ve.Error())
	}
	var tr validator.Translatable
	if errors.As(err, &tr) {
		return t.render(lang, tr.TranslationKey(), stringify(tr.TranslationValues()), err.Error())
	}
	return err.Error()
}

func (t *Translator) missing(key string) string {
	if t.fallbackToKey {
		return key
	}
	return ""
}

func (t *Translator) render(lang, key string, params map[string]string, fallback string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		tmpl = fallback
	}
	return substitute(tmpl, params)
}

// lookup traverses nested maps using a dot-separated key, so
// "validation.min" reads m["validation"]["min"].
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders; unknown names are kept as is.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// pairs converts key, value, key, value arguments into a map. An odd
// trailing argument is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

func stringify(values map[string]any) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = formatValue(v)
	}
	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(x)
	}
}
