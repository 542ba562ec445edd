// Package i18n renders rejection messages and report text from translation
// catalogs.
//
// A Translator loads catalogs once through a TranslationAdapter. Adapters
// exist for in-memory maps, single YAML or JSON files, directories and any
// fs.FS; BuiltinAdapter serves the English and Spanish catalogs embedded in
// the package. Keys are dot-separated paths into nested maps and templates
// use named "%{name}" placeholders.
//
//	tr, err := i18n.NewDefault(ctx, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//	lang := tr.Match(os.Getenv("LANG"))          // "es_MX.UTF-8" -> "es"
//	msg := tr.Error(lang, validator.NewValidationError("shares", err))
//	// "shares debe ser al menos 0, se recibió -10"
//
// Language matching uses golang.org/x/text/language, so regional variants
// and Accept-Language lists resolve to the closest supported catalog.
//
// Translator.Error understands validator.ValidationError and any error
// implementing validator.Translatable. When a key is missing from the
// catalog the plain error text is returned instead.
package i18n
