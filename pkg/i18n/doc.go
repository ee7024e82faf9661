// Package i18n resolves translated labels and button captions.
//
// Translations are looked up through the Translator contract. Catalog is the
// bundled implementation and reads gettext PO files, one per locale. Missing
// translations never fail a render: they are routed to a
// MissingTranslationHandler that decides which string to use instead.
package i18n
