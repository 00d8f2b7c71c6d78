// Package render performs literal placeholder substitution over template
// text. It deliberately avoids a general templating engine: the PKGBUILD
// templates carry a handful of @TOKEN@ markers with no escaping rules, and
// any marker left unsubstituted is treated as an error.
package render
