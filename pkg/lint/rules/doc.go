// Package rules contains the built-in lint rules for adblock filter lists.
//
// Every rule implements lint.Rule: a static Descriptor plus selector-keyed
// visitors bound to a per-run instance. Rules register themselves into
// lint.DefaultRegistry during init.
package rules
