// Package holiday computes the national holidays of Japan.
//
// A date is a holiday when one of the statutory rules matches it, when it
// is owed as a substitute for a holiday that fell on a Sunday (from 1973),
// or when it is sandwiched between two holidays (国民の休日). The rules
// follow the holiday law and its amendments from 1948; the equinox days are
// approximated by formula and are not known after 2150.
//
// Nothing here depends on a time zone: a Date names a calendar day.
package holiday
