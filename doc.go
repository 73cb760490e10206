// Package tracker implements the domain logic of the hedge fund tracker:
// resolving a fund alias, name or CIK number to an SEC filer, normalizing
// the loosely structured 13F holding records returned by the SEC EDGAR
// Financial Data API, and ranking them into a portfolio report.
//
// The package is pure except for Resolve, which may perform a single search
// call through the provided Searcher. Everything downstream of the fetch is
// deterministic: the same raw records and display count always produce the
// same report and the same formatted strings.
package tracker
