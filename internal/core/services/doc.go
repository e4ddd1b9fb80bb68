// Package services implements the driving ports by orchestrating the
// analysis engines and the driven stores. Services hold no analysis
// logic of their own; the engines under internal/latex do the work.
package services
