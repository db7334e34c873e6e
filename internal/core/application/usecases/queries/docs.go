// Package queries contains read-only operations: vehicle options and types for the
// vehicle picker, and the stored quote read model.
package queries
