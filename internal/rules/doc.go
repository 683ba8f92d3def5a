// Package rules defines the validated rule table that maps file extensions
// to category names, and the classifier built on top of it.
package rules
