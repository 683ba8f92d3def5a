// Package config loads and validates the sortd configuration file. The rule
// table is parsed and validated once here, at the boundary; core packages
// receive it as an immutable rules.Table value.
package config
