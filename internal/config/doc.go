// Package config loads codewarden configuration from two layers: a global
// JSON preference file under the user's home directory and an optional
// repo-local YAML overlay. CLI flags override both; the merge itself happens
// in the cmd package.
package config
